// Package types implements special types for Spendsight.
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Granularity is the length of a budget period.
type Granularity string

const (
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

var ErrInvalidGranularity = errors.New("granularity must be weekly or monthly")

// ParseGranularity parses a string into a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(strings.ToLower(s)) {
	case Weekly:
		return Weekly, nil
	case Monthly:
		return Monthly, nil
	}

	return "", fmt.Errorf("%w, got %q", ErrInvalidGranularity, s)
}

// Period is a budget period of a specific granularity. It is identified
// by its start date: the first day of the month for monthly periods, the
// configured first day of the week for weekly periods.
//
// A period contains all dates from its start (inclusive) up to the start
// of the next period (exclusive). A transaction dated exactly on a period
// boundary therefore always belongs to the period starting at that
// boundary.
type Period struct {
	start       time.Time
	granularity Granularity
}

// NewPeriod returns the Period of the given granularity starting at the
// given day. The time of day is discarded.
func NewPeriod(start time.Time, granularity Granularity) Period {
	year, month, day := start.Date()
	return Period{
		start:       time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		granularity: granularity,
	}
}

// PeriodOf returns the Period of the given granularity that contains t.
// weekStart is the weekday weekly periods begin on.
func PeriodOf(t time.Time, granularity Granularity, weekStart time.Weekday) Period {
	year, month, day := t.Date()

	if granularity == Monthly {
		return Period{
			start:       time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
			granularity: Monthly,
		}
	}

	// Walk back to the start of the week. (weekday - weekStart + 7) % 7
	// is the number of days since the week started.
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	back := (int(date.Weekday()) - int(weekStart) + 7) % 7

	return Period{
		start:       date.AddDate(0, 0, -back),
		granularity: Weekly,
	}
}

// ParsePeriod parses a period key as returned by Key.
func ParsePeriod(key string, granularity Granularity) (Period, error) {
	layout := "2006-01-02"
	if granularity == Monthly {
		layout = "2006-01"
	}

	t, err := time.Parse(layout, key)
	if err != nil {
		return Period{}, err
	}

	return NewPeriod(t, granularity), nil
}

// Start returns the first instant of the period.
func (p Period) Start() time.Time {
	return p.start
}

// End returns the first instant after the period, i.e. the start of the
// following period.
func (p Period) End() time.Time {
	if p.granularity == Monthly {
		return p.start.AddDate(0, 1, 0)
	}

	return p.start.AddDate(0, 0, 7)
}

// Granularity returns the granularity of the period.
func (p Period) Granularity() Granularity {
	return p.granularity
}

// Key returns the stable identifier of the period: "YYYY-MM" for monthly
// periods, the start date "YYYY-MM-DD" for weekly ones.
func (p Period) Key() string {
	if p.granularity == Monthly {
		return fmt.Sprintf("%04d-%02d", p.start.Year(), p.start.Month())
	}

	return p.start.Format("2006-01-02")
}

// String returns the period key.
func (p Period) String() string {
	return p.Key()
}

// Next returns the period directly after p.
func (p Period) Next() Period {
	return Period{start: p.End(), granularity: p.granularity}
}

// Previous returns the period directly before p.
func (p Period) Previous() Period {
	if p.granularity == Monthly {
		return Period{start: p.start.AddDate(0, -1, 0), granularity: Monthly}
	}

	return Period{start: p.start.AddDate(0, 0, -7), granularity: Weekly}
}

// Contains reports whether t falls into the period. The boundary instant
// belongs to the period starting there, never to the one before it.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && t.Before(p.End())
}

// IsZero reports if the period is the zero value.
func (p Period) IsZero() bool {
	return p.start.IsZero()
}

// MarshalJSON implements the json.Marshaler interface.
func (p Period) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", p.Key())), nil
}

// Value returns the value for the SQL driver to write to the database.
func (p Period) Value() (driver.Value, error) {
	return p.Key(), nil
}

// ParseWeekday parses a weekday name. It is used for the WEEK_START
// configuration and accepts full English weekday names, case-insensitive.
func ParseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}

	return time.Monday, fmt.Errorf("invalid weekday %q", s)
}
