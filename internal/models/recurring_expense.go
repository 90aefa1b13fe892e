package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Cadence names how often a recurring expense is expected to occur.
type Cadence string

const (
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

func (c Cadence) Valid() bool {
	switch c {
	case CadenceWeekly, CadenceMonthly:
		return true
	}
	return false
}

// RecurringExpense is a named, expected expense (rent, insurance) with an
// expected amount and cadence. Keywords connect the expense to the
// transactions paying it: a transaction matches when its description
// contains every keyword.
type RecurringExpense struct {
	DefaultModel
	Name     string   `json:"name" example:"Rent"`                                     // Display name
	Amount   int64    `json:"amount" example:"145000"`                                 // Expected amount in minor currency units
	Cadence  Cadence  `json:"cadence" example:"monthly" default:"monthly"`             // weekly or monthly
	Keywords []string `json:"keywords" gorm:"serializer:json" example:"acme,property"` // Transactions must contain all keywords (case-insensitive)
	Enabled  bool     `json:"enabled" example:"true" default:"true"`
	Category string   `json:"category" example:"Housing" default:""`                   // Category for display purposes
}

// BeforeSave validates the expense and normalizes the keyword list.
func (e *RecurringExpense) BeforeSave(_ *gorm.DB) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: the name must not be empty", ErrMalformedInput)
	}

	if !e.Cadence.Valid() {
		return fmt.Errorf("%w, got %q", ErrInvalidCadence, e.Cadence)
	}

	if e.Amount < 0 {
		return fmt.Errorf("%w: the expected amount must not be negative", ErrMalformedInput)
	}

	// Empty keywords can never match anything, drop them
	keywords := make([]string, 0, len(e.Keywords))
	for _, keyword := range e.Keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	e.Keywords = keywords

	return nil
}

// Matches reports whether the expense matches the given description.
// Every keyword must be contained, case-insensitively. An expense that is
// disabled or has no keywords never matches.
func (e RecurringExpense) Matches(description string) bool {
	if !e.Enabled || len(e.Keywords) == 0 {
		return false
	}

	description = strings.ToLower(description)
	for _, keyword := range e.Keywords {
		if !strings.Contains(description, strings.ToLower(keyword)) {
			return false
		}
	}

	return true
}
