// Package aggregate computes budget period totals from the ledger.
package aggregate

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/spendsight/backend/internal/ledger"
	"github.com/spendsight/backend/internal/models"
	"github.com/spendsight/backend/internal/types"
)

// Totals are the derived sums for one budget period. They are always
// computed from the ledger on demand and never stored.
type Totals struct {
	// Spent is the sum of all non-swept outflows in minor units.
	Spent int64 `json:"spent" example:"184233"`

	// Income is the sum of all non-swept inflows in minor units, as a
	// positive number.
	Income int64 `json:"income" example:"350000"`

	Net   int64 `json:"net" example:"165767"` // Income minus Spent
	Count int   `json:"count" example:"97"`   // Number of transactions in the period

	// Outflow sums split by tag dimension. Untagged transactions are
	// summed under the empty key.
	ByCategory  map[string]int64           `json:"byCategory"`
	ByNecessity map[models.Necessity]int64 `json:"byNecessity"`
	ByFrequency map[models.Frequency]int64 `json:"byFrequency"`
}

// BudgetPeriod is the report for one period: the derived totals plus the
// user-set limit and note.
type BudgetPeriod struct {
	Key         string            `json:"key" example:"2024-07"`
	Granularity types.Granularity `json:"granularity" example:"monthly"`
	Start       time.Time         `json:"start" example:"2024-07-01T00:00:00Z"`
	End         time.Time         `json:"end" example:"2024-08-01T00:00:00Z"` // Exclusive

	BudgetLimit *decimal.Decimal `json:"budgetLimit" example:"1200.50"` // User-set, unset means no limit
	Note        string           `json:"note" example:"Vacation month"` // User-set

	// Remaining is BudgetLimit minus Spent, only set when a limit is
	// configured.
	Remaining *decimal.Decimal `json:"remaining" example:"\"-23.50\""`

	// Currency is the symbol of the configured locale's currency, for
	// display.
	Currency string `json:"currency" example:"$"`

	Totals Totals `json:"totals"`
}

// Aggregator computes period reports.
type Aggregator struct {
	db    *gorm.DB
	store *ledger.Store

	// weekStart is the weekday weekly periods begin on.
	weekStart time.Weekday

	symbol string
}

// New returns an Aggregator. locale selects the currency symbol used in
// reports, e.g. "en-US".
func New(db *gorm.DB, weekStart time.Weekday, locale string) *Aggregator {
	symbol := "$"
	if tag, err := language.Parse(locale); err == nil {
		unit, _ := currency.FromTag(tag)
		symbol = fmt.Sprint(currency.NarrowSymbol(unit))
	}

	return &Aggregator{
		db:        db,
		store:     ledger.NewStore(db),
		weekStart: weekStart,
		symbol:    symbol,
	}
}

// PeriodOf returns the period of the given granularity containing t,
// using the configured week start.
func (a *Aggregator) PeriodOf(t time.Time, granularity types.Granularity) types.Period {
	return types.PeriodOf(t, granularity, a.weekStart)
}

// WeekStart returns the configured first day of the week.
func (a *Aggregator) WeekStart() time.Weekday {
	return a.weekStart
}

// Aggregate computes the report for one period. Swept transactions are
// excluded from all totals; they stay queryable on the ledger for audit.
func (a *Aggregator) Aggregate(period types.Period) (BudgetPeriod, error) {
	notSwept := false
	transactions, err := a.store.Query(ledger.Filter{
		From:  period.Start(),
		Until: period.End(),
		Swept: &notSwept,
	})
	if err != nil {
		return BudgetPeriod{}, err
	}

	totals := Totals{
		ByCategory:  make(map[string]int64),
		ByNecessity: make(map[models.Necessity]int64),
		ByFrequency: make(map[models.Frequency]int64),
	}

	for _, t := range transactions {
		totals.Count++

		if t.IsInflow() {
			totals.Income += -t.Amount
			continue
		}

		totals.Spent += t.Amount
		totals.ByCategory[t.Category] += t.Amount
		totals.ByNecessity[t.Necessity] += t.Amount
		totals.ByFrequency[t.Frequency] += t.Amount
	}

	totals.Net = totals.Income - totals.Spent

	report := BudgetPeriod{
		Key:         period.Key(),
		Granularity: period.Granularity(),
		Start:       period.Start(),
		End:         period.End(),
		Currency:    a.symbol,
		Totals:      totals,
	}

	config, err := a.Config(period)
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		return BudgetPeriod{}, err
	}
	if err == nil {
		report.BudgetLimit = config.BudgetLimit
		report.Note = config.Note

		if config.BudgetLimit != nil {
			remaining := config.BudgetLimit.Sub(decimal.New(totals.Spent, -2))
			report.Remaining = &remaining
		}
	}

	return report, nil
}

// Config returns the user-set metadata for the period.
func (a *Aggregator) Config(period types.Period) (models.PeriodConfig, error) {
	var config models.PeriodConfig
	err := a.db.First(&config, "granularity = ? AND period_key = ?", period.Granularity(), period.Key()).Error
	return config, err
}

// SetConfig upserts the user-set metadata for a period. The derived
// totals never touch it.
func (a *Aggregator) SetConfig(period types.Period, limit *decimal.Decimal, note string) (models.PeriodConfig, error) {
	config, err := a.Config(period)
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		return config, err
	}

	config.Granularity = period.Granularity()
	config.PeriodKey = period.Key()
	config.BudgetLimit = limit
	config.Note = note

	err = a.db.Save(&config).Error
	return config, err
}
