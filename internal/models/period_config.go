package models

import (
	"github.com/shopspring/decimal"

	"github.com/spendsight/backend/internal/types"
)

// PeriodConfig holds the user-set metadata for a budget period: an
// optional budget limit and a free-text note.
//
// It is independent of the derived period totals and is never written by
// the aggregator.
type PeriodConfig struct {
	Timestamps
	Granularity types.Granularity `json:"granularity" gorm:"primaryKey" example:"monthly"` // Granularity of the period
	PeriodKey   string            `json:"periodKey" gorm:"primaryKey" example:"2024-07"`   // Period key, see types.Period.Key

	// BudgetLimit is the spending limit for the period in major currency
	// units, e.g. "1200.50". Unset means no limit is configured.
	BudgetLimit *decimal.Decimal `json:"budgetLimit" gorm:"type:DECIMAL(20,8)" example:"1200.50"`

	Note string `json:"note" example:"Vacation month, groceries will be low" default:""` // A note for the period
}
