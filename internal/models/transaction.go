package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Necessity classifies a transaction on the needs/wants/savings dimension.
// The empty string means the dimension is unset.
type Necessity string

const (
	NecessityUnset  Necessity = ""
	NecessityNeed   Necessity = "Need"
	NecessityWant   Necessity = "Want"
	NecessitySaving Necessity = "Saving"
)

func (n Necessity) Valid() bool {
	switch n {
	case NecessityUnset, NecessityNeed, NecessityWant, NecessitySaving:
		return true
	}
	return false
}

// Frequency classifies how often a transaction recurs. The empty string
// means the dimension is unset.
type Frequency string

const (
	FrequencyUnset        Frequency = ""
	FrequencyOneTime      Frequency = "OneTime"
	FrequencyRecurring    Frequency = "Recurring"
	FrequencySubscription Frequency = "Subscription"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyUnset, FrequencyOneTime, FrequencyRecurring, FrequencySubscription:
		return true
	}
	return false
}

// SyncState tracks the reconciliation state of a transaction against the
// remote row store.
//
// Valid transitions are local → pending → synced, and any state →
// conflict. A transaction never returns to local once it has been synced;
// edits to a synced transaction move it back to pending so the new content
// version is sent exactly once.
type SyncState string

const (
	SyncStateLocal    SyncState = "local"
	SyncStatePending  SyncState = "pending"
	SyncStateSynced   SyncState = "synced"
	SyncStateConflict SyncState = "conflict"
)

func (s SyncState) Valid() bool {
	switch s {
	case SyncStateLocal, SyncStatePending, SyncStateSynced, SyncStateConflict:
		return true
	}
	return false
}

// Transaction is a single normalized bank transaction.
//
// Its identity is the fingerprint, derived deterministically from the
// source fields by the importer. Transactions are never deleted, only
// marked as swept.
type Transaction struct {
	// Fingerprint is the stable identity of the transaction, see
	// importer.Fingerprint.
	Fingerprint string `json:"fingerprint" gorm:"primaryKey" example:"867e3a26dc0baf73f4bff506f31a97f6c32088917e9e5cf1a5ed6f3f84a6fa70"`

	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"` // Last time the resource was updated

	Date time.Time `json:"date" example:"2024-07-15T00:00:00Z"` // Posting date, normalized to a UTC date

	// Amount in minor currency units. Outflows are positive, inflows
	// negative, regardless of the sign convention of the source bank.
	Amount int64 `json:"amount" example:"1403"`

	Description   string `json:"description" example:"NETFLIX.COM"`    // Raw description from the bank export
	AccountSource string `json:"accountSource" example:"chase_credit"` // Bank and account type the transaction was imported from

	// BankCategory is the category the bank put into the export, if any.
	// It is kept for reference and is independent of the rule-driven
	// Category tag.
	BankCategory string `json:"bankCategory" example:"Shopping" default:""`

	Category  string    `json:"category" example:"Groceries" default:""`      // Category tag, empty until a rule matches
	Necessity Necessity `json:"necessity" example:"Want" default:""`          // Need/Want/Saving tag, empty until a rule matches
	Frequency Frequency `json:"frequency" example:"Subscription" default:""` // OneTime/Recurring/Subscription tag, empty until a rule matches

	// Manual override flags per tag dimension. A dimension with its flag
	// set is never changed by automatic rule runs unless the run is
	// forced.
	CategoryManual  bool `json:"categoryManual" default:"false"`
	NecessityManual bool `json:"necessityManual" default:"false"`
	FrequencyManual bool `json:"frequencyManual" default:"false"`

	// Swept transactions are kept for audit but excluded from all
	// aggregation and remote sync.
	Swept       bool `json:"swept" default:"false"`
	SweptManual bool `json:"sweptManual" default:"false"`

	SyncState SyncState `json:"syncState" example:"local" default:"local"`

	// SyncedSnapshot is the JSON serialization of the field values as
	// they were last acknowledged by the remote row store. It is the
	// base version for conflict detection and is only written by the
	// reconciler.
	SyncedSnapshot *string `json:"-" gorm:"type:TEXT"`
}

// AfterFind updates the timestamps and the date to use UTC as timezone,
// not +0000. Yes, this is different.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.CreatedAt = t.CreatedAt.In(time.UTC)
	t.UpdatedAt = t.UpdatedAt.In(time.UTC)
	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave validates the tag dimensions and the sync state and sets the
// timezone for the date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	if !t.Necessity.Valid() {
		return fmt.Errorf("%w, got %q", ErrInvalidNecessity, t.Necessity)
	}

	if !t.Frequency.Valid() {
		return fmt.Errorf("%w, got %q", ErrInvalidFrequency, t.Frequency)
	}

	if t.SyncState == "" {
		t.SyncState = SyncStateLocal
	}

	if !t.SyncState.Valid() {
		return fmt.Errorf("%w, got %q", ErrInvalidSyncState, t.SyncState)
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// MarkEdited moves a synced transaction back to pending so that the new
// content version is sent on the next sync. All other states are kept:
// local and pending rows are already due to be sent, conflicted rows must
// be resolved explicitly.
func (t *Transaction) MarkEdited() {
	if t.SyncState == SyncStateSynced {
		t.SyncState = SyncStatePending
	}
}

// IsInflow reports whether the transaction is an inflow (income, refund).
func (t *Transaction) IsInflow() bool {
	return t.Amount < 0
}
