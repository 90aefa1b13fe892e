// Package ledger is the local authoritative store for transactions,
// keyed by fingerprint.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/spendsight/backend/internal/models"
)

// Store wraps the database with the merge and query semantics of the
// ledger.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store using the given database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Upsert inserts a transaction or merges it into the existing one with
// the same fingerprint. The merge never discards user edits: tags, sweep
// state and manual override flags of the stored transaction are
// preserved, only the structurally derived fields (date, amount,
// description, bank category) are refreshed, e.g. after a profile bug
// fix re-parse.
//
// Re-importing an already seen row is a no-op merge, not a duplicate
// insert. Upsert is atomic per fingerprint.
//
// The returned bool reports whether a new transaction was created.
func (s *Store) Upsert(t models.Transaction) (bool, error) {
	created := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Transaction
		err := tx.First(&existing, "fingerprint = ?", t.Fingerprint).Error

		if errors.Is(err, models.ErrResourceNotFound) {
			t.SyncState = models.SyncStateLocal
			created = true
			return tx.Create(&t).Error
		}
		if err != nil {
			return err
		}

		// The fingerprint embeds the account source. The same
		// fingerprint from a different account means the derivation
		// collided on unrelated transactions: fail loudly instead of
		// merging them.
		if existing.AccountSource != t.AccountSource {
			return fmt.Errorf("%w: fingerprint %s maps to both %s and %s",
				models.ErrFingerprintCollision, t.Fingerprint, existing.AccountSource, t.AccountSource)
		}

		changed := !existing.Date.Equal(t.Date) ||
			existing.Amount != t.Amount ||
			existing.Description != t.Description ||
			existing.BankCategory != t.BankCategory

		if !changed {
			return nil
		}

		existing.Date = t.Date
		existing.Amount = t.Amount
		existing.Description = t.Description
		existing.BankCategory = t.BankCategory
		existing.MarkEdited()

		return tx.Save(&existing).Error
	})

	return created, err
}

// Filter restricts the transactions returned by Query. Zero-valued fields
// do not filter.
type Filter struct {
	// From and Until bound the date range. From is inclusive, Until
	// exclusive, so period boundaries bucket into the period starting
	// there.
	From  time.Time
	Until time.Time

	AccountSources []string
	Categories     []string
	Necessities    []models.Necessity
	Frequencies    []models.Frequency
	SyncStates     []models.SyncState

	// Swept filters on the sweep flag when set.
	Swept *bool
}

// Query returns the transactions matching the filter, ordered by date.
// Every call builds a fresh query, so results are restartable and reflect
// the ledger at call time.
func (s *Store) Query(f Filter) ([]models.Transaction, error) {
	q := s.db.Order("date ASC, fingerprint ASC")

	if !f.From.IsZero() {
		q = q.Where("date >= ?", f.From.In(time.UTC))
	}

	if !f.Until.IsZero() {
		q = q.Where("date < ?", f.Until.In(time.UTC))
	}

	if len(f.AccountSources) > 0 {
		q = q.Where("account_source IN ?", f.AccountSources)
	}

	if len(f.Categories) > 0 {
		q = q.Where("category IN ?", f.Categories)
	}

	if len(f.Necessities) > 0 {
		q = q.Where("necessity IN ?", f.Necessities)
	}

	if len(f.Frequencies) > 0 {
		q = q.Where("frequency IN ?", f.Frequencies)
	}

	if len(f.SyncStates) > 0 {
		q = q.Where("sync_state IN ?", f.SyncStates)
	}

	if f.Swept != nil {
		q = q.Where("swept = ?", *f.Swept)
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Get returns the transaction with the given fingerprint.
func (s *Store) Get(fingerprint string) (models.Transaction, error) {
	var t models.Transaction
	err := s.db.First(&t, "fingerprint = ?", fingerprint).Error
	return t, err
}

// Override is a manual, dimension-scoped user override. It behaves like a
// rule with priority 0: automatic rule runs never overwrite it unless
// they are forced.
type Override struct {
	Category  *string           `json:"category"`
	Necessity *models.Necessity `json:"necessity"`
	Frequency *models.Frequency `json:"frequency"`
	Swept     *bool             `json:"swept"`
}

// ApplyOverride sets manual tags on a transaction. Only the dimensions
// present in the override are touched; each one gets its manual flag set.
func (s *Store) ApplyOverride(fingerprint string, o Override) (models.Transaction, error) {
	var t models.Transaction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&t, "fingerprint = ?", fingerprint).Error
		if err != nil {
			return err
		}

		if o.Category != nil {
			t.Category = *o.Category
			t.CategoryManual = true
		}

		if o.Necessity != nil {
			t.Necessity = *o.Necessity
			t.NecessityManual = true
		}

		if o.Frequency != nil {
			t.Frequency = *o.Frequency
			t.FrequencyManual = true
		}

		if o.Swept != nil {
			t.Swept = *o.Swept
			t.SweptManual = true
		}

		t.MarkEdited()
		return tx.Save(&t).Error
	})

	return t, err
}
