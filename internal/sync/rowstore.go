// Package sync reconciles the local ledger with the remote row store.
package sync

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/spendsight/backend/internal/models"
)

// Fields are the transaction fields mirrored to the remote row store.
// They are also the unit of conflict detection: the last acknowledged
// Fields of every synced transaction are persisted as its snapshot.
type Fields struct {
	Date          string           `json:"date"` // "2006-01-02"
	Amount        int64            `json:"amount"`
	Description   string           `json:"description"`
	AccountSource string           `json:"accountSource"`
	BankCategory  string           `json:"bankCategory"`
	Category      string           `json:"category"`
	Necessity     models.Necessity `json:"necessity"`
	Frequency     models.Frequency `json:"frequency"`
	Swept         bool             `json:"swept"`
}

// FieldsOf extracts the synced fields from a transaction.
func FieldsOf(t models.Transaction) Fields {
	return Fields{
		Date:          t.Date.Format("2006-01-02"),
		Amount:        t.Amount,
		Description:   t.Description,
		AccountSource: t.AccountSource,
		BankCategory:  t.BankCategory,
		Category:      t.Category,
		Necessity:     t.Necessity,
		Frequency:     t.Frequency,
		Swept:         t.Swept,
	}
}

// Snapshot serializes the fields for persistence on the transaction.
func (f Fields) Snapshot() (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParseSnapshot deserializes a persisted snapshot. The second return
// value reports whether a snapshot was present.
func ParseSnapshot(s *string) (Fields, bool, error) {
	if s == nil || *s == "" {
		return Fields{}, false, nil
	}

	var f Fields
	err := json.Unmarshal([]byte(*s), &f)
	if err != nil {
		return Fields{}, false, err
	}

	return f, true, nil
}

// Row is one remote row.
type Row struct {
	Fingerprint string `json:"fingerprint"`
	Fields      Fields `json:"fields"`
}

// RowStore is the remote copy of the ledger, treated as an opaque
// key-value row store indexed by fingerprint. Implementations may be
// eventually consistent: the reconciler never assumes its own last write
// is visible on the next read.
type RowStore interface {
	// ReadAll returns all remote rows.
	ReadAll(ctx context.Context) ([]Row, error)

	// AppendOrUpdate writes the fields for a fingerprint, inserting or
	// overwriting as needed.
	AppendOrUpdate(ctx context.Context, fingerprint string, fields Fields) error
}

// MemoryStore is an in-memory RowStore. It backs tests and local
// operation when no spreadsheet is configured.
type MemoryStore struct {
	mu   sync.Mutex
	rows map[string]Fields

	// FailAfter makes AppendOrUpdate fail once n successful writes have
	// happened, to exercise partial sync batches. Zero disables it.
	FailAfter int
	writes    int
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string]Fields)}
}

func (m *MemoryStore) ReadAll(_ context.Context) ([]Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := make([]Row, 0, len(m.rows))
	for fingerprint, fields := range m.rows {
		rows = append(rows, Row{Fingerprint: fingerprint, Fields: fields})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Fingerprint < rows[j].Fingerprint })
	return rows, nil
}

func (m *MemoryStore) AppendOrUpdate(_ context.Context, fingerprint string, fields Fields) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailAfter > 0 && m.writes >= m.FailAfter {
		return errRemoteUnavailable
	}

	m.rows[fingerprint] = fields
	m.writes++
	return nil
}

// Put writes a row directly, bypassing the failure injection. Tests use
// it to stage remote state.
func (m *MemoryStore) Put(fingerprint string, fields Fields) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[fingerprint] = fields
}

// Len returns the number of remote rows.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}
