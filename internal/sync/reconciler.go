package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/spendsight/backend/internal/models"
)

var (
	errRemoteUnavailable = errors.New("the remote row store is unavailable")

	// ErrNotInConflict is returned when a conflict resolution is
	// requested for a transaction that is not in conflict.
	ErrNotInConflict = errors.New("the transaction is not in conflict")
)

// Conflict is a local/remote divergence that needs an explicit decision.
// Both versions are surfaced, neither is overwritten automatically.
type Conflict struct {
	Fingerprint string `json:"fingerprint" example:"867e3a26dc0baf73f4bff506f31a97f6c32088917e9e5cf1a5ed6f3f84a6fa70"`
	Local       Fields `json:"local"`
	Remote      Fields `json:"remote"`
}

// Result summarizes one sync run.
type Result struct {
	Synced    int        `json:"synced" example:"12"`    // Rows acknowledged by the remote store in this run
	Remaining int        `json:"remaining" example:"3"`  // Rows still pending after this run
	Pulled    int        `json:"pulled" example:"0"`     // Rows created locally from the remote store (full resync only)
	Conflicts []Conflict `json:"conflicts"`              // Divergent rows found in this run
}

// Reconciler merges the local ledger with the remote row store.
//
// Sync attempts are committed per transaction: a network failure mid-batch
// leaves the already acknowledged rows synced and everything else pending,
// so the next sync resumes where this one stopped. Unchanged synced rows
// are never re-sent.
type Reconciler struct {
	db     *gorm.DB
	remote RowStore
}

// NewReconciler returns a Reconciler for the given database and remote
// store.
func NewReconciler(db *gorm.DB, remote RowStore) *Reconciler {
	return &Reconciler{db: db, remote: remote}
}

// Sync pushes all local and pending transactions to the remote store.
//
// Before sending, the remote state is read back and compared against each
// transaction's last synced snapshot; rows whose remote copy diverged from
// both the snapshot and the local version are marked as conflicts and
// excluded from the send.
func (r *Reconciler) Sync(ctx context.Context) (Result, error) {
	var result Result

	remote, err := r.readRemote(ctx)
	if err != nil {
		return result, err
	}

	result.Conflicts, err = r.detectConflicts(remote)
	if err != nil {
		return result, err
	}

	candidates, err := r.markPending()
	if err != nil {
		return result, err
	}

	for i, t := range candidates {
		if err := ctx.Err(); err != nil {
			result.Remaining = len(candidates) - i
			return result, fmt.Errorf("%w: %v", models.ErrSyncFailure, err)
		}

		fields := FieldsOf(t)
		err = r.remote.AppendOrUpdate(ctx, t.Fingerprint, fields)
		if err != nil {
			result.Remaining = len(candidates) - i
			return result, fmt.Errorf("%w: %v", models.ErrSyncFailure, err)
		}

		err = r.markSynced(&t, fields)
		if err != nil {
			return result, err
		}

		result.Synced++
	}

	log.Debug().Int("synced", result.Synced).Int("conflicts", len(result.Conflicts)).Msg("sync finished")
	return result, nil
}

// FullResync reads the entire remote store and re-applies the ledger
// merge policy field for field: fields edited locally since the last sync
// are kept, everything else adopts the remote value. Remote rows unknown
// locally are created; local rows missing remotely are re-sent. A push of
// the merged state follows.
func (r *Reconciler) FullResync(ctx context.Context) (Result, error) {
	var result Result

	remote, err := r.readRemote(ctx)
	if err != nil {
		return result, err
	}

	for fingerprint, fields := range remote {
		var t models.Transaction
		err := r.db.First(&t, "fingerprint = ?", fingerprint).Error

		if errors.Is(err, models.ErrResourceNotFound) {
			t, err = transactionFromRow(Row{Fingerprint: fingerprint, Fields: fields})
			if err != nil {
				return result, err
			}

			err = r.setSnapshot(&t, fields)
			if err != nil {
				return result, err
			}

			err = r.db.Create(&t).Error
			if err != nil {
				return result, err
			}

			result.Pulled++
			continue
		}
		if err != nil {
			return result, err
		}

		base, _, err := ParseSnapshot(t.SyncedSnapshot)
		if err != nil {
			return result, err
		}

		merged := mergeFields(base, FieldsOf(t), fields)
		err = applyFields(&t, merged)
		if err != nil {
			return result, err
		}

		// The merge incorporated the current remote version, which makes
		// it the new base for conflict detection either way.
		err = r.setSnapshot(&t, fields)
		if err != nil {
			return result, err
		}

		if merged == fields {
			t.SyncState = models.SyncStateSynced
		} else {
			t.SyncState = models.SyncStatePending
		}

		err = r.db.Save(&t).Error
		if err != nil {
			return result, err
		}
	}

	// Synced rows the remote store no longer has must be sent again.
	err = r.db.Model(&models.Transaction{}).
		Where("sync_state = ? AND fingerprint NOT IN ?", models.SyncStateSynced, fingerprints(remote)).
		Update("sync_state", models.SyncStatePending).Error
	if err != nil {
		return result, err
	}

	pushed, err := r.Sync(ctx)
	if err != nil {
		return result, err
	}

	result.Synced = pushed.Synced
	result.Remaining = pushed.Remaining
	result.Conflicts = pushed.Conflicts
	return result, nil
}

// Conflicts returns all transactions currently in conflict, with both the
// local and the remote version.
func (r *Reconciler) Conflicts(ctx context.Context) ([]Conflict, error) {
	remote, err := r.readRemote(ctx)
	if err != nil {
		return nil, err
	}

	var conflicted []models.Transaction
	err = r.db.Where("sync_state = ?", models.SyncStateConflict).Find(&conflicted).Error
	if err != nil {
		return nil, err
	}

	conflicts := make([]Conflict, 0, len(conflicted))
	for _, t := range conflicted {
		conflicts = append(conflicts, Conflict{
			Fingerprint: t.Fingerprint,
			Local:       FieldsOf(t),
			Remote:      remote[t.Fingerprint],
		})
	}

	return conflicts, nil
}

// Resolve decides a conflict. With keepLocal, the local version is pushed
// to the remote store; otherwise the remote version is adopted locally.
func (r *Reconciler) Resolve(ctx context.Context, fingerprint string, keepLocal bool) (models.Transaction, error) {
	var t models.Transaction
	err := r.db.First(&t, "fingerprint = ?", fingerprint).Error
	if err != nil {
		return t, err
	}

	if t.SyncState != models.SyncStateConflict {
		return t, ErrNotInConflict
	}

	if keepLocal {
		fields := FieldsOf(t)
		err = r.remote.AppendOrUpdate(ctx, t.Fingerprint, fields)
		if err != nil {
			return t, fmt.Errorf("%w: %v", models.ErrSyncFailure, err)
		}

		err = r.markSynced(&t, fields)
		return t, err
	}

	remote, err := r.readRemote(ctx)
	if err != nil {
		return t, err
	}

	fields, ok := remote[fingerprint]
	if !ok {
		// The remote row disappeared, the local version is all there is.
		t.SyncState = models.SyncStatePending
		return t, r.db.Save(&t).Error
	}

	err = applyFields(&t, fields)
	if err != nil {
		return t, err
	}

	err = r.setSnapshot(&t, fields)
	if err != nil {
		return t, err
	}

	t.SyncState = models.SyncStateSynced
	return t, r.db.Save(&t).Error
}

func (r *Reconciler) readRemote(ctx context.Context) (map[string]Fields, error) {
	rows, err := r.remote.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrSyncFailure, err)
	}

	remote := make(map[string]Fields, len(rows))
	for _, row := range rows {
		remote[row.Fingerprint] = row.Fields
	}

	return remote, nil
}

// detectConflicts compares every transaction against the remote state.
// A remote row that matches neither the last synced snapshot nor the
// current local version diverged on both sides and is marked as a
// conflict. A transaction without a snapshot that already exists
// remotely with different fields is a conflict too: sending it would
// silently overwrite the remote version. A remote row that already
// matches the local version just refreshes the snapshot.
func (r *Reconciler) detectConflicts(remote map[string]Fields) ([]Conflict, error) {
	var transactions []models.Transaction
	err := r.db.Where("sync_state != ?", models.SyncStateConflict).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	var conflicts []Conflict

	for i := range transactions {
		t := &transactions[i]

		fields, ok := remote[t.Fingerprint]
		if !ok {
			continue
		}

		snapshot, hasSnapshot, err := ParseSnapshot(t.SyncedSnapshot)
		if err != nil {
			return nil, err
		}

		if hasSnapshot && fields == snapshot {
			continue
		}

		local := FieldsOf(*t)

		if fields == local {
			// Remote already holds the local edits, only the snapshot
			// is stale.
			err = r.markSynced(t, fields)
			if err != nil {
				return nil, err
			}
			continue
		}

		t.SyncState = models.SyncStateConflict
		err = r.db.Save(t).Error
		if err != nil {
			return nil, err
		}

		conflicts = append(conflicts, Conflict{
			Fingerprint: t.Fingerprint,
			Local:       local,
			Remote:      fields,
		})

		log.Warn().Str("fingerprint", t.Fingerprint).Msg("local and remote versions diverged")
	}

	return conflicts, nil
}

// markPending moves all rows due for sending to pending and returns them.
// Swept rows that have never been synced are not sent at all; swept rows
// the remote store already knows get their sweep state pushed.
func (r *Reconciler) markPending() ([]models.Transaction, error) {
	var candidates []models.Transaction
	err := r.db.
		Where("sync_state IN ?", []models.SyncState{models.SyncStateLocal, models.SyncStatePending}).
		Where("swept = ? OR synced_snapshot IS NOT NULL", false).
		Order("date ASC, fingerprint ASC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		if candidates[i].SyncState == models.SyncStatePending {
			continue
		}

		candidates[i].SyncState = models.SyncStatePending
		err = r.db.Save(&candidates[i]).Error
		if err != nil {
			return nil, err
		}
	}

	return candidates, nil
}

func (r *Reconciler) markSynced(t *models.Transaction, fields Fields) error {
	err := r.setSnapshot(t, fields)
	if err != nil {
		return err
	}

	t.SyncState = models.SyncStateSynced
	return r.db.Save(t).Error
}

func (r *Reconciler) setSnapshot(t *models.Transaction, fields Fields) error {
	snapshot, err := fields.Snapshot()
	if err != nil {
		return err
	}

	t.SyncedSnapshot = &snapshot
	return nil
}

// mergeFields applies the ledger merge policy: a field the user changed
// locally since the last sync keeps its local value, all others adopt the
// remote value.
func mergeFields(base, local, remote Fields) Fields {
	merged := remote

	if local.Date != base.Date {
		merged.Date = local.Date
	}
	if local.Amount != base.Amount {
		merged.Amount = local.Amount
	}
	if local.Description != base.Description {
		merged.Description = local.Description
	}
	if local.AccountSource != base.AccountSource {
		merged.AccountSource = local.AccountSource
	}
	if local.BankCategory != base.BankCategory {
		merged.BankCategory = local.BankCategory
	}
	if local.Category != base.Category {
		merged.Category = local.Category
	}
	if local.Necessity != base.Necessity {
		merged.Necessity = local.Necessity
	}
	if local.Frequency != base.Frequency {
		merged.Frequency = local.Frequency
	}
	if local.Swept != base.Swept {
		merged.Swept = local.Swept
	}

	return merged
}

func applyFields(t *models.Transaction, f Fields) error {
	date, err := time.Parse("2006-01-02", f.Date)
	if err != nil {
		return fmt.Errorf("%w: malformed date %q in remote row %s", models.ErrMalformedInput, f.Date, t.Fingerprint)
	}

	t.Date = date
	t.Amount = f.Amount
	t.Description = f.Description
	t.AccountSource = f.AccountSource
	t.BankCategory = f.BankCategory
	t.Category = f.Category
	t.Necessity = f.Necessity
	t.Frequency = f.Frequency
	t.Swept = f.Swept
	return nil
}

func transactionFromRow(row Row) (models.Transaction, error) {
	t := models.Transaction{
		Fingerprint: row.Fingerprint,
		SyncState:   models.SyncStateSynced,
	}

	err := applyFields(&t, row.Fields)
	return t, err
}

func fingerprints(remote map[string]Fields) []string {
	out := make([]string, 0, len(remote))
	for fingerprint := range remote {
		out = append(out, fingerprint)
	}

	if len(out) == 0 {
		// gorm renders an empty IN clause as invalid SQL
		out = append(out, "")
	}

	return out
}
