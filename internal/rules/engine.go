// Package rules evaluates the ordered rule list against transactions.
package rules

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spendsight/backend/internal/models"
)

// Snapshot is an immutable, ordered view of the rule list. Every engine
// invocation works on its own snapshot, so a rule edit during a run cannot
// corrupt the evaluation order.
type Snapshot struct {
	sweep      []models.Rule
	dimensions map[models.Dimension][]models.Rule
}

// NewSnapshot copies the rules and sorts them by priority, then creation
// time. Rules with equal priority are evaluated first-in-list.
func NewSnapshot(rules []models.Rule) Snapshot {
	sorted := make([]models.Rule, len(rules))
	copy(sorted, rules)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	s := Snapshot{
		dimensions: make(map[models.Dimension][]models.Rule),
	}

	for _, rule := range sorted {
		if rule.Dimension == models.DimensionSweep {
			s.sweep = append(s.sweep, rule)
			continue
		}
		s.dimensions[rule.Dimension] = append(s.dimensions[rule.Dimension], rule)
	}

	return s
}

// LoadSnapshot reads all enabled rules from the database into a snapshot.
func LoadSnapshot(db *gorm.DB) (Snapshot, error) {
	var rules []models.Rule
	err := db.Where(&models.Rule{Enabled: true}, "Enabled").Find(&rules).Error
	if err != nil {
		return Snapshot{}, err
	}

	return NewSnapshot(rules), nil
}

// Result reports what Apply changed on a transaction.
type Result struct {
	Changed bool

	// SweptBy is the ID of the sweep rule that matched, if any.
	SweptBy uuid.UUID
}

// Apply evaluates the snapshot against one transaction.
//
// Sweep rules are evaluated first; a match marks the transaction swept but
// tag rules are still evaluated for audit. Each tag dimension is decided
// independently: the first matching rule wins, no match resets the
// dimension to unset. Dimensions with a manual override are left alone
// unless force is set, which clears the override before reapplying.
//
// Apply is deterministic and idempotent: the same snapshot applied to the
// same transaction always yields the same tags.
func (s Snapshot) Apply(t *models.Transaction, force bool) Result {
	var result Result

	if force {
		t.CategoryManual = false
		t.NecessityManual = false
		t.FrequencyManual = false
		t.SweptManual = false
	}

	if !t.SweptManual {
		swept := false
		for _, rule := range s.sweep {
			if rule.Matches(t.Description) {
				swept = true
				result.SweptBy = rule.ID
				break
			}
		}

		if t.Swept != swept {
			t.Swept = swept
			result.Changed = true
		}
	}

	if !t.CategoryManual {
		category := ""
		if rule, ok := s.match(models.DimensionCategory, t.Description); ok {
			category = rule.Value
		}

		if t.Category != category {
			t.Category = category
			result.Changed = true
		}
	}

	// Inflows are not needs, wants or savings; the necessity dimension is
	// left for manual tagging.
	if !t.NecessityManual && !t.IsInflow() {
		necessity := models.NecessityUnset
		if rule, ok := s.match(models.DimensionNecessity, t.Description); ok {
			necessity = models.Necessity(rule.Value)
		}

		if t.Necessity != necessity {
			t.Necessity = necessity
			result.Changed = true
		}
	}

	if !t.FrequencyManual {
		frequency := models.FrequencyUnset
		if rule, ok := s.match(models.DimensionFrequency, t.Description); ok {
			frequency = models.Frequency(rule.Value)
		}

		if t.Frequency != frequency {
			t.Frequency = frequency
			result.Changed = true
		}
	}

	return result
}

func (s Snapshot) match(dimension models.Dimension, description string) (models.Rule, bool) {
	for _, rule := range s.dimensions[dimension] {
		if rule.Matches(description) {
			return rule, true
		}
	}

	return models.Rule{}, false
}

// RunStats summarizes a rule run over the whole ledger.
type RunStats struct {
	Evaluated int `json:"evaluated" example:"812"` // Number of transactions evaluated
	Changed   int `json:"changed" example:"17"`    // Number of transactions whose tags or sweep state changed
	Swept     int `json:"swept" example:"3"`       // Number of transactions newly swept in this run
}

// Run applies the snapshot to every transaction in the ledger. Changed
// transactions that were already synced move back to pending; the swept
// counters of matching sweep rules are updated.
func Run(db *gorm.DB, snapshot Snapshot, force bool) (RunStats, error) {
	var stats RunStats

	var transactions []models.Transaction
	err := db.Find(&transactions).Error
	if err != nil {
		return stats, err
	}

	sweptBy := make(map[uuid.UUID]uint)

	for i := range transactions {
		t := &transactions[i]
		wasSwept := t.Swept

		result := snapshot.Apply(t, force)
		stats.Evaluated++

		if !result.Changed {
			continue
		}

		stats.Changed++
		if !wasSwept && t.Swept {
			stats.Swept++
			if result.SweptBy != uuid.Nil {
				sweptBy[result.SweptBy]++
			}
		}

		t.MarkEdited()
		err = db.Save(t).Error
		if err != nil {
			return stats, err
		}
	}

	for id, count := range sweptBy {
		// UpdateColumn skips the model hooks; a counter bump must not run
		// rule validation against an empty receiver.
		err = db.Model(&models.Rule{}).
			Where("id = ?", id).
			UpdateColumn("swept_count", gorm.Expr("swept_count + ?", count)).Error
		if err != nil {
			return stats, err
		}
	}

	return stats, nil
}
