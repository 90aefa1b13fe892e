package models

import (
	"fmt"
	"strings"

	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// Dimension names the aspect of a transaction a rule acts on.
type Dimension string

const (
	DimensionCategory  Dimension = "category"
	DimensionNecessity Dimension = "necessity"
	DimensionFrequency Dimension = "frequency"
	DimensionSweep     Dimension = "sweep"
)

func (d Dimension) Valid() bool {
	switch d {
	case DimensionCategory, DimensionNecessity, DimensionFrequency, DimensionSweep:
		return true
	}
	return false
}

// Rule assigns a tag to, or sweeps, transactions whose description matches
// its pattern.
//
// Rules are evaluated in ascending priority order, independently per
// dimension; the first matching rule wins the dimension. Priority 0 is
// reserved for user overrides, at most one active rule per dimension may
// claim it. Rules with equal priority are evaluated in creation order.
type Rule struct {
	DefaultModel
	Dimension Dimension `json:"dimension" example:"frequency"`
	Match     string    `json:"match" example:"netflix"`         // Case-insensitive substring; * wildcards are supported
	Value     string    `json:"value" example:"Subscription"`    // Tag to assign; unused for sweep rules
	Priority  uint      `json:"priority" example:"10"`           // Evaluation order, lower wins
	Title     string    `json:"title" example:"Streaming" default:""` // Optional human readable label
	Enabled   bool      `json:"enabled" example:"true" default:"true"`

	// SweptCount tracks how many transactions a sweep rule has swept
	// over all rule runs.
	SweptCount uint `json:"sweptCount" example:"3" default:"0"`
}

// BeforeSave validates the rule and enforces the priority 0 reservation.
func (r *Rule) BeforeSave(tx *gorm.DB) error {
	if !r.Dimension.Valid() {
		return fmt.Errorf("%w, got %q", ErrInvalidDimension, r.Dimension)
	}

	if strings.TrimSpace(r.Match) == "" {
		return fmt.Errorf("%w: the match pattern must not be empty", ErrMalformedInput)
	}

	switch r.Dimension {
	case DimensionNecessity:
		if !Necessity(r.Value).Valid() || r.Value == "" {
			return fmt.Errorf("%w, got %q", ErrInvalidNecessity, r.Value)
		}
	case DimensionFrequency:
		if !Frequency(r.Value).Valid() || r.Value == "" {
			return fmt.Errorf("%w, got %q", ErrInvalidFrequency, r.Value)
		}
	case DimensionSweep:
		r.Value = ""
	}

	if r.Priority == 0 && r.Enabled {
		var count int64
		err := tx.Model(&Rule{}).
			Where("dimension = ? AND priority = 0 AND enabled = ? AND id != ?", r.Dimension, true, r.ID).
			Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return ErrRuleConflict
		}
	}

	return nil
}

// Matches reports whether the rule matches the given description.
// Matching is case-insensitive. A pattern without wildcards matches as a
// substring; "*" wildcards can be used for more specific patterns.
func (r Rule) Matches(description string) bool {
	if !r.Enabled {
		return false
	}

	pattern := strings.ToLower(r.Match)
	if !strings.Contains(pattern, "*") {
		pattern = "*" + pattern + "*"
	}

	return glob.Glob(pattern, strings.ToLower(description))
}
