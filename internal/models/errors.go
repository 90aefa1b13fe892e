package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrMalformedInput is returned for CSV rows or values that cannot be
	// parsed with the selected profile.
	ErrMalformedInput = errors.New("malformed input")

	// ErrRuleConflict is returned when a rule addition or update would
	// leave two active priority 0 rules on the same dimension.
	ErrRuleConflict = errors.New("another active rule already claims priority 0 for this dimension")

	// ErrFingerprintCollision is returned when two transactions from
	// different sources resolve to the same fingerprint. This should be
	// unreachable; if it happens, the import is aborted.
	ErrFingerprintCollision = errors.New("fingerprint collision detected")

	// ErrSyncFailure wraps transient remote row store errors. Affected
	// transactions stay pending and are retried on the next sync.
	ErrSyncFailure = errors.New("sync failed")

	// ErrSyncConflict is returned when local and remote versions of a
	// transaction diverged and neither matches the last synced snapshot.
	ErrSyncConflict = errors.New("local and remote versions of the transaction diverged")

	ErrPeriodConfigNotUnique = errors.New("there already is a configuration for this period")

	ErrInvalidNecessity = errors.New("necessity must be one of Need, Want, Saving or empty")
	ErrInvalidFrequency = errors.New("frequency must be one of OneTime, Recurring, Subscription or empty")
	ErrInvalidDimension = errors.New("dimension must be one of category, necessity, frequency, sweep")
	ErrInvalidCadence   = errors.New("cadence must be either weekly or monthly")
	ErrInvalidSyncState = errors.New("sync state must be one of local, pending, synced, conflict")
)
