package v1

import (
	"errors"
	"net/http"

	"github.com/spendsight/backend/internal/models"
	syncpkg "github.com/spendsight/backend/internal/sync"
)

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, models.ErrFingerprintCollision) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrRuleConflict) || errors.Is(err, syncpkg.ErrNotInConflict) {
		return http.StatusConflict
	}

	if errors.Is(err, models.ErrSyncFailure) {
		return http.StatusBadGateway
	}

	return http.StatusBadRequest
}

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)

// Sync errors
var (
	errInvalidResolution = errors.New("the resolution must be either local or remote")
)

// Period errors
var (
	errInvalidPeriodKey = errors.New("the period key must be YYYY-MM for monthly and YYYY-MM-DD for weekly periods")
	errInvalidDate      = errors.New("the date parameter must be a date in the format YYYY-MM-DD")
)
