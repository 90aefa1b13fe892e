package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/spendsight/backend/internal/httputil"
	"github.com/spendsight/backend/internal/models"
	syncpkg "github.com/spendsight/backend/internal/sync"
)

type SyncResponse struct {
	Data  *syncpkg.Result `json:"data"`  // The result of the sync run
	Error *string         `json:"error"` // The error, if any occurred
}

type ConflictListResponse struct {
	Data  []syncpkg.Conflict `json:"data"`  // Transactions currently in conflict
	Error *string            `json:"error"` // The error, if any occurred
}

// ResolutionEditable selects which side of a conflict wins.
type ResolutionEditable struct {
	Resolution string `json:"resolution" example:"local"` // "local" pushes the local version, "remote" adopts the remote one
}

// RegisterSyncRoutes registers the routes for synchronization.
func RegisterSyncRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSync)
	r.POST("", Sync)

	r.OPTIONS("/full", OptionsSyncFull)
	r.POST("/full", FullResync)

	r.OPTIONS("/conflicts", OptionsSyncConflicts)
	r.GET("/conflicts", GetConflicts)

	r.OPTIONS("/conflicts/:fingerprint", OptionsSyncConflictDetail)
	r.POST("/conflicts/:fingerprint", ResolveConflict)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Sync
// @Success		204
// @Router			/v1/sync [options]
func OptionsSync(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Sync
// @Success		204
// @Router			/v1/sync/full [options]
func OptionsSyncFull(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Sync
// @Success		204
// @Router			/v1/sync/conflicts [options]
func OptionsSyncConflicts(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Sync
// @Success		204
// @Param			fingerprint	path	string	true	"Fingerprint of the transaction"
// @Router			/v1/sync/conflicts/{fingerprint} [options]
func OptionsSyncConflictDetail(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Synchronize with the remote sheet
// @Description	Pushes all unsynced transactions to the remote sheet, one row per transaction, keyed by fingerprint. Rows whose remote version changed since the last sync are marked as conflicts and skipped. When the remote fails mid-run, already pushed rows stay synced and the rest stays pending for the next run.
// @Tags			Sync
// @Produce		json
// @Success		200	{object}	SyncResponse
// @Failure		502	{object}	SyncResponse
// @Router			/v1/sync [post]
func Sync(c *gin.Context) {
	result, err := syncpkg.NewReconciler(models.DB, remote).Sync(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SyncResponse{Error: &s})
		return
	}

	log.Info().
		Int("synced", result.Synced).
		Int("remaining", result.Remaining).
		Int("conflicts", len(result.Conflicts)).
		Msg("sync finished")

	c.JSON(http.StatusOK, SyncResponse{Data: &result})
}

// @Summary		Full resync
// @Description	Reconciles the whole ledger against the remote sheet. Remote rows unknown to the ledger are pulled in, rows that exist on both sides are merged field by field with local edits winning, then all remaining unsynced rows are pushed.
// @Tags			Sync
// @Produce		json
// @Success		200	{object}	SyncResponse
// @Failure		502	{object}	SyncResponse
// @Router			/v1/sync/full [post]
func FullResync(c *gin.Context) {
	result, err := syncpkg.NewReconciler(models.DB, remote).FullResync(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SyncResponse{Error: &s})
		return
	}

	log.Info().
		Int("synced", result.Synced).
		Int("pulled", result.Pulled).
		Int("remaining", result.Remaining).
		Int("conflicts", len(result.Conflicts)).
		Msg("full resync finished")

	c.JSON(http.StatusOK, SyncResponse{Data: &result})
}

// @Summary		List conflicts
// @Description	Returns all transactions in conflict state together with their current remote version.
// @Tags			Sync
// @Produce		json
// @Success		200	{object}	ConflictListResponse
// @Failure		502	{object}	ConflictListResponse
// @Router			/v1/sync/conflicts [get]
func GetConflicts(c *gin.Context) {
	conflicts, err := syncpkg.NewReconciler(models.DB, remote).Conflicts(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ConflictListResponse{Error: &s})
		return
	}

	if conflicts == nil {
		// An empty list, not null
		conflicts = make([]syncpkg.Conflict, 0)
	}

	c.JSON(http.StatusOK, ConflictListResponse{Data: conflicts})
}

// @Summary		Resolve conflict
// @Description	Resolves a conflict by either pushing the local version to the remote sheet or adopting the remote version into the ledger.
// @Tags			Sync
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		409			{object}	TransactionResponse
// @Failure		502			{object}	TransactionResponse
// @Param			fingerprint	path		string				true	"Fingerprint of the transaction"
// @Param			resolution	body		ResolutionEditable	true	"The side that wins"
// @Router			/v1/sync/conflicts/{fingerprint} [post]
func ResolveConflict(c *gin.Context) {
	var editable ResolutionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	var keepLocal bool
	switch editable.Resolution {
	case "local":
		keepLocal = true
	case "remote":
		keepLocal = false
	default:
		s := errInvalidResolution.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	t, err := syncpkg.NewReconciler(models.DB, remote).Resolve(c.Request.Context(), c.Param("fingerprint"), keepLocal)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	data := newTransaction(c, t)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}
