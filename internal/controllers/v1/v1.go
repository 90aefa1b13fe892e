// Package v1 implements the v1 API of the Spendsight backend.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendsight/backend/internal/aggregate"
	"github.com/spendsight/backend/internal/httputil"
	syncpkg "github.com/spendsight/backend/internal/sync"
)

// Package level collaborators, set once at startup via Configure. The
// database is reachable through models.DB, these two carry the remote
// row store and the period configuration.
var (
	remote     syncpkg.RowStore
	aggregator *aggregate.Aggregator
)

// Configure wires the external collaborators for the v1 handlers.
func Configure(store syncpkg.RowStore, agg *aggregate.Aggregator) {
	remote = store
	aggregator = agg
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is
// passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetV1)
	r.OPTIONS("", OptionsV1)

	RegisterImportRoutes(r.Group("/import"))
	RegisterTransactionRoutes(r.Group("/transactions"))
	RegisterRuleRoutes(r.Group("/rules"))
	RegisterRecurringExpenseRoutes(r.Group("/recurring-expenses"))
	RegisterSyncRoutes(r.Group("/sync"))
	RegisterPeriodRoutes(r.Group("/periods"))
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Import            string `json:"import" example:"https://example.com/api/v1/import"`                        // URL of the import endpoint
	Transactions      string `json:"transactions" example:"https://example.com/api/v1/transactions"`            // URL of the transaction endpoints
	Rules             string `json:"rules" example:"https://example.com/api/v1/rules"`                          // URL of the rule endpoints
	RecurringExpenses string `json:"recurringExpenses" example:"https://example.com/api/v1/recurring-expenses"` // URL of the recurring expense endpoints
	Sync              string `json:"sync" example:"https://example.com/api/v1/sync"`                            // URL of the sync endpoints
	Periods           string `json:"periods" example:"https://example.com/api/v1/periods"`                      // URL of the budget period endpoints
}

// @Summary		v1 API overview
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString("baseURL")

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Import:            url + "/v1/import",
			Transactions:      url + "/v1/transactions",
			Rules:             url + "/v1/rules",
			RecurringExpenses: url + "/v1/recurring-expenses",
			Sync:              url + "/v1/sync",
			Periods:           url + "/v1/periods",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
