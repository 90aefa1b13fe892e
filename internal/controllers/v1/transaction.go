package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spendsight/backend/internal/httputil"
	"github.com/spendsight/backend/internal/ledger"
	"github.com/spendsight/backend/internal/models"
)

type TransactionResponse struct {
	Data  *Transaction `json:"data"`  // The transaction
	Error *string      `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`  // List of transactions
	Error *string       `json:"error"` // The error, if any occurred
}

// Transaction is the API representation of a ledger transaction.
type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"` // Links for the transaction
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/5e3a7c"` // URL of the transaction
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString("baseURL")

	return Transaction{
		Transaction: model,
		Links: TransactionLinks{
			Self: url + "/v1/transactions/" + model.Fingerprint,
		},
	}
}

// TransactionQueryFilter are the query string filters for the transaction
// list. All filters are optional and combine with AND.
type TransactionQueryFilter struct {
	From          string           `form:"from" example:"2024-03-01"`      // Start of the date range, inclusive
	Until         string           `form:"until" example:"2024-04-01"`     // End of the date range, exclusive
	AccountSource string           `form:"account" example:"chase_credit"` // Account the transaction was imported from
	Category      string           `form:"category" example:"Groceries"`   // Tagged category
	Necessity     models.Necessity `form:"necessity" example:"Need"`       // Tagged necessity
	Frequency     models.Frequency `form:"frequency" example:"Recurring"`  // Tagged frequency
	SyncState     models.SyncState `form:"syncState" example:"pending"`    // Synchronization state
	Swept         *bool            `form:"swept" example:"false"`          // Sweep flag
}

func (f TransactionQueryFilter) toFilter() (ledger.Filter, error) {
	filter := ledger.Filter{
		Swept: f.Swept,
	}

	if f.From != "" {
		from, err := time.Parse("2006-01-02", f.From)
		if err != nil {
			return ledger.Filter{}, errInvalidDate
		}
		filter.From = from
	}

	if f.Until != "" {
		until, err := time.Parse("2006-01-02", f.Until)
		if err != nil {
			return ledger.Filter{}, errInvalidDate
		}
		filter.Until = until
	}

	if f.AccountSource != "" {
		filter.AccountSources = []string{f.AccountSource}
	}

	if f.Category != "" {
		filter.Categories = []string{f.Category}
	}

	if f.Necessity != "" {
		filter.Necessities = []models.Necessity{f.Necessity}
	}

	if f.Frequency != "" {
		filter.Frequencies = []models.Frequency{f.Frequency}
	}

	if f.SyncState != "" {
		filter.SyncStates = []models.SyncState{f.SyncState}
	}

	return filter, nil
}

// RegisterTransactionRoutes registers the routes for transactions.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTransactionList)
	r.GET("", GetTransactions)

	r.OPTIONS("/:fingerprint", OptionsTransactionDetail)
	r.GET("/:fingerprint", GetTransaction)
	r.PATCH("/:fingerprint", UpdateTransaction)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Transactions
// @Success		204
// @Failure		404	{object}	TransactionResponse
// @Param			fingerprint	path	string	true	"Fingerprint of the transaction"
// @Router			/v1/transactions/{fingerprint} [options]
func OptionsTransactionDetail(c *gin.Context) {
	_, err := ledger.NewStore(models.DB).Get(c.Param("fingerprint"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		List transactions
// @Description	Returns transactions matching the filters, ordered by date. The order is stable, re-running the same query against an unchanged ledger returns the same list.
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		500			{object}	TransactionListResponse
// @Param			from		query		string	false	"Start of the date range, inclusive (YYYY-MM-DD)"
// @Param			until		query		string	false	"End of the date range, exclusive (YYYY-MM-DD)"
// @Param			account		query		string	false	"Filter by account source"
// @Param			category	query		string	false	"Filter by category"
// @Param			necessity	query		string	false	"Filter by necessity"
// @Param			frequency	query		string	false	"Filter by frequency"
// @Param			syncState	query		string	false	"Filter by synchronization state"
// @Param			swept		query		bool	false	"Filter by sweep flag"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	var query TransactionQueryFilter
	if err := c.BindQuery(&query); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	filter, err := query.toFilter()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	transactions, err := ledger.NewStore(models.DB).Query(filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	// Empty lists are [], not null
	data := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, newTransaction(c, t))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Get transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			fingerprint	path	string	true	"Fingerprint of the transaction"
// @Router			/v1/transactions/{fingerprint} [get]
func GetTransaction(c *gin.Context) {
	t, err := ledger.NewStore(models.DB).Get(c.Param("fingerprint"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	data := newTransaction(c, t)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Override transaction tags
// @Description	Sets manual tags on a transaction. Only the fields present in the body are changed and each one gets its manual flag set, so automatic rule runs will not overwrite it unless they are forced.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			fingerprint	path		string			true	"Fingerprint of the transaction"
// @Param			override	body		ledger.Override	true	"The tags to override"
// @Router			/v1/transactions/{fingerprint} [patch]
func UpdateTransaction(c *gin.Context) {
	var override ledger.Override
	err := httputil.BindData(c, &override)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	if override.Necessity != nil && !override.Necessity.Valid() {
		s := models.ErrInvalidNecessity.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	if override.Frequency != nil && !override.Frequency.Valid() {
		s := models.ErrInvalidFrequency.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	t, err := ledger.NewStore(models.DB).ApplyOverride(c.Param("fingerprint"), override)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	data := newTransaction(c, t)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}
