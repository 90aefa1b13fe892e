package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/spendsight/backend/internal/httputil"
	"github.com/spendsight/backend/internal/models"
)

type RecurringExpenseResponse struct {
	Data  *RecurringExpense `json:"data"`  // The recurring expense
	Error *string           `json:"error"` // The error, if any occurred
}

type RecurringExpenseListResponse struct {
	Data  []RecurringExpense `json:"data"`  // List of recurring expenses
	Error *string            `json:"error"` // The error, if any occurred
}

type ExpenseLinkResponse struct {
	Data  *ExpenseLinkResult `json:"data"`  // The link result
	Error *string            `json:"error"` // The error, if any occurred
}

type ExpenseTotalsResponse struct {
	Data  *ExpenseTotals `json:"data"`  // Expected totals by cadence
	Error *string        `json:"error"` // The error, if any occurred
}

type ExpensePreviewResponse struct {
	Data  *ExpensePreview `json:"data"`  // The preview result
	Error *string         `json:"error"` // The error, if any occurred
}

// RecurringExpense is the API representation of a recurring expense.
type RecurringExpense struct {
	models.RecurringExpense
	Links RecurringExpenseLinks `json:"links"` // Links for the recurring expense
}

type RecurringExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/recurring-expenses/d1c7"` // URL of the recurring expense
}

func newRecurringExpense(c *gin.Context, model models.RecurringExpense) RecurringExpense {
	url := c.GetString("baseURL")

	return RecurringExpense{
		RecurringExpense: model,
		Links: RecurringExpenseLinks{
			Self: url + "/v1/recurring-expenses/" + model.ID.String(),
		},
	}
}

// RecurringExpenseEditable contains the user-settable fields of a
// recurring expense.
type RecurringExpenseEditable struct {
	Name     string         `json:"name" example:"Rent"`
	Amount   int64          `json:"amount" example:"145000"`               // Expected amount in minor currency units
	Cadence  models.Cadence `json:"cadence" example:"monthly"`             // Defaults to monthly
	Keywords []string       `json:"keywords" example:"acme,property"`      // Transactions must contain all keywords
	Enabled  *bool          `json:"enabled" example:"true"`                // Defaults to true
	Category string         `json:"category" example:"Housing" default:""` // Category for display purposes
}

func (e RecurringExpenseEditable) model() models.RecurringExpense {
	enabled := true
	if e.Enabled != nil {
		enabled = *e.Enabled
	}

	cadence := e.Cadence
	if cadence == "" {
		cadence = models.CadenceMonthly
	}

	return models.RecurringExpense{
		Name:     e.Name,
		Amount:   e.Amount,
		Cadence:  cadence,
		Keywords: e.Keywords,
		Enabled:  enabled,
		Category: e.Category,
	}
}

// RecurringExpenseUpdate contains the patchable fields of a recurring
// expense. Only fields present in the request body are changed.
type RecurringExpenseUpdate struct {
	Name     *string         `json:"name"`
	Amount   *int64          `json:"amount"`
	Cadence  *models.Cadence `json:"cadence"`
	Keywords *[]string       `json:"keywords"`
	Enabled  *bool           `json:"enabled"`
	Category *string         `json:"category"`
}

// ExpenseLinkResult reports how many transactions a link run tagged.
type ExpenseLinkResult struct {
	Linked int `json:"linked" example:"7"` // Number of transactions newly tagged as Recurring
}

// ExpenseTotals sums the expected amounts of all enabled expenses by
// cadence, in minor currency units. MonthlyEquivalent converts weekly
// expenses at 4.33 weeks per month.
type ExpenseTotals struct {
	Weekly            int64 `json:"weekly" example:"4500"`
	Monthly           int64 `json:"monthly" example:"185000"`
	MonthlyEquivalent int64 `json:"monthlyEquivalent" example:"204485"`
}

// ExpensePreviewEditable are the parameters of a match preview.
type ExpensePreviewEditable struct {
	Keywords []string `json:"keywords" example:"acme,property"` // Transactions must contain all keywords
	Limit    int      `json:"limit" example:"10"`               // Maximum number of samples, defaults to 10
}

// ExpensePreview reports which transactions a keyword list would match.
type ExpensePreview struct {
	Count   int             `json:"count" example:"12"` // Total number of matching transactions
	Samples []ExpenseSample `json:"samples"`            // Up to limit sample matches
}

type ExpenseSample struct {
	Description string `json:"description" example:"ACME PROPERTY MGMT"`
	Amount      int64  `json:"amount" example:"145000"`  // Amount in minor currency units
	Date        string `json:"date" example:"2024-07-01"`
	Category    string `json:"category" example:"Housing"`
}

// RegisterRecurringExpenseRoutes registers the routes for recurring
// expenses.
func RegisterRecurringExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsRecurringExpenseList)
	r.GET("", GetRecurringExpenses)
	r.POST("", CreateRecurringExpense)

	r.OPTIONS("/link", OptionsExpenseLink)
	r.POST("/link", LinkRecurringExpenses)

	r.OPTIONS("/totals", OptionsExpenseTotals)
	r.GET("/totals", GetExpenseTotals)

	r.OPTIONS("/preview", OptionsExpensePreview)
	r.POST("/preview", PreviewExpenseMatches)

	r.OPTIONS("/:id", OptionsRecurringExpenseDetail)
	r.GET("/:id", GetRecurringExpense)
	r.PATCH("/:id", UpdateRecurringExpense)
	r.DELETE("/:id", DeleteRecurringExpense)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			RecurringExpenses
// @Success		204
// @Router			/v1/recurring-expenses [options]
func OptionsRecurringExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			RecurringExpenses
// @Success		204
// @Router			/v1/recurring-expenses/link [options]
func OptionsExpenseLink(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			RecurringExpenses
// @Success		204
// @Router			/v1/recurring-expenses/totals [options]
func OptionsExpenseTotals(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			RecurringExpenses
// @Success		204
// @Router			/v1/recurring-expenses/preview [options]
func OptionsExpensePreview(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			RecurringExpenses
// @Success		204
// @Failure		400	{object}	RecurringExpenseResponse
// @Failure		404	{object}	RecurringExpenseResponse
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/recurring-expenses/{id} [options]
func OptionsRecurringExpenseDetail(c *gin.Context) {
	_, err := getRecurringExpenseResource(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &s})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

func getRecurringExpenseResource(c *gin.Context) (models.RecurringExpense, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return models.RecurringExpense{}, httputil.ErrInvalidUUID
	}

	var expense models.RecurringExpense
	err = models.DB.First(&expense, "id = ?", id).Error
	if err != nil {
		return models.RecurringExpense{}, err
	}

	return expense, nil
}

// @Summary		List recurring expenses
// @Tags			RecurringExpenses
// @Produce		json
// @Success		200	{object}	RecurringExpenseListResponse
// @Failure		500	{object}	RecurringExpenseListResponse
// @Router			/v1/recurring-expenses [get]
func GetRecurringExpenses(c *gin.Context) {
	var list []models.RecurringExpense
	err := models.DB.Order("created_at ASC").Find(&list).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseListResponse{Error: &s})
		return
	}

	// Empty lists are [], not null
	data := make([]RecurringExpense, 0, len(list))
	for _, expense := range list {
		data = append(data, newRecurringExpense(c, expense))
	}

	c.JSON(http.StatusOK, RecurringExpenseListResponse{Data: data})
}

// @Summary		Create recurring expense
// @Description	Creates a new recurring expense. The cadence defaults to monthly, empty keywords are dropped.
// @Tags			RecurringExpenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	RecurringExpenseResponse
// @Failure		400		{object}	RecurringExpenseResponse
// @Failure		500		{object}	RecurringExpenseResponse
// @Param			expense	body		RecurringExpenseEditable	true	"The recurring expense to create"
// @Router			/v1/recurring-expenses [post]
func CreateRecurringExpense(c *gin.Context) {
	var editable RecurringExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, RecurringExpenseResponse{Error: &s})
		return
	}

	expense := editable.model()
	if err := models.DB.Create(&expense).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &s})
		return
	}

	data := newRecurringExpense(c, expense)
	c.JSON(http.StatusCreated, RecurringExpenseResponse{Data: &data})
}

// @Summary		Get recurring expense
// @Tags			RecurringExpenses
// @Produce		json
// @Success		200	{object}	RecurringExpenseResponse
// @Failure		400	{object}	RecurringExpenseResponse
// @Failure		404	{object}	RecurringExpenseResponse
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/recurring-expenses/{id} [get]
func GetRecurringExpense(c *gin.Context) {
	expense, err := getRecurringExpenseResource(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &s})
		return
	}

	data := newRecurringExpense(c, expense)
	c.JSON(http.StatusOK, RecurringExpenseResponse{Data: &data})
}

// @Summary		Update recurring expense
// @Description	Changes the fields present in the request body.
// @Tags			RecurringExpenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	RecurringExpenseResponse
// @Failure		400		{object}	RecurringExpenseResponse
// @Failure		404		{object}	RecurringExpenseResponse
// @Param			id		path		string					true	"ID formatted as string"
// @Param			expense	body		RecurringExpenseUpdate	true	"The fields to update"
// @Router			/v1/recurring-expenses/{id} [patch]
func UpdateRecurringExpense(c *gin.Context) {
	expense, err := getRecurringExpenseResource(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &s})
		return
	}

	var update RecurringExpenseUpdate
	if err := httputil.BindData(c, &update); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, RecurringExpenseResponse{Error: &s})
		return
	}

	if update.Name != nil {
		expense.Name = *update.Name
	}
	if update.Amount != nil {
		expense.Amount = *update.Amount
	}
	if update.Cadence != nil {
		expense.Cadence = *update.Cadence
	}
	if update.Keywords != nil {
		expense.Keywords = *update.Keywords
	}
	if update.Enabled != nil {
		expense.Enabled = *update.Enabled
	}
	if update.Category != nil {
		expense.Category = *update.Category
	}

	if err := models.DB.Save(&expense).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &s})
		return
	}

	data := newRecurringExpense(c, expense)
	c.JSON(http.StatusOK, RecurringExpenseResponse{Data: &data})
}

// @Summary		Delete recurring expense
// @Description	Deletes the recurring expense. Frequency tags it already assigned stay on the transactions.
// @Tags			RecurringExpenses
// @Success		204
// @Failure		400	{object}	RecurringExpenseResponse
// @Failure		404	{object}	RecurringExpenseResponse
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/recurring-expenses/{id} [delete]
func DeleteRecurringExpense(c *gin.Context) {
	expense, err := getRecurringExpenseResource(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &s})
		return
	}

	if err := models.DB.Delete(&expense).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &s})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Link recurring expenses
// @Description	Tags every transaction matching an enabled recurring expense with the Recurring frequency. Manual frequency overrides are kept; changed transactions that were already synced move back to pending.
// @Tags			RecurringExpenses
// @Produce		json
// @Success		200	{object}	ExpenseLinkResponse
// @Failure		500	{object}	ExpenseLinkResponse
// @Router			/v1/recurring-expenses/link [post]
func LinkRecurringExpenses(c *gin.Context) {
	result, err := linkExpenses()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseLinkResponse{Error: &s})
		return
	}

	log.Info().Int("linked", result.Linked).Msg("expense link run finished")

	c.JSON(http.StatusOK, ExpenseLinkResponse{Data: &result})
}

func linkExpenses() (ExpenseLinkResult, error) {
	var result ExpenseLinkResult

	var expenses []models.RecurringExpense
	err := models.DB.Where(&models.RecurringExpense{Enabled: true}, "Enabled").Find(&expenses).Error
	if err != nil {
		return result, err
	}

	var transactions []models.Transaction
	err = models.DB.Find(&transactions).Error
	if err != nil {
		return result, err
	}

	for i := range transactions {
		t := &transactions[i]
		if t.FrequencyManual || t.Frequency == models.FrequencyRecurring {
			continue
		}

		for _, expense := range expenses {
			if !expense.Matches(t.Description) {
				continue
			}

			t.Frequency = models.FrequencyRecurring
			t.MarkEdited()
			if err := models.DB.Save(t).Error; err != nil {
				return result, err
			}

			result.Linked++
			break
		}
	}

	return result, nil
}

// weeksPerMonth approximates the number of weeks in a month when
// converting weekly expenses to a monthly equivalent.
var weeksPerMonth = decimal.RequireFromString("4.33")

// @Summary		Expected totals
// @Description	Sums the expected amounts of all enabled recurring expenses by cadence. The monthly equivalent converts weekly expenses at 4.33 weeks per month, rounded to whole minor units.
// @Tags			RecurringExpenses
// @Produce		json
// @Success		200	{object}	ExpenseTotalsResponse
// @Failure		500	{object}	ExpenseTotalsResponse
// @Router			/v1/recurring-expenses/totals [get]
func GetExpenseTotals(c *gin.Context) {
	var expenses []models.RecurringExpense
	err := models.DB.Where(&models.RecurringExpense{Enabled: true}, "Enabled").Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseTotalsResponse{Error: &s})
		return
	}

	var totals ExpenseTotals
	for _, expense := range expenses {
		switch expense.Cadence {
		case models.CadenceWeekly:
			totals.Weekly += expense.Amount
		case models.CadenceMonthly:
			totals.Monthly += expense.Amount
		}
	}

	totals.MonthlyEquivalent = decimal.NewFromInt(totals.Weekly).
		Mul(weeksPerMonth).
		Add(decimal.NewFromInt(totals.Monthly)).
		Round(0).
		IntPart()

	c.JSON(http.StatusOK, ExpenseTotalsResponse{Data: &totals})
}

// @Summary		Preview keyword matches
// @Description	Reports which transactions a keyword list would match, without changing anything. Useful to try keywords before saving an expense.
// @Tags			RecurringExpenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpensePreviewResponse
// @Failure		400		{object}	ExpensePreviewResponse
// @Failure		500		{object}	ExpensePreviewResponse
// @Param			preview	body		ExpensePreviewEditable	true	"The keywords to preview"
// @Router			/v1/recurring-expenses/preview [post]
func PreviewExpenseMatches(c *gin.Context) {
	var editable ExpensePreviewEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpensePreviewResponse{Error: &s})
		return
	}

	limit := editable.Limit
	if limit <= 0 {
		limit = 10
	}

	// A throwaway expense carries the matching logic, it is never stored
	matcher := models.RecurringExpense{Keywords: editable.Keywords, Enabled: true}

	preview := ExpensePreview{Samples: make([]ExpenseSample, 0, limit)}

	if len(editable.Keywords) == 0 {
		c.JSON(http.StatusOK, ExpensePreviewResponse{Data: &preview})
		return
	}

	var transactions []models.Transaction
	err := models.DB.Order("date ASC, fingerprint ASC").Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpensePreviewResponse{Error: &s})
		return
	}

	for _, t := range transactions {
		if !matcher.Matches(t.Description) {
			continue
		}

		preview.Count++
		if len(preview.Samples) < limit {
			preview.Samples = append(preview.Samples, ExpenseSample{
				Description: t.Description,
				Amount:      t.Amount,
				Date:        t.Date.Format("2006-01-02"),
				Category:    t.Category,
			})
		}
	}

	c.JSON(http.StatusOK, ExpensePreviewResponse{Data: &preview})
}
