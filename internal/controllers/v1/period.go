package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/spendsight/backend/internal/aggregate"
	"github.com/spendsight/backend/internal/httputil"
	"github.com/spendsight/backend/internal/types"
)

type BudgetPeriodResponse struct {
	Data  *BudgetPeriod `json:"data"`  // The budget period report
	Error *string       `json:"error"` // The error, if any occurred
}

// BudgetPeriod is the API representation of a budget period report.
type BudgetPeriod struct {
	aggregate.BudgetPeriod
	Links BudgetPeriodLinks `json:"links"` // Links for the budget period
}

type BudgetPeriodLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/periods/monthly/2024-07"`     // URL of the period
	Previous string `json:"previous" example:"https://example.com/api/v1/periods/monthly/2024-06"` // URL of the preceding period
	Next     string `json:"next" example:"https://example.com/api/v1/periods/monthly/2024-08"`     // URL of the following period
}

func newBudgetPeriod(c *gin.Context, period types.Period, report aggregate.BudgetPeriod) BudgetPeriod {
	url := fmt.Sprintf("%s/v1/periods/%s/", c.GetString("baseURL"), period.Granularity())

	return BudgetPeriod{
		BudgetPeriod: report,
		Links: BudgetPeriodLinks{
			Self:     url + period.Key(),
			Previous: url + period.Previous().Key(),
			Next:     url + period.Next().Key(),
		},
	}
}

// PeriodConfigEditable contains the user-settable fields of a budget
// period. The body replaces the stored configuration: a null or omitted
// budget limit removes the limit.
type PeriodConfigEditable struct {
	// BudgetLimit is the spending limit in major units.
	BudgetLimit *decimal.Decimal `json:"budgetLimit" example:"1200.50"`

	Note string `json:"note" example:"Vacation month"`
}

// RegisterPeriodRoutes registers the routes for budget periods.
func RegisterPeriodRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPeriodList)
	r.GET("", GetCurrentPeriods)

	r.OPTIONS("/:granularity/:key", OptionsPeriodDetail)
	r.GET("/:granularity/:key", GetPeriod)
	r.PATCH("/:granularity/:key", UpdatePeriod)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Periods
// @Success		204
// @Router			/v1/periods [options]
func OptionsPeriodList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Periods
// @Success		204
// @Failure		400	{object}	BudgetPeriodResponse
// @Param			granularity	path	string	true	"weekly or monthly"
// @Param			key			path	string	true	"Period key, YYYY-MM or YYYY-MM-DD"
// @Router			/v1/periods/{granularity}/{key} [options]
func OptionsPeriodDetail(c *gin.Context) {
	_, err := periodFromPath(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetPeriodResponse{Error: &s})
		return
	}

	httputil.OptionsGetPatch(c)
}

// periodFromPath resolves the period addressed by the request path. A
// weekly key that does not fall on the configured week start is
// normalized to the period containing it.
func periodFromPath(c *gin.Context) (types.Period, error) {
	granularity, err := types.ParseGranularity(c.Param("granularity"))
	if err != nil {
		return types.Period{}, err
	}

	period, err := types.ParsePeriod(c.Param("key"), granularity)
	if err != nil {
		return types.Period{}, errInvalidPeriodKey
	}

	return aggregator.PeriodOf(period.Start(), granularity), nil
}

type CurrentPeriodsResponse struct {
	Data  *CurrentPeriods `json:"data"`  // Links to the current periods
	Error *string         `json:"error"` // The error, if any occurred
}

type CurrentPeriods struct {
	Monthly string `json:"monthly" example:"https://example.com/api/v1/periods/monthly/2024-07"`   // URL of the current monthly period
	Weekly  string `json:"weekly" example:"https://example.com/api/v1/periods/weekly/2024-07-01"`  // URL of the current weekly period
	Date    string `json:"date" example:"https://example.com/api/v1/periods/monthly/{YYYY-MM-DD}"` // URL template to look up a period by date
}

// PeriodQuery selects the date the period overview is computed for.
type PeriodQuery struct {
	Date string `form:"date" example:"2024-07-15"` // Defaults to today
}

// @Summary		Current periods
// @Description	Returns links to the periods containing the given date, defaulting to today.
// @Tags			Periods
// @Produce		json
// @Success		200		{object}	CurrentPeriodsResponse
// @Failure		400		{object}	CurrentPeriodsResponse
// @Param			date	query		string	false	"Date to look up (YYYY-MM-DD), defaults to today"
// @Router			/v1/periods [get]
func GetCurrentPeriods(c *gin.Context) {
	var query PeriodQuery
	if err := c.BindQuery(&query); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, CurrentPeriodsResponse{Error: &s})
		return
	}

	date := time.Now().In(time.UTC)
	if query.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", query.Date)
		if err != nil {
			s := errInvalidDate.Error()
			c.JSON(http.StatusBadRequest, CurrentPeriodsResponse{Error: &s})
			return
		}
	}

	url := c.GetString("baseURL") + "/v1/periods/"

	c.JSON(http.StatusOK, CurrentPeriodsResponse{
		Data: &CurrentPeriods{
			Monthly: url + "monthly/" + aggregator.PeriodOf(date, types.Monthly).Key(),
			Weekly:  url + "weekly/" + aggregator.PeriodOf(date, types.Weekly).Key(),
			Date:    url + "monthly/{YYYY-MM-DD}",
		},
	})
}

// @Summary		Get budget period
// @Description	Returns the report for the period: totals computed from the ledger plus the user-set budget limit and note. Swept transactions are excluded from all totals. A weekly key that is not a week start resolves to the week containing it.
// @Tags			Periods
// @Produce		json
// @Success		200	{object}	BudgetPeriodResponse
// @Failure		400	{object}	BudgetPeriodResponse
// @Failure		500	{object}	BudgetPeriodResponse
// @Param			granularity	path	string	true	"weekly or monthly"
// @Param			key			path	string	true	"Period key, YYYY-MM or YYYY-MM-DD"
// @Router			/v1/periods/{granularity}/{key} [get]
func GetPeriod(c *gin.Context) {
	period, err := periodFromPath(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetPeriodResponse{Error: &s})
		return
	}

	report, err := aggregator.Aggregate(period)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{Error: &s})
		return
	}

	data := newBudgetPeriod(c, period, report)
	c.JSON(http.StatusOK, BudgetPeriodResponse{Data: &data})
}

// @Summary		Update budget period
// @Description	Sets the budget limit and note for the period. The body replaces the stored configuration; the derived totals are not affected.
// @Tags			Periods
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetPeriodResponse
// @Failure		400		{object}	BudgetPeriodResponse
// @Failure		500		{object}	BudgetPeriodResponse
// @Param			granularity	path	string					true	"weekly or monthly"
// @Param			key			path	string					true	"Period key, YYYY-MM or YYYY-MM-DD"
// @Param			period		body	PeriodConfigEditable	true	"The fields to update"
// @Router			/v1/periods/{granularity}/{key} [patch]
func UpdatePeriod(c *gin.Context) {
	period, err := periodFromPath(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetPeriodResponse{Error: &s})
		return
	}

	var editable PeriodConfigEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetPeriodResponse{Error: &s})
		return
	}

	if _, err := aggregator.SetConfig(period, editable.BudgetLimit, editable.Note); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{Error: &s})
		return
	}

	report, err := aggregator.Aggregate(period)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{Error: &s})
		return
	}

	data := newBudgetPeriod(c, period, report)
	c.JSON(http.StatusOK, BudgetPeriodResponse{Data: &data})
}
