package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/spendsight/backend/internal/httputil"
	"github.com/spendsight/backend/internal/models"
	"github.com/spendsight/backend/internal/rules"
)

type RuleResponse struct {
	Data  *Rule   `json:"data"`  // The rule
	Error *string `json:"error"` // The error, if any occurred
}

type RuleListResponse struct {
	Data  []Rule  `json:"data"`  // List of rules
	Error *string `json:"error"` // The error, if any occurred
}

type RuleRunResponse struct {
	Data  *rules.RunStats `json:"data"`  // Statistics of the rule run
	Error *string         `json:"error"` // The error, if any occurred
}

// Rule is the API representation of a tagging rule.
type Rule struct {
	models.Rule
	Links RuleLinks `json:"links"` // Links for the rule
}

type RuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/rules/a3b1"` // URL of the rule
}

func newRule(c *gin.Context, model models.Rule) Rule {
	url := c.GetString("baseURL")

	return Rule{
		Rule: model,
		Links: RuleLinks{
			Self: url + "/v1/rules/" + model.ID.String(),
		},
	}
}

// RuleEditable contains the user-settable fields of a rule.
type RuleEditable struct {
	Dimension models.Dimension `json:"dimension" example:"frequency"`
	Match     string           `json:"match" example:"netflix"`      // Case-insensitive substring; * wildcards are supported
	Value     string           `json:"value" example:"Subscription"` // Tag to assign; unused for sweep rules
	Priority  uint             `json:"priority" example:"10"`        // Evaluation order, lower wins. Priority 0 is reserved
	Title     string           `json:"title" example:"Streaming"`    // Optional human readable label
	Enabled   *bool            `json:"enabled" example:"true"`       // Defaults to true
}

func (r RuleEditable) model() models.Rule {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}

	return models.Rule{
		Dimension: r.Dimension,
		Match:     r.Match,
		Value:     r.Value,
		Priority:  r.Priority,
		Title:     r.Title,
		Enabled:   enabled,
	}
}

// RuleUpdate contains the patchable fields of a rule. Only fields present
// in the request body are changed.
type RuleUpdate struct {
	Dimension *models.Dimension `json:"dimension"`
	Match     *string           `json:"match"`
	Value     *string           `json:"value"`
	Priority  *uint             `json:"priority"`
	Title     *string           `json:"title"`
	Enabled   *bool             `json:"enabled"`
}

// RegisterRuleRoutes registers the routes for rules.
func RegisterRuleRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsRuleList)
	r.GET("", GetRules)
	r.POST("", CreateRule)

	r.OPTIONS("/run", OptionsRuleRun)
	r.POST("/run", RunRules)

	r.OPTIONS("/:id", OptionsRuleDetail)
	r.GET("/:id", GetRule)
	r.PATCH("/:id", UpdateRule)
	r.DELETE("/:id", DeleteRule)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Rules
// @Success		204
// @Router			/v1/rules [options]
func OptionsRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Rules
// @Success		204
// @Router			/v1/rules/run [options]
func OptionsRuleRun(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Rules
// @Success		204
// @Failure		400	{object}	RuleResponse
// @Failure		404	{object}	RuleResponse
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/rules/{id} [options]
func OptionsRuleDetail(c *gin.Context) {
	_, err := getRuleResource(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RuleResponse{Error: &s})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

func getRuleResource(c *gin.Context) (models.Rule, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return models.Rule{}, httputil.ErrInvalidUUID
	}

	var rule models.Rule
	err = models.DB.First(&rule, "id = ?", id).Error
	if err != nil {
		return models.Rule{}, err
	}

	return rule, nil
}

// @Summary		List rules
// @Description	Returns all rules ordered by priority, then creation time. This is the order in which a rule run evaluates them.
// @Tags			Rules
// @Produce		json
// @Success		200	{object}	RuleListResponse
// @Failure		500	{object}	RuleListResponse
// @Router			/v1/rules [get]
func GetRules(c *gin.Context) {
	var list []models.Rule
	err := models.DB.Order("priority ASC, created_at ASC").Find(&list).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RuleListResponse{Error: &s})
		return
	}

	// Empty lists are [], not null
	data := make([]Rule, 0, len(list))
	for _, rule := range list {
		data = append(data, newRule(c, rule))
	}

	c.JSON(http.StatusOK, RuleListResponse{Data: data})
}

// @Summary		Create rule
// @Description	Creates a new rule. Creating a second active priority 0 rule on the same dimension is rejected, priority 0 is reserved for user overrides.
// @Tags			Rules
// @Accept			json
// @Produce		json
// @Success		201		{object}	RuleResponse
// @Failure		400		{object}	RuleResponse
// @Failure		409		{object}	RuleResponse
// @Failure		500		{object}	RuleResponse
// @Param			rule	body		RuleEditable	true	"The rule to create"
// @Router			/v1/rules [post]
func CreateRule(c *gin.Context) {
	var editable RuleEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, RuleResponse{Error: &s})
		return
	}

	rule := editable.model()
	if err := models.DB.Create(&rule).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), RuleResponse{Error: &s})
		return
	}

	data := newRule(c, rule)
	c.JSON(http.StatusCreated, RuleResponse{Data: &data})
}

// @Summary		Get rule
// @Tags			Rules
// @Produce		json
// @Success		200	{object}	RuleResponse
// @Failure		400	{object}	RuleResponse
// @Failure		404	{object}	RuleResponse
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/rules/{id} [get]
func GetRule(c *gin.Context) {
	rule, err := getRuleResource(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RuleResponse{Error: &s})
		return
	}

	data := newRule(c, rule)
	c.JSON(http.StatusOK, RuleResponse{Data: &data})
}

// @Summary		Update rule
// @Description	Changes the fields present in the request body. The priority 0 reservation is enforced on update, too.
// @Tags			Rules
// @Accept			json
// @Produce		json
// @Success		200		{object}	RuleResponse
// @Failure		400		{object}	RuleResponse
// @Failure		404		{object}	RuleResponse
// @Failure		409		{object}	RuleResponse
// @Param			id		path		string		true	"ID formatted as string"
// @Param			rule	body		RuleUpdate	true	"The fields to update"
// @Router			/v1/rules/{id} [patch]
func UpdateRule(c *gin.Context) {
	rule, err := getRuleResource(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RuleResponse{Error: &s})
		return
	}

	var update RuleUpdate
	if err := httputil.BindData(c, &update); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, RuleResponse{Error: &s})
		return
	}

	if update.Dimension != nil {
		rule.Dimension = *update.Dimension
	}
	if update.Match != nil {
		rule.Match = *update.Match
	}
	if update.Value != nil {
		rule.Value = *update.Value
	}
	if update.Priority != nil {
		rule.Priority = *update.Priority
	}
	if update.Title != nil {
		rule.Title = *update.Title
	}
	if update.Enabled != nil {
		rule.Enabled = *update.Enabled
	}

	if err := models.DB.Save(&rule).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), RuleResponse{Error: &s})
		return
	}

	data := newRule(c, rule)
	c.JSON(http.StatusOK, RuleResponse{Data: &data})
}

// @Summary		Delete rule
// @Description	Deletes the rule. Tags it already assigned stay on the transactions until the next rule run.
// @Tags			Rules
// @Success		204
// @Failure		400	{object}	RuleResponse
// @Failure		404	{object}	RuleResponse
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/rules/{id} [delete]
func DeleteRule(c *gin.Context) {
	rule, err := getRuleResource(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RuleResponse{Error: &s})
		return
	}

	if err := models.DB.Delete(&rule).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), RuleResponse{Error: &s})
		return
	}

	c.Status(http.StatusNoContent)
}

// RuleRunQuery are the query string options for a rule run.
type RuleRunQuery struct {
	// Force clears manual overrides before reapplying the rules.
	Force bool `form:"force" example:"false"`
}

// @Summary		Run all rules
// @Description	Applies the current rule list to every transaction in the ledger. Tags assigned by earlier runs are recomputed, manual overrides are kept unless force is set. Changed transactions that were already synced move back to pending.
// @Tags			Rules
// @Produce		json
// @Success		200		{object}	RuleRunResponse
// @Failure		400		{object}	RuleRunResponse
// @Failure		500		{object}	RuleRunResponse
// @Param			force	query		bool	false	"Clear manual overrides before reapplying"
// @Router			/v1/rules/run [post]
func RunRules(c *gin.Context) {
	var query RuleRunQuery
	if err := c.BindQuery(&query); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, RuleRunResponse{Error: &s})
		return
	}

	snapshot, err := rules.LoadSnapshot(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RuleRunResponse{Error: &s})
		return
	}

	stats, err := rules.Run(models.DB, snapshot, query.Force)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RuleRunResponse{Error: &s})
		return
	}

	log.Info().
		Bool("force", query.Force).
		Int("evaluated", stats.Evaluated).
		Int("changed", stats.Changed).
		Int("swept", stats.Swept).
		Msg("rule run finished")

	c.JSON(http.StatusOK, RuleRunResponse{Data: &stats})
}
