package v1_test

import (
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spendsight/backend/internal/controllers/v1"
	"github.com/spendsight/backend/internal/models"
	"github.com/spendsight/backend/test"
)

// createTestRule creates a rule via the API. Defaults to expecting 201.
func (suite *TestSuiteStandard) createTestRule(editable v1.RuleEditable, expectedStatus ...int) v1.RuleResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/rules", editable)
	test.AssertHTTPStatus(suite.T(), expectedStatus[0], &r)

	var response v1.RuleResponse
	test.DecodeResponse(suite.T(), &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestOptionsRules() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/rules", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/rules/run", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsRuleDetail() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/rules/NotParseableAsUUID", "")
	assert.Equal(suite.T(), http.StatusBadRequest, r.Code)

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/rules/5b95e1a9-522d-4a36-9074-32f7c2ff0513", "")
	assert.Equal(suite.T(), http.StatusNotFound, r.Code)

	rule := suite.createTestRule(v1.RuleEditable{Dimension: models.DimensionCategory, Match: "netflix", Value: "Streaming", Priority: 10})
	r = test.Request(suite.T(), http.MethodOptions, rule.Data.Links.Self, "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateRule() {
	response := suite.createTestRule(v1.RuleEditable{
		Dimension: models.DimensionCategory,
		Match:     "whole foods",
		Value:     "Groceries",
		Priority:  10,
		Title:     "Groceries",
	})

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), "whole foods", response.Data.Match)
	assert.True(suite.T(), response.Data.Enabled, "Rules are enabled unless the request says otherwise")
	assert.Contains(suite.T(), response.Data.Links.Self, "/v1/rules/")
}

func (suite *TestSuiteStandard) TestCreateRuleInvalid() {
	// Unknown dimension
	suite.createTestRule(v1.RuleEditable{Dimension: "color", Match: "x", Value: "Red", Priority: 1}, http.StatusBadRequest)

	// Empty match
	suite.createTestRule(v1.RuleEditable{Dimension: models.DimensionCategory, Value: "Groceries", Priority: 1}, http.StatusBadRequest)

	// Invalid body
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/rules", `{ not json`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestCreateRulePriorityZeroReserved() {
	suite.createTestRule(v1.RuleEditable{Dimension: models.DimensionCategory, Match: "netflix", Value: "Streaming", Priority: 0})

	response := suite.createTestRule(v1.RuleEditable{Dimension: models.DimensionCategory, Match: "spotify", Value: "Streaming", Priority: 0}, http.StatusConflict)
	suite.Require().NotNil(response.Error)

	// Another dimension may still use priority 0
	suite.createTestRule(v1.RuleEditable{Dimension: models.DimensionNecessity, Match: "netflix", Value: "Want", Priority: 0})
}

func (suite *TestSuiteStandard) TestGetRulesOrdered() {
	suite.createTestRule(v1.RuleEditable{Dimension: models.DimensionCategory, Match: "later", Value: "B", Priority: 20})
	suite.createTestRule(v1.RuleEditable{Dimension: models.DimensionCategory, Match: "first", Value: "A", Priority: 5})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/rules", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.RuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	assert.Equal(suite.T(), "first", response.Data[0].Match, "Rules are returned in evaluation order")
	assert.Equal(suite.T(), "later", response.Data[1].Match)
}

func (suite *TestSuiteStandard) TestGetRulesEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/rules", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	assert.Contains(suite.T(), r.Body.String(), `"data":[]`)
}

func (suite *TestSuiteStandard) TestUpdateRule() {
	rule := suite.createTestRule(v1.RuleEditable{Dimension: models.DimensionCategory, Match: "netflix", Value: "Streaming", Priority: 10})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{"priority": 3, "title": "Netflix"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.RuleResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), uint(3), response.Data.Priority)
	assert.Equal(suite.T(), "Netflix", response.Data.Title)

	// Fields not in the body are unchanged
	assert.Equal(suite.T(), "netflix", response.Data.Match)
	assert.Equal(suite.T(), "Streaming", response.Data.Value)
}

func (suite *TestSuiteStandard) TestUpdateRulePriorityZeroReserved() {
	suite.createTestRule(v1.RuleEditable{Dimension: models.DimensionCategory, Match: "netflix", Value: "Streaming", Priority: 0})
	rule := suite.createTestRule(v1.RuleEditable{Dimension: models.DimensionCategory, Match: "spotify", Value: "Streaming", Priority: 10})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{"priority": 0})
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &r)
}

func (suite *TestSuiteStandard) TestDeleteRule() {
	rule := suite.createTestRule(v1.RuleEditable{Dimension: models.DimensionCategory, Match: "netflix", Value: "Streaming", Priority: 10})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestDeleteRuleNotFound() {
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/rules/5b95e1a9-522d-4a36-9074-32f7c2ff0513", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestRunRules() {
	suite.transaction(models.Transaction{
		Fingerprint: "fp-netflix", Date: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		Amount: 1403, Description: "NETFLIX.COM", AccountSource: "chase_credit",
	})
	suite.transaction(models.Transaction{
		Fingerprint: "fp-groceries", Date: time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC),
		Amount: 8219, Description: "WHOLEFDS MKT 10259", AccountSource: "chase_credit",
	})

	suite.createTestRule(v1.RuleEditable{Dimension: models.DimensionCategory, Match: "netflix", Value: "Streaming", Priority: 10})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/rules/run", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.RuleRunResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), 2, response.Data.Evaluated)
	assert.Equal(suite.T(), 1, response.Data.Changed)
	assert.Equal(suite.T(), 0, response.Data.Swept)
}

func (suite *TestSuiteStandard) TestRunRulesForceClearsOverrides() {
	t := suite.transaction(models.Transaction{
		Fingerprint: "fp-netflix", Date: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		Amount: 1403, Description: "NETFLIX.COM", AccountSource: "chase_credit",
	})
	suite.createTestRule(v1.RuleEditable{Dimension: models.DimensionCategory, Match: "netflix", Value: "Streaming", Priority: 10})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/transactions/"+t.Fingerprint,
		map[string]any{"category": "Entertainment"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	// A normal run keeps the manual override
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/rules/run", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var after v1.TransactionResponse
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/"+t.Fingerprint, "")
	test.DecodeResponse(suite.T(), &r, &after)
	assert.Equal(suite.T(), "Entertainment", after.Data.Category)

	// A forced run reapplies the rules
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/rules/run?force=true", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/"+t.Fingerprint, "")
	test.DecodeResponse(suite.T(), &r, &after)
	assert.Equal(suite.T(), "Streaming", after.Data.Category)
	assert.False(suite.T(), after.Data.CategoryManual)
}
