package v1_test

import (
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spendsight/backend/internal/controllers/v1"
	"github.com/spendsight/backend/internal/models"
	"github.com/spendsight/backend/test"
)

func (suite *TestSuiteStandard) createTestExpense(editable v1.RecurringExpenseEditable, expectedStatus ...int) v1.RecurringExpenseResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring-expenses", editable)
	test.AssertHTTPStatus(suite.T(), expectedStatus[0], &r)

	var response v1.RecurringExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestOptionsRecurringExpenseList() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/recurring-expenses", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsRecurringExpenseDetail() {
	expense := suite.createTestExpense(v1.RecurringExpenseEditable{Name: "Rent", Amount: 145000})
	suite.Require().NotNil(expense.Data)

	r := test.Request(suite.T(), http.MethodOptions, expense.Data.Links.Self, "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/recurring-expenses/d19a622f-broken", "")
	assert.Equal(suite.T(), http.StatusBadRequest, r.Code)
}

func (suite *TestSuiteStandard) TestCreateRecurringExpense() {
	response := suite.createTestExpense(v1.RecurringExpenseEditable{
		Name:     "Rent",
		Amount:   145000,
		Keywords: []string{"acme", "property"},
		Category: "Housing",
	})

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), "Rent", response.Data.Name)
	assert.Equal(suite.T(), int64(145000), response.Data.Amount)

	// Cadence defaults to monthly, enabled to true
	assert.Equal(suite.T(), models.CadenceMonthly, response.Data.Cadence)
	assert.True(suite.T(), response.Data.Enabled)
}

func (suite *TestSuiteStandard) TestCreateRecurringExpenseInvalid() {
	response := suite.createTestExpense(v1.RecurringExpenseEditable{
		Name:    "Gym",
		Amount:  4500,
		Cadence: "fortnightly",
	}, http.StatusBadRequest)

	suite.Require().NotNil(response.Error)
	assert.Contains(suite.T(), *response.Error, "cadence")
}

func (suite *TestSuiteStandard) TestGetRecurringExpenses() {
	_ = suite.createTestExpense(v1.RecurringExpenseEditable{Name: "Rent", Amount: 145000})
	_ = suite.createTestExpense(v1.RecurringExpenseEditable{Name: "Gym", Amount: 4500, Cadence: models.CadenceWeekly})

	var response v1.RecurringExpenseListResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/recurring-expenses", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestUpdateRecurringExpense() {
	expense := suite.createTestExpense(v1.RecurringExpenseEditable{Name: "Rent", Amount: 145000})
	suite.Require().NotNil(expense.Data)

	r := test.Request(suite.T(), http.MethodPatch, expense.Data.Links.Self, map[string]any{
		"amount":   150000,
		"keywords": []string{"sunset", "property"},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.RecurringExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), int64(150000), response.Data.Amount)
	assert.Equal(suite.T(), []string{"sunset", "property"}, response.Data.Keywords)

	// Untouched fields are kept
	assert.Equal(suite.T(), "Rent", response.Data.Name)
}

func (suite *TestSuiteStandard) TestDeleteRecurringExpense() {
	expense := suite.createTestExpense(v1.RecurringExpenseEditable{Name: "Rent", Amount: 145000})
	suite.Require().NotNil(expense.Data)

	r := test.Request(suite.T(), http.MethodDelete, expense.Data.Links.Self, "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)

	r = test.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "")
	assert.Equal(suite.T(), http.StatusNotFound, r.Code)
}

func (suite *TestSuiteStandard) TestRecurringExpenseNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/recurring-expenses/65392deb-5e92-4268-b114-297faad6cdce", "")
	assert.Equal(suite.T(), http.StatusNotFound, r.Code)
}

func (suite *TestSuiteStandard) TestLinkRecurringExpenses() {
	_ = suite.createTestExpense(v1.RecurringExpenseEditable{
		Name:     "Rent",
		Amount:   145000,
		Keywords: []string{"acme", "property"},
	})

	rent := suite.transaction(models.Transaction{
		Fingerprint: "fp-rent", Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Amount: 145000, Description: "ACME PROPERTY MGMT 0042", AccountSource: "chase_checking",
	})
	groceries := suite.transaction(models.Transaction{
		Fingerprint: "fp-groceries", Date: time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC),
		Amount: 8219, Description: "WHOLEFDS MKT 10259", AccountSource: "chase_credit",
	})

	// A manual frequency override is never touched by a link run
	manual := suite.transaction(models.Transaction{
		Fingerprint: "fp-manual", Date: time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
		Amount: 145000, Description: "ACME PROPERTY MGMT 0042", AccountSource: "chase_checking",
		Frequency: models.FrequencyOneTime, FrequencyManual: true,
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring-expenses/link", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ExpenseLinkResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), 1, response.Data.Linked)

	var reloaded models.Transaction
	suite.Require().NoError(models.DB.First(&reloaded, "fingerprint = ?", rent.Fingerprint).Error)
	assert.Equal(suite.T(), models.FrequencyRecurring, reloaded.Frequency)

	reloaded = models.Transaction{}
	suite.Require().NoError(models.DB.First(&reloaded, "fingerprint = ?", groceries.Fingerprint).Error)
	assert.Equal(suite.T(), models.FrequencyUnset, reloaded.Frequency)

	reloaded = models.Transaction{}
	suite.Require().NoError(models.DB.First(&reloaded, "fingerprint = ?", manual.Fingerprint).Error)
	assert.Equal(suite.T(), models.FrequencyOneTime, reloaded.Frequency)

	// A second run finds nothing new to link
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring-expenses/link", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), 0, response.Data.Linked)
}

func (suite *TestSuiteStandard) TestLinkMovesSyncedToPending() {
	_ = suite.createTestExpense(v1.RecurringExpenseEditable{
		Name:     "Rent",
		Amount:   145000,
		Keywords: []string{"acme"},
	})

	t := suite.transaction(models.Transaction{
		Fingerprint: "fp-rent", Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Amount: 145000, Description: "ACME PROPERTY MGMT 0042", AccountSource: "chase_checking",
		SyncState: models.SyncStateSynced,
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring-expenses/link", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var reloaded models.Transaction
	suite.Require().NoError(models.DB.First(&reloaded, "fingerprint = ?", t.Fingerprint).Error)
	assert.Equal(suite.T(), models.FrequencyRecurring, reloaded.Frequency)
	assert.Equal(suite.T(), models.SyncStatePending, reloaded.SyncState)
}

func (suite *TestSuiteStandard) TestExpenseTotals() {
	_ = suite.createTestExpense(v1.RecurringExpenseEditable{Name: "Rent", Amount: 145000})
	_ = suite.createTestExpense(v1.RecurringExpenseEditable{Name: "Gym", Amount: 4500, Cadence: models.CadenceWeekly})

	// Disabled expenses are ignored
	disabled := false
	_ = suite.createTestExpense(v1.RecurringExpenseEditable{Name: "Old Lease", Amount: 99900, Enabled: &disabled})

	var response v1.ExpenseTotalsResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/recurring-expenses/totals", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), int64(4500), response.Data.Weekly)
	assert.Equal(suite.T(), int64(145000), response.Data.Monthly)

	// 4500 * 4.33 + 145000 = 164485
	assert.Equal(suite.T(), int64(164485), response.Data.MonthlyEquivalent)
}

func (suite *TestSuiteStandard) TestPreviewExpenseMatches() {
	_ = suite.transaction(models.Transaction{
		Fingerprint: "fp-rent-jun", Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount: 145000, Description: "ACME PROPERTY MGMT 0042", AccountSource: "chase_checking",
	})
	_ = suite.transaction(models.Transaction{
		Fingerprint: "fp-rent-jul", Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Amount: 145000, Description: "ACME PROPERTY MGMT 0042", AccountSource: "chase_checking",
	})
	_ = suite.transaction(models.Transaction{
		Fingerprint: "fp-hardware", Date: time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC),
		Amount: 2350, Description: "ACME HARDWARE", AccountSource: "chase_credit",
	})

	var response v1.ExpensePreviewResponse
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring-expenses/preview", map[string]any{
		"keywords": []string{"acme", "property"},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), 2, response.Data.Count)
	suite.Require().Len(response.Data.Samples, 2)
	assert.Equal(suite.T(), "2024-06-01", response.Data.Samples[0].Date)
	assert.Equal(suite.T(), "ACME PROPERTY MGMT 0042", response.Data.Samples[0].Description)
}

func (suite *TestSuiteStandard) TestPreviewLimitsSamples() {
	for i, fp := range []string{"fp-1", "fp-2", "fp-3"} {
		_ = suite.transaction(models.Transaction{
			Fingerprint: fp, Date: time.Date(2024, 7, 1+i, 0, 0, 0, 0, time.UTC),
			Amount: 145000, Description: "ACME PROPERTY MGMT 0042", AccountSource: "chase_checking",
		})
	}

	var response v1.ExpensePreviewResponse
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring-expenses/preview", map[string]any{
		"keywords": []string{"acme"},
		"limit":    2,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), 3, response.Data.Count)
	assert.Len(suite.T(), response.Data.Samples, 2)
}

func (suite *TestSuiteStandard) TestPreviewWithoutKeywords() {
	_ = suite.transaction(models.Transaction{
		Fingerprint: "fp-rent", Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Amount: 145000, Description: "ACME PROPERTY MGMT 0042", AccountSource: "chase_checking",
	})

	var response v1.ExpensePreviewResponse
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring-expenses/preview", map[string]any{
		"keywords": []string{},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), 0, response.Data.Count)
	assert.Len(suite.T(), response.Data.Samples, 0)
}
