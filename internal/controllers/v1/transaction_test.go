package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spendsight/backend/internal/controllers/v1"
	"github.com/spendsight/backend/internal/models"
	"github.com/spendsight/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsTransactionList() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/transactions", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsTransactionDetail() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/transactions/unknown", "")
	assert.Equal(suite.T(), http.StatusNotFound, r.Code)

	t := suite.transaction(models.Transaction{
		Fingerprint: "fp-options", Date: time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC),
		Amount: 8219, Description: "WHOLEFDS MKT 10259", AccountSource: "chase_credit",
	})

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/transactions/"+t.Fingerprint, "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetTransactionsEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	// The response must be an empty list, not null
	assert.Contains(suite.T(), r.Body.String(), `"data":[]`)
}

func (suite *TestSuiteStandard) TestGetTransactionsFilters() {
	suite.transaction(models.Transaction{
		Fingerprint: "fp-groceries", Date: time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC),
		Amount: 8219, Description: "WHOLEFDS MKT 10259", AccountSource: "chase_credit",
		Category: "Groceries", Necessity: models.NecessityNeed,
	})
	suite.transaction(models.Transaction{
		Fingerprint: "fp-netflix", Date: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		Amount: 1403, Description: "NETFLIX.COM", AccountSource: "chase_credit",
		Category: "Streaming", Frequency: models.FrequencySubscription,
	})
	suite.transaction(models.Transaction{
		Fingerprint: "fp-payment", Date: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		Amount: 9622, Description: "CHASE AUTOPAY PAYMENT", AccountSource: "chase_checking",
		Swept: true,
	})

	tests := []struct {
		query string
		count int
	}{
		{"", 3},
		{"category=Groceries", 1},
		{"account=chase_checking", 1},
		{"necessity=Need", 1},
		{"frequency=Subscription", 1},
		{"swept=false", 2},
		{"from=2024-07-15", 2},
		{"until=2024-07-15", 1},
		{"from=2024-07-01&until=2024-08-01", 2},
		{"syncState=local", 3},
		{"syncState=pending", 0},
		{"category=Groceries&account=chase_checking", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, http.StatusOK, &r)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsInvalidDate() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?from=July", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	assert.Contains(suite.T(), *response.Error, "YYYY-MM-DD")
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	t := suite.transaction(models.Transaction{
		Fingerprint: "fp-groceries", Date: time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC),
		Amount: 8219, Description: "WHOLEFDS MKT 10259", AccountSource: "chase_credit",
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/"+t.Fingerprint, "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), "WHOLEFDS MKT 10259", response.Data.Description)
	assert.Equal(suite.T(), "http://example.com/v1/transactions/fp-groceries", response.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestGetTransactionNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/unknown", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	t := suite.transaction(models.Transaction{
		Fingerprint: "fp-groceries", Date: time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC),
		Amount: 8219, Description: "WHOLEFDS MKT 10259", AccountSource: "chase_credit",
		Category: "Shopping", SyncState: models.SyncStateSynced,
	})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/transactions/"+t.Fingerprint,
		map[string]any{"category": "Groceries", "necessity": "Need"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), "Groceries", response.Data.Category)
	assert.Equal(suite.T(), models.NecessityNeed, response.Data.Necessity)

	// Only the overridden dimensions get their manual flag
	assert.True(suite.T(), response.Data.CategoryManual)
	assert.True(suite.T(), response.Data.NecessityManual)
	assert.False(suite.T(), response.Data.FrequencyManual)

	// An edit makes a synced transaction pending again
	assert.Equal(suite.T(), models.SyncStatePending, response.Data.SyncState)
}

func (suite *TestSuiteStandard) TestUpdateTransactionInvalidTag() {
	t := suite.transaction(models.Transaction{
		Fingerprint: "fp-groceries", Date: time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC),
		Amount: 8219, Description: "WHOLEFDS MKT 10259", AccountSource: "chase_credit",
	})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/transactions/"+t.Fingerprint,
		map[string]any{"necessity": "Luxury"})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/transactions/"+t.Fingerprint,
		map[string]any{"frequency": "Sometimes"})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestUpdateTransactionInvalidBody() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/transactions/fp", `{ what even is this`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestUpdateTransactionNotFound() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/transactions/unknown",
		map[string]any{"category": "Groceries"})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}
