package v1_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"

	"github.com/spendsight/backend/internal/controllers/v1"
	"github.com/spendsight/backend/internal/models"
	"github.com/spendsight/backend/test"
)

const chaseCreditCSV = `Transaction Date,Post Date,Description,Category,Type,Amount,Memo
07/12/2024,07/13/2024,WHOLEFDS MKT 10259,Groceries,Sale,-82.19,
07/15/2024,07/16/2024,NETFLIX.COM,Entertainment,Sale,-14.03,
07/15/2024,07/16/2024,Payment Thank You - Web,,Payment,450.00,
`

// importFile uploads a CSV and returns the decoded response.
func (suite *TestSuiteStandard) importFile(url, name, content string, expectedStatus int) v1.ImportResponse {
	body, headers := test.CSVFile(suite.T(), name, content)

	r := test.Request(suite.T(), http.MethodPost, url, body, headers)
	test.AssertHTTPStatus(suite.T(), expectedStatus, &r)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestOptionsImport() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/import", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestImport() {
	response := suite.importFile("http://example.com/v1/import?profile=ChaseCredit", "chase.csv", chaseCreditCSV, http.StatusOK)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), "ChaseCredit", response.Data.Profile)
	assert.Equal(suite.T(), 3, response.Data.Imported)
	assert.Equal(suite.T(), 0, response.Data.Merged)
	assert.Len(suite.T(), response.Data.Skipped, 0)

	var list v1.TransactionListResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	test.DecodeResponse(suite.T(), &r, &list)

	suite.Require().Len(list.Data, 3)

	// Chase exports purchases as negative numbers, outflows are positive
	// minor units after the import
	groceries := list.Data[0]
	assert.Equal(suite.T(), int64(8219), groceries.Amount)
	assert.Equal(suite.T(), "WHOLEFDS MKT 10259", groceries.Description)
	assert.Equal(suite.T(), "chase_credit", groceries.AccountSource)
	assert.Equal(suite.T(), "Groceries", groceries.BankCategory)
	assert.Equal(suite.T(), models.SyncStateLocal, groceries.SyncState)

	// The payment is an inflow
	for _, t := range list.Data {
		if t.Description == "Payment Thank You - Web" {
			assert.Equal(suite.T(), int64(-45000), t.Amount)
		}
	}
}

func (suite *TestSuiteStandard) TestImportDetectsProfile() {
	response := suite.importFile("http://example.com/v1/import", "export.csv", chaseCreditCSV, http.StatusOK)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), "ChaseCredit", response.Data.Profile)
	assert.Equal(suite.T(), 3, response.Data.Imported)
}

func (suite *TestSuiteStandard) TestImportIdempotent() {
	_ = suite.importFile("http://example.com/v1/import?profile=ChaseCredit", "chase.csv", chaseCreditCSV, http.StatusOK)
	response := suite.importFile("http://example.com/v1/import?profile=ChaseCredit", "chase.csv", chaseCreditCSV, http.StatusOK)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), 0, response.Data.Imported)
	assert.Equal(suite.T(), 3, response.Data.Merged)
}

func (suite *TestSuiteStandard) TestImportSkipsBadRows() {
	csv := `Transaction Date,Post Date,Description,Category,Type,Amount,Memo
07/12/2024,07/13/2024,WHOLEFDS MKT 10259,Groceries,Sale,-82.19,
not-a-date,07/13/2024,BAD ROW,Misc,Sale,-1.00,
`
	response := suite.importFile("http://example.com/v1/import?profile=ChaseCredit", "chase.csv", csv, http.StatusOK)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), 1, response.Data.Imported)
	suite.Require().Len(response.Data.Skipped, 1)

	// Line numbers count the header as line 1
	assert.Equal(suite.T(), 3, response.Data.Skipped[0].Line)
	assert.Contains(suite.T(), response.Data.Skipped[0].Err, "not-a-date")
}

func (suite *TestSuiteStandard) TestImportAppliesRules() {
	rule := v1.RuleEditable{Dimension: models.DimensionCategory, Match: "netflix", Value: "Streaming", Priority: 10}
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/rules", rule)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	_ = suite.importFile("http://example.com/v1/import?profile=ChaseCredit", "chase.csv", chaseCreditCSV, http.StatusOK)

	var list v1.TransactionListResponse
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?category=Streaming", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	test.DecodeResponse(suite.T(), &r, &list)

	suite.Require().Len(list.Data, 1)
	assert.Equal(suite.T(), "NETFLIX.COM", list.Data[0].Description)
}

func (suite *TestSuiteStandard) TestImportCountsSweeps() {
	rule := suite.createTestRule(v1.RuleEditable{Dimension: models.DimensionSweep, Match: "payment thank you", Priority: 1})
	suite.Require().NotNil(rule.Data)

	_ = suite.importFile("http://example.com/v1/import?profile=ChaseCredit", "chase.csv", chaseCreditCSV, http.StatusOK)

	var reloaded models.Rule
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", rule.Data.ID).Error)
	assert.Equal(suite.T(), uint(1), reloaded.SweptCount)

	// Merged rows keep their sweep state and do not count again
	_ = suite.importFile("http://example.com/v1/import?profile=ChaseCredit", "chase.csv", chaseCreditCSV, http.StatusOK)

	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", rule.Data.ID).Error)
	assert.Equal(suite.T(), uint(1), reloaded.SweptCount)
}

func (suite *TestSuiteStandard) TestImportUnknownProfile() {
	response := suite.importFile("http://example.com/v1/import?profile=MonopolyBank", "chase.csv", chaseCreditCSV, http.StatusBadRequest)

	suite.Require().NotNil(response.Error)
	assert.Contains(suite.T(), *response.Error, "MonopolyBank")
}

func (suite *TestSuiteStandard) TestImportUndetectableHeader() {
	csv := "Foo,Bar,Baz\n1,2,3\n"
	response := suite.importFile("http://example.com/v1/import", "export.csv", csv, http.StatusBadRequest)

	suite.Require().NotNil(response.Error)
	assert.Contains(suite.T(), *response.Error, "no profile matches")
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import?profile=ChaseCredit", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	assert.Contains(suite.T(), *response.Error, "you must send a file")
}

func (suite *TestSuiteStandard) TestImportWrongSuffix() {
	response := suite.importFile("http://example.com/v1/import?profile=ChaseCredit", "chase.txt", chaseCreditCSV, http.StatusBadRequest)

	suite.Require().NotNil(response.Error)
	assert.Contains(suite.T(), *response.Error, ".csv")
}
