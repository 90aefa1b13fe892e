package models_test

import (
	"time"

	"github.com/spendsight/backend/internal/models"
)

func (suite *TestSuiteStandard) transaction(fingerprint string) models.Transaction {
	t := models.Transaction{
		Fingerprint:   fingerprint,
		Date:          time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		Amount:        1403,
		Description:   "NETFLIX.COM",
		AccountSource: "chase_credit",
	}

	err := models.DB.Create(&t).Error
	if err != nil {
		suite.Assert().FailNow("transaction could not be saved", "Error: %s", err)
	}

	return t
}

func (suite *TestSuiteStandard) TestTransactionCreateDefaults() {
	t := suite.transaction("fp-defaults")

	suite.Assert().Equal(models.SyncStateLocal, t.SyncState)
	suite.Assert().Equal(models.NecessityUnset, t.Necessity)
	suite.Assert().Equal(models.FrequencyUnset, t.Frequency)
	suite.Assert().False(t.Swept)
}

func (suite *TestSuiteStandard) TestTransactionInvalidNecessity() {
	t := models.Transaction{
		Fingerprint: "fp-bad-necessity",
		Date:        time.Now(),
		Description: "SOMETHING",
		Necessity:   "Luxury",
	}

	err := models.DB.Create(&t).Error
	suite.Assert().ErrorIs(err, models.ErrInvalidNecessity)
}

func (suite *TestSuiteStandard) TestTransactionInvalidFrequency() {
	t := models.Transaction{
		Fingerprint: "fp-bad-frequency",
		Date:        time.Now(),
		Description: "SOMETHING",
		Frequency:   "Sometimes",
	}

	err := models.DB.Create(&t).Error
	suite.Assert().ErrorIs(err, models.ErrInvalidFrequency)
}

func (suite *TestSuiteStandard) TestTransactionInvalidSyncState() {
	t := models.Transaction{
		Fingerprint: "fp-bad-state",
		Date:        time.Now(),
		Description: "SOMETHING",
		SyncState:   "limbo",
	}

	err := models.DB.Create(&t).Error
	suite.Assert().ErrorIs(err, models.ErrInvalidSyncState)
}

func (suite *TestSuiteStandard) TestTransactionDuplicateFingerprint() {
	suite.transaction("fp-dupe")

	second := models.Transaction{
		Fingerprint: "fp-dupe",
		Date:        time.Now(),
		Description: "OTHER",
	}

	err := models.DB.Create(&second).Error
	suite.Assert().ErrorIs(err, models.ErrFingerprintCollision)
}

func (suite *TestSuiteStandard) TestMarkEdited() {
	t := suite.transaction("fp-edited")

	// A transaction that was never synced stays local
	t.MarkEdited()
	suite.Assert().Equal(models.SyncStateLocal, t.SyncState)

	t.SyncState = models.SyncStateSynced
	t.MarkEdited()
	suite.Assert().Equal(models.SyncStatePending, t.SyncState)

	// Pending stays pending, it is already due to be sent
	t.MarkEdited()
	suite.Assert().Equal(models.SyncStatePending, t.SyncState)

	// A conflict must be resolved explicitly
	t.SyncState = models.SyncStateConflict
	t.MarkEdited()
	suite.Assert().Equal(models.SyncStateConflict, t.SyncState)
}

func (suite *TestSuiteStandard) TestTransactionNotFound() {
	var t models.Transaction
	err := models.DB.First(&t, "fingerprint = ?", "does-not-exist").Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "transaction")
}

func (suite *TestSuiteStandard) TestIsInflow() {
	t := models.Transaction{Amount: -5000}
	suite.Assert().True(t.IsInflow())

	t.Amount = 5000
	suite.Assert().False(t.IsInflow())
}

func (suite *TestSuiteStandard) TestTransactionDatesUTC() {
	berlin, err := time.LoadLocation("Europe/Berlin")
	suite.Assert().NoError(err)

	created := models.Transaction{
		Fingerprint: "fp-utc",
		Date:        time.Date(2024, 7, 15, 0, 0, 0, 0, berlin),
		Description: "SOMETHING",
	}
	suite.Assert().NoError(models.DB.Create(&created).Error)

	var t models.Transaction
	suite.Assert().NoError(models.DB.First(&t, "fingerprint = ?", "fp-utc").Error)
	suite.Assert().Equal(time.UTC, t.Date.Location())
	suite.Assert().Equal(time.UTC, t.CreatedAt.Location())
}
