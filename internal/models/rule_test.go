package models_test

import (
	"github.com/spendsight/backend/internal/models"
)

func (suite *TestSuiteStandard) rule(r models.Rule) models.Rule {
	err := models.DB.Create(&r).Error
	if err != nil {
		suite.Assert().FailNow("rule could not be saved", "Error: %s", err)
	}

	return r
}

func (suite *TestSuiteStandard) TestRuleCreate() {
	r := suite.rule(models.Rule{
		Dimension: models.DimensionCategory,
		Match:     "wholefds",
		Value:     "Groceries",
		Priority:  10,
		Enabled:   true,
	})

	suite.Assert().NotEmpty(r.ID)
	suite.Assert().Equal(uint(0), r.SweptCount)
}

func (suite *TestSuiteStandard) TestRuleInvalidDimension() {
	err := models.DB.Create(&models.Rule{
		Dimension: "color",
		Match:     "anything",
		Value:     "Blue",
	}).Error

	suite.Assert().ErrorIs(err, models.ErrInvalidDimension)
}

func (suite *TestSuiteStandard) TestRuleEmptyMatch() {
	err := models.DB.Create(&models.Rule{
		Dimension: models.DimensionCategory,
		Match:     "   ",
		Value:     "Groceries",
	}).Error

	suite.Assert().ErrorIs(err, models.ErrMalformedInput)
}

func (suite *TestSuiteStandard) TestRuleValueValidation() {
	err := models.DB.Create(&models.Rule{
		Dimension: models.DimensionNecessity,
		Match:     "rent",
		Value:     "Mandatory",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrInvalidNecessity)

	err = models.DB.Create(&models.Rule{
		Dimension: models.DimensionFrequency,
		Match:     "netflix",
		Value:     "Often",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrInvalidFrequency)
}

func (suite *TestSuiteStandard) TestRuleSweepValueBlanked() {
	r := suite.rule(models.Rule{
		Dimension: models.DimensionSweep,
		Match:     "AUTOPAY",
		Value:     "whatever",
		Priority:  5,
		Enabled:   true,
	})

	suite.Assert().Equal("", r.Value)
}

func (suite *TestSuiteStandard) TestRulePriorityZeroReserved() {
	suite.rule(models.Rule{
		Dimension: models.DimensionCategory,
		Match:     "override",
		Value:     "Manual",
		Priority:  0,
		Enabled:   true,
	})

	// A second enabled priority 0 rule on the same dimension conflicts
	err := models.DB.Create(&models.Rule{
		Dimension: models.DimensionCategory,
		Match:     "other",
		Value:     "AlsoManual",
		Priority:  0,
		Enabled:   true,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrRuleConflict)

	// A different dimension is fine
	suite.rule(models.Rule{
		Dimension: models.DimensionFrequency,
		Match:     "other",
		Value:     "OneTime",
		Priority:  0,
		Enabled:   true,
	})

	// A disabled rule does not claim the reservation
	suite.rule(models.Rule{
		Dimension: models.DimensionCategory,
		Match:     "disabled",
		Value:     "Off",
		Priority:  0,
		Enabled:   false,
	})
}

func (suite *TestSuiteStandard) TestRulePriorityZeroOnUpdate() {
	suite.rule(models.Rule{
		Dimension: models.DimensionCategory,
		Match:     "first",
		Value:     "First",
		Priority:  0,
		Enabled:   true,
	})

	second := suite.rule(models.Rule{
		Dimension: models.DimensionCategory,
		Match:     "second",
		Value:     "Second",
		Priority:  3,
		Enabled:   true,
	})

	second.Priority = 0
	err := models.DB.Save(&second).Error
	suite.Assert().ErrorIs(err, models.ErrRuleConflict)
}

func (suite *TestSuiteStandard) TestRuleMatches() {
	r := models.Rule{
		Dimension: models.DimensionFrequency,
		Match:     "netflix",
		Value:     "Subscription",
		Enabled:   true,
	}

	// Substring matching, case-insensitive
	suite.Assert().True(r.Matches("NETFLIX.COM"))
	suite.Assert().True(r.Matches("Payment to Netflix Inc"))
	suite.Assert().False(r.Matches("HULU.COM"))

	// Wildcard patterns are anchored
	r.Match = "netflix*"
	suite.Assert().True(r.Matches("NETFLIX.COM"))
	suite.Assert().False(r.Matches("Payment to Netflix"))

	// Disabled rules never match
	r.Enabled = false
	r.Match = "netflix"
	suite.Assert().False(r.Matches("NETFLIX.COM"))
}
