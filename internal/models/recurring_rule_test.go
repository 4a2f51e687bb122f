package models_test

import (
	"github.com/outlay-app/backend/internal/models"
	"github.com/outlay-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestRecurringRuleCadenceInvalid() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.RecurringRule{
		UserID:    user.ID,
		Name:      "Rent",
		Cadence:   "biweekly",
		StartDate: types.NewDate(2024, 1, 1),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrCadenceInvalid)
}

func (suite *TestSuiteStandard) TestRecurringRuleNameUniquePerUser() {
	user := suite.createTestUser(models.User{})

	_ = suite.createTestRecurringRule(models.RecurringRule{UserID: user.ID, Name: "Rent", StartDate: types.NewDate(2024, 1, 1)})

	err := models.DB.Create(&models.RecurringRule{
		UserID:    user.ID,
		Name:      "Rent",
		Cadence:   models.CadenceMonthly,
		StartDate: types.NewDate(2024, 1, 1),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrRecurringRuleNameNotUnique)

	other := suite.createTestUser(models.User{})
	err = models.DB.Create(&models.RecurringRule{
		UserID:    other.ID,
		Name:      "Rent",
		Cadence:   models.CadenceMonthly,
		StartDate: types.NewDate(2024, 1, 1),
	}).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestRecurringRuleDefaults() {
	user := suite.createTestUser(models.User{})

	rule := suite.createTestRecurringRule(models.RecurringRule{
		UserID:    user.ID,
		Amount:    decimal.NewFromFloat(1200),
		StartDate: types.NewDate(2024, 1, 1),
	})

	suite.Assert().Equal("USD", rule.Currency)
	suite.Assert().Nil(rule.EndDate)
}
