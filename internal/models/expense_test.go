package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/outlay-app/backend/internal/models"
	"github.com/outlay-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpenseCurrencyDefault() {
	user := suite.createTestUser(models.User{})

	expense := suite.createTestExpense(models.Expense{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(12.5),
		Date:   types.NewDate(2024, 1, 1),
	})

	suite.Assert().Equal("USD", expense.Currency)
}

func (suite *TestSuiteStandard) TestExpenseTrimsWhitespace() {
	user := suite.createTestUser(models.User{})

	expense := suite.createTestExpense(models.Expense{
		UserID:      user.ID,
		Amount:      decimal.NewFromFloat(3),
		Currency:    " EUR ",
		Description: "  lunch  ",
		Date:        types.NewDate(2024, 1, 1),
	})

	suite.Assert().Equal("EUR", expense.Currency)
	suite.Assert().Equal("lunch", expense.Description)
}

func (suite *TestSuiteStandard) TestExpenseAmountPrecision() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.Expense{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(1.999),
		Date:   types.NewDate(2024, 1, 1),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrAmountPrecision)
}

func (suite *TestSuiteStandard) TestExpenseNilUUIDNormalized() {
	user := suite.createTestUser(models.User{})

	nilID := uuid.Nil
	expense := suite.createTestExpense(models.Expense{
		UserID:          user.ID,
		Amount:          decimal.NewFromFloat(1),
		Date:            types.NewDate(2024, 1, 1),
		CategoryID:      &nilID,
		RecurringRuleID: &nilID,
	})

	suite.Assert().Nil(expense.CategoryID)
	suite.Assert().Nil(expense.RecurringRuleID)
}

func (suite *TestSuiteStandard) TestExpenseValidateReferences() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	ownCategory := suite.createTestCategory(models.Category{UserID: user.ID, IsActive: true})
	otherCategory := suite.createTestCategory(models.Category{UserID: other.ID, IsActive: true})
	ownRule := suite.createTestRecurringRule(models.RecurringRule{UserID: user.ID, StartDate: types.NewDate(2024, 1, 1)})
	otherRule := suite.createTestRecurringRule(models.RecurringRule{UserID: other.ID, StartDate: types.NewDate(2024, 1, 1)})

	tests := []struct {
		name       string
		categoryID *uuid.UUID
		ruleID     *uuid.UUID
		expected   error
	}{
		{"no references", nil, nil, nil},
		{"own category", &ownCategory.ID, nil, nil},
		{"own category and rule", &ownCategory.ID, &ownRule.ID, nil},
		{"other user's category", &otherCategory.ID, nil, models.ErrCategoryInvalid},
		{"other user's rule", nil, &otherRule.ID, models.ErrRecurringRuleInvalid},
		{"unknown category", func() *uuid.UUID { id := uuid.New(); return &id }(), nil, models.ErrCategoryInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(_ *testing.T) {
			expense := models.Expense{
				UserID:          user.ID,
				Amount:          decimal.NewFromFloat(10),
				Date:            types.NewDate(2024, 1, 1),
				CategoryID:      tt.categoryID,
				RecurringRuleID: tt.ruleID,
			}

			err := expense.ValidateReferences(models.DB)
			if tt.expected == nil {
				suite.Assert().Nil(err)
			} else {
				suite.Assert().ErrorIs(err, tt.expected)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseCategoryDeleteSetsNull() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID, IsActive: true})

	expense := suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		Amount:     decimal.NewFromFloat(5),
		Date:       types.NewDate(2024, 1, 1),
		CategoryID: &category.ID,
	})

	err := models.DB.Delete(&category).Error
	suite.Require().Nil(err)

	var reloaded models.Expense
	err = models.DB.First(&reloaded, "id = ?", expense.ID).Error
	suite.Require().Nil(err)
	suite.Assert().Nil(reloaded.CategoryID, "deleting the category must not delete the expense")
}

func (suite *TestSuiteStandard) TestExpenseRuleDeleteSetsNull() {
	user := suite.createTestUser(models.User{})
	rule := suite.createTestRecurringRule(models.RecurringRule{UserID: user.ID, StartDate: types.NewDate(2024, 1, 1)})

	expense := suite.createTestExpense(models.Expense{
		UserID:          user.ID,
		Amount:          decimal.NewFromFloat(5),
		Date:            types.NewDate(2024, 1, 1),
		RecurringRuleID: &rule.ID,
	})

	err := models.DB.Delete(&rule).Error
	suite.Require().Nil(err)

	var reloaded models.Expense
	err = models.DB.First(&reloaded, "id = ?", expense.ID).Error
	suite.Require().Nil(err)
	suite.Assert().Nil(reloaded.RecurringRuleID)
}
