package v1

import (
	"github.com/google/uuid"
	"github.com/outlay-app/backend/internal/models"
	"github.com/outlay-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Amount          decimal.Decimal `json:"amount" example:"12.50"`                                             // Amount spent, at most two decimal places
	Currency        string          `json:"currency" example:"EUR" default:"USD"`                               // ISO 4217 currency code
	Description     string          `json:"description" example:"Lunch at the corner place" default:""`         // Notes about the expense
	Date            types.Date      `json:"date" example:"2024-03-15"`                                          // Day the expense occurred
	CategoryID      *uuid.UUID      `json:"category_id" example:"60e02b9f-ba43-4e26-8e31-4f1bc9bff42f"`         // ID of the category, null for uncategorized
	RecurringRuleID *uuid.UUID      `json:"recurring_rule_id" example:"9e3a60d1-f83d-4c96-b167-a71a7f44d239"`   // ID of the recurring rule this expense was generated from
}

func (editable ExpenseEditable) model(userID uuid.UUID) models.Expense {
	return models.Expense{
		UserID:          userID,
		Amount:          editable.Amount,
		Currency:        editable.Currency,
		Description:     editable.Description,
		Date:            editable.Date,
		CategoryID:      editable.CategoryID,
		RecurringRuleID: editable.RecurringRuleID,
	}
}

type ExpenseResponse struct {
	models.DefaultModel
	UserID          uuid.UUID  `json:"user_id" example:"3a27c3b9-84c5-4f74-9e2f-87d1c47f16c3"` // Owner, assigned by the server
	Amount          string     `json:"amount" example:"12.50"`
	Currency        string     `json:"currency" example:"EUR"`
	Description     string     `json:"description" example:"Lunch at the corner place"`
	Date            types.Date `json:"date" example:"2024-03-15"`
	CategoryID      *uuid.UUID `json:"category_id" example:"60e02b9f-ba43-4e26-8e31-4f1bc9bff42f"`
	RecurringRuleID *uuid.UUID `json:"recurring_rule_id" example:"9e3a60d1-f83d-4c96-b167-a71a7f44d239"`
}

func newExpense(model models.Expense) ExpenseResponse {
	return ExpenseResponse{
		DefaultModel:    model.DefaultModel,
		UserID:          model.UserID,
		Amount:          model.Amount.StringFixed(2),
		Currency:        model.Currency,
		Description:     model.Description,
		Date:            model.Date,
		CategoryID:      model.CategoryID,
		RecurringRuleID: model.RecurringRuleID,
	}
}

// ExpenseQueryFilter only holds strings so that binding never fails;
// values that cannot be parsed are treated as absent.
type ExpenseQueryFilter struct {
	StartDate  string `form:"start_date"` // Only expenses on or after this date
	EndDate    string `form:"end_date"`   // Only expenses on or before this date
	CategoryID string `form:"category"`   // Only expenses of this category
}

// apply adds the filter conditions to the query.
func (f ExpenseQueryFilter) apply(q *gorm.DB) *gorm.DB {
	if from, err := types.ParseDate(f.StartDate); err == nil {
		q = q.Where("date >= ?", from)
	}

	if to, err := types.ParseDate(f.EndDate); err == nil {
		q = q.Where("date <= ?", to)
	}

	if id, err := uuid.Parse(f.CategoryID); err == nil {
		q = q.Where("category_id = ?", id)
	}

	return q
}
