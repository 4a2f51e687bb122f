package v1

import (
	"github.com/google/uuid"
	"github.com/outlay-app/backend/internal/models"
	"github.com/outlay-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name       string              `json:"name" example:"Groceries March" default:""`                  // Name of the budget
	Amount     decimal.Decimal     `json:"amount" example:"300.00"`                                    // Planned spending, at most two decimal places
	Currency   string              `json:"currency" example:"EUR" default:"USD"`                       // ISO 4217 currency code
	Period     models.BudgetPeriod `json:"period" example:"monthly" default:"monthly"`                 // One of weekly, monthly, yearly
	StartDate  types.Date          `json:"start_date" example:"2024-03-01"`                            // First day of the budget window
	EndDate    types.Date          `json:"end_date" example:"2024-03-31"`                              // Last day of the budget window
	CategoryID *uuid.UUID          `json:"category_id" example:"60e02b9f-ba43-4e26-8e31-4f1bc9bff42f"` // Category the budget is scoped to, null for all spending
}

func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:     userID,
		Name:       editable.Name,
		Amount:     editable.Amount,
		Currency:   editable.Currency,
		Period:     editable.Period,
		StartDate:  editable.StartDate,
		EndDate:    editable.EndDate,
		CategoryID: editable.CategoryID,
	}
}

type BudgetResponse struct {
	models.DefaultModel
	UserID     uuid.UUID           `json:"user_id" example:"3a27c3b9-84c5-4f74-9e2f-87d1c47f16c3"` // Owner, assigned by the server
	Name       string              `json:"name" example:"Groceries March"`
	Amount     string              `json:"amount" example:"300.00"`
	Currency   string              `json:"currency" example:"EUR"`
	Period     models.BudgetPeriod `json:"period" example:"monthly"`
	StartDate  types.Date          `json:"start_date" example:"2024-03-01"`
	EndDate    types.Date          `json:"end_date" example:"2024-03-31"`
	CategoryID *uuid.UUID          `json:"category_id" example:"60e02b9f-ba43-4e26-8e31-4f1bc9bff42f"`
}

func newBudget(model models.Budget) BudgetResponse {
	return BudgetResponse{
		DefaultModel: model.DefaultModel,
		UserID:       model.UserID,
		Name:         model.Name,
		Amount:       model.Amount.StringFixed(2),
		Currency:     model.Currency,
		Period:       model.Period,
		StartDate:    model.StartDate,
		EndDate:      model.EndDate,
		CategoryID:   model.CategoryID,
	}
}

// BudgetQueryFilter only holds strings so that binding never fails;
// values that cannot be parsed are treated as absent.
type BudgetQueryFilter struct {
	StartDate  string `form:"start_date"` // Only budgets overlapping this date or later
	EndDate    string `form:"end_date"`   // Only budgets overlapping this date or earlier
	CategoryID string `form:"category"`   // Only budgets scoped to this category
}

// apply adds the filter conditions to the query. Date filters select
// budgets whose window overlaps the given range.
func (f BudgetQueryFilter) apply(q *gorm.DB) *gorm.DB {
	if from, err := types.ParseDate(f.StartDate); err == nil {
		q = q.Where("end_date >= ?", from)
	}

	if to, err := types.ParseDate(f.EndDate); err == nil {
		q = q.Where("start_date <= ?", to)
	}

	if id, err := uuid.Parse(f.CategoryID); err == nil {
		q = q.Where("category_id = ?", id)
	}

	return q
}
