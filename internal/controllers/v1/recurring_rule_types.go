package v1

import (
	"github.com/google/uuid"
	"github.com/outlay-app/backend/internal/models"
	"github.com/outlay-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecurringRuleEditable represents all user configurable parameters
type RecurringRuleEditable struct {
	Name        string          `json:"name" example:"Rent" default:""`                             // Name of the rule, unique per user
	Amount      decimal.Decimal `json:"amount" example:"950.00"`                                    // Amount of each generated expense
	Currency    string          `json:"currency" example:"EUR" default:"USD"`                       // ISO 4217 currency code
	Cadence     models.Cadence  `json:"cadence" example:"monthly"`                                  // One of daily, weekly, monthly, yearly
	StartDate   types.Date      `json:"start_date" example:"2024-01-01"`                            // First day the rule applies
	EndDate     *types.Date     `json:"end_date" example:"2024-12-31"`                              // Last day the rule applies, null for open ended
	Description string          `json:"description" example:"Apartment rent" default:""`            // Notes about the rule
	CategoryID  *uuid.UUID      `json:"category_id" example:"60e02b9f-ba43-4e26-8e31-4f1bc9bff42f"` // Category for generated expenses
}

func (editable RecurringRuleEditable) model(userID uuid.UUID) models.RecurringRule {
	return models.RecurringRule{
		UserID:      userID,
		Name:        editable.Name,
		Amount:      editable.Amount,
		Currency:    editable.Currency,
		Cadence:     editable.Cadence,
		StartDate:   editable.StartDate,
		EndDate:     editable.EndDate,
		Description: editable.Description,
		CategoryID:  editable.CategoryID,
	}
}

type RecurringRuleResponse struct {
	models.DefaultModel
	UserID      uuid.UUID      `json:"user_id" example:"3a27c3b9-84c5-4f74-9e2f-87d1c47f16c3"` // Owner, assigned by the server
	Name        string         `json:"name" example:"Rent"`
	Amount      string         `json:"amount" example:"950.00"`
	Currency    string         `json:"currency" example:"EUR"`
	Cadence     models.Cadence `json:"cadence" example:"monthly"`
	StartDate   types.Date     `json:"start_date" example:"2024-01-01"`
	EndDate     *types.Date    `json:"end_date" example:"2024-12-31"`
	Description string         `json:"description" example:"Apartment rent"`
	CategoryID  *uuid.UUID     `json:"category_id" example:"60e02b9f-ba43-4e26-8e31-4f1bc9bff42f"`
}

func newRecurringRule(model models.RecurringRule) RecurringRuleResponse {
	return RecurringRuleResponse{
		DefaultModel: model.DefaultModel,
		UserID:       model.UserID,
		Name:         model.Name,
		Amount:       model.Amount.StringFixed(2),
		Currency:     model.Currency,
		Cadence:      model.Cadence,
		StartDate:    model.StartDate,
		EndDate:      model.EndDate,
		Description:  model.Description,
		CategoryID:   model.CategoryID,
	}
}

// RecurringRuleQueryFilter only holds strings so that binding never fails;
// values that cannot be parsed are treated as absent.
type RecurringRuleQueryFilter struct {
	Cadence    string `form:"cadence"`  // Only rules with this cadence
	CategoryID string `form:"category"` // Only rules for this category
}

// apply adds the filter conditions to the query.
func (f RecurringRuleQueryFilter) apply(q *gorm.DB) *gorm.DB {
	if models.Cadence(f.Cadence).Valid() {
		q = q.Where("cadence = ?", f.Cadence)
	}

	if id, err := uuid.Parse(f.CategoryID); err == nil {
		q = q.Where("category_id = ?", id)
	}

	return q
}
