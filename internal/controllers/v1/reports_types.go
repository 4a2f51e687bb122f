package v1

import (
	"github.com/google/uuid"
	"github.com/outlay-app/backend/internal/models"
	"github.com/outlay-app/backend/internal/types"
)

// ReportQueryFilter is the shared query filter of the reporting endpoints.
// It only holds strings so that binding never fails; values that cannot be
// parsed are treated as absent.
type ReportQueryFilter struct {
	StartDate  string `form:"start_date"` // Start of the reporting window
	EndDate    string `form:"end_date"`   // End of the reporting window
	CategoryID string `form:"category"`   // Restrict the report to this category
	GroupBy    string `form:"group_by"`   // Group the summary by category or month
}

// filter converts the bound query values into a report filter.
func (f ReportQueryFilter) filter() models.ExpenseFilter {
	var filter models.ExpenseFilter

	if from, err := types.ParseDate(f.StartDate); err == nil {
		filter.From = &from
	}

	if to, err := types.ParseDate(f.EndDate); err == nil {
		filter.To = &to
	}

	if id, err := uuid.Parse(f.CategoryID); err == nil {
		filter.CategoryID = &id
	}

	return filter
}

type SummaryGroupResponse struct {
	Group      string     `json:"group" example:"Groceries"`                                            // Category name or YYYY-MM month
	CategoryID *uuid.UUID `json:"category_id,omitempty" example:"60e02b9f-ba43-4e26-8e31-4f1bc9bff42f"` // Only set when grouping by category
	Total      string     `json:"total" example:"120.00"`
}

type SummaryResponse struct {
	GroupBy  models.SummaryGrouping `json:"group_by" example:"category"`
	Currency *string                `json:"currency" example:"USD"` // Shared currency of the expenses, VARIES if mixed, null if there are none
	Total    string                 `json:"total" example:"200.00"`
	Results  []SummaryGroupResponse `json:"results"`
}

func newSummary(summary models.Summary) SummaryResponse {
	results := make([]SummaryGroupResponse, 0, len(summary.Groups))
	for _, group := range summary.Groups {
		results = append(results, SummaryGroupResponse{
			Group:      group.Label,
			CategoryID: group.CategoryID,
			Total:      group.Total.StringFixed(2),
		})
	}

	return SummaryResponse{
		GroupBy:  summary.GroupBy,
		Currency: summary.Currency,
		Total:    summary.Total.StringFixed(2),
		Results:  results,
	}
}

type BudgetStatusResponse struct {
	BudgetID     uuid.UUID                `json:"budget_id" example:"19746f9f-6e27-4820-a215-341f229a1c94"`
	Name         string                   `json:"name" example:"Groceries March"`
	Period       models.BudgetPeriod      `json:"period" example:"monthly"`
	Currency     string                   `json:"currency" example:"EUR"`
	StartDate    types.Date               `json:"start_date" example:"2024-03-01"`
	EndDate      types.Date               `json:"end_date" example:"2024-03-31"`
	CategoryID   *uuid.UUID               `json:"category_id" example:"60e02b9f-ba43-4e26-8e31-4f1bc9bff42f"`
	CategoryName *string                  `json:"category_name" example:"Groceries"`
	BudgetAmount string                   `json:"budget_amount" example:"300.00"`
	Spent        string                   `json:"spent" example:"200.00"`
	Remaining    string                   `json:"remaining" example:"100.00"`
	Status       models.UtilizationStatus `json:"status" example:"under"`
}

type BudgetStatusListResponse struct {
	Results []BudgetStatusResponse `json:"results"`
}

func newBudgetStatus(utilization models.BudgetUtilization) BudgetStatusResponse {
	var categoryName *string
	if utilization.Budget.Category != nil {
		categoryName = &utilization.Budget.Category.Name
	}

	return BudgetStatusResponse{
		BudgetID:     utilization.Budget.ID,
		Name:         utilization.Budget.Name,
		Period:       utilization.Budget.Period,
		Currency:     utilization.Budget.Currency,
		StartDate:    utilization.Budget.StartDate,
		EndDate:      utilization.Budget.EndDate,
		CategoryID:   utilization.Budget.CategoryID,
		CategoryName: categoryName,
		BudgetAmount: utilization.Budget.Amount.StringFixed(2),
		Spent:        utilization.Spent.StringFixed(2),
		Remaining:    utilization.Remaining.StringFixed(2),
		Status:       utilization.Status,
	}
}
