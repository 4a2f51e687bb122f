package models

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/outlay-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// SummaryGrouping selects how the expense summary groups its results.
type SummaryGrouping string

const (
	GroupByCategory SummaryGrouping = "category"
	GroupByMonth    SummaryGrouping = "month"
)

// MixedCurrencies is reported when the summarized expenses span more than
// one currency code. No conversion is ever performed.
const MixedCurrencies = "VARIES"

// UncategorizedLabel is the group label for expenses without a category.
const UncategorizedLabel = "Uncategorized"

// ExpenseFilter restricts the expenses a report works on. All fields are
// optional; the date window is inclusive on both ends.
type ExpenseFilter struct {
	From       *types.Date
	To         *types.Date
	CategoryID *uuid.UUID
}

// SummaryGroup is one aggregated group of the expense summary.
type SummaryGroup struct {
	Label      string
	CategoryID *uuid.UUID // only set when grouping by category
	Total      decimal.Decimal
}

// Summary is the result of ExpenseSummary.
type Summary struct {
	GroupBy  SummaryGrouping
	Currency *string
	Total    decimal.Decimal
	Groups   []SummaryGroup
}

// filteredExpenses returns a fresh query over the user's expenses with the
// filter applied. All columns are table-qualified because the category
// grouping joins the categories table, which carries a user_id column of
// its own.
func filteredExpenses(db *gorm.DB, userID uuid.UUID, filter ExpenseFilter) *gorm.DB {
	q := db.Model(&Expense{}).Where("expenses.user_id = ?", userID)

	if filter.From != nil {
		q = q.Where("expenses.date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("expenses.date <= ?", *filter.To)
	}
	if filter.CategoryID != nil {
		q = q.Where("expenses.category_id = ?", *filter.CategoryID)
	}

	return q
}

// monthExpression returns the SQL expression truncating an expense date to
// its zero-padded YYYY-MM month label on the connected database.
func monthExpression(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "to_char(date, 'YYYY-MM')"
	}

	return "strftime('%Y-%m', date)"
}

// ExpenseSummary aggregates the user's expenses matching the filter.
//
// Grouping by category puts all uncategorized expenses into a single
// group; groups are ordered ascending by category name with the
// uncategorized group collating like an empty name. Grouping by month
// orders ascending by month. An unknown grouping falls back to category.
func ExpenseSummary(db *gorm.DB, userID uuid.UUID, groupBy SummaryGrouping, filter ExpenseFilter) (Summary, error) {
	if groupBy != GroupByMonth {
		groupBy = GroupByCategory
	}

	summary := Summary{
		GroupBy: groupBy,
		Groups:  []SummaryGroup{},
	}

	// Overall total over the entire filtered set. SUM over no rows is NULL,
	// which scans to the zero decimal.
	var total decimal.NullDecimal
	err := filteredExpenses(db, userID, filter).Select("SUM(amount)").Row().Scan(&total)
	if err != nil {
		return Summary{}, fmt.Errorf("summing expenses failed: %w", err)
	}
	summary.Total = total.Decimal

	// Currency reconciliation: a single shared code is reported as is, more
	// than one becomes the mixed sentinel, an empty set has no currency.
	var currencies []string
	err = filteredExpenses(db, userID, filter).Distinct().Pluck("currency", &currencies).Error
	if err != nil {
		return Summary{}, fmt.Errorf("getting expense currencies failed: %w", err)
	}

	switch len(currencies) {
	case 0:
	case 1:
		summary.Currency = &currencies[0]
	default:
		mixed := MixedCurrencies
		summary.Currency = &mixed
	}

	if groupBy == GroupByMonth {
		var groups []struct {
			Month string
			Total decimal.Decimal
		}

		err = filteredExpenses(db, userID, filter).
			Select(monthExpression(db) + " AS month, SUM(amount) AS total").
			Group("month").
			Order("month ASC").
			Scan(&groups).Error
		if err != nil {
			return Summary{}, fmt.Errorf("grouping expenses by month failed: %w", err)
		}

		for _, group := range groups {
			summary.Groups = append(summary.Groups, SummaryGroup{
				Label: group.Month,
				Total: group.Total,
			})
		}

		return summary, nil
	}

	var groups []categoryGroup
	err = filteredExpenses(db, userID, filter).
		Select("expenses.category_id AS category_id, categories.name AS category_name, SUM(expenses.amount) AS total").
		Joins("LEFT JOIN categories ON categories.id = expenses.category_id").
		Group("expenses.category_id").
		Group("categories.name").
		Scan(&groups).Error
	if err != nil {
		return Summary{}, fmt.Errorf("grouping expenses by category failed: %w", err)
	}

	// Order ascending by category name. The uncategorized group has no name
	// and collates like an empty one, placing it first.
	collator := collate.New(language.Und)
	slices.SortStableFunc(groups, func(a, b categoryGroup) int {
		return collator.CompareString(a.sortName(), b.sortName())
	})

	for _, group := range groups {
		label := UncategorizedLabel
		if group.CategoryName != nil {
			label = *group.CategoryName
		}

		summary.Groups = append(summary.Groups, SummaryGroup{
			Label:      label,
			CategoryID: group.CategoryID,
			Total:      group.Total,
		})
	}

	return summary, nil
}

// categoryGroup is one row of the category grouping query.
type categoryGroup struct {
	CategoryID   *uuid.UUID
	CategoryName *string
	Total        decimal.Decimal
}

func (g categoryGroup) sortName() string {
	if g.CategoryName == nil {
		return ""
	}

	return *g.CategoryName
}

// UtilizationStatus classifies how much of a budget is used up.
type UtilizationStatus string

const (
	StatusUnder UtilizationStatus = "under"
	StatusOver  UtilizationStatus = "over"
	StatusMet   UtilizationStatus = "met"
)

// BudgetUtilization is the spending of a single budget within its own
// window.
type BudgetUtilization struct {
	Budget    Budget
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	Status    UtilizationStatus
}

// BudgetStatuses computes the utilization of every budget of the user that
// matches the filter.
//
// The filter window only selects budgets by overlap. Spending is always
// aggregated over the budget's own [start date, end date] window, never the
// intersection of the two. The filter category never excludes a budget: a
// budget scoped to a category aggregates that category only, no matter what
// the filter says, and the filter category applies to unscoped budgets.
func BudgetStatuses(db *gorm.DB, userID uuid.UUID, filter ExpenseFilter) ([]BudgetUtilization, error) {
	q := ScopeToOwner(db.Model(&Budget{}), userID).
		Preload("Category").
		Order("start_date DESC, created_at DESC")

	// Overlap test: budget.start <= window.end AND budget.end >= window.start.
	// With a half-open filter, only the given bound applies.
	if filter.From != nil && filter.To != nil {
		q = q.Where("start_date <= ?", *filter.To).Where("end_date >= ?", *filter.From)
	} else if filter.From != nil {
		q = q.Where("end_date >= ?", *filter.From)
	} else if filter.To != nil {
		q = q.Where("start_date <= ?", *filter.To)
	}

	var budgets []Budget
	err := q.Find(&budgets).Error
	if err != nil {
		return nil, fmt.Errorf("getting budgets failed: %w", err)
	}

	// One aggregation per budget: the windows are independent, and the
	// per-budget category scoping cannot be expressed in a single grouped
	// query without losing its precedence over the filter category.
	result := make([]BudgetUtilization, 0, len(budgets))
	for _, budget := range budgets {
		eq := ScopeToOwner(db.Model(&Expense{}), userID).
			Where("date >= ?", budget.StartDate).
			Where("date <= ?", budget.EndDate)

		if budget.CategoryID != nil {
			eq = eq.Where("category_id = ?", *budget.CategoryID)
		} else if filter.CategoryID != nil {
			eq = eq.Where("category_id = ?", *filter.CategoryID)
		}

		var spent decimal.NullDecimal
		err := eq.Select("SUM(amount)").Row().Scan(&spent)
		if err != nil {
			return nil, fmt.Errorf("summing expenses for budget %s failed: %w", budget.ID, err)
		}

		remaining := budget.Amount.Sub(spent.Decimal)
		result = append(result, BudgetUtilization{
			Budget:    budget,
			Spent:     spent.Decimal,
			Remaining: remaining,
			Status:    utilization(remaining),
		})
	}

	return result, nil
}

func utilization(remaining decimal.Decimal) UtilizationStatus {
	switch remaining.Sign() {
	case 1:
		return StatusUnder
	case -1:
		return StatusOver
	default:
		return StatusMet
	}
}
