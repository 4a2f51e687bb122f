package models_test

import (
	"github.com/outlay-app/backend/internal/models"
	"github.com/outlay-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpenseSummaryByCategory() {
	user := suite.createTestUser(models.User{})
	groceries := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries", IsActive: true})
	transport := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Transport", IsActive: true})

	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(50), Date: types.NewDate(2024, 3, 1), CategoryID: &groceries.ID})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(70), Date: types.NewDate(2024, 3, 2), CategoryID: &groceries.ID})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(30), Date: types.NewDate(2024, 3, 3), CategoryID: &transport.ID})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(20), Date: types.NewDate(2024, 3, 4)})

	summary, err := models.ExpenseSummary(models.DB, user.ID, models.GroupByCategory, models.ExpenseFilter{})
	suite.Require().Nil(err)

	suite.Assert().True(summary.Total.Equal(decimal.NewFromFloat(170)), "Total is %s", summary.Total)
	suite.Require().Len(summary.Groups, 3)

	// Uncategorized collates like an empty name and comes first
	suite.Assert().Equal(models.UncategorizedLabel, summary.Groups[0].Label)
	suite.Assert().Nil(summary.Groups[0].CategoryID)
	suite.Assert().True(summary.Groups[0].Total.Equal(decimal.NewFromFloat(20)))

	suite.Assert().Equal("Groceries", summary.Groups[1].Label)
	suite.Require().NotNil(summary.Groups[1].CategoryID)
	suite.Assert().Equal(groceries.ID, *summary.Groups[1].CategoryID)
	suite.Assert().True(summary.Groups[1].Total.Equal(decimal.NewFromFloat(120)))

	suite.Assert().Equal("Transport", summary.Groups[2].Label)
	suite.Assert().True(summary.Groups[2].Total.Equal(decimal.NewFromFloat(30)))
}

func (suite *TestSuiteStandard) TestExpenseSummaryByMonth() {
	user := suite.createTestUser(models.User{})

	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(10), Date: types.NewDate(2024, 1, 15)})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(20), Date: types.NewDate(2024, 1, 31)})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(5), Date: types.NewDate(2024, 3, 1)})

	summary, err := models.ExpenseSummary(models.DB, user.ID, models.GroupByMonth, models.ExpenseFilter{})
	suite.Require().Nil(err)

	suite.Assert().True(summary.Total.Equal(decimal.NewFromFloat(35)))
	suite.Require().Len(summary.Groups, 2)

	suite.Assert().Equal("2024-01", summary.Groups[0].Label)
	suite.Assert().True(summary.Groups[0].Total.Equal(decimal.NewFromFloat(30)))
	suite.Assert().Nil(summary.Groups[0].CategoryID)

	suite.Assert().Equal("2024-03", summary.Groups[1].Label)
	suite.Assert().True(summary.Groups[1].Total.Equal(decimal.NewFromFloat(5)))
}

func (suite *TestSuiteStandard) TestExpenseSummaryUnknownGrouping() {
	user := suite.createTestUser(models.User{})

	summary, err := models.ExpenseSummary(models.DB, user.ID, "color", models.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.GroupByCategory, summary.GroupBy)
}

func (suite *TestSuiteStandard) TestExpenseSummaryCurrency() {
	user := suite.createTestUser(models.User{})

	// No expenses: no currency at all
	summary, err := models.ExpenseSummary(models.DB, user.ID, models.GroupByCategory, models.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Assert().Nil(summary.Currency)
	suite.Assert().True(summary.Total.IsZero())
	suite.Assert().Empty(summary.Groups)

	// A single currency is reported as is
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(10), Date: types.NewDate(2024, 1, 1)})
	summary, err = models.ExpenseSummary(models.DB, user.ID, models.GroupByCategory, models.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Require().NotNil(summary.Currency)
	suite.Assert().Equal("USD", *summary.Currency)

	// Mixed currencies are never converted
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(10), Currency: "EUR", Date: types.NewDate(2024, 1, 2)})
	summary, err = models.ExpenseSummary(models.DB, user.ID, models.GroupByCategory, models.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Require().NotNil(summary.Currency)
	suite.Assert().Equal(models.MixedCurrencies, *summary.Currency)
}

func (suite *TestSuiteStandard) TestExpenseSummaryFilter() {
	user := suite.createTestUser(models.User{})
	groceries := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})

	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(10), Date: types.NewDate(2024, 2, 29), CategoryID: &groceries.ID})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(20), Date: types.NewDate(2024, 3, 1), CategoryID: &groceries.ID})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(40), Date: types.NewDate(2024, 3, 31)})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(80), Date: types.NewDate(2024, 4, 1)})

	// The window is inclusive on both ends
	from := types.NewDate(2024, 3, 1)
	to := types.NewDate(2024, 3, 31)
	summary, err := models.ExpenseSummary(models.DB, user.ID, models.GroupByCategory, models.ExpenseFilter{From: &from, To: &to})
	suite.Require().Nil(err)
	suite.Assert().True(summary.Total.Equal(decimal.NewFromFloat(60)), "Total is %s", summary.Total)

	// Category filter
	summary, err = models.ExpenseSummary(models.DB, user.ID, models.GroupByCategory, models.ExpenseFilter{CategoryID: &groceries.ID})
	suite.Require().Nil(err)
	suite.Assert().True(summary.Total.Equal(decimal.NewFromFloat(30)))
	suite.Require().Len(summary.Groups, 1)
	suite.Assert().Equal("Groceries", summary.Groups[0].Label)
}

func (suite *TestSuiteStandard) TestExpenseSummaryByCategoryFiltered() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	// Both users own a category named Groceries. The grouping joins the
	// categories table, so the owner condition has to single out the
	// user's expenses regardless.
	groceries := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})
	otherGroceries := suite.createTestCategory(models.Category{UserID: other.ID, Name: "Groceries"})

	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(25), Date: types.NewDate(2024, 3, 10), CategoryID: &groceries.ID})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(35), Date: types.NewDate(2024, 4, 10), CategoryID: &groceries.ID})
	suite.createTestExpense(models.Expense{UserID: other.ID, Amount: decimal.NewFromFloat(999), Date: types.NewDate(2024, 3, 10), CategoryID: &otherGroceries.ID})

	from := types.NewDate(2024, 3, 1)
	to := types.NewDate(2024, 3, 31)
	summary, err := models.ExpenseSummary(models.DB, user.ID, models.GroupByCategory, models.ExpenseFilter{From: &from, To: &to, CategoryID: &groceries.ID})
	suite.Require().Nil(err)

	suite.Assert().True(summary.Total.Equal(decimal.NewFromFloat(25)), "Total is %s", summary.Total)
	suite.Require().Len(summary.Groups, 1)
	suite.Assert().Equal("Groceries", summary.Groups[0].Label)
	suite.Require().NotNil(summary.Groups[0].CategoryID)
	suite.Assert().Equal(groceries.ID, *summary.Groups[0].CategoryID)
	suite.Assert().True(summary.Groups[0].Total.Equal(decimal.NewFromFloat(25)))
}

func (suite *TestSuiteStandard) TestExpenseSummaryScopedToUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(10), Date: types.NewDate(2024, 1, 1)})
	suite.createTestExpense(models.Expense{UserID: other.ID, Amount: decimal.NewFromFloat(999), Date: types.NewDate(2024, 1, 1)})

	summary, err := models.ExpenseSummary(models.DB, user.ID, models.GroupByCategory, models.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Assert().True(summary.Total.Equal(decimal.NewFromFloat(10)))
}

func (suite *TestSuiteStandard) TestBudgetStatuses() {
	user := suite.createTestUser(models.User{})
	groceries := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})

	budget := suite.createTestBudget(models.Budget{
		UserID:    user.ID,
		Name:      "March",
		Amount:    decimal.NewFromFloat(300),
		StartDate: types.NewDate(2024, 3, 1),
		EndDate:   types.NewDate(2024, 3, 31),
	})

	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(120), Date: types.NewDate(2024, 3, 5), CategoryID: &groceries.ID})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(80), Date: types.NewDate(2024, 3, 20)})

	// Outside the budget window, must not count
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(500), Date: types.NewDate(2024, 4, 1)})

	statuses, err := models.BudgetStatuses(models.DB, user.ID, models.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Require().Len(statuses, 1)

	suite.Assert().Equal(budget.ID, statuses[0].Budget.ID)
	suite.Assert().True(statuses[0].Spent.Equal(decimal.NewFromFloat(200)), "Spent is %s", statuses[0].Spent)
	suite.Assert().True(statuses[0].Remaining.Equal(decimal.NewFromFloat(100)))
	suite.Assert().Equal(models.StatusUnder, statuses[0].Status)
}

func (suite *TestSuiteStandard) TestBudgetStatusBoundaries() {
	user := suite.createTestUser(models.User{})

	suite.createTestBudget(models.Budget{
		UserID:    user.ID,
		Name:      "Met",
		Amount:    decimal.NewFromFloat(100),
		StartDate: types.NewDate(2024, 3, 1),
		EndDate:   types.NewDate(2024, 3, 31),
	})

	// Exactly the budgeted amount, on the window boundaries
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(60), Date: types.NewDate(2024, 3, 1)})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(40), Date: types.NewDate(2024, 3, 31)})

	statuses, err := models.BudgetStatuses(models.DB, user.ID, models.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Require().Len(statuses, 1)

	suite.Assert().True(statuses[0].Remaining.IsZero())
	suite.Assert().Equal(models.StatusMet, statuses[0].Status)

	// One cent more tips it over
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(0.01), Date: types.NewDate(2024, 3, 15)})

	statuses, err = models.BudgetStatuses(models.DB, user.ID, models.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Require().Len(statuses, 1)
	suite.Assert().Equal(models.StatusOver, statuses[0].Status)
}

func (suite *TestSuiteStandard) TestBudgetStatusCategoryScope() {
	user := suite.createTestUser(models.User{})
	groceries := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})
	transport := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Transport"})

	suite.createTestBudget(models.Budget{
		UserID:     user.ID,
		Name:       "Groceries March",
		Amount:     decimal.NewFromFloat(300),
		StartDate:  types.NewDate(2024, 3, 1),
		EndDate:    types.NewDate(2024, 3, 31),
		CategoryID: &groceries.ID,
	})

	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(200), Date: types.NewDate(2024, 3, 5), CategoryID: &groceries.ID})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(150), Date: types.NewDate(2024, 3, 6), CategoryID: &transport.ID})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(70), Date: types.NewDate(2024, 3, 7)})

	statuses, err := models.BudgetStatuses(models.DB, user.ID, models.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Require().Len(statuses, 1)
	suite.Assert().True(statuses[0].Spent.Equal(decimal.NewFromFloat(200)), "Spent is %s", statuses[0].Spent)
	suite.Assert().Equal(models.StatusUnder, statuses[0].Status)

	// The budget's own category wins over a different filter category
	statuses, err = models.BudgetStatuses(models.DB, user.ID, models.ExpenseFilter{CategoryID: &transport.ID})
	suite.Require().Nil(err)
	suite.Require().Len(statuses, 1)
	suite.Assert().True(statuses[0].Spent.Equal(decimal.NewFromFloat(200)), "Spent is %s", statuses[0].Spent)
	suite.Assert().True(statuses[0].Remaining.Equal(decimal.NewFromFloat(100)))
	suite.Assert().Equal(models.StatusUnder, statuses[0].Status)
}

func (suite *TestSuiteStandard) TestBudgetStatusFilterCategoryOnUnscoped() {
	user := suite.createTestUser(models.User{})
	groceries := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})

	suite.createTestBudget(models.Budget{
		UserID:    user.ID,
		Name:      "All spending",
		Amount:    decimal.NewFromFloat(1000),
		StartDate: types.NewDate(2024, 3, 1),
		EndDate:   types.NewDate(2024, 3, 31),
	})

	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(200), Date: types.NewDate(2024, 3, 5), CategoryID: &groceries.ID})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(300), Date: types.NewDate(2024, 3, 6)})

	// An unscoped budget takes the filter category for its spending
	statuses, err := models.BudgetStatuses(models.DB, user.ID, models.ExpenseFilter{CategoryID: &groceries.ID})
	suite.Require().Nil(err)
	suite.Require().Len(statuses, 1)
	suite.Assert().True(statuses[0].Spent.Equal(decimal.NewFromFloat(200)), "Spent is %s", statuses[0].Spent)
}

func (suite *TestSuiteStandard) TestBudgetStatusWindowOverlap() {
	user := suite.createTestUser(models.User{})

	march := suite.createTestBudget(models.Budget{
		UserID:    user.ID,
		Name:      "March",
		Amount:    decimal.NewFromFloat(100),
		StartDate: types.NewDate(2024, 3, 1),
		EndDate:   types.NewDate(2024, 3, 31),
	})

	suite.createTestBudget(models.Budget{
		UserID:    user.ID,
		Name:      "May",
		Amount:    decimal.NewFromFloat(100),
		StartDate: types.NewDate(2024, 5, 1),
		EndDate:   types.NewDate(2024, 5, 31),
	})

	// Spending outside the filter window still counts for an overlapping
	// budget: the budget is aggregated over its own window
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(42), Date: types.NewDate(2024, 3, 2)})

	from := types.NewDate(2024, 3, 15)
	to := types.NewDate(2024, 4, 15)
	statuses, err := models.BudgetStatuses(models.DB, user.ID, models.ExpenseFilter{From: &from, To: &to})
	suite.Require().Nil(err)
	suite.Require().Len(statuses, 1)
	suite.Assert().Equal(march.ID, statuses[0].Budget.ID)
	suite.Assert().True(statuses[0].Spent.Equal(decimal.NewFromFloat(42)))
}

func (suite *TestSuiteStandard) TestBudgetStatusOrdering() {
	user := suite.createTestUser(models.User{})

	first := suite.createTestBudget(models.Budget{
		UserID:    user.ID,
		Name:      "February",
		Amount:    decimal.NewFromFloat(100),
		StartDate: types.NewDate(2024, 2, 1),
		EndDate:   types.NewDate(2024, 2, 29),
	})

	second := suite.createTestBudget(models.Budget{
		UserID:    user.ID,
		Name:      "March",
		Amount:    decimal.NewFromFloat(100),
		StartDate: types.NewDate(2024, 3, 1),
		EndDate:   types.NewDate(2024, 3, 31),
	})

	statuses, err := models.BudgetStatuses(models.DB, user.ID, models.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Require().Len(statuses, 2)

	// Newest window first
	suite.Assert().Equal(second.ID, statuses[0].Budget.ID)
	suite.Assert().Equal(first.ID, statuses[1].Budget.ID)
}

func (suite *TestSuiteStandard) TestBudgetStatusScopedToUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	suite.createTestBudget(models.Budget{
		UserID:    other.ID,
		Name:      "Not yours",
		Amount:    decimal.NewFromFloat(100),
		StartDate: types.NewDate(2024, 3, 1),
		EndDate:   types.NewDate(2024, 3, 31),
	})

	statuses, err := models.BudgetStatuses(models.DB, user.ID, models.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Assert().Len(statuses, 0)
}

func (suite *TestSuiteStandard) TestBudgetStatusPreloadsCategory() {
	user := suite.createTestUser(models.User{})
	groceries := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})

	suite.createTestBudget(models.Budget{
		UserID:     user.ID,
		Name:       "Groceries March",
		Amount:     decimal.NewFromFloat(100),
		StartDate:  types.NewDate(2024, 3, 1),
		EndDate:    types.NewDate(2024, 3, 31),
		CategoryID: &groceries.ID,
	})

	statuses, err := models.BudgetStatuses(models.DB, user.ID, models.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Require().Len(statuses, 1)
	suite.Require().NotNil(statuses[0].Budget.Category)
	suite.Assert().Equal("Groceries", statuses[0].Budget.Category.Name)
}
