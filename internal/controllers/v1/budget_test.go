package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/outlay-app/backend/internal/controllers/v1"
	"github.com/outlay-app/backend/internal/types"
	"github.com/outlay-app/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateBudget() {
	_, headers := suite.createTestUser()

	budget := suite.createTestBudget(v1.BudgetEditable{
		Name:      "Groceries March",
		Amount:    decimal.NewFromFloat(300),
		StartDate: types.NewDate(2024, 3, 1),
		EndDate:   types.NewDate(2024, 3, 31),
	}, headers)

	suite.Assert().Equal("300.00", budget.Amount)
	suite.Assert().Equal("USD", budget.Currency)
	suite.Assert().Equal("monthly", string(budget.Period), "period defaults to monthly")
}

func (suite *TestSuiteStandard) TestCreateBudgetInvalidWindow() {
	_, headers := suite.createTestUser()

	tests := []struct {
		name     string
		body     v1.BudgetEditable
		expected string
	}{
		{
			"dates missing",
			v1.BudgetEditable{Amount: decimal.NewFromFloat(300)},
			"start_date and end_date must be set",
		},
		{
			"start date missing",
			v1.BudgetEditable{Amount: decimal.NewFromFloat(300), EndDate: types.NewDate(2024, 3, 31)},
			"start_date and end_date must be set",
		},
		{
			"window inverted",
			v1.BudgetEditable{Amount: decimal.NewFromFloat(300), StartDate: types.NewDate(2024, 3, 31), EndDate: types.NewDate(2024, 3, 1)},
			"start_date must be before or equal to end_date",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, "/v1/budgets", tt.body, headers)
			test.AssertHTTPStatus(t, http.StatusBadRequest, &r)
			suite.Assert().Equal(tt.expected, test.DecodeError(t, &r))
		})
	}
}

func (suite *TestSuiteStandard) TestCreateBudgetSingleDayWindow() {
	_, headers := suite.createTestUser()

	budget := suite.createTestBudget(v1.BudgetEditable{
		Amount:    decimal.NewFromFloat(50),
		StartDate: types.NewDate(2024, 3, 15),
		EndDate:   types.NewDate(2024, 3, 15),
	}, headers)

	suite.Assert().Equal("2024-03-15", budget.StartDate.String())
	suite.Assert().Equal("2024-03-15", budget.EndDate.String())
}

func (suite *TestSuiteStandard) TestGetBudgetsOverlapFilter() {
	_, headers := suite.createTestUser()

	_ = suite.createTestBudget(v1.BudgetEditable{
		Name:      "March",
		Amount:    decimal.NewFromFloat(300),
		StartDate: types.NewDate(2024, 3, 1),
		EndDate:   types.NewDate(2024, 3, 31),
	}, headers)
	_ = suite.createTestBudget(v1.BudgetEditable{
		Name:      "April",
		Amount:    decimal.NewFromFloat(300),
		StartDate: types.NewDate(2024, 4, 1),
		EndDate:   types.NewDate(2024, 4, 30),
	}, headers)

	tests := []struct {
		query    string
		expected int
	}{
		{"", 2},
		{"start_date=2024-03-15", 2}, // March still overlaps
		{"start_date=2024-04-01", 1},
		{"end_date=2024-03-31", 1},
		{"start_date=2024-03-15&end_date=2024-03-20", 1},
		{"start_date=never", 2}, // unparseable values are ignored
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodGet, fmt.Sprintf("/v1/budgets?%s", tt.query), nil, headers)
			test.AssertHTTPStatus(t, http.StatusOK, &r)

			var budgets []v1.BudgetResponse
			test.DecodeResponse(t, &r, &budgets)
			suite.Assert().Len(budgets, tt.expected)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsScopedToUser() {
	_, headers := suite.createTestUser()
	_, otherHeaders := suite.createTestUser()

	budget := suite.createTestBudget(v1.BudgetEditable{Amount: decimal.NewFromFloat(300)}, headers)

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/budgets/"+budget.ID.String(), nil, otherHeaders)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestUpdateBudget() {
	_, headers := suite.createTestUser()
	budget := suite.createTestBudget(v1.BudgetEditable{
		Name:      "March",
		Amount:    decimal.NewFromFloat(300),
		StartDate: types.NewDate(2024, 3, 1),
		EndDate:   types.NewDate(2024, 3, 31),
	}, headers)

	r := test.Request(suite.T(), suite.router, http.MethodPatch, "/v1/budgets/"+budget.ID.String(), map[string]any{
		"amount": "350.00",
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var updated v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("350.00", updated.Amount)
	suite.Assert().Equal("March", updated.Name)
}

func (suite *TestSuiteStandard) TestUpdateBudgetWindowStaysValid() {
	_, headers := suite.createTestUser()
	budget := suite.createTestBudget(v1.BudgetEditable{
		Amount:    decimal.NewFromFloat(300),
		StartDate: types.NewDate(2024, 3, 1),
		EndDate:   types.NewDate(2024, 3, 31),
	}, headers)

	// Moving the end before the existing start is rejected
	r := test.Request(suite.T(), suite.router, http.MethodPatch, "/v1/budgets/"+budget.ID.String(), map[string]any{
		"end_date": "2024-02-01",
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
	suite.Assert().Equal("start_date must be before or equal to end_date", test.DecodeError(suite.T(), &r))

	// Moving both dates together is fine
	r = test.Request(suite.T(), suite.router, http.MethodPatch, "/v1/budgets/"+budget.ID.String(), map[string]any{
		"start_date": "2024-04-01",
		"end_date":   "2024-04-30",
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
}

func (suite *TestSuiteStandard) TestReplaceBudget() {
	_, headers := suite.createTestUser()
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"}, headers)
	budget := suite.createTestBudget(v1.BudgetEditable{
		Name:       "March",
		Amount:     decimal.NewFromFloat(300),
		StartDate:  types.NewDate(2024, 3, 1),
		EndDate:    types.NewDate(2024, 3, 31),
		CategoryID: &category.ID,
	}, headers)

	r := test.Request(suite.T(), suite.router, http.MethodPut, "/v1/budgets/"+budget.ID.String(), v1.BudgetEditable{
		Name:      "April",
		Amount:    decimal.NewFromFloat(400),
		StartDate: types.NewDate(2024, 4, 1),
		EndDate:   types.NewDate(2024, 4, 30),
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var replaced v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &replaced)
	suite.Assert().Equal("April", replaced.Name)
	suite.Assert().Equal("400.00", replaced.Amount)
	suite.Assert().Nil(replaced.CategoryID, "a PUT without category_id unscopes the budget")
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	_, headers := suite.createTestUser()
	budget := suite.createTestBudget(v1.BudgetEditable{Amount: decimal.NewFromFloat(300)}, headers)

	r := test.Request(suite.T(), suite.router, http.MethodDelete, "/v1/budgets/"+budget.ID.String(), nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/budgets/"+budget.ID.String(), nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}
