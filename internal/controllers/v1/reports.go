package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outlay-app/backend/internal/auth"
	"github.com/outlay-app/backend/internal/httperror"
	"github.com/outlay-app/backend/internal/httputil"
	"github.com/outlay-app/backend/internal/models"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", OptionsReport)
	r.GET("/summary", GetExpenseSummary)

	r.OPTIONS("/budget-status", OptionsReport)
	r.GET("/budget-status", GetBudgetStatus)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/summary [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Expense summary
// @Description	Aggregates the expenses of the authenticated user, grouped by category or month
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		500	{object}	httperror.Error
// @Router			/v1/reports/summary [get]
// @Param			group_by	query	string	false	"Group by category (default) or month"
// @Param			start_date	query	string	false	"Only expenses on or after this date (YYYY-MM-DD)"
// @Param			end_date	query	string	false	"Only expenses on or before this date (YYYY-MM-DD)"
// @Param			category	query	string	false	"Restrict to this category ID"
func GetExpenseSummary(c *gin.Context) {
	var query ReportQueryFilter

	// Unparseable values are treated as absent
	_ = c.Bind(&query)

	summary, err := models.ExpenseSummary(models.DB, auth.UserID(c), models.SummaryGrouping(query.GroupBy), query.filter())
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newSummary(summary))
}

// @Summary		Budget status
// @Description	Returns the utilization of every budget overlapping the reporting window
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	BudgetStatusListResponse
// @Failure		500	{object}	httperror.Error
// @Router			/v1/reports/budget-status [get]
// @Param			start_date	query	string	false	"Only budgets overlapping this date or later (YYYY-MM-DD)"
// @Param			end_date	query	string	false	"Only budgets overlapping this date or earlier (YYYY-MM-DD)"
// @Param			category	query	string	false	"Category ID used for the spending of budgets not scoped to a category"
func GetBudgetStatus(c *gin.Context) {
	var query ReportQueryFilter

	// Unparseable values are treated as absent
	_ = c.Bind(&query)

	statuses, err := models.BudgetStatuses(models.DB, auth.UserID(c), query.filter())
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	results := make([]BudgetStatusResponse, 0, len(statuses))
	for _, utilization := range statuses {
		results = append(results, newBudgetStatus(utilization))
	}

	c.JSON(http.StatusOK, BudgetStatusListResponse{Results: results})
}
