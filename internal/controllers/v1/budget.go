package v1

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/outlay-app/backend/internal/auth"
	"github.com/outlay-app/backend/internal/httperror"
	"github.com/outlay-app/backend/internal/httputil"
	"github.com/outlay-app/backend/internal/models"
	"github.com/outlay-app/backend/internal/types"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.PUT("/:id", ReplaceBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

func getBudget(c *gin.Context) (models.Budget, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httperror.New(err))
		return models.Budget{}, false
	}

	var budget models.Budget
	err := models.ScopeToOwner(models.DB, auth.UserID(c)).First(&budget, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return models.Budget{}, false
	}

	return budget, true
}

// checkWindow validates that the budget window is a valid date range.
func checkWindow(start, end types.Date) error {
	if start.IsZero() || end.IsZero() {
		return errDatesRequired
	}

	if end.Before(start) {
		return errWindowInvalid
	}

	return nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	if _, ok := getBudget(c); !ok {
		return
	}

	httputil.OptionsGetPatchPutDelete(c)
}

// @Summary		Create budget
// @Description	Creates a new budget
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if err := checkWindow(editable.StartDate, editable.EndDate); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	budget := editable.model(auth.UserID(c))

	if err := budget.ValidateReferences(models.DB); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if err := models.DB.Create(&budget).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, newBudget(budget))
}

// @Summary		Get budgets
// @Description	Returns the budgets of the authenticated user
// @Tags			Budgets
// @Produce		json
// @Success		200	{array}	BudgetResponse
// @Failure		500	{object}	httperror.Error
// @Router			/v1/budgets [get]
// @Param			start_date	query	string	false	"Only budgets overlapping this date or later (YYYY-MM-DD)"
// @Param			end_date	query	string	false	"Only budgets overlapping this date or earlier (YYYY-MM-DD)"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			ordering	query	string	false	"Order by start_date, end_date, amount or created_at, prefix with - for descending"
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter

	// Unparseable values are treated as absent
	_ = c.Bind(&filter)

	q := filter.apply(models.ScopeToOwner(models.DB.Model(&models.Budget{}), auth.UserID(c)))

	q = q.Order(httputil.Ordering(c, map[string]string{
		"start_date": "start_date",
		"end_date":   "end_date",
		"amount":     "amount",
		"created_at": "created_at",
	}, "start_date DESC, created_at DESC"))

	var budgets []models.Budget
	if err := q.Find(&budgets).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data := make([]BudgetResponse, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(budget))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	budget, ok := getBudget(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newBudget(budget))
}

// @Summary		Update budget
// @Description	Updates an existing budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	budget, ok := getBudget(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var data BudgetEditable
	if err := httputil.BindData(c, &data); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	// The window must stay valid with the updated dates applied
	start, end := budget.StartDate, budget.EndDate
	if slices.Contains(updateFields, any("StartDate")) {
		start = data.StartDate
	}
	if slices.Contains(updateFields, any("EndDate")) {
		end = data.EndDate
	}
	if err := checkWindow(start, end); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	updated := data.model(budget.UserID)
	if err := updated.ValidateReferences(models.DB); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Model(&budget).Select("", updateFields...).Updates(updated).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newBudget(budget))
}

// @Summary		Replace budget
// @Description	Replaces all values of an existing budget
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [put]
func ReplaceBudget(c *gin.Context) {
	budget, ok := getBudget(c)
	if !ok {
		return
	}

	var data BudgetEditable
	if err := httputil.BindData(c, &data); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if err := checkWindow(data.StartDate, data.EndDate); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	updated := data.model(budget.UserID)
	if err := updated.ValidateReferences(models.DB); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err := models.DB.Model(&budget).
		Select("Name", "Amount", "Currency", "Period", "StartDate", "EndDate", "CategoryID").
		Updates(updated).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newBudget(budget))
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	budget, ok := getBudget(c)
	if !ok {
		return
	}

	if err := models.DB.Delete(&budget).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
