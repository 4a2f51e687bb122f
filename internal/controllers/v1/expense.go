package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outlay-app/backend/internal/auth"
	"github.com/outlay-app/backend/internal/httperror"
	"github.com/outlay-app/backend/internal/httputil"
	"github.com/outlay-app/backend/internal/models"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.PUT("/:id", ReplaceExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

func getExpense(c *gin.Context) (models.Expense, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httperror.New(err))
		return models.Expense{}, false
	}

	var expense models.Expense
	err := models.ScopeToOwner(models.DB, auth.UserID(c)).First(&expense, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return models.Expense{}, false
	}

	return expense, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	if _, ok := getExpense(c); !ok {
		return
	}

	httputil.OptionsGetPatchPutDelete(c)
}

// @Summary		Create expense
// @Description	Creates a new expense
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if editable.Date.IsZero() {
		c.JSON(http.StatusBadRequest, httperror.New(errDateRequired))
		return
	}

	expense := editable.model(auth.UserID(c))

	if err := expense.ValidateReferences(models.DB); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if err := models.DB.Create(&expense).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, newExpense(expense))
}

// @Summary		Get expenses
// @Description	Returns the expenses of the authenticated user
// @Tags			Expenses
// @Produce		json
// @Success		200	{array}	ExpenseResponse
// @Failure		500	{object}	httperror.Error
// @Router			/v1/expenses [get]
// @Param			start_date	query	string	false	"Only expenses on or after this date (YYYY-MM-DD)"
// @Param			end_date	query	string	false	"Only expenses on or before this date (YYYY-MM-DD)"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			ordering	query	string	false	"Order by date, amount or created_at, prefix with - for descending"
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Unparseable values are treated as absent
	_ = c.Bind(&filter)

	q := filter.apply(models.ScopeToOwner(models.DB.Model(&models.Expense{}), auth.UserID(c)))

	q = q.Order(httputil.Ordering(c, map[string]string{
		"date":       "date",
		"amount":     "amount",
		"created_at": "created_at",
	}, "date DESC, created_at DESC"))

	var expenses []models.Expense
	if err := q.Find(&expenses).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data := make([]ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(expense))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	expense, ok := getExpense(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newExpense(expense))
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	expense, ok := getExpense(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var data ExpenseEditable
	if err := httputil.BindData(c, &data); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	updated := data.model(expense.UserID)
	if err := updated.ValidateReferences(models.DB); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(updated).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newExpense(expense))
}

// @Summary		Replace expense
// @Description	Replaces all values of an existing expense
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [put]
func ReplaceExpense(c *gin.Context) {
	expense, ok := getExpense(c)
	if !ok {
		return
	}

	var data ExpenseEditable
	if err := httputil.BindData(c, &data); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if data.Date.IsZero() {
		c.JSON(http.StatusBadRequest, httperror.New(errDateRequired))
		return
	}

	updated := data.model(expense.UserID)
	if err := updated.ValidateReferences(models.DB); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err := models.DB.Model(&expense).
		Select("Amount", "Currency", "Description", "Date", "CategoryID", "RecurringRuleID").
		Updates(updated).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newExpense(expense))
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	expense, ok := getExpense(c)
	if !ok {
		return
	}

	if err := models.DB.Delete(&expense).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
