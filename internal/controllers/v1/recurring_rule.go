package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outlay-app/backend/internal/auth"
	"github.com/outlay-app/backend/internal/httperror"
	"github.com/outlay-app/backend/internal/httputil"
	"github.com/outlay-app/backend/internal/models"
)

// RegisterRecurringRuleRoutes registers the routes for recurring rules with
// the RouterGroup that is passed.
func RegisterRecurringRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecurringRuleList)
		r.GET("", GetRecurringRules)
		r.POST("", CreateRecurringRule)
	}

	// Recurring rule with ID
	{
		r.OPTIONS("/:id", OptionsRecurringRuleDetail)
		r.GET("/:id", GetRecurringRule)
		r.PATCH("/:id", UpdateRecurringRule)
		r.PUT("/:id", ReplaceRecurringRule)
		r.DELETE("/:id", DeleteRecurringRule)
	}
}

func getRecurringRule(c *gin.Context) (models.RecurringRule, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httperror.New(err))
		return models.RecurringRule{}, false
	}

	var rule models.RecurringRule
	err := models.ScopeToOwner(models.DB, auth.UserID(c)).First(&rule, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return models.RecurringRule{}, false
	}

	return rule, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringRules
// @Success		204
// @Router			/v1/recurring-rules [options]
func OptionsRecurringRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringRules
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-rules/{id} [options]
func OptionsRecurringRuleDetail(c *gin.Context) {
	if _, ok := getRecurringRule(c); !ok {
		return
	}

	httputil.OptionsGetPatchPutDelete(c)
}

// @Summary		Create recurring rule
// @Description	Creates a new recurring rule
// @Tags			RecurringRules
// @Produce		json
// @Success		201		{object}	RecurringRuleResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			rule	body		RecurringRuleEditable	true	"RecurringRule"
// @Router			/v1/recurring-rules [post]
func CreateRecurringRule(c *gin.Context) {
	var editable RecurringRuleEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if editable.StartDate.IsZero() {
		c.JSON(http.StatusBadRequest, httperror.New(errDateRequired))
		return
	}

	rule := editable.model(auth.UserID(c))

	if err := rule.ValidateReferences(models.DB); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if err := models.DB.Create(&rule).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, newRecurringRule(rule))
}

// @Summary		Get recurring rules
// @Description	Returns the recurring rules of the authenticated user
// @Tags			RecurringRules
// @Produce		json
// @Success		200	{array}	RecurringRuleResponse
// @Failure		500	{object}	httperror.Error
// @Router			/v1/recurring-rules [get]
// @Param			cadence		query	string	false	"Filter by cadence"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			ordering	query	string	false	"Order by name, start_date or created_at, prefix with - for descending"
func GetRecurringRules(c *gin.Context) {
	var filter RecurringRuleQueryFilter

	// Unparseable values are treated as absent
	_ = c.Bind(&filter)

	q := filter.apply(models.ScopeToOwner(models.DB.Model(&models.RecurringRule{}), auth.UserID(c)))

	q = q.Order(httputil.Ordering(c, map[string]string{
		"name":       "name",
		"start_date": "start_date",
		"created_at": "created_at",
	}, "name ASC"))

	var rules []models.RecurringRule
	if err := q.Find(&rules).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data := make([]RecurringRuleResponse, 0, len(rules))
	for _, rule := range rules {
		data = append(data, newRecurringRule(rule))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get recurring rule
// @Description	Returns a specific recurring rule
// @Tags			RecurringRules
// @Produce		json
// @Success		200	{object}	RecurringRuleResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-rules/{id} [get]
func GetRecurringRule(c *gin.Context) {
	rule, ok := getRecurringRule(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newRecurringRule(rule))
}

// @Summary		Update recurring rule
// @Description	Updates an existing recurring rule. Only values to be updated need to be specified.
// @Tags			RecurringRules
// @Accept			json
// @Produce		json
// @Success		200		{object}	RecurringRuleResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		RecurringRuleEditable	true	"RecurringRule"
// @Router			/v1/recurring-rules/{id} [patch]
func UpdateRecurringRule(c *gin.Context) {
	rule, ok := getRecurringRule(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecurringRuleEditable{})
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var data RecurringRuleEditable
	if err := httputil.BindData(c, &data); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	updated := data.model(rule.UserID)
	if err := updated.ValidateReferences(models.DB); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Model(&rule).Select("", updateFields...).Updates(updated).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newRecurringRule(rule))
}

// @Summary		Replace recurring rule
// @Description	Replaces all values of an existing recurring rule
// @Tags			RecurringRules
// @Accept			json
// @Produce		json
// @Success		200		{object}	RecurringRuleResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		RecurringRuleEditable	true	"RecurringRule"
// @Router			/v1/recurring-rules/{id} [put]
func ReplaceRecurringRule(c *gin.Context) {
	rule, ok := getRecurringRule(c)
	if !ok {
		return
	}

	var data RecurringRuleEditable
	if err := httputil.BindData(c, &data); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if data.StartDate.IsZero() {
		c.JSON(http.StatusBadRequest, httperror.New(errDateRequired))
		return
	}

	updated := data.model(rule.UserID)
	if err := updated.ValidateReferences(models.DB); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err := models.DB.Model(&rule).
		Select("Name", "Amount", "Currency", "Cadence", "StartDate", "EndDate", "Description", "CategoryID").
		Updates(updated).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newRecurringRule(rule))
}

// @Summary		Delete recurring rule
// @Description	Deletes a recurring rule. Expenses generated from it are kept.
// @Tags			RecurringRules
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-rules/{id} [delete]
func DeleteRecurringRule(c *gin.Context) {
	rule, ok := getRecurringRule(c)
	if !ok {
		return
	}

	if err := models.DB.Delete(&rule).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
