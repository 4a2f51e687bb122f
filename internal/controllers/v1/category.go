package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outlay-app/backend/internal/auth"
	"github.com/outlay-app/backend/internal/httperror"
	"github.com/outlay-app/backend/internal/httputil"
	"github.com/outlay-app/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PATCH("/:id", UpdateCategory)
		r.PUT("/:id", ReplaceCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// getCategory fetches the category with the given ID if it belongs to the
// authenticated user.
func getCategory(c *gin.Context) (models.Category, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httperror.New(err))
		return models.Category{}, false
	}

	var category models.Category
	err := models.ScopeToOwner(models.DB, auth.UserID(c)).First(&category, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return models.Category{}, false
	}

	return category, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	if _, ok := getCategory(c); !ok {
		return
	}

	httputil.OptionsGetPatchPutDelete(c)
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	category := editable.model(auth.UserID(c))

	if err := models.DB.Create(&category).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, newCategory(category))
}

// @Summary		Get categories
// @Description	Returns the categories of the authenticated user
// @Tags			Categories
// @Produce		json
// @Success		200	{array}	CategoryResponse
// @Failure		500	{object}	httperror.Error
// @Router			/v1/categories [get]
// @Param			is_active	query	bool	false	"Filter by active state"
// @Param			ordering	query	string	false	"Order by name or created_at, prefix with - for descending"
func GetCategories(c *gin.Context) {
	q := models.ScopeToOwner(models.DB.Model(&models.Category{}), auth.UserID(c))

	if active, ok := c.GetQuery("is_active"); ok {
		if active == "true" || active == "false" {
			q = q.Where("is_active = ?", active == "true")
		}
	}

	q = q.Order(httputil.Ordering(c, map[string]string{
		"name":       "name",
		"created_at": "created_at",
	}, "name ASC"))

	var categories []models.Category
	if err := q.Find(&categories).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(category))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	category, ok := getCategory(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newCategory(category))
}

// @Summary		Update category
// @Description	Updates an existing category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	category, ok := getCategory(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var data CategoryEditable
	if err := httputil.BindData(c, &data); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Model(&category).Select("", updateFields...).Updates(data.model(category.UserID)).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newCategory(category))
}

// @Summary		Replace category
// @Description	Replaces all values of an existing category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [put]
func ReplaceCategory(c *gin.Context) {
	category, ok := getCategory(c)
	if !ok {
		return
	}

	var data CategoryEditable
	if err := httputil.BindData(c, &data); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err := models.DB.Model(&category).Select("Name", "Description", "IsActive").Updates(data.model(category.UserID)).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newCategory(category))
}

// @Summary		Delete category
// @Description	Deletes a category. Expenses, budgets and recurring rules referencing it are kept and become uncategorized.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	category, ok := getCategory(c)
	if !ok {
		return
	}

	if err := models.DB.Delete(&category).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
