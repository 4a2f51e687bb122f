// Package v1 implements the v1 API of the Outlay backend.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outlay-app/backend/internal/httputil"
)

// RegisterRootRoutes registers the entrypoint routes of the v1 API.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Auth           string `json:"auth" example:"https://example.com/api/v1/auth"`                       // Registration and login
	Categories     string `json:"categories" example:"https://example.com/api/v1/categories"`           // Categories of the authenticated user
	Expenses       string `json:"expenses" example:"https://example.com/api/v1/expenses"`               // Expenses of the authenticated user
	Budgets        string `json:"budgets" example:"https://example.com/api/v1/budgets"`                 // Budgets of the authenticated user
	RecurringRules string `json:"recurring_rules" example:"https://example.com/api/v1/recurring-rules"` // Recurring expense rules of the authenticated user
	Reports        string `json:"reports" example:"https://example.com/api/v1/reports"`                 // Reporting endpoints
}

// @Summary		v1 API
// @Description	Entrypoint for the v1 API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c) + "/v1"

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Auth:           url + "/auth",
			Categories:     url + "/categories",
			Expenses:       url + "/expenses",
			Budgets:        url + "/budgets",
			RecurringRules: url + "/recurring-rules",
			Reports:        url + "/reports",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
