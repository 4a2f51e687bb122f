// Package healthz implements the health check endpoints.
package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outlay-app/backend/internal/httperror"
	"github.com/outlay-app/backend/internal/httputil"
	"github.com/outlay-app/backend/internal/models"
)

// HealthResponse is the body of the health check variant that answers with
// a message.
type HealthResponse struct {
	Message string `json:"message" example:"Server is up!"`
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httperror.Error
// @Router			/healthz [get]
func Get(c *gin.Context) {
	if !ping(c) {
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get health
// @Description	Returns the application health with a message body
// @Tags			General
// @Produce		json
// @Success		200	{object}	HealthResponse
// @Failure		500	{object}	httperror.Error
// @Router			/health [get]
func GetWithMessage(c *gin.Context) {
	if !ping(c) {
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Message: "Server is up!"})
}

// ping checks the database connection and writes a 500 if it is down.
func ping(c *gin.Context) bool {
	sqlDB, err := models.DB.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return false
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return false
	}

	return true
}
