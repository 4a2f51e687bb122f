package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OptionsGet handles the OPTIONS method for read only endpoints.
func OptionsGet(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

// OptionsGetPost handles the OPTIONS method for collection endpoints.
func OptionsGetPost(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, POST")
	c.Status(http.StatusNoContent)
}

// OptionsPost handles the OPTIONS method for write only endpoints.
func OptionsPost(c *gin.Context) {
	c.Header("allow", "OPTIONS, POST")
	c.Status(http.StatusNoContent)
}

// OptionsGetPatchPutDelete handles the OPTIONS method for detail endpoints.
func OptionsGetPatchPutDelete(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, PATCH, PUT, DELETE")
	c.Status(http.StatusNoContent)
}
