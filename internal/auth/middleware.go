package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/outlay-app/backend/internal/httperror"
)

const userIDKey = "userID"

var ErrNoToken = errors.New("authentication is required, set the Authorization header to 'Bearer <token>'")

// Middleware verifies the bearer token of the request and stores the
// authenticated user's ID in the context. Requests without a valid token
// are rejected with 401.
func Middleware(m *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(ErrNoToken))
			return
		}

		userID, err := m.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(err))
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the ID of the authenticated user.
//
// Requests never reach a handler using this without passing Middleware
// first. If that assumption breaks, the Nil UUID is returned, which never
// matches a record.
func UserID(c *gin.Context) uuid.UUID {
	id, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil
	}

	userID, ok := id.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}

	return userID
}
