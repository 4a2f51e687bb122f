package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outlay-app/backend/internal/auth"
	"github.com/outlay-app/backend/internal/httperror"
	"github.com/outlay-app/backend/internal/httputil"
	"github.com/outlay-app/backend/internal/models"
)

// RegisterAuthRoutes registers the routes for registration and login with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup, tm *auth.TokenManager) {
	r.OPTIONS("/register", OptionsAuth)
	r.POST("/register", Register)

	r.OPTIONS("/login", OptionsAuth)
	r.POST("/login", Login(tm))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsAuth(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register user
// @Description	Creates a new user account
// @Tags			Auth
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			user	body		Credentials	true	"User"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var credentials Credentials
	if err := httputil.BindData(c, &credentials); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if err := credentials.validate(); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	hash, err := auth.HashPassword(credentials.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(models.ErrGeneral))
		return
	}

	user := models.User{
		Username:     credentials.Username,
		PasswordHash: hash,
	}

	if err := models.DB.Create(&user).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, newUser(user))
}

// @Summary		Log in
// @Description	Verifies the credentials and returns a bearer token for the API
// @Tags			Auth
// @Produce		json
// @Success		200		{object}	LoginResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Param			user	body		Credentials	true	"User"
// @Router			/v1/auth/login [post]
func Login(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var credentials Credentials
		if err := httputil.BindData(c, &credentials); err != nil {
			c.JSON(status(err), httperror.New(err))
			return
		}

		var user models.User
		err := models.DB.Where("username = ?", credentials.Username).First(&user).Error
		if err != nil {
			// Do not leak whether the username exists
			c.JSON(http.StatusUnauthorized, httperror.New(auth.ErrCredentialsInvalid))
			return
		}

		if err := auth.CheckPassword(user.PasswordHash, credentials.Password); err != nil {
			c.JSON(http.StatusUnauthorized, httperror.New(err))
			return
		}

		token, err := tm.Issue(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httperror.New(models.ErrGeneral))
			return
		}

		c.JSON(http.StatusOK, LoginResponse{Token: token})
	}
}
