package v1

import (
	"errors"
	"net/http"

	"github.com/outlay-app/backend/internal/auth"
	"github.com/outlay-app/backend/internal/models"
)

// status returns the appropriate HTTP status code for the error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, auth.ErrCredentialsInvalid) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var (
	errUsernameAndPasswordRequired = errors.New("username and password must be set")
	errPasswordTooShort            = errors.New("the password must be at least 8 characters long")
	errDateRequired                = errors.New("the date must be set")
	errDatesRequired               = errors.New("start_date and end_date must be set")
	errWindowInvalid               = errors.New("start_date must be before or equal to end_date")
)
