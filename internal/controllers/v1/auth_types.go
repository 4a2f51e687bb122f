package v1

import (
	"github.com/outlay-app/backend/internal/models"
)

// Credentials is the request body for registration and login.
type Credentials struct {
	Username string `json:"username" example:"maria"`
	Password string `json:"password" example:"correct horse battery staple"`
}

func (credentials Credentials) validate() error {
	if credentials.Username == "" || credentials.Password == "" {
		return errUsernameAndPasswordRequired
	}

	if len(credentials.Password) < 8 {
		return errPasswordTooShort
	}

	return nil
}

type UserResponse struct {
	models.DefaultModel
	Username string `json:"username" example:"maria"`
}

func newUser(model models.User) UserResponse {
	return UserResponse{
		DefaultModel: model.DefaultModel,
		Username:     model.Username,
	}
}

type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // Bearer token for the Authorization header
}
