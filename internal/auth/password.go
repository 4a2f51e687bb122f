package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrCredentialsInvalid = errors.New("username or password is incorrect")

// HashPassword creates a bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword verifies a password against its stored hash.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		return ErrCredentialsInvalid
	}

	return nil
}
