package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account that owns categories, expenses, budgets and
// recurring rules.
type User struct {
	DefaultModel
	Username     string `gorm:"uniqueIndex:user_name"`
	PasswordHash string `json:"-"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)

	if u.Username == "" {
		return ErrNameRequired
	}

	return nil
}
