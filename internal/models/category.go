package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category classifies expenses, budgets and recurring rules of a single user.
type Category struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"uniqueIndex:category_owner_name"`
	User        User      `gorm:"constraint:OnDelete:CASCADE"`
	Name        string    `gorm:"uniqueIndex:category_owner_name"`
	Description string
	IsActive    bool
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)

	if c.Name == "" {
		return ErrNameRequired
	}

	return nil
}

// checkCategoryOwnership verifies that the category exists and belongs to
// the given user. References to another user's category are treated the
// same as references to a category that does not exist.
func checkCategoryOwnership(db *gorm.DB, id, userID uuid.UUID) error {
	var count int64
	err := ScopeToOwner(db.Model(&Category{}), userID).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return ErrCategoryInvalid
	}

	return nil
}
