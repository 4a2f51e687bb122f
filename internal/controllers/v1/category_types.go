package v1

import (
	"github.com/google/uuid"
	"github.com/outlay-app/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name        string `json:"name" example:"Groceries" default:""`                   // Name of the category, unique per user
	Description string `json:"description" example:"Everyday food shopping" default:""` // Notes about the category
	IsActive    *bool  `json:"is_active" example:"true" default:"true"`               // Inactive categories are kept for history but no longer offered
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	// New categories are active unless the request says otherwise
	isActive := true
	if editable.IsActive != nil {
		isActive = *editable.IsActive
	}

	return models.Category{
		UserID:      userID,
		Name:        editable.Name,
		Description: editable.Description,
		IsActive:    isActive,
	}
}

type CategoryResponse struct {
	models.DefaultModel
	UserID      uuid.UUID `json:"user_id" example:"3a27c3b9-84c5-4f74-9e2f-87d1c47f16c3"` // Owner, assigned by the server
	Name        string    `json:"name" example:"Groceries"`
	Description string    `json:"description" example:"Everyday food shopping"`
	IsActive    bool      `json:"is_active" example:"true"`
}

func newCategory(model models.Category) CategoryResponse {
	return CategoryResponse{
		DefaultModel: model.DefaultModel,
		UserID:       model.UserID,
		Name:         model.Name,
		Description:  model.Description,
		IsActive:     model.IsActive,
	}
}
