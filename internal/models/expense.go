package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/outlay-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single spending record of a user, optionally categorized and
// optionally linked to the recurring rule that generated it.
type Expense struct {
	DefaultModel
	UserID          uuid.UUID `gorm:"index:idx_expense_owner_date;index:idx_expense_owner_category"`
	User            User      `gorm:"constraint:OnDelete:CASCADE"`
	Amount          decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
	Currency        string
	Description     string
	Date            types.Date `gorm:"index:idx_expense_owner_date"`
	CategoryID      *uuid.UUID `gorm:"index:idx_expense_owner_category"`
	Category        *Category  `gorm:"constraint:OnDelete:SET NULL"`
	RecurringRuleID *uuid.UUID
	RecurringRule   *RecurringRule `gorm:"constraint:OnDelete:SET NULL"`
}

// BeforeSave normalizes the expense before it is written.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Currency = strings.TrimSpace(e.Currency)

	if e.Currency == "" {
		e.Currency = "USD"
	}

	// Amounts are fixed-point with two fraction digits. Checking here keeps
	// sums exact and string renderings stable.
	if !e.Amount.Equal(e.Amount.Round(2)) {
		return ErrAmountPrecision
	}

	// Nil UUID pointers must be nil, not pointers to the Nil UUID
	if e.CategoryID != nil && *e.CategoryID == uuid.Nil {
		e.CategoryID = nil
	}
	if e.RecurringRuleID != nil && *e.RecurringRuleID == uuid.Nil {
		e.RecurringRuleID = nil
	}

	return nil
}

// ValidateReferences verifies that the referenced category and recurring
// rule belong to the expense's owner.
func (e Expense) ValidateReferences(db *gorm.DB) error {
	if e.CategoryID != nil && *e.CategoryID != uuid.Nil {
		if err := checkCategoryOwnership(db, *e.CategoryID, e.UserID); err != nil {
			return err
		}
	}

	if e.RecurringRuleID != nil && *e.RecurringRuleID != uuid.Nil {
		var count int64
		err := ScopeToOwner(db.Model(&RecurringRule{}), e.UserID).Where("id = ?", *e.RecurringRuleID).Count(&count).Error
		if err != nil {
			return err
		}

		if count == 0 {
			return ErrRecurringRuleInvalid
		}
	}

	return nil
}
