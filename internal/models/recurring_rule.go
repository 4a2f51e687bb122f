package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/outlay-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cadence is the recurrence frequency of a recurring rule.
type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
	CadenceYearly  Cadence = "yearly"
)

func (c Cadence) Valid() bool {
	return c == CadenceDaily || c == CadenceWeekly || c == CadenceMonthly || c == CadenceYearly
}

// RecurringRule describes an expense that repeats with a fixed cadence.
//
// Rules only link to the expenses generated from them; the generation
// itself is performed by an external process.
type RecurringRule struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"uniqueIndex:recurring_rule_owner_name"`
	User        User      `gorm:"constraint:OnDelete:CASCADE"`
	Name        string    `gorm:"uniqueIndex:recurring_rule_owner_name"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
	Currency    string
	Cadence     Cadence
	StartDate   types.Date
	EndDate     *types.Date
	Description string
	CategoryID  *uuid.UUID
	Category    *Category `gorm:"constraint:OnDelete:SET NULL"`
}

// BeforeSave normalizes the rule before it is written.
func (r *RecurringRule) BeforeSave(_ *gorm.DB) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Currency = strings.TrimSpace(r.Currency)

	if r.Name == "" {
		return ErrNameRequired
	}

	if r.Currency == "" {
		r.Currency = "USD"
	}

	if !r.Cadence.Valid() {
		return ErrCadenceInvalid
	}

	if !r.Amount.Equal(r.Amount.Round(2)) {
		return ErrAmountPrecision
	}

	if r.CategoryID != nil && *r.CategoryID == uuid.Nil {
		r.CategoryID = nil
	}

	return nil
}

// ValidateReferences verifies that the referenced category belongs to the
// rule's owner.
func (r RecurringRule) ValidateReferences(db *gorm.DB) error {
	if r.CategoryID != nil && *r.CategoryID != uuid.Nil {
		return checkCategoryOwnership(db, *r.CategoryID, r.UserID)
	}

	return nil
}
