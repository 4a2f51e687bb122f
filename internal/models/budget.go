package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/outlay-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetPeriod is the recurrence frequency of a budget.
type BudgetPeriod string

const (
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

func (p BudgetPeriod) Valid() bool {
	return p == PeriodWeekly || p == PeriodMonthly || p == PeriodYearly
}

// Budget is an amount a user plans to spend within an inclusive
// [start date, end date] window, optionally scoped to a single category.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID `gorm:"index:idx_budget_owner_window"`
	User       User      `gorm:"constraint:OnDelete:CASCADE"`
	Name       string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
	Currency   string
	Period     BudgetPeriod
	StartDate  types.Date `gorm:"index:idx_budget_owner_window"`
	EndDate    types.Date `gorm:"index:idx_budget_owner_window"`
	CategoryID *uuid.UUID `gorm:"index"`
	Category   *Category  `gorm:"constraint:OnDelete:SET NULL"`
}

// BeforeSave normalizes the budget before it is written.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Currency = strings.TrimSpace(b.Currency)

	if b.Currency == "" {
		b.Currency = "USD"
	}

	if b.Period == "" {
		b.Period = PeriodMonthly
	}

	if !b.Period.Valid() {
		return ErrPeriodInvalid
	}

	if !b.Amount.Equal(b.Amount.Round(2)) {
		return ErrAmountPrecision
	}

	if b.CategoryID != nil && *b.CategoryID == uuid.Nil {
		b.CategoryID = nil
	}

	return nil
}

// ValidateReferences verifies that the referenced category belongs to the
// budget's owner.
func (b Budget) ValidateReferences(db *gorm.DB) error {
	if b.CategoryID != nil && *b.CategoryID != uuid.Nil {
		return checkCategoryOwnership(db, *b.CategoryID, b.UserID)
	}

	return nil
}
