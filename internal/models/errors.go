package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrCategoryNameNotUnique      = errors.New("the category name is already in use")
	ErrRecurringRuleNameNotUnique = errors.New("the recurring rule name is already in use")
	ErrUsernameNotUnique          = errors.New("the username is already taken")

	ErrCategoryInvalid      = errors.New("there is no category matching the ID you specified")
	ErrRecurringRuleInvalid = errors.New("there is no recurring rule matching the ID you specified")

	ErrAmountPrecision = errors.New("the amount must not have more than two decimal places")
	ErrPeriodInvalid   = errors.New("the period must be one of weekly, monthly, yearly")
	ErrCadenceInvalid  = errors.New("the cadence must be one of daily, weekly, monthly, yearly")
	ErrNameRequired    = errors.New("the name must be set")
)
