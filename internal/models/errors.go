package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNegative   = errors.New("the amount must not be negative")
	ErrAmountNotInteger = errors.New("the amount must be an integer number of minor currency units")
	ErrDateRequired     = errors.New("the date must be set")

	ErrIncomeSourceRequired = errors.New("the income source must be set")
	ErrIncomeStatusInvalid  = errors.New("the income status must be Received or Pending")

	ErrExpenseCategoryRequired = errors.New("the expense category must be set")
	ErrExpenseStatusInvalid    = errors.New("the expense status must be Paid or Awaiting")

	ErrCategoryNameRequired  = errors.New("the category name must be set")
	ErrCategoryTypeInvalid   = errors.New("the category type must be income or expense")
	ErrCategoryStatusInvalid = errors.New("the category status must be active or inactive")
	ErrCategoryInUse         = errors.New("the category is still referenced by ledger records")

	ErrUserNameRequired  = errors.New("the user name must be set")
	ErrUserRoleInvalid   = errors.New("the user role must be admin, editor or viewer")
	ErrUserStatusInvalid = errors.New("the user status must be active or inactive")

	ErrDeleteNotConfirmed = errors.New("deletion requires confirmation")
)
