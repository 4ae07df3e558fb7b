package models

import (
	"github.com/shopspring/decimal"

	"github.com/nxrts/nexus-finance/internal/types"
)

// ExpenseStatus reports whether an expense has been paid.
//
// Cancelled only exists in persisted data. Reads filter cancelled
// records out, they can neither be created nor updated to.
type ExpenseStatus string

const (
	ExpenseStatusPaid      ExpenseStatus = "Paid"
	ExpenseStatusAwaiting  ExpenseStatus = "Awaiting"
	ExpenseStatusCancelled ExpenseStatus = "Cancelled"
)

// NormalizeExpenseStatus maps a persisted status value to the
// canonical enum. Legacy data carries "Dibayar" for paid, "Menunggu"
// for awaiting and "Batal"/"Dibatalkan" for cancelled; any value that
// is not recognized coerces to awaiting. The mapping is idempotent.
func NormalizeExpenseStatus(s string) ExpenseStatus {
	switch s {
	case string(ExpenseStatusPaid), "Dibayar":
		return ExpenseStatusPaid
	case string(ExpenseStatusCancelled), "Batal", "Dibatalkan":
		return ExpenseStatusCancelled
	default:
		return ExpenseStatusAwaiting
	}
}

// Expense is a single expense record.
type Expense struct {
	ID          string          `json:"id"`
	InvoiceID   string          `json:"invoiceId"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        types.Date      `json:"date"`
	Status      ExpenseStatus   `json:"status"`
	Description string          `json:"description,omitempty"`
}

// Realized reports whether the expense counts as completed.
func (e Expense) Realized() bool {
	return e.Status == ExpenseStatusPaid
}

// Validate checks the record invariants.
func (e Expense) Validate() error {
	if e.Category == "" {
		return ErrExpenseCategoryRequired
	}

	if e.Date.IsZero() {
		return ErrDateRequired
	}

	if err := validateAmount(e.Amount); err != nil {
		return err
	}

	if e.Status != ExpenseStatusPaid && e.Status != ExpenseStatusAwaiting {
		return ErrExpenseStatusInvalid
	}

	return nil
}
