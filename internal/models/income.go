package models

import (
	"github.com/shopspring/decimal"

	"github.com/nxrts/nexus-finance/internal/types"
)

// IncomeStatus reports whether an income has been received.
type IncomeStatus string

const (
	IncomeStatusReceived IncomeStatus = "Received"
	IncomeStatusPending  IncomeStatus = "Pending"
)

// NormalizeIncomeStatus maps a persisted status value to the canonical
// two-valued enum. Legacy data carries "Lunas"/"Paid" for received and
// "Tertunda", "Cancelled" or "Batal" for everything else; any value
// that is not recognized coerces to pending. The mapping is idempotent.
func NormalizeIncomeStatus(s string) IncomeStatus {
	switch s {
	case string(IncomeStatusReceived), "Diterima", "Lunas", "Paid":
		return IncomeStatusReceived
	default:
		return IncomeStatusPending
	}
}

// Income is a single income record.
type Income struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoiceId"`
	Source    string          `json:"source"`
	Amount    decimal.Decimal `json:"amount"`
	Date      types.Date      `json:"date"`
	Status    IncomeStatus    `json:"status"`
}

// Realized reports whether the income counts as completed.
func (i Income) Realized() bool {
	return i.Status == IncomeStatusReceived
}

// Validate checks the record invariants.
//
// The original UI relied on form-level required/min attributes only;
// here the checks run at the repository boundary so that crafted
// storage content cannot smuggle invalid records in.
func (i Income) Validate() error {
	if i.Source == "" {
		return ErrIncomeSourceRequired
	}

	if i.Date.IsZero() {
		return ErrDateRequired
	}

	if err := validateAmount(i.Amount); err != nil {
		return err
	}

	if i.Status != IncomeStatusReceived && i.Status != IncomeStatusPending {
		return ErrIncomeStatusInvalid
	}

	return nil
}

// validateAmount checks that an amount is a non-negative integer
// number of minor currency units.
func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrAmountNegative
	}

	if !amount.IsInteger() {
		return ErrAmountNotInteger
	}

	return nil
}
