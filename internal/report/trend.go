package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nxrts/nexus-finance/internal/models"
)

// Bucket is one time slice of the trend series: a calendar day or a
// calendar month, with the income and expense totals that fall into it.
type Bucket struct {
	Key     string          `json:"key"`     // YYYY-MM-DD for daily buckets, YYYY-MM for monthly ones
	Label   string          `json:"label"`   // Display label: zero-padded day number or short month name
	Income  decimal.Decimal `json:"income"`  // Sum of income amounts in the bucket
	Expense decimal.Decimal `json:"expense"` // Sum of expense amounts in the bucket
}

// Net returns the net total of the bucket.
func (b Bucket) Net() decimal.Decimal {
	return b.Income.Sub(b.Expense)
}

// Bucketize aggregates records into the window's bucket skeleton,
// oldest bucket first. Every bucket of the window is present even when
// no record falls into it, so a chart gets a complete axis. Records
// outside the window are silently ignored.
func Bucketize(incomes []models.Income, expenses []models.Expense, window Window, scope Scope, now time.Time) []Bucket {
	buckets := window.buckets(now)

	index := make(map[string]int, len(buckets))
	for i, bucket := range buckets {
		index[bucket.Key] = i
	}

	for _, income := range incomes {
		if !scope.includesIncome(income) {
			continue
		}

		if i, ok := index[window.key(income.Date)]; ok {
			buckets[i].Income = buckets[i].Income.Add(income.Amount)
		}
	}

	for _, expense := range expenses {
		if !scope.includesExpense(expense) {
			continue
		}

		if i, ok := index[window.key(expense.Date)]; ok {
			buckets[i].Expense = buckets[i].Expense.Add(expense.Amount)
		}
	}

	return buckets
}
