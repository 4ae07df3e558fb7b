package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nxrts/nexus-finance/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// CategoryTotal is one slice of the expenses-by-category breakdown.
type CategoryTotal struct {
	Name    string          `json:"name"`    // Category name as referenced by the records
	Total   decimal.Decimal `json:"total"`   // Sum of expense amounts for the category in the window
	Percent decimal.Decimal `json:"percent"` // Share of the window's total expenses, 0-100
}

// CategoryBreakdown groups the window's expenses by category, largest
// total first. Percentages are relative to the sum over the breakdown;
// when that sum is zero the breakdown is empty.
func CategoryBreakdown(expenses []models.Expense, window Window, scope Scope, now time.Time) []CategoryTotal {
	keys := make(map[string]struct{})
	for _, bucket := range window.buckets(now) {
		keys[bucket.Key] = struct{}{}
	}

	totals := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		if !scope.includesExpense(expense) {
			continue
		}

		if _, ok := keys[window.key(expense.Date)]; !ok {
			continue
		}

		totals[expense.Category] = totals[expense.Category].Add(expense.Amount)
	}

	sum := decimal.Zero
	for _, total := range totals {
		sum = sum.Add(total)
	}

	if sum.IsZero() {
		return []CategoryTotal{}
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for name, total := range totals {
		breakdown = append(breakdown, CategoryTotal{
			Name:    name,
			Total:   total,
			Percent: total.Div(sum).Mul(oneHundred),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Total.Equal(breakdown[j].Total) {
			return breakdown[i].Total.GreaterThan(breakdown[j].Total)
		}
		return breakdown[i].Name < breakdown[j].Name
	})

	return breakdown
}
