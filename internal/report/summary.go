package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nxrts/nexus-finance/internal/models"
)

// Summary holds the all-time headline totals of the dashboard.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`  // TotalIncome - TotalExpense
	Incomes      int             `json:"incomes"`  // Number of income records counted
	Expenses     int             `json:"expenses"` // Number of expense records counted
}

// SummaryTotals sums all records in scope, regardless of date.
func SummaryTotals(incomes []models.Income, expenses []models.Expense, scope Scope) Summary {
	summary := Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, income := range incomes {
		if !scope.includesIncome(income) {
			continue
		}

		summary.TotalIncome = summary.TotalIncome.Add(income.Amount)
		summary.Incomes++
	}

	for _, expense := range expenses {
		if !scope.includesExpense(expense) {
			continue
		}

		summary.TotalExpense = summary.TotalExpense.Add(expense.Amount)
		summary.Expenses++
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary
}

// ExpenseStats is the current-month spending card of the expense view.
type ExpenseStats struct {
	CurrentMonth  decimal.Decimal `json:"currentMonth"`  // Expenses in the current calendar month
	PreviousMonth decimal.Decimal `json:"previousMonth"` // Expenses in the preceding calendar month
	ChangePct     decimal.Decimal `json:"changePct"`     // Month-over-month change
	AssumedBudget decimal.Decimal `json:"assumedBudget"` // max(1.2 x previous month, floor)
	BudgetUsedPct decimal.Decimal `json:"budgetUsedPct"` // CurrentMonth/AssumedBudget, capped at 100
}

var budgetHeadroom = decimal.NewFromFloat(1.2)

// ExpenseStatistics computes the spending card numbers.
//
// The assumed budget has no stated business rule behind it: 120% of
// the previous month's spend with a fixed floor is the placeholder
// formula inherited from the original dashboard.
func ExpenseStatistics(expenses []models.Expense, scope Scope, floor decimal.Decimal, now time.Time) ExpenseStats {
	kpi := MonthlyKPI(nil, expenses, scope, now)

	stats := ExpenseStats{
		CurrentMonth:  kpi.ExpenseCurrent,
		PreviousMonth: kpi.ExpensePrevious,
		ChangePct:     kpi.ExpenseChangePct,
	}

	stats.AssumedBudget = stats.PreviousMonth.Mul(budgetHeadroom)
	if stats.AssumedBudget.LessThan(floor) {
		stats.AssumedBudget = floor
	}

	if stats.AssumedBudget.IsZero() {
		stats.BudgetUsedPct = decimal.Zero
		return stats
	}

	stats.BudgetUsedPct = stats.CurrentMonth.Div(stats.AssumedBudget).Mul(oneHundred)
	if stats.BudgetUsedPct.GreaterThan(oneHundred) {
		stats.BudgetUsedPct = oneHundred
	}

	return stats
}
