package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nxrts/nexus-finance/internal/models"
	"github.com/nxrts/nexus-finance/internal/types"
)

// KPI compares the calendar-current month with the immediately
// preceding calendar month. This is a calendar comparison, not a
// rolling 30 day window.
type KPI struct {
	Month types.Month `json:"month"` // The current month

	IncomeCurrent   decimal.Decimal `json:"incomeCurrent"`
	IncomePrevious  decimal.Decimal `json:"incomePrevious"`
	IncomeChangePct decimal.Decimal `json:"incomeChangePct"`

	ExpenseCurrent   decimal.Decimal `json:"expenseCurrent"`
	ExpensePrevious  decimal.Decimal `json:"expensePrevious"`
	ExpenseChangePct decimal.Decimal `json:"expenseChangePct"`

	NetSavingsCurrent   decimal.Decimal `json:"netSavingsCurrent"`
	NetSavingsPrevious  decimal.Decimal `json:"netSavingsPrevious"`
	NetSavingsChangePct decimal.Decimal `json:"netSavingsChangePct"`

	SavingsRateCurrent   decimal.Decimal `json:"savingsRateCurrent"`
	SavingsRatePrevious  decimal.Decimal `json:"savingsRatePrevious"`
	SavingsRateChangePct decimal.Decimal `json:"savingsRateChangePct"`
}

// ChangePercent returns the relative change from prev to curr in
// percent. The zero cases never divide: no change when both are zero,
// a flat 100% when something appears where nothing was, and zero when
// a positive previous value is compared against nothing at all.
func ChangePercent(curr, prev decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		if curr.IsPositive() {
			return oneHundred
		}
		return decimal.Zero
	}

	return curr.Sub(prev).Div(prev).Mul(oneHundred)
}

// savingsRate returns net/income in percent, 0 when there is no income.
func savingsRate(net, income decimal.Decimal) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}

	return net.Div(income).Mul(oneHundred)
}

// MonthlyKPI computes the month-over-month performance indicators.
func MonthlyKPI(incomes []models.Income, expenses []models.Expense, scope Scope, now time.Time) KPI {
	current := types.MonthOf(now)
	previous := current.AddDate(0, -1)

	kpi := KPI{
		Month:           current,
		IncomeCurrent:   decimal.Zero,
		IncomePrevious:  decimal.Zero,
		ExpenseCurrent:  decimal.Zero,
		ExpensePrevious: decimal.Zero,
	}

	for _, income := range incomes {
		if !scope.includesIncome(income) {
			continue
		}

		switch {
		case income.Date.Month().Equal(current):
			kpi.IncomeCurrent = kpi.IncomeCurrent.Add(income.Amount)
		case income.Date.Month().Equal(previous):
			kpi.IncomePrevious = kpi.IncomePrevious.Add(income.Amount)
		}
	}

	for _, expense := range expenses {
		if !scope.includesExpense(expense) {
			continue
		}

		switch {
		case expense.Date.Month().Equal(current):
			kpi.ExpenseCurrent = kpi.ExpenseCurrent.Add(expense.Amount)
		case expense.Date.Month().Equal(previous):
			kpi.ExpensePrevious = kpi.ExpensePrevious.Add(expense.Amount)
		}
	}

	kpi.IncomeChangePct = ChangePercent(kpi.IncomeCurrent, kpi.IncomePrevious)
	kpi.ExpenseChangePct = ChangePercent(kpi.ExpenseCurrent, kpi.ExpensePrevious)

	kpi.NetSavingsCurrent = kpi.IncomeCurrent.Sub(kpi.ExpenseCurrent)
	kpi.NetSavingsPrevious = kpi.IncomePrevious.Sub(kpi.ExpensePrevious)
	kpi.NetSavingsChangePct = ChangePercent(kpi.NetSavingsCurrent, kpi.NetSavingsPrevious)

	kpi.SavingsRateCurrent = savingsRate(kpi.NetSavingsCurrent, kpi.IncomeCurrent)
	kpi.SavingsRatePrevious = savingsRate(kpi.NetSavingsPrevious, kpi.IncomePrevious)
	kpi.SavingsRateChangePct = ChangePercent(kpi.SavingsRateCurrent, kpi.SavingsRatePrevious)

	return kpi
}
