package v1

import (
	"github.com/shopspring/decimal"

	"github.com/nxrts/nexus-finance/internal/report"
)

// ReportQuery are the parameters shared by the report endpoints.
type ReportQuery struct {
	Window string `form:"window"` // "month", "ytd" or "<n>m". Defaults to "6m".
	Scope  string `form:"scope"`  // "all" or "realized". Defaults to "all".
}

// TrendBucket is one point of the income vs expense chart.
type TrendBucket struct {
	Key            string          `json:"key" example:"2026-08"`
	Label          string          `json:"label" example:"AUG"`
	Income         decimal.Decimal `json:"income" example:"5000000"`
	Expense        decimal.Decimal `json:"expense" example:"2000000"`
	Net            decimal.Decimal `json:"net" example:"3000000"`
	IncomeDisplay  string          `json:"incomeDisplay" example:"Rp 5,000,000"`
	ExpenseDisplay string          `json:"expenseDisplay" example:"Rp 2,000,000"`
}

// Trend is the chart data for a reporting window.
type Trend struct {
	Window  string        `json:"window" example:"6m"`
	Scope   report.Scope  `json:"scope" example:"all"`
	Buckets []TrendBucket `json:"buckets"`
}

type TrendResponse struct {
	Data  *Trend  `json:"data"`
	Error *string `json:"error" example:"invalid reporting window"`
}

// CategoryShare is one slice of the category breakdown.
type CategoryShare struct {
	Name         string          `json:"name" example:"Makan & Minum"`
	Total        decimal.Decimal `json:"total" example:"1250000"`
	Percent      decimal.Decimal `json:"percent" example:"62.5"`
	TotalDisplay string          `json:"totalDisplay" example:"Rp 1,250,000"`
}

// Breakdown is the per-category expense distribution for a window.
type Breakdown struct {
	Window     string          `json:"window" example:"6m"`
	Scope      report.Scope    `json:"scope" example:"all"`
	Categories []CategoryShare `json:"categories"`
}

type BreakdownResponse struct {
	Data  *Breakdown `json:"data"`
	Error *string    `json:"error" example:"invalid reporting window"`
}

// KPIData decorates the month-over-month indicators with display strings.
type KPIData struct {
	report.KPI
	Scope             report.Scope `json:"scope" example:"all"`
	IncomeDisplay     string       `json:"incomeDisplay" example:"Rp 5,000,000"`
	ExpenseDisplay    string       `json:"expenseDisplay" example:"Rp 2,000,000"`
	NetSavingsDisplay string       `json:"netSavingsDisplay" example:"Rp 3,000,000"`
}

type KPIResponse struct {
	Data  *KPIData `json:"data"`
	Error *string  `json:"error" example:"invalid reporting scope"`
}

// SummaryData decorates the all-time totals with display strings.
type SummaryData struct {
	report.Summary
	Scope               report.Scope `json:"scope" example:"all"`
	TotalIncomeDisplay  string       `json:"totalIncomeDisplay" example:"Rp 5,000,000"`
	TotalExpenseDisplay string       `json:"totalExpenseDisplay" example:"Rp 2,000,000"`
	BalanceDisplay      string       `json:"balanceDisplay" example:"Rp 3,000,000"`
}

type SummaryResponse struct {
	Data  *SummaryData `json:"data"`
	Error *string      `json:"error" example:"invalid reporting scope"`
}

// ExpenseStatsData decorates the spending card with display strings.
type ExpenseStatsData struct {
	report.ExpenseStats
	Scope                report.Scope `json:"scope" example:"all"`
	CurrentMonthDisplay  string       `json:"currentMonthDisplay" example:"Rp 2,000,000"`
	AssumedBudgetDisplay string       `json:"assumedBudgetDisplay" example:"Rp 5,000,000"`
}

type ExpenseStatsResponse struct {
	Data  *ExpenseStatsData `json:"data"`
	Error *string           `json:"error" example:"invalid reporting scope"`
}
