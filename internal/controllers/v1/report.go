package v1

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/nxrts/nexus-finance/internal/httputil"
	"github.com/nxrts/nexus-finance/internal/ledger"
	"github.com/nxrts/nexus-finance/internal/report"
)

// defaultBudgetFloor is the minimum assumed monthly budget in minor
// currency units, inherited from the original dashboard (5,000,000 IDR).
var defaultBudgetFloor = decimal.NewFromInt(5000000)

type reportController struct {
	repo        *ledger.Repository
	formatter   report.Formatter
	budgetFloor decimal.Decimal
}

// budgetFloor reads the BUDGET_FLOOR override, falling back to the
// default on absence or garbage.
func budgetFloor() decimal.Decimal {
	floor, ok := os.LookupEnv("BUDGET_FLOOR")
	if !ok {
		return defaultBudgetFloor
	}

	value, err := decimal.NewFromString(floor)
	if err != nil || value.IsNegative() {
		log.Warn().Str("BUDGET_FLOOR", floor).Msg("invalid budget floor, using default")
		return defaultBudgetFloor
	}

	return value
}

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup, repo *ledger.Repository, formatter report.Formatter) {
	ctrl := reportController{repo: repo, formatter: formatter, budgetFloor: budgetFloor()}

	r.OPTIONS("/trend", OptionsReport)
	r.GET("/trend", ctrl.GetTrend)

	r.OPTIONS("/categories", OptionsReport)
	r.GET("/categories", ctrl.GetCategoryBreakdown)

	r.OPTIONS("/kpi", OptionsReport)
	r.GET("/kpi", ctrl.GetKPI)

	r.OPTIONS("/summary", OptionsReport)
	r.GET("/summary", ctrl.GetSummary)

	r.OPTIONS("/expense-stats", OptionsReport)
	r.GET("/expense-stats", ctrl.GetExpenseStats)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/trend [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// reportQuery parses the shared window and scope parameters.
func reportQuery(c *gin.Context) (report.Window, report.Scope, error) {
	var query ReportQuery
	_ = c.Bind(&query)

	window, err := report.ParseWindow(query.Window)
	if err != nil {
		return report.Window{}, "", err
	}

	scope, err := report.ParseScope(query.Scope)
	if err != nil {
		return report.Window{}, "", err
	}

	return window, scope, nil
}

// @Summary		Income vs expense trend
// @Description	Returns the bucketized income and expense totals for a reporting window. Every bucket of the window is present, empty ones with zero totals.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	TrendResponse
// @Failure		400	{object}	TrendResponse
// @Router			/v1/reports/trend [get]
// @Param			window	query	string	false	"Reporting window: month, ytd or <n>m. Defaults to 6m."
// @Param			scope	query	string	false	"Record scope: all or realized. Defaults to all."
func (ctrl reportController) GetTrend(c *gin.Context) {
	window, scope, err := reportQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrendResponse{Error: &s})
		return
	}

	buckets := report.Bucketize(ctrl.repo.Incomes(), ctrl.repo.Expenses(), window, scope, time.Now())

	data := Trend{
		Window:  window.String(),
		Scope:   scope,
		Buckets: make([]TrendBucket, 0, len(buckets)),
	}

	for _, bucket := range buckets {
		data.Buckets = append(data.Buckets, TrendBucket{
			Key:            bucket.Key,
			Label:          bucket.Label,
			Income:         bucket.Income,
			Expense:        bucket.Expense,
			Net:            bucket.Net(),
			IncomeDisplay:  ctrl.formatter.Format(bucket.Income),
			ExpenseDisplay: ctrl.formatter.Format(bucket.Expense),
		})
	}

	c.JSON(http.StatusOK, TrendResponse{Data: &data})
}

// @Summary		Expense breakdown by category
// @Description	Returns the expense distribution over categories for a reporting window, sorted by total descending.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	BreakdownResponse
// @Failure		400	{object}	BreakdownResponse
// @Router			/v1/reports/categories [get]
// @Param			window	query	string	false	"Reporting window: month, ytd or <n>m. Defaults to 6m."
// @Param			scope	query	string	false	"Record scope: all or realized. Defaults to all."
func (ctrl reportController) GetCategoryBreakdown(c *gin.Context) {
	window, scope, err := reportQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BreakdownResponse{Error: &s})
		return
	}

	totals := report.CategoryBreakdown(ctrl.repo.Expenses(), window, scope, time.Now())

	data := Breakdown{
		Window:     window.String(),
		Scope:      scope,
		Categories: make([]CategoryShare, 0, len(totals)),
	}

	for _, total := range totals {
		data.Categories = append(data.Categories, CategoryShare{
			Name:         total.Name,
			Total:        total.Total,
			Percent:      total.Percent,
			TotalDisplay: ctrl.formatter.Format(total.Total),
		})
	}

	c.JSON(http.StatusOK, BreakdownResponse{Data: &data})
}

// @Summary		Monthly KPIs
// @Description	Returns the month-over-month performance indicators for the current calendar month.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	KPIResponse
// @Failure		400	{object}	KPIResponse
// @Router			/v1/reports/kpi [get]
// @Param			scope	query	string	false	"Record scope: all or realized. Defaults to all."
func (ctrl reportController) GetKPI(c *gin.Context) {
	var query ReportQuery
	_ = c.Bind(&query)

	scope, err := report.ParseScope(query.Scope)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), KPIResponse{Error: &s})
		return
	}

	kpi := report.MonthlyKPI(ctrl.repo.Incomes(), ctrl.repo.Expenses(), scope, time.Now())

	data := KPIData{
		KPI:               kpi,
		Scope:             scope,
		IncomeDisplay:     ctrl.formatter.Format(kpi.IncomeCurrent),
		ExpenseDisplay:    ctrl.formatter.Format(kpi.ExpenseCurrent),
		NetSavingsDisplay: ctrl.formatter.Format(kpi.NetSavingsCurrent),
	}

	c.JSON(http.StatusOK, KPIResponse{Data: &data})
}

// @Summary		All-time totals
// @Description	Returns the all-time income, expense and balance totals.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Router			/v1/reports/summary [get]
// @Param			scope	query	string	false	"Record scope: all or realized. Defaults to all."
func (ctrl reportController) GetSummary(c *gin.Context) {
	var query ReportQuery
	_ = c.Bind(&query)

	scope, err := report.ParseScope(query.Scope)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &s})
		return
	}

	summary := report.SummaryTotals(ctrl.repo.Incomes(), ctrl.repo.Expenses(), scope)

	data := SummaryData{
		Summary:             summary,
		Scope:               scope,
		TotalIncomeDisplay:  ctrl.formatter.Format(summary.TotalIncome),
		TotalExpenseDisplay: ctrl.formatter.Format(summary.TotalExpense),
		BalanceDisplay:      ctrl.formatter.Format(summary.Balance),
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &data})
}

// @Summary		Spending statistics
// @Description	Returns the current month's spending against the assumed budget.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ExpenseStatsResponse
// @Failure		400	{object}	ExpenseStatsResponse
// @Router			/v1/reports/expense-stats [get]
// @Param			scope	query	string	false	"Record scope: all or realized. Defaults to all."
func (ctrl reportController) GetExpenseStats(c *gin.Context) {
	var query ReportQuery
	_ = c.Bind(&query)

	scope, err := report.ParseScope(query.Scope)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseStatsResponse{Error: &s})
		return
	}

	stats := report.ExpenseStatistics(ctrl.repo.Expenses(), scope, ctrl.budgetFloor, time.Now())

	data := ExpenseStatsData{
		ExpenseStats:         stats,
		Scope:                scope,
		CurrentMonthDisplay:  ctrl.formatter.Format(stats.CurrentMonth),
		AssumedBudgetDisplay: ctrl.formatter.Format(stats.AssumedBudget),
	}

	c.JSON(http.StatusOK, ExpenseStatsResponse{Data: &data})
}
