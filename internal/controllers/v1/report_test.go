package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	v1 "github.com/nxrts/nexus-finance/internal/controllers/v1"
	"github.com/nxrts/nexus-finance/internal/types"
	"github.com/nxrts/nexus-finance/test"
)

// The report endpoints aggregate relative to the wall clock, so the
// fixtures are dated relative to time.Now().
func (suite *TestSuiteStandard) seedCurrentMonth() {
	today := types.DateOf(time.Now())

	_ = suite.createTestIncome(v1.IncomeEditable{Amount: decimal.NewFromInt(5000000), Date: today, Status: "Received"})
	_ = suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(2000000), Date: today, Status: "Paid"})
	_ = suite.createTestExpense(v1.ExpenseEditable{Category: "Transportasi", Amount: decimal.NewFromInt(500000), Date: today, Status: "Awaiting"})
}

func (suite *TestSuiteStandard) TestReportsOptions() {
	paths := []string{"trend", "categories", "kpi", "summary", "expense-stats"}

	for _, path := range paths {
		r := test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/v1/reports/"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
	}
}

func (suite *TestSuiteStandard) TestReportsTrend() {
	suite.seedCurrentMonth()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/reports/trend?window=month", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TrendResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("month", response.Data.Window)

	// One bucket per day of the current month
	days := types.MonthOf(time.Now()).Days()
	suite.Require().Len(response.Data.Buckets, days)

	todayKey := types.DateOf(time.Now()).String()
	var found bool
	for _, bucket := range response.Data.Buckets {
		if bucket.Key == todayKey {
			found = true
			suite.Assert().True(decimal.NewFromInt(5000000).Equal(bucket.Income))
			suite.Assert().True(decimal.NewFromInt(2500000).Equal(bucket.Expense))
			suite.Assert().NotEmpty(bucket.IncomeDisplay)
		}
	}
	suite.Assert().True(found, "no bucket for today in the series")
}

func (suite *TestSuiteStandard) TestReportsTrendDefaultWindow() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/reports/trend", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TrendResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("6m", response.Data.Window)
	suite.Assert().Len(response.Data.Buckets, 6)
}

func (suite *TestSuiteStandard) TestReportsInvalidParameters() {
	tests := []struct {
		name string
		url  string
	}{
		{"invalid window", "http://example.com/v1/reports/trend?window=soon"},
		{"invalid scope", "http://example.com/v1/reports/kpi?scope=everything"},
		{"invalid breakdown window", "http://example.com/v1/reports/categories?window=0m"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestReportsCategoryBreakdown() {
	suite.seedCurrentMonth()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/reports/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BreakdownResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Require().Len(response.Data.Categories, 2)
	suite.Assert().Equal("Makan & Minum", response.Data.Categories[0].Name)

	sum := decimal.Zero
	for _, share := range response.Data.Categories {
		sum = sum.Add(share.Percent)
	}
	assert.True(suite.T(), decimal.NewFromInt(100).Equal(sum), sum.String())
}

func (suite *TestSuiteStandard) TestReportsKPI() {
	suite.seedCurrentMonth()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/reports/kpi", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.KPIResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(decimal.NewFromInt(5000000).Equal(response.Data.IncomeCurrent))
	suite.Assert().True(decimal.NewFromInt(2500000).Equal(response.Data.ExpenseCurrent))
	suite.Assert().True(decimal.NewFromInt(2500000).Equal(response.Data.NetSavingsCurrent))
	suite.Assert().True(decimal.NewFromInt(50).Equal(response.Data.SavingsRateCurrent), response.Data.SavingsRateCurrent.String())
	suite.Assert().NotEmpty(response.Data.NetSavingsDisplay)
}

func (suite *TestSuiteStandard) TestReportsKPIRealizedScope() {
	suite.seedCurrentMonth()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/reports/kpi?scope=realized", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.KPIResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)

	// The awaiting expense does not count in the realized scope
	suite.Assert().True(decimal.NewFromInt(2000000).Equal(response.Data.ExpenseCurrent))
}

func (suite *TestSuiteStandard) TestReportsSummary() {
	suite.seedCurrentMonth()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/reports/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(decimal.NewFromInt(5000000).Equal(response.Data.TotalIncome))
	suite.Assert().True(decimal.NewFromInt(2500000).Equal(response.Data.TotalExpense))
	suite.Assert().True(decimal.NewFromInt(2500000).Equal(response.Data.Balance))
	suite.Assert().Equal(1, response.Data.Incomes)
	suite.Assert().Equal(2, response.Data.Expenses)
}

func (suite *TestSuiteStandard) TestReportsExpenseStats() {
	suite.seedCurrentMonth()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/reports/expense-stats", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseStatsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(decimal.NewFromInt(2500000).Equal(response.Data.CurrentMonth))
	// No previous month spending, the budget floor applies
	suite.Assert().True(decimal.NewFromInt(5000000).Equal(response.Data.AssumedBudget))
	suite.Assert().True(decimal.NewFromInt(50).Equal(response.Data.BudgetUsedPct), response.Data.BudgetUsedPct.String())
}
