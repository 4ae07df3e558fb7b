package v1_test

import (
	"encoding/csv"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	v1 "github.com/nxrts/nexus-finance/internal/controllers/v1"
	"github.com/nxrts/nexus-finance/internal/types"
	"github.com/nxrts/nexus-finance/test"
)

func (suite *TestSuiteStandard) TestExportOptions() {
	r := test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/v1/export/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExportCSV() {
	_ = suite.createTestIncome(v1.IncomeEditable{
		Source: "Acme Corp",
		Amount: decimal.NewFromInt(5000000),
		Date:   types.NewDate(2026, 8, 1),
		Status: "Received",
	})
	_ = suite.createTestExpense(v1.ExpenseEditable{
		Category:    "Makan & Minum",
		Description: "Catering, nasi kotak",
		Amount:      decimal.NewFromInt(250000),
		Date:        types.NewDate(2026, 8, 2),
		Status:      "Paid",
	})

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/export/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal("text/csv", r.Header().Get("Content-Type"))

	disposition := r.Header().Get("Content-Disposition")
	suite.Assert().Contains(disposition, "attachment")
	suite.Assert().Contains(disposition, "finance_report_"+time.Now().Format("2006-01-02")+".csv")

	records, err := csv.NewReader(strings.NewReader(r.Body.String())).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(records, 3)

	suite.Assert().Equal([]string{"Date", "Type", "Category/Source", "Description", "Amount", "Status"}, records[0])
	suite.Assert().Equal([]string{"2026-08-01", "Income", "Acme Corp", "", "5000000", "Received"}, records[1])
	suite.Assert().Equal([]string{"2026-08-02", "Expense", "Makan & Minum", "Catering, nasi kotak", "250000", "Paid"}, records[2])
}

func (suite *TestSuiteStandard) TestExportCSVEmpty() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/export/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	records, err := csv.NewReader(strings.NewReader(r.Body.String())).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
}
