package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	v1 "github.com/nxrts/nexus-finance/internal/controllers/v1"
	"github.com/nxrts/nexus-finance/internal/models"
	"github.com/nxrts/nexus-finance/internal/types"
	"github.com/nxrts/nexus-finance/test"
)

func (suite *TestSuiteStandard) TestIncomesOptions() {
	r := test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/v1/incomes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/v1/incomes/some-id", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestIncomesCreate() {
	income := suite.createTestIncome(v1.IncomeEditable{
		Source: "Bonus & Insentif",
		Amount: decimal.NewFromInt(2500000),
		Date:   types.NewDate(2026, 8, 10),
		Status: "Received",
	})

	suite.Assert().NotEmpty(income.Data.ID)
	suite.Assert().Regexp(`^#INC-2026-\d{3}$`, income.Data.InvoiceID)
	suite.Assert().Equal(models.IncomeStatusReceived, income.Data.Status)
	suite.Assert().Contains(income.Data.Links.Self, "/v1/incomes/"+income.Data.ID)
}

func (suite *TestSuiteStandard) TestIncomesCreateDefaultsToPending() {
	income := suite.createTestIncome(v1.IncomeEditable{})
	suite.Assert().Equal(models.IncomeStatusPending, income.Data.Status)
}

func (suite *TestSuiteStandard) TestIncomesCreateFails() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"invalid JSON", `{ this is not valid json `, http.StatusBadRequest},
		{"missing source", []v1.IncomeEditable{{Amount: decimal.NewFromInt(100), Date: types.NewDate(2026, 8, 1)}}, http.StatusBadRequest},
		{"negative amount", []v1.IncomeEditable{{Source: "Gaji Bulanan", Amount: decimal.NewFromInt(-100), Date: types.NewDate(2026, 8, 1)}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, "http://example.com/v1/incomes", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// One bad record in a batch does not abort the others.
func (suite *TestSuiteStandard) TestIncomesCreatePartialFailure() {
	body := []v1.IncomeEditable{
		{Source: "Gaji Bulanan", Amount: decimal.NewFromInt(5000000), Date: types.NewDate(2026, 8, 1)},
		{Amount: decimal.NewFromInt(100), Date: types.NewDate(2026, 8, 1)},
	}

	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/incomes", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.IncomeCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().NotNil(response.Data[0].Data)
	suite.Assert().NotNil(response.Data[1].Error)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/incomes", "")
	var list v1.IncomeListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 1)
}

func (suite *TestSuiteStandard) TestIncomesGetFilter() {
	_ = suite.createTestIncome(v1.IncomeEditable{Source: "Gaji Bulanan", Status: "Received"})
	_ = suite.createTestIncome(v1.IncomeEditable{Source: "Bonus & Insentif", Status: "Pending"})
	_ = suite.createTestIncome(v1.IncomeEditable{Source: "Investasi Saham", Status: "Received"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"all", "", 3},
		{"by source", "source=Gaji Bulanan", 1},
		{"source glob", "source=*sta*", 1},
		{"by status", "status=Received", 2},
		{"status glob", "status=Pend*", 1},
		{"search", "search=insentif", 1},
		{"search no match", "search=nothing-here", 0},
		{"combined", "source=*&status=Received", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/incomes?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.IncomeListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

// The list is sorted newest first.
func (suite *TestSuiteStandard) TestIncomesGetSorted() {
	_ = suite.createTestIncome(v1.IncomeEditable{Source: "older", Date: types.NewDate(2026, 7, 1)})
	_ = suite.createTestIncome(v1.IncomeEditable{Source: "newest", Date: types.NewDate(2026, 8, 15)})
	_ = suite.createTestIncome(v1.IncomeEditable{Source: "middle", Date: types.NewDate(2026, 8, 1)})

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/incomes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IncomeListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("newest", response.Data[0].Source)
	suite.Assert().Equal("middle", response.Data[1].Source)
	suite.Assert().Equal("older", response.Data[2].Source)
}

func (suite *TestSuiteStandard) TestIncomesPagination() {
	for i := 1; i <= 5; i++ {
		_ = suite.createTestIncome(v1.IncomeEditable{Date: types.NewDate(2026, 8, i)})
	}

	tests := []struct {
		name   string
		query  string
		count  int
		total  int
		offset uint
	}{
		{"first page", "limit=2", 2, 5, 0},
		{"second page", "limit=2&offset=2", 2, 5, 2},
		{"last page", "limit=2&offset=4", 1, 5, 4},
		{"offset beyond the end", "offset=17", 0, 5, 17},
		{"no limit returns everything up to the default", "", 5, 5, 0},
		{"limit -1 returns everything", "limit=-1", 5, 5, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/incomes?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.IncomeListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)
			assert.Equal(t, tt.total, response.Pagination.Total)
			assert.Equal(t, tt.offset, response.Pagination.Offset)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomesGetSingle() {
	income := suite.createTestIncome(v1.IncomeEditable{})

	r := test.Request(suite.T(), suite.router, http.MethodGet, income.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(income.Data.ID, response.Data.ID)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/incomes/does-not-exist", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestIncomesUpdate() {
	income := suite.createTestIncome(v1.IncomeEditable{Status: "Pending"})

	r := test.Request(suite.T(), suite.router, http.MethodPatch, income.Data.Links.Self, map[string]any{
		"status": "Received",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Only the sent field changes
	suite.Assert().Equal(models.IncomeStatusReceived, response.Data.Status)
	suite.Assert().Equal(income.Data.Source, response.Data.Source)
	suite.Assert().Equal(income.Data.InvoiceID, response.Data.InvoiceID)
}

func (suite *TestSuiteStandard) TestIncomesUpdateFails() {
	income := suite.createTestIncome(v1.IncomeEditable{})

	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"no income with this id", "http://example.com/v1/incomes/does-not-exist", map[string]any{"source": "x"}, http.StatusNotFound},
		{"invalid body", income.Data.Links.Self, `{ not json`, http.StatusBadRequest},
		{"invalid status", income.Data.Links.Self, map[string]any{"status": "Lunas"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPatch, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// Deletion needs the confirm parameter, standing in for the UI's
// confirmation prompt.
func (suite *TestSuiteStandard) TestIncomesDelete() {
	income := suite.createTestIncome(v1.IncomeEditable{})

	r := test.Request(suite.T(), suite.router, http.MethodDelete, income.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), suite.router, http.MethodDelete, income.Data.Links.Self+"?confirm=false", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), suite.router, http.MethodDelete, income.Data.Links.Self+"?confirm=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.router, http.MethodDelete, income.Data.Links.Self+"?confirm=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
