package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nxrts/nexus-finance/internal/httputil"
	"github.com/nxrts/nexus-finance/internal/models"
	"github.com/nxrts/nexus-finance/internal/types"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Category    string          `json:"category" example:"Transportasi"`                                    // Expense category, loosely referencing a category name
	Amount      decimal.Decimal `json:"amount" example:"350000" minimum:"0"`                                // Amount in minor currency units
	Date        types.Date      `json:"date" example:"2026-08-02"`                                          // Calendar date of the expense
	Status      string          `json:"status" example:"Paid" default:"Awaiting" enums:"Paid,Awaiting"`     // Has the expense been paid?
	Description string          `json:"description" example:"Monthly office ride hailing budget" default:""` // Notes about the expense
}

func (editable ExpenseEditable) model() models.Expense {
	status := models.ExpenseStatusAwaiting
	if editable.Status != "" {
		status = models.ExpenseStatus(editable.Status)
	}

	return models.Expense{
		Category:    editable.Category,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Status:      status,
		Description: editable.Description,
	}
}

// ExpenseUpdate carries a partial update; unset fields keep their
// stored value.
type ExpenseUpdate struct {
	Category    *string          `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *types.Date      `json:"date"`
	Status      *string          `json:"status"`
	Description *string          `json:"description"`
}

func (u ExpenseUpdate) apply(expense models.Expense) models.Expense {
	if u.Category != nil {
		expense.Category = *u.Category
	}
	if u.Amount != nil {
		expense.Amount = *u.Amount
	}
	if u.Date != nil {
		expense.Date = *u.Date
	}
	if u.Status != nil {
		expense.Status = models.ExpenseStatus(*u.Status)
	}
	if u.Description != nil {
		expense.Description = *u.Description
	}

	return expense
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/v1/expenses/8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // The expense itself
}

// Expense is the representation of an expense record in API v1.
type Expense struct {
	models.Expense
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	return Expense{
		Expense: model,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/expenses/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`       // List of expenses
	Error      *string     `json:"error"`      // The error, if any occurred
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`  // List of the created expenses or their respective error
	Error *string           `json:"error"` // The error, if any occurred
}

func (r *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`  // Data for the expense
	Error *string  `json:"error"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Category string `form:"category"` // Filter by category, * wildcards allowed
	Status   string `form:"status"`   // Filter by status, * wildcards allowed
	Search   string `form:"search"`   // Search in category, invoice number, description and status
	Offset   uint   `form:"offset"`   // The offset of the first Expense returned. Defaults to 0.
	Limit    int    `form:"limit"`    // Maximum number of Expenses to return. Defaults to 50.
}
