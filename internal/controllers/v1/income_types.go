package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nxrts/nexus-finance/internal/httputil"
	"github.com/nxrts/nexus-finance/internal/models"
	"github.com/nxrts/nexus-finance/internal/types"
)

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	Source string          `json:"source" example:"Gaji Bulanan"`                       // Income source, loosely referencing a category name
	Amount decimal.Decimal `json:"amount" example:"5000000" minimum:"0"`                // Amount in minor currency units
	Date   types.Date      `json:"date" example:"2026-08-01"`                           // Calendar date of the income
	Status string          `json:"status" example:"Received" default:"Pending" enums:"Received,Pending"` // Has the income been received?
}

func (editable IncomeEditable) model() models.Income {
	status := models.IncomeStatusPending
	if editable.Status != "" {
		status = models.IncomeStatus(editable.Status)
	}

	return models.Income{
		Source: editable.Source,
		Amount: editable.Amount,
		Date:   editable.Date,
		Status: status,
	}
}

// IncomeUpdate carries a partial update; unset fields keep their
// stored value.
type IncomeUpdate struct {
	Source *string          `json:"source"`
	Amount *decimal.Decimal `json:"amount"`
	Date   *types.Date      `json:"date"`
	Status *string          `json:"status"`
}

func (u IncomeUpdate) apply(income models.Income) models.Income {
	if u.Source != nil {
		income.Source = *u.Source
	}
	if u.Amount != nil {
		income.Amount = *u.Amount
	}
	if u.Date != nil {
		income.Date = *u.Date
	}
	if u.Status != nil {
		income.Status = models.IncomeStatus(*u.Status)
	}

	return income
}

type IncomeLinks struct {
	Self string `json:"self" example:"https://example.com/v1/incomes/d430d7c3-d14c-4712-9336-ee56965a6673"` // The income itself
}

// Income is the representation of an income record in API v1.
type Income struct {
	models.Income
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	return Income{
		Income: model,
		Links: IncomeLinks{
			Self: fmt.Sprintf("%s/incomes/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`       // List of incomes
	Error      *string     `json:"error"`      // The error, if any occurred
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type IncomeCreateResponse struct {
	Data  []IncomeResponse `json:"data"`  // List of the created incomes or their respective error
	Error *string          `json:"error"` // The error, if any occurred
}

func (r *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Data  *Income `json:"data"`  // Data for the income
	Error *string `json:"error"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	Source string `form:"source"` // Filter by source, * wildcards allowed
	Status string `form:"status"` // Filter by status, * wildcards allowed
	Search string `form:"search"` // Search in source, invoice number and status
	Offset uint   `form:"offset"` // The offset of the first Income returned. Defaults to 0.
	Limit  int    `form:"limit"`  // Maximum number of Incomes to return. Defaults to 50.
}
