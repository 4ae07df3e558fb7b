package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/nxrts/nexus-finance/internal/httputil"
	"github.com/nxrts/nexus-finance/internal/models"
)

// CategoryEditable represents all values for a category that can be set by the
// API consumer.
type CategoryEditable struct {
	Name   string                `json:"name" example:"Makan & Minum"`
	Type   models.CategoryType   `json:"type" example:"expense"`
	Status models.CategoryStatus `json:"status" example:"active"`
	Icon   string                `json:"icon" example:"utensils"`
	Color  string                `json:"color" example:"#f97316"`
}

func (editable CategoryEditable) model() models.Category {
	status := editable.Status
	if status == "" {
		status = models.CategoryStatusActive
	}

	return models.Category{
		Name:   editable.Name,
		Type:   editable.Type,
		Status: status,
		Icon:   editable.Icon,
		Color:  editable.Color,
	}
}

// CategoryUpdate contains the updatable fields of a category. Pointers
// distinguish "not sent" from zero values.
type CategoryUpdate struct {
	Name   *string                `json:"name"`
	Type   *models.CategoryType   `json:"type"`
	Status *models.CategoryStatus `json:"status"`
	Icon   *string                `json:"icon"`
	Color  *string                `json:"color"`
}

func (u CategoryUpdate) apply(category models.Category) models.Category {
	if u.Name != nil {
		category.Name = *u.Name
	}
	if u.Type != nil {
		category.Type = *u.Type
	}
	if u.Status != nil {
		category.Status = *u.Status
	}
	if u.Icon != nil {
		category.Icon = *u.Icon
	}
	if u.Color != nil {
		category.Color = *u.Color
	}

	return category
}

type CategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/categories/3"`
}

// Category is the API representation of a category.
type Category struct {
	models.Category
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, category models.Category) Category {
	return Category{
		Category: category,
		Links: CategoryLinks{
			Self: fmt.Sprintf("%s/categories/%s", httputil.RequestPathV1(c), category.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"`
	Pagination *Pagination `json:"pagination"`
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"`
	Data  []CategoryResponse `json:"data"`
}

func (t *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, CategoryResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type CategoryQueryFilter struct {
	Name   string `form:"name"`   // Filter by name, * wildcards allowed
	Type   string `form:"type"`   // Filter by type, "income" or "expense"
	Status string `form:"status"` // Filter by status, "active" or "inactive"
	Search string `form:"search"` // Search in name, type and status
	Offset uint   `form:"offset"` // The offset of the first Category returned. Defaults to 0.
	Limit  int    `form:"limit"`  // Maximum number of Categories to return. Defaults to 50.
}
