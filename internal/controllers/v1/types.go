// Package v1 implements the v1 HTTP API: CRUD for the four record
// collections, the report endpoints and the CSV export.
package v1

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"

	"github.com/nxrts/nexus-finance/internal/ledger"
	"github.com/nxrts/nexus-finance/internal/report"
)

// URIID addresses a single resource.
type URIID struct {
	ID string `uri:"id" binding:"required"` // ID of the resource
}

// Pagination is the pagination information of the list endpoints.
type Pagination struct {
	Count  int  `json:"count"`  // Number of resources returned
	Total  int  `json:"total"`  // Total number of matching resources
	Offset uint `json:"offset"` // Offset of the first returned resource
	Limit  int  `json:"limit"`  // Maximum number of returned resources
}

// defaultLimit is the page size when no limit parameter is set.
const defaultLimit = 50

// Register wires all v1 routes into the group.
func Register(r *gin.RouterGroup, repo *ledger.Repository, formatter report.Formatter) {
	RegisterIncomeRoutes(r.Group("/incomes"), repo)
	RegisterExpenseRoutes(r.Group("/expenses"), repo)
	RegisterCategoryRoutes(r.Group("/categories"), repo)
	RegisterUserRoutes(r.Group("/users"), repo)
	RegisterReportRoutes(r.Group("/reports"), repo, formatter)
	RegisterExportRoutes(r.Group("/export"), repo)
}

// deleteConfirmed reports whether the request carries confirm=true.
// Declining the confirmation aborts the deletion with no state change.
func deleteConfirmed(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}

// matchGlob matches a filter value that may contain * wildcards. An
// unset filter matches everything.
func matchGlob(pattern, value string) bool {
	return pattern == "" || glob.Glob(strings.ToLower(pattern), strings.ToLower(value))
}

// matchSearch reports whether any of the fields contains the search
// text, case-insensitively. An empty search matches everything.
func matchSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}

	search = strings.ToLower(search)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}

	return false
}

// paginate applies offset and limit to a filtered list and returns the
// page plus the pagination block.
func paginate[T any](list []T, offset uint, limit int, limitSet bool) ([]T, Pagination) {
	if !limitSet {
		limit = defaultLimit
	}

	total := len(list)

	if int(offset) < len(list) {
		list = list[offset:]
	} else {
		list = []T{}
	}

	if limit >= 0 && limit < len(list) {
		list = slices.Clone(list[:limit])
	}

	return list, Pagination{
		Count:  len(list),
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}
}
