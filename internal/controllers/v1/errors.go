package v1

import (
	"errors"
	"net/http"

	"github.com/nxrts/nexus-finance/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no income matching your query"`
}

// status returns the appropriate HTTP status for a repository error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrCategoryInUse) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}
