// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nxrts/nexus-finance/internal/httputil"
	"github.com/nxrts/nexus-finance/internal/ledger"
	"github.com/nxrts/nexus-finance/internal/storage"
)

type controller struct {
	store storage.Store
}

// RegisterRoutes registers the health check routes with the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup, store storage.Store) {
	ctrl := controller{store: store}

	r.OPTIONS("", Options)
	r.GET("", ctrl.Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Health
// @Description	Returns the health of the backend, checking that the store answers
// @Tags			General
// @Success		204
// @Failure		503
// @Router			/healthz [get]
func (ctrl controller) Get(c *gin.Context) {
	_, err := ctrl.store.Has(ledger.KeyIncomes)
	if err != nil {
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}
