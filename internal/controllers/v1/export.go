package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nxrts/nexus-finance/internal/export"
	"github.com/nxrts/nexus-finance/internal/httputil"
	"github.com/nxrts/nexus-finance/internal/ledger"
)

type exportController struct {
	repo *ledger.Repository
}

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup, repo *ledger.Repository) {
	ctrl := exportController{repo: repo}

	r.OPTIONS("/csv", OptionsExportCSV)
	r.GET("/csv", ctrl.GetCSV)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export/csv [options]
func OptionsExportCSV(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export CSV
// @Description	Downloads the full ledger as a CSV report, incomes first, then expenses.
// @Tags			Export
// @Produce		text/csv
// @Success		200	{string}	string
// @Failure		500	{object}	httpError
// @Router			/v1/export/csv [get]
func (ctrl exportController) GetCSV(c *gin.Context) {
	var buf bytes.Buffer
	err := export.WriteCSV(&buf, ctrl.repo.Incomes(), ctrl.repo.Expenses())
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(time.Now())))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
