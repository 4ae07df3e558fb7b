package v1

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/nxrts/nexus-finance/internal/httputil"
	"github.com/nxrts/nexus-finance/internal/ledger"
	"github.com/nxrts/nexus-finance/internal/models"
)

type incomeController struct {
	repo *ledger.Repository
}

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup, repo *ledger.Repository) {
	ctrl := incomeController{repo: repo}

	// Root group
	{
		r.OPTIONS("", OptionsIncomeList)
		r.GET("", ctrl.GetIncomes)
		r.POST("", ctrl.CreateIncomes)
	}

	// Income with ID
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", ctrl.GetIncome)
		r.PATCH("/:id", ctrl.UpdateIncome)
		r.DELETE("/:id", ctrl.DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Param			id	path	string	true	"ID of the income"
// @Router			/v1/incomes/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create income
// @Description	Creates new income records
// @Tags			Incomes
// @Produce		json
// @Success		201		{object}	IncomeCreateResponse
// @Failure		400		{object}	IncomeCreateResponse
// @Failure		500		{object}	IncomeCreateResponse
// @Param			incomes	body		[]IncomeEditable	true	"Incomes"
// @Router			/v1/incomes [post]
func (ctrl incomeController) CreateIncomes(c *gin.Context) {
	var editables []IncomeEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := IncomeCreateResponse{}

	for _, editable := range editables {
		income, err := ctrl.repo.CreateIncome(editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newIncome(c, income)
		r.Data = append(r.Data, IncomeResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get incomes
// @Description	Returns a list of income records
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeListResponse
// @Failure		400	{object}	IncomeListResponse
// @Router			/v1/incomes [get]
// @Param			source	query	string	false	"Filter by source, * wildcards allowed"
// @Param			status	query	string	false	"Filter by status, * wildcards allowed"
// @Param			search	query	string	false	"Search in source, invoice number and status"
// @Param			offset	query	uint	false	"The offset of the first Income returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Incomes to return. Defaults to 50."
func (ctrl incomeController) GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	incomes := ctrl.repo.Incomes()

	// Newest first, stable within a day
	sort.SliceStable(incomes, func(i, j int) bool {
		return incomes[i].Date.String() > incomes[j].Date.String()
	})

	matched := make([]models.Income, 0, len(incomes))
	for _, income := range incomes {
		if !matchGlob(filter.Source, income.Source) || !matchGlob(filter.Status, string(income.Status)) {
			continue
		}
		if !matchSearch(filter.Search, income.Source, income.InvoiceID, string(income.Status)) {
			continue
		}
		matched = append(matched, income)
	}

	page, pagination := paginate(matched, filter.Offset, filter.Limit, c.Request.URL.Query().Has("limit"))

	data := make([]Income, 0, len(page))
	for _, income := range page {
		data = append(data, newIncome(c, income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{
		Data:       data,
		Pagination: &pagination,
	})
}

// @Summary		Get income
// @Description	Returns a specific income record
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Param			id	path		string	true	"ID of the income"
// @Router			/v1/incomes/{id} [get]
func (ctrl incomeController) GetIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	income, err := ctrl.repo.Income(uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Update income
// @Description	Update an existing income record. Only values to be updated need to be specified.
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Param			id		path		string			true	"ID of the income"
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/incomes/{id} [patch]
func (ctrl incomeController) UpdateIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	income, err := ctrl.repo.Income(uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	var update IncomeUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	updated, err := ctrl.repo.UpdateIncome(uri.ID, update.apply(income))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	data := newIncome(c, updated)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Delete income
// @Description	Deletes an income record. Requires confirm=true, the API stand-in for the UI's confirmation prompt.
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id		path	string	true	"ID of the income"
// @Param			confirm	query	bool	false	"Must be true for the deletion to happen"
// @Router			/v1/incomes/{id} [delete]
func (ctrl incomeController) DeleteIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if !deleteConfirmed(c) {
		c.JSON(status(models.ErrDeleteNotConfirmed), httpError{
			Error: models.ErrDeleteNotConfirmed.Error(),
		})
		return
	}

	err = ctrl.repo.DeleteIncome(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
