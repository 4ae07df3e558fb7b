package v1

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/nxrts/nexus-finance/internal/httputil"
	"github.com/nxrts/nexus-finance/internal/ledger"
	"github.com/nxrts/nexus-finance/internal/models"
)

type expenseController struct {
	repo *ledger.Repository
}

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup, repo *ledger.Repository) {
	ctrl := expenseController{repo: repo}

	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", ctrl.GetExpenses)
		r.POST("", ctrl.CreateExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", ctrl.GetExpense)
		r.PATCH("/:id", ctrl.UpdateExpense)
		r.DELETE("/:id", ctrl.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			id	path	string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create expense
// @Description	Creates new expense records
// @Tags			Expenses
// @Produce		json
// @Success		201			{object}	ExpenseCreateResponse
// @Failure		400			{object}	ExpenseCreateResponse
// @Failure		500			{object}	ExpenseCreateResponse
// @Param			expenses	body		[]ExpenseEditable	true	"Expenses"
// @Router			/v1/expenses [post]
func (ctrl expenseController) CreateExpenses(c *gin.Context) {
	var editables []ExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExpenseCreateResponse{}

	for _, editable := range editables {
		expense, err := ctrl.repo.CreateExpense(editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newExpense(c, expense)
		r.Data = append(r.Data, ExpenseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get expenses
// @Description	Returns a list of expense records
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			category	query	string	false	"Filter by category, * wildcards allowed"
// @Param			status		query	string	false	"Filter by status, * wildcards allowed"
// @Param			search		query	string	false	"Search in category, invoice number, description and status"
// @Param			offset		query	uint	false	"The offset of the first Expense returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Expenses to return. Defaults to 50."
func (ctrl expenseController) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	expenses := ctrl.repo.Expenses()

	// Newest first, stable within a day
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.String() > expenses[j].Date.String()
	})

	matched := make([]models.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if !matchGlob(filter.Category, expense.Category) || !matchGlob(filter.Status, string(expense.Status)) {
			continue
		}
		if !matchSearch(filter.Search, expense.Category, expense.InvoiceID, expense.Description, string(expense.Status)) {
			continue
		}
		matched = append(matched, expense)
	}

	page, pagination := paginate(matched, filter.Offset, filter.Limit, c.Request.URL.Query().Has("limit"))

	data := make([]Expense, 0, len(page))
	for _, expense := range page {
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data:       data,
		Pagination: &pagination,
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense record
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [get]
func (ctrl expenseController) GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	expense, err := ctrl.repo.Expense(uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Update expense
// @Description	Update an existing expense record. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Param			id		path		string			true	"ID of the expense"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func (ctrl expenseController) UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	expense, err := ctrl.repo.Expense(uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var update ExpenseUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	updated, err := ctrl.repo.UpdateExpense(uri.ID, update.apply(expense))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, updated)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Delete expense
// @Description	Deletes an expense record. Requires confirm=true, the API stand-in for the UI's confirmation prompt.
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id		path	string	true	"ID of the expense"
// @Param			confirm	query	bool	false	"Must be true for the deletion to happen"
// @Router			/v1/expenses/{id} [delete]
func (ctrl expenseController) DeleteExpense(c *gin.Context) {
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

	err = ctrl.repo.DeleteExpense(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
