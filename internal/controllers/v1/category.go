package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nxrts/nexus-finance/internal/httputil"
	"github.com/nxrts/nexus-finance/internal/ledger"
	"github.com/nxrts/nexus-finance/internal/models"
)

type categoryController struct {
	repo *ledger.Repository
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup, repo *ledger.Repository) {
	ctrl := categoryController{repo: repo}

	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", ctrl.GetCategories)
		r.POST("", ctrl.CreateCategories)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", ctrl.GetCategory)
		r.PATCH("/:id", ctrl.UpdateCategory)
		r.DELETE("/:id", ctrl.DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			id	path	string	true	"ID of the category"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create category
// @Description	Creates new categories
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryCreateResponse
// @Failure		400			{object}	CategoryCreateResponse
// @Failure		500			{object}	CategoryCreateResponse
// @Param			categories	body		[]CategoryEditable	true	"Categories"
// @Router			/v1/categories [post]
func (ctrl categoryController) CreateCategories(c *gin.Context) {
	var editables []CategoryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryCreateResponse{}

	for _, editable := range editables {
		category, err := ctrl.repo.CreateCategory(editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategory(c, category)
		r.Data = append(r.Data, CategoryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Router			/v1/categories [get]
// @Param			name	query	string	false	"Filter by name, * wildcards allowed"
// @Param			type	query	string	false	"Filter by type"
// @Param			status	query	string	false	"Filter by status"
// @Param			search	query	string	false	"Search in name, type and status"
// @Param			offset	query	uint	false	"The offset of the first Category returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Categories to return. Defaults to 50."
func (ctrl categoryController) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	categories := ctrl.repo.Categories()

	matched := make([]models.Category, 0, len(categories))
	for _, category := range categories {
		if !matchGlob(filter.Name, category.Name) {
			continue
		}
		if filter.Type != "" && !strings.EqualFold(filter.Type, string(category.Type)) {
			continue
		}
		if filter.Status != "" && !strings.EqualFold(filter.Status, string(category.Status)) {
			continue
		}
		if !matchSearch(filter.Search, category.Name, string(category.Type), string(category.Status)) {
			continue
		}
		matched = append(matched, category)
	}

	page, pagination := paginate(matched, filter.Offset, filter.Limit, c.Request.URL.Query().Has("limit"))

	data := make([]Category, 0, len(page))
	for _, category := range page {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data:       data,
		Pagination: &pagination,
	})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/categories/{id} [get]
func (ctrl categoryController) GetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	category, err := ctrl.repo.Category(uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Update category
// @Description	Update an existing category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Param			id			path		string				true	"ID of the category"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func (ctrl categoryController) UpdateCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	category, err := ctrl.repo.Category(uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	var update CategoryUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	updated, err := ctrl.repo.UpdateCategory(uri.ID, update.apply(category))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	data := newCategory(c, updated)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Delete category
// @Description	Deletes a category. Fails with 409 when ledger records still reference it.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Param			id		path	string	true	"ID of the category"
// @Param			confirm	query	bool	false	"Must be true for the deletion to happen"
// @Router			/v1/categories/{id} [delete]
func (ctrl categoryController) DeleteCategory(c *gin.Context) {
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

	err = ctrl.repo.DeleteCategory(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
