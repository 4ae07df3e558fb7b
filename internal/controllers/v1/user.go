package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nxrts/nexus-finance/internal/httputil"
	"github.com/nxrts/nexus-finance/internal/ledger"
	"github.com/nxrts/nexus-finance/internal/models"
)

type userController struct {
	repo *ledger.Repository
}

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup, repo *ledger.Repository) {
	ctrl := userController{repo: repo}

	// Root group
	{
		r.OPTIONS("", OptionsUserList)
		r.GET("", ctrl.GetUsers)
		r.POST("", ctrl.CreateUsers)
	}

	// User with ID
	{
		r.OPTIONS("/:id", OptionsUserDetail)
		r.GET("/:id", ctrl.GetUser)
		r.PATCH("/:id", ctrl.UpdateUser)
		r.DELETE("/:id", ctrl.DeleteUser)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUserList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Param			id	path	string	true	"ID of the user"
// @Router			/v1/users/{id} [options]
func OptionsUserDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create user
// @Description	Creates new users
// @Tags			Users
// @Produce		json
// @Success		201		{object}	UserCreateResponse
// @Failure		400		{object}	UserCreateResponse
// @Failure		500		{object}	UserCreateResponse
// @Param			users	body		[]UserEditable	true	"Users"
// @Router			/v1/users [post]
func (ctrl userController) CreateUsers(c *gin.Context) {
	var editables []UserEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := UserCreateResponse{}

	for _, editable := range editables {
		user, err := ctrl.repo.CreateUser(editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newUser(c, user)
		r.Data = append(r.Data, UserResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get users
// @Description	Returns a list of users
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserListResponse
// @Failure		400	{object}	UserListResponse
// @Router			/v1/users [get]
// @Param			name	query	string	false	"Filter by name, * wildcards allowed"
// @Param			role	query	string	false	"Filter by role"
// @Param			status	query	string	false	"Filter by status"
// @Param			search	query	string	false	"Search in name, email, role and department"
// @Param			offset	query	uint	false	"The offset of the first User returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Users to return. Defaults to 50."
func (ctrl userController) GetUsers(c *gin.Context) {
	var filter UserQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	users := ctrl.repo.Users()

	matched := make([]models.User, 0, len(users))
	for _, user := range users {
		if !matchGlob(filter.Name, user.Name) {
			continue
		}
		if filter.Role != "" && !strings.EqualFold(filter.Role, string(user.Role)) {
			continue
		}
		if filter.Status != "" && !strings.EqualFold(filter.Status, string(user.Status)) {
			continue
		}
		if !matchSearch(filter.Search, user.Name, user.Email, string(user.Role), user.Department) {
			continue
		}
		matched = append(matched, user)
	}

	page, pagination := paginate(matched, filter.Offset, filter.Limit, c.Request.URL.Query().Has("limit"))

	data := make([]User, 0, len(page))
	for _, user := range page {
		data = append(data, newUser(c, user))
	}

	c.JSON(http.StatusOK, UserListResponse{
		Data:       data,
		Pagination: &pagination,
	})
}

// @Summary		Get user
// @Description	Returns a specific user
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Param			id	path		string	true	"ID of the user"
// @Router			/v1/users/{id} [get]
func (ctrl userController) GetUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	user, err := ctrl.repo.User(uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Update user
// @Description	Update an existing user. Only values to be updated need to be specified.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		404		{object}	UserResponse
// @Param			id		path		string			true	"ID of the user"
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users/{id} [patch]
func (ctrl userController) UpdateUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	user, err := ctrl.repo.User(uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	var update UserUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	updated, err := ctrl.repo.UpdateUser(uri.ID, update.apply(user))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	data := newUser(c, updated)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Delete user
// @Description	Deletes a user
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id		path	string	true	"ID of the user"
// @Param			confirm	query	bool	false	"Must be true for the deletion to happen"
// @Router			/v1/users/{id} [delete]
func (ctrl userController) DeleteUser(c *gin.Context) {
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

	err = ctrl.repo.DeleteUser(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
