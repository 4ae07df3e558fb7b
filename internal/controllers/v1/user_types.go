package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/nxrts/nexus-finance/internal/httputil"
	"github.com/nxrts/nexus-finance/internal/models"
)

// UserEditable represents all values for a user that can be set by the
// API consumer.
type UserEditable struct {
	Name       string            `json:"name" example:"Siti Rahayu"`
	Email      string            `json:"email" example:"siti@example.com"`
	Role       models.UserRole   `json:"role" example:"editor"`
	Department string            `json:"department" example:"Finance"`
	Status     models.UserStatus `json:"status" example:"active"`
	LastLogin  string            `json:"lastLogin" example:"2026-08-30 14:21"`
	Avatar     string            `json:"avatar" example:"SR"`
}

func (editable UserEditable) model() models.User {
	status := editable.Status
	if status == "" {
		status = models.UserStatusActive
	}

	return models.User{
		Name:       editable.Name,
		Email:      editable.Email,
		Role:       editable.Role,
		Department: editable.Department,
		Status:     status,
		LastLogin:  editable.LastLogin,
		Avatar:     editable.Avatar,
	}
}

// UserUpdate contains the updatable fields of a user. Pointers distinguish
// "not sent" from zero values.
type UserUpdate struct {
	Name       *string            `json:"name"`
	Email      *string            `json:"email"`
	Role       *models.UserRole   `json:"role"`
	Department *string            `json:"department"`
	Status     *models.UserStatus `json:"status"`
	LastLogin  *string            `json:"lastLogin"`
	Avatar     *string            `json:"avatar"`
}

func (u UserUpdate) apply(user models.User) models.User {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Role != nil {
		user.Role = *u.Role
	}
	if u.Department != nil {
		user.Department = *u.Department
	}
	if u.Status != nil {
		user.Status = *u.Status
	}
	if u.LastLogin != nil {
		user.LastLogin = *u.LastLogin
	}
	if u.Avatar != nil {
		user.Avatar = *u.Avatar
	}

	return user
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/users/5"`
}

// User is the API representation of a user.
type User struct {
	models.User
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, user models.User) User {
	return User{
		User: user,
		Links: UserLinks{
			Self: fmt.Sprintf("%s/users/%s", httputil.RequestPathV1(c), user.ID),
		},
	}
}

type UserListResponse struct {
	Data       []User      `json:"data"`
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"`
	Pagination *Pagination `json:"pagination"`
}

type UserCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"`
	Data  []UserResponse `json:"data"`
}

func (t *UserCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, UserResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type UserResponse struct {
	Data  *User   `json:"data"`
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type UserQueryFilter struct {
	Name   string `form:"name"`   // Filter by name, * wildcards allowed
	Role   string `form:"role"`   // Filter by role
	Status string `form:"status"` // Filter by status
	Search string `form:"search"` // Search in name, email, role and department
	Offset uint   `form:"offset"` // The offset of the first User returned. Defaults to 0.
	Limit  int    `form:"limit"`  // Maximum number of Users to return. Defaults to 50.
}
