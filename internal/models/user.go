package models

// UserRole is the access level shown for a user. The user table is a
// managed list, roles are not enforced anywhere.
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleEditor UserRole = "editor"
	UserRoleViewer UserRole = "viewer"
)

// UserStatus marks a user as active.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User is a single user record.
type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       UserRole   `json:"role"`
	Department string     `json:"department,omitempty"`
	Status     UserStatus `json:"status"`
	LastLogin  string     `json:"lastLogin,omitempty"`
	Avatar     string     `json:"avatar,omitempty"`
}

// Validate checks the record invariants.
func (u User) Validate() error {
	if u.Name == "" {
		return ErrUserNameRequired
	}

	if u.Role != UserRoleAdmin && u.Role != UserRoleEditor && u.Role != UserRoleViewer {
		return ErrUserRoleInvalid
	}

	if u.Status != UserStatusActive && u.Status != UserStatusInactive {
		return ErrUserStatusInvalid
	}

	return nil
}
