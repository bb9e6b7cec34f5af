package domain

import "time"

// Role constants for User.Role
const (
	RoleCustomer = "CUSTOMER"
	RoleStaff    = "STAFF"
)

// User represents a registered user
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Location     *string   `json:"location,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsValidRole checks if a role string is one of the known roles
func IsValidRole(role string) bool {
	return role == RoleCustomer || role == RoleStaff
}
