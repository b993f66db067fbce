package entities

import "time"

// Role is the access level of a backoffice user.

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// User is a backoffice operator account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// PasswordHash is a bcrypt hash and must never be serialized to API
// responses.

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
