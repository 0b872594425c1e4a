package entity

import "time"

// User account. The role tag governs which sections and mutating
// operations are permitted.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:32"`
	Username     string    `json:"username" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:64;not null"`
	Role         string    `json:"role" gorm:"size:20;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Roles
const (
	RoleMasterAdmin = "master_admin"
	RoleAdmin       = "admin"
	RoleViewer      = "viewer"
	RoleCustomer    = "customer"
)

// IsValidRole reports whether r is a known role
func IsValidRole(r string) bool {
	switch r {
	case RoleMasterAdmin, RoleAdmin, RoleViewer, RoleCustomer:
		return true
	}
	return false
}

// CanMutateRequests reports whether the role may update or delete requests
func CanMutateRequests(role string) bool {
	return role == RoleMasterAdmin || role == RoleAdmin
}

// CanCreateRequests reports whether the role may create requests
func CanCreateRequests(role string) bool {
	return role == RoleMasterAdmin || role == RoleAdmin || role == RoleCustomer
}
