package models

import "time"

// AdminRole enumerates the roles an admin account can hold
type AdminRole string

const (
	RoleSuperAdmin      AdminRole = "super_admin"
	RoleDepartmentAdmin AdminRole = "department_admin"
	RoleTreasureAdmin   AdminRole = "treasure_admin"
)

// IsValid reports whether the role is a known admin role
func (r AdminRole) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleDepartmentAdmin, RoleTreasureAdmin:
		return true
	}
	return false
}

// Admin defines the admin model based on the 'admins' table.
// One admin row exists per promoted user.
type Admin struct {
	ID             int64     `json:"id" db:"id"`
	AdminID        string    `json:"adminId" db:"admin_id"` // Generated identifier, e.g. "admin-1715000000000"
	DepartmentName string    `json:"departmentName" db:"department_name"`
	Email          string    `json:"email" db:"email"`
	Role           AdminRole `json:"role" db:"role"`
	IsActive       bool      `json:"isActive" db:"is_active"`
	UserID         int64     `json:"userId" db:"user_id"` // References users.id
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
	User           *User     `json:"user,omitempty"` // Relation, no db tag
}
