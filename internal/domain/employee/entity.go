package employee

import "time"

// Role represents the access level carried in the session claims.
type Role string

const (
	RoleEmployee    Role = "employee"
	RoleSupervisor  Role = "supervisor"
	RoleAdmin       Role = "admin"
	RoleMasterAdmin Role = "master-admin"
)

// IsAdmin reports whether the role grants company-wide admin access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleMasterAdmin
}

// CanProcessLeave reports whether the role may approve or reject leave.
func (r Role) CanProcessLeave() bool {
	return r == RoleSupervisor || r.IsAdmin()
}

type Employee struct {
	ID          string
	CompanyID   string
	FirstName   string
	LastName    string
	Email       string
	Designation *string
	Role        Role
	AvatarURL   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
