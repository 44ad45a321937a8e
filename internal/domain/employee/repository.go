package employee

import "context"

// EmployeeRepository defines read access to the employee directory.
// All methods include companyID to prevent cross-company data access.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// ListStaff retrieves all employees in a company excluding admin roles,
	// used for the daily attendance cross-join
	ListStaff(ctx context.Context, companyID string) ([]Employee, error)

	// ListByRoles retrieves employees holding any of the given roles,
	// used for leave-request notification fan-out
	ListByRoles(ctx context.Context, companyID string, roles []Role) ([]Employee, error)
}
