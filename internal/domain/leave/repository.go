package leave

import (
	"context"
	"time"
)

// RequestFilter narrows a leave-request listing.
type RequestFilter struct {
	UserID *string
	Status *Status
}

// LeaveRequestRepository defines data access for leave requests.
// All methods include companyID to prevent cross-company data access;
// a request belonging to another tenant is reported as not found.
type LeaveRequestRepository interface {
	// Create inserts a new pending request
	Create(ctx context.Context, lr LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a request with company isolation.
	// Returns ErrLeaveRequestNotFound when missing from the tenant.
	GetByID(ctx context.Context, id string, companyID string) (LeaveRequest, error)

	// Update replaces the mutable fields of an existing request
	Update(ctx context.Context, lr LeaveRequest) error

	// FindOverlapping returns the first pending or approved request of the
	// user that intersects [start, end], or (nil, nil) when none does
	FindOverlapping(ctx context.Context, userID string, companyID string, start, end time.Time) (*LeaveRequest, error)

	// List retrieves requests for a tenant, newest first
	List(ctx context.Context, companyID string, filter RequestFilter) ([]LeaveRequest, error)

	// ListApprovedByYear retrieves a user's approved requests starting in the year
	ListApprovedByYear(ctx context.Context, userID string, companyID string, year int) ([]LeaveRequest, error)

	// CountPending counts the user's pending requests
	CountPending(ctx context.Context, userID string, companyID string) (int64, error)
}
