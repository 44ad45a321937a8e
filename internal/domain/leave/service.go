package leave

import "context"

type LeaveService interface {
	// ApplyLeave creates a pending request for the calling user and
	// notifies admins and supervisors
	ApplyLeave(ctx context.Context, req ApplyLeaveRequest) (LeaveRequestResponse, error)

	// GetLeaveRequests lists the caller's requests, or every request in
	// the tenant for admins asking for all
	GetLeaveRequests(ctx context.Context, filter ListRequestsFilter) ([]LeaveRequestResponse, error)

	// GetLeaveBalance sums a year of approved leave into paid, unpaid and
	// sick buckets. Non-admin callers may only read their own balance.
	GetLeaveBalance(ctx context.Context, userID string, year int) (LeaveBalanceResponse, error)

	// ProcessLeaveRequest approves or rejects a pending request
	// (admin/supervisor only). Approval synthesizes one on-leave
	// attendance row per day in range, idempotently.
	ProcessLeaveRequest(ctx context.Context, req ProcessLeaveRequest) (LeaveRequestResponse, error)

	// CancelLeaveRequest cancels the caller's own request and removes any
	// attendance rows its approval synthesized
	CancelLeaveRequest(ctx context.Context, requestID string) error
}
