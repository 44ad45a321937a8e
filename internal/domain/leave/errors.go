package leave

import "errors"

// Leave domain errors
var (
	// Apply errors
	ErrOverlappingLeave  = errors.New("a leave request already exists for this period")
	ErrHalfDayNotAllowed = errors.New("half-day leave is not allowed by the organization policy")

	// Processing errors
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyProcessed     = errors.New("leave request has already been processed")
	ErrInvalidAction        = errors.New("action must be approve or reject")

	// Cancellation errors
	ErrAlreadyCancelled     = errors.New("leave request is already cancelled")
	ErrCannotCancelRejected = errors.New("cannot cancel a rejected leave request")
	ErrCannotCancelStarted  = errors.New("cannot cancel a leave that has already started")

	ErrAccessDenied = errors.New("not allowed to access this leave request")
)
