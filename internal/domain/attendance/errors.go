package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in/out errors
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("not checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrOutsideGeofence   = errors.New("outside office premises and remote attendance is not allowed")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAccessDenied       = errors.New("not allowed to access this attendance record")
)
