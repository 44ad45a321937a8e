package response

import (
	"errors"
	"net/http"

	"github.com/foratask/foratask-backend-go/internal/domain/attendance"
	"github.com/foratask/foratask-backend-go/internal/domain/employee"
	"github.com/foratask/foratask-backend-go/internal/domain/leave"
	"github.com/foratask/foratask-backend-go/internal/domain/notification"
	"github.com/foratask/foratask-backend-go/internal/domain/organization"
	"github.com/foratask/foratask-backend-go/internal/domain/payroll"
	"github.com/foratask/foratask-backend-go/internal/pkg/jwt"
	"github.com/foratask/foratask-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Session errors
	case errors.Is(err, jwt.ErrInvalidSession):
		Unauthorized(w, "Missing or invalid token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Not checked in today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrOutsideGeofence):
		BadRequest(w, "You are outside office premises", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAccessDenied):
		Forbidden(w, "Not allowed to access this attendance record")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrHalfDayNotAllowed):
		BadRequest(w, "Half-day leave is not allowed by your organization", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidAction):
		BadRequest(w, "Action must be approve or reject", nil)
	case errors.Is(err, leave.ErrAlreadyCancelled):
		Conflict(w, "Leave request already cancelled")
	case errors.Is(err, leave.ErrCannotCancelRejected):
		Conflict(w, "Rejected leave requests cannot be cancelled")
	case errors.Is(err, leave.ErrCannotCancelStarted):
		Conflict(w, "Leave that has already started cannot be cancelled")
	case errors.Is(err, leave.ErrAccessDenied):
		Forbidden(w, "Not allowed to access this leave request")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryConfigNotFound):
		NotFound(w, "Salary configuration not found")
	case errors.Is(err, payroll.ErrSalaryRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, payroll.ErrRecordAlreadyPaid):
		Conflict(w, "Salary for this month has already been paid")
	case errors.Is(err, payroll.ErrAccessDenied):
		Forbidden(w, "Not allowed to access this payroll data")

	// Organization domain errors
	case errors.Is(err, organization.ErrSettingsNotFound):
		NotFound(w, "Organization settings not found")
	case errors.Is(err, organization.ErrLocationNotFound):
		NotFound(w, "Office location not found")
	case errors.Is(err, organization.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
