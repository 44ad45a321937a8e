package leave

import (
	"github.com/foratask/foratask-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE REQUEST DTOs
// ========================================

type ApplyLeaveRequest struct {
	LeaveType   string  `json:"leave_type"`
	StartDate   string  `json:"start_date"`         // YYYY-MM-DD
	EndDate     *string `json:"end_date,omitempty"` // YYYY-MM-DD, defaults to start_date
	IsHalfDay   bool    `json:"is_half_day"`
	HalfDayType *string `json:"half_day_type,omitempty"`
	Reason      string  `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, Types()) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of: paid, unpaid, sick, casual, earned",
		})
	}

	start, startValid := validator.IsValidDate(r.StartDate)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required in YYYY-MM-DD format",
		})
	}

	if r.EndDate != nil && *r.EndDate != "" {
		end, endValid := validator.IsValidDate(*r.EndDate)
		if !endValid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else if startValid && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	} else if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if r.IsHalfDay {
		if r.HalfDayType == nil ||
			!validator.IsInSlice(*r.HalfDayType, []string{string(FirstHalf), string(SecondHalf)}) {
			errs = append(errs, validator.ValidationError{
				Field:   "half_day_type",
				Message: "half_day_type must be first-half or second-half for half-day leave",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProcessLeaveRequest struct {
	RequestID       string  `json:"-"`
	Action          string  `json:"action"` // approve | reject
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

type ListRequestsFilter struct {
	Status *string `json:"status,omitempty"`
	All    bool    `json:"all"`
}

func (f *ListRequestsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" {
		valid := []string{
			string(StatusPending), string(StatusApproved),
			string(StatusRejected), string(StatusCancelled),
		}
		if !validator.IsInSlice(*f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: pending, approved, rejected, cancelled",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	IsHalfDay       bool    `json:"is_half_day"`
	HalfDayType     *string `json:"half_day_type,omitempty"`
	TotalDays       float64 `json:"total_days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// ========================================
// LEAVE BALANCE DTOs
// ========================================

type LeaveBalanceResponse struct {
	TotalAnnualLeaves   float64 `json:"total_annual_leaves"`
	UsedPaidLeaves      float64 `json:"used_paid_leaves"`
	UsedUnpaidLeaves    float64 `json:"used_unpaid_leaves"`
	UsedSickLeaves      float64 `json:"used_sick_leaves"`
	RemainingPaidLeaves float64 `json:"remaining_paid_leaves"`
	PendingRequests     int64   `json:"pending_requests"`
	Year                int     `json:"year"`
}
