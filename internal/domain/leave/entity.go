package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type is the leave category. Paid, earned and casual leave draw from the
// paid allotment; unpaid and sick are tracked in their own buckets.
type Type string

const (
	TypePaid   Type = "paid"
	TypeUnpaid Type = "unpaid"
	TypeSick   Type = "sick"
	TypeCasual Type = "casual"
	TypeEarned Type = "earned"
)

func Types() []string {
	return []string{string(TypePaid), string(TypeUnpaid), string(TypeSick), string(TypeCasual), string(TypeEarned)}
}

// CountsAsPaid reports whether the type draws from the paid-leave allotment.
func (t Type) CountsAsPaid() bool {
	return t == TypePaid || t == TypeEarned || t == TypeCasual
}

type HalfDayType string

const (
	FirstHalf  HalfDayType = "first-half"
	SecondHalf HalfDayType = "second-half"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether the status can never transition again.
// Approved is not terminal: a future approved leave can still be cancelled.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

// LeaveRequest is one leave application. Start and end dates are calendar
// days truncated to midnight UTC, inclusive on both ends.
type LeaveRequest struct {
	ID              string
	UserID          string
	CompanyID       string
	LeaveType       Type
	StartDate       time.Time
	EndDate         time.Time
	IsHalfDay       bool
	HalfDayType     *HalfDayType
	TotalDays       decimal.Decimal
	Reason          string
	Status          Status
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TotalLeaveDays computes the day count of a leave range: 0.5 for a
// half-day request, otherwise the inclusive calendar-day count.
func TotalLeaveDays(start, end time.Time, isHalfDay bool) decimal.Decimal {
	if isHalfDay {
		return decimal.NewFromFloat(0.5)
	}
	days := int(end.Sub(start).Hours()/24) + 1
	return decimal.NewFromInt(int64(days))
}

// DaysInRange returns every calendar day from start to end inclusive.
func DaysInRange(start, end time.Time) []time.Time {
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Overlaps reports whether [start, end] intersects the request's range.
// Both ranges are inclusive; sharing a single day counts as overlap.
func (lr *LeaveRequest) Overlaps(start, end time.Time) bool {
	return !lr.StartDate.After(end) && !lr.EndDate.Before(start)
}

// CanCancel checks the cancellation rules against the current time.
// Pending requests cancel freely; approved requests only before they start.
func (lr *LeaveRequest) CanCancel(now time.Time) error {
	switch lr.Status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusRejected:
		return ErrCannotCancelRejected
	case StatusApproved:
		if !lr.StartDate.After(now) {
			return ErrCannotCancelStarted
		}
	}
	return nil
}
