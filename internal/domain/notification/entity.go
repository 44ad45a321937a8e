package notification

import "time"

// Kind enum
type Kind string

const (
	KindLeaveApplied    Kind = "leave_applied"
	KindLeaveApproved   Kind = "leave_approved"
	KindLeaveRejected   Kind = "leave_rejected"
	KindLeaveCancelled  Kind = "leave_cancelled"
	KindSalaryGenerated Kind = "salary_generated"
	KindSalaryPaid      Kind = "salary_paid"
)

type Notification struct {
	ID        string
	UserID    string
	CompanyID string
	Kind      Kind
	Title     string
	Message   string
	RefID     *string
	IsRead    bool
	CreatedAt time.Time
}
