package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
// All methods include companyID to prevent cross-company data access.
// The storage layer enforces a unique index on (user_id, date); Create
// surfaces a duplicate-key race as a unique-violation error so the service
// can report ErrAlreadyCheckedIn instead of silently overwriting.
type AttendanceRepository interface {
	// Create inserts a new attendance record for a working day
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByUserAndDate retrieves the record for a specific day.
	// Returns (nil, nil) when no record exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time, companyID string) (*Attendance, error)

	// Update replaces the mutable fields of an existing record
	Update(ctx context.Context, att Attendance) error

	// ListByUserAndRange retrieves a user's records in [from, to], date ascending
	ListByUserAndRange(ctx context.Context, userID string, companyID string, from, to time.Time) ([]Attendance, error)

	// ListByCompanyAndDate retrieves every record for one day across a tenant
	ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]Attendance, error)

	// UpsertLeaveDay writes an on-leave row keyed by (user_id, date);
	// re-running the same upsert leaves exactly one row per day
	UpsertLeaveDay(ctx context.Context, att Attendance) error

	// DeleteByLeaveRequest removes every record synthesized by a leave request
	DeleteByLeaveRequest(ctx context.Context, userID string, leaveRequestID string, companyID string) error
}
