package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// CheckIn records the start of a working day for the calling user
	CheckIn(ctx context.Context, req CheckRequest) (CheckInResponse, error)

	// CheckOut records the end of a working day for the calling user
	CheckOut(ctx context.Context, req CheckRequest) (CheckOutResponse, error)

	// GetTodayStatus returns the caller's record for today, if any
	GetTodayStatus(ctx context.Context) (TodayStatusResponse, error)

	// GetAttendanceHistory returns a month of records plus derived stats.
	// Non-admin callers may only read their own history.
	GetAttendanceHistory(ctx context.Context, filter HistoryFilter) (HistoryResponse, error)

	// GetDailyAttendance cross-joins all staff with one day's records (admin only)
	GetDailyAttendance(ctx context.Context, date time.Time) (DailyAttendanceResponse, error)

	// GetEmployeeAnalytics returns per-month attendance trends (admin only)
	GetEmployeeAnalytics(ctx context.Context, userID string, months int) (AnalyticsResponse, error)
}
