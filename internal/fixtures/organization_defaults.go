package fixtures

import (
	"github.com/shopspring/decimal"

	"github.com/foratask/foratask-backend-go/internal/domain/organization"
)

// DefaultSettings returns the organization configuration seeded for a
// company that has never saved settings: Monday through Friday, a 9-to-6
// day with a one hour break, 15 minute tolerances and 1.5 paid leaves
// accrued per month.
func DefaultSettings(companyID string) organization.Settings {
	return organization.Settings{
		CompanyID: companyID,
		WorkingDays: organization.WorkingDays{
			Monday:    true,
			Tuesday:   true,
			Wednesday: true,
			Thursday:  true,
			Friday:    true,
		},
		WorkingHours: organization.WorkingHours{
			StartTime:            "09:00",
			EndTime:              "18:00",
			TotalHours:           8,
			BreakDurationMinutes: 60,
		},
		Attendance: organization.AttendancePolicy{
			LateToleranceMinutes:       15,
			EarlyLeaveToleranceMinutes: 15,
			RequireGeotag:              true,
			AllowRemoteAttendance:      true,
		},
		Leave: organization.LeavePolicy{
			PaidLeavesPerMonth: decimal.NewFromFloat(1.5),
			CarryForwardLimit:  decimal.NewFromInt(5),
			AllowHalfDay:       true,
		},
	}
}

// FallbackExpectedWorkingDays is used for attendance percentages when a
// month has no configured working days to count.
const FallbackExpectedWorkingDays = 22

// FallbackExpectedWorkMinutes is the full-day length assumed when no
// working-hours configuration exists.
const FallbackExpectedWorkMinutes = 480.0
