package organization

import (
	"time"

	"github.com/foratask/foratask-backend-go/internal/pkg/geo"
	"github.com/shopspring/decimal"
)

// WorkingDays marks which weekdays count as working days for the company.
type WorkingDays struct {
	Sunday    bool
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
}

func (w WorkingDays) IsWorking(day time.Weekday) bool {
	switch day {
	case time.Sunday:
		return w.Sunday
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	}
	return false
}

type WorkingHours struct {
	StartTime            string // "HH:MM"
	EndTime              string // "HH:MM"
	TotalHours           float64
	BreakDurationMinutes int
}

type OfficeLocation struct {
	ID                   string
	Name                 string
	Latitude             float64
	Longitude            float64
	GeofenceRadiusMeters float64
	IsPrimary            bool
}

type AttendancePolicy struct {
	LateToleranceMinutes       int
	EarlyLeaveToleranceMinutes int
	RequireGeotag              bool
	AllowRemoteAttendance      bool
}

// Holiday is a company-wide non-working date.
type Holiday struct {
	ID   string
	Name string
	Date time.Time
}

type LeavePolicy struct {
	PaidLeavesPerMonth decimal.Decimal
	CarryForwardLimit  decimal.Decimal
	AllowHalfDay       bool
}

// Settings is the per-tenant organization configuration the attendance and
// payroll pipeline reads. One row per company.
type Settings struct {
	ID              string
	CompanyID       string
	WorkingDays     WorkingDays
	WorkingHours    WorkingHours
	OfficeLocations []OfficeLocation
	Holidays        []Holiday
	Attendance      AttendancePolicy
	Leave           LeavePolicy
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsHoliday reports whether the given date is a declared company holiday.
func (s *Settings) IsHoliday(date time.Time) bool {
	for _, h := range s.Holidays {
		if h.Date.Year() == date.Year() && h.Date.YearDay() == date.YearDay() {
			return true
		}
	}
	return false
}

// IsWorkingDay reports whether the given date falls on a configured
// working weekday that is not a company holiday.
func (s *Settings) IsWorkingDay(date time.Time) bool {
	return s.WorkingDays.IsWorking(date.Weekday()) && !s.IsHoliday(date)
}

// WorkingDaysInMonth walks every calendar date of the month and counts the
// configured working weekdays.
func (s *Settings) WorkingDaysInMonth(year int, month time.Month) int {
	count := 0
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if s.IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// ResolveLocation checks the coordinate against every configured office
// geofence. Nearest matching office wins; the boundary is inclusive.
func (s *Settings) ResolveLocation(lat, lng float64) geo.Match {
	offices := make([]geo.Office, 0, len(s.OfficeLocations))
	for _, office := range s.OfficeLocations {
		offices = append(offices, geo.Office{
			Name:         office.Name,
			Latitude:     office.Latitude,
			Longitude:    office.Longitude,
			RadiusMeters: office.GeofenceRadiusMeters,
		})
	}
	return geo.Resolve(lat, lng, offices)
}

// ScheduledAt combines an HH:MM time-of-day from the working hours config
// with the given date, in the date's location. Returns false when the
// configured value does not parse.
func ScheduledAt(date time.Time, timeOfDay string) (time.Time, bool) {
	parsed, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		date.Location(),
	), true
}

// ExpectedWorkMinutes is the configured length of a full working day.
func (s *Settings) ExpectedWorkMinutes() float64 {
	return s.WorkingHours.TotalHours * 60
}
