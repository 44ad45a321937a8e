package attendance

import (
	"github.com/foratask/foratask-backend-go/internal/pkg/validator"
)

// ========================================
// CHECK-IN / CHECK-OUT DTOs
// ========================================

type CoordinatesPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CheckRequest struct {
	Coordinates    *CoordinatesPayload `json:"coordinates"`
	Address        *string             `json:"address,omitempty"`
	AccuracyMeters *float64            `json:"accuracy,omitempty"`
	TaskID         *string             `json:"task_id,omitempty"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Coordinates == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "coordinates",
			Message: "geolocation is required",
		})
	} else {
		if !validator.IsValidLatitude(r.Coordinates.Latitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "coordinates.latitude",
				Message: "latitude must be between -90 and 90",
			})
		}
		if !validator.IsValidLongitude(r.Coordinates.Longitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "coordinates.longitude",
				Message: "longitude must be between -180 and 180",
			})
		}
	}

	if r.TaskID != nil && validator.IsEmpty(*r.TaskID) {
		errs = append(errs, validator.ValidationError{
			Field:   "task_id",
			Message: "task_id must not be blank when provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckInResponse struct {
	ID               string  `json:"id"`
	CheckInTime      string  `json:"check_in_time"`
	LocationType     string  `json:"location_type"`
	OfficeName       *string `json:"office_name,omitempty"`
	IsWithinGeofence bool    `json:"is_within_geofence"`
	IsLate           bool    `json:"is_late"`
	LateByMinutes    int     `json:"late_by_minutes"`
}

type CheckOutResponse struct {
	ID               string   `json:"id"`
	CheckOutTime     string   `json:"check_out_time"`
	LocationType     string   `json:"location_type"`
	OfficeName       *string  `json:"office_name,omitempty"`
	IsWithinGeofence bool     `json:"is_within_geofence"`
	IsEarlyLeave     bool     `json:"is_early_leave"`
	EarlyByMinutes   int      `json:"early_by_minutes"`
	WorkingHours     *float64 `json:"working_hours,omitempty"`
	Status           string   `json:"status"`
}

// ========================================
// STATUS / HISTORY DTOs
// ========================================

type EventLocationResponse struct {
	Type           string   `json:"type"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Address        *string  `json:"address,omitempty"`
	AccuracyMeters *float64 `json:"accuracy,omitempty"`
	OfficeName     *string  `json:"office_name,omitempty"`
	TaskID         *string  `json:"task_id,omitempty"`
}

type CheckInDetail struct {
	Time             string                `json:"time"`
	Location         EventLocationResponse `json:"location"`
	IsWithinGeofence bool                  `json:"is_within_geofence"`
	IsLate           bool                  `json:"is_late"`
	LateByMinutes    int                   `json:"late_by_minutes"`
}

type CheckOutDetail struct {
	Time             string                `json:"time"`
	Location         EventLocationResponse `json:"location"`
	IsWithinGeofence bool                  `json:"is_within_geofence"`
	IsEarlyLeave     bool                  `json:"is_early_leave"`
	EarlyByMinutes   int                   `json:"early_by_minutes"`
}

type AttendanceResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	Date           string          `json:"date"`
	CheckIn        *CheckInDetail  `json:"check_in,omitempty"`
	CheckOut       *CheckOutDetail `json:"check_out,omitempty"`
	Status         string          `json:"status"`
	WorkingHours   *float64        `json:"working_hours,omitempty"`
	LeaveRequestID *string         `json:"leave_request_id,omitempty"`
}

type TodayStatusResponse struct {
	HasCheckedIn  bool                `json:"has_checked_in"`
	HasCheckedOut bool                `json:"has_checked_out"`
	Attendance    *AttendanceResponse `json:"attendance,omitempty"`
}

// MonthlyStats summarizes a month of records plus the org calendar.
type MonthlyStats struct {
	Present              int     `json:"present"`
	HalfDay              int     `json:"half_day"`
	OnLeave              int     `json:"on_leave"`
	LateDays             int     `json:"late_days"`
	EarlyLeaveDays       int     `json:"early_leave_days"`
	TotalWorkingHours    float64 `json:"total_working_hours"`
	ExpectedWorkingDays  int     `json:"expected_working_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

type HistoryFilter struct {
	UserID string `json:"-"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Year < 2000 || f.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HistoryResponse struct {
	Records []AttendanceResponse `json:"records"`
	Stats   MonthlyStats         `json:"stats"`
	Month   int                  `json:"month"`
	Year    int                  `json:"year"`
}

// ========================================
// ADMIN DTOs
// ========================================

type EmployeeSummary struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Designation *string `json:"designation,omitempty"`
}

type EmployeeAttendance struct {
	Employee   EmployeeSummary     `json:"employee"`
	Attendance *AttendanceResponse `json:"attendance"`
	DayStatus  string              `json:"day_status"`
}

type DailySummary struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	HalfDay int `json:"half_day"`
	OnLeave int `json:"on_leave"`
	Late    int `json:"late"`
}

type DailyAttendanceResponse struct {
	Date      string               `json:"date"`
	Employees []EmployeeAttendance `json:"employees"`
	Summary   DailySummary         `json:"summary"`
}

type MonthlyTrend struct {
	Month string       `json:"month"`
	Year  int          `json:"year"`
	Stats MonthlyStats `json:"stats"`
}

type AnalyticsResponse struct {
	Employee EmployeeSummary `json:"employee"`
	Trends   []MonthlyTrend  `json:"attendance_trends"`
}
