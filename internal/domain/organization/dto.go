package organization

import (
	"github.com/foratask/foratask-backend-go/internal/pkg/validator"
)

// ========================================
// ORGANIZATION SETTINGS DTOs
// ========================================

type WorkingDaysPayload struct {
	Sunday    bool `json:"sunday"`
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
}

type WorkingHoursPayload struct {
	StartTime            string  `json:"start_time"`
	EndTime              string  `json:"end_time"`
	TotalHours           float64 `json:"total_hours"`
	BreakDurationMinutes int     `json:"break_duration_minutes"`
}

type AttendancePolicyPayload struct {
	LateToleranceMinutes       int  `json:"late_tolerance_minutes"`
	EarlyLeaveToleranceMinutes int  `json:"early_leave_tolerance_minutes"`
	RequireGeotag              bool `json:"require_geotag"`
	AllowRemoteAttendance      bool `json:"allow_remote_attendance"`
}

type LeavePolicyPayload struct {
	PaidLeavesPerMonth float64 `json:"paid_leaves_per_month"`
	CarryForwardLimit  float64 `json:"carry_forward_limit"`
	AllowHalfDay       bool    `json:"allow_half_day"`
}

// UpdateSettingsRequest is a partial update: only the provided sections are
// applied, the rest keep their stored values.
type UpdateSettingsRequest struct {
	WorkingDays  *WorkingDaysPayload      `json:"working_days,omitempty"`
	WorkingHours *WorkingHoursPayload     `json:"working_hours,omitempty"`
	Attendance   *AttendancePolicyPayload `json:"attendance,omitempty"`
	Leave        *LeavePolicyPayload      `json:"leave,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkingHours != nil {
		if _, ok := validator.IsValidTimeOfDay(r.WorkingHours.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "working_hours.start_time",
				Message: "start_time must be in HH:MM format",
			})
		}
		if _, ok := validator.IsValidTimeOfDay(r.WorkingHours.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "working_hours.end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
		if r.WorkingHours.TotalHours <= 0 || r.WorkingHours.TotalHours > 24 {
			errs = append(errs, validator.ValidationError{
				Field:   "working_hours.total_hours",
				Message: "total_hours must be between 0 and 24",
			})
		}
		if r.WorkingHours.BreakDurationMinutes < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "working_hours.break_duration_minutes",
				Message: "break_duration_minutes must not be negative",
			})
		}
	}

	if r.Attendance != nil {
		if r.Attendance.LateToleranceMinutes < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "attendance.late_tolerance_minutes",
				Message: "late_tolerance_minutes must not be negative",
			})
		}
		if r.Attendance.EarlyLeaveToleranceMinutes < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "attendance.early_leave_tolerance_minutes",
				Message: "early_leave_tolerance_minutes must not be negative",
			})
		}
	}

	if r.Leave != nil {
		if r.Leave.PaidLeavesPerMonth < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "leave.paid_leaves_per_month",
				Message: "paid_leaves_per_month must not be negative",
			})
		}
		if r.Leave.CarryForwardLimit < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "leave.carry_forward_limit",
				Message: "carry_forward_limit must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OfficeLocationRequest struct {
	Name                 string  `json:"name"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	GeofenceRadiusMeters float64 `json:"geofence_radius_meters"`
	IsPrimary            bool    `json:"is_primary"`
}

func (r *OfficeLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.GeofenceRadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "geofence_radius_meters",
			Message: "geofence_radius_meters must be greater than 0",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"` // YYYY-MM-DD
}

func (r *HolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

type OfficeLocationResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	GeofenceRadiusMeters float64 `json:"geofence_radius_meters"`
	IsPrimary            bool    `json:"is_primary"`
}

type SettingsResponse struct {
	ID              string                   `json:"id"`
	CompanyID       string                   `json:"company_id"`
	WorkingDays     WorkingDaysPayload       `json:"working_days"`
	WorkingHours    WorkingHoursPayload      `json:"working_hours"`
	OfficeLocations []OfficeLocationResponse `json:"office_locations"`
	Holidays        []HolidayResponse        `json:"holidays"`
	Attendance      AttendancePolicyPayload  `json:"attendance"`
	Leave           LeavePolicyPayload       `json:"leave"`
}
