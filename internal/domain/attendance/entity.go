package attendance

import (
	"time"
)

// LocationType classifies where a check event happened.
type LocationType string

const (
	LocationOffice LocationType = "office"
	LocationRemote LocationType = "remote"
	LocationTask   LocationType = "task"
)

// Status is the stored per-day status. Absence is never stored: a missing
// record on a past working day classifies as absent at read time.
type Status string

const (
	StatusPresent Status = "present"
	StatusHalfDay Status = "half-day"
	StatusOnLeave Status = "on-leave"
)

// DayStatus is the derived classification of a calendar day, including the
// implicit states that are never persisted.
type DayStatus string

const (
	DayPresent    DayStatus = "present"
	DayHalfDay    DayStatus = "half-day"
	DayOnLeave    DayStatus = "on-leave"
	DayAbsent     DayStatus = "absent"
	DayNonWorking DayStatus = "non-working"
	DayUpcoming   DayStatus = "upcoming"
)

// EventLocation is the geotag captured with a check-in or check-out.
type EventLocation struct {
	Type           LocationType
	Latitude       float64
	Longitude      float64
	Address        *string
	AccuracyMeters *float64
	OfficeName     *string
	TaskID         *string
}

// CheckIn is the morning half of the attendance record.
type CheckIn struct {
	Time             time.Time
	Location         EventLocation
	IsWithinGeofence bool
	IsLate           bool
	LateByMinutes    int
}

// CheckOut is the evening half of the attendance record.
type CheckOut struct {
	Time             time.Time
	Location         EventLocation
	IsWithinGeofence bool
	IsEarlyLeave     bool
	EarlyByMinutes   int
}

// Attendance is one record per user per calendar day, unique on
// (user_id, date). Date is the working day truncated to midnight UTC.
type Attendance struct {
	ID             string
	UserID         string
	CompanyID      string
	Date           time.Time
	CheckIn        *CheckIn
	CheckOut       *CheckOut
	Status         Status
	WorkedMinutes  *int
	LeaveRequestID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasCheckedIn reports whether the morning event exists.
func (a *Attendance) HasCheckedIn() bool {
	return a != nil && a.CheckIn != nil && !a.CheckIn.Time.IsZero()
}

// HasCheckedOut reports whether the evening event exists.
func (a *Attendance) HasCheckedOut() bool {
	return a != nil && a.CheckOut != nil && !a.CheckOut.Time.IsZero()
}

// WorkedHours converts the stored minute total to hours.
func (a *Attendance) WorkedHours() *float64 {
	if a == nil || a.WorkedMinutes == nil {
		return nil
	}
	hours := float64(*a.WorkedMinutes) / 60.0
	return &hours
}

// DayOf truncates a timestamp to the calendar day it belongs to, in UTC.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
