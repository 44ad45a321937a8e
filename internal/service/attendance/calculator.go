package attendance

import (
	"math"
	"time"

	"github.com/foratask/foratask-backend-go/internal/domain/attendance"
	"github.com/foratask/foratask-backend-go/internal/domain/organization"
	"github.com/foratask/foratask-backend-go/internal/fixtures"
)

// ComputeLateness compares a check-in moment against the scheduled start
// plus the late tolerance. LateByMinutes counts from the tolerance
// boundary: checking in one minute past it is late by one minute.
// A nil settings means the tenant never configured working hours, so
// lateness is not evaluated at all.
func ComputeLateness(checkInAt time.Time, settings *organization.Settings) (bool, int) {
	if settings == nil {
		return false, 0
	}
	scheduled, ok := organization.ScheduledAt(checkInAt, settings.WorkingHours.StartTime)
	if !ok {
		return false, 0
	}

	deadline := scheduled.Add(time.Duration(settings.Attendance.LateToleranceMinutes) * time.Minute)
	if !checkInAt.After(deadline) {
		return false, 0
	}

	lateBy := int(checkInAt.Sub(deadline).Minutes())
	return true, lateBy
}

// ComputeEarlyLeave compares a check-out moment against the scheduled end
// minus the early-leave tolerance. EarlyByMinutes counts from the
// tolerance boundary, mirroring ComputeLateness. Nil settings skips the
// evaluation.
func ComputeEarlyLeave(checkOutAt time.Time, settings *organization.Settings) (bool, int) {
	if settings == nil {
		return false, 0
	}
	scheduled, ok := organization.ScheduledAt(checkOutAt, settings.WorkingHours.EndTime)
	if !ok {
		return false, 0
	}

	boundary := scheduled.Add(-time.Duration(settings.Attendance.EarlyLeaveToleranceMinutes) * time.Minute)
	if !checkOutAt.Before(boundary) {
		return false, 0
	}

	earlyBy := int(boundary.Sub(checkOutAt).Minutes())
	return true, earlyBy
}

// ComputeWorkedMinutes is the span between check-in and check-out net of
// the configured break, floored to whole minutes and never negative.
func ComputeWorkedMinutes(checkInAt, checkOutAt time.Time, breakMinutes int) int {
	total := int(checkOutAt.Sub(checkInAt).Minutes())
	worked := total - breakMinutes
	if worked < 0 {
		return 0
	}
	return worked
}

// DetermineStatus downgrades a day to half-day when the worked time does
// not reach half of the expected full day.
func DetermineStatus(workedMinutes int, settings *organization.Settings) attendance.Status {
	expected := fixtures.FallbackExpectedWorkMinutes
	if settings != nil && settings.ExpectedWorkMinutes() > 0 {
		expected = settings.ExpectedWorkMinutes()
	}

	if float64(workedMinutes) < expected/2 {
		return attendance.StatusHalfDay
	}
	return attendance.StatusPresent
}

// ClassifyDay derives the status of one calendar day from the stored
// record, the org calendar and the current date. Absence is implicit: a
// working day in the past with no record.
func ClassifyDay(att *attendance.Attendance, date, today time.Time, settings *organization.Settings) attendance.DayStatus {
	if att != nil {
		return attendance.DayStatus(att.Status)
	}
	if settings != nil && !settings.IsWorkingDay(date) {
		return attendance.DayNonWorking
	}
	if date.After(today) {
		return attendance.DayUpcoming
	}
	return attendance.DayAbsent
}

// ComputeMonthlyStats aggregates one month of records against the org
// calendar. The attendance percentage weighs half-days at 0.5 and is
// rounded to one decimal place.
func ComputeMonthlyStats(records []attendance.Attendance, settings *organization.Settings, year int, month time.Month) attendance.MonthlyStats {
	stats := attendance.MonthlyStats{}

	for i := range records {
		rec := &records[i]
		switch rec.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusHalfDay:
			stats.HalfDay++
		case attendance.StatusOnLeave:
			stats.OnLeave++
		}
		if rec.CheckIn != nil && rec.CheckIn.IsLate {
			stats.LateDays++
		}
		if rec.CheckOut != nil && rec.CheckOut.IsEarlyLeave {
			stats.EarlyLeaveDays++
		}
		if rec.WorkedMinutes != nil {
			stats.TotalWorkingHours += float64(*rec.WorkedMinutes) / 60.0
		}
	}
	stats.TotalWorkingHours = math.Round(stats.TotalWorkingHours*100) / 100

	expected := 0
	if settings != nil {
		expected = settings.WorkingDaysInMonth(year, month)
	}
	if expected == 0 {
		expected = fixtures.FallbackExpectedWorkingDays
	}
	stats.ExpectedWorkingDays = expected

	attended := float64(stats.Present) + float64(stats.HalfDay)*0.5
	stats.AttendancePercentage = math.Round(attended/float64(expected)*1000) / 10

	return stats
}
