package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/foratask/foratask-backend-go/internal/domain/attendance"
	"github.com/foratask/foratask-backend-go/internal/domain/organization"
	"github.com/foratask/foratask-backend-go/internal/fixtures"
)

func testSettings() *organization.Settings {
	s := fixtures.DefaultSettings("company-1")
	return &s
}

func at(hour, minute int) time.Time {
	// A Wednesday
	return time.Date(2025, 3, 12, hour, minute, 0, 0, time.UTC)
}

func TestComputeLateness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		checkIn    time.Time
		wantLate   bool
		wantLateBy int
	}{
		{name: "on time", checkIn: at(8, 55), wantLate: false},
		{name: "exactly at start", checkIn: at(9, 0), wantLate: false},
		{name: "within tolerance", checkIn: at(9, 10), wantLate: false},
		{name: "exactly at tolerance boundary", checkIn: at(9, 15), wantLate: false},
		{name: "one minute past tolerance", checkIn: at(9, 16), wantLate: true, wantLateBy: 1},
		{name: "an hour late", checkIn: at(10, 0), wantLate: true, wantLateBy: 45},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			isLate, lateBy := ComputeLateness(tt.checkIn, testSettings())
			assert.Equal(t, tt.wantLate, isLate)
			assert.Equal(t, tt.wantLateBy, lateBy)
		})
	}
}

func TestComputeEarlyLeave(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		checkOut    time.Time
		wantEarly   bool
		wantEarlyBy int
	}{
		{name: "after end", checkOut: at(18, 30), wantEarly: false},
		{name: "exactly at end", checkOut: at(18, 0), wantEarly: false},
		{name: "within tolerance", checkOut: at(17, 50), wantEarly: false},
		{name: "exactly at tolerance boundary", checkOut: at(17, 45), wantEarly: false},
		{name: "one minute before boundary", checkOut: at(17, 44), wantEarly: true, wantEarlyBy: 1},
		{name: "two hours early", checkOut: at(16, 0), wantEarly: true, wantEarlyBy: 105},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			isEarly, earlyBy := ComputeEarlyLeave(tt.checkOut, testSettings())
			assert.Equal(t, tt.wantEarly, isEarly)
			assert.Equal(t, tt.wantEarlyBy, earlyBy)
		})
	}
}

func TestComputeLatenessUnconfiguredTenant(t *testing.T) {
	t.Parallel()

	// A tenant that never saved settings has no schedule to be late
	// against, no matter the hour.
	isLate, lateBy := ComputeLateness(at(10, 0), nil)
	assert.False(t, isLate)
	assert.Zero(t, lateBy)

	isEarly, earlyBy := ComputeEarlyLeave(at(14, 0), nil)
	assert.False(t, isEarly)
	assert.Zero(t, earlyBy)
}

func TestComputeWorkedMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		checkIn      time.Time
		checkOut     time.Time
		breakMinutes int
		want         int
	}{
		{name: "full day net of break", checkIn: at(9, 0), checkOut: at(18, 0), breakMinutes: 60, want: 480},
		{name: "no break", checkIn: at(9, 0), checkOut: at(17, 30), breakMinutes: 0, want: 510},
		{name: "shorter than break", checkIn: at(9, 0), checkOut: at(9, 30), breakMinutes: 60, want: 0},
		{name: "partial minutes floored", checkIn: at(9, 0).Add(30 * time.Second), checkOut: at(12, 0), breakMinutes: 0, want: 179},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ComputeWorkedMinutes(tt.checkIn, tt.checkOut, tt.breakMinutes))
		})
	}
}

func TestDetermineStatus(t *testing.T) {
	t.Parallel()

	settings := testSettings()

	// Expected full day is 480 minutes, so half-day kicks in below 240.
	assert.Equal(t, attendance.StatusPresent, DetermineStatus(480, settings))
	assert.Equal(t, attendance.StatusPresent, DetermineStatus(240, settings))
	assert.Equal(t, attendance.StatusHalfDay, DetermineStatus(239, settings))
	assert.Equal(t, attendance.StatusHalfDay, DetermineStatus(0, settings))

	// Without settings the 480-minute fallback applies.
	assert.Equal(t, attendance.StatusPresent, DetermineStatus(240, nil))
	assert.Equal(t, attendance.StatusHalfDay, DetermineStatus(200, nil))
}

func TestClassifyDay(t *testing.T) {
	t.Parallel()

	settings := testSettings()
	today := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC) // Wednesday

	t.Run("stored status wins", func(t *testing.T) {
		t.Parallel()

		rec := &attendance.Attendance{Status: attendance.StatusOnLeave}
		assert.Equal(t, attendance.DayOnLeave, ClassifyDay(rec, today, today, settings))
	})

	t.Run("weekend is non-working", func(t *testing.T) {
		t.Parallel()

		saturday := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, attendance.DayNonWorking, ClassifyDay(nil, saturday, today, settings))
	})

	t.Run("future working day is upcoming", func(t *testing.T) {
		t.Parallel()

		friday := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, attendance.DayUpcoming, ClassifyDay(nil, friday, today, settings))
	})

	t.Run("past working day without record is absent", func(t *testing.T) {
		t.Parallel()

		monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, attendance.DayAbsent, ClassifyDay(nil, monday, today, settings))
	})
}

func TestComputeMonthlyStats(t *testing.T) {
	t.Parallel()

	settings := testSettings()
	minutes := func(m int) *int { return &m }

	records := []attendance.Attendance{
		{
			Status:        attendance.StatusPresent,
			WorkedMinutes: minutes(480),
			CheckIn:       &attendance.CheckIn{IsLate: true, LateByMinutes: 20},
		},
		{
			Status:        attendance.StatusPresent,
			WorkedMinutes: minutes(510),
			CheckOut:      &attendance.CheckOut{IsEarlyLeave: true, EarlyByMinutes: 30},
		},
		{
			Status:        attendance.StatusHalfDay,
			WorkedMinutes: minutes(180),
		},
		{Status: attendance.StatusOnLeave},
	}

	stats := ComputeMonthlyStats(records, settings, 2025, time.March)

	assert.Equal(t, 2, stats.Present)
	assert.Equal(t, 1, stats.HalfDay)
	assert.Equal(t, 1, stats.OnLeave)
	assert.Equal(t, 1, stats.LateDays)
	assert.Equal(t, 1, stats.EarlyLeaveDays)
	assert.InDelta(t, 19.5, stats.TotalWorkingHours, 0.001)

	// March 2025 has 21 weekdays.
	assert.Equal(t, 21, stats.ExpectedWorkingDays)
	// (2 + 0.5) / 21 * 100 = 11.904..., rounded to one decimal.
	assert.InDelta(t, 11.9, stats.AttendancePercentage, 0.001)
}

func TestComputeMonthlyStatsFallbackDays(t *testing.T) {
	t.Parallel()

	stats := ComputeMonthlyStats(nil, nil, 2025, time.March)

	assert.Equal(t, fixtures.FallbackExpectedWorkingDays, stats.ExpectedWorkingDays)
	assert.Zero(t, stats.AttendancePercentage)
}
