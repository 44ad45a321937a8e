package organization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func calendarSettings() Settings {
	return Settings{
		WorkingDays: WorkingDays{
			Monday:    true,
			Tuesday:   true,
			Wednesday: true,
			Thursday:  true,
			Friday:    true,
		},
		Holidays: []Holiday{
			{ID: "h-1", Name: "Republic Day", Date: time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC)},
			{ID: "h-2", Name: "Holi", Date: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestIsHoliday(t *testing.T) {
	t.Parallel()

	s := calendarSettings()

	assert.True(t, s.IsHoliday(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)))
	// Time of day must not matter.
	assert.True(t, s.IsHoliday(time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)))
	assert.False(t, s.IsHoliday(time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)))
	// Same calendar day in a different year is not a match.
	assert.False(t, s.IsHoliday(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)))
}

func TestIsWorkingDay(t *testing.T) {
	t.Parallel()

	s := calendarSettings()

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "regular weekday", date: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), want: true},
		{name: "weekend", date: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), want: false},
		{name: "holiday on a weekday", date: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), want: false},
		{name: "holiday on a weekend", date: time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, s.IsWorkingDay(tt.date))
		})
	}
}

func TestWorkingDaysInMonthExcludesHolidays(t *testing.T) {
	t.Parallel()

	s := calendarSettings()

	// March 2025 has 21 weekdays; Holi falls on Friday the 14th.
	assert.Equal(t, 20, s.WorkingDaysInMonth(2025, time.March))

	// Republic Day 2025 is a Sunday, so January keeps all 23 weekdays.
	assert.Equal(t, 23, s.WorkingDaysInMonth(2025, time.January))
}
