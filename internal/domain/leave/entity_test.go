package leave

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalLeaveDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		isHalfDay bool
		expected  string
	}{
		{
			name: "single day", start: date(2025, 3, 10), end: date(2025, 3, 10),
			expected: "1",
		},
		{
			name: "inclusive range", start: date(2025, 3, 10), end: date(2025, 3, 14),
			expected: "5",
		},
		{
			name: "half day", start: date(2025, 3, 10), end: date(2025, 3, 10),
			isHalfDay: true, expected: "0.5",
		},
		{
			name: "range across month boundary", start: date(2025, 3, 30), end: date(2025, 4, 2),
			expected: "4",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			total := TotalLeaveDays(tt.start, tt.end, tt.isHalfDay)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, total)
		})
	}
}

func TestLeaveRequestOverlaps(t *testing.T) {
	t.Parallel()

	lr := &LeaveRequest{StartDate: date(2025, 3, 10), EndDate: date(2025, 3, 14)}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{name: "fully inside", start: date(2025, 3, 11), end: date(2025, 3, 12), expected: true},
		{name: "touches start", start: date(2025, 3, 8), end: date(2025, 3, 10), expected: true},
		{name: "touches end", start: date(2025, 3, 14), end: date(2025, 3, 16), expected: true},
		{name: "covers whole range", start: date(2025, 3, 1), end: date(2025, 3, 31), expected: true},
		{name: "before", start: date(2025, 3, 1), end: date(2025, 3, 9), expected: false},
		{name: "after", start: date(2025, 3, 15), end: date(2025, 3, 20), expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, lr.Overlaps(tt.start, tt.end))
		})
	}
}

func TestLeaveRequestCanCancel(t *testing.T) {
	t.Parallel()

	now := date(2025, 3, 12)

	tests := []struct {
		name     string
		status   Status
		start    time.Time
		expected error
	}{
		{name: "pending", status: StatusPending, start: date(2025, 3, 1), expected: nil},
		{name: "approved future", status: StatusApproved, start: date(2025, 3, 20), expected: nil},
		{name: "approved started", status: StatusApproved, start: date(2025, 3, 12), expected: ErrCannotCancelStarted},
		{name: "approved past", status: StatusApproved, start: date(2025, 3, 1), expected: ErrCannotCancelStarted},
		{name: "already cancelled", status: StatusCancelled, start: date(2025, 3, 20), expected: ErrAlreadyCancelled},
		{name: "rejected", status: StatusRejected, start: date(2025, 3, 20), expected: ErrCannotCancelRejected},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lr := &LeaveRequest{Status: tt.status, StartDate: tt.start, EndDate: tt.start}
			err := lr.CanCancel(now)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestTypeCountsAsPaid(t *testing.T) {
	t.Parallel()

	assert.True(t, TypePaid.CountsAsPaid())
	assert.True(t, TypeEarned.CountsAsPaid())
	assert.True(t, TypeCasual.CountsAsPaid())
	assert.False(t, TypeUnpaid.CountsAsPaid())
	assert.False(t, TypeSick.CountsAsPaid())
}
