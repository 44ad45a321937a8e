package leave

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/foratask/foratask-backend-go/internal/domain/leave"
)

func days(d float64) decimal.Decimal { return decimal.NewFromFloat(d) }

func TestComputeBalance(t *testing.T) {
	t.Parallel()

	paidPerMonth := decimal.NewFromFloat(1.5)

	approved := []leave.LeaveRequest{
		{LeaveType: leave.TypePaid, TotalDays: days(3)},
		{LeaveType: leave.TypeEarned, TotalDays: days(2)},
		{LeaveType: leave.TypeCasual, TotalDays: days(0.5)},
		{LeaveType: leave.TypeSick, TotalDays: days(2)},
		{LeaveType: leave.TypeUnpaid, TotalDays: days(4)},
	}

	balance := ComputeBalance(approved, paidPerMonth, 2025)

	assert.Equal(t, 18.0, balance.TotalAnnualLeaves)
	assert.Equal(t, 5.5, balance.UsedPaidLeaves)
	assert.Equal(t, 4.0, balance.UsedUnpaidLeaves)
	assert.Equal(t, 2.0, balance.UsedSickLeaves)
	assert.Equal(t, 12.5, balance.RemainingPaidLeaves)
	assert.Equal(t, 2025, balance.Year)
}

func TestComputeBalanceNeverNegative(t *testing.T) {
	t.Parallel()

	approved := []leave.LeaveRequest{
		{LeaveType: leave.TypePaid, TotalDays: days(25)},
	}

	balance := ComputeBalance(approved, decimal.NewFromFloat(1.5), 2025)

	assert.Equal(t, 25.0, balance.UsedPaidLeaves)
	assert.Zero(t, balance.RemainingPaidLeaves)
}

func TestComputeBalanceEmpty(t *testing.T) {
	t.Parallel()

	balance := ComputeBalance(nil, decimal.NewFromFloat(1.5), 2025)

	assert.Equal(t, 18.0, balance.TotalAnnualLeaves)
	assert.Zero(t, balance.UsedPaidLeaves)
	assert.Equal(t, 18.0, balance.RemainingPaidLeaves)
}
