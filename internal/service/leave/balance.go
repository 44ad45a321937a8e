package leave

import (
	"github.com/shopspring/decimal"

	"github.com/foratask/foratask-backend-go/internal/domain/leave"
)

// ComputeBalance folds a year of approved requests into the paid, unpaid
// and sick buckets. The annual paid allotment is the monthly accrual times
// twelve; remaining never goes below zero.
func ComputeBalance(approved []leave.LeaveRequest, paidPerMonth decimal.Decimal, year int) leave.LeaveBalanceResponse {
	totalAnnual := paidPerMonth.Mul(decimal.NewFromInt(12))

	usedPaid := decimal.Zero
	usedUnpaid := decimal.Zero
	usedSick := decimal.Zero

	for _, lr := range approved {
		switch {
		case lr.LeaveType.CountsAsPaid():
			usedPaid = usedPaid.Add(lr.TotalDays)
		case lr.LeaveType == leave.TypeSick:
			usedSick = usedSick.Add(lr.TotalDays)
		default:
			usedUnpaid = usedUnpaid.Add(lr.TotalDays)
		}
	}

	remaining := totalAnnual.Sub(usedPaid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	totalF, _ := totalAnnual.Float64()
	paidF, _ := usedPaid.Float64()
	unpaidF, _ := usedUnpaid.Float64()
	sickF, _ := usedSick.Float64()
	remainingF, _ := remaining.Float64()

	return leave.LeaveBalanceResponse{
		TotalAnnualLeaves:   totalF,
		UsedPaidLeaves:      paidF,
		UsedUnpaidLeaves:    unpaidF,
		UsedSickLeaves:      sickF,
		RemainingPaidLeaves: remainingF,
		Year:                year,
	}
}
