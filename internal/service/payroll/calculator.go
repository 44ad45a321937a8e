package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/foratask/foratask-backend-go/internal/domain/payroll"
)

var hundred = decimal.NewFromInt(100)

// ComputeEarnings expands the earning components on top of basic salary.
// Percentage components are a percentage of basic. Gross salary is basic
// plus every earning.
func ComputeEarnings(basic decimal.Decimal, components []payroll.SalaryComponent) payroll.Earnings {
	earnings := payroll.Earnings{
		BasicSalary: basic,
		OvertimePay: decimal.Zero,
	}

	total := basic
	for _, c := range components {
		if c.Type != payroll.ComponentEarning {
			continue
		}
		amount := c.Amount
		if c.IsPercentage {
			amount = basic.Mul(c.Amount).Div(hundred)
		}
		amount = amount.Round(2)
		earnings.Components = append(earnings.Components, payroll.ComponentAmount{
			Name:   c.Name,
			Amount: amount,
		})
		total = total.Add(amount)
	}

	earnings.TotalEarnings = total.Round(2)
	return earnings
}

// ComputeDeductions expands the deduction components and the statutory
// deductions. Percentage deduction components, ESI and TDS are percentages
// of gross; PF is a percentage of basic; professional tax is flat.
// LossOfPay is passed in precomputed from the attendance summary.
func ComputeDeductions(basic, gross decimal.Decimal, components []payroll.SalaryComponent, std payroll.StandardDeductions, lossOfPay decimal.Decimal) payroll.Deductions {
	d := payroll.Deductions{
		LossOfPay:       lossOfPay.Round(2),
		PF:              decimal.Zero,
		ESI:             decimal.Zero,
		ProfessionalTax: decimal.Zero,
		TDS:             decimal.Zero,
	}

	total := d.LossOfPay
	for _, c := range components {
		if c.Type != payroll.ComponentDeduction {
			continue
		}
		amount := c.Amount
		if c.IsPercentage {
			amount = gross.Mul(c.Amount).Div(hundred)
		}
		amount = amount.Round(2)
		d.Components = append(d.Components, payroll.ComponentAmount{
			Name:   c.Name,
			Amount: amount,
		})
		total = total.Add(amount)
	}

	if std.PF.Enabled {
		d.PF = basic.Mul(std.PF.Percentage).Div(hundred).Round(2)
		total = total.Add(d.PF)
	}
	if std.ESI.Enabled {
		d.ESI = gross.Mul(std.ESI.Percentage).Div(hundred).Round(2)
		total = total.Add(d.ESI)
	}
	if std.ProfessionalTax.Enabled {
		d.ProfessionalTax = std.ProfessionalTax.Amount.Round(2)
		total = total.Add(d.ProfessionalTax)
	}
	if std.TDS.Enabled {
		d.TDS = gross.Mul(std.TDS.Percentage).Div(hundred).Round(2)
		total = total.Add(d.TDS)
	}

	d.TotalDeductions = total.Round(2)
	return d
}

// DerivedRates computes the per-day and per-hour salary from gross using
// the configured salary month length and day length.
func DerivedRates(gross decimal.Decimal, daysPerMonth, hoursPerDay int) (perDay, perHour decimal.Decimal) {
	perDay = gross.Div(decimal.NewFromInt(int64(daysPerMonth))).Round(2)
	perHour = perDay.Div(decimal.NewFromInt(int64(hoursPerDay))).Round(2)
	return perDay, perHour
}

// SplitLeaveDays caps the paid portion of a month's leave at the monthly
// accrual; the rest is unpaid leave.
func SplitLeaveDays(leaveDays, paidPerMonth decimal.Decimal) (paid, unpaid decimal.Decimal) {
	paid = leaveDays
	if paid.GreaterThan(paidPerMonth) {
		paid = paidPerMonth
	}
	unpaid = leaveDays.Sub(paid)
	return paid, unpaid
}

// UnpaidDays counts every working day not covered by presence, weighted
// half-days or paid leave. Absent days are unpaid by definition.
func UnpaidDays(workingDays, presentDays, halfDays int, paidLeave decimal.Decimal) decimal.Decimal {
	half := decimal.NewFromInt(int64(halfDays)).Mul(decimal.NewFromFloat(0.5))
	unpaid := decimal.NewFromInt(int64(workingDays)).
		Sub(decimal.NewFromInt(int64(presentDays))).
		Sub(half).
		Sub(paidLeave)
	if unpaid.IsNegative() {
		return decimal.Zero
	}
	return unpaid
}

// LossOfPay prices unpaid days at the month's daily basic rate.
func LossOfPay(basic decimal.Decimal, workingDays int, unpaidDays decimal.Decimal) decimal.Decimal {
	if workingDays == 0 || unpaidDays.IsZero() {
		return decimal.Zero
	}
	daily := basic.Div(decimal.NewFromInt(int64(workingDays)))
	return daily.Mul(unpaidDays).Round(2)
}
