package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foratask/foratask-backend-go/internal/domain/payroll"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(dec(expected)), "expected %s, got %s", expected, actual)
}

func TestComputeEarnings(t *testing.T) {
	t.Parallel()

	basic := dec("30000")
	components := []payroll.SalaryComponent{
		{Name: "HRA", Type: payroll.ComponentEarning, Amount: dec("20"), IsPercentage: true},
		{Name: "Transport", Type: payroll.ComponentEarning, Amount: dec("1500")},
		{Name: "Canteen", Type: payroll.ComponentDeduction, Amount: dec("500")},
	}

	earnings := ComputeEarnings(basic, components)

	require.Len(t, earnings.Components, 2)
	assert.Equal(t, "HRA", earnings.Components[0].Name)
	assertDecimal(t, "6000", earnings.Components[0].Amount)
	assert.Equal(t, "Transport", earnings.Components[1].Name)
	assertDecimal(t, "1500", earnings.Components[1].Amount)
	assertDecimal(t, "37500", earnings.TotalEarnings)
}

func TestComputeEarningsBasicOnly(t *testing.T) {
	t.Parallel()

	earnings := ComputeEarnings(dec("30000"), nil)

	assert.Empty(t, earnings.Components)
	assertDecimal(t, "30000", earnings.TotalEarnings)
}

func TestComputeDeductions(t *testing.T) {
	t.Parallel()

	basic := dec("30000")
	gross := dec("36000")
	components := []payroll.SalaryComponent{
		{Name: "Canteen", Type: payroll.ComponentDeduction, Amount: dec("500")},
		{Name: "Welfare", Type: payroll.ComponentDeduction, Amount: dec("1"), IsPercentage: true},
	}
	std := payroll.StandardDeductions{
		PF:              payroll.PFDeduction{Enabled: true, Percentage: dec("12")},
		ESI:             payroll.ESIDeduction{Enabled: true, Percentage: dec("1.75")},
		ProfessionalTax: payroll.ProfessionalTax{Enabled: true, Amount: dec("200")},
		TDS:             payroll.TDSDeduction{Enabled: true, Percentage: dec("10")},
	}

	d := ComputeDeductions(basic, gross, components, std, dec("576.92"))

	require.Len(t, d.Components, 2)
	assertDecimal(t, "500", d.Components[0].Amount)
	// 1% of 36000 gross
	assertDecimal(t, "360", d.Components[1].Amount)
	// PF is 12% of basic, not gross
	assertDecimal(t, "3600", d.PF)
	// ESI 1.75% of gross
	assertDecimal(t, "630", d.ESI)
	assertDecimal(t, "200", d.ProfessionalTax)
	// TDS 10% of gross
	assertDecimal(t, "3600", d.TDS)
	assertDecimal(t, "576.92", d.LossOfPay)
	assertDecimal(t, "9466.92", d.TotalDeductions)
}

func TestComputeDeductionsAllDisabled(t *testing.T) {
	t.Parallel()

	d := ComputeDeductions(dec("30000"), dec("30000"), nil, payroll.StandardDeductions{}, decimal.Zero)

	assertDecimal(t, "0", d.PF)
	assertDecimal(t, "0", d.ESI)
	assertDecimal(t, "0", d.ProfessionalTax)
	assertDecimal(t, "0", d.TDS)
	assertDecimal(t, "0", d.TotalDeductions)
}

func TestDerivedRates(t *testing.T) {
	t.Parallel()

	perDay, perHour := DerivedRates(dec("36000"), 30, 8)

	assertDecimal(t, "1200", perDay)
	assertDecimal(t, "150", perHour)
}

func TestSplitLeaveDays(t *testing.T) {
	t.Parallel()

	paidPerMonth := dec("1.5")

	tests := []struct {
		name       string
		leaveDays  string
		wantPaid   string
		wantUnpaid string
	}{
		{name: "below accrual", leaveDays: "1", wantPaid: "1", wantUnpaid: "0"},
		{name: "exactly accrual", leaveDays: "1.5", wantPaid: "1.5", wantUnpaid: "0"},
		{name: "above accrual", leaveDays: "3", wantPaid: "1.5", wantUnpaid: "1.5"},
		{name: "no leave", leaveDays: "0", wantPaid: "0", wantUnpaid: "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			paid, unpaid := SplitLeaveDays(dec(tt.leaveDays), paidPerMonth)
			assertDecimal(t, tt.wantPaid, paid)
			assertDecimal(t, tt.wantUnpaid, unpaid)
		})
	}
}

func TestUnpaidDays(t *testing.T) {
	t.Parallel()

	// 26 working days, 24 present, 1.5 days paid leave: half a day unpaid.
	assertDecimal(t, "0.5", UnpaidDays(26, 24, 0, dec("1.5")))

	// Half days weigh 0.5.
	assertDecimal(t, "1", UnpaidDays(22, 20, 2, decimal.Zero))

	// Never negative.
	assertDecimal(t, "0", UnpaidDays(20, 20, 2, dec("1.5")))
}

func TestLossOfPay(t *testing.T) {
	t.Parallel()

	// Basic 30000 over 26 working days prices a day at about 1153.85.
	assertDecimal(t, "576.92", LossOfPay(dec("30000"), 26, dec("0.5")))
	assertDecimal(t, "1153.85", LossOfPay(dec("30000"), 26, dec("1")))
	assertDecimal(t, "0", LossOfPay(dec("30000"), 26, decimal.Zero))
	assertDecimal(t, "0", LossOfPay(dec("30000"), 0, dec("2")))
}
