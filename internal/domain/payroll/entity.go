package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComponentType enum
type ComponentType string

const (
	ComponentEarning   ComponentType = "earning"
	ComponentDeduction ComponentType = "deduction"
)

// SalaryComponent is a named earning or deduction on top of basic salary.
// Percentage earnings are of basic salary; percentage deductions are of
// gross.
type SalaryComponent struct {
	ID           string
	Name         string
	Type         ComponentType
	Amount       decimal.Decimal
	IsPercentage bool
	IsFixed      bool
}

type PFDeduction struct {
	Enabled    bool
	Percentage decimal.Decimal // of basic
}

type ESIDeduction struct {
	Enabled    bool
	Percentage decimal.Decimal // of gross
}

type ProfessionalTax struct {
	Enabled bool
	Amount  decimal.Decimal // flat
}

type TDSDeduction struct {
	Enabled    bool
	Percentage decimal.Decimal // of gross
}

type StandardDeductions struct {
	PF              PFDeduction
	ESI             ESIDeduction
	ProfessionalTax ProfessionalTax
	TDS             TDSDeduction
}

type BankDetails struct {
	AccountNumber     *string
	IFSCCode          *string
	BankName          *string
	AccountHolderName *string
}

// SalaryConfig is the salary structure for one user, unique per user.
// PerDaySalary and PerHourSalary are derived and recomputed on every save.
type SalaryConfig struct {
	ID                 string
	UserID             string
	CompanyID          string
	BasicSalary        decimal.Decimal
	Components         []SalaryComponent
	StandardDeductions StandardDeductions
	BankDetails        BankDetails
	PerDaySalary       decimal.Decimal
	PerHourSalary      decimal.Decimal
	EffectiveFrom      time.Time
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PaymentStatus enum
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentProcessed PaymentStatus = "processed"
	PaymentPaid      PaymentStatus = "paid"
	PaymentOnHold    PaymentStatus = "on-hold"
)

func PaymentStatuses() []string {
	return []string{
		string(PaymentPending), string(PaymentProcessed),
		string(PaymentPaid), string(PaymentOnHold),
	}
}

// AttendanceSummary is the attendance snapshot frozen into a salary record.
type AttendanceSummary struct {
	WorkingDays       int
	PresentDays       int
	AbsentDays        int
	HalfDays          int
	PaidLeaveDays     decimal.Decimal
	UnpaidLeaveDays   decimal.Decimal
	LateDays          int
	EarlyLeaveDays    int
	TotalWorkingHours decimal.Decimal
}

type ComponentAmount struct {
	Name   string
	Amount decimal.Decimal
}

type Earnings struct {
	BasicSalary   decimal.Decimal
	Components    []ComponentAmount
	OvertimePay   decimal.Decimal
	TotalEarnings decimal.Decimal
}

type Deductions struct {
	Components      []ComponentAmount
	LossOfPay       decimal.Decimal
	PF              decimal.Decimal
	ESI             decimal.Decimal
	ProfessionalTax decimal.Decimal
	TDS             decimal.Decimal
	TotalDeductions decimal.Decimal
}

// SalaryRecord is the generated payroll for one user-month, unique on
// (user_id, year, month). It is an immutable snapshot except for the
// payment status fields.
type SalaryRecord struct {
	ID            string
	UserID        string
	CompanyID     string
	Year          int
	Month         time.Month
	Attendance    AttendanceSummary
	Earnings      Earnings
	Deductions    Deductions
	GrossSalary   decimal.Decimal
	NetSalary     decimal.Decimal
	PaymentStatus PaymentStatus
	PaymentDate   *time.Time
	PaymentMode   *string
	TransactionID *string
	GeneratedBy   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
