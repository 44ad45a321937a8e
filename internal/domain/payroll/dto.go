package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/foratask/foratask-backend-go/internal/pkg/validator"
)

type SalaryComponentPayload struct {
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	IsPercentage bool            `json:"is_percentage"`
	IsFixed      bool            `json:"is_fixed"`
}

type PFDeductionPayload struct {
	Enabled    bool            `json:"enabled"`
	Percentage decimal.Decimal `json:"percentage"`
}

type ESIDeductionPayload struct {
	Enabled    bool            `json:"enabled"`
	Percentage decimal.Decimal `json:"percentage"`
}

type ProfessionalTaxPayload struct {
	Enabled bool            `json:"enabled"`
	Amount  decimal.Decimal `json:"amount"`
}

type TDSDeductionPayload struct {
	Enabled    bool            `json:"enabled"`
	Percentage decimal.Decimal `json:"percentage"`
}

type StandardDeductionsPayload struct {
	PF              *PFDeductionPayload     `json:"pf"`
	ESI             *ESIDeductionPayload    `json:"esi"`
	ProfessionalTax *ProfessionalTaxPayload `json:"professional_tax"`
	TDS             *TDSDeductionPayload    `json:"tds"`
}

type BankDetailsPayload struct {
	AccountNumber     *string `json:"account_number"`
	IFSCCode          *string `json:"ifsc_code"`
	BankName          *string `json:"bank_name"`
	AccountHolderName *string `json:"account_holder_name"`
}

type UpsertSalaryConfigRequest struct {
	UserID             string                     `json:"-"`
	BasicSalary        decimal.Decimal            `json:"basic_salary"`
	Components         []SalaryComponentPayload   `json:"components"`
	StandardDeductions *StandardDeductionsPayload `json:"standard_deductions"`
	BankDetails        *BankDetailsPayload        `json:"bank_details"`
	EffectiveFrom      *string                    `json:"effective_from"`
}

// Validate validates the UpsertSalaryConfigRequest fields.
func (r *UpsertSalaryConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BasicSalary.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "Basic salary must be greater than zero",
		})
	}

	componentTypes := []string{string(ComponentEarning), string(ComponentDeduction)}
	for _, c := range r.Components {
		if validator.IsEmpty(c.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "components",
				Message: "Component name is required",
			})
		}
		if !validator.IsInSlice(c.Type, componentTypes) {
			errs = append(errs, validator.ValidationError{
				Field:   "components",
				Message: "Component type must be either earning or deduction",
			})
		}
		if c.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "components",
				Message: "Component amount cannot be negative",
			})
		}
		if c.IsPercentage && c.Amount.GreaterThan(decimal.NewFromInt(100)) {
			errs = append(errs, validator.ValidationError{
				Field:   "components",
				Message: "Percentage component cannot exceed 100",
			})
		}
	}

	if r.EffectiveFrom != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveFrom); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_from",
				Message: "Effective from must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateSalaryRequest struct {
	UserID string `json:"-"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
}

// Validate validates the GenerateSalaryRequest fields.
func (r *GenerateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "Month must be between 1 and 12",
		})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "Year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPaidRequest struct {
	RecordID      string  `json:"-"`
	PaymentMode   *string `json:"payment_mode"`
	TransactionID *string `json:"transaction_id"`
}

type RecordsFilter struct {
	UserID string
	Year   int
}

type SalaryComponentResponse struct {
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	IsPercentage bool            `json:"is_percentage"`
	IsFixed      bool            `json:"is_fixed"`
}

type StandardDeductionsResponse struct {
	PF              PFDeductionPayload     `json:"pf"`
	ESI             ESIDeductionPayload    `json:"esi"`
	ProfessionalTax ProfessionalTaxPayload `json:"professional_tax"`
	TDS             TDSDeductionPayload    `json:"tds"`
}

type BankDetailsResponse struct {
	AccountNumber     *string `json:"account_number,omitempty"`
	IFSCCode          *string `json:"ifsc_code,omitempty"`
	BankName          *string `json:"bank_name,omitempty"`
	AccountHolderName *string `json:"account_holder_name,omitempty"`
}

type SalaryConfigResponse struct {
	ID                 string                     `json:"id"`
	UserID             string                     `json:"user_id"`
	BasicSalary        decimal.Decimal            `json:"basic_salary"`
	Components         []SalaryComponentResponse  `json:"components"`
	StandardDeductions StandardDeductionsResponse `json:"standard_deductions"`
	BankDetails        BankDetailsResponse        `json:"bank_details"`
	GrossSalary        decimal.Decimal            `json:"gross_salary"`
	PerDaySalary       decimal.Decimal            `json:"per_day_salary"`
	PerHourSalary      decimal.Decimal            `json:"per_hour_salary"`
	EffectiveFrom      time.Time                  `json:"effective_from"`
	IsActive           bool                       `json:"is_active"`
}

type AttendanceSummaryResponse struct {
	WorkingDays       int             `json:"working_days"`
	PresentDays       int             `json:"present_days"`
	AbsentDays        int             `json:"absent_days"`
	HalfDays          int             `json:"half_days"`
	PaidLeaveDays     decimal.Decimal `json:"paid_leave_days"`
	UnpaidLeaveDays   decimal.Decimal `json:"unpaid_leave_days"`
	LateDays          int             `json:"late_days"`
	EarlyLeaveDays    int             `json:"early_leave_days"`
	TotalWorkingHours decimal.Decimal `json:"total_working_hours"`
}

type ComponentAmountResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type EarningsResponse struct {
	BasicSalary   decimal.Decimal           `json:"basic_salary"`
	Components    []ComponentAmountResponse `json:"components"`
	OvertimePay   decimal.Decimal           `json:"overtime_pay"`
	TotalEarnings decimal.Decimal           `json:"total_earnings"`
}

type DeductionsResponse struct {
	Components      []ComponentAmountResponse `json:"components"`
	LossOfPay       decimal.Decimal           `json:"loss_of_pay"`
	PF              decimal.Decimal           `json:"pf"`
	ESI             decimal.Decimal           `json:"esi"`
	ProfessionalTax decimal.Decimal           `json:"professional_tax"`
	TDS             decimal.Decimal           `json:"tds"`
	TotalDeductions decimal.Decimal           `json:"total_deductions"`
}

type SalaryRecordResponse struct {
	ID            string                    `json:"id"`
	UserID        string                    `json:"user_id"`
	UserName      string                    `json:"user_name,omitempty"`
	Year          int                       `json:"year"`
	Month         int                       `json:"month"`
	Attendance    AttendanceSummaryResponse `json:"attendance"`
	Earnings      EarningsResponse          `json:"earnings"`
	Deductions    DeductionsResponse        `json:"deductions"`
	GrossSalary   decimal.Decimal           `json:"gross_salary"`
	NetSalary     decimal.Decimal           `json:"net_salary"`
	PaymentStatus string                    `json:"payment_status"`
	PaymentDate   *time.Time                `json:"payment_date,omitempty"`
	PaymentMode   *string                   `json:"payment_mode,omitempty"`
	TransactionID *string                   `json:"transaction_id,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
}

type PayrollSummaryResponse struct {
	Month          int                    `json:"month"`
	Year           int                    `json:"year"`
	TotalEmployees int                    `json:"total_employees"`
	TotalGross     decimal.Decimal        `json:"total_gross"`
	TotalNet       decimal.Decimal        `json:"total_net"`
	TotalPaid      int                    `json:"total_paid"`
	TotalPending   int                    `json:"total_pending"`
	Records        []SalaryRecordResponse `json:"records"`
}
