package payroll

import "context"

type PayrollService interface {
	// GetSalaryConfig returns the salary configuration for the user.
	GetSalaryConfig(ctx context.Context, userID string) (*SalaryConfigResponse, error)
	// UpsertSalaryConfig creates or replaces the user's salary
	// configuration and recomputes the derived per-day and per-hour rates.
	UpsertSalaryConfig(ctx context.Context, req *UpsertSalaryConfigRequest) (*SalaryConfigResponse, error)
	// GenerateSalary builds the salary record for one user-month from the
	// attendance and leave data of that month.
	GenerateSalary(ctx context.Context, req *GenerateSalaryRequest) (*SalaryRecordResponse, error)
	// GetSalaryRecords lists the user's salary records for a year.
	GetSalaryRecords(ctx context.Context, filter *RecordsFilter) ([]SalaryRecordResponse, error)
	// MarkSalaryPaid transitions a record to paid and stamps the payment
	// details.
	MarkSalaryPaid(ctx context.Context, req *MarkPaidRequest) (*SalaryRecordResponse, error)
	// GetPayrollSummary aggregates all salary records of the company for
	// one month.
	GetPayrollSummary(ctx context.Context, year, month int) (*PayrollSummaryResponse, error)
}
