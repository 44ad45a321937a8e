package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/foratask/foratask-backend-go/internal/config"
	"github.com/foratask/foratask-backend-go/internal/domain/attendance"
	"github.com/foratask/foratask-backend-go/internal/domain/employee"
	"github.com/foratask/foratask-backend-go/internal/domain/notification"
	"github.com/foratask/foratask-backend-go/internal/domain/organization"
	"github.com/foratask/foratask-backend-go/internal/domain/payroll"
	"github.com/foratask/foratask-backend-go/internal/fixtures"
	"github.com/foratask/foratask-backend-go/internal/pkg/jwt"
	"github.com/foratask/foratask-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	payroll.SalaryConfigRepository
	payroll.SalaryRecordRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
	organization.SettingsRepository
	notifier notification.Notifier
	cfg      config.PayrollConfig
	now      func() time.Time
}

func NewPayrollService(
	configRepo payroll.SalaryConfigRepository,
	recordRepo payroll.SalaryRecordRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo organization.SettingsRepository,
	notifier notification.Notifier,
	cfg config.PayrollConfig,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		SalaryConfigRepository: configRepo,
		SalaryRecordRepository: recordRepo,
		AttendanceRepository:   attendanceRepo,
		EmployeeRepository:     employeeRepo,
		SettingsRepository:     settingsRepo,
		notifier:               notifier,
		cfg:                    cfg,
		now:                    time.Now,
	}
}

// GetSalaryConfig implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSalaryConfig(ctx context.Context, userID string) (*payroll.SalaryConfigResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if userID == "" {
		userID = sess.UserID
	}
	if userID != sess.UserID && !sess.Role.IsAdmin() {
		return nil, payroll.ErrAccessDenied
	}

	cfg, err := s.SalaryConfigRepository.GetByUser(ctx, userID, sess.CompanyID)
	if err != nil {
		return nil, err
	}

	return toConfigResponse(cfg), nil
}

// UpsertSalaryConfig implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpsertSalaryConfig(ctx context.Context, req *payroll.UpsertSalaryConfigRequest) (*payroll.SalaryConfigResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !sess.Role.IsAdmin() {
		return nil, payroll.ErrAccessDenied
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The target must belong to the same tenant.
	if _, err := s.EmployeeRepository.GetByID(ctx, req.UserID, sess.CompanyID); err != nil {
		return nil, err
	}

	cfg := &payroll.SalaryConfig{
		UserID:      req.UserID,
		CompanyID:   sess.CompanyID,
		BasicSalary: req.BasicSalary,
		IsActive:    true,
	}

	for _, c := range req.Components {
		cfg.Components = append(cfg.Components, payroll.SalaryComponent{
			Name:         c.Name,
			Type:         payroll.ComponentType(c.Type),
			Amount:       c.Amount,
			IsPercentage: c.IsPercentage,
			IsFixed:      c.IsFixed,
		})
	}

	if req.StandardDeductions != nil {
		cfg.StandardDeductions = toStandardDeductions(req.StandardDeductions)
	}
	if req.BankDetails != nil {
		cfg.BankDetails = payroll.BankDetails{
			AccountNumber:     req.BankDetails.AccountNumber,
			IFSCCode:          req.BankDetails.IFSCCode,
			BankName:          req.BankDetails.BankName,
			AccountHolderName: req.BankDetails.AccountHolderName,
		}
	}

	cfg.EffectiveFrom = s.now()
	if req.EffectiveFrom != nil {
		if parsed, ok := validator.IsValidDate(*req.EffectiveFrom); ok {
			cfg.EffectiveFrom = parsed
		}
	}

	earnings := ComputeEarnings(cfg.BasicSalary, cfg.Components)
	cfg.PerDaySalary, cfg.PerHourSalary = DerivedRates(
		earnings.TotalEarnings, s.cfg.DaysPerMonthForSalary, s.cfg.HoursPerDayForSalary)

	if err := s.SalaryConfigRepository.Upsert(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save salary config: %w", err)
	}

	return toConfigResponse(cfg), nil
}

// GenerateSalary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GenerateSalary(ctx context.Context, req *payroll.GenerateSalaryRequest) (*payroll.SalaryRecordResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !sess.Role.IsAdmin() {
		return nil, payroll.ErrAccessDenied
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	month := time.Month(req.Month)

	// Regeneration overwrites an unpaid record; a paid one is settled and
	// stays as generated.
	existing, err := s.SalaryRecordRepository.GetByUserAndPeriod(ctx, req.UserID, sess.CompanyID, req.Year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing salary record: %w", err)
	}
	if existing != nil && existing.PaymentStatus == payroll.PaymentPaid {
		return nil, payroll.ErrRecordAlreadyPaid
	}

	cfg, err := s.SalaryConfigRepository.GetByUser(ctx, req.UserID, sess.CompanyID)
	if err != nil {
		return nil, err
	}

	settings := fixtures.DefaultSettings(sess.CompanyID)
	loaded, err := s.SettingsRepository.GetByCompany(ctx, sess.CompanyID)
	if err == nil {
		settings = loaded
	} else if !errors.Is(err, organization.ErrSettingsNotFound) {
		return nil, fmt.Errorf("failed to get organization settings: %w", err)
	}

	summary, err := s.buildAttendanceSummary(ctx, req.UserID, sess.CompanyID, req.Year, month, &settings)
	if err != nil {
		return nil, err
	}

	earnings := ComputeEarnings(cfg.BasicSalary, cfg.Components)
	gross := earnings.TotalEarnings

	unpaidDays := UnpaidDays(summary.WorkingDays, summary.PresentDays, summary.HalfDays, summary.PaidLeaveDays)
	lossOfPay := LossOfPay(cfg.BasicSalary, summary.WorkingDays, unpaidDays)
	deductions := ComputeDeductions(cfg.BasicSalary, gross, cfg.Components, cfg.StandardDeductions, lossOfPay)

	rec := &payroll.SalaryRecord{
		UserID:        req.UserID,
		CompanyID:     sess.CompanyID,
		Year:          req.Year,
		Month:         month,
		Attendance:    summary,
		Earnings:      earnings,
		Deductions:    deductions,
		GrossSalary:   gross,
		NetSalary:     gross.Sub(deductions.TotalDeductions).Round(2),
		PaymentStatus: payroll.PaymentPending,
		GeneratedBy:   sess.UserID,
	}

	if err := s.SalaryRecordRepository.Save(ctx, rec); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, sess.CompanyID, []string{req.UserID}, notification.Message{
		Kind:    notification.KindSalaryGenerated,
		Title:   "Salary generated",
		Message: fmt.Sprintf("Your salary for %s %d has been generated", month, req.Year),
		RefID:   &rec.ID,
	})

	resp := toRecordResponse(rec)
	return &resp, nil
}

// buildAttendanceSummary freezes a month of attendance into the snapshot
// stored on a salary record.
func (s *PayrollServiceImpl) buildAttendanceSummary(ctx context.Context, userID, companyID string, year int, month time.Month, settings *organization.Settings) (payroll.AttendanceSummary, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := s.AttendanceRepository.ListByUserAndRange(ctx, userID, companyID, from, to)
	if err != nil {
		return payroll.AttendanceSummary{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	summary := payroll.AttendanceSummary{
		WorkingDays: settings.WorkingDaysInMonth(year, month),
	}

	totalMinutes := 0
	leaveDays := decimal.Zero
	for i := range records {
		rec := &records[i]
		switch rec.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusHalfDay:
			summary.HalfDays++
		case attendance.StatusOnLeave:
			leaveDays = leaveDays.Add(decimal.NewFromInt(1))
		}
		if rec.CheckIn != nil && rec.CheckIn.IsLate {
			summary.LateDays++
		}
		if rec.CheckOut != nil && rec.CheckOut.IsEarlyLeave {
			summary.EarlyLeaveDays++
		}
		if rec.WorkedMinutes != nil {
			totalMinutes += *rec.WorkedMinutes
		}
	}

	summary.PaidLeaveDays, summary.UnpaidLeaveDays = SplitLeaveDays(leaveDays, settings.Leave.PaidLeavesPerMonth)
	summary.TotalWorkingHours = decimal.NewFromInt(int64(totalMinutes)).
		Div(decimal.NewFromInt(60)).Round(2)

	absent := summary.WorkingDays - summary.PresentDays - summary.HalfDays - int(leaveDays.IntPart())
	if absent < 0 {
		absent = 0
	}
	summary.AbsentDays = absent

	return summary, nil
}

// GetSalaryRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSalaryRecords(ctx context.Context, filter *payroll.RecordsFilter) ([]payroll.SalaryRecordResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	userID := filter.UserID
	if userID == "" {
		userID = sess.UserID
	}
	if userID != sess.UserID && !sess.Role.IsAdmin() {
		return nil, payroll.ErrAccessDenied
	}

	year := filter.Year
	if year == 0 {
		year = s.now().Year()
	}

	records, err := s.SalaryRecordRepository.ListByUser(ctx, userID, sess.CompanyID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}

	responses := make([]payroll.SalaryRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toRecordResponse(&records[i]))
	}

	return responses, nil
}

// MarkSalaryPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkSalaryPaid(ctx context.Context, req *payroll.MarkPaidRequest) (*payroll.SalaryRecordResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !sess.Role.IsAdmin() {
		return nil, payroll.ErrAccessDenied
	}

	rec, err := s.SalaryRecordRepository.GetByID(ctx, req.RecordID, sess.CompanyID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rec.PaymentStatus = payroll.PaymentPaid
	rec.PaymentDate = &now
	rec.PaymentMode = req.PaymentMode
	rec.TransactionID = req.TransactionID

	if err := s.SalaryRecordRepository.UpdatePayment(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	s.notifier.Notify(ctx, sess.CompanyID, []string{rec.UserID}, notification.Message{
		Kind:    notification.KindSalaryPaid,
		Title:   "Salary paid",
		Message: fmt.Sprintf("Your salary for %s %d has been paid", rec.Month, rec.Year),
		RefID:   &rec.ID,
	})

	resp := toRecordResponse(rec)
	return &resp, nil
}

// GetPayrollSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayrollSummary(ctx context.Context, year, month int) (*payroll.PayrollSummaryResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !sess.Role.IsAdmin() {
		return nil, payroll.ErrAccessDenied
	}

	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		month = int(now.Month())
	}

	records, err := s.SalaryRecordRepository.ListByCompanyAndPeriod(ctx, sess.CompanyID, year, time.Month(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}

	resp := &payroll.PayrollSummaryResponse{
		Month:          month,
		Year:           year,
		TotalEmployees: len(records),
		TotalGross:     decimal.Zero,
		TotalNet:       decimal.Zero,
		Records:        make([]payroll.SalaryRecordResponse, 0, len(records)),
	}

	for i := range records {
		rec := &records[i]
		resp.TotalGross = resp.TotalGross.Add(rec.GrossSalary)
		resp.TotalNet = resp.TotalNet.Add(rec.NetSalary)
		if rec.PaymentStatus == payroll.PaymentPaid {
			resp.TotalPaid++
		} else if rec.PaymentStatus == payroll.PaymentPending {
			resp.TotalPending++
		}

		converted := toRecordResponse(rec)
		if emp, err := s.EmployeeRepository.GetByID(ctx, rec.UserID, sess.CompanyID); err == nil {
			converted.UserName = emp.FullName()
		}
		resp.Records = append(resp.Records, converted)
	}

	return resp, nil
}

func toStandardDeductions(p *payroll.StandardDeductionsPayload) payroll.StandardDeductions {
	var std payroll.StandardDeductions
	if p.PF != nil {
		std.PF = payroll.PFDeduction{Enabled: p.PF.Enabled, Percentage: p.PF.Percentage}
	}
	if p.ESI != nil {
		std.ESI = payroll.ESIDeduction{Enabled: p.ESI.Enabled, Percentage: p.ESI.Percentage}
	}
	if p.ProfessionalTax != nil {
		std.ProfessionalTax = payroll.ProfessionalTax{Enabled: p.ProfessionalTax.Enabled, Amount: p.ProfessionalTax.Amount}
	}
	if p.TDS != nil {
		std.TDS = payroll.TDSDeduction{Enabled: p.TDS.Enabled, Percentage: p.TDS.Percentage}
	}
	return std
}

func toConfigResponse(cfg *payroll.SalaryConfig) *payroll.SalaryConfigResponse {
	earnings := ComputeEarnings(cfg.BasicSalary, cfg.Components)

	resp := &payroll.SalaryConfigResponse{
		ID:          cfg.ID,
		UserID:      cfg.UserID,
		BasicSalary: cfg.BasicSalary,
		StandardDeductions: payroll.StandardDeductionsResponse{
			PF:              payroll.PFDeductionPayload{Enabled: cfg.StandardDeductions.PF.Enabled, Percentage: cfg.StandardDeductions.PF.Percentage},
			ESI:             payroll.ESIDeductionPayload{Enabled: cfg.StandardDeductions.ESI.Enabled, Percentage: cfg.StandardDeductions.ESI.Percentage},
			ProfessionalTax: payroll.ProfessionalTaxPayload{Enabled: cfg.StandardDeductions.ProfessionalTax.Enabled, Amount: cfg.StandardDeductions.ProfessionalTax.Amount},
			TDS:             payroll.TDSDeductionPayload{Enabled: cfg.StandardDeductions.TDS.Enabled, Percentage: cfg.StandardDeductions.TDS.Percentage},
		},
		BankDetails: payroll.BankDetailsResponse{
			AccountNumber:     cfg.BankDetails.AccountNumber,
			IFSCCode:          cfg.BankDetails.IFSCCode,
			BankName:          cfg.BankDetails.BankName,
			AccountHolderName: cfg.BankDetails.AccountHolderName,
		},
		GrossSalary:   earnings.TotalEarnings,
		PerDaySalary:  cfg.PerDaySalary,
		PerHourSalary: cfg.PerHourSalary,
		EffectiveFrom: cfg.EffectiveFrom,
		IsActive:      cfg.IsActive,
	}

	for _, c := range cfg.Components {
		resp.Components = append(resp.Components, payroll.SalaryComponentResponse{
			Name:         c.Name,
			Type:         string(c.Type),
			Amount:       c.Amount,
			IsPercentage: c.IsPercentage,
			IsFixed:      c.IsFixed,
		})
	}

	return resp
}

func toRecordResponse(rec *payroll.SalaryRecord) payroll.SalaryRecordResponse {
	resp := payroll.SalaryRecordResponse{
		ID:     rec.ID,
		UserID: rec.UserID,
		Year:   rec.Year,
		Month:  int(rec.Month),
		Attendance: payroll.AttendanceSummaryResponse{
			WorkingDays:       rec.Attendance.WorkingDays,
			PresentDays:       rec.Attendance.PresentDays,
			AbsentDays:        rec.Attendance.AbsentDays,
			HalfDays:          rec.Attendance.HalfDays,
			PaidLeaveDays:     rec.Attendance.PaidLeaveDays,
			UnpaidLeaveDays:   rec.Attendance.UnpaidLeaveDays,
			LateDays:          rec.Attendance.LateDays,
			EarlyLeaveDays:    rec.Attendance.EarlyLeaveDays,
			TotalWorkingHours: rec.Attendance.TotalWorkingHours,
		},
		Earnings: payroll.EarningsResponse{
			BasicSalary:   rec.Earnings.BasicSalary,
			OvertimePay:   rec.Earnings.OvertimePay,
			TotalEarnings: rec.Earnings.TotalEarnings,
		},
		Deductions: payroll.DeductionsResponse{
			LossOfPay:       rec.Deductions.LossOfPay,
			PF:              rec.Deductions.PF,
			ESI:             rec.Deductions.ESI,
			ProfessionalTax: rec.Deductions.ProfessionalTax,
			TDS:             rec.Deductions.TDS,
			TotalDeductions: rec.Deductions.TotalDeductions,
		},
		GrossSalary:   rec.GrossSalary,
		NetSalary:     rec.NetSalary,
		PaymentStatus: string(rec.PaymentStatus),
		PaymentDate:   rec.PaymentDate,
		PaymentMode:   rec.PaymentMode,
		TransactionID: rec.TransactionID,
		CreatedAt:     rec.CreatedAt,
	}

	for _, c := range rec.Earnings.Components {
		resp.Earnings.Components = append(resp.Earnings.Components, payroll.ComponentAmountResponse{Name: c.Name, Amount: c.Amount})
	}
	for _, c := range rec.Deductions.Components {
		resp.Deductions.Components = append(resp.Deductions.Components, payroll.ComponentAmountResponse{Name: c.Name, Amount: c.Amount})
	}

	return resp
}
