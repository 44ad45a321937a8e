package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/foratask/foratask-backend-go/internal/domain/payroll"
	"github.com/foratask/foratask-backend-go/internal/pkg/database"
)

type salaryRecordRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRecordRepository(db *database.DB) payroll.SalaryRecordRepository {
	return &salaryRecordRepositoryImpl{db: db}
}

const salaryRecordColumns = `
	id, user_id, company_id, year, month, attendance, earnings, deductions,
	gross_salary, net_salary, payment_status, payment_date, payment_mode,
	transaction_id, generated_by, created_at, updated_at
`

func scanSalaryRecord(row pgx.Row) (payroll.SalaryRecord, error) {
	var rec payroll.SalaryRecord
	var month int
	var attendanceBytes, earningsBytes, deductionsBytes []byte

	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.CompanyID, &rec.Year, &month,
		&attendanceBytes, &earningsBytes, &deductionsBytes,
		&rec.GrossSalary, &rec.NetSalary, &rec.PaymentStatus, &rec.PaymentDate,
		&rec.PaymentMode, &rec.TransactionID, &rec.GeneratedBy,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return payroll.SalaryRecord{}, err
	}
	rec.Month = time.Month(month)

	if err := json.Unmarshal(attendanceBytes, &rec.Attendance); err != nil {
		return payroll.SalaryRecord{}, fmt.Errorf("decode attendance summary: %w", err)
	}
	if err := json.Unmarshal(earningsBytes, &rec.Earnings); err != nil {
		return payroll.SalaryRecord{}, fmt.Errorf("decode earnings: %w", err)
	}
	if err := json.Unmarshal(deductionsBytes, &rec.Deductions); err != nil {
		return payroll.SalaryRecord{}, fmt.Errorf("decode deductions: %w", err)
	}

	return rec, nil
}

// Save implements payroll.SalaryRecordRepository.
func (r *salaryRecordRepositoryImpl) Save(ctx context.Context, rec *payroll.SalaryRecord) error {
	q := GetQuerier(ctx, r.db)

	attendanceJSON, _ := json.Marshal(rec.Attendance)
	earningsJSON, _ := json.Marshal(rec.Earnings)
	deductionsJSON, _ := json.Marshal(rec.Deductions)

	// Regeneration replaces the whole snapshot and resets the payment
	// fields of an unpaid record.
	query := `
		INSERT INTO salary_records (
			id, user_id, company_id, year, month, attendance, earnings, deductions,
			gross_salary, net_salary, payment_status, generated_by,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11,
			NOW(), NOW()
		)
		ON CONFLICT (user_id, year, month) DO UPDATE SET
			attendance = EXCLUDED.attendance,
			earnings = EXCLUDED.earnings,
			deductions = EXCLUDED.deductions,
			gross_salary = EXCLUDED.gross_salary,
			net_salary = EXCLUDED.net_salary,
			payment_status = EXCLUDED.payment_status,
			payment_date = NULL,
			payment_mode = NULL,
			transaction_id = NULL,
			generated_by = EXCLUDED.generated_by,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.UserID, rec.CompanyID, rec.Year, int(rec.Month),
		attendanceJSON, earningsJSON, deductionsJSON,
		rec.GrossSalary, rec.NetSalary, rec.PaymentStatus, rec.GeneratedBy,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID implements payroll.SalaryRecordRepository.
func (r *salaryRecordRepositoryImpl) GetByID(ctx context.Context, id, companyID string) (*payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryRecordColumns + `
		FROM salary_records
		WHERE id = $1 AND company_id = $2
	`

	rec, err := scanSalaryRecord(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrSalaryRecordNotFound
		}
		return nil, err
	}

	return &rec, nil
}

// GetByUserAndPeriod implements payroll.SalaryRecordRepository.
func (r *salaryRecordRepositoryImpl) GetByUserAndPeriod(ctx context.Context, userID, companyID string, year int, month time.Month) (*payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryRecordColumns + `
		FROM salary_records
		WHERE user_id = $1 AND company_id = $2 AND year = $3 AND month = $4
	`

	rec, err := scanSalaryRecord(q.QueryRow(ctx, query, userID, companyID, year, int(month)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &rec, nil
}

// ListByUser implements payroll.SalaryRecordRepository.
func (r *salaryRecordRepositoryImpl) ListByUser(ctx context.Context, userID, companyID string, year int) ([]payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryRecordColumns + `
		FROM salary_records
		WHERE user_id = $1 AND company_id = $2 AND year = $3
		ORDER BY month DESC
	`

	rows, err := q.Query(ctx, query, userID, companyID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSalaryRecords(rows)
}

// ListByCompanyAndPeriod implements payroll.SalaryRecordRepository.
func (r *salaryRecordRepositoryImpl) ListByCompanyAndPeriod(ctx context.Context, companyID string, year int, month time.Month) ([]payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryRecordColumns + `
		FROM salary_records
		WHERE company_id = $1 AND year = $2 AND month = $3
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, companyID, year, int(month))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSalaryRecords(rows)
}

func collectSalaryRecords(rows pgx.Rows) ([]payroll.SalaryRecord, error) {
	var records []payroll.SalaryRecord
	for rows.Next() {
		rec, err := scanSalaryRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// UpdatePayment implements payroll.SalaryRecordRepository.
func (r *salaryRecordRepositoryImpl) UpdatePayment(ctx context.Context, rec *payroll.SalaryRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_records
		SET payment_status = $1, payment_date = $2, payment_mode = $3,
			transaction_id = $4, updated_at = NOW()
		WHERE id = $5 AND company_id = $6
	`

	tag, err := q.Exec(ctx, query,
		rec.PaymentStatus, rec.PaymentDate, rec.PaymentMode,
		rec.TransactionID, rec.ID, rec.CompanyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrSalaryRecordNotFound
	}

	return nil
}
