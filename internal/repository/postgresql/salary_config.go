package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/foratask/foratask-backend-go/internal/domain/payroll"
	"github.com/foratask/foratask-backend-go/internal/pkg/database"
)

type salaryConfigRepositoryImpl struct {
	db *database.DB
}

func NewSalaryConfigRepository(db *database.DB) payroll.SalaryConfigRepository {
	return &salaryConfigRepositoryImpl{db: db}
}

// GetByUser implements payroll.SalaryConfigRepository.
func (r *salaryConfigRepositoryImpl) GetByUser(ctx context.Context, userID, companyID string) (*payroll.SalaryConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, company_id, basic_salary, components,
			   standard_deductions, bank_details, per_day_salary, per_hour_salary,
			   effective_from, is_active, created_at, updated_at
		FROM salary_configs
		WHERE user_id = $1 AND company_id = $2 AND is_active = TRUE
	`

	var cfg payroll.SalaryConfig
	var componentsBytes, deductionsBytes, bankBytes []byte
	err := q.QueryRow(ctx, query, userID, companyID).Scan(
		&cfg.ID, &cfg.UserID, &cfg.CompanyID, &cfg.BasicSalary, &componentsBytes,
		&deductionsBytes, &bankBytes, &cfg.PerDaySalary, &cfg.PerHourSalary,
		&cfg.EffectiveFrom, &cfg.IsActive, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrSalaryConfigNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(componentsBytes, &cfg.Components); err != nil {
		return nil, fmt.Errorf("decode salary components: %w", err)
	}
	if err := json.Unmarshal(deductionsBytes, &cfg.StandardDeductions); err != nil {
		return nil, fmt.Errorf("decode standard deductions: %w", err)
	}
	if err := json.Unmarshal(bankBytes, &cfg.BankDetails); err != nil {
		return nil, fmt.Errorf("decode bank details: %w", err)
	}

	return &cfg, nil
}

// Upsert implements payroll.SalaryConfigRepository.
func (r *salaryConfigRepositoryImpl) Upsert(ctx context.Context, cfg *payroll.SalaryConfig) error {
	q := GetQuerier(ctx, r.db)

	componentsJSON, _ := json.Marshal(cfg.Components)
	deductionsJSON, _ := json.Marshal(cfg.StandardDeductions)
	bankJSON, _ := json.Marshal(cfg.BankDetails)

	query := `
		INSERT INTO salary_configs (
			id, user_id, company_id, basic_salary, components,
			standard_deductions, bank_details, per_day_salary, per_hour_salary,
			effective_from, is_active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, TRUE, NOW(), NOW()
		)
		ON CONFLICT (user_id) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			components = EXCLUDED.components,
			standard_deductions = EXCLUDED.standard_deductions,
			bank_details = EXCLUDED.bank_details,
			per_day_salary = EXCLUDED.per_day_salary,
			per_hour_salary = EXCLUDED.per_hour_salary,
			effective_from = EXCLUDED.effective_from,
			is_active = TRUE,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	return q.QueryRow(ctx, query,
		cfg.UserID, cfg.CompanyID, cfg.BasicSalary, componentsJSON,
		deductionsJSON, bankJSON, cfg.PerDaySalary, cfg.PerHourSalary,
		cfg.EffectiveFrom,
	).Scan(&cfg.ID, &cfg.CreatedAt, &cfg.UpdatedAt)
}
