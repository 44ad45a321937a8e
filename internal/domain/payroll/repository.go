package payroll

import (
	"context"
	"time"
)

type SalaryConfigRepository interface {
	// GetByUser returns the active salary config for the user, or
	// ErrSalaryConfigNotFound.
	GetByUser(ctx context.Context, userID, companyID string) (*SalaryConfig, error)
	// Upsert creates or replaces the salary config for cfg.UserID.
	Upsert(ctx context.Context, cfg *SalaryConfig) error
}

type SalaryRecordRepository interface {
	// Save inserts the record or overwrites the existing one for the
	// same (user, year, month), resetting its payment fields.
	Save(ctx context.Context, rec *SalaryRecord) error
	GetByID(ctx context.Context, id, companyID string) (*SalaryRecord, error)
	// GetByUserAndPeriod returns (nil, nil) when no record exists for the
	// user-month.
	GetByUserAndPeriod(ctx context.Context, userID, companyID string, year int, month time.Month) (*SalaryRecord, error)
	ListByUser(ctx context.Context, userID, companyID string, year int) ([]SalaryRecord, error)
	ListByCompanyAndPeriod(ctx context.Context, companyID string, year int, month time.Month) ([]SalaryRecord, error)
	UpdatePayment(ctx context.Context, rec *SalaryRecord) error
}
