package organization

import (
	"context"
	"time"
)

// SettingsRepository defines data access for organization settings.
// All methods include companyID to prevent cross-company data access.
type SettingsRepository interface {
	// GetByCompany retrieves the settings row for a tenant, office
	// locations and holidays included. Returns ErrSettingsNotFound for
	// new tenants.
	GetByCompany(ctx context.Context, companyID string) (Settings, error)

	// Upsert creates or replaces the settings row for a tenant
	Upsert(ctx context.Context, settings Settings) (Settings, error)

	// AddOffice appends an office location. When the new office is
	// primary, the primary flag is cleared on every other office in the
	// same statement (last write wins).
	AddOffice(ctx context.Context, companyID string, office OfficeLocation) (OfficeLocation, error)

	// UpdateOffice updates an office location with company isolation
	UpdateOffice(ctx context.Context, companyID string, office OfficeLocation) error

	// DeleteOffice removes an office location with company isolation
	DeleteOffice(ctx context.Context, companyID string, officeID string) error

	// ListHolidaysFrom retrieves holidays on or after the given date,
	// date ascending
	ListHolidaysFrom(ctx context.Context, companyID string, from time.Time) ([]Holiday, error)

	// AddHoliday declares a company-wide non-working date
	AddHoliday(ctx context.Context, companyID string, holiday Holiday) (Holiday, error)

	// DeleteHoliday removes a holiday with company isolation
	DeleteHoliday(ctx context.Context, companyID string, holidayID string) error
}
