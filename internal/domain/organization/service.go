package organization

import "context"

type SettingsService interface {
	// GetSettings returns the caller's tenant settings, seeding the
	// default configuration for tenants that have none yet
	GetSettings(ctx context.Context) (SettingsResponse, error)

	// UpdateSettings applies a partial settings update (admin only)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)

	// AddOfficeLocation registers a geofenced office (admin only)
	AddOfficeLocation(ctx context.Context, req OfficeLocationRequest) (OfficeLocationResponse, error)

	// UpdateOfficeLocation updates an office by ID (admin only)
	UpdateOfficeLocation(ctx context.Context, officeID string, req OfficeLocationRequest) (OfficeLocationResponse, error)

	// DeleteOfficeLocation removes an office by ID (admin only)
	DeleteOfficeLocation(ctx context.Context, officeID string) error

	// GetUpcomingHolidays lists today's and future holidays, soonest first
	GetUpcomingHolidays(ctx context.Context) ([]HolidayResponse, error)

	// AddHoliday declares a company-wide non-working date (admin only)
	AddHoliday(ctx context.Context, req HolidayRequest) (HolidayResponse, error)

	// DeleteHoliday removes a holiday by ID (admin only)
	DeleteHoliday(ctx context.Context, holidayID string) error
}
