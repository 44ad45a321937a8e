package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/foratask/foratask-backend-go/internal/domain/organization"
	"github.com/foratask/foratask-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) organization.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// GetByCompany implements organization.SettingsRepository.
func (r *settingsRepositoryImpl) GetByCompany(ctx context.Context, companyID string) (organization.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id,
			   works_sunday, works_monday, works_tuesday, works_wednesday,
			   works_thursday, works_friday, works_saturday,
			   start_time, end_time, total_hours, break_duration_minutes,
			   late_tolerance_minutes, early_leave_tolerance_minutes,
			   require_geotag, allow_remote_attendance,
			   paid_leaves_per_month, carry_forward_limit, allow_half_day,
			   created_at, updated_at
		FROM organization_settings
		WHERE company_id = $1
	`

	var s organization.Settings
	err := q.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID,
		&s.WorkingDays.Sunday, &s.WorkingDays.Monday, &s.WorkingDays.Tuesday,
		&s.WorkingDays.Wednesday, &s.WorkingDays.Thursday, &s.WorkingDays.Friday,
		&s.WorkingDays.Saturday,
		&s.WorkingHours.StartTime, &s.WorkingHours.EndTime,
		&s.WorkingHours.TotalHours, &s.WorkingHours.BreakDurationMinutes,
		&s.Attendance.LateToleranceMinutes, &s.Attendance.EarlyLeaveToleranceMinutes,
		&s.Attendance.RequireGeotag, &s.Attendance.AllowRemoteAttendance,
		&s.Leave.PaidLeavesPerMonth, &s.Leave.CarryForwardLimit, &s.Leave.AllowHalfDay,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Settings{}, organization.ErrSettingsNotFound
		}
		return organization.Settings{}, err
	}

	offices, err := r.listOffices(ctx, q, companyID)
	if err != nil {
		return organization.Settings{}, err
	}
	s.OfficeLocations = offices

	holidays, err := r.listHolidays(ctx, q, companyID)
	if err != nil {
		return organization.Settings{}, err
	}
	s.Holidays = holidays

	return s, nil
}

func (r *settingsRepositoryImpl) listHolidays(ctx context.Context, q database.Querier, companyID string) ([]organization.Holiday, error) {
	query := `
		SELECT id, name, date
		FROM company_holidays
		WHERE company_id = $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []organization.Holiday
	for rows.Next() {
		var h organization.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

func (r *settingsRepositoryImpl) listOffices(ctx context.Context, q database.Querier, companyID string) ([]organization.OfficeLocation, error) {
	query := `
		SELECT id, name, latitude, longitude, geofence_radius_meters, is_primary
		FROM office_locations
		WHERE company_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offices []organization.OfficeLocation
	for rows.Next() {
		var o organization.OfficeLocation
		err := rows.Scan(&o.ID, &o.Name, &o.Latitude, &o.Longitude, &o.GeofenceRadiusMeters, &o.IsPrimary)
		if err != nil {
			return nil, err
		}
		offices = append(offices, o)
	}

	return offices, rows.Err()
}

// Upsert implements organization.SettingsRepository.
func (r *settingsRepositoryImpl) Upsert(ctx context.Context, settings organization.Settings) (organization.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO organization_settings (
			id, company_id,
			works_sunday, works_monday, works_tuesday, works_wednesday,
			works_thursday, works_friday, works_saturday,
			start_time, end_time, total_hours, break_duration_minutes,
			late_tolerance_minutes, early_leave_tolerance_minutes,
			require_geotag, allow_remote_attendance,
			paid_leaves_per_month, carry_forward_limit, allow_half_day,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1,
			$2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14,
			$15, $16,
			$17, $18, $19,
			NOW(), NOW()
		)
		ON CONFLICT (company_id) DO UPDATE SET
			works_sunday = EXCLUDED.works_sunday,
			works_monday = EXCLUDED.works_monday,
			works_tuesday = EXCLUDED.works_tuesday,
			works_wednesday = EXCLUDED.works_wednesday,
			works_thursday = EXCLUDED.works_thursday,
			works_friday = EXCLUDED.works_friday,
			works_saturday = EXCLUDED.works_saturday,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			total_hours = EXCLUDED.total_hours,
			break_duration_minutes = EXCLUDED.break_duration_minutes,
			late_tolerance_minutes = EXCLUDED.late_tolerance_minutes,
			early_leave_tolerance_minutes = EXCLUDED.early_leave_tolerance_minutes,
			require_geotag = EXCLUDED.require_geotag,
			allow_remote_attendance = EXCLUDED.allow_remote_attendance,
			paid_leaves_per_month = EXCLUDED.paid_leaves_per_month,
			carry_forward_limit = EXCLUDED.carry_forward_limit,
			allow_half_day = EXCLUDED.allow_half_day,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		settings.CompanyID,
		settings.WorkingDays.Sunday, settings.WorkingDays.Monday, settings.WorkingDays.Tuesday,
		settings.WorkingDays.Wednesday, settings.WorkingDays.Thursday, settings.WorkingDays.Friday,
		settings.WorkingDays.Saturday,
		settings.WorkingHours.StartTime, settings.WorkingHours.EndTime,
		settings.WorkingHours.TotalHours, settings.WorkingHours.BreakDurationMinutes,
		settings.Attendance.LateToleranceMinutes, settings.Attendance.EarlyLeaveToleranceMinutes,
		settings.Attendance.RequireGeotag, settings.Attendance.AllowRemoteAttendance,
		settings.Leave.PaidLeavesPerMonth, settings.Leave.CarryForwardLimit, settings.Leave.AllowHalfDay,
	).Scan(&settings.ID, &settings.CreatedAt, &settings.UpdatedAt)
	if err != nil {
		return organization.Settings{}, err
	}

	return settings, nil
}

// AddOffice implements organization.SettingsRepository.
func (r *settingsRepositoryImpl) AddOffice(ctx context.Context, companyID string, office organization.OfficeLocation) (organization.OfficeLocation, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if office.IsPrimary {
			_, err := tx.Exec(ctx, `UPDATE office_locations SET is_primary = FALSE WHERE company_id = $1`, companyID)
			if err != nil {
				return err
			}
		}

		query := `
			INSERT INTO office_locations (
				id, company_id, name, latitude, longitude,
				geofence_radius_meters, is_primary, created_at, updated_at
			) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
			RETURNING id
		`
		return tx.QueryRow(ctx, query,
			companyID, office.Name, office.Latitude, office.Longitude,
			office.GeofenceRadiusMeters, office.IsPrimary,
		).Scan(&office.ID)
	})
	if err != nil {
		return organization.OfficeLocation{}, err
	}

	return office, nil
}

// UpdateOffice implements organization.SettingsRepository.
func (r *settingsRepositoryImpl) UpdateOffice(ctx context.Context, companyID string, office organization.OfficeLocation) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if office.IsPrimary {
			_, err := tx.Exec(ctx,
				`UPDATE office_locations SET is_primary = FALSE WHERE company_id = $1 AND id <> $2`,
				companyID, office.ID,
			)
			if err != nil {
				return err
			}
		}

		query := `
			UPDATE office_locations
			SET name = $1, latitude = $2, longitude = $3,
				geofence_radius_meters = $4, is_primary = $5, updated_at = NOW()
			WHERE id = $6 AND company_id = $7
		`
		tag, err := tx.Exec(ctx, query,
			office.Name, office.Latitude, office.Longitude,
			office.GeofenceRadiusMeters, office.IsPrimary,
			office.ID, companyID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return organization.ErrLocationNotFound
		}
		return nil
	})
}

// ListHolidaysFrom implements organization.SettingsRepository.
func (r *settingsRepositoryImpl) ListHolidaysFrom(ctx context.Context, companyID string, from time.Time) ([]organization.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date
		FROM company_holidays
		WHERE company_id = $1 AND date >= $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, companyID, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []organization.Holiday
	for rows.Next() {
		var h organization.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// AddHoliday implements organization.SettingsRepository.
func (r *settingsRepositoryImpl) AddHoliday(ctx context.Context, companyID string, holiday organization.Holiday) (organization.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO company_holidays (id, company_id, name, date, created_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		RETURNING id
	`

	err := q.QueryRow(ctx, query, companyID, holiday.Name, holiday.Date).Scan(&holiday.ID)
	if err != nil {
		return organization.Holiday{}, err
	}

	return holiday, nil
}

// DeleteHoliday implements organization.SettingsRepository.
func (r *settingsRepositoryImpl) DeleteHoliday(ctx context.Context, companyID string, holidayID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM company_holidays WHERE id = $1 AND company_id = $2`,
		holidayID, companyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return organization.ErrHolidayNotFound
	}
	return nil
}

// DeleteOffice implements organization.SettingsRepository.
func (r *settingsRepositoryImpl) DeleteOffice(ctx context.Context, companyID string, officeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM office_locations WHERE id = $1 AND company_id = $2`,
		officeID, companyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return organization.ErrLocationNotFound
	}
	return nil
}
