package organization

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/foratask/foratask-backend-go/internal/domain/organization"
	"github.com/foratask/foratask-backend-go/internal/fixtures"
	"github.com/foratask/foratask-backend-go/internal/pkg/jwt"
	"github.com/foratask/foratask-backend-go/internal/pkg/validator"
)

type SettingsServiceImpl struct {
	organization.SettingsRepository
}

func NewSettingsService(repo organization.SettingsRepository) organization.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: repo}
}

// GetSettings implements organization.SettingsService.
func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (organization.SettingsResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return organization.SettingsResponse{}, err
	}

	settings, err := s.loadOrSeed(ctx, sess.CompanyID)
	if err != nil {
		return organization.SettingsResponse{}, err
	}

	return toSettingsResponse(settings), nil
}

// loadOrSeed fetches the tenant settings, persisting the defaults the
// first time a tenant asks for them.
func (s *SettingsServiceImpl) loadOrSeed(ctx context.Context, companyID string) (organization.Settings, error) {
	settings, err := s.SettingsRepository.GetByCompany(ctx, companyID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, organization.ErrSettingsNotFound) {
		return organization.Settings{}, fmt.Errorf("failed to get organization settings: %w", err)
	}

	seeded, err := s.SettingsRepository.Upsert(ctx, fixtures.DefaultSettings(companyID))
	if err != nil {
		return organization.Settings{}, fmt.Errorf("failed to seed default settings: %w", err)
	}

	return seeded, nil
}

// UpdateSettings implements organization.SettingsService.
func (s *SettingsServiceImpl) UpdateSettings(ctx context.Context, req organization.UpdateSettingsRequest) (organization.SettingsResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return organization.SettingsResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return organization.SettingsResponse{}, err
	}

	settings, err := s.loadOrSeed(ctx, sess.CompanyID)
	if err != nil {
		return organization.SettingsResponse{}, err
	}

	if req.WorkingDays != nil {
		settings.WorkingDays = organization.WorkingDays{
			Sunday:    req.WorkingDays.Sunday,
			Monday:    req.WorkingDays.Monday,
			Tuesday:   req.WorkingDays.Tuesday,
			Wednesday: req.WorkingDays.Wednesday,
			Thursday:  req.WorkingDays.Thursday,
			Friday:    req.WorkingDays.Friday,
			Saturday:  req.WorkingDays.Saturday,
		}
	}
	if req.WorkingHours != nil {
		settings.WorkingHours = organization.WorkingHours{
			StartTime:            req.WorkingHours.StartTime,
			EndTime:              req.WorkingHours.EndTime,
			TotalHours:           req.WorkingHours.TotalHours,
			BreakDurationMinutes: req.WorkingHours.BreakDurationMinutes,
		}
	}
	if req.Attendance != nil {
		settings.Attendance = organization.AttendancePolicy{
			LateToleranceMinutes:       req.Attendance.LateToleranceMinutes,
			EarlyLeaveToleranceMinutes: req.Attendance.EarlyLeaveToleranceMinutes,
			RequireGeotag:              req.Attendance.RequireGeotag,
			AllowRemoteAttendance:      req.Attendance.AllowRemoteAttendance,
		}
	}
	if req.Leave != nil {
		settings.Leave = organization.LeavePolicy{
			PaidLeavesPerMonth: decimal.NewFromFloat(req.Leave.PaidLeavesPerMonth),
			CarryForwardLimit:  decimal.NewFromFloat(req.Leave.CarryForwardLimit),
			AllowHalfDay:       req.Leave.AllowHalfDay,
		}
	}

	updated, err := s.SettingsRepository.Upsert(ctx, settings)
	if err != nil {
		return organization.SettingsResponse{}, fmt.Errorf("failed to update organization settings: %w", err)
	}

	return toSettingsResponse(updated), nil
}

// AddOfficeLocation implements organization.SettingsService.
func (s *SettingsServiceImpl) AddOfficeLocation(ctx context.Context, req organization.OfficeLocationRequest) (organization.OfficeLocationResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return organization.OfficeLocationResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return organization.OfficeLocationResponse{}, err
	}

	// Make sure the settings row exists so the first office is not
	// orphaned for a brand new tenant.
	if _, err := s.loadOrSeed(ctx, sess.CompanyID); err != nil {
		return organization.OfficeLocationResponse{}, err
	}

	office, err := s.SettingsRepository.AddOffice(ctx, sess.CompanyID, organization.OfficeLocation{
		Name:                 req.Name,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		GeofenceRadiusMeters: req.GeofenceRadiusMeters,
		IsPrimary:            req.IsPrimary,
	})
	if err != nil {
		return organization.OfficeLocationResponse{}, fmt.Errorf("failed to add office location: %w", err)
	}

	return toOfficeResponse(office), nil
}

// UpdateOfficeLocation implements organization.SettingsService.
func (s *SettingsServiceImpl) UpdateOfficeLocation(ctx context.Context, officeID string, req organization.OfficeLocationRequest) (organization.OfficeLocationResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return organization.OfficeLocationResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return organization.OfficeLocationResponse{}, err
	}

	office := organization.OfficeLocation{
		ID:                   officeID,
		Name:                 req.Name,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		GeofenceRadiusMeters: req.GeofenceRadiusMeters,
		IsPrimary:            req.IsPrimary,
	}

	if err := s.SettingsRepository.UpdateOffice(ctx, sess.CompanyID, office); err != nil {
		if errors.Is(err, organization.ErrLocationNotFound) {
			return organization.OfficeLocationResponse{}, err
		}
		return organization.OfficeLocationResponse{}, fmt.Errorf("failed to update office location: %w", err)
	}

	return toOfficeResponse(office), nil
}

// DeleteOfficeLocation implements organization.SettingsService.
func (s *SettingsServiceImpl) DeleteOfficeLocation(ctx context.Context, officeID string) error {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.SettingsRepository.DeleteOffice(ctx, sess.CompanyID, officeID); err != nil {
		if errors.Is(err, organization.ErrLocationNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete office location: %w", err)
	}

	return nil
}

// GetUpcomingHolidays implements organization.SettingsService.
func (s *SettingsServiceImpl) GetUpcomingHolidays(ctx context.Context) ([]organization.HolidayResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	holidays, err := s.SettingsRepository.ListHolidaysFrom(ctx, sess.CompanyID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	result := make([]organization.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, toHolidayResponse(h))
	}
	return result, nil
}

// AddHoliday implements organization.SettingsService.
func (s *SettingsServiceImpl) AddHoliday(ctx context.Context, req organization.HolidayRequest) (organization.HolidayResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return organization.HolidayResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return organization.HolidayResponse{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	if _, err := s.loadOrSeed(ctx, sess.CompanyID); err != nil {
		return organization.HolidayResponse{}, err
	}

	holiday, err := s.SettingsRepository.AddHoliday(ctx, sess.CompanyID, organization.Holiday{
		Name: req.Name,
		Date: date,
	})
	if err != nil {
		return organization.HolidayResponse{}, fmt.Errorf("failed to add holiday: %w", err)
	}

	return toHolidayResponse(holiday), nil
}

// DeleteHoliday implements organization.SettingsService.
func (s *SettingsServiceImpl) DeleteHoliday(ctx context.Context, holidayID string) error {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.SettingsRepository.DeleteHoliday(ctx, sess.CompanyID, holidayID); err != nil {
		if errors.Is(err, organization.ErrHolidayNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	return nil
}

func toHolidayResponse(h organization.Holiday) organization.HolidayResponse {
	return organization.HolidayResponse{
		ID:   h.ID,
		Name: h.Name,
		Date: h.Date.Format("2006-01-02"),
	}
}

func toOfficeResponse(o organization.OfficeLocation) organization.OfficeLocationResponse {
	return organization.OfficeLocationResponse{
		ID:                   o.ID,
		Name:                 o.Name,
		Latitude:             o.Latitude,
		Longitude:            o.Longitude,
		GeofenceRadiusMeters: o.GeofenceRadiusMeters,
		IsPrimary:            o.IsPrimary,
	}
}

func toSettingsResponse(s organization.Settings) organization.SettingsResponse {
	offices := make([]organization.OfficeLocationResponse, 0, len(s.OfficeLocations))
	for _, o := range s.OfficeLocations {
		offices = append(offices, toOfficeResponse(o))
	}

	holidays := make([]organization.HolidayResponse, 0, len(s.Holidays))
	for _, h := range s.Holidays {
		holidays = append(holidays, toHolidayResponse(h))
	}

	paidLeaves, _ := s.Leave.PaidLeavesPerMonth.Float64()
	carryForward, _ := s.Leave.CarryForwardLimit.Float64()

	return organization.SettingsResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		WorkingDays: organization.WorkingDaysPayload{
			Sunday:    s.WorkingDays.Sunday,
			Monday:    s.WorkingDays.Monday,
			Tuesday:   s.WorkingDays.Tuesday,
			Wednesday: s.WorkingDays.Wednesday,
			Thursday:  s.WorkingDays.Thursday,
			Friday:    s.WorkingDays.Friday,
			Saturday:  s.WorkingDays.Saturday,
		},
		WorkingHours: organization.WorkingHoursPayload{
			StartTime:            s.WorkingHours.StartTime,
			EndTime:              s.WorkingHours.EndTime,
			TotalHours:           s.WorkingHours.TotalHours,
			BreakDurationMinutes: s.WorkingHours.BreakDurationMinutes,
		},
		OfficeLocations: offices,
		Holidays:        holidays,
		Attendance: organization.AttendancePolicyPayload{
			LateToleranceMinutes:       s.Attendance.LateToleranceMinutes,
			EarlyLeaveToleranceMinutes: s.Attendance.EarlyLeaveToleranceMinutes,
			RequireGeotag:              s.Attendance.RequireGeotag,
			AllowRemoteAttendance:      s.Attendance.AllowRemoteAttendance,
		},
		Leave: organization.LeavePolicyPayload{
			PaidLeavesPerMonth: paidLeaves,
			CarryForwardLimit:  carryForward,
			AllowHalfDay:       s.Leave.AllowHalfDay,
		},
	}
}
