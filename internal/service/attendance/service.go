package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/foratask/foratask-backend-go/internal/domain/attendance"
	"github.com/foratask/foratask-backend-go/internal/domain/employee"
	"github.com/foratask/foratask-backend-go/internal/domain/organization"
	"github.com/foratask/foratask-backend-go/internal/domain/task"
	"github.com/foratask/foratask-backend-go/internal/fixtures"
	"github.com/foratask/foratask-backend-go/internal/pkg/jwt"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	organization.SettingsRepository
	employee.EmployeeRepository
	timeline task.TimelineRecorder
	logger   *slog.Logger
	now      func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	settingsRepo organization.SettingsRepository,
	employeeRepo employee.EmployeeRepository,
	timeline task.TimelineRecorder,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		SettingsRepository:   settingsRepo,
		EmployeeRepository:   employeeRepo,
		timeline:             timeline,
		logger:               logger,
		now:                  time.Now,
	}
}

// settingsFor loads the tenant configuration. A tenant that never saved
// one gets the defaults for calendar math, with configured=false so the
// caller can skip schedule checks that only make sense against saved
// working hours.
func (s *AttendanceServiceImpl) settingsFor(ctx context.Context, companyID string) (*organization.Settings, bool, error) {
	settings, err := s.SettingsRepository.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, organization.ErrSettingsNotFound) {
			defaults := fixtures.DefaultSettings(companyID)
			return &defaults, false, nil
		}
		return nil, false, fmt.Errorf("failed to get organization settings: %w", err)
	}
	return &settings, true, nil
}

// resolveLocation classifies a check event against the office geofences.
// Outside every fence the event becomes a task event when a task reference
// is supplied, a remote event when policy allows, and an error otherwise.
func (s *AttendanceServiceImpl) resolveLocation(ctx context.Context, sess jwt.Session, req attendance.CheckRequest, settings *organization.Settings) (attendance.EventLocation, bool, error) {
	loc := attendance.EventLocation{
		Latitude:       req.Coordinates.Latitude,
		Longitude:      req.Coordinates.Longitude,
		Address:        req.Address,
		AccuracyMeters: req.AccuracyMeters,
	}

	match := settings.ResolveLocation(req.Coordinates.Latitude, req.Coordinates.Longitude)
	if match.IsWithin {
		loc.Type = attendance.LocationOffice
		loc.OfficeName = &match.Office.Name
		return loc, true, nil
	}

	if req.TaskID != nil {
		assigned, err := s.timeline.IsCollaborator(ctx, *req.TaskID, sess.UserID, sess.CompanyID)
		if err != nil {
			s.logger.Warn("task collaborator lookup failed",
				slog.String("task_id", *req.TaskID), slog.Any("err", err))
		}
		if assigned {
			loc.Type = attendance.LocationTask
			loc.TaskID = req.TaskID
			return loc, false, nil
		}
	}

	if settings.Attendance.AllowRemoteAttendance {
		loc.Type = attendance.LocationRemote
		return loc, false, nil
	}

	return attendance.EventLocation{}, false, attendance.ErrOutsideGeofence
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckRequest) (attendance.CheckInResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	settings, configured, err := s.settingsFor(ctx, sess.CompanyID)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := s.now()
	today := attendance.DayOf(now)

	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, sess.UserID, today, sess.CompanyID)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if existing.HasCheckedIn() {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	loc, withinGeofence, err := s.resolveLocation(ctx, sess, req, settings)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	schedule := settings
	if !configured {
		schedule = nil
	}
	isLate, lateBy := ComputeLateness(now, schedule)

	record := attendance.Attendance{
		UserID:    sess.UserID,
		CompanyID: sess.CompanyID,
		Date:      today,
		Status:    attendance.StatusPresent,
		CheckIn: &attendance.CheckIn{
			Time:             now,
			Location:         loc,
			IsWithinGeofence: withinGeofence,
			IsLate:           isLate,
			LateByMinutes:    lateBy,
		},
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.CheckInResponse{}, err
		}
		return attendance.CheckInResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	if loc.Type == attendance.LocationTask && loc.TaskID != nil {
		entry := &task.TimelineEntry{
			TaskID:    *loc.TaskID,
			UserID:    sess.UserID,
			CompanyID: sess.CompanyID,
			Action:    task.ActionAttendanceMarked,
			Detail:    "Checked in at task location",
		}
		if err := s.timeline.Record(ctx, entry); err != nil {
			s.logger.Warn("task timeline record failed",
				slog.String("task_id", *loc.TaskID), slog.Any("err", err))
		}
	}

	return attendance.CheckInResponse{
		ID:               created.ID,
		CheckInTime:      now.Format(time.RFC3339),
		LocationType:     string(loc.Type),
		OfficeName:       loc.OfficeName,
		IsWithinGeofence: withinGeofence,
		IsLate:           isLate,
		LateByMinutes:    lateBy,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckRequest) (attendance.CheckOutResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	settings, configured, err := s.settingsFor(ctx, sess.CompanyID)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	now := s.now()
	today := attendance.DayOf(now)

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, sess.UserID, today, sess.CompanyID)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if !record.HasCheckedIn() {
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	}
	if record.HasCheckedOut() {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}

	loc := attendance.EventLocation{
		Latitude:       req.Coordinates.Latitude,
		Longitude:      req.Coordinates.Longitude,
		Address:        req.Address,
		AccuracyMeters: req.AccuracyMeters,
	}
	withinGeofence := false
	match := settings.ResolveLocation(req.Coordinates.Latitude, req.Coordinates.Longitude)
	switch {
	case match.IsWithin:
		loc.Type = attendance.LocationOffice
		loc.OfficeName = &match.Office.Name
		withinGeofence = true
	case record.CheckIn.Location.Type == attendance.LocationTask:
		loc.Type = attendance.LocationTask
		loc.TaskID = record.CheckIn.Location.TaskID
	default:
		loc.Type = attendance.LocationRemote
	}

	schedule := settings
	if !configured {
		schedule = nil
	}
	isEarly, earlyBy := ComputeEarlyLeave(now, schedule)
	worked := ComputeWorkedMinutes(record.CheckIn.Time, now, settings.WorkingHours.BreakDurationMinutes)
	status := DetermineStatus(worked, settings)

	record.CheckOut = &attendance.CheckOut{
		Time:             now,
		Location:         loc,
		IsWithinGeofence: withinGeofence,
		IsEarlyLeave:     isEarly,
		EarlyByMinutes:   earlyBy,
	}
	record.Status = status
	record.WorkedMinutes = &worked

	if err := s.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return attendance.CheckOutResponse{
		ID:               record.ID,
		CheckOutTime:     now.Format(time.RFC3339),
		LocationType:     string(loc.Type),
		OfficeName:       loc.OfficeName,
		IsWithinGeofence: withinGeofence,
		IsEarlyLeave:     isEarly,
		EarlyByMinutes:   earlyBy,
		WorkingHours:     record.WorkedHours(),
		Status:           string(status),
	}, nil
}

// GetTodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTodayStatus(ctx context.Context) (attendance.TodayStatusResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	today := attendance.DayOf(s.now())
	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, sess.UserID, today, sess.CompanyID)
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	resp := attendance.TodayStatusResponse{
		HasCheckedIn:  record.HasCheckedIn(),
		HasCheckedOut: record.HasCheckedOut(),
	}
	if record != nil {
		converted := toAttendanceResponse(*record)
		resp.Attendance = &converted
	}

	return resp, nil
}

// GetAttendanceHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendanceHistory(ctx context.Context, filter attendance.HistoryFilter) (attendance.HistoryResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return attendance.HistoryResponse{}, err
	}

	targetUserID := filter.UserID
	if targetUserID == "" {
		targetUserID = sess.UserID
	}
	if targetUserID != sess.UserID && !sess.Role.IsAdmin() {
		return attendance.HistoryResponse{}, attendance.ErrAccessDenied
	}

	settings, _, err := s.settingsFor(ctx, sess.CompanyID)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	month := time.Month(filter.Month)
	from := time.Date(filter.Year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := s.AttendanceRepository.ListByUserAndRange(ctx, targetUserID, sess.CompanyID, from, to)
	if err != nil {
		return attendance.HistoryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toAttendanceResponse(rec))
	}

	return attendance.HistoryResponse{
		Records: responses,
		Stats:   ComputeMonthlyStats(records, settings, filter.Year, month),
		Month:   filter.Month,
		Year:    filter.Year,
	}, nil
}

// GetDailyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDailyAttendance(ctx context.Context, date time.Time) (attendance.DailyAttendanceResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}
	if !sess.Role.IsAdmin() {
		return attendance.DailyAttendanceResponse{}, attendance.ErrAccessDenied
	}

	settings, _, err := s.settingsFor(ctx, sess.CompanyID)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	day := attendance.DayOf(date)
	today := attendance.DayOf(s.now())

	staff, err := s.EmployeeRepository.ListStaff(ctx, sess.CompanyID)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, fmt.Errorf("failed to list staff: %w", err)
	}

	records, err := s.AttendanceRepository.ListByCompanyAndDate(ctx, sess.CompanyID, day)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	byUser := make(map[string]*attendance.Attendance, len(records))
	for i := range records {
		byUser[records[i].UserID] = &records[i]
	}

	resp := attendance.DailyAttendanceResponse{Date: day.Format("2006-01-02")}
	resp.Summary.Total = len(staff)

	for _, emp := range staff {
		rec := byUser[emp.ID]
		dayStatus := ClassifyDay(rec, day, today, settings)

		entry := attendance.EmployeeAttendance{
			Employee: attendance.EmployeeSummary{
				ID:          emp.ID,
				FirstName:   emp.FirstName,
				LastName:    emp.LastName,
				Email:       emp.Email,
				AvatarURL:   emp.AvatarURL,
				Designation: emp.Designation,
			},
			DayStatus: string(dayStatus),
		}
		if rec != nil {
			converted := toAttendanceResponse(*rec)
			entry.Attendance = &converted
		}
		resp.Employees = append(resp.Employees, entry)

		switch dayStatus {
		case attendance.DayPresent:
			resp.Summary.Present++
		case attendance.DayHalfDay:
			resp.Summary.HalfDay++
		case attendance.DayOnLeave:
			resp.Summary.OnLeave++
		case attendance.DayAbsent:
			resp.Summary.Absent++
		}
		if rec != nil && rec.CheckIn != nil && rec.CheckIn.IsLate {
			resp.Summary.Late++
		}
	}

	return resp, nil
}

// GetEmployeeAnalytics implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeAnalytics(ctx context.Context, userID string, months int) (attendance.AnalyticsResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return attendance.AnalyticsResponse{}, err
	}
	if !sess.Role.IsAdmin() {
		return attendance.AnalyticsResponse{}, attendance.ErrAccessDenied
	}

	if months < 1 || months > 12 {
		months = 6
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, userID, sess.CompanyID)
	if err != nil {
		return attendance.AnalyticsResponse{}, err
	}

	settings, _, err := s.settingsFor(ctx, sess.CompanyID)
	if err != nil {
		return attendance.AnalyticsResponse{}, err
	}

	resp := attendance.AnalyticsResponse{
		Employee: attendance.EmployeeSummary{
			ID:          emp.ID,
			FirstName:   emp.FirstName,
			LastName:    emp.LastName,
			Email:       emp.Email,
			AvatarURL:   emp.AvatarURL,
			Designation: emp.Designation,
		},
	}

	now := s.now()
	for i := months - 1; i >= 0; i-- {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		last := first.AddDate(0, 1, -1)

		records, err := s.AttendanceRepository.ListByUserAndRange(ctx, userID, sess.CompanyID, first, last)
		if err != nil {
			return attendance.AnalyticsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
		}

		resp.Trends = append(resp.Trends, attendance.MonthlyTrend{
			Month: first.Month().String(),
			Year:  first.Year(),
			Stats: ComputeMonthlyStats(records, settings, first.Year(), first.Month()),
		})
	}

	return resp, nil
}

func toAttendanceResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:             rec.ID,
		UserID:         rec.UserID,
		Date:           rec.Date.Format("2006-01-02"),
		Status:         string(rec.Status),
		WorkingHours:   rec.WorkedHours(),
		LeaveRequestID: rec.LeaveRequestID,
	}

	if rec.CheckIn != nil {
		resp.CheckIn = &attendance.CheckInDetail{
			Time:             rec.CheckIn.Time.Format(time.RFC3339),
			Location:         toEventLocationResponse(rec.CheckIn.Location),
			IsWithinGeofence: rec.CheckIn.IsWithinGeofence,
			IsLate:           rec.CheckIn.IsLate,
			LateByMinutes:    rec.CheckIn.LateByMinutes,
		}
	}
	if rec.CheckOut != nil {
		resp.CheckOut = &attendance.CheckOutDetail{
			Time:             rec.CheckOut.Time.Format(time.RFC3339),
			Location:         toEventLocationResponse(rec.CheckOut.Location),
			IsWithinGeofence: rec.CheckOut.IsWithinGeofence,
			IsEarlyLeave:     rec.CheckOut.IsEarlyLeave,
			EarlyByMinutes:   rec.CheckOut.EarlyByMinutes,
		}
	}

	return resp
}

func toEventLocationResponse(loc attendance.EventLocation) attendance.EventLocationResponse {
	return attendance.EventLocationResponse{
		Type:           string(loc.Type),
		Latitude:       loc.Latitude,
		Longitude:      loc.Longitude,
		Address:        loc.Address,
		AccuracyMeters: loc.AccuracyMeters,
		OfficeName:     loc.OfficeName,
		TaskID:         loc.TaskID,
	}
}
