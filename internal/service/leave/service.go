package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/foratask/foratask-backend-go/internal/domain/attendance"
	"github.com/foratask/foratask-backend-go/internal/domain/employee"
	"github.com/foratask/foratask-backend-go/internal/domain/leave"
	"github.com/foratask/foratask-backend-go/internal/domain/notification"
	"github.com/foratask/foratask-backend-go/internal/domain/organization"
	"github.com/foratask/foratask-backend-go/internal/fixtures"
	"github.com/foratask/foratask-backend-go/internal/pkg/database"
	"github.com/foratask/foratask-backend-go/internal/pkg/jwt"
	"github.com/foratask/foratask-backend-go/internal/pkg/validator"
	"github.com/foratask/foratask-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
	organization.SettingsRepository
	notifier notification.Notifier
	now      func() time.Time
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo organization.SettingsRepository,
	notifier notification.Notifier,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRepo,
		AttendanceRepository:   attendanceRepo,
		EmployeeRepository:     employeeRepo,
		SettingsRepository:     settingsRepo,
		notifier:               notifier,
		now:                    time.Now,
	}
}

// ApplyLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ApplyLeave(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end := start
	if req.EndDate != nil && *req.EndDate != "" {
		end, _ = validator.IsValidDate(*req.EndDate)
	}

	if req.IsHalfDay {
		settings, err := s.SettingsRepository.GetByCompany(ctx, sess.CompanyID)
		if err == nil && !settings.Leave.AllowHalfDay {
			return leave.LeaveRequestResponse{}, leave.ErrHalfDayNotAllowed
		}
		if err != nil && !errors.Is(err, organization.ErrSettingsNotFound) {
			return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get organization settings: %w", err)
		}
		// A half-day request covers exactly one day.
		end = start
	}

	overlap, err := s.LeaveRequestRepository.FindOverlapping(ctx, sess.UserID, sess.CompanyID, start, end)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	if overlap != nil {
		return leave.LeaveRequestResponse{}, leave.ErrOverlappingLeave
	}

	request := leave.LeaveRequest{
		UserID:    sess.UserID,
		CompanyID: sess.CompanyID,
		LeaveType: leave.Type(req.LeaveType),
		StartDate: start,
		EndDate:   end,
		IsHalfDay: req.IsHalfDay,
		TotalDays: leave.TotalLeaveDays(start, end, req.IsHalfDay),
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	}
	if req.IsHalfDay && req.HalfDayType != nil {
		halfDayType := leave.HalfDayType(*req.HalfDayType)
		request.HalfDayType = &halfDayType
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	s.notifyApprovers(ctx, sess, created)

	return toLeaveRequestResponse(created), nil
}

// notifyApprovers fans an application out to everyone who can process it.
func (s *LeaveServiceImpl) notifyApprovers(ctx context.Context, sess jwt.Session, lr leave.LeaveRequest) {
	approvers, err := s.EmployeeRepository.ListByRoles(ctx, sess.CompanyID, []employee.Role{
		employee.RoleSupervisor, employee.RoleAdmin, employee.RoleMasterAdmin,
	})
	if err != nil {
		return
	}

	applicant, err := s.EmployeeRepository.GetByID(ctx, sess.UserID, sess.CompanyID)
	if err != nil {
		return
	}

	ids := make([]string, 0, len(approvers))
	for _, a := range approvers {
		if a.ID == sess.UserID {
			continue
		}
		ids = append(ids, a.ID)
	}

	s.notifier.Notify(ctx, sess.CompanyID, ids, notification.Message{
		Kind:  notification.KindLeaveApplied,
		Title: "New leave request",
		Message: fmt.Sprintf("%s applied for %s leave from %s to %s",
			applicant.FullName(), lr.LeaveType,
			lr.StartDate.Format("2006-01-02"), lr.EndDate.Format("2006-01-02")),
		RefID: &lr.ID,
	})
}

// GetLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequests(ctx context.Context, filter leave.ListRequestsFilter) ([]leave.LeaveRequestResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	repoFilter := leave.RequestFilter{}
	if filter.Status != nil && *filter.Status != "" {
		status := leave.Status(*filter.Status)
		repoFilter.Status = &status
	}
	if !filter.All || !sess.Role.CanProcessLeave() {
		userID := sess.UserID
		repoFilter.UserID = &userID
	}

	requests, err := s.LeaveRequestRepository.List(ctx, sess.CompanyID, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, toLeaveRequestResponse(lr))
	}

	return responses, nil
}

// GetLeaveBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveBalance(ctx context.Context, userID string, year int) (leave.LeaveBalanceResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	if userID == "" {
		userID = sess.UserID
	}
	if userID != sess.UserID && !sess.Role.IsAdmin() {
		return leave.LeaveBalanceResponse{}, leave.ErrAccessDenied
	}
	if year == 0 {
		year = s.now().Year()
	}

	paidPerMonth := fixtures.DefaultSettings(sess.CompanyID).Leave.PaidLeavesPerMonth
	settings, err := s.SettingsRepository.GetByCompany(ctx, sess.CompanyID)
	if err == nil {
		paidPerMonth = settings.Leave.PaidLeavesPerMonth
	} else if !errors.Is(err, organization.ErrSettingsNotFound) {
		return leave.LeaveBalanceResponse{}, fmt.Errorf("failed to get organization settings: %w", err)
	}

	approved, err := s.LeaveRequestRepository.ListApprovedByYear(ctx, userID, sess.CompanyID, year)
	if err != nil {
		return leave.LeaveBalanceResponse{}, fmt.Errorf("failed to list approved leave: %w", err)
	}

	balance := ComputeBalance(approved, paidPerMonth, year)

	pending, err := s.LeaveRequestRepository.CountPending(ctx, userID, sess.CompanyID)
	if err != nil {
		return leave.LeaveBalanceResponse{}, fmt.Errorf("failed to count pending requests: %w", err)
	}
	balance.PendingRequests = pending

	return balance, nil
}

// ProcessLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ProcessLeaveRequest(ctx context.Context, req leave.ProcessLeaveRequest) (leave.LeaveRequestResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !sess.Role.CanProcessLeave() {
		return leave.LeaveRequestResponse{}, leave.ErrAccessDenied
	}
	if req.Action != "approve" && req.Action != "reject" {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidAction
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.RequestID, sess.CompanyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	now := s.now()
	request.ApprovedBy = &sess.UserID
	request.ApprovedAt = &now

	if req.Action == "reject" {
		request.Status = leave.StatusRejected
		request.RejectionReason = req.RejectionReason

		if err := s.LeaveRequestRepository.Update(ctx, request); err != nil {
			return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
		}

		s.notifier.Notify(ctx, sess.CompanyID, []string{request.UserID}, notification.Message{
			Kind:    notification.KindLeaveRejected,
			Title:   "Leave request rejected",
			Message: fmt.Sprintf("Your %s leave request was rejected", request.LeaveType),
			RefID:   &request.ID,
		})

		return toLeaveRequestResponse(request), nil
	}

	request.Status = leave.StatusApproved

	// Status update and per-day attendance rows land together or not at
	// all. Re-approving after a retry upserts the same (user, date) rows.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.LeaveRequestRepository.Update(txCtx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		for _, day := range leave.DaysInRange(request.StartDate, request.EndDate) {
			att := attendance.Attendance{
				UserID:         request.UserID,
				CompanyID:      request.CompanyID,
				Date:           day,
				Status:         attendance.StatusOnLeave,
				LeaveRequestID: &request.ID,
			}
			if err := s.AttendanceRepository.UpsertLeaveDay(txCtx, att); err != nil {
				return fmt.Errorf("failed to upsert leave day: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.notifier.Notify(ctx, sess.CompanyID, []string{request.UserID}, notification.Message{
		Kind:    notification.KindLeaveApproved,
		Title:   "Leave request approved",
		Message: fmt.Sprintf("Your %s leave request was approved", request.LeaveType),
		RefID:   &request.ID,
	})

	return toLeaveRequestResponse(request), nil
}

// CancelLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CancelLeaveRequest(ctx context.Context, requestID string) error {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID, sess.CompanyID)
	if err != nil {
		return err
	}
	if request.UserID != sess.UserID {
		return leave.ErrAccessDenied
	}

	if err := request.CanCancel(attendance.DayOf(s.now())); err != nil {
		return err
	}

	wasApproved := request.Status == leave.StatusApproved
	request.Status = leave.StatusCancelled

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.LeaveRequestRepository.Update(txCtx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		if wasApproved {
			if err := s.AttendanceRepository.DeleteByLeaveRequest(txCtx, request.UserID, request.ID, request.CompanyID); err != nil {
				return fmt.Errorf("failed to delete leave attendance rows: %w", err)
			}
		}

		return nil
	})
}

func toLeaveRequestResponse(lr leave.LeaveRequest) leave.LeaveRequestResponse {
	totalDays, _ := lr.TotalDays.Float64()

	resp := leave.LeaveRequestResponse{
		ID:              lr.ID,
		UserID:          lr.UserID,
		LeaveType:       string(lr.LeaveType),
		StartDate:       lr.StartDate.Format("2006-01-02"),
		EndDate:         lr.EndDate.Format("2006-01-02"),
		IsHalfDay:       lr.IsHalfDay,
		TotalDays:       totalDays,
		Reason:          lr.Reason,
		Status:          string(lr.Status),
		ApprovedBy:      lr.ApprovedBy,
		RejectionReason: lr.RejectionReason,
		CreatedAt:       lr.CreatedAt.Format(time.RFC3339),
	}
	if lr.HalfDayType != nil {
		halfDayType := string(*lr.HalfDayType)
		resp.HalfDayType = &halfDayType
	}
	if lr.ApprovedAt != nil {
		approvedAt := lr.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}

	return resp
}
