package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/foratask/foratask-backend-go/internal/domain/attendance"
	"github.com/foratask/foratask-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	id, user_id, company_id, date, status, worked_minutes, leave_request_id,
	check_in_time, check_in_location_type, check_in_latitude, check_in_longitude,
	check_in_address, check_in_accuracy_meters, check_in_office_name, check_in_task_id,
	check_in_within_geofence, check_in_is_late, check_in_late_by_minutes,
	check_out_time, check_out_location_type, check_out_latitude, check_out_longitude,
	check_out_address, check_out_accuracy_meters, check_out_office_name, check_out_task_id,
	check_out_within_geofence, check_out_is_early_leave, check_out_early_by_minutes,
	created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance

	var (
		inTime               *time.Time
		inLocationType       *string
		inLat, inLng         *float64
		inAddress            *string
		inAccuracy           *float64
		inOfficeName         *string
		inTaskID             *string
		inWithin, inLate     *bool
		inLateBy             *int
		outTime              *time.Time
		outLocationType      *string
		outLat, outLng       *float64
		outAddress           *string
		outAccuracy          *float64
		outOfficeName        *string
		outTaskID            *string
		outWithin, outEarly  *bool
		outEarlyBy           *int
	)

	err := row.Scan(
		&att.ID, &att.UserID, &att.CompanyID, &att.Date, &att.Status,
		&att.WorkedMinutes, &att.LeaveRequestID,
		&inTime, &inLocationType, &inLat, &inLng,
		&inAddress, &inAccuracy, &inOfficeName, &inTaskID,
		&inWithin, &inLate, &inLateBy,
		&outTime, &outLocationType, &outLat, &outLng,
		&outAddress, &outAccuracy, &outOfficeName, &outTaskID,
		&outWithin, &outEarly, &outEarlyBy,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if inTime != nil {
		att.CheckIn = &attendance.CheckIn{
			Time: *inTime,
			Location: attendance.EventLocation{
				Type:           attendance.LocationType(*inLocationType),
				Latitude:       deref(inLat),
				Longitude:      deref(inLng),
				Address:        inAddress,
				AccuracyMeters: inAccuracy,
				OfficeName:     inOfficeName,
				TaskID:         inTaskID,
			},
			IsWithinGeofence: derefBool(inWithin),
			IsLate:           derefBool(inLate),
			LateByMinutes:    derefInt(inLateBy),
		}
	}
	if outTime != nil {
		att.CheckOut = &attendance.CheckOut{
			Time: *outTime,
			Location: attendance.EventLocation{
				Type:           attendance.LocationType(*outLocationType),
				Latitude:       deref(outLat),
				Longitude:      deref(outLng),
				Address:        outAddress,
				AccuracyMeters: outAccuracy,
				OfficeName:     outOfficeName,
				TaskID:         outTaskID,
			},
			IsWithinGeofence: derefBool(outWithin),
			IsEarlyLeave:     derefBool(outEarly),
			EarlyByMinutes:   derefInt(outEarlyBy),
		}
	}

	return att, nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func derefBool(b *bool) bool {
	return b != nil && *b
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, user_id, company_id, date, status, worked_minutes, leave_request_id,
			check_in_time, check_in_location_type, check_in_latitude, check_in_longitude,
			check_in_address, check_in_accuracy_meters, check_in_office_name, check_in_task_id,
			check_in_within_geofence, check_in_is_late, check_in_late_by_minutes,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13, $14,
			$15, $16, $17,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	ci := att.CheckIn
	err := q.QueryRow(ctx, query,
		att.UserID, att.CompanyID, att.Date, att.Status, att.WorkedMinutes, att.LeaveRequestID,
		ci.Time, ci.Location.Type, ci.Location.Latitude, ci.Location.Longitude,
		ci.Location.Address, ci.Location.AccuracyMeters, ci.Location.OfficeName, ci.Location.TaskID,
		ci.IsWithinGeofence, ci.IsLate, ci.LateByMinutes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, err
	}

	return att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time, companyID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1 AND date = $2 AND company_id = $3
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET status = $1, worked_minutes = $2,
			check_out_time = $3, check_out_location_type = $4,
			check_out_latitude = $5, check_out_longitude = $6,
			check_out_address = $7, check_out_accuracy_meters = $8,
			check_out_office_name = $9, check_out_task_id = $10,
			check_out_within_geofence = $11, check_out_is_early_leave = $12,
			check_out_early_by_minutes = $13,
			updated_at = NOW()
		WHERE id = $14 AND company_id = $15
	`

	var (
		outTime         *time.Time
		outLocationType *string
		outLat, outLng  *float64
		outAddress      *string
		outAccuracy     *float64
		outOfficeName   *string
		outTaskID       *string
		outWithin       *bool
		outEarly        *bool
		outEarlyBy      *int
	)
	if co := att.CheckOut; co != nil {
		outTime = &co.Time
		locType := string(co.Location.Type)
		outLocationType = &locType
		outLat, outLng = &co.Location.Latitude, &co.Location.Longitude
		outAddress = co.Location.Address
		outAccuracy = co.Location.AccuracyMeters
		outOfficeName = co.Location.OfficeName
		outTaskID = co.Location.TaskID
		outWithin, outEarly = &co.IsWithinGeofence, &co.IsEarlyLeave
		outEarlyBy = &co.EarlyByMinutes
	}

	tag, err := q.Exec(ctx, query,
		att.Status, att.WorkedMinutes,
		outTime, outLocationType, outLat, outLng,
		outAddress, outAccuracy, outOfficeName, outTaskID,
		outWithin, outEarly, outEarlyBy,
		att.ID, att.CompanyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByUserAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUserAndRange(ctx context.Context, userID string, companyID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1 AND company_id = $2 AND date >= $3 AND date <= $4
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, userID, companyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListByCompanyAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE company_id = $1 AND date = $2
	`

	rows, err := q.Query(ctx, query, companyID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, att)
	}
	return records, rows.Err()
}

// UpsertLeaveDay implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpsertLeaveDay(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, user_id, company_id, date, status, leave_request_id, created_at, updated_at
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (user_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			leave_request_id = EXCLUDED.leave_request_id,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, att.UserID, att.CompanyID, att.Date, att.Status, att.LeaveRequestID)
	return err
}

// DeleteByLeaveRequest implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteByLeaveRequest(ctx context.Context, userID string, leaveRequestID string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`DELETE FROM attendances WHERE user_id = $1 AND leave_request_id = $2 AND company_id = $3`,
		userID, leaveRequestID, companyID,
	)
	return err
}
