package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chronohr/timekeeping-backend-go/internal/domain/attendance"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// attendanceColumns is the joined projection every read uses: the record
// itself plus the employee identity and the shift definition the record was
// anchored to. Schedule times come back as "HH:MM" text.
const attendanceColumns = `
	a.id, a.employee_id, a.date, a.work_schedule_time_id,
	a.clock_in, a.clock_out,
	a.billed_minutes, a.night_diff_hours, a.undertime_minutes,
	a.late_minutes, a.early_minutes,
	a.status, a.approved_by, a.approved_at, a.rejection_reason,
	a.created_at, a.updated_at,
	e.full_name, e.position,
	to_char(wst.clock_in_time, 'HH24:MI'),
	to_char(wst.clock_out_time, 'HH24:MI'),
	wst.is_next_day_checkout
`

const attendanceJoins = `
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
	LEFT JOIN work_schedule_times wst ON wst.id = a.work_schedule_time_id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.WorkScheduleTimeID,
		&att.ClockIn, &att.ClockOut,
		&att.BilledMinutes, &att.NightDiffHours, &att.UndertimeMinutes,
		&att.LateMinutes, &att.EarlyMinutes,
		&att.Status, &att.ApprovedBy, &att.ApprovedAt, &att.RejectionReason,
		&att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.EmployeePosition,
		&att.ScheduledIn, &att.ScheduledOut, &att.IsNextDayOut,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, work_schedule_time_id,
			clock_in, clock_out,
			billed_minutes, night_diff_hours, undertime_minutes,
			late_minutes, early_minutes,
			status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.WorkScheduleTimeID,
		newAttendance.ClockIn,
		newAttendance.ClockOut,
		newAttendance.BilledMinutes,
		newAttendance.NightDiffHours,
		newAttendance.UndertimeMinutes,
		newAttendance.LateMinutes,
		newAttendance.EarlyMinutes,
		newAttendance.Status,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE a.id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE a.employee_id = $1 AND a.date = $2
		LIMIT 1`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing attendance for that day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// GetOpenSession implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetOpenSession(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE a.employee_id = $1 AND a.clock_out IS NULL
		ORDER BY a.clock_in DESC
		LIMIT 1`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrNotClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			date = $2,
			work_schedule_time_id = $3,
			clock_in = $4,
			clock_out = $5,
			billed_minutes = $6,
			night_diff_hours = $7,
			undertime_minutes = $8,
			late_minutes = $9,
			early_minutes = $10,
			status = $11,
			approved_by = $12,
			approved_at = $13,
			rejection_reason = $14,
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		att.ID,
		att.Date,
		att.WorkScheduleTimeID,
		att.ClockIn,
		att.ClockOut,
		att.BilledMinutes,
		att.NightDiffHours,
		att.UndertimeMinutes,
		att.LateMinutes,
		att.EarlyMinutes,
		att.Status,
		att.ApprovedBy,
		att.ApprovedAt,
		att.RejectionReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.EmployeeName != nil && *filter.EmployeeName != "" {
		where += fmt.Sprintf(" AND e.full_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.EmployeeName+"%")
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		where += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := `SELECT COUNT(*)` + attendanceJoins + ` WHERE ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	orderByField := "a.date"
	switch filter.SortBy {
	case "employee_name":
		orderByField = "e.full_name"
	case "status":
		orderByField = "a.status"
	case "clock_in":
		orderByField = "a.clock_in"
	case "clock_out":
		orderByField = "a.clock_out"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	selectQuery := fmt.Sprintf(
		`SELECT %s %s WHERE %s ORDER BY %s %s, a.id ASC LIMIT $%d OFFSET $%d`,
		attendanceColumns, attendanceJoins, where, orderByField, sortOrder, argIdx, argIdx+1,
	)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating attendance rows: %w", err)
	}

	return attendances, total, nil
}
