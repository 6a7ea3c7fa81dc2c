package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/chronohr/timekeeping-backend-go/internal/domain/schedule"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

// Create implements schedule.WorkScheduleRepository.
func (w *workScheduleRepositoryImpl) Create(ctx context.Context, workSchedule schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO work_schedules (
			id, name, grace_period_minutes, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		workSchedule.Name, workSchedule.GracePeriodMinutes,
	).Scan(&workSchedule.ID, &workSchedule.CreatedAt, &workSchedule.UpdatedAt)

	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	return workSchedule, nil
}

// GetByID implements schedule.WorkScheduleRepository.
func (w *workScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, name, grace_period_minutes, created_at, updated_at
		FROM work_schedules
		WHERE id = $1 AND deleted_at IS NULL
	`

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, query, id).Scan(
		&ws.ID, &ws.Name, &ws.GracePeriodMinutes, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkSchedule{}, err
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	return ws, nil
}

// List implements schedule.WorkScheduleRepository.
func (w *workScheduleRepositoryImpl) List(ctx context.Context) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, name, grace_period_minutes, created_at, updated_at
		FROM work_schedules
		WHERE deleted_at IS NULL
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		var ws schedule.WorkSchedule
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.GracePeriodMinutes, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work schedule row: %w", err)
		}
		schedules = append(schedules, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating work schedule rows: %w", err)
	}

	return schedules, nil
}

// GetTimeForDate implements schedule.WorkScheduleRepository. The employee's
// assigned schedule is joined against the shift defined for the date's ISO
// day of week (1=Monday through 7=Sunday).
func (w *workScheduleRepositoryImpl) GetTimeForDate(ctx context.Context, employeeID string, date time.Time) (*schedule.WorkScheduleTime, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT wst.id, wst.work_schedule_id, wst.day_of_week,
			   to_char(wst.clock_in_time, 'HH24:MI'),
			   to_char(wst.clock_out_time, 'HH24:MI'),
			   wst.is_next_day_checkout,
			   wst.created_at, wst.updated_at
		FROM employees e
		JOIN work_schedules ws ON ws.id = e.work_schedule_id AND ws.deleted_at IS NULL
		JOIN work_schedule_times wst ON wst.work_schedule_id = ws.id
			AND wst.day_of_week = EXTRACT(ISODOW FROM $2::date)::int
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	var t schedule.WorkScheduleTime
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&t.ID, &t.WorkScheduleID, &t.DayOfWeek,
		&t.ClockInTime, &t.ClockOutTime, &t.IsNextDayCheckout,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get schedule time for date: %w", err)
	}

	return &t, nil
}
