package postgresql

import (
	"context"
	"fmt"

	"github.com/chronohr/timekeeping-backend-go/internal/domain/schedule"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workScheduleTimeRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleTimeRepository(db *database.DB) schedule.WorkScheduleTimeRepository {
	return &workScheduleTimeRepositoryImpl{db: db}
}

// Create implements schedule.WorkScheduleTimeRepository.
func (w *workScheduleTimeRepositoryImpl) Create(ctx context.Context, t schedule.WorkScheduleTime) (schedule.WorkScheduleTime, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO work_schedule_times (
			id, work_schedule_id, day_of_week,
			clock_in_time, clock_out_time, is_next_day_checkout,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3::time, $4::time, $5, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.WorkScheduleID, t.DayOfWeek, t.ClockInTime, t.ClockOutTime, t.IsNextDayCheckout,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return schedule.WorkScheduleTime{}, fmt.Errorf("failed to create schedule time: %w", err)
	}

	return t, nil
}

// GetByID implements schedule.WorkScheduleTimeRepository.
func (w *workScheduleTimeRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.WorkScheduleTime, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, work_schedule_id, day_of_week,
			   to_char(clock_in_time, 'HH24:MI'),
			   to_char(clock_out_time, 'HH24:MI'),
			   is_next_day_checkout, created_at, updated_at
		FROM work_schedule_times
		WHERE id = $1
	`

	var t schedule.WorkScheduleTime
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.WorkScheduleID, &t.DayOfWeek,
		&t.ClockInTime, &t.ClockOutTime, &t.IsNextDayCheckout,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkScheduleTime{}, err
		}
		return schedule.WorkScheduleTime{}, fmt.Errorf("failed to get schedule time: %w", err)
	}

	return t, nil
}

// ListBySchedule implements schedule.WorkScheduleTimeRepository.
func (w *workScheduleTimeRepositoryImpl) ListBySchedule(ctx context.Context, workScheduleID string) ([]schedule.WorkScheduleTime, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, work_schedule_id, day_of_week,
			   to_char(clock_in_time, 'HH24:MI'),
			   to_char(clock_out_time, 'HH24:MI'),
			   is_next_day_checkout, created_at, updated_at
		FROM work_schedule_times
		WHERE work_schedule_id = $1
		ORDER BY day_of_week ASC
	`

	rows, err := q.Query(ctx, query, workScheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule times: %w", err)
	}
	defer rows.Close()

	var times []schedule.WorkScheduleTime
	for rows.Next() {
		var t schedule.WorkScheduleTime
		err := rows.Scan(
			&t.ID, &t.WorkScheduleID, &t.DayOfWeek,
			&t.ClockInTime, &t.ClockOutTime, &t.IsNextDayCheckout,
			&t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule time row: %w", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule time rows: %w", err)
	}

	return times, nil
}
