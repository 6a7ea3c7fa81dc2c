package schedule

import (
	"context"
	"time"
)

type WorkScheduleRepository interface {
	Create(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)
	GetByID(ctx context.Context, id string) (WorkSchedule, error)
	List(ctx context.Context) ([]WorkSchedule, error)

	// GetTimeForDate resolves the shift definition that applies to an
	// employee on the given local date, via the employee's assigned schedule
	// and the date's day of week.
	GetTimeForDate(ctx context.Context, employeeID string, date time.Time) (*WorkScheduleTime, error)
}

type WorkScheduleTimeRepository interface {
	Create(ctx context.Context, t WorkScheduleTime) (WorkScheduleTime, error)
	GetByID(ctx context.Context, id string) (WorkScheduleTime, error)
	ListBySchedule(ctx context.Context, workScheduleID string) ([]WorkScheduleTime, error)
}
