package schedule

import "time"

type WorkSchedule struct {
	ID                 string
	Name               string
	GracePeriodMinutes int
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time

	Times []WorkScheduleTime
}

// WorkScheduleTime is one shift definition for a day of the week. Clock
// times are wall-clock "HH:MM" strings; a shift whose checkout falls on the
// following civil day carries IsNextDayCheckout so callers do not have to
// infer it from the textual ordering.
type WorkScheduleTime struct {
	ID                string
	WorkScheduleID    string
	DayOfWeek         int // 1=Monday, ..., 7=Sunday
	ClockInTime       string
	ClockOutTime      string
	IsNextDayCheckout bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
