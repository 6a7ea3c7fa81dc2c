package schedule

import "errors"

var (
	ErrWorkScheduleNotFound     = errors.New("work schedule not found")
	ErrWorkScheduleTimeNotFound = errors.New("work schedule time not found")
	ErrDuplicateDayOfWeek       = errors.New("schedule already has a time for this day of week")
)
