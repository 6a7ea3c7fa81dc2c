package report

import (
	"context"
	"time"
)

// DailyPunchRow is the raw material for one timesheet row: the scheduled and
// actual times for one employee on one civil day, as stored. Values the
// repository cannot supply (no shift defined, punch missing) come back as
// the "-" sentinel the calculation engine treats as "not recorded".
type DailyPunchRow struct {
	EmployeeID   string
	EmployeeCode string
	EmployeeName string
	Position     string

	Date         time.Time
	ScheduledIn  string
	ScheduledOut string
	ActualIn     string
	ActualOut    string
	Status       string
}

type ReportRepository interface {
	// GetDailyPunches returns one row per employee per attendance day in the
	// period, ordered by employee then date. A nil employeeID means all
	// active employees.
	GetDailyPunches(ctx context.Context, month, year int, employeeID *string) ([]DailyPunchRow, error)
}
