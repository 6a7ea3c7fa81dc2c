package attendance

import (
	"time"
)

type Status string

const (
	StatusWaitingApproval Status = "waiting_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
)

var StatusValues = []string{
	string(StatusWaitingApproval),
	string(StatusApproved),
	string(StatusRejected),
}

type Attendance struct {
	ID                 string
	EmployeeID         string
	Date               time.Time // the civil day the shift is anchored to
	WorkScheduleTimeID *string
	ClockIn            *time.Time
	ClockOut           *time.Time

	// Derived payroll quantities, computed at clock-out (and recomputed on
	// admin corrections) by the timecalc engine.
	BilledMinutes    *int
	NightDiffHours   *float64
	UndertimeMinutes *int
	LateMinutes      *int
	EarlyMinutes     *int

	Status          Status
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeName     *string
	EmployeePosition *string
	ScheduledIn      *string // "HH:MM", joined from work_schedule_times
	ScheduledOut     *string
	IsNextDayOut     *bool
}
