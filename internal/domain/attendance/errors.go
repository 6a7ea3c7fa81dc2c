package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNoScheduleFound   = errors.New("no schedule found for today")
	ErrTooEarlyToClockIn = errors.New("too early to clock in")
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")

	// General errors
	ErrAttendanceNotFound         = errors.New("attendance record not found")
	ErrUnauthorized               = errors.New("unauthorized to access this attendance record")
	ErrAttendanceAlreadyProcessed = errors.New("attendance has already been approved or rejected")
)
