package response

import (
	"errors"
	"net/http"

	"github.com/chronohr/timekeeping-backend-go/internal/domain/attendance"
	"github.com/chronohr/timekeeping-backend-go/internal/domain/auth"
	"github.com/chronohr/timekeeping-backend-go/internal/domain/employee"
	"github.com/chronohr/timekeeping-backend-go/internal/domain/report"
	"github.com/chronohr/timekeeping-backend-go/internal/domain/schedule"
	"github.com/chronohr/timekeeping-backend-go/internal/domain/user"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Role errors
	case errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrOwnerAccessRequired):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrAlreadyClockedOut),
		errors.Is(err, attendance.ErrAttendanceAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrTooEarlyToClockIn),
		errors.Is(err, attendance.ErrNotClockedIn),
		errors.Is(err, attendance.ErrNoScheduleFound):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Schedule domain errors
	case errors.Is(err, schedule.ErrWorkScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrWorkScheduleTimeNotFound):
		NotFound(w, "Work schedule time not found")
	case errors.Is(err, schedule.ErrDuplicateDayOfWeek):
		Conflict(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
