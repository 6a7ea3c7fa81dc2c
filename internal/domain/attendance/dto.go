package attendance

import (
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type UpdateAttendanceRequest struct {
	ID           string  `json:"-"`
	Date         *string `json:"date,omitempty"`          // "YYYY-MM-DD"
	ClockInTime  *string `json:"clock_in_time,omitempty"` // "HH:MM"
	ClockOutTime *string `json:"clock_out_time,omitempty"`
	Status       *string `json:"status,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.ClockInTime != nil && *r.ClockInTime != "" && !validator.IsValidTimeOfDay(*r.ClockInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in_time",
			Message: "clock_in_time must be in HH:MM 24-hour format",
		})
	}

	if r.ClockOutTime != nil && *r.ClockOutTime != "" && !validator.IsValidTimeOfDay(*r.ClockOutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out_time",
			Message: "clock_out_time must be in HH:MM 24-hour format",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of waiting_approval, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveAttendanceRequest struct {
	ID string `json:"-"`
}

type RejectAttendanceRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}
	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     string  `json:"employee_name"`
	EmployeePosition *string `json:"employee_position,omitempty"`
	Date             string  `json:"date"`
	ScheduledIn      *string `json:"scheduled_in,omitempty"`
	ScheduledOut     *string `json:"scheduled_out,omitempty"`
	ClockInTime      *string `json:"clock_in_time,omitempty"`
	ClockOutTime     *string `json:"clock_out_time,omitempty"`

	BilledMinutes    *int     `json:"billed_minutes,omitempty"`
	NightDiffHours   *float64 `json:"night_diff_hours,omitempty"`
	UndertimeMinutes *int     `json:"undertime_minutes,omitempty"`
	LateMinutes      *int     `json:"late_minutes,omitempty"`
	EarlyMinutes     *int     `json:"early_minutes,omitempty"`

	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type AttendanceFilter struct {
	// Search & Filter
	EmployeeID   *string `json:"employee_id,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         *string `json:"date,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	Status       *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

var sortableColumns = []string{"date", "employee_name", "status", "clock_in", "clock_out"}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, ok := validator.IsValidDate(*value); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of waiting_approval, approved, rejected",
		})
	}

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, sortableColumns) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of date, employee_name, status, clock_in, clock_out",
		})
	}

	if f.SortOrder != "" && f.SortOrder != "asc" && f.SortOrder != "desc" {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be asc or desc",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
}
