package report

import (
	"fmt"
	"time"

	"github.com/chronohr/timekeeping-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY TIMESHEET REPORT
// ========================================

type TimesheetReportRequest struct {
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *TimesheetReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if r.EmployeeID != nil && validator.IsEmpty(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must not be empty when provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimesheetReport struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	Employees []TimesheetEmployee `json:"employees"`
}

type TimesheetEmployee struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Position     string `json:"position"`

	Summary TimesheetSummary `json:"summary"`
	Days    []TimesheetDay   `json:"days"`
}

type TimesheetSummary struct {
	DaysPresent           int     `json:"days_present"`
	TotalBilledHours      float64 `json:"total_billed_hours"`
	TotalNightDiffHours   float64 `json:"total_night_diff_hours"`
	TotalUndertimeMinutes int     `json:"total_undertime_minutes"`
	TotalLateMinutes      int     `json:"total_late_minutes"`
	TotalEarlyMinutes     int     `json:"total_early_minutes"`
}

// TimesheetDay is one payroll row: the raw punches alongside the quantities
// the calculation engine derives from them. Times not recorded appear as "-".
type TimesheetDay struct {
	Date      string `json:"date"`
	DayOfWeek string `json:"day_of_week"`

	ScheduledIn  string `json:"scheduled_in"`
	ScheduledOut string `json:"scheduled_out"`
	ActualIn     string `json:"actual_in"`
	ActualOut    string `json:"actual_out"`

	BilledMinutes    int     `json:"billed_minutes"`
	NightDiffHours   float64 `json:"night_diff_hours"`
	UndertimeMinutes int     `json:"undertime_minutes"`
	LateMinutes      int     `json:"late_minutes"`
	EarlyMinutes     int     `json:"early_minutes"`

	Status string `json:"status"`
}

// ========================================
// PAYROLL SUMMARY REPORT
// ========================================

type PayrollSummaryReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *PayrollSummaryReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollSummaryReport struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	GeneratedAt string `json:"generated_at"`

	TotalBilledHours    float64 `json:"total_billed_hours"`
	TotalNightDiffHours float64 `json:"total_night_diff_hours"`
	TotalEmployees      int     `json:"total_employees"`

	Rows []PayrollSummaryRow `json:"rows"`
}

type PayrollSummaryRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Position     string `json:"position"`

	BilledHours      float64 `json:"billed_hours"`
	NightDiffHours   float64 `json:"night_diff_hours"`
	UndertimeMinutes int     `json:"undertime_minutes"`
	LateMinutes      int     `json:"late_minutes"`
	DaysPresent      int     `json:"days_present"`
}
