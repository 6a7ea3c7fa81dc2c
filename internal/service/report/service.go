package report

import (
	"context"
	"fmt"
	"time"

	"github.com/chronohr/timekeeping-backend-go/internal/domain/report"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/clock"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/timecalc"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	clock      clock.Clock
}

func NewReportService(reportRepo report.ReportRepository, clk clock.Clock) report.ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		clock:      clk,
	}
}

// GenerateTimesheetReport builds the monthly timesheet: one row per employee
// per attendance day, each row carrying the five quantities the calculation
// engine derives from that day's punches. The calculators are invoked
// independently per row; a malformed or incomplete row contributes zeros
// instead of failing the report.
func (s *ReportServiceImpl) GenerateTimesheetReport(ctx context.Context, req report.TimesheetReportRequest) (report.TimesheetReport, error) {
	if err := req.Validate(); err != nil {
		return report.TimesheetReport{}, err
	}

	rows, err := s.reportRepo.GetDailyPunches(ctx, req.Month, req.Year, req.EmployeeID)
	if err != nil {
		return report.TimesheetReport{}, fmt.Errorf("failed to get attendance data: %w", err)
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	var employees []report.TimesheetEmployee
	var current *report.TimesheetEmployee
	for _, row := range rows {
		if current == nil || current.EmployeeID != row.EmployeeID {
			employees = append(employees, report.TimesheetEmployee{
				EmployeeID:   row.EmployeeID,
				EmployeeCode: row.EmployeeCode,
				EmployeeName: row.EmployeeName,
				Position:     row.Position,
			})
			current = &employees[len(employees)-1]
		}
		day := buildTimesheetDay(row)
		current.Days = append(current.Days, day)
		accumulate(&current.Summary, day)
	}

	return report.TimesheetReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: periodStart.Format(dateLayout),
		PeriodEnd:   periodEnd.Format(dateLayout),
		GeneratedAt: s.clock.Now().Format(time.RFC3339),
		Employees:   employees,
	}, nil
}

func buildTimesheetDay(row report.DailyPunchRow) report.TimesheetDay {
	date := row.Date.Format(dateLayout)
	return report.TimesheetDay{
		Date:         date,
		DayOfWeek:    row.Date.Weekday().String(),
		ScheduledIn:  row.ScheduledIn,
		ScheduledOut: row.ScheduledOut,
		ActualIn:     row.ActualIn,
		ActualOut:    row.ActualOut,

		BilledMinutes:    timecalc.BilledMinutes(row.ActualIn, row.ActualOut, row.ScheduledIn, row.ScheduledOut, date),
		NightDiffHours:   timecalc.NightDiffHours(row.ActualIn, row.ActualOut, row.ScheduledIn, row.ScheduledOut, date),
		UndertimeMinutes: timecalc.UndertimeMinutes(row.ActualIn, row.ActualOut, row.ScheduledIn, row.ScheduledOut, date),
		LateMinutes:      timecalc.LateMinutes(row.ActualIn, row.ScheduledIn, date),
		EarlyMinutes:     timecalc.EarlyMinutes(row.ActualIn, row.ScheduledIn, date),

		Status: row.Status,
	}
}

// accumulate folds one day into the employee summary. Hour totals go through
// decimal so a month of two-decimal ND values cannot pick up float drift.
func accumulate(summary *report.TimesheetSummary, day report.TimesheetDay) {
	if day.BilledMinutes > 0 {
		summary.DaysPresent++
	}
	billed := decimal.NewFromFloat(summary.TotalBilledHours).
		Add(decimal.New(int64(day.BilledMinutes), 0).Div(decimal.New(60, 0))).
		Round(2)
	summary.TotalBilledHours, _ = billed.Float64()
	nd := decimal.NewFromFloat(summary.TotalNightDiffHours).
		Add(decimal.NewFromFloat(day.NightDiffHours)).
		Round(2)
	summary.TotalNightDiffHours, _ = nd.Float64()
	summary.TotalUndertimeMinutes += day.UndertimeMinutes
	summary.TotalLateMinutes += day.LateMinutes
	summary.TotalEarlyMinutes += day.EarlyMinutes
}

// GeneratePayrollSummaryReport flattens the timesheet into one row per
// employee for the payroll run.
func (s *ReportServiceImpl) GeneratePayrollSummaryReport(ctx context.Context, req report.PayrollSummaryReportRequest) (report.PayrollSummaryReport, error) {
	if err := req.Validate(); err != nil {
		return report.PayrollSummaryReport{}, err
	}

	timesheet, err := s.GenerateTimesheetReport(ctx, report.TimesheetReportRequest{
		Month: req.Month,
		Year:  req.Year,
	})
	if err != nil {
		return report.PayrollSummaryReport{}, err
	}

	summaryReport := report.PayrollSummaryReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		GeneratedAt: s.clock.Now().Format(time.RFC3339),
	}

	totalBilled := decimal.Zero
	totalNightDiff := decimal.Zero
	for _, emp := range timesheet.Employees {
		summaryReport.Rows = append(summaryReport.Rows, report.PayrollSummaryRow{
			EmployeeID:       emp.EmployeeID,
			EmployeeCode:     emp.EmployeeCode,
			EmployeeName:     emp.EmployeeName,
			Position:         emp.Position,
			BilledHours:      emp.Summary.TotalBilledHours,
			NightDiffHours:   emp.Summary.TotalNightDiffHours,
			UndertimeMinutes: emp.Summary.TotalUndertimeMinutes,
			LateMinutes:      emp.Summary.TotalLateMinutes,
			DaysPresent:      emp.Summary.DaysPresent,
		})
		totalBilled = totalBilled.Add(decimal.NewFromFloat(emp.Summary.TotalBilledHours))
		totalNightDiff = totalNightDiff.Add(decimal.NewFromFloat(emp.Summary.TotalNightDiffHours))
	}

	summaryReport.TotalBilledHours, _ = totalBilled.Round(2).Float64()
	summaryReport.TotalNightDiffHours, _ = totalNightDiff.Round(2).Float64()
	summaryReport.TotalEmployees = len(summaryReport.Rows)

	return summaryReport, nil
}
