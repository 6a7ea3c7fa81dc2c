package report

import (
	"context"
	"testing"
	"time"

	"github.com/chronohr/timekeeping-backend-go/internal/domain/report"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportClock = clock.Fixed(time.Date(2024, time.September, 1, 8, 0, 0, 0, time.UTC))

type stubReportRepo struct {
	rows []report.DailyPunchRow
	err  error
}

func (s *stubReportRepo) GetDailyPunches(_ context.Context, _, _ int, _ *string) ([]report.DailyPunchRow, error) {
	return s.rows, s.err
}

func day(d int) time.Time {
	return time.Date(2024, time.August, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateTimesheetReport(t *testing.T) {
	repo := &stubReportRepo{rows: []report.DailyPunchRow{
		{
			EmployeeID: "emp-1", EmployeeCode: "2024-0001", EmployeeName: "Dela Cruz", Position: "Nurse",
			Date:        day(14),
			ScheduledIn: "19:00", ScheduledOut: "04:00",
			ActualIn: "18:40", ActualOut: "04:05",
			Status: "approved",
		},
		{
			EmployeeID: "emp-1", EmployeeCode: "2024-0001", EmployeeName: "Dela Cruz", Position: "Nurse",
			Date:        day(15),
			ScheduledIn: "19:00", ScheduledOut: "04:00",
			ActualIn: "19:30", ActualOut: "04:00",
			Status: "approved",
		},
		{
			// Night missed entirely; punches absent.
			EmployeeID: "emp-1", EmployeeCode: "2024-0001", EmployeeName: "Dela Cruz", Position: "Nurse",
			Date:        day(16),
			ScheduledIn: "19:00", ScheduledOut: "04:00",
			ActualIn: "-", ActualOut: "-",
			Status: "waiting_approval",
		},
		{
			EmployeeID: "emp-2", EmployeeCode: "2024-0002", EmployeeName: "Reyes", Position: "Clerk",
			Date:        day(14),
			ScheduledIn: "08:00", ScheduledOut: "17:00",
			ActualIn: "08:30", ActualOut: "17:00",
			Status: "approved",
		},
	}}

	svc := NewReportService(repo, reportClock)
	result, err := svc.GenerateTimesheetReport(context.Background(), report.TimesheetReportRequest{Month: 8, Year: 2024})
	require.NoError(t, err)

	assert.Equal(t, "2024-08-01", result.PeriodStart)
	assert.Equal(t, "2024-08-31", result.PeriodEnd)
	assert.Equal(t, "2024-09-01T08:00:00Z", result.GeneratedAt)
	require.Len(t, result.Employees, 2)

	nightShifter := result.Employees[0]
	assert.Equal(t, "emp-1", nightShifter.EmployeeID)
	require.Len(t, nightShifter.Days, 3)

	assert.Equal(t, 480, nightShifter.Days[0].BilledMinutes)
	assert.Equal(t, 5.0, nightShifter.Days[0].NightDiffHours)
	assert.Equal(t, 20, nightShifter.Days[0].EarlyMinutes)

	assert.Equal(t, 450, nightShifter.Days[1].BilledMinutes)
	assert.Equal(t, 30, nightShifter.Days[1].LateMinutes)
	assert.Equal(t, 30, nightShifter.Days[1].UndertimeMinutes)

	// The absent day degrades to zeros instead of erroring out.
	assert.Equal(t, 0, nightShifter.Days[2].BilledMinutes)
	assert.Equal(t, 0.0, nightShifter.Days[2].NightDiffHours)

	assert.Equal(t, 2, nightShifter.Summary.DaysPresent)
	assert.Equal(t, 15.5, nightShifter.Summary.TotalBilledHours)
	assert.Equal(t, 10.0, nightShifter.Summary.TotalNightDiffHours)
	assert.Equal(t, 30, nightShifter.Summary.TotalUndertimeMinutes)
	assert.Equal(t, 30, nightShifter.Summary.TotalLateMinutes)

	clerk := result.Employees[1]
	assert.Equal(t, 7.5, clerk.Summary.TotalBilledHours)
	assert.Equal(t, 0.0, clerk.Summary.TotalNightDiffHours)
}

func TestGenerateTimesheetReportValidation(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, reportClock)

	_, err := svc.GenerateTimesheetReport(context.Background(), report.TimesheetReportRequest{Month: 13, Year: 2024})
	assert.Error(t, err)

	_, err = svc.GenerateTimesheetReport(context.Background(), report.TimesheetReportRequest{Month: 1, Year: 1999})
	assert.Error(t, err)
}

func TestGeneratePayrollSummaryReport(t *testing.T) {
	repo := &stubReportRepo{rows: []report.DailyPunchRow{
		{
			EmployeeID: "emp-1", EmployeeCode: "2024-0001", EmployeeName: "Dela Cruz", Position: "Nurse",
			Date:        day(14),
			ScheduledIn: "19:00", ScheduledOut: "04:00",
			ActualIn: "19:00", ActualOut: "04:00",
			Status: "approved",
		},
		{
			EmployeeID: "emp-2", EmployeeCode: "2024-0002", EmployeeName: "Reyes", Position: "Clerk",
			Date:        day(14),
			ScheduledIn: "08:00", ScheduledOut: "17:00",
			ActualIn: "08:00", ActualOut: "17:00",
			Status: "approved",
		},
	}}

	svc := NewReportService(repo, reportClock)
	result, err := svc.GeneratePayrollSummaryReport(context.Background(), report.PayrollSummaryReportRequest{Month: 8, Year: 2024})
	require.NoError(t, err)

	assert.Equal(t, "2024-09-01T08:00:00Z", result.GeneratedAt)
	assert.Equal(t, 2, result.TotalEmployees)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, 8.0, result.Rows[0].BilledHours)
	assert.Equal(t, 5.0, result.Rows[0].NightDiffHours)
	assert.Equal(t, 8.0, result.Rows[1].BilledHours)
	assert.Equal(t, 16.0, result.TotalBilledHours)
	assert.Equal(t, 5.0, result.TotalNightDiffHours)
}
