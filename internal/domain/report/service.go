package report

import "context"

type ReportService interface {
	GenerateTimesheetReport(ctx context.Context, req TimesheetReportRequest) (TimesheetReport, error)
	GeneratePayrollSummaryReport(ctx context.Context, req PayrollSummaryReportRequest) (PayrollSummaryReport, error)
}
