package http

import (
	"net/http"
	"strconv"

	"github.com/chronohr/timekeeping-backend-go/internal/domain/report"
	"github.com/chronohr/timekeeping-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Timesheet(w http.ResponseWriter, r *http.Request)
	PayrollSummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Timesheet implements ReportHandler.
func (h *reportHandlerImpl) Timesheet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := report.TimesheetReportRequest{}
	req.Month, _ = strconv.Atoi(q.Get("month"))
	req.Year, _ = strconv.Atoi(q.Get("year"))
	if v := q.Get("employee_id"); v != "" {
		req.EmployeeID = &v
	}

	result, err := h.reportService.GenerateTimesheetReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// PayrollSummary implements ReportHandler.
func (h *reportHandlerImpl) PayrollSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := report.PayrollSummaryReportRequest{}
	req.Month, _ = strconv.Atoi(q.Get("month"))
	req.Year, _ = strconv.Atoi(q.Get("year"))

	result, err := h.reportService.GeneratePayrollSummaryReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
