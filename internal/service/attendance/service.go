package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/chronohr/timekeeping-backend-go/internal/domain/attendance"
	"github.com/chronohr/timekeeping-backend-go/internal/domain/employee"
	"github.com/chronohr/timekeeping-backend-go/internal/domain/schedule"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/clock"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/timecalc"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	schedule.WorkScheduleRepository
	schedule.WorkScheduleTimeRepository
	clock clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	workScheduleRepo schedule.WorkScheduleRepository,
	workScheduleTimeRepo schedule.WorkScheduleTimeRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository:       attendanceRepo,
		EmployeeRepository:         employeeRepo,
		WorkScheduleRepository:     workScheduleRepo,
		WorkScheduleTimeRepository: workScheduleTimeRepo,
		clock:                      clk,
	}
}

// claimString extracts a string claim from the JWT in the request context.
func claimString(ctx context.Context, key string) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	value, ok := claims[key].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%s claim is missing or invalid", key)
	}
	return value, nil
}

// timePtrToClock formats a stored timestamp as the "HH:MM" wall-clock string
// the calculation engine consumes. Nil maps to the engine's "-" sentinel.
func timePtrToClock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(timeLayout)
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := claimString(ctx, "employee_id")
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	date := now.Truncate(24 * time.Hour)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	scheduleTime, err := a.WorkScheduleRepository.GetTimeForDate(ctx, employeeID, now)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve schedule: %w", err)
	}
	if scheduleTime == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoScheduleFound
	}

	dateStr := date.Format(dateLayout)
	actualIn := now.Format(timeLayout)

	// Guard against punching hours ahead of the shift (e.g. 02:00 for an
	// 08:00 start); one hour of early arrival is the accepted window.
	if early := timecalc.EarlyMinutes(actualIn, scheduleTime.ClockInTime, dateStr); early > 60 {
		return attendance.AttendanceResponse{}, attendance.ErrTooEarlyToClockIn
	}

	lateMinutes := timecalc.LateMinutes(actualIn, scheduleTime.ClockInTime, dateStr)
	earlyMinutes := timecalc.EarlyMinutes(actualIn, scheduleTime.ClockInTime, dateStr)

	data := attendance.Attendance{
		EmployeeID:         employeeID,
		Date:               date,
		WorkScheduleTimeID: &scheduleTime.ID,
		ClockIn:            &now,
		Status:             attendance.StatusWaitingApproval,
		LateMinutes:        &lateMinutes,
		EarlyMinutes:       &earlyMinutes,
	}

	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService. This is where the
// payroll quantities are derived: the recorded punches and the scheduled
// shift are handed to the calculation engine as wall-clock strings anchored
// to the attendance date.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := claimString(ctx, "employee_id")
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetOpenSession(ctx, employeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrNotClockedIn) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}

	if att.WorkScheduleTimeID == nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("attendance has no associated work schedule time")
	}
	scheduleTime, err := a.WorkScheduleTimeRepository.GetByID(ctx, *att.WorkScheduleTimeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, schedule.ErrWorkScheduleTimeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get work schedule time: %w", err)
	}

	now := a.clock.Now()
	att.ClockOut = &now
	a.recalculate(&att, scheduleTime.ClockInTime, scheduleTime.ClockOutTime)

	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// recalculate reruns the calculation engine against the record's punches and
// the scheduled shift. Each calculator resolves its own midnight rollover
// from the anchor date, so an overnight clock-out needs no special casing
// here.
func (a *AttendanceServiceImpl) recalculate(att *attendance.Attendance, scheduledIn, scheduledOut string) {
	dateStr := att.Date.Format(dateLayout)
	actualIn := timePtrToClock(att.ClockIn)
	actualOut := timePtrToClock(att.ClockOut)

	billed := timecalc.BilledMinutes(actualIn, actualOut, scheduledIn, scheduledOut, dateStr)
	nightDiff := timecalc.NightDiffHours(actualIn, actualOut, scheduledIn, scheduledOut, dateStr)
	undertime := timecalc.UndertimeMinutes(actualIn, actualOut, scheduledIn, scheduledOut, dateStr)
	late := timecalc.LateMinutes(actualIn, scheduledIn, dateStr)
	early := timecalc.EarlyMinutes(actualIn, scheduledIn, dateStr)

	att.BilledMinutes = &billed
	att.NightDiffHours = &nightDiff
	att.UndertimeMinutes = &undertime
	att.LateMinutes = &late
	att.EarlyMinutes = &early
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	employeeID, err := claimString(ctx, "employee_id")
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	filter.EmployeeID = &employeeID
	return a.list(ctx, filter)
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return a.list(ctx, filter)
}

func (a *AttendanceServiceImpl) list(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Attendances: responses,
	}, nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return mapAttendanceToResponse(att), nil
}

// UpdateAttendance implements attendance.AttendanceService. Managers use
// this to fix wrong punches; every correction reruns the calculation engine
// so the derived quantities can never drift from the stored times.
func (a *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if req.Date != nil && *req.Date != "" {
		parsedDate, _ := time.Parse(dateLayout, *req.Date)
		att.Date = parsedDate
	}

	if req.ClockInTime != nil && *req.ClockInTime != "" {
		att.ClockIn = clockOnDate(att.Date, *req.ClockInTime, false)
	}
	if req.ClockOutTime != nil && *req.ClockOutTime != "" {
		// An out time textually earlier than the in time belongs to the
		// next civil day.
		nextDay := att.ClockIn != nil && *req.ClockOutTime < att.ClockIn.Format(timeLayout)
		att.ClockOut = clockOnDate(att.Date, *req.ClockOutTime, nextDay)
	}
	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	}

	scheduledIn, scheduledOut := "-", "-"
	if att.ScheduledIn != nil {
		scheduledIn = *att.ScheduledIn
	}
	if att.ScheduledOut != nil {
		scheduledOut = *att.ScheduledOut
	}
	a.recalculate(&att, scheduledIn, scheduledOut)

	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	updated, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get updated attendance: %w", err)
	}
	return mapAttendanceToResponse(updated), nil
}

func clockOnDate(date time.Time, hhmm string, nextDay bool) *time.Time {
	parsed, err := time.Parse(timeLayout, hhmm)
	if err != nil {
		return nil
	}
	t := time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	if nextDay {
		t = t.AddDate(0, 0, 1)
	}
	return &t
}

// ApproveAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ApproveAttendance(ctx context.Context, req attendance.ApproveAttendanceRequest) (attendance.AttendanceResponse, error) {
	return a.decide(ctx, req.ID, attendance.StatusApproved, nil)
}

// RejectAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RejectAttendance(ctx context.Context, req attendance.RejectAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return a.decide(ctx, req.ID, attendance.StatusRejected, &req.Reason)
}

func (a *AttendanceServiceImpl) decide(ctx context.Context, id string, status attendance.Status, reason *string) (attendance.AttendanceResponse, error) {
	userID, err := claimString(ctx, "user_id")
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if att.Status != attendance.StatusWaitingApproval {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceAlreadyProcessed
	}

	now := a.clock.Now()
	att.Status = status
	att.ApprovedBy = &userID
	att.ApprovedAt = &now
	att.RejectionReason = reason

	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance status: %w", err)
	}
	return mapAttendanceToResponse(att), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if err := a.AttendanceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var employeeName string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	return attendance.AttendanceResponse{
		ID:               att.ID,
		EmployeeID:       att.EmployeeID,
		EmployeeName:     employeeName,
		EmployeePosition: att.EmployeePosition,
		Date:             att.Date.Format(dateLayout),
		ScheduledIn:      att.ScheduledIn,
		ScheduledOut:     att.ScheduledOut,
		ClockInTime:      timePtrToString(att.ClockIn),
		ClockOutTime:     timePtrToString(att.ClockOut),
		BilledMinutes:    att.BilledMinutes,
		NightDiffHours:   att.NightDiffHours,
		UndertimeMinutes: att.UndertimeMinutes,
		LateMinutes:      att.LateMinutes,
		EarlyMinutes:     att.EarlyMinutes,
		Status:           string(att.Status),
		RejectionReason:  att.RejectionReason,
		CreatedAt:        att.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        att.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
