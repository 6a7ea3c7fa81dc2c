package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/chronohr/timekeeping-backend-go/internal/domain/attendance"
	"github.com/chronohr/timekeeping-backend-go/internal/domain/employee"
	"github.com/chronohr/timekeeping-backend-go/internal/domain/schedule"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

type stubAttendanceRepo struct {
	records map[string]attendance.Attendance
	nextID  int
}

func newStubAttendanceRepo() *stubAttendanceRepo {
	return &stubAttendanceRepo{records: map[string]attendance.Attendance{}}
}

func (s *stubAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	s.nextID++
	att.ID = string(rune('a' + s.nextID))
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	s.records[att.ID] = att
	return att, nil
}

func (s *stubAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	att, ok := s.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	for _, att := range s.records {
		if att.EmployeeID == employeeID && att.Date.Equal(date) {
			found := att
			return &found, nil
		}
	}
	return nil, nil
}

func (s *stubAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	if _, ok := s.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	s.records[att.ID] = att
	return nil
}

func (s *stubAttendanceRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.records[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(s.records, id)
	return nil
}

func (s *stubAttendanceRepo) List(_ context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var result []attendance.Attendance
	for _, att := range s.records {
		if filter.EmployeeID != nil && att.EmployeeID != *filter.EmployeeID {
			continue
		}
		result = append(result, att)
	}
	return result, int64(len(result)), nil
}

func (s *stubAttendanceRepo) GetOpenSession(_ context.Context, employeeID string) (attendance.Attendance, error) {
	for _, att := range s.records {
		if att.EmployeeID == employeeID && att.ClockOut == nil {
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrNotClockedIn
}

type stubEmployeeRepo struct{}

func (stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id}, nil
}

func (stubEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

type stubWorkScheduleRepo struct {
	shift *schedule.WorkScheduleTime
}

func (s *stubWorkScheduleRepo) Create(_ context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	return ws, nil
}

func (s *stubWorkScheduleRepo) GetByID(_ context.Context, _ string) (schedule.WorkSchedule, error) {
	return schedule.WorkSchedule{}, pgx.ErrNoRows
}

func (s *stubWorkScheduleRepo) List(_ context.Context) ([]schedule.WorkSchedule, error) {
	return nil, nil
}

func (s *stubWorkScheduleRepo) GetTimeForDate(_ context.Context, _ string, _ time.Time) (*schedule.WorkScheduleTime, error) {
	if s.shift == nil {
		return nil, pgx.ErrNoRows
	}
	return s.shift, nil
}

type stubWorkScheduleTimeRepo struct {
	shift *schedule.WorkScheduleTime
}

func (s *stubWorkScheduleTimeRepo) Create(_ context.Context, t schedule.WorkScheduleTime) (schedule.WorkScheduleTime, error) {
	return t, nil
}

func (s *stubWorkScheduleTimeRepo) GetByID(_ context.Context, _ string) (schedule.WorkScheduleTime, error) {
	if s.shift == nil {
		return schedule.WorkScheduleTime{}, pgx.ErrNoRows
	}
	return *s.shift, nil
}

func (s *stubWorkScheduleTimeRepo) ListBySchedule(_ context.Context, _ string) ([]schedule.WorkScheduleTime, error) {
	return nil, nil
}

var testTokenAuth = jwtauth.New("HS256", []byte("attendance-test-secret"), nil)

func authedContext(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	token, _, err := testTokenAuth.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func nightShift() *schedule.WorkScheduleTime {
	return &schedule.WorkScheduleTime{
		ID:                "shift-night",
		WorkScheduleID:    "ws-1",
		DayOfWeek:         3,
		ClockInTime:       "19:00",
		ClockOutTime:      "04:00",
		IsNextDayCheckout: true,
	}
}

func newTestService(repo *stubAttendanceRepo, clk *testClock, shift *schedule.WorkScheduleTime) attendance.AttendanceService {
	return NewAttendanceService(
		repo,
		stubEmployeeRepo{},
		&stubWorkScheduleRepo{shift: shift},
		&stubWorkScheduleTimeRepo{shift: shift},
		clk,
	)
}

func TestClockInAndOutNightShift(t *testing.T) {
	repo := newStubAttendanceRepo()
	clk := &testClock{now: time.Date(2024, 8, 14, 18, 40, 0, 0, time.UTC)}
	svc := newTestService(repo, clk, nightShift())

	ctx := authedContext(t, map[string]interface{}{
		"employee_id": "emp-1",
		"user_id":     "user-1",
		"type":        "access",
	})

	created, err := svc.ClockIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-08-14", created.Date)
	assert.Equal(t, "waiting_approval", created.Status)
	require.NotNil(t, created.EarlyMinutes)
	assert.Equal(t, 20, *created.EarlyMinutes)
	require.NotNil(t, created.LateMinutes)
	assert.Equal(t, 0, *created.LateMinutes)

	// Second punch the same day is refused.
	_, err = svc.ClockIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)

	// Clock out past midnight; the derived quantities anchor to the 14th.
	clk.now = time.Date(2024, 8, 15, 4, 5, 0, 0, time.UTC)
	result, err := svc.ClockOut(ctx)
	require.NoError(t, err)

	require.NotNil(t, result.BilledMinutes)
	assert.Equal(t, 480, *result.BilledMinutes)
	require.NotNil(t, result.NightDiffHours)
	assert.Equal(t, 5.0, *result.NightDiffHours)
	require.NotNil(t, result.UndertimeMinutes)
	assert.Equal(t, 0, *result.UndertimeMinutes)
}

func TestClockInTooEarly(t *testing.T) {
	repo := newStubAttendanceRepo()
	clk := &testClock{now: time.Date(2024, 8, 14, 14, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clk, nightShift())

	ctx := authedContext(t, map[string]interface{}{
		"employee_id": "emp-1",
		"user_id":     "user-1",
		"type":        "access",
	})

	_, err := svc.ClockIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrTooEarlyToClockIn)
}

func TestClockInWithoutSchedule(t *testing.T) {
	repo := newStubAttendanceRepo()
	clk := &testClock{now: time.Date(2024, 8, 14, 18, 40, 0, 0, time.UTC)}
	svc := newTestService(repo, clk, nil)

	ctx := authedContext(t, map[string]interface{}{
		"employee_id": "emp-1",
		"user_id":     "user-1",
		"type":        "access",
	})

	_, err := svc.ClockIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrNoScheduleFound)
}

func TestClockOutWithoutOpenSession(t *testing.T) {
	repo := newStubAttendanceRepo()
	clk := &testClock{now: time.Date(2024, 8, 14, 18, 40, 0, 0, time.UTC)}
	svc := newTestService(repo, clk, nightShift())

	ctx := authedContext(t, map[string]interface{}{
		"employee_id": "emp-1",
		"user_id":     "user-1",
		"type":        "access",
	})

	_, err := svc.ClockOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockInRequiresEmployeeClaim(t *testing.T) {
	repo := newStubAttendanceRepo()
	clk := &testClock{now: time.Date(2024, 8, 14, 18, 40, 0, 0, time.UTC)}
	svc := newTestService(repo, clk, nightShift())

	ctx := authedContext(t, map[string]interface{}{
		"user_id": "user-1",
		"type":    "access",
	})

	_, err := svc.ClockIn(ctx)
	assert.Error(t, err)
}

func TestApproveRejectLifecycle(t *testing.T) {
	repo := newStubAttendanceRepo()
	clk := &testClock{now: time.Date(2024, 8, 14, 19, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clk, nightShift())

	employeeCtx := authedContext(t, map[string]interface{}{
		"employee_id": "emp-1",
		"user_id":     "user-1",
		"type":        "access",
	})
	managerCtx := authedContext(t, map[string]interface{}{
		"employee_id": "emp-2",
		"user_id":     "user-manager",
		"role":        "manager",
		"type":        "access",
	})

	created, err := svc.ClockIn(employeeCtx)
	require.NoError(t, err)

	approved, err := svc.ApproveAttendance(managerCtx, attendance.ApproveAttendanceRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	// A processed record cannot be decided twice.
	_, err = svc.ApproveAttendance(managerCtx, attendance.ApproveAttendanceRequest{ID: created.ID})
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyProcessed)
	_, err = svc.RejectAttendance(managerCtx, attendance.RejectAttendanceRequest{ID: created.ID, Reason: "wrong shift"})
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyProcessed)
}

func TestRejectRequiresReason(t *testing.T) {
	repo := newStubAttendanceRepo()
	clk := &testClock{now: time.Date(2024, 8, 14, 19, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clk, nightShift())

	managerCtx := authedContext(t, map[string]interface{}{
		"employee_id": "emp-2",
		"user_id":     "user-manager",
		"role":        "manager",
		"type":        "access",
	})

	_, err := svc.RejectAttendance(managerCtx, attendance.RejectAttendanceRequest{ID: "whatever"})
	assert.Error(t, err)
}
