package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chronohr/timekeeping-backend-go/internal/domain/schedule"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/database"
	"github.com/chronohr/timekeeping-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ScheduleServiceImpl struct {
	db                   *database.DB
	workScheduleRepo     schedule.WorkScheduleRepository
	workScheduleTimeRepo schedule.WorkScheduleTimeRepository
}

func NewScheduleService(
	db *database.DB,
	workScheduleRepo schedule.WorkScheduleRepository,
	workScheduleTimeRepo schedule.WorkScheduleTimeRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		db:                   db,
		workScheduleRepo:     workScheduleRepo,
		workScheduleTimeRepo: workScheduleTimeRepo,
	}
}

// CreateWorkSchedule creates the schedule and its per-day shift definitions
// atomically; a schedule with half its days missing is worse than no schedule.
func (s *ScheduleServiceImpl) CreateWorkSchedule(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	var created schedule.WorkSchedule
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		ws, err := s.workScheduleRepo.Create(txCtx, schedule.WorkSchedule{
			Name:               req.Name,
			GracePeriodMinutes: req.GracePeriodMinutes,
		})
		if err != nil {
			return fmt.Errorf("failed to create work schedule: %w", err)
		}

		for _, t := range req.Times {
			wst, err := s.workScheduleTimeRepo.Create(txCtx, schedule.WorkScheduleTime{
				WorkScheduleID:    ws.ID,
				DayOfWeek:         t.DayOfWeek,
				ClockInTime:       t.ClockInTime,
				ClockOutTime:      t.ClockOutTime,
				IsNextDayCheckout: t.IsNextDayCheckout,
			})
			if err != nil {
				return fmt.Errorf("failed to create schedule time: %w", err)
			}
			ws.Times = append(ws.Times, wst)
		}

		created = ws
		return nil
	})
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *ScheduleServiceImpl) GetWorkSchedule(ctx context.Context, id string) (schedule.WorkScheduleResponse, error) {
	ws, err := s.workScheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkScheduleResponse{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	times, err := s.workScheduleTimeRepo.ListBySchedule(ctx, ws.ID)
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to list schedule times: %w", err)
	}
	ws.Times = times

	return mapToResponse(ws), nil
}

func (s *ScheduleServiceImpl) ListWorkSchedules(ctx context.Context) ([]schedule.WorkScheduleResponse, error) {
	schedules, err := s.workScheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}

	responses := make([]schedule.WorkScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		times, err := s.workScheduleTimeRepo.ListBySchedule(ctx, ws.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list schedule times: %w", err)
		}
		ws.Times = times
		responses = append(responses, mapToResponse(ws))
	}
	return responses, nil
}

func mapToResponse(ws schedule.WorkSchedule) schedule.WorkScheduleResponse {
	resp := schedule.WorkScheduleResponse{
		ID:                 ws.ID,
		Name:               ws.Name,
		GracePeriodMinutes: ws.GracePeriodMinutes,
		CreatedAt:          ws.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          ws.UpdatedAt.Format(time.RFC3339),
	}
	for _, t := range ws.Times {
		resp.Times = append(resp.Times, schedule.WorkScheduleTimeResponse{
			ID:                t.ID,
			DayOfWeek:         t.DayOfWeek,
			ClockInTime:       t.ClockInTime,
			ClockOutTime:      t.ClockOutTime,
			IsNextDayCheckout: t.IsNextDayCheckout,
		})
	}
	return resp
}
