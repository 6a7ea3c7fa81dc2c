package schedule

import (
	"strconv"

	"github.com/chronohr/timekeeping-backend-go/internal/pkg/validator"
)

type WorkScheduleTimeInput struct {
	DayOfWeek         int    `json:"day_of_week"`
	ClockInTime       string `json:"clock_in_time"`  // "HH:MM"
	ClockOutTime      string `json:"clock_out_time"` // "HH:MM"
	IsNextDayCheckout bool   `json:"is_next_day_checkout"`
}

type CreateWorkScheduleRequest struct {
	Name               string                  `json:"name"`
	GracePeriodMinutes int                     `json:"grace_period_minutes"`
	Times              []WorkScheduleTimeInput `json:"times"`
}

func (r *CreateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.GracePeriodMinutes < 0 || r.GracePeriodMinutes > 120 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace_period_minutes must be between 0 and 120",
		})
	}
	if len(r.Times) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "times",
			Message: "at least one schedule time is required",
		})
	}

	seenDays := map[int]bool{}
	for i, t := range r.Times {
		field := "times[" + strconv.Itoa(i) + "]"
		if t.DayOfWeek < 1 || t.DayOfWeek > 7 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".day_of_week",
				Message: "day_of_week must be between 1 (Monday) and 7 (Sunday)",
			})
		}
		if seenDays[t.DayOfWeek] {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".day_of_week",
				Message: "duplicate day_of_week",
			})
		}
		seenDays[t.DayOfWeek] = true
		if !validator.IsValidTimeOfDay(t.ClockInTime) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".clock_in_time",
				Message: "clock_in_time must be in HH:MM 24-hour format",
			})
		}
		if !validator.IsValidTimeOfDay(t.ClockOutTime) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".clock_out_time",
				Message: "clock_out_time must be in HH:MM 24-hour format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}


type WorkScheduleTimeResponse struct {
	ID                string `json:"id"`
	DayOfWeek         int    `json:"day_of_week"`
	ClockInTime       string `json:"clock_in_time"`
	ClockOutTime      string `json:"clock_out_time"`
	IsNextDayCheckout bool   `json:"is_next_day_checkout"`
}

type WorkScheduleResponse struct {
	ID                 string                     `json:"id"`
	Name               string                     `json:"name"`
	GracePeriodMinutes int                        `json:"grace_period_minutes"`
	Times              []WorkScheduleTimeResponse `json:"times"`
	CreatedAt          string                     `json:"created_at"`
	UpdatedAt          string                     `json:"updated_at"`
}
