package timecalc

import (
	"time"

	"github.com/shopspring/decimal"
)

// The night-differential window runs from 22:00 of the anchor date through
// 06:00 of the following day. Fixed by company policy, not configurable.
const (
	nightWindowStartHour = 22
	nightWindowHours     = 8
)

// NightDiffHours returns the premium-eligible hours worked inside the night
// window, rounded to two decimals.
//
// The overlap is taken against the actual interval, but its end is also
// capped to the scheduled departure: staying past the scheduled end never
// earns extra night differential, mirroring the billed-minutes capping. The
// break tier, in contrast, is selected from the uncapped actual duration.
//
// When the scheduled pair is absent the departure cap degenerates to midnight
// of the anchor date, which suppresses any credit. This mirrors the upstream
// payroll behavior; whether it is policy or accident is unconfirmed, so it is
// preserved as-is.
func NightDiffHours(actualIn, actualOut, scheduledIn, scheduledOut, anchorDate string) float64 {
	if anyMissing(actualIn, actualOut) {
		return 0
	}
	date, ok := parseDate(anchorDate)
	if !ok {
		return 0
	}
	ai, ao, ok := resolveInterval(date, actualIn, actualOut)
	if !ok {
		return 0
	}

	windowStart := time.Date(date.Year(), date.Month(), date.Day(),
		nightWindowStartHour, 0, 0, 0, time.UTC)
	windowEnd := windowStart.Add(nightWindowHours * time.Hour)

	departureCap := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if !anyMissing(scheduledIn, scheduledOut) {
		if _, so, ok := resolveInterval(date, scheduledIn, scheduledOut); ok {
			departureCap = so
		}
	}

	ndStart := ai
	if ndStart.Before(windowStart) {
		ndStart = windowStart
	}
	ndEnd := windowEnd
	if departureCap.Before(ndEnd) {
		ndEnd = departureCap
	}
	if ao.Before(ndEnd) {
		ndEnd = ao
	}
	if !ndStart.Before(ndEnd) {
		return 0
	}

	raw := ndEnd.Sub(ndStart).Hours()
	nd := raw - breakHours(ao.Sub(ai).Hours())
	if nd <= 0 {
		return 0
	}
	rounded, _ := decimal.NewFromFloat(nd).Round(2).Float64()
	return rounded
}
