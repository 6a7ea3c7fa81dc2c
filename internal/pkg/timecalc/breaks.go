package timecalc

// Unpaid break deduction tiers. A gross duration of 8 hours or more costs a
// one-hour break, 4 up to 8 hours costs half an hour, anything shorter none.
// The same policy applies wherever a gross duration becomes a paid one: billed
// minutes, night differential and the net scheduled duration for undertime,
// each against its own gross.
const (
	fullBreakThresholdMinutes = 480
	halfBreakThresholdMinutes = 240
	fullBreakMinutes          = 60
	halfBreakMinutes          = 30
)

// BreakMinutes returns the unpaid break minutes for a gross worked duration.
func BreakMinutes(grossMinutes int) int {
	switch {
	case grossMinutes >= fullBreakThresholdMinutes:
		return fullBreakMinutes
	case grossMinutes >= halfBreakThresholdMinutes:
		return halfBreakMinutes
	default:
		return 0
	}
}

// breakHours is the same policy expressed in hours, used by the night
// differential which works in hour units.
func breakHours(grossHours float64) float64 {
	switch {
	case grossHours >= 8:
		return 1
	case grossHours >= 4:
		return 0.5
	default:
		return 0
	}
}
