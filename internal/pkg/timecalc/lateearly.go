package timecalc

// LateMinutes returns how many minutes after the scheduled start the employee
// clocked in, or 0 when on time or early. Missing inputs yield 0.
func LateMinutes(actualIn, scheduledIn, anchorDate string) int {
	diff, ok := startOffsetMinutes(actualIn, scheduledIn, anchorDate)
	if !ok || diff <= 0 {
		return 0
	}
	return diff
}

// EarlyMinutes returns how many minutes before the scheduled start the
// employee clocked in, or 0 when on time or late. For any given pair at most
// one of LateMinutes and EarlyMinutes is non-zero.
func EarlyMinutes(actualIn, scheduledIn, anchorDate string) int {
	diff, ok := startOffsetMinutes(actualIn, scheduledIn, anchorDate)
	if !ok || diff >= 0 {
		return 0
	}
	return -diff
}

// startOffsetMinutes is the signed offset of the actual clock-in from the
// scheduled start, positive when late.
func startOffsetMinutes(actualIn, scheduledIn, anchorDate string) (int, bool) {
	if anyMissing(actualIn, scheduledIn) {
		return 0, false
	}
	date, ok := parseDate(anchorDate)
	if !ok {
		return 0, false
	}
	ai, ok := toInstant(date, actualIn)
	if !ok {
		return 0, false
	}
	si, ok := toInstant(date, scheduledIn)
	if !ok {
		return 0, false
	}
	return minutesBetween(si, ai), true
}
