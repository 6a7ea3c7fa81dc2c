package timecalc

// BilledMinutes returns the paid worked duration for one civil day, in
// minutes, after capping and break deduction.
//
// Paid time is deliberately decoupled from time physically present: clocking
// in before the scheduled start earns nothing extra (start is capped to the
// scheduled start) and clocking out after the scheduled end earns nothing
// extra either (end is capped to the scheduled end; overtime is a separate
// approval flow). Clocking out early, however, is charged in full — the
// actual out time is used, which is what produces undertime.
//
// Missing or unparseable inputs yield 0.
func BilledMinutes(actualIn, actualOut, scheduledIn, scheduledOut, anchorDate string) int {
	if anyMissing(actualIn, actualOut, scheduledIn, scheduledOut) {
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
	si, so, ok := resolveInterval(date, scheduledIn, scheduledOut)
	if !ok {
		return 0
	}

	effectiveStart := ai
	if ai.Before(si) {
		effectiveStart = si
	}
	effectiveEnd := ao
	if ao.After(so) {
		effectiveEnd = so
	}

	// Capping two independently rolled-over intervals can invert the result
	// when the recorded data is inconsistent. Treated as a zero-duration day,
	// not an error.
	if effectiveEnd.Before(effectiveStart) {
		return 0
	}

	gross := minutesBetween(effectiveStart, effectiveEnd)
	billed := gross - BreakMinutes(gross)
	if billed < 0 {
		return 0
	}
	return billed
}
