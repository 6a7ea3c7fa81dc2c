package timecalc

// UndertimeMinutes returns the shortfall between the net scheduled duration
// and the billed minutes for the day.
//
// Billed minutes already cap early arrival and late departure, so neither can
// shrink undertime artificially; only a genuine late arrival or early
// departure produces a shortfall. Missing inputs yield 0.
func UndertimeMinutes(actualIn, actualOut, scheduledIn, scheduledOut, anchorDate string) int {
	if anyMissing(actualIn, actualOut, scheduledIn, scheduledOut) {
		return 0
	}
	date, ok := parseDate(anchorDate)
	if !ok {
		return 0
	}
	si, so, ok := resolveInterval(date, scheduledIn, scheduledOut)
	if !ok {
		return 0
	}

	grossScheduled := minutesBetween(si, so)
	netScheduled := grossScheduled - BreakMinutes(grossScheduled)

	undertime := netScheduled - BilledMinutes(actualIn, actualOut, scheduledIn, scheduledOut, anchorDate)
	if undertime < 0 {
		return 0
	}
	return undertime
}
