// Package timecalc derives payroll quantities for a single civil day from a
// scheduled work interval and an actual (clocked) interval: billed minutes,
// night-differential hours, undertime minutes and late/early arrival offsets.
//
// Every function is pure and total. Missing or malformed inputs never produce
// an error; they degrade to a zero result so that one bad attendance row
// contributes nothing to a report instead of aborting it.
package timecalc

import "time"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// IsMissing reports whether a time-of-day value is a "not recorded" sentinel.
// The frontend sends either an empty string or a literal dash.
func IsMissing(s string) bool {
	return s == "" || s == "-"
}

func anyMissing(values ...string) bool {
	for _, v := range values {
		if IsMissing(v) {
			return true
		}
	}
	return false
}

func parseDate(s string) (time.Time, bool) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// toInstant combines an anchor date with an "HH:MM" time-of-day into an
// absolute instant. The engine works in a single fixed civil clock, so the
// instant carries no timezone meaning beyond ordering.
func toInstant(date time.Time, hhmm string) (time.Time, bool) {
	t, err := time.Parse(timeLayout, hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, time.UTC), true
}

// resolveInterval anchors an in/out pair to the given date. An out time
// textually earlier than its in time belongs to the following civil day
// (shift crossing midnight), so the end instant is advanced by one day.
// The actual pair and the scheduled pair are always resolved independently.
func resolveInterval(date time.Time, in, out string) (start, end time.Time, ok bool) {
	start, ok = toInstant(date, in)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok = toInstant(date, out)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, true
}

func minutesBetween(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}
