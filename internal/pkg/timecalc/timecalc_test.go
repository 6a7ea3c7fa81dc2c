package timecalc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testDate = "2024-08-14"

// The hand-written edge-case table the payroll team signed off on. Each row
// exercises all five calculators against one day's raw punches.
func TestDailyScenarios(t *testing.T) {
	cases := []struct {
		name                   string
		actualIn, actualOut    string
		schedIn, schedOut      string
		wantBilled             int
		wantNightDiff          float64
		wantUndertime          int
		wantLate, wantEarly    int
	}{
		{
			name:     "night shift with early-in and late-out",
			actualIn: "18:40", actualOut: "04:05",
			schedIn: "19:00", schedOut: "04:00",
			wantBilled: 480, wantNightDiff: 5.00, wantUndertime: 0,
			wantLate: 0, wantEarly: 20,
		},
		{
			name:     "night shift late arrival",
			actualIn: "19:30", actualOut: "04:00",
			schedIn: "19:00", schedOut: "04:00",
			wantBilled: 450, wantNightDiff: 5.0, wantUndertime: 30,
			wantLate: 30, wantEarly: 0,
		},
		{
			name:     "night shift early departure",
			actualIn: "19:00", actualOut: "02:00",
			schedIn: "19:00", schedOut: "04:00",
			wantBilled: 390, wantNightDiff: 3.5, wantUndertime: 90,
			wantLate: 0, wantEarly: 0,
		},
		{
			name:     "extended night shift",
			actualIn: "18:00", actualOut: "06:00",
			schedIn: "18:00", schedOut: "06:00",
			wantBilled: 660, wantNightDiff: 7, wantUndertime: 0,
			wantLate: 0, wantEarly: 0,
		},
		{
			name:     "dayshift early-in late-out",
			actualIn: "06:40", actualOut: "16:10",
			schedIn: "07:00", schedOut: "16:00",
			wantBilled: 480, wantNightDiff: 0, wantUndertime: 0,
			wantLate: 0, wantEarly: 20,
		},
		{
			name:     "dayshift late arrival",
			actualIn: "08:30", actualOut: "17:00",
			schedIn: "08:00", schedOut: "17:00",
			wantBilled: 450, wantNightDiff: 0, wantUndertime: 30,
			wantLate: 30, wantEarly: 0,
		},
		{
			name:     "short shift below break tier",
			actualIn: "09:00", actualOut: "12:00",
			schedIn: "09:00", schedOut: "12:00",
			wantBilled: 180, wantNightDiff: 0, wantUndertime: 0,
			wantLate: 0, wantEarly: 0,
		},
		{
			name:     "half-day at the 4h break boundary",
			actualIn: "08:00", actualOut: "12:00",
			schedIn: "08:00", schedOut: "12:00",
			wantBilled: 210, wantNightDiff: 0, wantUndertime: 0,
			wantLate: 0, wantEarly: 0,
		},
		{
			name:     "eight hours at the 8h break boundary",
			actualIn: "08:00", actualOut: "16:00",
			schedIn: "08:00", schedOut: "16:00",
			wantBilled: 420, wantNightDiff: 0, wantUndertime: 0,
			wantLate: 0, wantEarly: 0,
		},
		{
			name:     "no punches recorded",
			actualIn: "-", actualOut: "-",
			schedIn: "08:00", schedOut: "17:00",
			wantBilled: 0, wantNightDiff: 0, wantUndertime: 0,
			wantLate: 0, wantEarly: 0,
		},
		{
			name:     "missing clock-out only",
			actualIn: "08:00", actualOut: "",
			schedIn: "08:00", schedOut: "17:00",
			wantBilled: 0, wantNightDiff: 0, wantUndertime: 0,
			wantLate: 0, wantEarly: 0,
		},
		{
			name:     "no schedule on record",
			actualIn: "22:00", actualOut: "06:00",
			schedIn: "-", schedOut: "-",
			wantBilled: 0, wantNightDiff: 0, wantUndertime: 0,
			wantLate: 0, wantEarly: 0,
		},
		{
			name:     "malformed punch degrades to zero",
			actualIn: "7pm", actualOut: "25:99",
			schedIn: "19:00", schedOut: "04:00",
			wantBilled: 0, wantNightDiff: 0, wantUndertime: 0,
			wantLate: 0, wantEarly: 0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.wantBilled,
				BilledMinutes(c.actualIn, c.actualOut, c.schedIn, c.schedOut, testDate), "billed")
			assert.Equal(t, c.wantNightDiff,
				NightDiffHours(c.actualIn, c.actualOut, c.schedIn, c.schedOut, testDate), "night diff")
			assert.Equal(t, c.wantUndertime,
				UndertimeMinutes(c.actualIn, c.actualOut, c.schedIn, c.schedOut, testDate), "undertime")
			assert.Equal(t, c.wantLate, LateMinutes(c.actualIn, c.schedIn, testDate), "late")
			assert.Equal(t, c.wantEarly, EarlyMinutes(c.actualIn, c.schedIn, testDate), "early")
		})
	}
}

func TestBilledMinutesMalformedDate(t *testing.T) {
	assert.Equal(t, 0, BilledMinutes("08:00", "17:00", "08:00", "17:00", "14-08-2024"))
	assert.Equal(t, 0, BilledMinutes("08:00", "17:00", "08:00", "17:00", ""))
	assert.Equal(t, 0.0, NightDiffHours("22:00", "06:00", "22:00", "06:00", "not-a-date"))
	assert.Equal(t, 0, LateMinutes("08:30", "08:00", "not-a-date"))
}

// Billed-hours capping and night-window capping are independent rules; when a
// very short schedule sits at the window edge the night differential can
// legitimately exceed billed minutes. Upstream behaves the same way, so this
// pins it.
func TestNightDiffCanExceedBilled(t *testing.T) {
	billed := BilledMinutes("22:00", "01:00", "23:00", "01:00", testDate)
	nd := NightDiffHours("22:00", "01:00", "23:00", "01:00", testDate)
	assert.Equal(t, 120, billed)
	assert.Equal(t, 3.0, nd)
}

// Rollover is resolved per pair: a same-day actual interval paired with an
// overnight schedule must not inherit the schedule's day advance.
func TestRolloverResolvedPerPair(t *testing.T) {
	// Actual 23:00-02:00 rolls over, schedule 22:00-06:00 rolls over too,
	// but each from its own textual ordering.
	assert.Equal(t, 180, BilledMinutes("23:00", "02:00", "22:00", "06:00", testDate))
	// Data-entry artifact: schedule reads as overnight, actual is a plain
	// morning. The capped interval inverts and clamps to zero.
	assert.Equal(t, 0, BilledMinutes("08:00", "12:00", "22:00", "06:00", testDate))
}

// Sweeping the clock-out forward grows the effective interval minute for
// minute until the scheduled end, then the cap freezes it. Billed minutes are
// always that effective duration less its break tier, so the paid figure can
// dip at a tier boundary but the underlying interval never shrinks.
func TestBilledMinutesTracksEffectiveIntervalInActualOut(t *testing.T) {
	prevGross := -1
	for m := 8 * 60; m <= 23*60; m += 15 {
		out := fmt.Sprintf("%02d:%02d", m/60, m%60)
		billed := BilledMinutes("08:00", out, "08:00", "17:00", testDate)
		assert.GreaterOrEqual(t, billed, 0)

		gross := m - 8*60
		if gross > 540 {
			gross = 540 // capped to scheduled end
		}
		assert.Equal(t, gross-BreakMinutes(gross), billed, "actual out %s", out)
		assert.GreaterOrEqual(t, gross, prevGross, "actual out %s", out)
		prevGross = gross
	}
	// Past the scheduled end the value is pinned at the full-day figure.
	assert.Equal(t, 480, BilledMinutes("08:00", "22:00", "08:00", "17:00", testDate))
}

func TestBilledMinutesCappedInActualIn(t *testing.T) {
	// Clocking in ever earlier raises billed minutes only until the
	// scheduled start, then it is flat.
	base := BilledMinutes("08:00", "17:00", "08:00", "17:00", testDate)
	assert.Equal(t, base, BilledMinutes("07:30", "17:00", "08:00", "17:00", testDate))
	assert.Equal(t, base, BilledMinutes("06:00", "17:00", "08:00", "17:00", testDate))
	assert.Less(t, BilledMinutes("08:10", "17:00", "08:00", "17:00", testDate), base)
}

func TestLateEarlyComplementary(t *testing.T) {
	for m := 0; m < 24*60; m += 7 {
		in := fmt.Sprintf("%02d:%02d", m/60, m%60)
		late := LateMinutes(in, "09:00", testDate)
		early := EarlyMinutes(in, "09:00", testDate)
		assert.GreaterOrEqual(t, late, 0)
		assert.GreaterOrEqual(t, early, 0)
		assert.False(t, late > 0 && early > 0, "both positive at %s", in)
	}
	assert.Equal(t, 0, LateMinutes("09:00", "09:00", testDate))
	assert.Equal(t, 0, EarlyMinutes("09:00", "09:00", testDate))
}

// With no early/late distortion, billed + undertime reassembles the net
// scheduled duration.
func TestUndertimePlusBilledIsNetScheduled(t *testing.T) {
	const schedIn, schedOut = "08:00", "17:00" // 540 gross, 480 net
	for m := 0; m <= 540; m += 30 {
		out := fmt.Sprintf("%02d:%02d", (480+m)/60, (480+m)%60)
		billed := BilledMinutes(schedIn, out, schedIn, schedOut, testDate)
		undertime := UndertimeMinutes(schedIn, out, schedIn, schedOut, testDate)
		assert.Equal(t, 480, billed+undertime, "actual out %s", out)
	}
}

func TestCalculatorsAreReferentiallyTransparent(t *testing.T) {
	first := NightDiffHours("18:40", "04:05", "19:00", "04:00", testDate)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, NightDiffHours("18:40", "04:05", "19:00", "04:00", testDate))
	}
}
