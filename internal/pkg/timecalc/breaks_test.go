package timecalc

import "testing"

func TestBreakMinutes(t *testing.T) {
	cases := []struct {
		gross int
		want  int
	}{
		{0, 0},
		{120, 0},
		{239, 0},
		{240, 30},
		{300, 30},
		{479, 30},
		{480, 60},
		{540, 60},
		{720, 60},
	}
	for _, c := range cases {
		got := BreakMinutes(c.gross)
		if got != c.want {
			t.Errorf("BreakMinutes(%d) = %d, want %d", c.gross, got, c.want)
		}
	}
}

func TestBreakHours(t *testing.T) {
	cases := []struct {
		gross float64
		want  float64
	}{
		{0, 0},
		{3.99, 0},
		{4, 0.5},
		{7.99, 0.5},
		{8, 1},
		{12, 1},
	}
	for _, c := range cases {
		got := breakHours(c.gross)
		if got != c.want {
			t.Errorf("breakHours(%v) = %v, want %v", c.gross, got, c.want)
		}
	}
}

func TestBreakMinutesNonDecreasing(t *testing.T) {
	prev := 0
	for gross := 0; gross <= 900; gross++ {
		b := BreakMinutes(gross)
		if b < prev {
			t.Fatalf("BreakMinutes decreased at gross=%d: %d -> %d", gross, prev, b)
		}
		prev = b
	}
}
