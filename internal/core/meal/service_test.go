package meal

import (
	"testing"
	"time"
)

func TestParseDayRangeISO(t *testing.T) {
	start, end, err := parseDayRange("2025-12-18")
	if err != nil {
		t.Fatalf("parseDayRange error: %v", err)
	}

	wantStart := time.Date(2025, time.December, 18, 0, 0, 0, 0, time.Local)
	if !start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", start, wantStart)
	}
	if end.Day() != 18 || end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Fatalf("unexpected end of day: %v", end)
	}
}

func TestParseDayRangeBR(t *testing.T) {
	start, _, err := parseDayRange("18/12/2025")
	if err != nil {
		t.Fatalf("parseDayRange error: %v", err)
	}

	wantStart := time.Date(2025, time.December, 18, 0, 0, 0, 0, time.Local)
	if !start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", start, wantStart)
	}
}

func TestParseDayRangeTrimsInput(t *testing.T) {
	if _, _, err := parseDayRange("  2025-01-02  "); err != nil {
		t.Fatalf("expected padded date accepted, got %v", err)
	}
}

func TestParseDayRangeInvalid(t *testing.T) {
	cases := []string{"", "2025/12/18", "18-12-2025", "yesterday", "2025-13"}
	for _, in := range cases {
		if _, _, err := parseDayRange(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestCalcItemCalories(t *testing.T) {
	cases := []struct {
		calPer100g int
		grams      int
		want       int
	}{
		{128, 100, 128},
		{128, 200, 256},
		{128, 150, 192},
		{333, 50, 167}, // 166.5 rounds up
		{0, 500, 0},
	}

	for _, tc := range cases {
		if got := calcItemCalories(tc.calPer100g, tc.grams); got != tc.want {
			t.Fatalf("calcItemCalories(%d, %d) = %d, want %d",
				tc.calPer100g, tc.grams, got, tc.want)
		}
	}
}
