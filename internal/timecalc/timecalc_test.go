package timecalc_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Tiliavir/foretab/internal/timecalc"
)

func TestParseDate(t *testing.T) {
	got, err := timecalc.ParseDate("2010-02-17")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2010, 2, 17, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
}

func TestParseDateUnpadded(t *testing.T) {
	want := time.Date(2010, 2, 7, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2010-2-7", "2010-02-7", "2010-2-07", "2010-02-07"} {
		got, err := timecalc.ParseDate(s)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", s, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"", "2010/02/17", "17-02-2010", "2010-13-01", "2010-02-30", "10-02-17", "2010-002-17", "yesterday"} {
		_, err := timecalc.ParseDate(s)
		if !errors.Is(err, timecalc.ErrDateFormat) {
			t.Errorf("ParseDate(%q) error = %v, want ErrDateFormat", s, err)
		}
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-02-23", 0}, // Monday
		{"2026-02-24", 1},
		{"2026-02-27", 4}, // Friday
		{"2026-03-01", 6}, // Sunday
		{"2010-02-17", 2}, // Wednesday
	}
	for _, tt := range tests {
		d, err := timecalc.ParseDate(tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := timecalc.Weekday(d); got != tt.want {
			t.Errorf("Weekday(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestWalkDays(t *testing.T) {
	from := time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	var got []string
	timecalc.WalkDays(from, to, func(d time.Time) {
		got = append(got, d.Format(timecalc.DateLayout))
	})
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}
	if len(got) != len(want) {
		t.Fatalf("WalkDays visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("WalkDays[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	calls := 0
	timecalc.WalkDays(to, from, func(time.Time) { calls++ })
	if calls != 0 {
		t.Errorf("WalkDays on reversed range called fn %d times", calls)
	}
}

func TestDaysInRange(t *testing.T) {
	from := time.Date(2010, 2, 17, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		to   time.Time
		want int
	}{
		{from, 1},
		{time.Date(2010, 2, 25, 0, 0, 0, 0, time.UTC), 9},
		{time.Date(2010, 2, 16, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2011, 2, 16, 0, 0, 0, 0, time.UTC), 365},
	}
	for _, tt := range tests {
		if got := timecalc.DaysInRange(from, tt.to); got != tt.want {
			t.Errorf("DaysInRange(%s) = %d, want %d", tt.to.Format(timecalc.DateLayout), got, tt.want)
		}
	}
}

func TestISOWeekLabel(t *testing.T) {
	fri := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	got := timecalc.ISOWeekLabel(fri)
	if got != "2026-W09" {
		t.Errorf("ISOWeekLabel = %q, want %q", got, "2026-W09")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	if !timecalc.SameDay(a, b) {
		t.Error("SameDay: expected same day for a and b")
	}
	if timecalc.SameDay(a, c) {
		t.Error("SameDay: expected different day for a and c")
	}
}
