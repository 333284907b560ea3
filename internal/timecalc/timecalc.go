package timecalc

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the format used to print range boundaries and days.
const DateLayout = "2006-01-02"

// parseLayout also accepts a month or day without the leading zero.
const parseLayout = "2006-1-2"

// ErrDateFormat is returned when a date string does not match DateLayout.
var ErrDateFormat = errors.New("invalid date")

// ParseDate parses s as YYYY-MM-DD and returns midnight of that day in UTC.
// Month and day may omit the leading zero, as in 2010-2-7.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(parseLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: want YYYY-MM-DD", ErrDateFormat, s)
	}
	return t, nil
}

// Weekday returns the day of the week with Monday=0 … Sunday=6.
func Weekday(t time.Time) int {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	return (int(t.Weekday()) + 6) % 7
}

// WalkDays calls fn for every calendar day in [from, to] inclusive, in
// ascending order. Nothing is called when to is before from.
func WalkDays(from, to time.Time, fn func(day time.Time)) {
	from, to = StartOfDay(from), StartOfDay(to)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// DaysInRange returns the number of calendar days in [from, to] inclusive,
// or 0 when to is before from.
func DaysInRange(from, to time.Time) int {
	from, to = StartOfDay(from), StartOfDay(to)
	if to.Before(from) {
		return 0
	}
	// Dates are UTC midnights, so every day is exactly 24h.
	return int(to.Sub(from).Hours()/24) + 1
}

// ISOWeekLabel returns a label like "2026-W09".
func ISOWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
