// Package dates lists the calendar timestamps selected by a cron schedule
// within an inclusive date range.
//
// Day matching follows cron: when both the day-of-month and the day-of-week
// field are restricted, a day matches if either of them does.
package dates

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tiliavir/foretab/internal/field"
	"github.com/Tiliavir/foretab/internal/model"
	"github.com/Tiliavir/foretab/internal/timecalc"
)

// Range used when the caller leaves start or end empty.
const (
	DefaultStart = "2010-02-17"
	DefaultEnd   = "2010-02-25"
)

// ErrReversedRange is returned when Config.RejectReversedRange is set and the
// end date lies before the start date.
var ErrReversedRange = errors.New("end date is before start date")

// Config tunes an Enumerator. The zero value is the standard behaviour.
type Config struct {
	// LegacyMinuteAlias parses the minute set from the hour field text, the
	// way early versions of the tool did.
	LegacyMinuteAlias bool

	// RejectReversedRange turns an end date before the start date into
	// ErrReversedRange instead of an empty result.
	RejectReversedRange bool
}

// Enumerator expands cron entries into timestamps. It holds no mutable state
// and may be shared between goroutines.
type Enumerator struct {
	cfg Config
	log zerolog.Logger
}

// New returns an Enumerator using cfg, logging parse details to log at debug
// level.
func New(cfg Config, log zerolog.Logger) *Enumerator {
	return &Enumerator{cfg: cfg, log: log}
}

var defaultEnumerator = New(Config{}, zerolog.Nop())

// ForEntry is equal to New(Config{}, zerolog.Nop()).ForEntry(entry, start, end).
func ForEntry(entry model.Entry, start, end string) ([]time.Time, error) {
	return defaultEnumerator.ForEntry(entry, start, end)
}

// dayRule decides which days of an allowed month match. It is derived from
// the raw day fields, not from the parsed sets: "1-31" restricts, "*" does
// not.
type dayRule int

const (
	everyDay     dayRule = iota // dom and dow are both wildcards
	weekdayOnly                 // dom wildcard, dow restricted
	monthDayOnly                // dom restricted, dow wildcard
	eitherDay                   // both restricted, either may match
)

func (r dayRule) String() string {
	switch r {
	case everyDay:
		return "every-day"
	case weekdayOnly:
		return "day-of-week"
	case monthDayOnly:
		return "day-of-month"
	default:
		return "day-of-month|day-of-week"
	}
}

func dayRuleFor(dom, dow string) dayRule {
	switch {
	case dom == field.Wildcard && dow == field.Wildcard:
		return everyDay
	case dom == field.Wildcard:
		return weekdayOnly
	case dow == field.Wildcard:
		return monthDayOnly
	default:
		return eitherDay
	}
}

type schedule struct {
	minutes, hours, doms, months, dows field.Set
	rule                               dayRule
}

func (s *schedule) matchesDay(day time.Time) bool {
	if !s.months.Contains(int(day.Month())) {
		return false
	}

	switch s.rule {
	case weekdayOnly:
		return s.dows.Contains(timecalc.Weekday(day))
	case monthDayOnly:
		return s.doms.Contains(day.Day())
	case eitherDay:
		return s.doms.Contains(day.Day()) || s.dows.Contains(timecalc.Weekday(day))
	default:
		return true
	}
}

func (e *Enumerator) parse(entry model.Entry) (*schedule, error) {
	minuteText := entry.Minute
	if e.cfg.LegacyMinuteAlias {
		minuteText = entry.Hour
	}

	var s schedule
	var err error
	if s.minutes, err = field.Parse(field.Minute, minuteText); err != nil {
		return nil, err
	}
	if s.hours, err = field.Parse(field.Hour, entry.Hour); err != nil {
		return nil, err
	}
	if s.doms, err = field.Parse(field.DayOfMonth, entry.DayOfMonth); err != nil {
		return nil, err
	}
	if s.months, err = field.Parse(field.Month, entry.Month); err != nil {
		return nil, err
	}
	if s.dows, err = field.Parse(field.DayOfWeek, entry.DayOfWeek); err != nil {
		return nil, err
	}
	s.rule = dayRuleFor(entry.DayOfMonth, entry.DayOfWeek)
	return &s, nil
}

// ForEntry returns every timestamp in [start, end] selected by entry, ordered
// by day, then hour, then minute. start and end use the YYYY-MM-DD form and
// default to DefaultStart and DefaultEnd when empty.
//
// Any field or date error aborts the call, and no timestamps are returned.
func (e *Enumerator) ForEntry(entry model.Entry, start, end string) ([]time.Time, error) {
	s, err := e.parse(entry)
	if err != nil {
		return nil, err
	}

	if start == "" {
		start = DefaultStart
	}
	if end == "" {
		end = DefaultEnd
	}
	from, err := timecalc.ParseDate(start)
	if err != nil {
		return nil, err
	}
	to, err := timecalc.ParseDate(end)
	if err != nil {
		return nil, err
	}
	if to.Before(from) && e.cfg.RejectReversedRange {
		return nil, fmt.Errorf("%w: %s > %s", ErrReversedRange, start, end)
	}

	e.log.Debug().
		Str("entry", entry.Schedule()).
		Str("minutes", s.minutes.String()).
		Str("hours", s.hours.String()).
		Str("months", s.months.String()).
		Stringer("day_rule", s.rule).
		Bool("legacy_minute_alias", e.cfg.LegacyMinuteAlias).
		Msg("parsed entry")

	dates := []time.Time{}
	timecalc.WalkDays(from, to, func(day time.Time) {
		if !s.matchesDay(day) {
			return
		}
		year, month, dom := day.Date()
		for _, hour := range s.hours {
			for _, minute := range s.minutes {
				dates = append(dates, time.Date(year, month, dom, hour, minute, 0, 0, time.UTC))
			}
		}
	})

	e.log.Debug().
		Str("entry", entry.Schedule()).
		Int("days", timecalc.DaysInRange(from, to)).
		Int("timestamps", len(dates)).
		Msg("enumerated entry")
	return dates, nil
}

// Occurrences enumerates every entry over [start, end] and merges the results
// in ascending time order. Occurrences at the same instant keep the order of
// entries.
func (e *Enumerator) Occurrences(entries []model.Entry, start, end string) ([]model.Occurrence, error) {
	var all []model.Occurrence
	for i, entry := range entries {
		times, err := e.ForEntry(entry, start, end)
		if err != nil {
			if entry.Line > 0 {
				return nil, fmt.Errorf("line %d: %w", entry.Line, err)
			}
			return nil, fmt.Errorf("entry %d (%s): %w", i+1, entry.Schedule(), err)
		}
		for _, at := range times {
			all = append(all, model.Occurrence{At: at, Entry: entry})
		}
	}

	slices.SortStableFunc(all, func(a, b model.Occurrence) int {
		return a.At.Compare(b.At)
	})
	return all, nil
}
