package model

import (
	"strings"
	"time"
)

// Entry is one cron schedule: the raw text of its five fields plus the
// command it runs, if any.
type Entry struct {
	Minute     string
	Hour       string
	DayOfMonth string
	Month      string
	DayOfWeek  string
	Command    string
	// Line is the 1-based line number in the source file, 0 when the entry
	// did not come from a file.
	Line int
}

// NewEntry builds an Entry from the five fields in crontab column order.
func NewEntry(minute, hour, dom, month, dow string) Entry {
	return Entry{Minute: minute, Hour: hour, DayOfMonth: dom, Month: month, DayOfWeek: dow}
}

// Schedule returns the five schedule fields joined by single spaces.
func (e Entry) Schedule() string {
	return strings.Join([]string{e.Minute, e.Hour, e.DayOfMonth, e.Month, e.DayOfWeek}, " ")
}

func (e Entry) String() string {
	if e.Command == "" {
		return e.Schedule()
	}
	return e.Schedule() + " " + e.Command
}

// Occurrence is a single timestamp produced by an entry.
type Occurrence struct {
	At    time.Time
	Entry Entry
}
