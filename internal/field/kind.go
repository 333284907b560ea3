package field

import (
	"fmt"
	"strings"
)

// Kind identifies one of the five cron schedule fields.
type Kind int

const (
	Minute Kind = iota
	Hour
	DayOfMonth
	Month
	DayOfWeek
)

// Kinds lists every field kind in crontab column order.
var Kinds = []Kind{Minute, Hour, DayOfMonth, Month, DayOfWeek}

var kindNames = [...]struct {
	short, long string
}{
	Minute:     {"m", "minute"},
	Hour:       {"h", "hour"},
	DayOfMonth: {"dom", "day-of-month"},
	Month:      {"mon", "month"},
	DayOfWeek:  {"dow", "day-of-week"},
}

// Domain is the inclusive interval of legal values for a field kind.
type Domain struct {
	Min int
	Max int
}

// Contains reports whether v lies within the domain.
func (d Domain) Contains(v int) bool {
	return v >= d.Min && v <= d.Max
}

// Values returns every value of the domain in ascending order.
func (d Domain) Values() Set {
	s := make(Set, 0, d.Max-d.Min+1)
	for v := d.Min; v <= d.Max; v++ {
		s = append(s, v)
	}
	return s
}

// Day of week follows the Monday=0 convention, see timecalc.Weekday.
var domains = [...]Domain{
	Minute:     {0, 59},
	Hour:       {0, 23},
	DayOfMonth: {1, 31},
	Month:      {1, 12},
	DayOfWeek:  {0, 6},
}

func (k Kind) valid() bool { return k >= Minute && k <= DayOfWeek }

// Domain returns the legal value interval for k.
func (k Kind) Domain() Domain {
	if !k.valid() {
		panic(fmt.Sprintf("field: unknown kind %d", int(k)))
	}
	return domains[k]
}

// String returns the long name, e.g. "day-of-month".
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k].long
}

// Short returns the abbreviated name, e.g. "dom".
func (k Kind) Short() string {
	if !k.valid() {
		return k.String()
	}
	return kindNames[k].short
}

func (k Kind) domainMessage() string {
	d := k.Domain()
	return fmt.Sprintf("each %s value must be between %d and %d", k.Short(), d.Min, d.Max)
}

// ParseKind resolves a short ("dom") or long ("day-of-month") kind name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds {
		if name == kindNames[k].short || name == kindNames[k].long {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown field kind %q (want one of m, h, dom, mon, dow)", name)
}
