// Package field parses the text of a single cron schedule field into the set
// of integers it allows.
//
// A field is either the wildcard "*" or a comma separated list of tokens,
// where each token is a bare integer or a "low-high" range. Step syntax and
// names are not recognized.
package field

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Wildcard is the token that selects every legal value of a field.
const Wildcard = "*"

var (
	// ErrSyntax reports a malformed token.
	ErrSyntax = errors.New("invalid field syntax")
	// ErrRangeOrder reports a range whose low bound exceeds its high bound.
	ErrRangeOrder = errors.New("range low must be lower than range high")
	// ErrDomain reports a value outside the legal domain of its field.
	ErrDomain = errors.New("value out of range")
)

// Error is returned by Parse. It wraps one of ErrSyntax, ErrRangeOrder or
// ErrDomain.
type Error struct {
	Kind  Kind
	Token string
	Err   error

	msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s field: token %q: %s", e.Kind, e.Token, e.msg)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, token string, err error, msg string) *Error {
	return &Error{Kind: kind, Token: token, Err: err, msg: msg}
}

// Set is a sorted, duplicate-free list of field values.
type Set []int

// Contains reports whether v is a member of s.
func (s Set) Contains(v int) bool {
	_, ok := slices.BinarySearch(s, v)
	return ok
}

// String renders s in field syntax. Runs of three or more consecutive values
// collapse into a range, so Parse(kind, s.String()) yields s again.
func (s Set) String() string {
	var b strings.Builder
	for i := 0; i < len(s); {
		j := i
		for j+1 < len(s) && s[j+1] == s[j]+1 {
			j++
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		switch {
		case j-i >= 2:
			b.WriteString(strconv.Itoa(s[i]))
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(s[j]))
		case j == i+1:
			b.WriteString(strconv.Itoa(s[i]))
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(s[j]))
		default:
			b.WriteString(strconv.Itoa(s[i]))
		}
		i = j + 1
	}
	return b.String()
}

// MustParse is the same as Parse, but panics if there is an error.
func MustParse(kind Kind, text string) Set {
	s, err := Parse(kind, text)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse converts the text of one field into the ascending set of values it
// selects.
//
// Range bounds are checked against the domain of kind, the values between
// them are not.
func Parse(kind Kind, text string) (Set, error) {
	domain := kind.Domain()
	if text == Wildcard {
		return domain.Values(), nil
	}

	values := make(map[int]struct{})
	for _, token := range strings.Split(text, ",") {
		if strings.Contains(token, "-") {
			if strings.Count(token, "-") > 1 {
				return nil, newError(kind, token, ErrSyntax, "only one hyphen (-) per range field")
			}

			lowText, highText, _ := strings.Cut(token, "-")
			low, err := atoi(kind, token, lowText)
			if err != nil {
				return nil, err
			}
			high, err := atoi(kind, token, highText)
			if err != nil {
				return nil, err
			}

			if low > high {
				return nil, newError(kind, token, ErrRangeOrder, ErrRangeOrder.Error())
			}
			if !domain.Contains(low) || !domain.Contains(high) {
				return nil, newError(kind, token, ErrDomain, kind.domainMessage())
			}
			for v := low; v <= high; v++ {
				values[v] = struct{}{}
			}
			continue
		}

		v, err := atoi(kind, token, token)
		if err != nil {
			return nil, err
		}
		if !domain.Contains(v) {
			return nil, newError(kind, token, ErrDomain, kind.domainMessage())
		}
		values[v] = struct{}{}
	}

	set := make(Set, 0, len(values))
	for v := range values {
		set = append(set, v)
	}
	slices.Sort(set)
	return set, nil
}

// atoi accepts surrounding whitespace and a leading sign, so "1, 2" and
// "1 - 3" are valid field text.
func atoi(kind Kind, token, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, newError(kind, token, ErrSyntax, fmt.Sprintf("%q is not an integer", s))
	}
	return v, nil
}
