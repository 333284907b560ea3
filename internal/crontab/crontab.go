// Package crontab reads schedule entries from crontab-style text.
//
// Each non-blank line holds five schedule fields followed by an optional
// command. Lines starting with '#' and environment assignments are skipped.
// Field values are not validated here; see package field.
package crontab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Tiliavir/foretab/internal/model"
)

var (
	// ErrTooFewFields is returned for a line with fewer than five fields.
	ErrTooFewFields = errors.New("expected 5 schedule fields")
	// ErrUnsupported is returned for @-descriptors such as @daily.
	ErrUnsupported = errors.New("unsupported schedule syntax")
)

// ParseLine splits a single schedule line into an Entry. Anything after the
// fifth field becomes the command, joined by single spaces.
func ParseLine(line string) (model.Entry, error) {
	fields := strings.Fields(line)
	if len(fields) > 0 && strings.HasPrefix(fields[0], "@") {
		return model.Entry{}, fmt.Errorf("%w: descriptor %q", ErrUnsupported, fields[0])
	}
	if len(fields) < 5 {
		return model.Entry{}, fmt.Errorf("%w, got %d in %q", ErrTooFewFields, len(fields), strings.TrimSpace(line))
	}

	entry := model.NewEntry(fields[0], fields[1], fields[2], fields[3], fields[4])
	entry.Command = strings.Join(fields[5:], " ")
	return entry, nil
}

// Parse reads every schedule line from r, in order.
func Parse(r io.Reader) ([]model.Entry, error) {
	var entries []model.Entry
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || isAssignment(line) {
			continue
		}

		entry, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		entry.Line = n
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading crontab: %w", err)
	}
	return entries, nil
}

// Load reads the crontab file at path.
func Load(path string) ([]model.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening crontab %s: %w", path, err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// isAssignment reports whether line looks like NAME=value. The first word
// must contain '=' and no schedule characters before it.
func isAssignment(line string) bool {
	word, _, _ := strings.Cut(line, " ")
	name, _, ok := strings.Cut(word, "=")
	if !ok || name == "" {
		return false
	}
	for _, c := range name {
		if !(c == '_' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return !(name[0] >= '0' && name[0] <= '9')
}
