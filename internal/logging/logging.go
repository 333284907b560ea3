// Package logging builds the console logger used by the command line tool.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps stdout results free of chatter unless asked for.
const DefaultLevel = "warn"

const consoleTimeFormat = "15:04:05.000"

// New returns a console logger writing to w at the named level. Unknown or
// empty level names fall back to DefaultLevel.
func New(w io.Writer, level string) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat}
	return zerolog.New(cw).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel maps a level name such as "debug" to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	fallback, _ := zerolog.ParseLevel(DefaultLevel)
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return fallback
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return fallback
	}
	return lvl
}
