package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/Tiliavir/foretab/internal/dates"
)

// Config is the root configuration for foretab, stored in
// ~/.foretab/config.json. The file may contain // and /* */ comments and
// trailing commas.
type Config struct {
	Range RangeConfig `json:"range"`
	// LegacyMinuteAlias parses the minute field from the hour field text.
	LegacyMinuteAlias bool `json:"legacy_minute_alias"`
	// RejectReversedRange makes an end date before the start date an error.
	RejectReversedRange bool `json:"reject_reversed_range"`
	// Format is the default output format: md, plain, csv, json or yaml.
	Format string `json:"format"`
	// LogLevel is a zerolog level name.
	LogLevel string `json:"log_level"`
}

// RangeConfig holds the default date range, both ends inclusive, YYYY-MM-DD.
type RangeConfig struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

const (
	// DefaultStart and DefaultEnd are used when no range is configured.
	DefaultStart = dates.DefaultStart
	DefaultEnd   = dates.DefaultEnd
	// DefaultFormat is the output format used when none is configured.
	DefaultFormat = "md"
	// DefaultLogLevel keeps stderr quiet unless something goes wrong.
	DefaultLogLevel = "warn"
)

// Default returns a Config pre-filled with the built-in defaults.
func Default() Config {
	return Config{
		Range:    RangeConfig{Start: DefaultStart, End: DefaultEnd},
		Format:   DefaultFormat,
		LogLevel: DefaultLogLevel,
	}
}

// configTemplate is the annotated config written on first run.
const configTemplate = `// foretab configuration – ~/.foretab/config.json
//
// All settings are optional; command line flags override them.
{
  // Default date range for "foretab dates", both ends inclusive (YYYY-MM-DD).
  "range": {
    "start": "2010-02-17",
    "end": "2010-02-25"
  },

  // Parse the minute field from the hour field text, as very old versions
  // of this tool did. Only useful to reproduce historical output.
  "legacy_minute_alias": false,

  // Fail instead of printing nothing when the end date is before the start.
  "reject_reversed_range": false,

  // Output format: md, plain, csv, json or yaml.
  "format": "md",

  // Log level on stderr: debug, info, warn, error.
  "log_level": "warn",
}
`

// FilePath returns the path to ~/.foretab/config.json.
func FilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".foretab", "config.json"), nil
}

// Load reads ~/.foretab/config.json, creating it with annotated defaults on
// first run.
func Load() (Config, error) {
	path, err := FilePath()
	if err != nil {
		return Default(), err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. Unlike Load, a missing file is an error.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	def := Default()
	if cfg.Range.Start == "" {
		cfg.Range.Start = def.Range.Start
	}
	if cfg.Range.End == "" {
		cfg.Range.End = def.Range.End
	}
	if cfg.Format == "" {
		cfg.Format = def.Format
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
