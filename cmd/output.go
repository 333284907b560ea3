package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"go.yaml.in/yaml/v3"

	"github.com/Tiliavir/foretab/internal/model"
	"github.com/Tiliavir/foretab/internal/timecalc"
)

type renderer func(w io.Writer, occurrences []model.Occurrence) error

var renderers = map[string]renderer{
	"md":    printMarkdown,
	"plain": printPlain,
	"csv":   printCSV,
	"json":  printJSON,
	"yaml":  printYAML,
}

func rendererFor(format string) (renderer, error) {
	r, ok := renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (want md, plain, csv, json or yaml)", format)
	}
	return r, nil
}

// record is the structured form of an occurrence for json and yaml output.
type record struct {
	Time     string `json:"time" yaml:"time"`
	Schedule string `json:"schedule" yaml:"schedule"`
	Command  string `json:"command,omitempty" yaml:"command,omitempty"`
}

func records(occurrences []model.Occurrence) []record {
	out := make([]record, len(occurrences))
	for i, o := range occurrences {
		out[i] = record{
			Time:     o.At.Format("2006-01-02T15:04:05"),
			Schedule: o.Entry.Schedule(),
			Command:  o.Entry.Command,
		}
	}
	return out
}

// printMarkdown groups occurrences by day.
func printMarkdown(w io.Writer, occurrences []model.Occurrence) error {
	if len(occurrences) == 0 {
		_, err := fmt.Fprintln(w, "No timestamps found.")
		return err
	}

	for i, o := range occurrences {
		if i == 0 || !timecalc.SameDay(occurrences[i-1].At, o.At) {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s (%s, %s)\n", o.At.Format(timecalc.DateLayout),
				o.At.Format("Mon"), timecalc.ISOWeekLabel(o.At))
		}
		line := "  " + o.At.Format("15:04")
		if o.Entry.Command != "" {
			line += "  " + o.Entry.Command
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w, "--------------------------------")
	noun := "timestamps"
	if len(occurrences) == 1 {
		noun = "timestamp"
	}
	_, err := fmt.Fprintf(w, "%s %s\n", humanize.Comma(int64(len(occurrences))), noun)
	return err
}

// printPlain writes one timestamp per line.
func printPlain(w io.Writer, occurrences []model.Occurrence) error {
	for _, o := range occurrences {
		if _, err := fmt.Fprintln(w, o.At.Format("2006-01-02 15:04:05")); err != nil {
			return err
		}
	}
	return nil
}

func printCSV(w io.Writer, occurrences []model.Occurrence) error {
	fmt.Fprintln(w, "date,time,schedule,command")
	for _, o := range occurrences {
		_, err := fmt.Fprintf(w, "%s,%s,%s,%s\n",
			o.At.Format(timecalc.DateLayout),
			o.At.Format("15:04"),
			csvEscape(o.Entry.Schedule()),
			csvEscape(o.Entry.Command),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func printJSON(w io.Writer, occurrences []model.Occurrence) error {
	data, err := json.MarshalIndent(records(occurrences), "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printYAML(w io.Writer, occurrences []model.Occurrence) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records(occurrences)); err != nil {
		return fmt.Errorf("error encoding YAML: %w", err)
	}
	return enc.Close()
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	// Escape internal double quotes by doubling them.
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
