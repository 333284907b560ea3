package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/Tiliavir/foretab/internal/model"
)

func TestCsvEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"with space", "with space"},
		{"with,comma", `"with,comma"`},
		{`with"quote`, `"with""quote"`},
		{"with\nnewline", "\"with\nnewline\""},
		{"with\rreturn", "\"with\rreturn\""},
		{"", ""},
	}
	for _, tt := range tests {
		got := csvEscape(tt.input)
		if got != tt.want {
			t.Errorf("csvEscape(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func sampleOccurrences() []model.Occurrence {
	e := model.NewEntry("0,30", "9", "*", "*", "*")
	e.Command = "echo hi, there"
	return []model.Occurrence{
		{At: time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC), Entry: e},
		{At: time.Date(2024, 2, 28, 9, 30, 0, 0, time.UTC), Entry: e},
		{At: time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC), Entry: e},
	}
}

func render(t *testing.T, format string, occ []model.Occurrence) string {
	t.Helper()
	r, err := rendererFor(format)
	if err != nil {
		t.Fatalf("rendererFor(%q): %v", format, err)
	}
	var buf bytes.Buffer
	if err := r(&buf, occ); err != nil {
		t.Fatalf("render %s: %v", format, err)
	}
	return buf.String()
}

func TestRenderFormats(t *testing.T) {
	occ := sampleOccurrences()
	tests := []struct {
		format string
		want   string
	}{
		{"plain", "2024-02-28 09:00:00\n2024-02-28 09:30:00\n2024-02-29 09:00:00\n"},
		{"csv", "date,time,schedule,command\n" +
			"2024-02-28,09:00,\"0,30 9 * * *\",\"echo hi, there\"\n" +
			"2024-02-28,09:30,\"0,30 9 * * *\",\"echo hi, there\"\n" +
			"2024-02-29,09:00,\"0,30 9 * * *\",\"echo hi, there\"\n"},
		{"md", "2024-02-28 (Wed, 2024-W09)\n" +
			"  09:00  echo hi, there\n" +
			"  09:30  echo hi, there\n" +
			"\n" +
			"2024-02-29 (Thu, 2024-W09)\n" +
			"  09:00  echo hi, there\n" +
			"--------------------------------\n" +
			"3 timestamps\n"},
	}
	for _, tt := range tests {
		if got := render(t, tt.format, occ); got != tt.want {
			t.Errorf("format %s:\n got: %q\nwant: %q", tt.format, got, tt.want)
		}
	}
}

func TestRenderYAML(t *testing.T) {
	var got []record
	if err := yaml.Unmarshal([]byte(render(t, "yaml", sampleOccurrences())), &got); err != nil {
		t.Fatalf("yaml output does not parse: %v", err)
	}
	want := records(sampleOccurrences())
	if len(got) != len(want) {
		t.Fatalf("yaml records = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("yaml record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRenderJSON(t *testing.T) {
	got := render(t, "JSON", sampleOccurrences()[:1])
	want := `[
  {
    "time": "2024-02-28T09:00:00",
    "schedule": "0,30 9 * * *",
    "command": "echo hi, there"
  }
]
`
	if got != want {
		t.Errorf("json:\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := render(t, "md", nil); got != "No timestamps found.\n" {
		t.Errorf("md empty = %q", got)
	}
	if got := render(t, "json", nil); got != "[]\n" {
		t.Errorf("json empty = %q", got)
	}
	if got := render(t, "plain", nil); got != "" {
		t.Errorf("plain empty = %q", got)
	}
}

func TestRendererForUnknown(t *testing.T) {
	_, err := rendererFor("xml")
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Errorf("rendererFor(xml) error = %v", err)
	}
}
