package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestInitFiltersByLevel(t *testing.T) {
	defer Init(LevelWarn, FormatText, os.Stderr)

	var buf bytes.Buffer
	Init(LevelWarn, FormatText, &buf)

	Debug("hidden")
	Info("hidden too")
	Warn("shown", "lines", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "lines=3") {
		t.Errorf("expected warn record, got %q", out)
	}
	if strings.Contains(out, "time=") {
		t.Errorf("expected no timestamp, got %q", out)
	}
}

func TestInitJSON(t *testing.T) {
	defer Init(LevelWarn, FormatText, os.Stderr)

	var buf bytes.Buffer
	Init(LevelDebug, FormatJSON, &buf)
	Debug("joined", "in", 4, "out", 2)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON record, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "joined" || record["level"] != "DEBUG" {
		t.Errorf("unexpected record: %v", record)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"loud", LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q): expected %v, got %v", tt.input, tt.expected, level)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("expected json format, got %v (%v)", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatText {
		t.Errorf("expected text default, got %v (%v)", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Errorf("expected error for unknown format")
	}
}
