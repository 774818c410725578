package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNew_JSONWithSource(t *testing.T) {
	var buf bytes.Buffer
	logger := WithSource(New(&buf, "debug", "json"), "app.log")
	logger.Debug("scanned", LinesKey, 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "scanned" || entry[SourceKey] != "app.log" || entry[LinesKey] != float64(3) {
		t.Fatalf("entry = %v, want msg/source/lines fields", entry)
	}
}

func TestNew_TextFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "text")
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Fatalf("warn message missing: %q", out)
	}
}
