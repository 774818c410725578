package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "bytescan")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("tail_lines = 12\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TailLines != 12 {
		t.Fatalf("TailLines = %d, want 12", cfg.TailLines)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	path := writeConfig(t, `
max_bytes = 128
binary_threshold = 50.5
tail_lines = 0
width = 100
hex_row_bytes = 8
log_level = "  DEBUG "
log_format = "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Config{
		MaxBytes:        128,
		BinaryThreshold: 50.5,
		TailLines:       0,
		Width:           100,
		HexRowBytes:     8,
		LogLevel:        "debug",
		LogFormat:       "json",
	}
	if cfg != want {
		t.Fatalf("Load = %+v, want %+v", cfg, want)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level = "   "
log_format = ""
width = -3
hex_row_bytes = 0
max_bytes = -1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_ThresholdOutOfRangeFails(t *testing.T) {
	path := writeConfig(t, "binary_threshold = 150\n")
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want range error")
	}
	if !strings.Contains(err.Error(), "binary_threshold") {
		t.Fatalf("Load error = %q, want it to mention binary_threshold", err.Error())
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `max_bytes = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
