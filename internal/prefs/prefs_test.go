package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load("")
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.HexMode {
		t.Fatalf("HexMode = true, want false")
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "bytescan")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	body := "theme = \"Slate\"\nhex_mode = true\n"
	if err := os.WriteFile(filepath.Join(prefsDir, "prefs.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load("")
	if p.Theme != "Slate" || !p.HexMode {
		t.Fatalf("Load = %+v, want Slate with hex mode", p)
	}
}

func TestSave_RoundTripsThroughLoad(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	if err := Save(prefsFile, Prefs{Theme: "Kanagawa", HexMode: true}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded := Load(prefsFile)
	if loaded.Theme != "Kanagawa" || !loaded.HexMode {
		t.Fatalf("Load = %+v, want Kanagawa with hex mode", loaded)
	}
}

func TestLoad_EmptyThemeFallsBackToDefault(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"  \"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if p := Load(prefsFile); p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if p := Load(prefsFile); p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}
