package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	if err := os.WriteFile(path, []byte("ok\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	isolate := []string{
		"--config", filepath.Join(dir, "config.toml"),
		"--prefs", filepath.Join(dir, "prefs.toml"),
	}

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"--help"}, 0},
		{"unknown_flag", []string{"--nope"}, 2},
		{"no_sources", isolate, 1},
		{"follow_without_tui", append([]string{"--follow", path}, isolate...), 1},
		{"missing_file", append([]string{filepath.Join(dir, "missing.log")}, isolate...), 1},
		{"scan", append([]string{"-n", "5", "--max-bytes", "16", path}, isolate...), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := run(tc.args); got != tc.want {
				t.Fatalf("run(%q) = %d, want %d", tc.args, got, tc.want)
			}
		})
	}
}
