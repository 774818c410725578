package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/bytescan/internal/logtail"
	"github.com/five82/bytescan/internal/prefs"
	"github.com/five82/bytescan/internal/render"
	"github.com/five82/bytescan/internal/state"
)

func newTestModel(t *testing.T, store *state.Store) (Model, string) {
	t.Helper()
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{
		Store:     store,
		Render:    render.Options{BinaryThreshold: 50},
		PrefsPath: prefsPath,
		ThemeName: "Nightfox",
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 30})
	m = update(t, m, snapshotMsg(store.Snapshot()))
	return m, prefsPath
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func twoSourceStore() *state.Store {
	store := &state.Store{}
	store.Register("a.log", "b.log")
	store.Update("a.log", logtail.Scan([][]byte{[]byte("hello")}), nil)
	store.Update("b.log", logtail.Scan([][]byte{[]byte("bin\x00\xff")}), nil)
	return store
}

func TestModel_ShowsSelectedSource(t *testing.T) {
	m, _ := newTestModel(t, twoSourceStore())

	view := ansi.Strip(m.View())
	for _, want := range []string{"bytescan", "[1/2]", "a.log", "1 │ hello"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "b.log") {
		t.Fatalf("view shows unselected source:\n%s", view)
	}
}

func TestModel_SourceNavigationWraps(t *testing.T) {
	m, _ := newTestModel(t, twoSourceStore())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.selected != 1 {
		t.Fatalf("selected after tab = %d, want 1", m.selected)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, `bin\x00\xff`) {
		t.Fatalf("view after tab missing b.log content:\n%s", view)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.selected != 0 {
		t.Fatalf("selected after second tab = %d, want 0", m.selected)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.selected != 1 {
		t.Fatalf("selected after shift+tab = %d, want 1", m.selected)
	}
}

func TestModel_ToggleHexSavesPrefs(t *testing.T) {
	m, prefsPath := newTestModel(t, twoSourceStore())

	m = update(t, m, runes("x"))
	if !m.hexMode {
		t.Fatalf("hexMode = false after x")
	}
	if got := prefs.Load(prefsPath); !got.HexMode {
		t.Fatalf("saved prefs = %+v, want hex_mode on", got)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "00000000") {
		t.Fatalf("hex view missing offset column:\n%s", view)
	}

	m = update(t, m, runes("x"))
	if m.hexMode {
		t.Fatalf("hexMode = true after second x")
	}
}

func TestModel_CycleThemeSavesPrefs(t *testing.T) {
	m, prefsPath := newTestModel(t, twoSourceStore())

	m = update(t, m, runes("t"))
	want := render.NextTheme("Nightfox")
	if m.theme.Name != want {
		t.Fatalf("theme = %q, want %q", m.theme.Name, want)
	}
	if got := prefs.Load(prefsPath); got.Theme != want {
		t.Fatalf("saved theme = %q, want %q", got.Theme, want)
	}
}

func TestModel_StaleSource(t *testing.T) {
	store := twoSourceStore()
	failure := errors.New("permission denied")
	store.Update("a.log", nil, failure)

	m, _ := newTestModel(t, store)
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "read failed") || !strings.Contains(view, "error: permission denied") {
		t.Fatalf("view missing failure state:\n%s", view)
	}
	if !strings.Contains(view, "1 │ hello") {
		t.Fatalf("previous lines dropped after failure:\n%s", view)
	}

	store.Update("a.log", nil, failure)
	m = update(t, m, snapshotMsg(store.Snapshot()))
	if view := ansi.Strip(m.View()); !strings.Contains(view, "STALE") {
		t.Fatalf("view missing stale badge:\n%s", view)
	}
}

func TestModel_SnapshotClampsSelection(t *testing.T) {
	m, _ := newTestModel(t, twoSourceStore())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m = update(t, m, snapshotMsg(state.Snapshot{}))
	if m.selected != 0 {
		t.Fatalf("selected = %d, want 0 after sources vanish", m.selected)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "no sources") {
		t.Fatalf("view missing empty state:\n%s", view)
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, twoSourceStore())
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("q returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q cmd did not quit")
	}
}

func TestModel_LoadingBeforeResize(t *testing.T) {
	m := New(Options{Store: &state.Store{}})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before resize = %q, want Loading...", got)
	}
}

func TestNew_ClampsRefresh(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want time.Duration
	}{
		{0, time.Second},
		{-time.Second, time.Second},
		{200 * time.Millisecond, 200 * time.Millisecond},
		{5 * time.Second, time.Second},
	}
	for _, tc := range cases {
		if got := New(Options{RefreshEvery: tc.in}).refresh; got != tc.want {
			t.Errorf("refresh(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRun_RequiresStore(t *testing.T) {
	if err := Run(context.Background(), Options{}); err == nil {
		t.Fatalf("Run without store returned nil error")
	}
}
