package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bytescan/internal/prefs"
	"github.com/five82/bytescan/internal/render"
	"github.com/five82/bytescan/internal/state"
)

const defaultRefresh = time.Second

// Options configure the viewer.
type Options struct {
	Store        *state.Store
	Render       render.Options
	ThemeName    string
	HexMode      bool
	PrefsPath    string // empty uses prefs.DefaultPath()
	RefreshEvery time.Duration
}

// Model is the root viewer state for Bubble Tea.
type Model struct {
	// Configuration
	store      *state.Store
	renderOpts render.Options
	prefsPath  string
	refresh    time.Duration

	// UI state
	theme    render.Theme
	hexMode  bool
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	notice   string

	// Data state
	snapshot state.Snapshot
	selected int
}

// New creates the viewer model.
func New(opts Options) Model {
	refresh := opts.RefreshEvery
	if refresh <= 0 || refresh > defaultRefresh {
		refresh = defaultRefresh
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		store:      opts.Store,
		renderOpts: opts.Render,
		prefsPath:  prefsPath,
		refresh:    refresh,
		theme:      render.GetTheme(opts.ThemeName),
		hexMode:    opts.HexMode,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.refresh)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, 0)
		}
		m.ready = true
		m.layout()
		m.updateViewport(false)
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.refresh))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.selected = min(m.selected, max(len(m.snapshot.Reports)-1, 0))
		m.layout()
		m.updateViewport(false)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = render.GetTheme(render.NextTheme(m.theme.Name))
		m.savePrefs()
		m.updateViewport(false)
		return m, nil

	case key.Matches(msg, m.keys.ToggleHex):
		m.hexMode = !m.hexMode
		m.savePrefs()
		m.updateViewport(true)
		return m, nil

	case key.Matches(msg, m.keys.NextSource):
		m.selectSource(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevSource):
		m.selectSource(-1)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	// Remaining navigation uses the viewport's own bindings.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) selectSource(delta int) {
	n := len(m.snapshot.Reports)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
	m.layout()
	m.updateViewport(true)
}

func (m *Model) savePrefs() {
	m.notice = ""
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, HexMode: m.hexMode}); err != nil {
		m.notice = fmt.Sprintf("save prefs: %v", err)
	}
}

// layout sizes the viewport to the space between header and footer.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	used := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderFooter())
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-used, 1)
}

// updateViewport re-renders the selected report. A viewport already at the
// bottom stays there so new lines stay in view.
func (m *Model) updateViewport(reset bool) {
	if !m.ready {
		return
	}
	follow := m.viewport.AtBottom()
	m.viewport.SetContent(m.renderContent())
	switch {
	case reset:
		m.viewport.GotoTop()
	case follow:
		m.viewport.GotoBottom()
	}
}

func (m Model) renderer() *render.Renderer {
	opts := m.renderOpts
	opts.Hex = m.hexMode
	if opts.Width <= 0 {
		opts.Width = m.width
	}
	return render.New(m.theme, opts)
}

func (m Model) current() (state.Report, bool) {
	if m.selected < 0 || m.selected >= len(m.snapshot.Reports) {
		return state.Report{}, false
	}
	return m.snapshot.Reports[m.selected], true
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil {
		return errors.New("ui requires a scan store")
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
