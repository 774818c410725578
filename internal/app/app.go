package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/five82/bytescan/internal/config"
	"github.com/five82/bytescan/internal/logging"
	"github.com/five82/bytescan/internal/prefs"
	"github.com/five82/bytescan/internal/render"
	"github.com/five82/bytescan/internal/state"
	"github.com/five82/bytescan/internal/ui"
)

// Options configure a bytescan run. Nil overrides keep the configured value.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/bytescan/prefs.toml
	Sources    []string

	Lines     *int
	MaxBytes  *int
	Width     *int
	Hex       bool
	Follow    bool
	TUI       bool
	PollEvery time.Duration

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run scans the sources and prints them, or opens the viewer when TUI is set.
func Run(ctx context.Context, opts Options) error {
	if len(opts.Sources) == 0 {
		return errors.New("no sources given")
	}
	if opts.Follow && !opts.TUI {
		return errors.New("--follow requires --tui")
	}

	sources, err := ExpandSources(opts.Sources)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	logOut := opts.Stderr
	if opts.TUI {
		// The viewer owns the terminal; failures show up in its header.
		logOut = io.Discard
	}
	logger := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)
	userPrefs := prefs.Load(opts.PrefsPath)

	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	store := &state.Store{}
	scanner := &Scanner{
		Store:     store,
		Logger:    logger,
		TailLines: cfg.TailLines,
		Stdin:     stdin,
	}
	failed, err := scanner.ScanAll(ctx, sources)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	renderOpts := render.Options{
		MaxBytes:        cfg.MaxBytes,
		BinaryThreshold: cfg.BinaryThreshold,
		Hex:             opts.Hex,
		Width:           cfg.Width,
		HexRowBytes:     cfg.HexRowBytes,
	}

	if !opts.TUI {
		stdout := opts.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		renderer := render.New(render.GetTheme(userPrefs.Theme), renderOpts)
		if err := Print(stdout, renderer, store.Snapshot()); err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d sources failed", failed, len(sources))
		}
		return nil
	}

	interval := opts.PollEvery
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if opts.Follow {
		// stdin cannot be read twice
		files := slices.DeleteFunc(slices.Clone(sources), func(s string) bool { return s == StdinSource })
		if len(files) > 0 {
			if err := StartWatcher(ctx, scanner, files); err != nil {
				logger.Warn("file watch unavailable, polling instead", "error", err)
				StartPoller(ctx, scanner, files, interval)
			}
		}
	}

	return ui.Run(ctx, ui.Options{
		Store:        store,
		Render:       renderOpts,
		ThemeName:    userPrefs.Theme,
		HexMode:      opts.Hex || userPrefs.HexMode,
		PrefsPath:    opts.PrefsPath,
		RefreshEvery: interval,
	})
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.Lines != nil {
		cfg.TailLines = *opts.Lines
	}
	if opts.MaxBytes != nil && *opts.MaxBytes >= 0 {
		cfg.MaxBytes = *opts.MaxBytes
	}
	if opts.Width != nil && *opts.Width >= 0 {
		cfg.Width = *opts.Width
	}
}
