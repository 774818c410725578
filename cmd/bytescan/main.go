package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/five82/bytescan/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("bytescan", pflag.ContinueOnError)
	flags.Usage = func() { usage(flags) }

	configPath := flags.String("config", "", "config path (default ~/.config/bytescan/config.toml)")
	prefsPath := flags.String("prefs", "", "viewer prefs path (default ~/.config/bytescan/prefs.toml)")
	lines := flags.IntP("lines", "n", 0, "show the last N lines of each source (0 shows all)")
	maxBytes := flags.Int("max-bytes", 0, "cut lines longer than this many bytes (0 disables)")
	width := flags.IntP("width", "w", 0, "clamp rows to this many cells (0 disables)")
	hex := flags.BoolP("hex", "x", false, "always render as hex dump")
	tui := flags.BoolP("tui", "t", false, "open the interactive viewer")
	follow := flags.BoolP("follow", "f", false, "keep rescanning sources (requires --tui)")
	pollSeconds := flags.Int("poll", 0, "rescan interval in seconds (default 2)")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "bytescan: %v\n", err)
		return 2
	}

	if *tui && !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "bytescan: --tui needs a terminal on stdout")
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Sources:    flags.Args(),
		Hex:        *hex,
		Follow:     *follow,
		TUI:        *tui,
	}
	// Unset flags keep the configured values.
	if flags.Changed("lines") {
		opts.Lines = lines
	}
	if flags.Changed("max-bytes") {
		opts.MaxBytes = maxBytes
	}
	if flags.Changed("width") {
		opts.Width = width
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = time.Duration(poll) * time.Second
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "bytescan: %v\n", err)
		return 1
	}
	return 0
}

func usage(flags *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `bytescan classifies the bytes of log files as UTF-8, control or binary.

Usage:
  bytescan [flags] <path>...

Use "-" as a path to read standard input.

Flags:
%s`, flags.FlagUsages())
}
