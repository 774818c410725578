package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/five82/bytescan/internal/logging"
	"github.com/five82/bytescan/internal/logtail"
	"github.com/five82/bytescan/internal/state"
)

// StdinSource names standard input on the command line.
const StdinSource = "-"

const maxParallelScans = 4

// Scanner reads sources, classifies their lines and records the result.
type Scanner struct {
	Store     *state.Store
	Logger    *slog.Logger
	TailLines int
	Stdin     io.Reader
}

// ScanAll scans sources concurrently and returns how many failed. Failures
// are recorded in the store; only cancellation is returned as an error.
func (s *Scanner) ScanAll(ctx context.Context, sources []string) (int, error) {
	s.Store.Register(sources...)

	var failed atomic.Int32
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelScans)
	for _, source := range sources {
		source := source
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.Scan(source); err != nil {
				failed.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(failed.Load()), err
	}
	return int(failed.Load()), nil
}

// Scan reads one source and updates its report.
func (s *Scanner) Scan(source string) error {
	logger := logging.WithSource(s.logger(), source)

	raw, err := s.read(source)
	if err != nil {
		s.Store.Update(source, nil, err)
		logger.Warn("scan failed", "error", err)
		return err
	}

	lines := logtail.Scan(raw)
	s.Store.Update(source, lines, nil)

	totals := state.TotalsOf(lines)
	logger.Debug("scanned",
		logging.LinesKey, totals.Lines,
		logging.BytesKey, totals.Bytes(),
		"percent_binary", totals.PercentBinary(),
	)
	return nil
}

func (s *Scanner) read(source string) ([][]byte, error) {
	if source == StdinSource {
		if s.Stdin == nil {
			return nil, fmt.Errorf("read stdin: no input attached")
		}
		return logtail.ReadFrom(s.Stdin, s.TailLines)
	}
	if _, err := os.Stat(source); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("scan %s: %w", source, os.ErrNotExist)
		}
		return nil, fmt.Errorf("stat %s: %w", source, err)
	}
	return logtail.Read(source, s.TailLines)
}

func (s *Scanner) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
