// Package logging builds the slog logger used by bytescan.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Standard field keys.
const (
	SourceKey = "source"
	LinesKey  = "lines"
	BytesKey  = "bytes"
)

// New returns a logger writing to w (os.Stderr when nil) at the given level
// ("debug", "info", "warn", "error") in "text" or "json" format. Unknown
// values fall back to info and text.
func New(w io.Writer, level, format string) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// WithSource returns a logger tagged with the scanned source.
func WithSource(logger *slog.Logger, source string) *slog.Logger {
	return logger.With(SourceKey, source)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
