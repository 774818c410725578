// Package app wires configuration, scanning, rendering and the viewer into a
// single run.
//
// # Startup Sequence
//
//  1. Validate arguments (at least one source; --follow only with --tui)
//  2. Load config and apply command-line overrides
//  3. Build the slog logger from the configured level and format
//  4. Load viewer preferences (theme, hex mode)
//  5. Expand glob patterns and scan every source concurrently into a state.Store
//  6. Print the rendered reports, or start following and open the viewer
//
// # Scanning
//
// Scanner reads each source with logtail (the last TailLines lines, or all of
// them when TailLines is zero) and classifies every line. At most four
// sources are read at once. A failed source records its error in the store
// and does not stop the others; the run exits non-zero afterwards.
//
// The source "-" reads standard input. It is read once and never followed.
// Sources containing *, ?, [ or { are doublestar globs ("logs/**/*.log");
// a glob matching nothing is kept as-is and reported missing.
//
// # Following
//
// In follow mode StartWatcher uses fsnotify on each source's directory and
// rescans a file shortly after it is written, created or renamed, which
// covers log rotation. When the watch cannot be set up (missing directory,
// no inotify) StartPoller rescans every interval instead. When every source
// fails, the wait doubles per consecutive failure up to 30 seconds:
//
//	failures: 0    1    2    3     4+
//	wait:     2s   4s   8s   16s   30s
//
// One successful poll resets the backoff. A --poll interval longer than 30
// seconds is used as-is and never shortened by the backoff.
package app
