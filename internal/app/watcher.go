package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// StartWatcher rescans a source whenever its file changes. It watches the
// parent directories so rotated and recreated files are picked up. Bursts of
// events are coalesced into one scan per source. It returns immediately; the
// watch stops when ctx is done.
func StartWatcher(ctx context.Context, scanner *Scanner, sources []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	watched := make(map[string]string, len(sources)) // absolute path -> source
	dirs := make(map[string]bool)
	for _, source := range sources {
		abs, err := filepath.Abs(source)
		if err != nil {
			_ = w.Close()
			return fmt.Errorf("resolve %s: %w", source, err)
		}
		watched[abs] = source

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	go func() {
		defer func() { _ = w.Close() }()
		logger := scanner.logger()

		pending := make(map[string]bool)
		var flush <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.Events:
				if !ok {
					return
				}
				source, ok := watched[filepath.Clean(event.Name)]
				if !ok || event.Op == fsnotify.Chmod {
					continue
				}
				pending[source] = true
				if flush == nil {
					flush = time.After(watchDebounce)
				}

			case <-flush:
				flush = nil
				for source := range pending {
					_ = scanner.Scan(source)
				}
				clear(pending)

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error", "error", err)
			}
		}
	}()
	return nil
}
