package app

import (
	"context"
	"time"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that rescans sources at a fixed
// cadence, backing off while every poll keeps failing. It returns immediately.
func StartPoller(ctx context.Context, scanner *Scanner, sources []string, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		failures := 0
		for {
			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}

			failed, err := scanner.ScanAll(ctx, sources)
			if err != nil {
				return
			}
			if failed > 0 && failed == len(sources) {
				failures++
				scanner.logger().Warn("poll failed", "failures", failures)
			} else {
				failures = 0
			}
		}
	}()
}

// calculateBackoff doubles the interval per consecutive failure, capped at
// maxBackoff. An interval already above the cap is never shortened.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	limit := max(interval, maxBackoff)
	if failures > 16 {
		return limit
	}
	backoff := interval << failures
	if backoff > limit || backoff <= 0 {
		return limit
	}
	return backoff
}
