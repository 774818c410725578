// Package state holds the latest scan report for every source.
//
// # Overview
//
// The scanner goroutines write into a Store and the renderer or viewer reads
// from it. Each source (a file path, or "-" for stdin) has one Report holding
// its classified lines, aggregated Totals and poll health.
//
// # Thread Safety
//
// Store uses a sync.RWMutex: Update takes the write lock, Snapshot the read
// lock. Snapshot returns copies of the line slices and of the recorded errors
// so readers never observe a report mid-update. Line bytes and block slices
// are shared; they are immutable after classification.
//
// # Error Handling
//
// A failed read keeps the previous lines and records the error:
//
//	store.Update(path, nil, err)
//
// ConsecutiveFailures counts failures since the last success and resets on
// the next successful Update. Report.IsStale reports two or more failures in
// a row, which the viewer shows as a warning badge.
//
// # Ordering
//
// Reports come back in the order their sources were first updated, so the
// output of a run is stable regardless of which scan finishes first.
package state
