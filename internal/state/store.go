package state

import (
	"slices"
	"sync"
	"time"

	"github.com/five82/bytescan/internal/logtail"
	"github.com/five82/bytescan/internal/utf8scan"
)

// Totals aggregates classification counts across lines.
type Totals struct {
	Lines            int
	InvalidLines     int // lines containing at least one Other byte
	Chars            int
	BytesUtf8        int
	BytesUtf8Control int
	BytesOther       int
}

// Add folds one line's stats into the totals.
func (t *Totals) Add(s utf8scan.Stats) {
	t.Lines++
	if !s.Valid() {
		t.InvalidLines++
	}
	t.Chars += s.MbStrlen
	t.BytesUtf8 += s.BytesUtf8
	t.BytesUtf8Control += s.BytesUtf8Control
	t.BytesOther += s.BytesOther
}

// Bytes returns the total number of classified bytes.
func (t Totals) Bytes() int {
	return t.BytesUtf8 + t.BytesUtf8Control + t.BytesOther
}

// PercentBinary mirrors utf8scan.Stats.PercentBinary over all lines.
func (t Totals) PercentBinary() float64 {
	total := t.Bytes()
	if total == 0 {
		return 0
	}
	return float64(t.BytesOther+t.BytesUtf8Control) / float64(total) * 100
}

// TotalsOf sums the stats of lines.
func TotalsOf(lines []logtail.Line) Totals {
	var t Totals
	for _, line := range lines {
		t.Add(line.Stats)
	}
	return t
}

// Report is the latest scan of one source.
type Report struct {
	Source              string
	Lines               []logtail.Line
	Totals              Totals
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsStale returns true when the source failed to read on multiple polls.
func (r Report) IsStale() bool {
	return r.ConsecutiveFailures >= 2
}

// Snapshot is a point-in-time copy of every report, in registration order.
type Snapshot struct {
	Reports []Report
}

// Totals sums the totals of every report.
func (s Snapshot) Totals() Totals {
	var t Totals
	for _, r := range s.Reports {
		t.Lines += r.Totals.Lines
		t.InvalidLines += r.Totals.InvalidLines
		t.Chars += r.Totals.Chars
		t.BytesUtf8 += r.Totals.BytesUtf8
		t.BytesUtf8Control += r.Totals.BytesUtf8Control
		t.BytesOther += r.Totals.BytesOther
	}
	return t
}

// Store coordinates concurrent updates to the reports.
type Store struct {
	mu      sync.RWMutex
	order   []string
	reports map[string]*Report
}

// Register adds empty reports for sources not seen yet, fixing their order
// before any concurrent updates arrive.
func (s *Store) Register(sources ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, source := range sources {
		s.report(source)
	}
}

// Update replaces the report for source. When err is non-nil the previous
// lines are kept but the error is recorded for visibility.
func (s *Store) Update(source string, lines []logtail.Line, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := s.report(source)
	report.LastUpdated = time.Now()
	if err != nil {
		report.LastError = err
		report.ConsecutiveFailures++
		return
	}

	report.Lines = slices.Clone(lines)
	report.Totals = TotalsOf(lines)
	report.LastError = nil
	report.ConsecutiveFailures = 0
}

// report returns the entry for source, creating it. Callers hold the write lock.
func (s *Store) report(source string) *Report {
	if s.reports == nil {
		s.reports = make(map[string]*Report)
	}
	report, ok := s.reports[source]
	if !ok {
		report = &Report{Source: source}
		s.reports[source] = report
		s.order = append(s.order, source)
	}
	return report
}

// Snapshot returns a copy of the current reports. Line.Raw and Stats.Blocks
// are shared with the store; they are never modified after logtail.Scan.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Reports: make([]Report, 0, len(s.order))}
	for _, source := range s.order {
		report := *s.reports[source]
		report.Lines = slices.Clone(report.Lines)
		snap.Reports = append(snap.Reports, report)
	}
	return snap
}
