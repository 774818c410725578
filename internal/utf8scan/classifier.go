package utf8scan

import (
	"slices"
	"sync"
)

// Block is a maximal run of bytes sharing one Category.
type Block struct {
	Category Category
	Bytes    []byte
}

// Stats summarizes a full scan of an input.
type Stats struct {
	Blocks           []Block
	BytesOther       int
	BytesUtf8        int
	BytesUtf8Control int
	MbStrlen         int     // decoded characters; each invalid byte counts once
	PercentBinary    float64 // (BytesOther + BytesUtf8Control) / total * 100
}

// Len returns the total number of bytes scanned.
func (s Stats) Len() int {
	return s.BytesOther + s.BytesUtf8 + s.BytesUtf8Control
}

// Valid reports whether the scanned input was entirely valid UTF-8.
func (s Stats) Valid() bool {
	return s.BytesOther == 0
}

func (s *Stats) add(cat Category, n int) {
	switch cat {
	case Utf8:
		s.BytesUtf8 += n
	case Utf8Control:
		s.BytesUtf8Control += n
	case Other:
		s.BytesOther += n
	}
}

// Classifier scans one input and caches its Stats.
type Classifier struct {
	data  []byte
	once  sync.Once
	stats Stats
}

// New returns a Classifier for b. The caller must not modify b afterwards.
func New(b []byte) *Classifier {
	return &Classifier{data: b}
}

// IsValid reports whether the input is entirely valid UTF-8.
func (c *Classifier) IsValid() bool {
	return IsValid(c.data)
}

// Analyze returns the scan statistics, computing them on first use.
func (c *Classifier) Analyze() Stats {
	c.once.Do(func() {
		c.stats = analyze(c.data)
	})
	stats := c.stats
	stats.Blocks = slices.Clone(c.stats.Blocks)
	return stats
}

// IsValid reports whether b is entirely valid UTF-8. It stops at the first
// invalid sequence.
func IsValid(b []byte) bool {
	cur := NewCursor(b)
	for {
		ch, ok := cur.Next()
		if !ok {
			return true
		}
		if !ch.Valid {
			return false
		}
	}
}

// Analyze scans all of b. Use a Classifier to reuse the result.
func Analyze(b []byte) Stats {
	return analyze(b)
}

func analyze(b []byte) Stats {
	var stats Stats
	cur := NewCursor(b)
	blockStart := 0
	var current Category
	for !cur.Done() {
		start := cur.Pos()
		ch, _ := cur.Next()
		cat := ch.Category()
		stats.MbStrlen++
		stats.add(cat, ch.Size)
		if start == 0 {
			current = cat
			continue
		}
		if cat != current {
			stats.Blocks = append(stats.Blocks, Block{Category: current, Bytes: b[blockStart:start]})
			blockStart = start
			current = cat
		}
	}
	if blockStart < len(b) {
		stats.Blocks = append(stats.Blocks, Block{Category: current, Bytes: b[blockStart:]})
	}
	if len(b) > 0 {
		stats.PercentBinary = float64(stats.BytesOther+stats.BytesUtf8Control) / float64(len(b)) * 100
	}
	return stats
}
