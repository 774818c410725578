package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"unicode/utf8"

	"github.com/five82/bytescan/internal/utf8scan"
)

const (
	initialBuffer = 64 * 1024
	maxLineBytes  = 1024 * 1024
)

// Line is one raw input line with its classification.
type Line struct {
	Number int // 1-based position in the returned tail
	Raw    []byte
	Stats  utf8scan.Stats
}

// Read returns at most maxLines raw lines from the end of the file at path.
// A maxLines of zero or less returns every line. A missing file is not an error.
// Files ending in .gz, .zst or .lz4 are decompressed first.
func Read(path string, maxLines int) ([][]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	r, release, err := decompress(file, DetectCompression(path))
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer release()

	return ReadFrom(r, maxLines)
}

// ReadFrom returns at most maxLines raw lines from the end of r. Lines are
// split on LF; a trailing CR is kept as part of the line.
func ReadFrom(r io.Reader, maxLines int) ([][]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBuffer), maxLineBytes)
	scanner.Split(splitLF)

	if maxLines <= 0 {
		var lines [][]byte
		for scanner.Scan() {
			lines = append(lines, slices.Clone(scanner.Bytes()))
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([][]byte, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = slices.Clone(scanner.Bytes())
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([][]byte, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Scan classifies each line.
func Scan(lines [][]byte) []Line {
	if len(lines) == 0 {
		return nil
	}
	out := make([]Line, len(lines))
	for i, raw := range lines {
		out[i] = Line{
			Number: i + 1,
			Raw:    raw,
			Stats:  utf8scan.New(raw).Analyze(),
		}
	}
	return out
}

// splitLF is bufio.ScanLines without the CR stripping: a stray CR is content
// worth reporting, not line framing. A run of maxLineBytes without LF is
// emitted as its own line, ending before any character cut off by the chunk.
func splitLF(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := slices.Index(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	if len(data) >= maxLineBytes {
		n := chunkEnd(data[:maxLineBytes])
		return n, data[:n], nil
	}
	return 0, nil, nil
}

// chunkEnd returns len(b), or the start of a valid character whose tail lies
// past the end of b. Only the last utf8.UTFMax-1 bytes are inspected.
func chunkEnd(b []byte) int {
	for i := len(b) - 1; i > 0 && i >= len(b)-(utf8.UTFMax-1); i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		if !utf8.FullRune(b[i:]) {
			return i
		}
		break
	}
	return len(b)
}
