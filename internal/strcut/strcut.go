// Package strcut extracts byte ranges from possibly-invalid UTF-8 without
// splitting multi-byte characters.
//
// Offsets and lengths are in bytes, as with mb_strcut. A start offset that
// lands inside a character moves back to that character's first byte; an end
// offset that lands inside a character moves back so the character is dropped.
// Malformed input never fails: invalid bytes are treated as one-byte
// characters and boundaries are best effort.
package strcut

import "github.com/five82/bytescan/internal/utf8scan"

// window is the furthest a boundary can sit from an arbitrary offset: UTF-8
// characters are at most four bytes long.
const window = 3

// Strlen returns the length of b in bytes.
func Strlen(b []byte) int {
	return len(b)
}

// CutToEnd returns the bytes from start to the end of b.
func CutToEnd(b []byte, start int) []byte {
	from := resolveStart(b, start)
	return b[from:]
}

// Cut returns at most length bytes of b beginning at start. A negative length
// leaves that many bytes off the end of b.
func Cut(b []byte, start, length int) []byte {
	from := resolveStart(b, start)
	if length < 0 {
		length = len(b) + length - from
	}
	if length <= 0 {
		return b[from:from]
	}
	if length >= len(b)-from {
		return b[from:]
	}
	to := resolveEnd(b, from, from+length)
	return b[from:to]
}

// resolveStart clamps start into b and moves it back to the first byte of a
// valid character straddling it.
func resolveStart(b []byte, start int) int {
	if start <= 0 {
		return 0
	}
	if start >= len(b) {
		return len(b)
	}
	for i := start; i >= max(start-window, 0); i-- {
		ch := utf8scan.BoundaryAt(b, i)
		if !ch.Valid {
			continue
		}
		if i+ch.Size > start {
			return i
		}
		break
	}
	return start
}

// resolveEnd returns the largest character boundary in [from, end]. The scan
// starts at most window bytes before end; continuation bytes met before the
// lead byte are stepped over one at a time.
func resolveEnd(b []byte, from, end int) int {
	cur := utf8scan.NewCursor(b)
	cur.Seek(max(end-window, from))
	for {
		pos := cur.Pos()
		ch := cur.Peek()
		if ch.Size == 0 || pos+ch.Size > end {
			return pos
		}
		cur.Next()
	}
}
