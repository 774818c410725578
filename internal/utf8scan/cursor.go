package utf8scan

import (
	"errors"
	"fmt"
)

// ErrNegativeLength is returned by Cursor.Read for a negative byte count.
var ErrNegativeLength = errors.New("negative read length")

// Cursor is a byte offset into an immutable input, in the range [0, len].
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a Cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the length of the underlying input.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// Done reports whether the cursor reached the end of the input.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.buf)
}

// Seek moves the cursor to offset, clamped to [0, len].
func (c *Cursor) Seek(offset int) {
	c.pos = min(max(offset, 0), len(c.buf))
}

// Peek decodes the character at the cursor without advancing.
func (c *Cursor) Peek() Char {
	return BoundaryAt(c.buf, c.pos)
}

// Next decodes the character at the cursor and advances past it. It returns
// false once the input is exhausted.
func (c *Cursor) Next() (Char, bool) {
	if c.Done() {
		return Char{}, false
	}
	ch := BoundaryAt(c.buf, c.pos)
	c.pos += ch.Size
	return ch, true
}

// Read returns up to n raw bytes from the cursor and advances past them.
// Fewer than n bytes are returned at the end of the input.
func (c *Cursor) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("read %d bytes at offset %d: %w", n, c.pos, ErrNegativeLength)
	}
	end := min(c.pos+n, len(c.buf))
	out := c.buf[c.pos:end]
	c.pos = end
	return out, nil
}
