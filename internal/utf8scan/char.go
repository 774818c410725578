package utf8scan

// Category classifies a character or a run of characters.
type Category uint8

const (
	// Utf8 is valid, printable UTF-8 (including TAB, LF and CR).
	Utf8 Category = iota
	// Utf8Control is valid UTF-8 decoding to a C0 or C1 control code point.
	Utf8Control
	// Other is anything that fails UTF-8 validation.
	Other
)

// String returns the lower-case category name.
func (c Category) String() string {
	switch c {
	case Utf8:
		return "utf8"
	case Utf8Control:
		return "utf8control"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Char is the result of decoding one character at a byte offset.
type Char struct {
	Valid   bool
	Control bool
	Bytes   []byte // subslice of the input; a single byte when invalid
	Size    int    // bytes to advance
}

// Category reports how the character is classified.
func (c Char) Category() Category {
	switch {
	case !c.Valid:
		return Other
	case c.Control:
		return Utf8Control
	default:
		return Utf8
	}
}

// BoundaryAt decodes the character starting at offset. The returned Char is
// valid only when a well-formed UTF-8 sequence begins there; otherwise it
// covers the single byte at offset. An offset outside the input yields the
// zero Char.
func BoundaryAt(b []byte, offset int) Char {
	if offset < 0 || offset >= len(b) {
		return Char{}
	}
	b1 := b[offset]
	switch {
	case b1 < 0x80:
		return Char{
			Valid:   true,
			Control: isASCIIControl(b1),
			Bytes:   b[offset : offset+1],
			Size:    1,
		}
	case b1&0xE0 == 0xC0:
		if b1&0xFE == 0xC0 || !hasContinuation(b, offset, 1) {
			return invalidAt(b, offset)
		}
		ch := validAt(b, offset, 2)
		// U+0080..U+009F
		ch.Control = b1 == 0xC2 && b[offset+1] < 0xA0
		return ch
	case b1&0xF0 == 0xE0:
		if !hasContinuation(b, offset, 2) {
			return invalidAt(b, offset)
		}
		b2 := b[offset+1]
		if b1 == 0xE0 && b2&0xE0 == 0x80 {
			return invalidAt(b, offset)
		}
		if b1 == 0xED && b2&0xE0 == 0xA0 {
			return invalidAt(b, offset)
		}
		return validAt(b, offset, 3)
	case b1&0xF8 == 0xF0:
		if !hasContinuation(b, offset, 3) {
			return invalidAt(b, offset)
		}
		b2 := b[offset+1]
		if b1 == 0xF0 && b2&0xF0 == 0x80 {
			return invalidAt(b, offset)
		}
		if b1 > 0xF4 || (b1 == 0xF4 && b2 > 0x8F) {
			return invalidAt(b, offset)
		}
		return validAt(b, offset, 4)
	}
	return invalidAt(b, offset)
}

func isASCIIControl(c byte) bool {
	switch c {
	case '\t', '\n', '\r':
		return false
	}
	return c < 0x20 || c == 0x7F
}

// hasContinuation reports whether the n bytes following offset exist and are
// all continuation bytes (10xxxxxx).
func hasContinuation(b []byte, offset, n int) bool {
	if offset+n >= len(b) {
		return false
	}
	for i := 1; i <= n; i++ {
		if b[offset+i]&0xC0 != 0x80 {
			return false
		}
	}
	return true
}

func validAt(b []byte, offset, size int) Char {
	return Char{Valid: true, Bytes: b[offset : offset+size], Size: size}
}

func invalidAt(b []byte, offset int) Char {
	return Char{Bytes: b[offset : offset+1], Size: 1}
}
