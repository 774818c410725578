package strcut

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCut(t *testing.T) {
	// "aé€😀b": a=0, é=1..3, €=3..6, 😀=6..10, b=10
	input := []byte("a\xC3\xA9\xE2\x82\xAC\xF0\x9F\x98\x80b")

	tests := []struct {
		name   string
		start  int
		length int
		want   string
	}{
		{"whole string", 0, 11, string(input)},
		{"length past end", 0, 100, string(input)},
		{"negative start clamps", -4, 1, "a"},
		{"start inside two byte char", 2, 2, "\xC3\xA9"},
		{"start inside four byte char", 8, 5, "\xF0\x9F\x98\x80b"},
		{"end inside three byte char", 0, 4, "a\xC3\xA9"},
		{"end inside four byte char", 3, 5, "\xE2\x82\xAC"},
		{"end on boundary", 1, 5, "\xC3\xA9\xE2\x82\xAC"},
		{"zero length", 3, 0, ""},
		{"length too short for char", 6, 3, ""},
		{"negative length", 0, -1, "a\xC3\xA9\xE2\x82\xAC\xF0\x9F\x98\x80"},
		{"negative length inside char", 0, -3, "a\xC3\xA9\xE2\x82\xAC"},
		{"negative length past start", 6, -6, ""},
		{"start past end", 20, 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(Cut(input, tt.start, tt.length)))
		})
	}
}

func TestCutToEnd(t *testing.T) {
	input := []byte("x\xC3\xA9yz")

	assert.Equal(t, "x\xC3\xA9yz", string(CutToEnd(input, 0)))
	assert.Equal(t, "x\xC3\xA9yz", string(CutToEnd(input, -2)))
	assert.Equal(t, "\xC3\xA9yz", string(CutToEnd(input, 1)))
	assert.Equal(t, "\xC3\xA9yz", string(CutToEnd(input, 2)))
	assert.Equal(t, "yz", string(CutToEnd(input, 3)))
	assert.Equal(t, "", string(CutToEnd(input, 5)))
	assert.Equal(t, "", string(CutToEnd(input, 50)))
}

func TestCut_MalformedInput(t *testing.T) {
	// Stray continuation bytes have no lead byte to snap back to.
	input := []byte("a\x80\x80\x80\x80b")
	assert.Equal(t, "\x80\x80b", string(Cut(input, 3, 10)))
	assert.Equal(t, "a\x80\x80", string(Cut(input, 0, 3)))

	// A stray continuation after ASCII is not pulled into the cut.
	assert.Equal(t, "\x80", string(Cut([]byte("x\x80y"), 1, 1)))

	// A truncated sequence is kept byte for byte.
	assert.Equal(t, "ok\xE2\x82", string(Cut([]byte("ok\xE2\x82"), 0, 4)))
}

func TestCut_NeverSplitsCharacters(t *testing.T) {
	input := []byte("日本語テキスト with ascii, émoji 😀🎉 and € signs")
	for start := -2; start <= len(input)+2; start++ {
		for length := -len(input) - 2; length <= len(input)+2; length++ {
			got := Cut(input, start, length)
			if !utf8.Valid(got) {
				t.Fatalf("Cut(%d, %d) = %q, not valid UTF-8", start, length, got)
			}
			if length >= 0 && len(got) > length {
				t.Fatalf("Cut(%d, %d) returned %d bytes", start, length, len(got))
			}
		}
		if got := CutToEnd(input, start); !utf8.Valid(got) {
			t.Fatalf("CutToEnd(%d) = %q, not valid UTF-8", start, got)
		}
	}
}

func TestStrlen(t *testing.T) {
	assert.Equal(t, 0, Strlen(nil))
	assert.Equal(t, 2, Strlen([]byte("\xC3\xA9")))
	assert.Equal(t, 3, Strlen([]byte{0xFF, 0x00, 'a'}))
}
