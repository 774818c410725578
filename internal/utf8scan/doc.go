// Package utf8scan classifies raw byte strings as UTF-8 text, UTF-8 control
// characters, or binary data.
//
// # Overview
//
// Input is treated as an immutable sequence of bytes that may or may not be
// valid UTF-8: captured output buffers, log lines, file contents. The package
// never rejects input. Malformed sequences are classified as Other and the scan
// carries on with the next byte.
//
// # Decoding Rules
//
// Each character is decoded at the current offset:
//
//   - 0x00-0x7F: single byte, always valid. Flagged as control when below 0x20
//     or equal to 0x7F, except TAB, LF and CR.
//   - 110xxxxx: two bytes. 0xC0 and 0xC1 leads are overlong and rejected.
//     U+0080-U+009F (the C1 range) is flagged as control.
//   - 1110xxxx: three bytes. Overlong forms (0xE0 0x80-0x9F) and encoded
//     UTF-16 surrogates (0xED 0xA0-0xBF) are rejected.
//   - 11110xxx: four bytes. Overlong forms (0xF0 0x80-0x8F) and anything above
//     U+10FFFF are rejected.
//   - Anything else, or a sequence missing continuation bytes, is a single
//     invalid byte.
//
// An invalid character is always exactly one byte wide, so the byte that broke
// a sequence is examined again as the start of the next character.
//
// # Analysis
//
// Analyze walks the whole input and groups consecutive characters of the same
// Category into Blocks. Blocks partition the input: concatenating their bytes
// reproduces it exactly. Stats also carries per-category byte counts, the
// number of decoded characters, and the share of the input that is binary
// (Other plus Utf8Control).
//
//	stats := utf8scan.Analyze(line)
//	if stats.PercentBinary > 33 {
//		// render as hex
//	}
//
// A Classifier memoizes its Stats. The first Analyze call computes them under
// a sync.Once; later calls, from any goroutine, return the cached result.
//
// # Cursors
//
// Cursor is the explicit scan position used by every operation. It is created
// per scan and never shared, which keeps the package free of hidden state.
// Cursor.Read is the raw read primitive; a negative length is a programming
// error reported as ErrNegativeLength.
package utf8scan
