// Package logtail reads the tail of log files as raw bytes and classifies
// each line.
//
// # Overview
//
// Log files written by other programs routinely carry stray control codes,
// partial writes and binary payloads. This package never decodes lines as
// text: it hands back the exact bytes of each line so utf8scan can report
// what is inside.
//
// # Core Functionality
//
//  1. Read/ReadFrom: extract the last N lines from a file or reader
//  2. Scan: pair each line with its utf8scan.Stats
//
// # Rotated Logs
//
// Read picks a decoder from the file extension: .gz (klauspost gzip), .zst
// (zstd) and .lz4 (LZ4 frames). Anything else is read as-is. Classification
// always runs on the decompressed bytes.
//
// # Reading Log Files
//
// ReadFrom uses a ring buffer of size maxLines:
//
//	1. Allocate ring buffer of size maxLines
//	2. For each line in the input:
//	   - Copy the line bytes into the current slot
//	   - Increment index (wrapping at maxLines)
//	   - Track total lines seen
//	3. If total < maxLines:
//	   - Return first 'count' entries from buffer
//	4. If total >= maxLines:
//	   - Return buffer starting from current index (oldest line)
//
// Memory stays O(maxLines × average line length). A maxLines of zero or less
// keeps every line.
//
// Lines are split on LF only. A CR before the LF stays in the line, so
// CRLF files and bare carriage returns are visible to the classifier.
//
// Example usage:
//
//	raw, err := logtail.Read("/var/log/app.log", 400)
//	if err != nil {
//		return err
//	}
//	for _, line := range logtail.Scan(raw) {
//		if !line.Stats.Valid() {
//			// line contains non-UTF-8 bytes
//		}
//	}
//
// # Error Handling
//
// Read returns nil, nil for non-existent files. Other errors (permission
// denied, I/O errors, corrupt compressed data) are returned wrapped.
//
// A run of more than 1 MiB without a newline is not an error: it comes back
// as several lines of at most 1 MiB each, and no chunk boundary falls inside
// a valid multi-byte character. Line numbers count these chunks.
package logtail
