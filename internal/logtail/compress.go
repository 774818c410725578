package logtail

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies how a rotated log file is stored on disk.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
	CompressionLZ4
)

// String returns the short name of a compression kind.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", c)
	}
}

// DetectCompression picks the decoder from the file extension, so
// "app.log.2.gz" reads as gzip and "app.log" as plain bytes.
func DetectCompression(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// decompress wraps r in the decoder for c. The returned close function
// releases decoder state; it does not close r.
func decompress(r io.Reader, c Compression) (io.Reader, func(), error) {
	switch c {
	case CompressionNone:
		return r, func() {}, nil

	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip header: %w", err)
		}
		return zr, func() { _ = zr.Close() }, nil

	case CompressionZstd:
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, fmt.Errorf("zstd decoder: %w", err)
		}
		return zr, zr.Close, nil

	case CompressionLZ4:
		return lz4.NewReader(r), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported compression: %s", c)
	}
}
