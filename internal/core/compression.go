package core

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// CompressionAlgorithm identifies which algorithm, if any, compresses a
// record's body. The standard also defines a PKZIP algorithm; this codec
// declines to support it (see Non-goals) since nothing in its dependency
// set offers a PKZIP-compatible DEFLATE variant, and any file declaring it
// is rejected rather than silently mishandled.
type CompressionAlgorithm uint8

const (
	CompressionNone CompressionAlgorithm = 0
	CompressionZlib CompressionAlgorithm = 1
	CompressionPKZIP CompressionAlgorithm = 2
)

func (a CompressionAlgorithm) String() string {
	switch a {
	case CompressionNone:
		return "none"
	case CompressionZlib:
		return "zlib"
	case CompressionPKZIP:
		return "pkzip"
	default:
		return fmt.Sprintf("CompressionAlgorithm(%d)", uint8(a))
	}
}

// CompressionStyle controls which records in a file are compressed. Only
// None and RecordLevel are supported; TotalFile compresses the entire
// record stream as a single unit ahead of per-record framing, which is
// incompatible with this codec's record-at-a-time reader and is
// explicitly out of scope.
type CompressionStyle uint8

const (
	CompressionStyleNone        CompressionStyle = 0
	CompressionStyleRecordLevel CompressionStyle = 1
	CompressionStyleTotalFile   CompressionStyle = 2
)

func (s CompressionStyle) String() string {
	switch s {
	case CompressionStyleNone:
		return "none"
	case CompressionStyleRecordLevel:
		return "record-level"
	case CompressionStyleTotalFile:
		return "total-file"
	default:
		return fmt.Sprintf("CompressionStyle(%d)", uint8(s))
	}
}

// ValidateCompressionConfig rejects combinations this codec does not
// implement: PKZIP (any style) and TotalFile style, per spec.md's
// Non-goals.
func ValidateCompressionConfig(algo CompressionAlgorithm, style CompressionStyle) error {
	if algo == CompressionPKZIP {
		return fmt.Errorf("core: PKZIP compression is unsupported")
	}
	if style == CompressionStyleTotalFile {
		return fmt.Errorf("core: total-file compression style is unsupported")
	}
	return nil
}

// Inflate decompresses a zlib-compressed record body.
func Inflate(compressed []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("core: zlib reader: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("core: zlib inflate: %w", err)
	}
	return out, nil
}

// Deflate compresses a record body with zlib at the default compression
// level, matching what produced every known PQDIF writer's output.
func Deflate(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return nil, fmt.Errorf("core: zlib deflate: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("core: zlib deflate close: %w", err)
	}
	return buf.Bytes(), nil
}
