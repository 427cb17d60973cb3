// Package writer serializes PQDIF element trees and physical records back
// to bytes: the element/offset layout algorithm, the padding and
// embedded-scalar laws, and the record header/checksum/compression
// framing that wraps each serialized body.
package writer

import (
	"bytes"
	"fmt"
	"hash/adler32"

	"github.com/scigolib/pqdif/internal/core"
	"github.com/scigolib/pqdif/internal/utils"
)

// Writer serializes physical records to an in-memory buffer, applying
// the embedded-scalar and padding laws as it lays out each record body.
type Writer struct {
	buf         bytes.Buffer
	compression core.CompressionAlgorithm
	pos         uint32
}

// New creates an empty Writer with no compression.
func New() *Writer {
	return &Writer{}
}

// SetCompression selects the algorithm applied to every subsequent
// WriteRecord call's body. It fails fast on PKZIP or total-file style.
func (w *Writer) SetCompression(algo core.CompressionAlgorithm, style core.CompressionStyle) error {
	if err := core.ValidateCompressionConfig(algo, style); err != nil {
		return err
	}
	w.compression = algo
	return nil
}

// Bytes returns the serialized record stream written so far.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// WriteRecord serializes root as a Collection-rooted record body, frames
// it with a RecordHeader, and appends both to the writer's buffer. Records
// are always laid out contiguously, so the new record's own start offset
// plus its header and body size is the only possible NextRecordPosition
// value for it; hasNext selects between that value and the 0 that
// terminates the chain. The caller doesn't need to know any offsets.
func (w *Writer) WriteRecord(recordType core.Identifier, root *core.Collection, hasNext bool) error {
	ew := newElementWriter()
	if err := ew.writeCollection(root); err != nil {
		return utils.WrapError("record body encode", err)
	}
	body := ew.Bytes()

	var err error
	switch w.compression {
	case core.CompressionZlib:
		body, err = core.Deflate(body)
		if err != nil {
			return utils.WrapError("record body compress", err)
		}
	case core.CompressionNone:
	default:
		return fmt.Errorf("writer: unsupported compression algorithm %s", w.compression)
	}

	var nextRecordPosition uint32
	if hasNext {
		nextRecordPosition = w.pos + core.RecordHeaderSize + uint32(len(body))
	}

	header := core.RecordHeader{
		Signature:          core.RecordSignature,
		RecordTypeTag:      recordType,
		HeaderSize:         core.RecordHeaderSize,
		BodySize:           uint32(len(body)),
		NextRecordPosition: nextRecordPosition,
		Checksum:           adler32.Checksum(body),
	}

	headerBuf := make([]byte, core.RecordHeaderSize)
	if err := core.EncodeRecordHeader(header, headerBuf); err != nil {
		return err
	}

	w.buf.Write(headerBuf)
	w.buf.Write(body)
	w.pos += core.RecordHeaderSize + uint32(len(body))
	return nil
}

// Pos returns the current absolute write offset, i.e. the byte offset a
// record written next would start at. WriteRecord computes each
// next_record_position itself; Pos only reports where the stream ends.
func (w *Writer) Pos() uint32 { return w.pos }
