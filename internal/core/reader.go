package core

import (
	"errors"
	"fmt"
	"hash/adler32"
	"io"

	"github.com/scigolib/pqdif/internal/utils"
)

// ErrEndOfStream is returned by Reader.Next once every record has been
// consumed, or once the error budget is exhausted mid-stream — the two
// are indistinguishable to a caller, by design: a truncated or corrupt
// tail looks like a clean end.
var ErrEndOfStream = errors.New("core: end of record stream")

// Reader walks a PQDIF byte stream one physical record at a time. It
// tracks visited next_record_position offsets to guard against a cyclic
// chain, and tolerates up to its error budget of malformed elements
// before giving up on the stream.
type Reader struct {
	src          io.ReaderAt
	pos          int64
	visited      map[int64]bool
	errorBudget  int
	recordErrors []error
	compression  CompressionAlgorithm
}

// NewReader creates a Reader over src starting at file offset 0, with the
// default error budget (utils.MaxErrorBudget) and no compression.
func NewReader(src io.ReaderAt) *Reader {
	return &Reader{
		src:         src,
		visited:     make(map[int64]bool),
		errorBudget: utils.MaxErrorBudget,
	}
}

// SetErrorBudget overrides the default recoverable-error allowance.
func (r *Reader) SetErrorBudget(n int) { r.errorBudget = n }

// SetCompression tells the reader how to decompress subsequent record
// bodies. The Container record's CompressionAlgorithm field governs this
// for the rest of the file, so the logical layer calls this once it has
// parsed that record. It fails fast on PKZIP or total-file style, which
// this codec does not implement.
func (r *Reader) SetCompression(algo CompressionAlgorithm, style CompressionStyle) error {
	if err := ValidateCompressionConfig(algo, style); err != nil {
		return err
	}
	r.compression = algo
	return nil
}

// Errors returns every recoverable error accumulated across Next calls so
// far, in the order encountered.
func (r *Reader) Errors() []error { return r.recordErrors }

// Record is one physical record: its header plus a parsed root Collection
// element for the body. ComputedChecksum is the Adler-32 this reader
// computed over the on-disk body bytes; ChecksumOK reports whether it
// matches Header.Checksum. A mismatch is not fatal — the reader still
// parses and returns the tree, leaving the decision of what to do about a
// corrupt checksum to the caller.
type Record struct {
	Header           RecordHeader
	Body             *Collection
	ComputedChecksum uint32
	ChecksumOK       bool
}

// Next reads and parses the next physical record, advancing past it.
// It returns ErrEndOfStream when next_record_position loops back to an
// already-visited offset (cycle guard) or the error budget is spent.
func (r *Reader) Next() (*Record, error) {
	if r.errorBudget >= 0 && len(r.recordErrors) >= r.errorBudget {
		return nil, ErrEndOfStream
	}
	if r.visited[r.pos] {
		return nil, ErrEndOfStream
	}
	r.visited[r.pos] = true

	headerBuf := utils.GetBuffer(RecordHeaderSize)
	defer utils.ReleaseBuffer(headerBuf)

	if _, err := r.src.ReadAt(headerBuf, r.pos); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEndOfStream
		}
		return nil, utils.WrapError("record header read", err)
	}

	header, err := DecodeRecordHeader(headerBuf)
	if err != nil {
		return nil, utils.WrapError("record header decode", err)
	}
	if header.Signature != RecordSignature {
		return nil, fmt.Errorf("core: record at offset %d has wrong signature", r.pos)
	}
	// header_size is defined as always 64; nothing downstream can make
	// sense of a different value, so reject it rather than read a body at
	// the wrong offset.
	if header.HeaderSize != RecordHeaderSize {
		return nil, fmt.Errorf("core: record at offset %d has header_size %d, want %d", r.pos, header.HeaderSize, RecordHeaderSize)
	}

	bodyBuf := make([]byte, header.BodySize)
	if header.BodySize > 0 {
		if _, err := r.src.ReadAt(bodyBuf, r.pos+int64(header.HeaderSize)); err != nil && !errors.Is(err, io.EOF) {
			return nil, utils.WrapError("record body read", err)
		}
	}

	computedChecksum := adler32.Checksum(bodyBuf)
	checksumOK := computedChecksum == header.Checksum

	raw, err := decompressIfNeeded(bodyBuf, r.compression)
	if err != nil {
		return nil, utils.WrapError("record body decompress", err)
	}

	root, recErrs, err := r.parseBody(raw, header.RecordTypeTag)
	if err != nil {
		return nil, err
	}
	r.recordErrors = append(r.recordErrors, recErrs...)

	r.pos = int64(header.NextRecordPosition)
	if header.NextRecordPosition == 0 {
		// A record pointing at itself or at offset 0 terminates the chain;
		// mark 0 visited so a subsequent Next reports end-of-stream cleanly.
		r.visited[0] = true
	}

	return &Record{
		Header:           header,
		Body:             root,
		ComputedChecksum: computedChecksum,
		ChecksumOK:       checksumOK,
	}, nil
}

// parseBody parses a record body that the caller has already
// decompressed (or knows to be uncompressed) into a root Collection
// element tree, recovering from individual element parse failures by
// substituting an ErrorElement and resuming at the next sibling.
func (r *Reader) parseBody(body []byte, recordTag Identifier) (*Collection, []error, error) {
	ep := &elementParser{
		buf:         body,
		errorBudget: r.errorBudget,
	}
	root, err := ep.parseRootCollection()
	if err != nil {
		return nil, ep.errs, err
	}
	root.SetTag(recordTag)
	return root, ep.errs, nil
}

// decompressIfNeeded applies Inflate to body when algo indicates zlib
// compression; it is a separate step from parseBody because whether a
// body is compressed is a Container-record-level setting the physical
// layer does not itself interpret.
func decompressIfNeeded(body []byte, algo CompressionAlgorithm) ([]byte, error) {
	if algo == CompressionNone {
		return body, nil
	}
	return Inflate(body)
}
