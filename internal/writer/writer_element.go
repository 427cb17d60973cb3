package writer

import (
	"encoding/binary"
	"fmt"

	"github.com/scigolib/pqdif/internal/core"
	"github.com/scigolib/pqdif/internal/utils"
)

// elementHeaderSize mirrors internal/core's reader-side constant; kept in
// sync with spec.md §6's 28-byte element header layout.
const elementHeaderSize = 28

// elementWriter serializes an element tree into a single growing buffer.
// Every Collection's content is `N` (i32 child count) followed by N
// 28-byte child headers, followed by the linked payloads those headers
// point at; a non-embedded child header's link field is always an offset
// from the start of this buffer (i.e. the record body), so nested
// collections simply recurse into the same buffer and get addresses that
// are valid everywhere in the tree.
type elementWriter struct {
	buf []byte
}

func newElementWriter() *elementWriter {
	return &elementWriter{}
}

// Bytes returns the serialized record body.
func (w *elementWriter) Bytes() []byte { return w.buf }

// writeCollection serializes c as the record body: the root Collection
// has no element header of its own (its tag is implied by the record
// type), so the body begins directly with its content.
func (w *elementWriter) writeCollection(c *core.Collection) error {
	return w.writeCollectionContent(c)
}

func (w *elementWriter) writeCollectionContent(c *core.Collection) error {
	children := c.Children()
	n := len(children)

	headerStart := len(w.buf)
	w.buf = append(w.buf, make([]byte, 4+elementHeaderSize*n)...)
	binary.LittleEndian.PutUint32(w.buf[headerStart:headerStart+4], uint32(n))

	for i, child := range children {
		hdrOff := headerStart + 4 + i*elementHeaderSize
		if err := w.writeChildHeader(hdrOff, child); err != nil {
			return fmt.Errorf("writer: collection %s child %d: %w", c.Tag(), i, err)
		}
	}
	return nil
}

func (w *elementWriter) writeChildHeader(hdrOff int, child core.Element) error {
	tag := child.Tag()
	copy(w.buf[hdrOff:hdrOff+16], tag[:])
	w.buf[hdrOff+16] = byte(child.Kind())
	w.buf[hdrOff+17] = byte(child.ValueType())

	if scalar, ok := child.(*core.Scalar); ok && scalar.ValueType().Embeddable() {
		w.buf[hdrOff+18] = 1 // embedded
		w.buf[hdrOff+19] = 0 // reserved
		payload := scalar.GetBytes()
		copy(w.buf[hdrOff+20:hdrOff+28], payload) // remaining bytes stay zero
		return nil
	}

	if _, ok := child.(*core.Scalar); ok && !child.ValueType().IsKnown() {
		return fmt.Errorf("writer: scalar %s has unrecognized value_type %d", tag, child.ValueType())
	}
	if v, ok := child.(*core.Vector); ok && !v.ValueType().IsKnown() {
		return fmt.Errorf("writer: vector %s has unrecognized value_type %d", tag, v.ValueType())
	}

	w.buf[hdrOff+18] = 0 // not embedded
	w.buf[hdrOff+19] = 0

	payloadStart := len(w.buf)
	binary.LittleEndian.PutUint32(w.buf[hdrOff+20:hdrOff+24], uint32(payloadStart))

	switch v := child.(type) {
	case *core.Scalar:
		w.buf = append(w.buf, v.GetBytes()...)
	case *core.Vector:
		payload := v.GetBytes()
		if err := utils.ValidateBufferSize(uint64(len(payload)), utils.MaxVectorBytes, fmt.Sprintf("vector %s", tag)); err != nil {
			return err
		}
		countBuf := make([]byte, 4)
		binary.LittleEndian.PutUint32(countBuf, v.Size())
		w.buf = append(w.buf, countBuf...)
		w.buf = append(w.buf, payload...)
	case *core.Collection:
		if err := w.writeCollectionContent(v); err != nil {
			return err
		}
	default:
		return fmt.Errorf("writer: cannot serialize element of kind %s", child.Kind())
	}

	payloadLen := len(w.buf) - payloadStart
	binary.LittleEndian.PutUint32(w.buf[hdrOff+24:hdrOff+28], uint32(payloadLen))

	// Padding law: every element ends on a 4-byte boundary.
	if pad := (4 - payloadLen%4) % 4; pad > 0 {
		w.buf = append(w.buf, make([]byte, pad)...)
	}
	return nil
}
