package core

import (
	"encoding/binary"
	"fmt"

	"github.com/scigolib/pqdif/internal/utils"
)

// elementHeaderSize is the fixed size of a child element's header entry,
// per spec.md §4.C "Element parse".
//
//	offset  size  field
//	0       16    tag
//	16      1     kind (1=Collection, 2=Scalar, 3=Vector)
//	17      1     value_type
//	18      1     embedded flag (nonzero ⇔ payload inlined; Scalar only)
//	19      1     reserved
//	20      4     link (byte offset from the start of the record body)
//	24      4     size (payload byte length, ignored when embedded)
const elementHeaderSize = 28

// elementParser walks a single record body buffer. Every link offset is
// relative to the start of this buffer, so elements are addressed
// directly rather than via sequential scanning; a Collection's children
// are read by jumping straight to each one's link. A failure parsing one
// child is captured as an ErrorElement in place of that child, and the
// enclosing collection's remaining children are still attempted.
type elementParser struct {
	buf         []byte
	errorBudget int
	spent       int
	errs        []error
}

func (p *elementParser) budgetExceeded() bool {
	return p.errorBudget >= 0 && p.spent >= p.errorBudget
}

func (p *elementParser) recordError(err error) {
	p.spent++
	p.errs = append(p.errs, err)
}

// parseRootCollection parses the body buffer as the root Collection's
// content, which begins directly at offset 0 with its child count (no
// element header of its own — the root's tag comes from the enclosing
// record, assigned by the caller).
func (p *elementParser) parseRootCollection() (*Collection, error) {
	root := NewCollection(Identifier{})
	if err := p.parseCollectionInto(root, 0); err != nil {
		return nil, err
	}
	return root, nil
}

// parseCollectionInto reads a collection's content (child count + header
// array + linked payloads) starting at contentOffset, appending parsed
// children to c.
func (p *elementParser) parseCollectionInto(c *Collection, contentOffset int) error {
	if contentOffset+4 > len(p.buf) {
		return fmt.Errorf("core: collection %s content at %d exceeds body length %d", c.Tag(), contentOffset, len(p.buf))
	}
	childCount := binary.LittleEndian.Uint32(p.buf[contentOffset : contentOffset+4])
	if err := utils.ValidateChildCount(childCount); err != nil {
		return utils.WrapError("collection child count", err)
	}
	c.SetReadSize(childCount)

	headerArrayStart := contentOffset + 4
	for i := uint32(0); i < childCount; i++ {
		if p.budgetExceeded() {
			break
		}
		hdrOff := headerArrayStart + int(i)*elementHeaderSize
		if hdrOff+elementHeaderSize > len(p.buf) {
			p.recordError(fmt.Errorf("core: collection %s truncated at child %d/%d", c.Tag(), i, childCount))
			break
		}

		child, err := p.parseChildHeader(p.buf[hdrOff : hdrOff+elementHeaderSize])
		if err != nil {
			tag, kind, valueType := peekElementHeader(p.buf[hdrOff : hdrOff+elementHeaderSize])
			p.recordError(fmt.Errorf("core: collection %s child %d: %w", c.Tag(), i, err))
			c.Add(NewErrorElement(tag, byte(kind), valueType, err))
			continue
		}
		c.Add(child)
	}
	return nil
}

func peekElementHeader(hdr []byte) (tag Identifier, kind ElementKind, valueType ValueType) {
	copy(tag[:], hdr[0:16])
	kind = ElementKind(hdr[16])
	valueType = ValueType(hdr[17])
	return tag, kind, valueType
}

// parseChildHeader decodes a single 28-byte child header and, for a
// linked payload, seeks to its link offset and parses the payload there.
func (p *elementParser) parseChildHeader(hdr []byte) (Element, error) {
	var tag Identifier
	copy(tag[:], hdr[0:16])
	kind := ElementKind(hdr[16])
	valueType := ValueType(hdr[17])
	embedded := hdr[18] != 0

	switch kind {
	case KindScalar:
		return p.parseScalarChild(tag, valueType, embedded, hdr[20:28])
	case KindVector:
		return p.parseVectorChild(tag, valueType, hdr[20:28])
	case KindCollection:
		return p.parseCollectionChild(tag, hdr[20:28])
	default:
		return NewUnknownElement(tag, byte(kind), valueType), nil
	}
}

func (p *elementParser) parseScalarChild(tag Identifier, valueType ValueType, embedded bool, fields []byte) (Element, error) {
	if !valueType.IsKnown() {
		return NewUnknownElement(tag, byte(KindScalar), valueType), nil
	}
	n := valueType.ByteSize()
	s := NewScalar(tag, valueType)

	if embedded {
		if n > 8 {
			return nil, fmt.Errorf("core: scalar %s value_type %s cannot be embedded (%d bytes)", tag, valueType, n)
		}
		if err := s.SetBytes(fields[:n], 0); err != nil {
			return nil, utils.WrapError("embedded scalar", err)
		}
		return s, nil
	}

	link := binary.LittleEndian.Uint32(fields[0:4])
	if int(link)+n > len(p.buf) {
		return nil, fmt.Errorf("core: scalar %s link %d exceeds body length %d", tag, link, len(p.buf))
	}
	if err := s.SetBytes(p.buf[link:int(link)+n], 0); err != nil {
		return nil, utils.WrapError("linked scalar", err)
	}
	return s, nil
}

func (p *elementParser) parseVectorChild(tag Identifier, valueType ValueType, fields []byte) (Element, error) {
	if !valueType.IsKnown() {
		return NewUnknownElement(tag, byte(KindVector), valueType), nil
	}
	link := binary.LittleEndian.Uint32(fields[0:4])
	if int(link)+4 > len(p.buf) {
		return nil, fmt.Errorf("core: vector %s link %d exceeds body length %d", tag, link, len(p.buf))
	}
	size := binary.LittleEndian.Uint32(p.buf[link : link+4])

	byteSize, err := utils.CalculateVectorByteSize(size, uint8(valueType.ByteSize()))
	if err != nil {
		return nil, utils.WrapError("vector byte size", err)
	}
	if err := utils.ValidateBufferSize(byteSize, utils.MaxVectorBytes, fmt.Sprintf("vector %s", tag)); err != nil {
		return nil, err
	}
	dataStart := int(link) + 4
	if dataStart+int(byteSize) > len(p.buf) {
		return nil, fmt.Errorf("core: vector %s payload at %d (%d bytes) exceeds body length %d", tag, dataStart, byteSize, len(p.buf))
	}

	v := NewVector(tag, valueType)
	if err := v.SetSize(size); err != nil {
		return nil, utils.WrapError("vector size", err)
	}
	if err := v.SetBytes(p.buf[dataStart : dataStart+int(byteSize)]); err != nil {
		return nil, utils.WrapError("vector payload", err)
	}
	return v, nil
}

func (p *elementParser) parseCollectionChild(tag Identifier, fields []byte) (Element, error) {
	link := binary.LittleEndian.Uint32(fields[0:4])
	c := NewCollection(tag)
	if err := p.parseCollectionInto(c, int(link)); err != nil {
		return nil, err
	}
	return c, nil
}
