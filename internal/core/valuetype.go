package core

import "fmt"

// ValueType is the physical value type byte that tags every Scalar and
// Vector element. It classifies the fixed-width encoding of the element's
// buffer the same way the teacher's DatatypeClass classifies an HDF5
// datatype message, but PQDIF's set is closed and carried directly on the
// element header rather than assembled from a separate datatype message.
type ValueType uint8

// Physical value types, per spec.md §3. The byte size of each variant is
// an invariant the codec and the element tree both depend on.
const (
	Boolean1        ValueType = 0
	Boolean2        ValueType = 1
	Boolean4        ValueType = 2
	Char1           ValueType = 3
	Char2           ValueType = 4
	Integer1        ValueType = 5
	Integer2        ValueType = 6
	Integer4        ValueType = 7
	UnsignedInteger1 ValueType = 8
	UnsignedInteger2 ValueType = 9
	UnsignedInteger4 ValueType = 10
	Real4           ValueType = 11
	Real8           ValueType = 12
	Complex8        ValueType = 13
	Complex16       ValueType = 14
	Timestamp       ValueType = 15
	Guid            ValueType = 16
)

// ByteSize returns the fixed on-disk byte size of a scalar of this value
// type, or 0 if the value is not a recognized physical value type.
func (v ValueType) ByteSize() int {
	switch v {
	case Boolean1, Char1, Integer1, UnsignedInteger1:
		return 1
	case Boolean2, Char2, Integer2, UnsignedInteger2:
		return 2
	case Boolean4, Integer4, UnsignedInteger4, Real4:
		return 4
	case Real8, Complex8:
		return 8
	case Timestamp:
		return 12
	case Complex16, Guid:
		return 16
	default:
		return 0
	}
}

// IsKnown reports whether v is one of the physical value types this codec
// recognizes.
func (v ValueType) IsKnown() bool {
	return v.ByteSize() > 0
}

// Embeddable reports whether a Scalar of this value type may be embedded
// in its parent's 28-byte element header (spec.md §4.D: "Scalars whose
// value_type is strictly smaller than 8 bytes are embedded").
func (v ValueType) Embeddable() bool {
	return v.IsKnown() && v.ByteSize() < 8
}

func (v ValueType) String() string {
	switch v {
	case Boolean1:
		return "Boolean1"
	case Boolean2:
		return "Boolean2"
	case Boolean4:
		return "Boolean4"
	case Char1:
		return "Char1"
	case Char2:
		return "Char2"
	case Integer1:
		return "Integer1"
	case Integer2:
		return "Integer2"
	case Integer4:
		return "Integer4"
	case UnsignedInteger1:
		return "UnsignedInteger1"
	case UnsignedInteger2:
		return "UnsignedInteger2"
	case UnsignedInteger4:
		return "UnsignedInteger4"
	case Real4:
		return "Real4"
	case Real8:
		return "Real8"
	case Complex8:
		return "Complex8"
	case Complex16:
		return "Complex16"
	case Timestamp:
		return "Timestamp"
	case Guid:
		return "Guid"
	default:
		return fmt.Sprintf("ValueType(%d)", uint8(v))
	}
}
