package pqdif

import "github.com/scigolib/pqdif/internal/core"

// ValueType is the physical value type byte that tags every Scalar and
// Vector element; see internal/core.ValueType for the byte-size and
// embeddability rules.
type ValueType = core.ValueType

// Physical value types, per spec.md §3.
const (
	Boolean1         = core.Boolean1
	Boolean2         = core.Boolean2
	Boolean4         = core.Boolean4
	Char1            = core.Char1
	Char2            = core.Char2
	Integer1         = core.Integer1
	Integer2         = core.Integer2
	Integer4         = core.Integer4
	UnsignedInteger1 = core.UnsignedInteger1
	UnsignedInteger2 = core.UnsignedInteger2
	UnsignedInteger4 = core.UnsignedInteger4
	Real4            = core.Real4
	Real8            = core.Real8
	Complex8         = core.Complex8
	Complex16        = core.Complex16
	Timestamp        = core.Timestamp
	Guid             = core.Guid
)
