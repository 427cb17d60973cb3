// Package core implements the PQDIF physical layer: the primitive value
// codec, the Element tree, record framing, compression, and the
// checksum/error-recovery rules that turn a byte stream into a navigable
// tree of typed elements and back again.
package core

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// epoch1900 is the PQDIF timestamp epoch. The standard's commonly quoted
// 25569-day offset to the Unix epoch is incorrect by two days; the true
// difference is 25567, so decode subtracts 2 days and encode adds 2 days
// back. See spec.md §3 "Timestamp" — this asymmetry is required, not a bug.
var epoch1900 = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// DecodeTimestamp decodes a 12-byte Timestamp buffer: 4 bytes little-endian
// days-since-epoch, followed by 8 bytes little-endian seconds-since-midnight
// (float64).
func DecodeTimestamp(buf []byte) (time.Time, error) {
	if len(buf) < 12 {
		return time.Time{}, fmt.Errorf("core: timestamp buffer too short: %d bytes", len(buf))
	}
	days := binary.LittleEndian.Uint32(buf[0:4])
	seconds := math.Float64frombits(binary.LittleEndian.Uint64(buf[4:12]))

	midnight := epoch1900.AddDate(0, 0, int(days)-2)
	return midnight.Add(time.Duration(seconds * float64(time.Second))), nil
}

// EncodeTimestamp is the inverse of DecodeTimestamp: it splits t into a
// whole-day count since 1900-01-01 (plus the +2 day correction) and the
// fractional seconds since that day's UTC midnight.
func EncodeTimestamp(t time.Time, buf []byte) error {
	if len(buf) < 12 {
		return fmt.Errorf("core: timestamp buffer too short: %d bytes", len(buf))
	}
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	dayCount := int64(math.Round(midnight.Sub(epoch1900).Hours() / 24))
	days := dayCount + 2
	if days < 0 || days > math.MaxUint32 {
		return fmt.Errorf("core: timestamp %v out of encodable range", t)
	}
	seconds := t.Sub(midnight).Seconds()

	binary.LittleEndian.PutUint32(buf[0:4], uint32(days))
	binary.LittleEndian.PutUint64(buf[4:12], math.Float64bits(seconds))
	return nil
}

// DecodeBool1/2/4 interpret a fixed-width buffer as a boolean: any nonzero
// value is true.
func DecodeBool1(buf []byte) bool { return buf[0] != 0 }
func DecodeBool2(buf []byte) bool { return binary.LittleEndian.Uint16(buf) != 0 }
func DecodeBool4(buf []byte) bool { return binary.LittleEndian.Uint32(buf) != 0 }

func EncodeBool1(v bool, buf []byte) {
	if v {
		buf[0] = 1
	} else {
		buf[0] = 0
	}
}

func EncodeBool2(v bool, buf []byte) {
	var u uint16
	if v {
		u = 1
	}
	binary.LittleEndian.PutUint16(buf, u)
}

func EncodeBool4(v bool, buf []byte) {
	var u uint32
	if v {
		u = 1
	}
	binary.LittleEndian.PutUint32(buf, u)
}

// DecodeChar1 decodes a single 8-bit ASCII character.
func DecodeChar1(buf []byte) byte { return buf[0] }

// EncodeChar1 encodes a single 8-bit ASCII character.
func EncodeChar1(v byte, buf []byte) { buf[0] = v }

// DecodeChar2 decodes a single 16-bit UTF-16LE code unit as a rune. Surrogate
// pairs are not handled: PQDIF Char2 scalars hold one UTF-16 code unit each,
// with multi-character text carried in a Vector of Char2.
func DecodeChar2(buf []byte) rune { return rune(binary.LittleEndian.Uint16(buf)) }

// EncodeChar2 encodes a single UTF-16LE code unit.
func EncodeChar2(v rune, buf []byte) { binary.LittleEndian.PutUint16(buf, uint16(v)) }

func DecodeInt1(buf []byte) int8  { return int8(buf[0]) }
func DecodeInt2(buf []byte) int16 { return int16(binary.LittleEndian.Uint16(buf)) }
func DecodeInt4(buf []byte) int32 { return int32(binary.LittleEndian.Uint32(buf)) }

func EncodeInt1(v int8, buf []byte)  { buf[0] = byte(v) }
func EncodeInt2(v int16, buf []byte) { binary.LittleEndian.PutUint16(buf, uint16(v)) }
func EncodeInt4(v int32, buf []byte) { binary.LittleEndian.PutUint32(buf, uint32(v)) }

func DecodeUint1(buf []byte) uint8  { return buf[0] }
func DecodeUint2(buf []byte) uint16 { return binary.LittleEndian.Uint16(buf) }
func DecodeUint4(buf []byte) uint32 { return binary.LittleEndian.Uint32(buf) }

func EncodeUint1(v uint8, buf []byte)  { buf[0] = v }
func EncodeUint2(v uint16, buf []byte) { binary.LittleEndian.PutUint16(buf, v) }
func EncodeUint4(v uint32, buf []byte) { binary.LittleEndian.PutUint32(buf, v) }

func DecodeReal4(buf []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf)) }
func DecodeReal8(buf []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(buf)) }

func EncodeReal4(v float32, buf []byte) { binary.LittleEndian.PutUint32(buf, math.Float32bits(v)) }
func EncodeReal8(v float64, buf []byte) { binary.LittleEndian.PutUint64(buf, math.Float64bits(v)) }

// DecodeComplex8 decodes two consecutive little-endian Real4 (real, then
// imaginary).
func DecodeComplex8(buf []byte) complex64 {
	return complex(DecodeReal4(buf[0:4]), DecodeReal4(buf[4:8]))
}

// EncodeComplex8 is the inverse of DecodeComplex8.
func EncodeComplex8(v complex64, buf []byte) {
	EncodeReal4(real(v), buf[0:4])
	EncodeReal4(imag(v), buf[4:8])
}

// DecodeComplex16 decodes two consecutive little-endian Real8 (real, then
// imaginary).
func DecodeComplex16(buf []byte) complex128 {
	return complex(DecodeReal8(buf[0:8]), DecodeReal8(buf[8:16]))
}

// EncodeComplex16 is the inverse of DecodeComplex16.
func EncodeComplex16(v complex128, buf []byte) {
	EncodeReal8(real(v), buf[0:8])
	EncodeReal8(imag(v), buf[8:16])
}

// DecodeGuid copies a 16-byte mixed-endian GUID buffer into an Identifier.
// The on-disk bytes and the Identifier's internal representation are the
// same layout, so this is a plain copy — see Identifier's doc comment.
func DecodeGuid(buf []byte) (id Identifier) {
	copy(id[:], buf[:16])
	return id
}

// EncodeGuid is the inverse of DecodeGuid.
func EncodeGuid(id Identifier, buf []byte) {
	copy(buf[:16], id[:])
}
