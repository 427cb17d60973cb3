package core

import (
	"encoding/binary"
	"fmt"
)

// RecordHeaderSize is the fixed on-disk size of a record header, per
// spec.md §6 "Record Header".
const RecordHeaderSize = 64

// RecordSignature is the 16-byte GUID that must open every record header.
// It is a fixed, well-known constant, not a per-record value.
var RecordSignature = MustParseIdentifier("67355103-4F23-4BF2-901B-DD2DE5A94C1E")

// RecordHeader is the fixed 64-byte preamble that opens every physical
// record: a signature GUID, the record's type tag, the size of the header
// and body, the file offset of the next record, a checksum over the body,
// and 16 reserved bytes.
//
// Layout (little-endian):
//
//	offset  size  field
//	0       16    signature
//	16      16    record_type_tag
//	32      4     header_size
//	36      4     body_size
//	40      4     next_record_position
//	44      4     checksum
//	48      16    reserved
type RecordHeader struct {
	Signature          Identifier
	RecordTypeTag      Identifier
	HeaderSize         uint32
	BodySize           uint32
	NextRecordPosition uint32
	Checksum           uint32
	Reserved           [16]byte
}

// DecodeRecordHeader parses a 64-byte buffer into a RecordHeader. It does
// not validate the signature; callers check that separately so a bad
// signature can be reported with file-position context.
func DecodeRecordHeader(buf []byte) (RecordHeader, error) {
	if len(buf) < RecordHeaderSize {
		return RecordHeader{}, fmt.Errorf("core: record header buffer too short: %d bytes", len(buf))
	}
	var h RecordHeader
	copy(h.Signature[:], buf[0:16])
	copy(h.RecordTypeTag[:], buf[16:32])
	h.HeaderSize = binary.LittleEndian.Uint32(buf[32:36])
	h.BodySize = binary.LittleEndian.Uint32(buf[36:40])
	h.NextRecordPosition = binary.LittleEndian.Uint32(buf[40:44])
	h.Checksum = binary.LittleEndian.Uint32(buf[44:48])
	copy(h.Reserved[:], buf[48:64])
	return h, nil
}

// EncodeRecordHeader serializes h into a 64-byte buffer.
func EncodeRecordHeader(h RecordHeader, buf []byte) error {
	if len(buf) < RecordHeaderSize {
		return fmt.Errorf("core: record header buffer too short: %d bytes", len(buf))
	}
	copy(buf[0:16], h.Signature[:])
	copy(buf[16:32], h.RecordTypeTag[:])
	binary.LittleEndian.PutUint32(buf[32:36], h.HeaderSize)
	binary.LittleEndian.PutUint32(buf[36:40], h.BodySize)
	binary.LittleEndian.PutUint32(buf[40:44], h.NextRecordPosition)
	binary.LittleEndian.PutUint32(buf[44:48], h.Checksum)
	copy(buf[48:64], h.Reserved[:])
	return nil
}

// RecordTypeTag values, per spec.md §3 "Record type". The specification
// leaves the literal GUIDs to "the reference source"; these stand in for
// them here, chosen to keep every well-known identifier in this codec
// under a consistent namespace.
var (
	RecordTypeContainer       = MustParseIdentifier("3d786f81-f76e-4ae2-b7ea-9cc2f6c0d6b7")
	RecordTypeDataSource      = MustParseIdentifier("b48d858c-f5f5-4f34-a394-42de1fda2ff4")
	RecordTypeMonitorSettings = MustParseIdentifier("87f4e410-f1c3-11cf-9d89-0080c72e70a3")
	RecordTypeObservation     = MustParseIdentifier("8a1dd400-f1c3-11cf-9d89-0080c72e70a3")
)

// RecordTypeName returns a human-readable label for a record type tag, or
// "unknown" if it does not match one of the four well-known types.
func RecordTypeName(tag Identifier) string {
	switch tag {
	case RecordTypeContainer:
		return "Container"
	case RecordTypeDataSource:
		return "DataSource"
	case RecordTypeMonitorSettings:
		return "MonitorSettings"
	case RecordTypeObservation:
		return "Observation"
	default:
		return "unknown"
	}
}
