package core_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/pqdif/internal/core"
	"github.com/scigolib/pqdif/internal/writer"
)

// buildSimpleRecord serializes a Container-shaped record with a scalar, a
// vector, and a nested collection, exercising the embedded and linked
// payload paths and the shared-absolute-offset addressing scheme.
func buildSimpleRecord(t *testing.T) []byte {
	t.Helper()

	root := core.NewCollection(core.RecordTypeContainer)

	name := core.NewScalar(core.FileNameTag, core.UnsignedInteger1)
	name.SetUint1(42) // embeddable (1 byte)
	root.Add(name)

	vec := core.NewVector(core.VersionInfoTag, core.UnsignedInteger4)
	require.NoError(t, vec.SetSize(2))
	require.NoError(t, vec.SetUint4(0, 1))
	require.NoError(t, vec.SetUint4(1, 5))
	root.Add(vec)

	nested := core.NewCollection(core.ChannelDefinitionsTag)
	inner := core.NewScalar(core.QuantityTypeIDTag, core.Real8)
	inner.SetReal8(3.14)
	nested.Add(inner)
	root.Add(nested)

	w := writer.New()
	require.NoError(t, w.WriteRecord(core.RecordTypeContainer, root, false))
	return w.Bytes()
}

func TestReaderWriterRoundTrip(t *testing.T) {
	data := buildSimpleRecord(t)

	r := core.NewReader(bytes.NewReader(data))
	rec, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, core.RecordTypeContainer, rec.Header.RecordTypeTag)
	require.Equal(t, core.RecordTypeContainer, rec.Body.Tag())
	require.True(t, rec.ChecksumOK)
	require.Equal(t, rec.Header.Checksum, rec.ComputedChecksum)

	gotName := rec.Body.GetScalarByTag(core.FileNameTag)
	require.NotNil(t, gotName)
	require.Equal(t, uint8(42), gotName.GetUint1())

	gotVec := rec.Body.GetVectorByTag(core.VersionInfoTag)
	require.NotNil(t, gotVec)
	v0, err := gotVec.GetUint4(0)
	require.NoError(t, err)
	require.Equal(t, uint32(1), v0)
	v1, err := gotVec.GetUint4(1)
	require.NoError(t, err)
	require.Equal(t, uint32(5), v1)

	gotNested := rec.Body.GetCollectionByTag(core.ChannelDefinitionsTag)
	require.NotNil(t, gotNested)
	gotInner := gotNested.GetScalarByTag(core.QuantityTypeIDTag)
	require.NotNil(t, gotInner)
	require.InDelta(t, 3.14, gotInner.GetReal8(), 1e-12)

	_, err = r.Next()
	require.ErrorIs(t, err, core.ErrEndOfStream)
}

func TestReaderRejectsBadSignature(t *testing.T) {
	data := buildSimpleRecord(t)
	data[0] ^= 0xff // corrupt the signature's first byte

	r := core.NewReader(bytes.NewReader(data))
	_, err := r.Next()
	require.Error(t, err)
}

func TestReaderRejectsWrongHeaderSize(t *testing.T) {
	data := buildSimpleRecord(t)
	// header_size lives at byte offset 32, little-endian uint32.
	data[32] = 63

	r := core.NewReader(bytes.NewReader(data))
	_, err := r.Next()
	require.Error(t, err)
}

func TestReaderSurfacesChecksumMismatchWithoutAborting(t *testing.T) {
	data := buildSimpleRecord(t)
	// Flip the first child header's reserved byte: the parser never reads
	// it, so the tree still parses cleanly, but it invalidates the stored
	// checksum without touching the stored checksum field itself.
	reservedByteOffset := core.RecordHeaderSize + 4 + 19
	data[reservedByteOffset] ^= 0xff

	r := core.NewReader(bytes.NewReader(data))
	rec, err := r.Next()
	require.NoError(t, err, "a checksum mismatch must not abort parsing")
	require.NotNil(t, rec.Body)
	require.False(t, rec.ChecksumOK)
	require.NotEqual(t, rec.Header.Checksum, rec.ComputedChecksum)

	gotName := rec.Body.GetScalarByTag(core.FileNameTag)
	require.NotNil(t, gotName)
	require.Equal(t, uint8(42), gotName.GetUint1())
}

func TestReaderCycleGuard(t *testing.T) {
	root := core.NewCollection(core.RecordTypeContainer)
	w := writer.New()
	// hasNext=true on a single-record stream makes next_record_position
	// point at the position right after this record, i.e. past EOF; a
	// well-formed reader should just hit a short read there, not loop.
	// To exercise the guard directly, patch this single record so that it
	// chains back to its own start offset.
	require.NoError(t, w.WriteRecord(core.RecordTypeContainer, root, true))
	firstRecordBytes := w.Bytes()

	// Manually patch the first record's next_record_position to point at
	// offset 0 (itself), simulating a malformed cyclic chain.
	patched := append([]byte(nil), firstRecordBytes...)
	patched[40], patched[41], patched[42], patched[43] = 0, 0, 0, 0

	r := core.NewReader(bytes.NewReader(patched))
	_, err := r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	require.ErrorIs(t, err, core.ErrEndOfStream)
}

func TestReaderCompressionRoundTrip(t *testing.T) {
	root := core.NewCollection(core.RecordTypeContainer)
	v := core.NewVector(core.VersionInfoTag, core.Char1)
	payload := bytes.Repeat([]byte("pqdif"), 50)
	require.NoError(t, v.SetSize(uint32(len(payload))))
	require.NoError(t, v.SetBytes(payload))
	root.Add(v)

	w := writer.New()
	require.NoError(t, w.SetCompression(core.CompressionZlib, core.CompressionStyleRecordLevel))
	require.NoError(t, w.WriteRecord(core.RecordTypeContainer, root, false))

	r := core.NewReader(bytes.NewReader(w.Bytes()))
	require.NoError(t, r.SetCompression(core.CompressionZlib, core.CompressionStyleRecordLevel))

	rec, err := r.Next()
	require.NoError(t, err)
	got := rec.Body.GetVectorByTag(core.VersionInfoTag)
	require.NotNil(t, got)
	require.Equal(t, payload, got.GetBytes())
}

func TestSetCompressionRejectsUnsupported(t *testing.T) {
	r := core.NewReader(bytes.NewReader(nil))
	require.Error(t, r.SetCompression(core.CompressionPKZIP, core.CompressionStyleRecordLevel))
	require.Error(t, r.SetCompression(core.CompressionZlib, core.CompressionStyleTotalFile))

	w := writer.New()
	require.Error(t, w.SetCompression(core.CompressionPKZIP, core.CompressionStyleRecordLevel))
}
