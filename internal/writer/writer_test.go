package writer

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/pqdif/internal/core"
)

func TestEmbeddedScalarLaw(t *testing.T) {
	root := core.NewCollection(core.RecordTypeContainer)
	u1 := core.NewScalar(core.FileNameTag, core.UnsignedInteger1)
	u1.SetUint1(7)
	root.Add(u1)

	r8 := core.NewScalar(core.QuantityTypeIDTag, core.Real8)
	r8.SetReal8(9.5)
	root.Add(r8)

	ew := newElementWriter()
	require.NoError(t, ew.writeCollection(root))
	body := ew.Bytes()

	// child count lives in the first 4 bytes.
	require.Equal(t, uint32(2), binary.LittleEndian.Uint32(body[0:4]))

	u1HdrOff := 4
	require.Equal(t, byte(1), body[u1HdrOff+18], "1-byte scalar must be embedded")

	r8HdrOff := 4 + elementHeaderSize
	require.Equal(t, byte(0), body[r8HdrOff+18], "8-byte scalar must be linked, not embedded")
	linkOffset := binary.LittleEndian.Uint32(body[r8HdrOff+20 : r8HdrOff+24])
	require.Equal(t, uint32(0), linkOffset%4, "linked payloads start on a 4-byte boundary")
}

func TestVectorPayloadPadding(t *testing.T) {
	root := core.NewCollection(core.RecordTypeContainer)
	v := core.NewVector(core.VersionInfoTag, core.UnsignedInteger1)
	require.NoError(t, v.SetSize(3)) // 4-byte size prefix + 3 bytes, needs 1 pad byte
	root.Add(v)

	ew := newElementWriter()
	require.NoError(t, ew.writeCollection(root))
	body := ew.Bytes()

	hdrOff := 4
	payloadLen := binary.LittleEndian.Uint32(body[hdrOff+24 : hdrOff+28])
	require.Equal(t, uint32(4+3), payloadLen)
	require.Equal(t, 0, len(body)%4, "record body must end on a 4-byte boundary")
}

func TestNestedCollectionLinkAddressing(t *testing.T) {
	root := core.NewCollection(core.RecordTypeContainer)
	nested := core.NewCollection(core.ChannelDefinitionsTag)
	inner := core.NewScalar(core.QuantityTypeIDTag, core.Real8)
	inner.SetReal8(1.25)
	nested.Add(inner)
	root.Add(nested)

	ew := newElementWriter()
	require.NoError(t, ew.writeCollection(root))
	body := ew.Bytes()

	nestedHdrOff := 4
	require.Equal(t, byte(0), body[nestedHdrOff+18], "collections are never embedded")
	linkOffset := binary.LittleEndian.Uint32(body[nestedHdrOff+20 : nestedHdrOff+24])
	require.Less(t, int(linkOffset), len(body))

	// The nested collection's own child count header sits at linkOffset.
	require.Equal(t, uint32(1), binary.LittleEndian.Uint32(body[linkOffset:linkOffset+4]))
}

func TestWriteRecordUnknownValueTypeRejected(t *testing.T) {
	root := core.NewCollection(core.RecordTypeContainer)
	bad := core.NewScalar(core.FileNameTag, core.ValueType(0xff))
	root.Add(bad)

	w := New()
	err := w.WriteRecord(core.RecordTypeContainer, root, false)
	require.Error(t, err)
}

func TestWriteRecordNextRecordPositionChaining(t *testing.T) {
	w := New()
	first := core.NewCollection(core.RecordTypeContainer)
	require.NoError(t, w.WriteRecord(core.RecordTypeContainer, first, true))
	firstEnd := w.Pos()

	second := core.NewCollection(core.RecordTypeDataSource)
	require.NoError(t, w.WriteRecord(core.RecordTypeDataSource, second, false))

	data := w.Bytes()
	firstNext := binary.LittleEndian.Uint32(data[40:44])
	require.Equal(t, firstEnd, firstNext)

	secondHeaderOff := int(firstEnd)
	secondNext := binary.LittleEndian.Uint32(data[secondHeaderOff+40 : secondHeaderOff+44])
	require.Equal(t, uint32(0), secondNext, "last record in the chain terminates with 0")
}
