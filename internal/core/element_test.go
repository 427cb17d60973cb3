package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarTypedAccessors(t *testing.T) {
	s := NewScalar(Identifier{1}, Real8)
	s.SetReal8(3.25)
	require.Equal(t, 3.25, s.GetReal8())

	s2 := NewScalar(Identifier{2}, UnsignedInteger1)
	s2.SetUint1(200)
	require.Equal(t, uint8(200), s2.GetUint1())
}

func TestScalarGuidRoundTrip(t *testing.T) {
	id := MustParseIdentifier("a6b21e6b-b3c7-4f3f-aefa-a4e5b9a2d06d")
	s := NewScalar(Identifier{3}, Guid)
	s.SetGuid(id)
	require.Equal(t, id, s.GetGuid())
}

func TestVectorReal8IndexAccess(t *testing.T) {
	v := NewVector(Identifier{4}, Real8)
	require.NoError(t, v.SetSize(3))

	require.NoError(t, v.SetReal8(0, 1.5))
	require.NoError(t, v.SetReal8(1, -2.5))
	require.NoError(t, v.SetReal8(2, 100))

	got0, err := v.GetReal8(0)
	require.NoError(t, err)
	require.Equal(t, 1.5, got0)

	got2, err := v.GetReal8(2)
	require.NoError(t, err)
	require.Equal(t, float64(100), got2)
}

func TestVectorOutOfRangeIndex(t *testing.T) {
	v := NewVector(Identifier{5}, Real8)
	require.NoError(t, v.SetSize(2))

	_, err := v.GetReal8(5)
	require.Error(t, err)

	err = v.SetReal8(-1, 1)
	require.Error(t, err)
}

func TestVectorResizePreservesBytes(t *testing.T) {
	v := NewVector(Identifier{6}, UnsignedInteger4)
	require.NoError(t, v.SetSize(2))
	require.NoError(t, v.SetUint4(0, 10))
	require.NoError(t, v.SetUint4(1, 20))

	require.NoError(t, v.SetSize(4))
	got0, err := v.GetUint4(0)
	require.NoError(t, err)
	require.Equal(t, uint32(10), got0)
	got1, err := v.GetUint4(1)
	require.NoError(t, err)
	require.Equal(t, uint32(20), got1)
}

func TestCollectionAddAndLookup(t *testing.T) {
	c := NewCollection(Identifier{7})
	s1 := NewScalar(Identifier{8}, Real8)
	s1.SetReal8(1)
	s2 := NewScalar(Identifier{8}, Real8)
	s2.SetReal8(2)
	c.Add(s1)
	c.Add(s2)

	require.Same(t, s1, c.GetScalarByTag(Identifier{8}))

	var seen []float64
	for e := range c.AllByTag(Identifier{8}) {
		seen = append(seen, e.(*Scalar).GetReal8())
	}
	require.Equal(t, []float64{1, 2}, seen)
}

func TestCollectionRemoveByTag(t *testing.T) {
	c := NewCollection(Identifier{9})
	c.Add(NewScalar(Identifier{10}, Real8))
	c.Add(NewScalar(Identifier{10}, Real8))
	c.Add(NewScalar(Identifier{11}, Real8))

	removed := c.RemoveByTag(Identifier{10})
	require.Equal(t, 2, removed)
	require.Len(t, c.Children(), 1)
}

func TestCollectionGetOrAdd(t *testing.T) {
	c := NewCollection(Identifier{12})
	s := c.GetOrAddScalar(Identifier{13}, Real8)
	require.NotNil(t, s)
	same := c.GetOrAddScalar(Identifier{13}, Real8)
	require.Same(t, s, same)

	sub := c.GetOrAddCollection(Identifier{14})
	require.NotNil(t, sub)
	require.Same(t, sub, c.GetOrAddCollection(Identifier{14}))
}

func TestCollectionSetTag(t *testing.T) {
	c := NewCollection(Identifier{})
	require.True(t, c.Tag().IsZero())
	c.SetTag(RecordTypeContainer)
	require.Equal(t, RecordTypeContainer, c.Tag())
}

func TestErrorElement(t *testing.T) {
	e := NewErrorElement(Identifier{15}, byte(KindScalar), Real8, require.AnError)
	require.Equal(t, KindError, e.Kind())
	require.ErrorIs(t, e.Cause(), require.AnError)
	require.Contains(t, e.Error(), "failed to parse")
}
