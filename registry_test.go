package pqdif

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetTagInfoBundledDocument(t *testing.T) {
	info, ok := GetTagInfo(QuantityTypeIDTag)
	require.True(t, ok)
	require.Equal(t, "QuantityTypeID", info.Name)
}

func TestQuantityTypeCacheLookup(t *testing.T) {
	voltage := MustParseIdentifier("1c1c2d0d-2d0a-4f3d-8d8a-5b6e1c2d3e4f")
	v, ok := QuantityType.Lookup(voltage)
	require.True(t, ok)
	require.Equal(t, "Voltage", v.Name)

	_, ok = QuantityType.Lookup(MustParseIdentifier("00000000-0000-0000-0000-000000000000"))
	require.False(t, ok)
}

func TestEquipmentCacheLookup(t *testing.T) {
	relay := MustParseIdentifier("7d8e9fa0-b1c2-4d3e-af5a-6b7c8d9e0f1a")
	v, ok := Equipment.Lookup(relay)
	require.True(t, ok)
	require.Equal(t, "Relay", v.Name)
}

func TestDisturbanceCategoryCacheLookup(t *testing.T) {
	sag := MustParseIdentifier("9fa0b1c2-d3e4-4f5a-c17c-8d9e0f1a2b3c")
	v, ok := DisturbanceCategory.Lookup(sag)
	require.True(t, ok)
	require.Equal(t, "Sag", v.Name)
}

func TestQuantityCharacteristicCacheLookup(t *testing.T) {
	peak := MustParseIdentifier("b1c2d3e4-f5a6-416c-e39e-af1a2b3c4d5e")
	v, ok := QuantityCharacteristic.Lookup(peak)
	require.True(t, ok)
	require.Equal(t, "Peak", v.Name)
}

func TestIdentifierCacheInfoStable(t *testing.T) {
	first, ok := QuantityType.Info()
	require.True(t, ok)
	second, ok := QuantityType.Info()
	require.True(t, ok)
	require.Same(t, first, second, "repeated Info calls with no Refresh must return the same TagInfo")
}
