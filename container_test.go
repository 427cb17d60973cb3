package pqdif

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewContainerRecordDefaults(t *testing.T) {
	c := NewContainerRecord()

	major, err := c.WriterMajor()
	require.NoError(t, err)
	require.Equal(t, uint32(1), major)

	minor, err := c.WriterMinor()
	require.NoError(t, err)
	require.Equal(t, uint32(5), minor)

	cMajor, err := c.CompatibleMajor()
	require.NoError(t, err)
	require.Equal(t, uint32(1), cMajor)

	cMinor, err := c.CompatibleMinor()
	require.NoError(t, err)
	require.Equal(t, uint32(0), cMinor)
}

func TestNewContainerRecordDefaultsFileNameAndCreation(t *testing.T) {
	before := time.Now().UTC()
	c := NewContainerRecord()
	after := time.Now().UTC()

	name, err := c.FileName()
	require.NoError(t, err)
	require.Regexp(t, `^\d{4}-\d{2}-\d{2}_\d{2}\.\d{2}\.\d{2}\.pqd$`, name)

	created, err := c.Creation()
	require.NoError(t, err)
	require.False(t, created.Before(before.Add(-time.Second)))
	require.False(t, created.After(after.Add(time.Second)))
}

func TestContainerFileNameRoundTrip(t *testing.T) {
	c := NewContainerRecord()

	require.NoError(t, c.SetFileName("2024-06-15_13.45.30.pqd"))
	name, err := c.FileName()
	require.NoError(t, err)
	require.Equal(t, "2024-06-15_13.45.30.pqd", name)
}

func TestContainerCreationRoundTrip(t *testing.T) {
	c := NewContainerRecord()
	want := time.Date(2024, 6, 15, 13, 45, 30, 0, time.UTC)
	require.NoError(t, c.SetCreation(want))

	got, err := c.Creation()
	require.NoError(t, err)
	require.WithinDuration(t, want, got, time.Millisecond)
}

func TestDefaultFileName(t *testing.T) {
	ts := time.Date(2024, 6, 15, 13, 45, 30, 0, time.UTC)
	require.Equal(t, "2024-06-15_13.45.30.pqd", DefaultFileName(ts))
}

func TestContainerVersionOverwrite(t *testing.T) {
	c := NewContainerRecord()
	require.NoError(t, c.SetWriterVersion(2, 1))
	major, err := c.WriterMajor()
	require.NoError(t, err)
	require.Equal(t, uint32(2), major)
	minor, err := c.WriterMinor()
	require.NoError(t, err)
	require.Equal(t, uint32(1), minor)
}
