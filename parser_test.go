package pqdif

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/pqdif/internal/core"
)

// memReaderAt adapts a byte slice to io.ReaderAt for Open.
type memReaderAt struct {
	data []byte
}

func (m *memReaderAt) ReadAt(p []byte, off int64) (int, error) {
	return bytes.NewReader(m.data).ReadAt(p, off)
}

func buildSampleStream(t *testing.T) []byte {
	t.Helper()
	w, err := NewWriter()
	require.NoError(t, err)
	require.NoError(t, w.Container().SetFileName("sample.pqd"))

	ds := w.AddDataSource()
	require.NoError(t, ds.SetName("substation-1"))
	cd := ds.AddChannelDefinition()
	cd.SetQuantityTypeID(MustParseIdentifier("a6b21e6b-b3c7-4f3f-aefa-a4e5b9a2d06d"))
	require.NoError(t, w.WriteDataSource(ds))

	obs := w.AddObservation()
	require.NoError(t, obs.SetName("obs-1"))
	ci := obs.AddChannelInstance()
	ci.SetChannelDefinitionIndex(0)
	si := ci.AddSeriesInstance()
	require.NoError(t, si.SetValues([]float64{1, 2, 3}))
	require.NoError(t, w.WriteObservation(obs))

	data, err := w.Close()
	require.NoError(t, err)
	return data
}

func TestParserRoundTripsWriterOutput(t *testing.T) {
	data := buildSampleStream(t)

	p, err := Open(&memReaderAt{data: data})
	require.NoError(t, err)

	fileName, err := p.Container().FileName()
	require.NoError(t, err)
	require.Equal(t, "sample.pqd", fileName)

	obs, ds, ms, err := p.Next()
	require.NoError(t, err)
	require.Nil(t, ms)

	dsName, err := ds.Name()
	require.NoError(t, err)
	require.Equal(t, "substation-1", dsName)

	obsName, err := obs.Name()
	require.NoError(t, err)
	require.Equal(t, "obs-1", obsName)

	instances := obs.ChannelInstances()
	require.Len(t, instances, 1)
	series := instances[0].SeriesInstances()
	require.Len(t, series, 1)
	vals, err := series[0].Values()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, vals)

	quantityID, err := instances[0].QuantityTypeID(ds)
	require.NoError(t, err)
	require.Equal(t, MustParseIdentifier("a6b21e6b-b3c7-4f3f-aefa-a4e5b9a2d06d"), quantityID)

	_, _, _, err = p.Next()
	require.ErrorIs(t, err, core.ErrEndOfStream)
}

func TestParserExposesDataSources(t *testing.T) {
	data := buildSampleStream(t)

	p, err := Open(&memReaderAt{data: data})
	require.NoError(t, err)

	_, _, _, err = p.Next()
	require.NoError(t, err)

	sources := p.DataSources()
	require.Len(t, sources, 1)
	name, err := sources[0].Name()
	require.NoError(t, err)
	require.Equal(t, "substation-1", name)
}
