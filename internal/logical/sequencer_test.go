package logical

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/pqdif/internal/core"
	"github.com/scigolib/pqdif/internal/writer"
)

func recordsToReader(t *testing.T, records []func(*writer.Writer, bool) error) *core.Reader {
	t.Helper()
	w := writer.New()
	for i, write := range records {
		require.NoError(t, write(w, i < len(records)-1))
	}
	return core.NewReader(bytes.NewReader(w.Bytes()))
}

func containerRecord(w *writer.Writer, hasNext bool) error {
	root := core.NewCollection(core.RecordTypeContainer)
	return w.WriteRecord(core.RecordTypeContainer, root, hasNext)
}

func dataSourceRecord(w *writer.Writer, hasNext bool) error {
	root := core.NewCollection(core.RecordTypeDataSource)
	return w.WriteRecord(core.RecordTypeDataSource, root, hasNext)
}

func monitorSettingsRecord(w *writer.Writer, hasNext bool) error {
	root := core.NewCollection(core.RecordTypeMonitorSettings)
	return w.WriteRecord(core.RecordTypeMonitorSettings, root, hasNext)
}

func observationRecord(w *writer.Writer, hasNext bool) error {
	root := core.NewCollection(core.RecordTypeObservation)
	return w.WriteRecord(core.RecordTypeObservation, root, hasNext)
}

func TestSequencerRejectsMissingContainer(t *testing.T) {
	r := recordsToReader(t, []func(*writer.Writer, bool) error{dataSourceRecord})
	_, err := Open(r)
	require.ErrorIs(t, err, ErrNoContainer)
}

func TestSequencerObservationWithoutDataSource(t *testing.T) {
	r := recordsToReader(t, []func(*writer.Writer, bool) error{containerRecord, observationRecord})
	s, err := Open(r)
	require.NoError(t, err)

	_, _, _, err = s.Next()
	require.ErrorIs(t, err, ErrObservationWithoutDataSource)
}

func TestSequencerTracksInForceState(t *testing.T) {
	r := recordsToReader(t, []func(*writer.Writer, bool) error{
		containerRecord,
		dataSourceRecord,
		monitorSettingsRecord,
		observationRecord,
		observationRecord,
	})
	s, err := Open(r)
	require.NoError(t, err)

	obs1, ds1, ms1, err := s.Next()
	require.NoError(t, err)
	require.NotNil(t, obs1)
	require.NotNil(t, ds1)
	require.NotNil(t, ms1)

	obs2, ds2, ms2, err := s.Next()
	require.NoError(t, err)
	require.NotNil(t, obs2)
	require.Same(t, ds1, ds2, "data source stays in force across observations")
	require.Same(t, ms1, ms2, "monitor settings stays in force across observations")

	_, _, _, err = s.Next()
	require.ErrorIs(t, err, core.ErrEndOfStream)

	require.Len(t, s.DataSources(), 1)
}

func TestSequencerDuplicateContainer(t *testing.T) {
	r := recordsToReader(t, []func(*writer.Writer, bool) error{
		containerRecord,
		dataSourceRecord,
		containerRecord,
	})
	s, err := Open(r)
	require.NoError(t, err)

	require.NoError(t, err)
	_, _, _, err = s.Next()
	require.ErrorIs(t, err, ErrDuplicateContainer)
}

func TestSequencerMultipleDataSourcesSwitchInForce(t *testing.T) {
	r := recordsToReader(t, []func(*writer.Writer, bool) error{
		containerRecord,
		dataSourceRecord,
		observationRecord,
		dataSourceRecord,
		observationRecord,
	})
	s, err := Open(r)
	require.NoError(t, err)

	_, ds1, _, err := s.Next()
	require.NoError(t, err)

	_, ds2, _, err := s.Next()
	require.NoError(t, err)
	require.NotSame(t, ds1, ds2)

	require.Len(t, s.DataSources(), 2)
}
