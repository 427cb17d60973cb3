package pqdif

import (
	"github.com/scigolib/pqdif/internal/core"
	"github.com/scigolib/pqdif/internal/writer"
)

// Writer assembles a PQDIF byte stream from semantic-view records: a
// Container, followed by interleaved DataSource/MonitorSettings/
// Observation records in the order they are appended (spec.md §4.G, §7).
// Each record is written one step behind the call that queues it, since
// whether it chains to a following record (NextRecordPosition non-zero)
// isn't known until either another record is queued or Close is called.
type Writer struct {
	w *writer.Writer

	container        *ContainerRecord
	containerFlushed bool

	pendingTag  Identifier
	pendingBody *core.Collection
	havePending bool
}

// NewWriter creates a Writer around a fresh Container record, configuring
// record-body compression from opts (WithCompression).
func NewWriter(opts ...Option) (*Writer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := writer.New()
	if err := w.SetCompression(o.algorithm, o.style); err != nil {
		return nil, err
	}
	return &Writer{w: w, container: NewContainerRecord()}, nil
}

// Container returns the Writer's Container record for in-place editing
// (FileName, Creation, version numbers) before the first record is
// flushed.
func (pw *Writer) Container() *ContainerRecord { return pw.container }

// AddDataSource returns a new, empty DataSourceRecord to populate and pass
// to WriteDataSource.
func (pw *Writer) AddDataSource() *DataSourceRecord { return NewDataSourceRecord() }

// AddMonitorSettings returns a new, empty MonitorSettingsRecord to
// populate and pass to WriteMonitorSettings.
func (pw *Writer) AddMonitorSettings() *MonitorSettingsRecord { return NewMonitorSettingsRecord() }

// AddObservation returns a new, empty ObservationRecord to populate and
// pass to WriteObservation.
func (pw *Writer) AddObservation() *ObservationRecord { return NewObservationRecord() }

// WriteDataSource appends ds to the output stream.
func (pw *Writer) WriteDataSource(ds *DataSourceRecord) error {
	return pw.enqueue(core.RecordTypeDataSource, ds.Collection())
}

// WriteMonitorSettings appends ms to the output stream.
func (pw *Writer) WriteMonitorSettings(ms *MonitorSettingsRecord) error {
	return pw.enqueue(core.RecordTypeMonitorSettings, ms.Collection())
}

// WriteObservation appends obs to the output stream.
func (pw *Writer) WriteObservation(obs *ObservationRecord) error {
	return pw.enqueue(core.RecordTypeObservation, obs.Collection())
}

// enqueue flushes the Container (on first call, always chained to a next
// record) and any previously queued record (chained, since tag/body is
// about to queue another), then queues (tag, body) as the new pending
// record.
func (pw *Writer) enqueue(tag Identifier, body *core.Collection) error {
	if !pw.containerFlushed {
		if err := pw.w.WriteRecord(core.RecordTypeContainer, pw.container.Collection(), true); err != nil {
			return err
		}
		pw.containerFlushed = true
	}
	if pw.havePending {
		if err := pw.w.WriteRecord(pw.pendingTag, pw.pendingBody, true); err != nil {
			return err
		}
	}
	pw.pendingTag = tag
	pw.pendingBody = body
	pw.havePending = true
	return nil
}

// Close flushes any queued record as the terminal record (chain-ending,
// NextRecordPosition 0) and returns the final serialized byte stream. If
// no record was ever queued, the Container itself is written as terminal.
func (pw *Writer) Close() ([]byte, error) {
	if !pw.containerFlushed {
		if err := pw.w.WriteRecord(core.RecordTypeContainer, pw.container.Collection(), false); err != nil {
			return nil, err
		}
		pw.containerFlushed = true
	}
	if pw.havePending {
		if err := pw.w.WriteRecord(pw.pendingTag, pw.pendingBody, false); err != nil {
			return nil, err
		}
		pw.havePending = false
	}
	return pw.w.Bytes(), nil
}
