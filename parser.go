package pqdif

import (
	"fmt"
	"io"
	"sync"

	"github.com/scigolib/pqdif/internal/core"
	"github.com/scigolib/pqdif/internal/logical"
)

// Parser walks a PQDIF byte stream and hands back Observation records
// together with the DataSource and MonitorSettings in force at the time
// each was recorded.
type Parser struct {
	src       io.ReaderAt
	closer    io.Closer
	leaveOpen bool
	seq       *logical.Sequencer
	closeOnce sync.Once
}

// Open creates a Parser over src, consuming and validating the stream's
// first record as a Container.
func Open(src io.ReaderAt, opts ...Option) (*Parser, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	reader := core.NewReader(src)
	reader.SetErrorBudget(o.errorBudget)

	seq, err := logical.Open(reader)
	if err != nil {
		return nil, err
	}

	p := &Parser{src: src, seq: seq, leaveOpen: o.leaveOpen}
	if c, ok := src.(io.Closer); ok && !o.leaveOpen {
		p.closer = c
	}
	return p, nil
}

// OpenFile opens path and creates a Parser over it, memory-mapping the
// file for large archives via internal/core.OpenMmap.
func OpenFile(path string) (*Parser, error) {
	src, err := core.OpenMmap(path)
	if err != nil {
		return nil, fmt.Errorf("pqdif: open %s: %w", path, err)
	}
	p, err := Open(src)
	if err != nil {
		src.Close()
		return nil, err
	}
	return p, nil
}

// Container returns the parsed Container record's semantic view.
func (p *Parser) Container() *ContainerRecord {
	return &ContainerRecord{collection: p.seq.Container().Body}
}

// DataSources returns every DataSource record seen so far, in stream
// order.
func (p *Parser) DataSources() []*DataSourceRecord {
	records := p.seq.DataSources()
	out := make([]*DataSourceRecord, len(records))
	for i, r := range records {
		out[i] = &DataSourceRecord{collection: r.Body}
	}
	return out
}

// Errors returns the accumulated non-fatal element-parse errors observed
// so far.
func (p *Parser) Errors() []error { return p.seq.Errors() }

// Next returns the next Observation record along with the DataSource and
// (possibly nil) MonitorSettings in force when it was recorded. It
// returns ErrEndOfStream once the stream is exhausted.
func (p *Parser) Next() (*ObservationRecord, *DataSourceRecord, *MonitorSettingsRecord, error) {
	obs, ds, ms, err := p.seq.Next()
	if err != nil {
		return nil, nil, nil, err
	}

	observation := &ObservationRecord{collection: obs.Body}
	dataSource := &DataSourceRecord{collection: ds.Body}
	var settings *MonitorSettingsRecord
	if ms != nil {
		settings = &MonitorSettingsRecord{collection: ms.Body}
	}
	return observation, dataSource, settings, nil
}

// Close releases the underlying stream if the Parser owns it (see
// WithLeaveOpen). Double-close is a no-op.
func (p *Parser) Close() error {
	var err error
	p.closeOnce.Do(func() {
		if p.closer != nil {
			err = p.closer.Close()
		}
	})
	return err
}
