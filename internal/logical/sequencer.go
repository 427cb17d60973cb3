// Package logical implements the sequencing state machine that turns a
// flat stream of physical records into a Container header, a running set
// of DataSource/MonitorSettings state, and a pull iterator of Observation
// records, per spec.md §4.E.
package logical

import (
	"errors"
	"fmt"

	"github.com/scigolib/pqdif/internal/core"
)

// state is the sequencer's internal position in the Start → Scanning →
// Done state machine.
type state int

const (
	stateStart state = iota
	stateScanning
	stateDone
)

// ErrNoContainer is returned when the stream's first record is not a
// Container.
var ErrNoContainer = errors.New("logical: first record is not a Container")

// ErrDuplicateContainer is a protocol error: a second Container record
// was encountered mid-stream.
var ErrDuplicateContainer = errors.New("logical: duplicate Container record")

// ErrObservationWithoutDataSource is a protocol error: an Observation
// record was emitted before any DataSource record was seen.
var ErrObservationWithoutDataSource = errors.New("logical: observation without a preceding data source")

// Sequencer wraps a physical Reader and classifies the record stream,
// tracking the current DataSource/MonitorSettings "in force" as it scans.
type Sequencer struct {
	reader *core.Reader

	state state

	container          *core.Record
	currentDataSource  *core.Record
	currentSettings    *core.Record
	dataSources        []*core.Record
}

// Open creates a Sequencer over reader and consumes the stream's first
// record, which must be a Container; its compression settings are read
// and propagated to the physical reader before any further record is
// parsed.
func Open(reader *core.Reader) (*Sequencer, error) {
	s := &Sequencer{reader: reader, state: stateStart}

	rec, err := reader.Next()
	if err != nil {
		return nil, fmt.Errorf("logical: reading container record: %w", err)
	}
	if rec.Header.RecordTypeTag != core.RecordTypeContainer {
		return nil, ErrNoContainer
	}

	algo, style := containerCompressionSettings(rec.Body)
	if err := reader.SetCompression(algo, style); err != nil {
		return nil, fmt.Errorf("logical: container compression settings: %w", err)
	}

	s.container = rec
	s.state = stateScanning
	return s, nil
}

func containerCompressionSettings(body *core.Collection) (core.CompressionAlgorithm, core.CompressionStyle) {
	algo := core.CompressionNone
	style := core.CompressionStyleNone
	if scalar := body.GetScalarByTag(core.CompressionAlgorithmTag); scalar != nil {
		algo = core.CompressionAlgorithm(scalar.GetUint1())
	}
	if scalar := body.GetScalarByTag(core.CompressionStyleTag); scalar != nil {
		style = core.CompressionStyle(scalar.GetUint1())
	}
	return algo, style
}

// Container returns the stream's Container record.
func (s *Sequencer) Container() *core.Record { return s.container }

// DataSources returns every DataSource record seen so far, in stream
// order, for random-access lookup (spec.md §4.E).
func (s *Sequencer) DataSources() []*core.Record { return s.dataSources }

// Errors surfaces the physical reader's accumulated non-fatal element
// errors, so a caller iterating observations doesn't need to reach into
// the physical reader directly.
func (s *Sequencer) Errors() []error { return s.reader.Errors() }

// Next advances the state machine until it can yield an Observation
// record, updating current DataSource/MonitorSettings state along the
// way. It returns core.ErrEndOfStream once the underlying reader is
// exhausted.
func (s *Sequencer) Next() (observation *core.Record, dataSource *core.Record, settings *core.Record, err error) {
	if s.state == stateDone {
		return nil, nil, nil, core.ErrEndOfStream
	}

	for {
		rec, err := s.reader.Next()
		if err != nil {
			if errors.Is(err, core.ErrEndOfStream) {
				s.state = stateDone
				return nil, nil, nil, core.ErrEndOfStream
			}
			return nil, nil, nil, err
		}

		switch rec.Header.RecordTypeTag {
		case core.RecordTypeContainer:
			s.state = stateDone
			return nil, nil, nil, ErrDuplicateContainer
		case core.RecordTypeDataSource:
			s.currentDataSource = rec
			s.dataSources = append(s.dataSources, rec)
			continue
		case core.RecordTypeMonitorSettings:
			s.currentSettings = rec
			continue
		case core.RecordTypeObservation:
			if s.currentDataSource == nil {
				s.state = stateDone
				return nil, nil, nil, ErrObservationWithoutDataSource
			}
			return rec, s.currentDataSource, s.currentSettings, nil
		default:
			// An unrecognized record type is neither a protocol error nor
			// a yield point; skip it and keep scanning.
			continue
		}
	}
}
