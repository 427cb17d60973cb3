package pqdif

import (
	"errors"
	"fmt"

	"github.com/scigolib/pqdif/internal/core"
	"github.com/scigolib/pqdif/internal/logical"
)

// ErrEndOfStream is returned by Parser.Next once every record has been
// consumed.
var ErrEndOfStream = core.ErrEndOfStream

// ErrNoContainer is returned by Open when the stream's first record is
// not a Container.
var ErrNoContainer = logical.ErrNoContainer

// ErrDuplicateContainer is a protocol error: a second Container record
// was encountered mid-stream.
var ErrDuplicateContainer = logical.ErrDuplicateContainer

// ErrObservationWithoutDataSource is a protocol error: an Observation
// record was emitted before any DataSource record was seen.
var ErrObservationWithoutDataSource = logical.ErrObservationWithoutDataSource

// MissingElementError is returned by a semantic accessor when a required
// child element is absent, rather than silently defaulting it.
type MissingElementError struct {
	Record string
	Field  string
	Tag    Identifier
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("pqdif: %s is missing required field %s (tag %s)", e.Record, e.Field, e.Tag)
}

func missingElement(record, field string, tag Identifier) error {
	return &MissingElementError{Record: record, Field: field, Tag: tag}
}

// IsMissingElement reports whether err is (or wraps) a MissingElementError.
func IsMissingElement(err error) bool {
	var target *MissingElementError
	return errors.As(err, &target)
}
