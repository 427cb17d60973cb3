package pqdif

import "github.com/scigolib/pqdif/internal/core"

// Identifier is the 128-bit globally-unique tag PQDIF uses to key every
// element, record type, and well-known field. See internal/core.Identifier
// for the on-disk byte layout.
type Identifier = core.Identifier

// ParseIdentifier parses canonical GUID text into an Identifier.
func ParseIdentifier(s string) (Identifier, error) { return core.ParseIdentifier(s) }

// MustParseIdentifier is ParseIdentifier for compile-time-known constants;
// it panics on malformed input.
func MustParseIdentifier(s string) Identifier { return core.MustParseIdentifier(s) }
