// Package registry implements the process-wide tag-definition cache:
// loading a structured document that names every well-known identifier
// this codec's callers may encounter, and serving it back as metadata
// under a lock-free atomic snapshot (spec.md §4.F).
package registry

import "github.com/scigolib/pqdif/internal/core"

// ValueIdentifier is one entry of a tag's enumerated valid-value set.
type ValueIdentifier struct {
	ID           core.Identifier
	Name         string
	StandardName string
	Value        string
	Description  string
}

// TagInfo describes one tag definition loaded from the registry document.
type TagInfo struct {
	ID           core.Identifier
	Name         string
	StandardName string
	Description  string
	ElementKind  core.ElementKind
	ValueType    core.ValueType
	Required     bool
	FormatString string
	ValidValues  []ValueIdentifier
}

// ValueByStandardName returns the first ValueIdentifier whose StandardName
// matches name, or false if none does.
func (t *TagInfo) ValueByStandardName(name string) (ValueIdentifier, bool) {
	for _, v := range t.ValidValues {
		if v.StandardName == name {
			return v, true
		}
	}
	return ValueIdentifier{}, false
}
