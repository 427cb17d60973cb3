package registry

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/scigolib/pqdif/internal/core"
)

// document mirrors the tag-definition document's XML shape described in
// spec.md §6: a `<tags>` root with repeated `<tag>` entries, and a
// sibling `<tagValues>` with per-standard-name enumerations.
type document struct {
	XMLName    xml.Name    `xml:"tags"`
	Tags       []xmlTag    `xml:"tag"`
	TagValues  []xmlValues `xml:"tagValues>tagValueGroup"`
}

type xmlTag struct {
	ID           string `xml:"id"`
	Name         string `xml:"name"`
	StandardName string `xml:"standardName"`
	Description  string `xml:"description"`
	ElementType  string `xml:"elementType"`
	PhysicalType string `xml:"physicalType"`
	Required     bool   `xml:"required"`
	FormatString string `xml:"formatString"`
}

type xmlValues struct {
	StandardName string     `xml:"standardName,attr"`
	Values       []xmlValue `xml:"value"`
}

type xmlValue struct {
	ID           string `xml:"id"`
	Name         string `xml:"name"`
	StandardName string `xml:"standardName"`
	Value        string `xml:"value"`
	Description  string `xml:"description"`
}

var elementKindByName = map[string]core.ElementKind{
	"Collection": core.KindCollection,
	"Scalar":     core.KindScalar,
	"Vector":     core.KindVector,
}

var valueTypeByName = map[string]core.ValueType{
	"Boolean1":         core.Boolean1,
	"Boolean2":         core.Boolean2,
	"Boolean4":         core.Boolean4,
	"Char1":            core.Char1,
	"Char2":            core.Char2,
	"Integer1":         core.Integer1,
	"Integer2":         core.Integer2,
	"Integer4":         core.Integer4,
	"UnsignedInteger1": core.UnsignedInteger1,
	"UnsignedInteger2": core.UnsignedInteger2,
	"UnsignedInteger4": core.UnsignedInteger4,
	"Real4":            core.Real4,
	"Real8":            core.Real8,
	"Complex8":         core.Complex8,
	"Complex16":        core.Complex16,
	"Timestamp":        core.Timestamp,
	"Guid":             core.Guid,
}

// parseDocument decodes an XML tag-definition document into a
// map[Identifier]*TagInfo, joining each tag's `<tagValues>` group (keyed
// by standard name) into its ValidValues slice.
func parseDocument(r io.Reader) (map[core.Identifier]*TagInfo, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("registry: decode tag document: %w", err)
	}

	valuesByStandardName := make(map[string][]ValueIdentifier, len(doc.TagValues))
	for _, group := range doc.TagValues {
		vals := make([]ValueIdentifier, 0, len(group.Values))
		for _, v := range group.Values {
			id, err := core.ParseIdentifier(v.ID)
			if err != nil {
				return nil, fmt.Errorf("registry: tag value %q: %w", v.Name, err)
			}
			vals = append(vals, ValueIdentifier{
				ID:           id,
				Name:         v.Name,
				StandardName: v.StandardName,
				Value:        v.Value,
				Description:  v.Description,
			})
		}
		valuesByStandardName[group.StandardName] = vals
	}

	out := make(map[core.Identifier]*TagInfo, len(doc.Tags))
	for _, t := range doc.Tags {
		id, err := core.ParseIdentifier(t.ID)
		if err != nil {
			return nil, fmt.Errorf("registry: tag %q: %w", t.Name, err)
		}
		info := &TagInfo{
			ID:           id,
			Name:         t.Name,
			StandardName: t.StandardName,
			Description:  t.Description,
			ElementKind:  elementKindByName[t.ElementType],
			ValueType:    valueTypeByName[t.PhysicalType],
			Required:     t.Required,
			FormatString: t.FormatString,
			ValidValues:  valuesByStandardName[t.StandardName],
		}
		out[id] = info
	}
	return out, nil
}
