package pqdif

import (
	"io"
	"sync"

	"github.com/scigolib/pqdif/internal/registry"
)

// TagInfo describes one well-known tag's metadata, as loaded from the
// registry document.
type TagInfo = registry.TagInfo

// ValueIdentifier is one entry of a tag's enumerated valid-value set.
type ValueIdentifier = registry.ValueIdentifier

// GetTagInfo returns the TagInfo for id, lazily loading the bundled
// document on first call if RefreshRegistry has not published one yet.
func GetTagInfo(id Identifier) (*TagInfo, bool) { return registry.Default.Get(id) }

// RefreshRegistry replaces the process-wide tag-definition document. A
// document byte-identical to the currently loaded one is a no-op.
func RefreshRegistry(doc io.Reader) error { return registry.Default.Refresh(doc) }

// identifierCache is a thin cache over one well-known tag's TagInfo: it
// remembers the most recently observed TagInfo and a derived map from each
// valid value's identifier to its ValueIdentifier record, rebuilding the
// map only when the underlying TagInfo pointer changes (spec.md §4.F).
type identifierCache struct {
	tag Identifier

	mu   sync.Mutex
	info *TagInfo
	byID map[Identifier]ValueIdentifier
}

func newIdentifierCache(tag Identifier) *identifierCache {
	return &identifierCache{tag: tag}
}

func (c *identifierCache) refresh() *TagInfo {
	info, ok := GetTagInfo(c.tag)
	if !ok {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.info == info {
		return info
	}

	byID := make(map[Identifier]ValueIdentifier, len(info.ValidValues))
	for _, v := range info.ValidValues {
		byID[v.ID] = v
	}
	c.info = info
	c.byID = byID
	return info
}

// Lookup resolves id to its ValueIdentifier record, if the tag's document
// enumerates it as a valid value.
func (c *identifierCache) Lookup(id Identifier) (ValueIdentifier, bool) {
	if c.refresh() == nil {
		return ValueIdentifier{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.byID[id]
	return v, ok
}

// Info returns the most recently observed TagInfo for this cache's tag.
func (c *identifierCache) Info() (*TagInfo, bool) {
	info := c.refresh()
	return info, info != nil
}

// Semantic helper caches, one per well-known enumerated tag, per spec.md
// §4.F: "QuantityType, Equipment, DisturbanceCategory, SeriesValueType,
// QuantityCharacteristic".
var (
	QuantityType           = newIdentifierCache(QuantityTypeIDTag)
	Equipment              = newIdentifierCache(EquipmentIDTag)
	DisturbanceCategory    = newIdentifierCache(DisturbanceCategoryIDTag)
	SeriesValueType        = newIdentifierCache(SeriesValueTypeIDTag)
	QuantityCharacteristic = newIdentifierCache(QuantityCharacteristicTag)
)
