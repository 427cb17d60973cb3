package pqdif

import "github.com/scigolib/pqdif/internal/core"

// DataSourceRecord is the semantic view over a DataSource record: the name
// of the instrument or system that produced the data, plus the channel
// definitions it exposes (spec.md §4.G).
type DataSourceRecord struct {
	collection *core.Collection
}

// NewDataSourceRecord creates an empty DataSourceRecord.
func NewDataSourceRecord() *DataSourceRecord {
	return &DataSourceRecord{collection: core.NewCollection(core.RecordTypeDataSource)}
}

// Name returns the data source's name.
func (d *DataSourceRecord) Name() (string, error) {
	v := d.collection.GetVectorByTag(core.DataSourceNameTag)
	if v == nil {
		return "", missingElement("DataSourceRecord", "DataSourceName", DataSourceNameTag)
	}
	return char1VectorToString(v), nil
}

// SetName sets the data source's name.
func (d *DataSourceRecord) SetName(name string) error {
	v := d.collection.GetOrAddVector(core.DataSourceNameTag, core.Char1)
	return stringToChar1Vector(v, name)
}

// ChannelDefinitions returns the data source's channel definitions, in
// declaration order.
func (d *DataSourceRecord) ChannelDefinitions() []*ChannelDefinition {
	defs := d.collection.GetCollectionByTag(core.ChannelDefinitionsTag)
	if defs == nil {
		return nil
	}
	var out []*ChannelDefinition
	for _, child := range defs.Children() {
		sub, ok := child.(*core.Collection)
		if !ok {
			continue
		}
		out = append(out, &ChannelDefinition{collection: sub})
	}
	return out
}

// AddChannelDefinition appends a new, empty ChannelDefinition, creating the
// ChannelDefinitions container collection on first insert.
func (d *DataSourceRecord) AddChannelDefinition() *ChannelDefinition {
	defs := d.collection.GetOrAddCollection(core.ChannelDefinitionsTag)
	sub := core.NewCollection(core.ChannelDefinitionsTag)
	defs.Add(sub)
	return &ChannelDefinition{collection: sub}
}

// Collection returns the underlying element tree backing this view.
func (d *DataSourceRecord) Collection() *core.Collection { return d.collection }

// ChannelDefinition describes one channel a DataSource can produce series
// for: its quantity type, resolved by index from ChannelInstance.
type ChannelDefinition struct {
	collection *core.Collection
}

// QuantityTypeID returns the channel definition's quantity type identifier.
func (cd *ChannelDefinition) QuantityTypeID() (Identifier, error) {
	s := cd.collection.GetScalarByTag(core.QuantityTypeIDTag)
	if s == nil {
		return Identifier{}, missingElement("ChannelDefinition", "QuantityTypeID", QuantityTypeIDTag)
	}
	return s.GetGuid(), nil
}

// SetQuantityTypeID sets the channel definition's quantity type identifier.
func (cd *ChannelDefinition) SetQuantityTypeID(id Identifier) {
	s := cd.collection.GetOrAddScalar(core.QuantityTypeIDTag, core.Guid)
	s.SetGuid(id)
}

// Collection returns the underlying element tree backing this view.
func (cd *ChannelDefinition) Collection() *core.Collection { return cd.collection }
