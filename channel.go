package pqdif

import "github.com/scigolib/pqdif/internal/core"

// ChannelInstance is one channel's worth of series within an Observation.
// It identifies itself by index into the owning DataSource's channel
// definitions and, if UseTransducer is set, the owning MonitorSettings'
// channel settings (spec.md §4.G).
type ChannelInstance struct {
	collection *core.Collection
}

// ChannelDefinitionIndex returns the index into DataSourceRecord.
// ChannelDefinitions this instance refers to.
func (ci *ChannelInstance) ChannelDefinitionIndex() (uint32, error) {
	s := ci.collection.GetScalarByTag(core.ChannelDefinitionIndexTag)
	if s == nil {
		return 0, missingElement("ChannelInstance", "ChannelDefinitionIndex", ChannelDefinitionIndexTag)
	}
	return s.GetUint4(), nil
}

// SetChannelDefinitionIndex sets the index into DataSourceRecord.
// ChannelDefinitions this instance refers to.
func (ci *ChannelInstance) SetChannelDefinitionIndex(i uint32) {
	s := ci.collection.GetOrAddScalar(core.ChannelDefinitionIndexTag, core.UnsignedInteger4)
	s.SetUint4(i)
}

// ChannelSettingIndex returns the index into MonitorSettingsRecord.
// ChannelSettings this instance refers to.
func (ci *ChannelInstance) ChannelSettingIndex() (uint32, error) {
	s := ci.collection.GetScalarByTag(core.ChannelSettingIndexTag)
	if s == nil {
		return 0, missingElement("ChannelInstance", "ChannelSettingIndex", ChannelSettingIndexTag)
	}
	return s.GetUint4(), nil
}

// SetChannelSettingIndex sets the index into MonitorSettingsRecord.
// ChannelSettings this instance refers to.
func (ci *ChannelInstance) SetChannelSettingIndex(i uint32) {
	s := ci.collection.GetOrAddScalar(core.ChannelSettingIndexTag, core.UnsignedInteger4)
	s.SetUint4(i)
}

// UseTransducer reports whether series values should be converted from
// monitor-side to system-side units via the referenced ChannelSetting's
// ratio.
func (ci *ChannelInstance) UseTransducer() bool {
	s := ci.collection.GetScalarByTag(core.UseTransducerTag)
	if s == nil {
		return false
	}
	return s.GetBool4()
}

// SetUseTransducer sets whether series values should be converted via the
// referenced ChannelSetting's ratio.
func (ci *ChannelInstance) SetUseTransducer(use bool) {
	s := ci.collection.GetOrAddScalar(core.UseTransducerTag, core.Boolean4)
	s.SetBool4(use)
}

// QuantityTypeID resolves this channel's quantity type by looking up
// ChannelDefinitionIndex in source's ChannelDefinitions.
func (ci *ChannelInstance) QuantityTypeID(source *DataSourceRecord) (Identifier, error) {
	idx, err := ci.ChannelDefinitionIndex()
	if err != nil {
		return Identifier{}, err
	}
	defs := source.ChannelDefinitions()
	if int(idx) >= len(defs) {
		return Identifier{}, missingElement("ChannelInstance", "ChannelDefinitionIndex", ChannelDefinitionIndexTag)
	}
	return defs[idx].QuantityTypeID()
}

// TransducerRatio resolves this channel's transducer ratio by looking up
// ChannelSettingIndex in settings' ChannelSettings. It returns an error if
// UseTransducer is false or settings is nil.
func (ci *ChannelInstance) TransducerRatio(settings *MonitorSettingsRecord) (float64, error) {
	if !ci.UseTransducer() {
		return 0, missingElement("ChannelInstance", "UseTransducer", UseTransducerTag)
	}
	if settings == nil {
		return 0, missingElement("ChannelInstance", "ChannelSettingIndex", ChannelSettingIndexTag)
	}
	idx, err := ci.ChannelSettingIndex()
	if err != nil {
		return 0, err
	}
	cs := settings.ChannelSettings()
	if int(idx) >= len(cs) {
		return 0, missingElement("ChannelInstance", "ChannelSettingIndex", ChannelSettingIndexTag)
	}
	return cs[idx].Ratio()
}

// SeriesInstances returns the channel instance's series, in declaration
// order.
func (ci *ChannelInstance) SeriesInstances() []*SeriesInstance {
	coll := ci.collection.GetCollectionByTag(core.SeriesInstancesTag)
	if coll == nil {
		return nil
	}
	var out []*SeriesInstance
	for _, child := range coll.Children() {
		sub, ok := child.(*core.Collection)
		if !ok {
			continue
		}
		out = append(out, &SeriesInstance{collection: sub})
	}
	return out
}

// AddSeriesInstance appends a new, empty SeriesInstance, creating the
// SeriesInstances container collection on first insert.
func (ci *ChannelInstance) AddSeriesInstance() *SeriesInstance {
	coll := ci.collection.GetOrAddCollection(core.SeriesInstancesTag)
	sub := core.NewCollection(core.SeriesInstancesTag)
	coll.Add(sub)
	return &SeriesInstance{collection: sub}
}

// Collection returns the underlying element tree backing this view.
func (ci *ChannelInstance) Collection() *core.Collection { return ci.collection }
