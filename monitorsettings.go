package pqdif

import "github.com/scigolib/pqdif/internal/core"

// MonitorSettingsRecord is the semantic view over a MonitorSettings record:
// the transducer ratios in force for each channel at the time it was
// written (spec.md §4.G).
type MonitorSettingsRecord struct {
	collection *core.Collection
}

// NewMonitorSettingsRecord creates an empty MonitorSettingsRecord.
func NewMonitorSettingsRecord() *MonitorSettingsRecord {
	return &MonitorSettingsRecord{collection: core.NewCollection(core.RecordTypeMonitorSettings)}
}

// ChannelSettings returns the record's channel settings, in declaration
// order; a ChannelInstance's ChannelSettingIndexTag indexes into this list.
func (m *MonitorSettingsRecord) ChannelSettings() []*ChannelSetting {
	defs := m.collection.GetCollectionByTag(core.ChannelDefinitionsTag)
	if defs == nil {
		return nil
	}
	var out []*ChannelSetting
	for _, child := range defs.Children() {
		sub, ok := child.(*core.Collection)
		if !ok {
			continue
		}
		out = append(out, &ChannelSetting{collection: sub})
	}
	return out
}

// AddChannelSetting appends a new, empty ChannelSetting, creating the
// container collection on first insert.
func (m *MonitorSettingsRecord) AddChannelSetting() *ChannelSetting {
	defs := m.collection.GetOrAddCollection(core.ChannelDefinitionsTag)
	sub := core.NewCollection(core.ChannelDefinitionsTag)
	defs.Add(sub)
	return &ChannelSetting{collection: sub}
}

// Collection returns the underlying element tree backing this view.
func (m *MonitorSettingsRecord) Collection() *core.Collection { return m.collection }

// ChannelSetting carries the transducer ratio in force for one channel:
// the multiplier from monitor-side units to system-side units is
// SystemSideRatio/MonitorSideRatio (spec.md §4.G, "transducer ratio").
type ChannelSetting struct {
	collection *core.Collection
}

// SystemSideRatio returns the setting's system-side ratio.
func (cs *ChannelSetting) SystemSideRatio() (float64, error) {
	s := cs.collection.GetScalarByTag(core.SystemSideRatioTag)
	if s == nil {
		return 0, missingElement("ChannelSetting", "SystemSideRatio", SystemSideRatioTag)
	}
	return s.GetReal8(), nil
}

// MonitorSideRatio returns the setting's monitor-side ratio.
func (cs *ChannelSetting) MonitorSideRatio() (float64, error) {
	s := cs.collection.GetScalarByTag(core.MonitorSideRatioTag)
	if s == nil {
		return 0, missingElement("ChannelSetting", "MonitorSideRatio", MonitorSideRatioTag)
	}
	return s.GetReal8(), nil
}

// SetRatios sets both sides of the transducer ratio.
func (cs *ChannelSetting) SetRatios(systemSide, monitorSide float64) {
	sys := cs.collection.GetOrAddScalar(core.SystemSideRatioTag, core.Real8)
	sys.SetReal8(systemSide)
	mon := cs.collection.GetOrAddScalar(core.MonitorSideRatioTag, core.Real8)
	mon.SetReal8(monitorSide)
}

// Ratio returns the transducer multiplier SystemSideRatio/MonitorSideRatio,
// or an error if MonitorSideRatio is zero.
func (cs *ChannelSetting) Ratio() (float64, error) {
	sys, err := cs.SystemSideRatio()
	if err != nil {
		return 0, err
	}
	mon, err := cs.MonitorSideRatio()
	if err != nil {
		return 0, err
	}
	if mon == 0 {
		return 0, missingElement("ChannelSetting", "MonitorSideRatio", MonitorSideRatioTag)
	}
	return sys / mon, nil
}

// Collection returns the underlying element tree backing this view.
func (cs *ChannelSetting) Collection() *core.Collection { return cs.collection }
