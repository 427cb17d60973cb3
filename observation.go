package pqdif

import "github.com/scigolib/pqdif/internal/core"

// ObservationRecord is the semantic view over an Observation record: a
// named set of channel instances captured at a point in time (spec.md
// §4.G).
type ObservationRecord struct {
	collection *core.Collection
}

// NewObservationRecord creates an empty ObservationRecord.
func NewObservationRecord() *ObservationRecord {
	return &ObservationRecord{collection: core.NewCollection(core.RecordTypeObservation)}
}

// Name returns the observation's name.
func (o *ObservationRecord) Name() (string, error) {
	v := o.collection.GetVectorByTag(core.ObservationNameTag)
	if v == nil {
		return "", missingElement("ObservationRecord", "ObservationName", ObservationNameTag)
	}
	return char1VectorToString(v), nil
}

// SetName sets the observation's name.
func (o *ObservationRecord) SetName(name string) error {
	v := o.collection.GetOrAddVector(core.ObservationNameTag, core.Char1)
	return stringToChar1Vector(v, name)
}

// ChannelInstances returns the observation's channel instances, in
// declaration order.
func (o *ObservationRecord) ChannelInstances() []*ChannelInstance {
	insts := o.collection.GetCollectionByTag(core.ChannelInstancesTag)
	if insts == nil {
		return nil
	}
	var out []*ChannelInstance
	for _, child := range insts.Children() {
		sub, ok := child.(*core.Collection)
		if !ok {
			continue
		}
		out = append(out, &ChannelInstance{collection: sub})
	}
	return out
}

// AddChannelInstance appends a new, empty ChannelInstance, creating the
// ChannelInstances container collection on first insert (spec.md §4.G).
func (o *ObservationRecord) AddChannelInstance() *ChannelInstance {
	insts := o.collection.GetOrAddCollection(core.ChannelInstancesTag)
	sub := core.NewCollection(core.ChannelInstancesTag)
	insts.Add(sub)
	return &ChannelInstance{collection: sub}
}

// Collection returns the underlying element tree backing this view.
func (o *ObservationRecord) Collection() *core.Collection { return o.collection }
