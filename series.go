package pqdif

import (
	"errors"

	"github.com/scigolib/pqdif/internal/core"
)

// ErrSeriesShareCycle is returned when following SeriesShareSeries links
// would revisit a series already seen, per spec.md §9's series-share-cycle
// hardening note.
var ErrSeriesShareCycle = errors.New("pqdif: series share cycle detected")

// SeriesInstance is one stored sample sequence within a ChannelInstance:
// raw values plus the encoding (storage methods, scale/offset, value type)
// needed to reconstruct the logical sequence (spec.md §4.G).
type SeriesInstance struct {
	collection *core.Collection
}

// Values returns the series' raw stored samples, interpreted as Real8.
func (s *SeriesInstance) Values() ([]float64, error) {
	v := s.collection.GetVectorByTag(core.SeriesValuesTag)
	if v == nil {
		return nil, missingElement("SeriesInstance", "SeriesValues", SeriesValuesTag)
	}
	return vectorToFloat64s(v)
}

// SetValues replaces the series' raw stored samples.
func (s *SeriesInstance) SetValues(values []float64) error {
	v := s.collection.GetOrAddVector(core.SeriesValuesTag, core.Real8)
	return float64sToVector(v, values)
}

// Scale returns the series' scale factor, used when StorageMethodScaled is
// set.
func (s *SeriesInstance) Scale() (float64, error) {
	sc := s.collection.GetScalarByTag(core.SeriesValueScaleTag)
	if sc == nil {
		return 1, missingElement("SeriesInstance", "SeriesValueScale", SeriesValueScaleTag)
	}
	return sc.GetReal8(), nil
}

// SetScale sets the series' scale factor.
func (s *SeriesInstance) SetScale(scale float64) {
	sc := s.collection.GetOrAddScalar(core.SeriesValueScaleTag, core.Real8)
	sc.SetReal8(scale)
}

// Offset returns the series' offset, used when StorageMethodScaled is set.
func (s *SeriesInstance) Offset() (float64, error) {
	off := s.collection.GetScalarByTag(core.SeriesValueOffsetTag)
	if off == nil {
		return 0, missingElement("SeriesInstance", "SeriesValueOffset", SeriesValueOffsetTag)
	}
	return off.GetReal8(), nil
}

// SetOffset sets the series' offset.
func (s *SeriesInstance) SetOffset(offset float64) {
	off := s.collection.GetOrAddScalar(core.SeriesValueOffsetTag, core.Real8)
	off.SetReal8(offset)
}

// StorageMethods returns the series' storage method flags.
func (s *SeriesInstance) StorageMethods() StorageMethod {
	sm := s.collection.GetScalarByTag(core.SeriesStorageMethodsTag)
	if sm == nil {
		return StorageMethodNone
	}
	return StorageMethod(sm.GetUint4())
}

// SetStorageMethods sets the series' storage method flags.
func (s *SeriesInstance) SetStorageMethods(m StorageMethod) {
	sm := s.collection.GetOrAddScalar(core.SeriesStorageMethodsTag, core.UnsignedInteger4)
	sm.SetUint4(uint32(m))
}

// ValueTypeID returns the series' semantic value type identifier (e.g. an
// "Instantaneous" or "RMS" quantity characteristic), distinct from the
// physical ValueType of the SeriesValues vector.
func (s *SeriesInstance) ValueTypeID() (Identifier, error) {
	vt := s.collection.GetScalarByTag(core.SeriesValueTypeIDTag)
	if vt == nil {
		return Identifier{}, missingElement("SeriesInstance", "SeriesValueTypeID", SeriesValueTypeIDTag)
	}
	return vt.GetGuid(), nil
}

// SetValueTypeID sets the series' semantic value type identifier.
func (s *SeriesInstance) SetValueTypeID(id Identifier) {
	vt := s.collection.GetOrAddScalar(core.SeriesValueTypeIDTag, core.Guid)
	vt.SetGuid(id)
}

// shareSeries is the (channelIndex, seriesIndex) pair SeriesShareSeries
// points at, when present.
func (s *SeriesInstance) shareSeries() (channelIdx, seriesIdx int, ok bool) {
	v := s.collection.GetVectorByTag(core.SeriesShareSeriesTag)
	if v == nil || v.Size() != 2 {
		return 0, 0, false
	}
	c, err1 := v.GetUint4(0)
	i, err2 := v.GetUint4(1)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return int(c), int(i), true
}

// SetShareSeries points this series at another channel/series by index.
func (s *SeriesInstance) SetShareSeries(channelIdx, seriesIdx int) error {
	v := s.collection.GetOrAddVector(core.SeriesShareSeriesTag, core.UnsignedInteger4)
	if err := v.SetSize(2); err != nil {
		return err
	}
	if err := v.SetUint4(0, uint32(channelIdx)); err != nil {
		return err
	}
	return v.SetUint4(1, uint32(seriesIdx))
}

// Collection returns the underlying element tree backing this view.
func (s *SeriesInstance) Collection() *core.Collection { return s.collection }

// OriginalValues reconstructs the logical value sequence for this series:
// increment expansion, then scale/offset, then transducer ratio, per
// spec.md §4.G. observation/source/settings provide the context needed to
// resolve a SeriesShareSeries fallback and the transducer ratio; channel is
// this series' owning ChannelInstance.
func OriginalValues(series *SeriesInstance, channel *ChannelInstance, observation *ObservationRecord, source *DataSourceRecord, settings *MonitorSettingsRecord) ([]float64, error) {
	return originalValues(series, channel, observation, source, settings, map[*core.Collection]bool{})
}

func originalValues(series *SeriesInstance, channel *ChannelInstance, observation *ObservationRecord, source *DataSourceRecord, settings *MonitorSettingsRecord, visited map[*core.Collection]bool) ([]float64, error) {
	if visited[series.collection] {
		return nil, ErrSeriesShareCycle
	}
	visited[series.collection] = true

	raw, err := series.Values()
	if err != nil {
		if channelIdx, seriesIdx, ok := series.shareSeries(); ok {
			return followShare(channelIdx, seriesIdx, observation, source, settings, visited)
		}
		return nil, err
	}

	methods := series.StorageMethods()

	if methods.Has(StorageMethodIncrement) {
		raw, err = expandIncrement(raw)
		if err != nil {
			return nil, err
		}
	}

	isTimestamp, err := isTimestampSeries(series)
	if err != nil {
		return nil, err
	}

	if !isTimestamp && methods.Has(StorageMethodScaled) {
		scale, err := series.Scale()
		if err != nil {
			return nil, err
		}
		offset, err := series.Offset()
		if err != nil {
			return nil, err
		}
		for i, v := range raw {
			raw[i] = offset + v*scale
		}
	}

	if !isTimestamp && channel != nil && channel.UseTransducer() && settings != nil {
		ratio, err := channel.TransducerRatio(settings)
		if err == nil {
			for i, v := range raw {
				raw[i] = v * ratio
			}
		}
	}

	return raw, nil
}

func followShare(channelIdx, seriesIdx int, observation *ObservationRecord, source *DataSourceRecord, settings *MonitorSettingsRecord, visited map[*core.Collection]bool) ([]float64, error) {
	if observation == nil {
		return nil, missingElement("SeriesInstance", "SeriesShareSeries", SeriesShareSeriesTag)
	}
	channels := observation.ChannelInstances()
	if channelIdx < 0 || channelIdx >= len(channels) {
		return nil, missingElement("SeriesInstance", "SeriesShareSeries", SeriesShareSeriesTag)
	}
	target := channels[channelIdx]
	seriesList := target.SeriesInstances()
	if seriesIdx < 0 || seriesIdx >= len(seriesList) {
		return nil, missingElement("SeriesInstance", "SeriesShareSeries", SeriesShareSeriesTag)
	}
	return originalValues(seriesList[seriesIdx], target, observation, source, settings, visited)
}

func isTimestampSeries(series *SeriesInstance) (bool, error) {
	v := series.collection.GetVectorByTag(core.SeriesValuesTag)
	if v == nil {
		return false, nil
	}
	return v.ValueType() == core.Timestamp, nil
}

// expandIncrement decodes the rate-count-plus-(count,increment)-pairs
// encoding from spec.md §4.G: the first value is a pair count, followed by
// that many (count, increment) pairs, each expanding to count samples
// start + j*increment with start advancing by count*increment between
// pairs.
func expandIncrement(raw []float64) ([]float64, error) {
	if len(raw) < 1 {
		return nil, errors.New("pqdif: increment-encoded series missing rate count")
	}
	pairCount := int(raw[0])
	idx := 1
	var out []float64
	start := 0.0
	for p := 0; p < pairCount; p++ {
		if idx+1 >= len(raw) {
			return nil, errors.New("pqdif: increment-encoded series truncated")
		}
		count := int(raw[idx])
		increment := raw[idx+1]
		idx += 2
		for j := 0; j < count; j++ {
			out = append(out, start+float64(j)*increment)
		}
		start += float64(count) * increment
	}
	return out, nil
}

func vectorToFloat64s(v *core.Vector) ([]float64, error) {
	n := int(v.Size())
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		val, err := v.GetReal8(i)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

func float64sToVector(v *core.Vector, values []float64) error {
	if err := v.SetSize(uint32(len(values))); err != nil {
		return err
	}
	for i, val := range values {
		if err := v.SetReal8(i, val); err != nil {
			return err
		}
	}
	return nil
}
