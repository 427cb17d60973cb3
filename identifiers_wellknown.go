package pqdif

import "github.com/scigolib/pqdif/internal/core"

// Record-type tags, per spec.md §3 "Record type".
var (
	RecordTypeContainer       = core.RecordTypeContainer
	RecordTypeDataSource      = core.RecordTypeDataSource
	RecordTypeMonitorSettings = core.RecordTypeMonitorSettings
	RecordTypeObservation     = core.RecordTypeObservation
)

// Well-known field tags, per spec.md §6.
var (
	VersionInfoTag          = core.VersionInfoTag
	FileNameTag             = core.FileNameTag
	CreationTag             = core.CreationTag
	CompressionAlgorithmTag = core.CompressionAlgorithmTag
	CompressionStyleTag     = core.CompressionStyleTag

	DataSourceNameTag     = core.DataSourceNameTag
	ChannelDefinitionsTag = core.ChannelDefinitionsTag
	QuantityTypeIDTag     = core.QuantityTypeIDTag
	SystemSideRatioTag    = core.SystemSideRatioTag
	MonitorSideRatioTag   = core.MonitorSideRatioTag

	ObservationNameTag       = core.ObservationNameTag
	ChannelInstancesTag      = core.ChannelInstancesTag
	UseTransducerTag         = core.UseTransducerTag
	DisturbanceCategoryIDTag = core.DisturbanceCategoryIDTag

	EquipmentIDTag            = core.EquipmentIDTag
	QuantityCharacteristicTag = core.QuantityCharacteristicTag

	ChannelDefinitionIndexTag = core.ChannelDefinitionIndexTag
	ChannelSettingIndexTag    = core.ChannelSettingIndexTag
	SeriesInstancesTag        = core.SeriesInstancesTag

	SeriesValuesTag         = core.SeriesValuesTag
	SeriesValueScaleTag     = core.SeriesValueScaleTag
	SeriesValueOffsetTag    = core.SeriesValueOffsetTag
	SeriesStorageMethodsTag = core.SeriesStorageMethodsTag
	SeriesShareSeriesTag    = core.SeriesShareSeriesTag
	SeriesValueTypeIDTag    = core.SeriesValueTypeIDTag
)

// StorageMethod flags for SeriesInstance.StorageMethods.
type StorageMethod = core.StorageMethod

const (
	StorageMethodNone      = core.StorageMethodNone
	StorageMethodIncrement = core.StorageMethodIncrement
	StorageMethodScaled    = core.StorageMethodScaled
)
