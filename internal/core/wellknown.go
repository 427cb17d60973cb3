package core

// Well-known field tags, per spec.md §6 ("The specification defines a
// closed list of tag identifiers for version info, file name, creation
// time, compression style/algorithm, observation name, channel
// instances, series values/scale/offset/share indices, etc.") The
// specification defers their literal GUIDs to "the reference source";
// these values stand in for them, kept in internal/core (rather than the
// root package) so both the logical sequencer and the semantic views can
// reference the same constants without an import cycle.
var (
	// ContainerRecord fields.
	VersionInfoTag          = MustParseIdentifier("89738607-f1c3-11cf-9d89-0080c72e70a3")
	FileNameTag             = MustParseIdentifier("2c4815b5-894e-4c27-8a5f-25e38e10c7c0")
	CreationTag             = MustParseIdentifier("62f4a144-f654-4f93-a55f-6c0bfd4de04c")
	CompressionAlgorithmTag = MustParseIdentifier("f3d36ec3-2e0c-4c95-8f20-0ec2f5f3e0d9")
	CompressionStyleTag     = MustParseIdentifier("d2b1b408-5b6e-4a1d-9cf4-8a1a0c935e3d")

	// DataSourceRecord / MonitorSettingsRecord fields.
	DataSourceNameTag     = MustParseIdentifier("5202bfa6-e697-4e8d-9b0b-7b25f2f0d0df")
	ChannelDefinitionsTag = MustParseIdentifier("f6e91ab0-326b-498e-a7e4-86a0df36d85f")
	QuantityTypeIDTag     = MustParseIdentifier("a6b21e6b-b3c7-4f3f-aefa-a4e5b9a2d06d")
	SystemSideRatioTag    = MustParseIdentifier("c7c90a0e-5a45-4f2b-95f4-2f8ecf33226a")
	MonitorSideRatioTag   = MustParseIdentifier("4ae5f0e2-ab24-4f85-9f7d-e5d1d9c6dff6")

	// ObservationRecord fields.
	ObservationNameTag       = MustParseIdentifier("c6ee3641-9c95-4b1e-926d-c40b3b19f05a")
	ChannelInstancesTag      = MustParseIdentifier("f17e396a-ce7a-4ff9-a2ec-4e89a2e0ef90")
	UseTransducerTag         = MustParseIdentifier("9fba0e30-e43d-4d05-9894-3c2ff2af13e5")
	DisturbanceCategoryIDTag = MustParseIdentifier("4a5b6c7d-8e9f-4a1b-8c2d-3e4f5a6b7c8d")

	// DataSourceRecord equipment and QuantityCharacteristic, resolved
	// through the same registry-backed identifier caches as QuantityType.
	EquipmentIDTag            = MustParseIdentifier("5b6c7d8e-9fa0-4b2c-9d3e-4f5a6b7c8d9e")
	QuantityCharacteristicTag = MustParseIdentifier("6c7d8e9f-a0b1-4c3d-ae4f-5a6b7c8d9e0f")

	// ChannelInstance fields: its index into the DataSource's channel
	// definitions and the MonitorSettings' channel settings, used to
	// resolve QuantityTypeID and transducer ratios respectively.
	ChannelDefinitionIndexTag = MustParseIdentifier("1a2b3c4d-5e6f-4789-8a9b-0c1d2e3f4a5b")
	ChannelSettingIndexTag    = MustParseIdentifier("2b3c4d5e-6f78-4890-9a0b-1c2d3e4f5a6b")
	SeriesInstancesTag        = MustParseIdentifier("3c4d5e6f-7890-4a01-ab1c-2d3e4f5a6b7c")

	// SeriesInstance fields.
	SeriesValuesTag         = MustParseIdentifier("40465f21-7ea1-4ab8-93b5-51c0cfd0e343")
	SeriesValueScaleTag     = MustParseIdentifier("ad1b39b3-b7b8-4e0b-9b93-a5c127b89bcb")
	SeriesValueOffsetTag    = MustParseIdentifier("7c6e25bf-5ce6-4f86-bb2d-37d88fcb1e37")
	SeriesStorageMethodsTag = MustParseIdentifier("dce42c7a-cd84-41f7-a0b3-5e6e13b5b5d5")
	SeriesShareSeriesTag    = MustParseIdentifier("b3c6e19e-9a6d-4c72-91c2-36b3e2a5c2c7")
	SeriesValueTypeIDTag    = MustParseIdentifier("6a7b44d2-0e51-4f9f-9d3c-31cfab0c97e4")
)

// StorageMethod flags for SeriesInstance.StorageMethods, per spec.md §4.G.
type StorageMethod uint32

const (
	StorageMethodNone      StorageMethod = 0
	StorageMethodIncrement StorageMethod = 1 << 0
	StorageMethodScaled    StorageMethod = 1 << 1
)

// Has reports whether flag is set in m.
func (m StorageMethod) Has(flag StorageMethod) bool { return m&flag != 0 }
