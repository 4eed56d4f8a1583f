package tables

import "quaver.click/internal/engine"

var sampleTypes = newEnumTable("sample type",
	entry[engine.SampleType]{"Unsigned 8-bit", engine.UInt8},
	entry[engine.SampleType]{"Signed 16-bit", engine.Int16},
	entry[engine.SampleType]{"32-bit float", engine.Float32},
	entry[engine.SampleType]{"Mulaw", engine.Mulaw},
)

var channelConfigs = newEnumTable("channel config",
	entry[engine.ChannelConfig]{"Mono", engine.Mono},
	entry[engine.ChannelConfig]{"Stereo", engine.Stereo},
	entry[engine.ChannelConfig]{"Rear", engine.Rear},
	entry[engine.ChannelConfig]{"Quadrophonic", engine.Quad},
	entry[engine.ChannelConfig]{"5.1 Surround", engine.X51},
	entry[engine.ChannelConfig]{"6.1 Surround", engine.X61},
	entry[engine.ChannelConfig]{"7.1 Surround", engine.X71},
	entry[engine.ChannelConfig]{"B-Format 2D", engine.BFormat2D},
	entry[engine.ChannelConfig]{"B-Format 3D", engine.BFormat3D},
)

var distanceModels = newEnumTable("distance model",
	entry[engine.DistanceModel]{"inverse clamped", engine.InverseClamped},
	entry[engine.DistanceModel]{"linear clamped", engine.LinearClamped},
	entry[engine.DistanceModel]{"exponent clamped", engine.ExponentClamped},
	entry[engine.DistanceModel]{"inverse", engine.Inverse},
	entry[engine.DistanceModel]{"linear", engine.Linear},
	entry[engine.DistanceModel]{"exponent", engine.Exponent},
	entry[engine.DistanceModel]{"none", engine.NoDistance},
)

// SampleType looks up a sample type by its human readable name
func SampleType(name string) (engine.SampleType, bool) {
	return sampleTypes.value(name)
}

// SampleTypeName returns the human readable name of a sample type
func SampleTypeName(t engine.SampleType) (string, bool) {
	return sampleTypes.name(t)
}

// SampleTypeNames returns all sample type names in sorted order
func SampleTypeNames() []string {
	return sampleTypes.sortedNames()
}

// ChannelConfig looks up a channel configuration by its human readable name
func ChannelConfig(name string) (engine.ChannelConfig, bool) {
	return channelConfigs.value(name)
}

// ChannelConfigName returns the human readable name of a channel configuration
func ChannelConfigName(c engine.ChannelConfig) (string, bool) {
	return channelConfigs.name(c)
}

// ChannelConfigNames returns all channel configuration names in sorted order
func ChannelConfigNames() []string {
	return channelConfigs.sortedNames()
}

// DistanceModel looks up a distance model by its human readable name
func DistanceModel(name string) (engine.DistanceModel, bool) {
	return distanceModels.value(name)
}

// DistanceModelName returns the human readable name of a distance model
func DistanceModelName(m engine.DistanceModel) (string, bool) {
	return distanceModels.name(m)
}

// DistanceModelNames returns all distance model names in sorted order
func DistanceModelNames() []string {
	return distanceModels.sortedNames()
}

// ChannelConfigForCount picks the plain speaker layout carrying n channels.
// B-Format layouts are never chosen since a channel count alone cannot
// distinguish them from speaker feeds.
func ChannelConfigForCount(n int) (engine.ChannelConfig, bool) {
	switch n {
	case 1:
		return engine.Mono, true
	case 2:
		return engine.Stereo, true
	case 4:
		return engine.Quad, true
	case 6:
		return engine.X51, true
	case 7:
		return engine.X61, true
	case 8:
		return engine.X71, true
	default:
		return 0, false
	}
}
