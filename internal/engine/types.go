package engine

// SampleType is the engine's sample storage format enumeration
type SampleType int32

// Sample types, valued as the engine's AL_*_SOFT constants
const (
	UInt8   SampleType = 0x1401
	Int16   SampleType = 0x1402
	Float32 SampleType = 0x1406
	Mulaw   SampleType = 0x10014
)

// BytesPerSample returns the storage size of one sample, or 0 for unknown types
func (t SampleType) BytesPerSample() int {
	switch t {
	case UInt8, Mulaw:
		return 1
	case Int16:
		return 2
	case Float32:
		return 4
	default:
		return 0
	}
}

// ChannelConfig is the engine's channel layout enumeration
type ChannelConfig int32

// Channel configurations, valued as the engine's AL_*_SOFT constants
const (
	Mono      ChannelConfig = 0x1500
	Stereo    ChannelConfig = 0x1501
	Rear      ChannelConfig = 0x1502
	Quad      ChannelConfig = 0x1503
	X51       ChannelConfig = 0x1504
	X61       ChannelConfig = 0x1505
	X71       ChannelConfig = 0x1506
	BFormat2D ChannelConfig = 0x20031
	BFormat3D ChannelConfig = 0x20032
)

// Channels returns the number of interleaved channels in one frame, or 0 for unknown layouts
func (c ChannelConfig) Channels() int {
	switch c {
	case Mono:
		return 1
	case Stereo, Rear:
		return 2
	case BFormat2D:
		return 3
	case Quad, BFormat3D:
		return 4
	case X51:
		return 6
	case X61:
		return 7
	case X71:
		return 8
	default:
		return 0
	}
}

// FrameSize returns the size in bytes of one frame with the given layout and sample type
func FrameSize(channels ChannelConfig, typ SampleType) int {
	return channels.Channels() * typ.BytesPerSample()
}

// FramesToBytes converts a frame count into a byte count
func FramesToBytes(frames uint64, channels ChannelConfig, typ SampleType) uint64 {
	return frames * uint64(FrameSize(channels, typ))
}

// BytesToFrames converts a byte count into a whole frame count
func BytesToFrames(n uint64, channels ChannelConfig, typ SampleType) uint64 {
	size := FrameSize(channels, typ)
	if size == 0 {
		return 0
	}
	return n / uint64(size)
}

// DistanceModel is the engine's distance attenuation model enumeration
type DistanceModel int32

// Distance models, valued as the engine's AL_*_DISTANCE* constants
const (
	InverseClamped  DistanceModel = 0xD002
	LinearClamped   DistanceModel = 0xD004
	ExponentClamped DistanceModel = 0xD006
	Inverse         DistanceModel = 0xD001
	Linear          DistanceModel = 0xD003
	Exponent        DistanceModel = 0xD005
	NoDistance      DistanceModel = 0
)

// Vector3 is a three component position, velocity or direction
type Vector3 [3]float32

// FilterParams is the gain triple applied by direct and send filters
type FilterParams struct {
	Gain   float32
	GainHF float32
	GainLF float32
}

// AttributePair is one key/value entry of a context attribute list
type AttributePair struct {
	Attribute int32
	Value     int32
}

// AttributesEnd returns the pair terminating every attribute list
func AttributesEnd() AttributePair {
	return AttributePair{Attribute: 0, Value: 0}
}

// LoopPoints marks the repeatable region of a decoded stream in frames
type LoopPoints struct {
	Start uint64
	End   uint64
}

// NoLoop is returned by decoders that have no loop region
var NoLoop = LoopPoints{}

// Valid reports whether the pair describes a non-empty loop region
func (l LoopPoints) Valid() bool {
	return l.End > l.Start
}
