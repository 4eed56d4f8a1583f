// Package engine describes the native audio engine's side of the adapter
// boundary: its value types, its object handles and the capability
// interfaces it calls into.
//
// Every method of the capability interfaces is called by the engine on
// whatever thread it happens to be running (decoder reads on the mixer
// thread, messages on the thread that noticed the event). Implementations
// must return promptly and must never panic: failures are encoded in the
// return values.
package engine

import "io"

// InvalidPos is the stream position reported for failed or unsupported repositioning
const InvalidPos int64 = -1

// EOF is returned by Stream.Underflow when no more data can be read
const EOF = -1

// SeekDir selects the reference point of Stream.SeekOff
type SeekDir int

// Reference points for SeekOff
const (
	SeekBeg SeekDir = iota
	SeekCur
	SeekEnd
)

// Decoder supplies decoded sample frames to the engine
type Decoder interface {
	Frequency() uint32
	ChannelConfig() ChannelConfig
	SampleType() SampleType
	// Length returns the total number of frames, 0 if unknown
	Length() uint64
	// Seek repositions to the given frame, reporting success
	Seek(pos uint64) bool
	LoopPoints() LoopPoints
	// Read writes up to count frames into dst and returns the number written.
	// 0 means the end of the stream or that no data is currently available.
	Read(dst []byte, count uint32) uint32
}

// MessageHandler receives engine notifications
type MessageHandler interface {
	DeviceDisconnected(device Device)
	SourceStopped(source Source)
	// SourceForceStopped is delivered when a source was stopped by the engine
	// (reclaimed, preempted, group stop) rather than reaching its end
	SourceForceStopped(source Source)
	// BufferLoading is delivered while a buffer is being filled. data is only
	// valid for the duration of the call.
	BufferLoading(name string, channels ChannelConfig, typ SampleType, sampleRate uint32, data []byte)
	// ResourceNotFound may return an alternative name to try. An empty or
	// unchanged name means no substitute exists.
	ResourceNotFound(name string) string
}

// FileIOFactory opens named resources for the engine
type FileIOFactory interface {
	// OpenFile returns nil when the resource cannot be opened
	OpenFile(name string) Stream
}

// Stream is the random access byte stream the engine reads resources through
type Stream interface {
	io.ReadSeekCloser
	SeekOff(off int64, dir SeekDir) int64
	SeekPos(pos int64) int64
	Sync() int
	ShowManyC() int64
	Underflow() int
}
