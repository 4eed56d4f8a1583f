// Package bridge adapts simply typed primitive implementations to the
// engine's capability interfaces.
//
// Every engine-facing method forwards to exactly one primitive call and
// translates between engine types and portable types on the way. No adapter
// returns an error or panics on its own: failures are the primitive's
// in-band results passed through.
package bridge

import (
	"quaver.click/internal/engine"
	"quaver.click/internal/stream"
)

// PrimitiveDecoder is a decoder expressed in portable types.
// Implementations that also satisfy io.Closer are closed with the adapter.
type PrimitiveDecoder interface {
	Frequency() uint
	ChannelConfig() engine.ChannelConfig
	SampleType() engine.SampleType
	// Length is the total frame count, 0 if unknown
	Length() uint64
	SeekFrame(pos uint64) bool
	// LoopPoints returns (0, 0) when there is no loop
	LoopPoints() (start, end uint64)
	// ReadFrames writes up to count frames into dst and returns how many it wrote
	ReadFrames(dst []byte, count uint) uint
}

// PrimitiveFileFactory opens named resources as byte sources
type PrimitiveFileFactory interface {
	// OpenFile returns nil when the resource cannot be opened. The caller
	// owns the returned source.
	OpenFile(name string) stream.Source
}

// PrimitiveMessageSink receives engine notifications in portable types.
// Device and source handles are only valid for the duration of the call.
type PrimitiveMessageSink interface {
	DeviceDisconnected(device *engine.Device)
	SourceStopped(source *engine.Source)
	SourceForceStopped(source *engine.Source)
	BufferLoading(name, channelConfig, sampleType string, sampleRate uint, data []byte)
	ResourceNotFound(name string) string
}
