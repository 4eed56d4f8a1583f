package bridge

import (
	"slices"

	"quaver.click/internal/engine"
	"quaver.click/internal/tables"
)

// MessageHandler presents a PrimitiveMessageSink to the engine
type MessageHandler struct {
	sink PrimitiveMessageSink
}

var _ engine.MessageHandler = (*MessageHandler)(nil)

// NewMessageHandler wraps sink
func NewMessageHandler(sink PrimitiveMessageSink) *MessageHandler {
	return &MessageHandler{sink: sink}
}

func (h *MessageHandler) DeviceDisconnected(device engine.Device) {
	h.sink.DeviceDisconnected(&device)
}

func (h *MessageHandler) SourceStopped(source engine.Source) {
	h.sink.SourceStopped(&source)
}

func (h *MessageHandler) SourceForceStopped(source engine.Source) {
	h.sink.SourceForceStopped(&source)
}

// BufferLoading forwards a private copy of data, since the engine reuses the
// view once the call returns. Unknown enum values are passed as empty names.
func (h *MessageHandler) BufferLoading(name string, channels engine.ChannelConfig, typ engine.SampleType, sampleRate uint32, data []byte) {
	channelName, _ := tables.ChannelConfigName(channels)
	typeName, _ := tables.SampleTypeName(typ)

	owned := slices.Clone(data)
	if owned == nil {
		owned = []byte{}
	}
	h.sink.BufferLoading(name, channelName, typeName, uint(sampleRate), owned)
}

// ResourceNotFound returns the sink's substitute; empty or name itself means none
func (h *MessageHandler) ResourceNotFound(name string) string {
	return h.sink.ResourceNotFound(name)
}
