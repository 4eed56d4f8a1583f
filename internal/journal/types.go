package journal

import (
	"encoding/json"
	"time"
)

// Kind names the notification an event records
type Kind string

// Event kinds, one per engine notification
const (
	KindDeviceDisconnected Kind = "device_disconnected"
	KindSourceStopped      Kind = "source_stopped"
	KindSourceForceStopped Kind = "source_force_stopped"
	KindBufferLoading      Kind = "buffer_loading"
	KindResourceNotFound   Kind = "resource_not_found"
)

// Kinds lists every event kind
func Kinds() []Kind {
	return []Kind{
		KindDeviceDisconnected,
		KindSourceStopped,
		KindSourceForceStopped,
		KindBufferLoading,
		KindResourceNotFound,
	}
}

// Event is one journaled notification
type Event struct {
	ID        int64
	Time      time.Time
	SessionID string
	Kind      Kind
	// Subject is the device, source or resource the event is about
	Subject string
	Detail  json.RawMessage
}

// bufferDetail is the detail recorded for buffer loading events
type bufferDetail struct {
	ChannelConfig string `json:"channel_config"`
	SampleType    string `json:"sample_type"`
	SampleRate    uint   `json:"sample_rate"`
	Bytes         int    `json:"bytes"`
}

// substituteDetail is the detail recorded for missing resources
type substituteDetail struct {
	Substitute string `json:"substitute"`
}

// handleDetail is the detail recorded for device and source events
type handleDetail struct {
	ID     uint32 `json:"id"`
	Buffer string `json:"buffer,omitempty"`
}
