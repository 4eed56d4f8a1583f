package journal

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"maps"
	"time"

	"github.com/google/uuid"

	"quaver.click/internal/bridge"
	"quaver.click/internal/engine"
)

// Sink is a bridge.PrimitiveMessageSink that writes every notification to
// the journal. A nil database makes it log only. After the first database
// error it stops writing for the rest of the session.
type Sink struct {
	db          *sql.DB
	sessionID   string
	substitutes map[string]string
	disabled    bool
	now         func() time.Time
}

var _ bridge.PrimitiveMessageSink = (*Sink)(nil)

// NewSink creates a sink for a new session. substitutes maps missing
// resource names to the names the engine should try instead.
func NewSink(db *sql.DB, substitutes map[string]string) *Sink {
	s := &Sink{
		db:          db,
		sessionID:   uuid.NewString(),
		substitutes: maps.Clone(substitutes),
		now:         time.Now,
	}
	slog.Debug("journal sink created",
		"session_id", s.sessionID,
		"persistent", db != nil,
		"substitutes", len(s.substitutes))
	return s
}

// SessionID identifies the events written by this sink
func (s *Sink) SessionID() string {
	return s.sessionID
}

// DeviceDisconnected implements bridge.PrimitiveMessageSink
func (s *Sink) DeviceDisconnected(device *engine.Device) {
	slog.Warn("audio device disconnected", "device", device.String())
	s.record(KindDeviceDisconnected, device.Name, handleDetail{ID: device.ID})
}

// SourceStopped implements bridge.PrimitiveMessageSink
func (s *Sink) SourceStopped(source *engine.Source) {
	slog.Debug("source stopped", "source", source.String(), "buffer", source.Buffer)
	s.record(KindSourceStopped, source.String(), handleDetail{ID: source.ID, Buffer: source.Buffer})
}

// SourceForceStopped implements bridge.PrimitiveMessageSink
func (s *Sink) SourceForceStopped(source *engine.Source) {
	slog.Info("source force stopped", "source", source.String(), "buffer", source.Buffer)
	s.record(KindSourceForceStopped, source.String(), handleDetail{ID: source.ID, Buffer: source.Buffer})
}

// BufferLoading implements bridge.PrimitiveMessageSink
func (s *Sink) BufferLoading(name, channelConfig, sampleType string, sampleRate uint, data []byte) {
	slog.Debug("buffer loading",
		"name", name,
		"channel_config", channelConfig,
		"sample_type", sampleType,
		"sample_rate", sampleRate,
		"bytes", len(data))
	s.record(KindBufferLoading, name, bufferDetail{
		ChannelConfig: channelConfig,
		SampleType:    sampleType,
		SampleRate:    sampleRate,
		Bytes:         len(data),
	})
}

// ResourceNotFound implements bridge.PrimitiveMessageSink. The substitute
// table is consulted and "" is returned when it has no entry.
func (s *Sink) ResourceNotFound(name string) string {
	substitute := s.substitutes[name]
	slog.Info("resource not found", "name", name, "substitute", substitute)
	s.record(KindResourceNotFound, name, substituteDetail{Substitute: substitute})
	return substitute
}

func (s *Sink) record(kind Kind, subject string, detail any) {
	if s.db == nil || s.disabled {
		return
	}

	detailJSON, err := json.Marshal(detail)
	if err != nil {
		slog.Warn("journal failed to encode event detail", "kind", kind, "error", err)
		return
	}

	_, err = s.db.Exec(`
		INSERT INTO events (timestamp, session_id, kind, subject, detail)
		VALUES (?, ?, ?, ?, ?)`,
		s.now().Unix(),
		s.sessionID,
		string(kind),
		subject,
		string(detailJSON))
	if err != nil {
		slog.Warn("journal failed to record event, disabling", "kind", kind, "error", err)
		s.disabled = true
		return
	}

	slog.Debug("journal recorded event",
		"session_id", s.sessionID,
		"kind", kind,
		"subject", subject)
}
