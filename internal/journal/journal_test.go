package journal

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quaver.click/internal/engine"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDatabase(MemoryPath)
	if err != nil {
		t.Fatalf("OpenDatabase failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// fixedClock returns a clock that advances one second per call
func fixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Second)
		return now
	}
}

func TestOpenDatabaseCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "journal.db")

	db, err := OpenDatabase(dbPath)
	if err != nil {
		t.Fatalf("OpenDatabase failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSchemaExists(t *testing.T) {
	db := setupTestDB(t)

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM events").Scan(&count); err != nil {
		t.Fatalf("events table is not queryable: %v", err)
	}

	for _, index := range []string{"idx_events_timestamp", "idx_events_kind", "idx_events_session"} {
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND name=?", index).Scan(&count)
		if err != nil || count != 1 {
			t.Errorf("Index %s missing (count %d, err %v)", index, count, err)
		}
	}
}

func TestSinkRecordsEveryNotification(t *testing.T) {
	db := setupTestDB(t)
	sink := NewSink(db, map[string]string{"missing": "fallback"})
	sink.now = fixedClock(time.Unix(1_700_000_000, 0))

	sink.DeviceDisconnected(&engine.Device{ID: 3, Name: "USB Headset"})
	sink.SourceStopped(&engine.Source{ID: 7, Buffer: "click"})
	sink.SourceForceStopped(&engine.Source{ID: 8})
	sink.BufferLoading("click", "Mono", "Signed 16-bit", 44100, make([]byte, 64))
	assert.Equal(t, "fallback", sink.ResourceNotFound("missing"))
	assert.Equal(t, "", sink.ResourceNotFound("unknown"))

	events, err := Query(db, QueryFilter{SessionID: sink.SessionID()})
	require.NoError(t, err)
	require.Len(t, events, 6)

	// newest first
	kinds := make([]Kind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []Kind{
		KindResourceNotFound,
		KindResourceNotFound,
		KindBufferLoading,
		KindSourceForceStopped,
		KindSourceStopped,
		KindDeviceDisconnected,
	}, kinds)

	assert.Equal(t, "unknown", events[0].Subject)
	assert.JSONEq(t, `{"substitute":""}`, string(events[0].Detail))
	assert.JSONEq(t, `{"substitute":"fallback"}`, string(events[1].Detail))

	var buffer bufferDetail
	require.NoError(t, json.Unmarshal(events[2].Detail, &buffer))
	assert.Equal(t, bufferDetail{ChannelConfig: "Mono", SampleType: "Signed 16-bit", SampleRate: 44100, Bytes: 64}, buffer)

	assert.Equal(t, "source#8", events[3].Subject)
	assert.JSONEq(t, `{"id":7,"buffer":"click"}`, string(events[4].Detail))
	assert.Equal(t, "USB Headset", events[5].Subject)
	assert.Equal(t, time.Unix(1_700_000_000, 0), events[5].Time)
}

func TestSinkWithoutDatabase(t *testing.T) {
	sink := NewSink(nil, map[string]string{"a": "b"})
	sink.BufferLoading("x", "stereo", "float32", 48000, nil)
	assert.Equal(t, "b", sink.ResourceNotFound("a"))
}

func TestSinkSubstitutesAreCopied(t *testing.T) {
	subs := map[string]string{"a": "b"}
	sink := NewSink(nil, subs)
	subs["a"] = "changed"
	assert.Equal(t, "b", sink.ResourceNotFound("a"))
}

func TestSinkDisablesAfterDatabaseError(t *testing.T) {
	db := setupTestDB(t)
	sink := NewSink(db, nil)
	require.NoError(t, db.Close())

	sink.SourceStopped(&engine.Source{ID: 1})
	assert.True(t, sink.disabled)

	// still answers the engine
	assert.Equal(t, "", sink.ResourceNotFound("anything"))
}

func TestSessionsAreDistinct(t *testing.T) {
	assert.NotEqual(t, NewSink(nil, nil).SessionID(), NewSink(nil, nil).SessionID())
}

func TestQueryFilters(t *testing.T) {
	db := setupTestDB(t)
	base := time.Unix(1_700_000_000, 0)

	first := NewSink(db, nil)
	first.now = fixedClock(base)
	// one second apart, starting at base
	first.BufferLoading("a", "mono", "uint8", 8000, nil)
	first.BufferLoading("b", "mono", "uint8", 8000, nil)
	first.SourceStopped(&engine.Source{ID: 1})
	first.ResourceNotFound("c")

	second := NewSink(db, nil)
	second.now = fixedClock(base.Add(time.Hour))
	second.BufferLoading("a", "stereo", "int16", 44100, nil)

	since := base.Add(time.Second)
	until := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter QueryFilter
		want   int
	}{
		{"everything", QueryFilter{}, 5},
		{"by kind", QueryFilter{Kind: KindBufferLoading}, 3},
		{"by session", QueryFilter{SessionID: second.SessionID()}, 1},
		{"by subject", QueryFilter{Subject: "a"}, 2},
		{"since", QueryFilter{Since: &since}, 4},
		{"window", QueryFilter{Since: &since, Until: &until}, 2},
		{"limit", QueryFilter{Limit: 2}, 2},
		{"combined", QueryFilter{Kind: KindBufferLoading, Subject: "a", SessionID: first.SessionID()}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := Query(db, tt.filter)
			require.NoError(t, err)
			assert.Len(t, events, tt.want)
		})
	}
}

func TestBuildWhereClause(t *testing.T) {
	empty := QueryFilter{}
	clause, args := empty.BuildWhereClause()
	assert.Empty(t, clause)
	assert.Empty(t, args)

	since := time.Unix(100, 0)
	q := QueryFilter{Since: &since, Kind: KindSourceStopped}
	clause, args = q.BuildWhereClause()
	assert.Equal(t, "timestamp >= ? AND kind = ?", clause)
	assert.Equal(t, []any{int64(100), "source_stopped"}, args)
}

func TestParseSince(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	got, err := ParseSince("2026-03-01T10:00:00Z", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), got)

	got, err = ParseSince("2 hours ago", now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(-2*time.Hour), got, time.Minute)

	_, err = ParseSince("   ", now)
	assert.Error(t, err)
}

func TestKinds(t *testing.T) {
	assert.Len(t, Kinds(), 5)
}
