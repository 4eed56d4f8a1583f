package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quaver.click/internal/engine"
	"quaver.click/internal/stream"
)

// mockDecoder is a PrimitiveDecoder returning canned values and recording calls
type mockDecoder struct {
	frequency  uint
	channels   engine.ChannelConfig
	typ        engine.SampleType
	length     uint64
	loopStart  uint64
	loopEnd    uint64
	seekResult bool
	readResult uint

	seekedTo  []uint64
	readCount []uint
	closed    bool
}

func (m *mockDecoder) Frequency() uint                     { return m.frequency }
func (m *mockDecoder) ChannelConfig() engine.ChannelConfig { return m.channels }
func (m *mockDecoder) SampleType() engine.SampleType       { return m.typ }
func (m *mockDecoder) Length() uint64                      { return m.length }
func (m *mockDecoder) LoopPoints() (uint64, uint64)        { return m.loopStart, m.loopEnd }

func (m *mockDecoder) SeekFrame(pos uint64) bool {
	m.seekedTo = append(m.seekedTo, pos)
	return m.seekResult
}

func (m *mockDecoder) ReadFrames(dst []byte, count uint) uint {
	m.readCount = append(m.readCount, count)
	return m.readResult
}

type closingDecoder struct {
	mockDecoder
}

func (c *closingDecoder) Close() error {
	c.closed = true
	return nil
}

// countingDecoder counts calls to the format properties
type countingDecoder struct {
	mockDecoder
	propertyCalls int
}

func (c *countingDecoder) Frequency() uint {
	c.propertyCalls++
	return c.mockDecoder.Frequency()
}

func (c *countingDecoder) ChannelConfig() engine.ChannelConfig {
	c.propertyCalls++
	return c.mockDecoder.ChannelConfig()
}

func (c *countingDecoder) SampleType() engine.SampleType {
	c.propertyCalls++
	return c.mockDecoder.SampleType()
}

type bufferLoadingCall struct {
	name, channels, typ string
	rate                uint
	data                []byte
}

// mockSink is a PrimitiveMessageSink recording every call in order
type mockSink struct {
	calls      []string
	devices    []engine.Device
	sources    []engine.Source
	loads      []bufferLoadingCall
	substitute string
}

func (m *mockSink) DeviceDisconnected(device *engine.Device) {
	m.calls = append(m.calls, "disconnected")
	m.devices = append(m.devices, *device)
}

func (m *mockSink) SourceStopped(source *engine.Source) {
	m.calls = append(m.calls, "stopped")
	m.sources = append(m.sources, *source)
}

func (m *mockSink) SourceForceStopped(source *engine.Source) {
	m.calls = append(m.calls, "force_stopped")
	m.sources = append(m.sources, *source)
}

func (m *mockSink) BufferLoading(name, channelConfig, sampleType string, sampleRate uint, data []byte) {
	m.calls = append(m.calls, "buffer_loading")
	m.loads = append(m.loads, bufferLoadingCall{name, channelConfig, sampleType, sampleRate, data})
}

func (m *mockSink) ResourceNotFound(name string) string {
	m.calls = append(m.calls, "resource_not_found")
	return m.substitute
}

type mockFiles struct {
	sources map[string]stream.Source
	asked   []string
}

func (m *mockFiles) OpenFile(name string) stream.Source {
	m.asked = append(m.asked, name)
	if src, ok := m.sources[name]; ok {
		return src
	}
	return nil
}

type byteSource struct {
	data []byte
	pos  int
}

func (b *byteSource) Seek(offset int64, whence int) int64 {
	if whence != 0 || offset < 0 {
		return -1
	}
	b.pos = int(offset)
	return offset
}

func (b *byteSource) Read(p []byte) int {
	if b.pos >= len(b.data) {
		return 0
	}
	n := copy(p, b.data[b.pos:])
	b.pos += n
	return n
}

func TestDecoderForwardsProperties(t *testing.T) {
	p := &mockDecoder{
		frequency: 44100,
		channels:  engine.X51,
		typ:       engine.Float32,
		length:    1000,
		loopStart: 10,
		loopEnd:   900,
	}
	d := NewDecoder(p)

	assert.Equal(t, uint32(44100), d.Frequency())
	assert.Equal(t, engine.X51, d.ChannelConfig())
	assert.Equal(t, engine.Float32, d.SampleType())
	assert.Equal(t, uint64(1000), d.Length())
	assert.Equal(t, engine.LoopPoints{Start: 10, End: 900}, d.LoopPoints())
	assert.Same(t, p, d.Primitive())
}

func TestNewDecoderDoesNotCallPrimitive(t *testing.T) {
	p := &countingDecoder{mockDecoder: mockDecoder{frequency: 22050, channels: engine.Mono, typ: engine.UInt8}}
	d := NewDecoder(p)
	assert.Zero(t, p.propertyCalls)

	assert.Equal(t, uint32(22050), d.Frequency())
	assert.Equal(t, engine.Mono, d.ChannelConfig())
	assert.Equal(t, engine.UInt8, d.SampleType())
	assert.Equal(t, 3, p.propertyCalls, "one primitive call per engine call")
}

func TestDecoderLoopPointsPassThrough(t *testing.T) {
	d := NewDecoder(&mockDecoder{channels: engine.Mono, typ: engine.Int16})
	assert.Equal(t, engine.NoLoop, d.LoopPoints())

	inverted := NewDecoder(&mockDecoder{channels: engine.Mono, typ: engine.Int16, loopStart: 50, loopEnd: 5})
	lp := inverted.LoopPoints()
	assert.Equal(t, engine.LoopPoints{Start: 50, End: 5}, lp, "pairs are forwarded unchanged")
	assert.False(t, lp.Valid())
}

func TestDecoderSeek(t *testing.T) {
	p := &mockDecoder{seekResult: true}
	d := NewDecoder(p)

	assert.True(t, d.Seek(512))
	p.seekResult = false
	assert.False(t, d.Seek(1<<40))
	assert.Equal(t, []uint64{512, 1 << 40}, p.seekedTo)
}

func TestDecoderRead(t *testing.T) {
	p := &mockDecoder{channels: engine.Stereo, typ: engine.Int16, readResult: 64}
	d := NewDecoder(p)
	dst := make([]byte, 4*128)

	assert.Equal(t, uint32(64), d.Read(dst, 128))
	require.Equal(t, []uint{128}, p.readCount)

	p.readResult = 0
	assert.Equal(t, uint32(0), d.Read(dst, 128), "end of stream is zero frames")

	p.readResult = 500
	assert.Equal(t, uint32(128), d.Read(dst, 128), "never more than requested")
}

func TestDecoderClose(t *testing.T) {
	assert.NoError(t, NewDecoder(&mockDecoder{}).Close())

	c := &closingDecoder{}
	require.NoError(t, NewDecoder(c).Close())
	assert.True(t, c.closed)
}

func TestMessageHandlerStopsStayDistinct(t *testing.T) {
	sink := &mockSink{}
	h := NewMessageHandler(sink)

	h.SourceStopped(engine.Source{ID: 1})
	h.SourceForceStopped(engine.Source{ID: 2})
	h.SourceStopped(engine.Source{ID: 3})

	assert.Equal(t, []string{"stopped", "force_stopped", "stopped"}, sink.calls)
	assert.Equal(t, []engine.Source{{ID: 1}, {ID: 2}, {ID: 3}}, sink.sources)
}

func TestMessageHandlerDeviceDisconnected(t *testing.T) {
	sink := &mockSink{}
	NewMessageHandler(sink).DeviceDisconnected(engine.Device{ID: 7, Name: "Speakers"})

	require.Len(t, sink.devices, 1)
	assert.Equal(t, engine.Device{ID: 7, Name: "Speakers"}, sink.devices[0])
}

func TestBufferLoadingCopiesData(t *testing.T) {
	sink := &mockSink{}
	h := NewMessageHandler(sink)

	view := []byte{1, 2, 3, 4}
	h.BufferLoading("beep.wav", engine.Stereo, engine.Int16, 22050, view)

	// the engine invalidates the view after the call returns
	for i := range view {
		view[i] = 0xFF
	}

	require.Len(t, sink.loads, 1)
	got := sink.loads[0]
	assert.Equal(t, "beep.wav", got.name)
	assert.Equal(t, "Stereo", got.channels)
	assert.Equal(t, "Signed 16-bit", got.typ)
	assert.Equal(t, uint(22050), got.rate)
	assert.Equal(t, []byte{1, 2, 3, 4}, got.data)
}

func TestBufferLoadingNamesAndEmptyData(t *testing.T) {
	tests := []struct {
		name         string
		channels     engine.ChannelConfig
		typ          engine.SampleType
		wantChannels string
		wantType     string
	}{
		{"surround float", engine.X71, engine.Float32, "7.1 Surround", "32-bit float"},
		{"ambisonic mulaw", engine.BFormat3D, engine.Mulaw, "B-Format 3D", "Mulaw"},
		{"unknown values", engine.ChannelConfig(1), engine.SampleType(2), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &mockSink{}
			NewMessageHandler(sink).BufferLoading("x", tt.channels, tt.typ, 8000, nil)

			require.Len(t, sink.loads, 1)
			assert.Equal(t, tt.wantChannels, sink.loads[0].channels)
			assert.Equal(t, tt.wantType, sink.loads[0].typ)
			assert.NotNil(t, sink.loads[0].data)
			assert.Empty(t, sink.loads[0].data)
		})
	}
}

func TestResourceNotFound(t *testing.T) {
	sink := &mockSink{substitute: "fallback.wav"}
	h := NewMessageHandler(sink)
	assert.Equal(t, "fallback.wav", h.ResourceNotFound("missing.wav"))

	sink.substitute = ""
	assert.Equal(t, "", h.ResourceNotFound("missing.wav"))
}

func TestFileIOFactoryMissingFile(t *testing.T) {
	files := &mockFiles{}
	f := NewFileIOFactory(files)

	s := f.OpenFile("nope.ogg")
	assert.Nil(t, s)
	if s != nil {
		t.Error("expected an untyped nil stream")
	}
	assert.Equal(t, []string{"nope.ogg"}, files.asked)
}

func TestFileIOFactoryWrapsSource(t *testing.T) {
	files := &mockFiles{sources: map[string]stream.Source{
		"hello.txt": &byteSource{data: []byte("hello")},
	}}
	s := NewFileIOFactory(files).OpenFile("hello.txt")
	require.NotNil(t, s)

	buf := make([]byte, 5)
	n, err := s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf[:n]))

	assert.Equal(t, int64(1), s.SeekPos(1))
	c := s.Underflow()
	assert.Equal(t, int('e'), c)
	assert.Equal(t, engine.InvalidPos, s.SeekOff(0, engine.SeekEnd), "source failures pass through")
}
