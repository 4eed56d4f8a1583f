package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quaver.click/internal/bridge"
	"quaver.click/internal/engine"
	"quaver.click/internal/stream"
)

type testWAV struct {
	format   uint16
	channels uint16
	bits     uint16
	rate     uint32
	data     []byte
	loop     *[2]uint32
	// dataSize overrides the data chunk size written in the header
	dataSize uint32
}

// buildWAV writes a minimal RIFF/WAVE file, with a trailing smpl chunk when a loop is set
func buildWAV(w testWAV) []byte {
	le := binary.LittleEndian
	blockAlign := w.channels * w.bits / 8

	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, le, uint32(0))
	b.WriteString("WAVE")

	b.WriteString("fmt ")
	binary.Write(&b, le, uint32(16))
	binary.Write(&b, le, w.format)
	binary.Write(&b, le, w.channels)
	binary.Write(&b, le, w.rate)
	binary.Write(&b, le, w.rate*uint32(blockAlign))
	binary.Write(&b, le, blockAlign)
	binary.Write(&b, le, w.bits)

	dataSize := uint32(len(w.data))
	if w.dataSize != 0 {
		dataSize = w.dataSize
	}
	b.WriteString("data")
	binary.Write(&b, le, dataSize)
	b.Write(w.data)
	if len(w.data)%2 == 1 {
		b.WriteByte(0)
	}

	if w.loop != nil {
		b.WriteString("smpl")
		binary.Write(&b, le, uint32(60))
		for range 7 {
			binary.Write(&b, le, uint32(0))
		}
		binary.Write(&b, le, uint32(1)) // loop count
		binary.Write(&b, le, uint32(0)) // sampler data
		binary.Write(&b, le, uint32(0)) // cue point id
		binary.Write(&b, le, uint32(0)) // loop type
		binary.Write(&b, le, w.loop[0])
		binary.Write(&b, le, w.loop[1])
		binary.Write(&b, le, uint32(0)) // fraction
		binary.Write(&b, le, uint32(0)) // play count
	}

	out := b.Bytes()
	le.PutUint32(out[4:], uint32(len(out)-8))
	return out
}

func ramp(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

// engineStream serves data through the engine stream adapter with a tiny get area
func engineStream(data []byte) *stream.Buffer {
	return stream.NewBufferSize(stream.NewReaderSource("test", bytes.NewReader(data)), 7)
}

func TestWavDecoderStereo16(t *testing.T) {
	data := ramp(40) // 10 frames
	dec, err := NewWavDecoder(bytes.NewReader(buildWAV(testWAV{
		format: 1, channels: 2, bits: 16, rate: 44100, data: data,
	})))
	require.NoError(t, err)

	assert.Equal(t, uint(44100), dec.Frequency())
	assert.Equal(t, engine.Stereo, dec.ChannelConfig())
	assert.Equal(t, engine.Int16, dec.SampleType())
	assert.Equal(t, uint64(10), dec.Length())
	start, end := dec.LoopPoints()
	assert.Zero(t, start)
	assert.Zero(t, end)

	dst := make([]byte, 4*4)
	require.Equal(t, uint(4), dec.ReadFrames(dst, 4))
	assert.Equal(t, data[:16], dst)

	require.True(t, dec.SeekFrame(8))
	assert.Equal(t, uint(2), dec.ReadFrames(dst, 4), "only two frames remain")
	assert.Equal(t, data[32:40], dst[:8])
	assert.Equal(t, uint(0), dec.ReadFrames(dst, 4))

	assert.True(t, dec.SeekFrame(10), "seeking to the end is allowed")
	assert.False(t, dec.SeekFrame(11))
}

func TestWavDecoderSampleTypes(t *testing.T) {
	tests := []struct {
		name     string
		format   uint16
		channels uint16
		bits     uint16
		want     engine.SampleType
		layout   engine.ChannelConfig
	}{
		{"unsigned 8-bit mono", 1, 1, 8, engine.UInt8, engine.Mono},
		{"float quad", 3, 4, 32, engine.Float32, engine.Quad},
		{"mulaw mono", 7, 1, 8, engine.Mulaw, engine.Mono},
		{"extensible 16-bit 5.1", 0xFFFE, 6, 16, engine.Int16, engine.X51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := int(tt.channels * tt.bits / 8)
			dec, err := NewWavDecoder(bytes.NewReader(buildWAV(testWAV{
				format: tt.format, channels: tt.channels, bits: tt.bits, rate: 8000, data: ramp(frame * 3),
			})))
			require.NoError(t, err)
			assert.Equal(t, tt.want, dec.SampleType())
			assert.Equal(t, tt.layout, dec.ChannelConfig())
			assert.Equal(t, uint64(3), dec.Length())
		})
	}
}

func TestWavDecoderRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrInvalidData},
		{"not a wav", []byte("definitely not a wav file"), ErrInvalidData},
		{"24-bit", buildWAV(testWAV{format: 1, channels: 1, bits: 24, rate: 8000, data: ramp(6)}), ErrUnsupportedFormat},
		{"three channels", buildWAV(testWAV{format: 1, channels: 3, bits: 16, rate: 8000, data: ramp(12)}), ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec, err := NewWavDecoder(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if dec != nil {
				t.Error("expected nil decoder on error")
			}
		})
	}
}

func TestWavDecoderLoopPoints(t *testing.T) {
	dec, err := NewWavDecoder(bytes.NewReader(buildWAV(testWAV{
		format: 1, channels: 1, bits: 16, rate: 22050, data: ramp(200), loop: &[2]uint32{10, 49},
	})))
	require.NoError(t, err)

	start, end := dec.LoopPoints()
	assert.Equal(t, uint64(10), start)
	assert.Equal(t, uint64(50), end, "sampler loop ends are inclusive")

	// reading starts at the first frame even though metadata follows the data
	dst := make([]byte, 4)
	require.Equal(t, uint(2), dec.ReadFrames(dst, 2))
	assert.Equal(t, []byte{0, 1, 2, 3}, dst)
}

func TestWavDecoderLoopClampedToLength(t *testing.T) {
	dec, err := NewWavDecoder(bytes.NewReader(buildWAV(testWAV{
		format: 1, channels: 1, bits: 8, rate: 8000, data: ramp(20), loop: &[2]uint32{5, 1000},
	})))
	require.NoError(t, err)

	start, end := dec.LoopPoints()
	assert.Equal(t, uint64(5), start)
	assert.Equal(t, uint64(20), end)
}

func TestWavDecoderDataChunkLargerThanStream(t *testing.T) {
	tests := []struct {
		name     string
		dataSize uint32
	}{
		{"truncated file", 1 << 30},
		{"streaming placeholder", 0xFFFFFFF0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := ramp(16) // 8 mono 16-bit frames
			dec, err := NewWavDecoder(engineStream(buildWAV(testWAV{
				format: 1, channels: 1, bits: 16, rate: 8000, data: data, dataSize: tt.dataSize,
			})))
			require.NoError(t, err)

			assert.Equal(t, uint64(8), dec.Length())
			assert.False(t, dec.SeekFrame(1000))
			assert.False(t, dec.SeekFrame(9))

			dst := make([]byte, 64)
			require.Equal(t, uint(8), dec.ReadFrames(dst, 32))
			assert.Equal(t, data, dst[:16])

			require.True(t, dec.SeekFrame(6))
			assert.Equal(t, uint(2), dec.ReadFrames(dst, 32))
			assert.Equal(t, data[12:16], dst[:4])
		})
	}
}

func TestWavDecoderOverEngineStream(t *testing.T) {
	data := ramp(64)
	s := engineStream(buildWAV(testWAV{
		format: 1, channels: 2, bits: 16, rate: 48000, data: data, loop: &[2]uint32{2, 9},
	}))
	dec, err := NewWavDecoder(s)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), dec.Length())

	start, end := dec.LoopPoints()
	assert.Equal(t, uint64(2), start)
	assert.Equal(t, uint64(10), end)

	require.True(t, dec.SeekFrame(3))
	dst := make([]byte, 8)
	require.Equal(t, uint(2), dec.ReadFrames(dst, 2))
	assert.Equal(t, data[12:20], dst)

	closer, ok := dec.(io.Closer)
	require.True(t, ok)
	assert.NoError(t, closer.Close())
}

func TestDecodersRejectGarbage(t *testing.T) {
	garbage := bytes.Repeat([]byte("garbage!"), 64)

	_, err := NewMp3Decoder(bytes.NewReader(garbage))
	assert.ErrorIs(t, err, ErrInvalidData)

	_, err = NewVorbisDecoder(bytes.NewReader(garbage))
	assert.ErrorIs(t, err, ErrInvalidData)

	_, err = NewAiffDecoder(bytes.NewReader(garbage))
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestVorbisLoop(t *testing.T) {
	tests := []struct {
		name     string
		comments []string
		frames   uint64
		want     engine.LoopPoints
	}{
		{"no comments", nil, 1000, engine.NoLoop},
		{"start and end", []string{"LOOPSTART=100", "LOOPEND=900"}, 1000, engine.LoopPoints{Start: 100, End: 900}},
		{"start and length", []string{"LOOPSTART=100", "LOOPLENGTH=200"}, 1000, engine.LoopPoints{Start: 100, End: 300}},
		{"start only loops to the end", []string{"loopstart=250"}, 1000, engine.LoopPoints{Start: 250, End: 1000}},
		{"end clamped", []string{"LOOPSTART=10", "LOOPEND=5000"}, 1000, engine.LoopPoints{Start: 10, End: 1000}},
		{"empty region", []string{"LOOPSTART=500", "LOOPEND=500"}, 1000, engine.NoLoop},
		{"unparseable", []string{"LOOPSTART=soon", "TITLE=x=y"}, 1000, engine.NoLoop},
		{"end without start", []string{"LOOPEND=10"}, 1000, engine.NoLoop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vorbisLoop(tt.comments, tt.frames))
		})
	}
}

func TestMemoryDecoder(t *testing.T) {
	m := newMemoryDecoder(8000, engine.Stereo, engine.Int16, ramp(20))
	var _ bridge.PrimitiveDecoder = m

	assert.Equal(t, uint64(5), m.Length())

	dst := make([]byte, 8)
	assert.Equal(t, uint(2), m.ReadFrames(dst, 10), "limited by destination size")
	assert.Equal(t, ramp(8), dst)

	require.True(t, m.SeekFrame(4))
	assert.Equal(t, uint(1), m.ReadFrames(dst, 2))
	assert.Equal(t, []byte{16, 17, 18, 19}, dst[:4])
	assert.Equal(t, uint(0), m.ReadFrames(dst, 2))
	assert.False(t, m.SeekFrame(6))
}

func TestAiffSamples(t *testing.T) {
	t.Run("8-bit becomes unsigned", func(t *testing.T) {
		pcm := &audio.IntBuffer{Data: []int{-128, -1, 0, 127}}
		assert.Equal(t, []byte{0, 127, 128, 255}, aiffSamples(pcm, 8, engine.UInt8))
	})

	t.Run("16-bit little endian", func(t *testing.T) {
		pcm := &audio.IntBuffer{Data: []int{1, -2, 0x1234}}
		assert.Equal(t, []byte{0x01, 0x00, 0xFE, 0xFF, 0x34, 0x12}, aiffSamples(pcm, 16, engine.Int16))
	})

	t.Run("24-bit narrowed", func(t *testing.T) {
		pcm := &audio.IntBuffer{Data: []int{0x123456, -0x800000}}
		assert.Equal(t, []byte{0x34, 0x12, 0x00, 0x80}, aiffSamples(pcm, 24, engine.Int16))
	})

	t.Run("12-bit widened", func(t *testing.T) {
		pcm := &audio.IntBuffer{Data: []int{0x7FF}}
		assert.Equal(t, []byte{0xF0, 0x7F}, aiffSamples(pcm, 12, engine.Int16))
	})
}

func TestReadFramesPartial(t *testing.T) {
	dst := make([]byte, 16)
	n := readFrames(bytes.NewReader(ramp(10)), dst, 4, 4)
	assert.Equal(t, uint(2), n, "a trailing partial frame is not counted")

	assert.Equal(t, uint(0), readFrames(bytes.NewReader(ramp(10)), dst, 4, 0))
}
