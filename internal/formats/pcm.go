package formats

import (
	"errors"
	"io"

	"quaver.click/internal/engine"
)

// fullReader completes short reads from an underlying reader. The decoder
// libraries parse headers with single Read calls and expect them to be
// satisfied in full, which a buffered engine stream does not promise.
type fullReader struct {
	io.ReadSeeker
}

func (f fullReader) Read(p []byte) (int, error) {
	n, err := io.ReadFull(f.ReadSeeker, p)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return n, nil
	}
	return n, err
}

// readFrames fills up to count whole frames of dst from r and returns how
// many frames were completed.
func readFrames(r io.Reader, dst []byte, count uint, frameSize int) uint {
	if frameSize <= 0 {
		return 0
	}
	count = min(count, uint(len(dst)/frameSize))
	if count == 0 {
		return 0
	}
	n, _ := io.ReadFull(r, dst[:count*uint(frameSize)])
	return uint(n / frameSize)
}

// memoryDecoder serves fully decoded interleaved PCM held in memory
type memoryDecoder struct {
	rate      uint
	channels  engine.ChannelConfig
	typ       engine.SampleType
	data      []byte
	frameSize int
	pos       uint64
	loop      engine.LoopPoints
}

func newMemoryDecoder(rate uint, channels engine.ChannelConfig, typ engine.SampleType, data []byte) *memoryDecoder {
	return &memoryDecoder{
		rate:      rate,
		channels:  channels,
		typ:       typ,
		data:      data,
		frameSize: engine.FrameSize(channels, typ),
	}
}

func (m *memoryDecoder) Frequency() uint                     { return m.rate }
func (m *memoryDecoder) ChannelConfig() engine.ChannelConfig { return m.channels }
func (m *memoryDecoder) SampleType() engine.SampleType       { return m.typ }
func (m *memoryDecoder) LoopPoints() (uint64, uint64)        { return m.loop.Start, m.loop.End }

func (m *memoryDecoder) Length() uint64 {
	return uint64(len(m.data) / m.frameSize)
}

func (m *memoryDecoder) SeekFrame(pos uint64) bool {
	if pos > m.Length() {
		return false
	}
	m.pos = pos
	return true
}

func (m *memoryDecoder) ReadFrames(dst []byte, count uint) uint {
	remaining := m.Length() - m.pos
	count = min(count, uint(remaining), uint(len(dst)/m.frameSize))
	start := m.pos * uint64(m.frameSize)
	n := copy(dst, m.data[start:start+uint64(count)*uint64(m.frameSize)])
	m.pos += uint64(n / m.frameSize)
	return uint(n / m.frameSize)
}
