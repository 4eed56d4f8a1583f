package formats

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hajimehoshi/go-mp3"

	"quaver.click/internal/bridge"
	"quaver.click/internal/engine"
)

// go-mp3 always produces interleaved signed 16-bit stereo
const mp3FrameSize = 4

// Mp3Decoder serves MPEG audio as 16-bit stereo frames
type Mp3Decoder struct {
	src    io.ReadSeeker
	dec    *mp3.Decoder
	frames uint64
	pos    uint64
}

var _ bridge.PrimitiveDecoder = (*Mp3Decoder)(nil)

// NewMp3Decoder creates an MP3 decoder over rs
func NewMp3Decoder(rs io.ReadSeeker) (bridge.PrimitiveDecoder, error) {
	slog.Debug("opening MP3 decoder")

	dec, err := mp3.NewDecoder(fullReader{rs})
	if err != nil {
		slog.Debug("failed to create MP3 decoder", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if dec.SampleRate() <= 0 {
		slog.Debug("invalid MP3 sample rate", "sample_rate", dec.SampleRate())
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidData, dec.SampleRate())
	}

	var frames uint64
	if length := dec.Length(); length > 0 {
		frames = uint64(length / mp3FrameSize)
	}

	slog.Debug("MP3 decoder ready",
		"sample_rate", dec.SampleRate(),
		"frames", frames)
	return &Mp3Decoder{src: rs, dec: dec, frames: frames}, nil
}

func (d *Mp3Decoder) Frequency() uint                     { return uint(d.dec.SampleRate()) }
func (d *Mp3Decoder) ChannelConfig() engine.ChannelConfig { return engine.Stereo }
func (d *Mp3Decoder) SampleType() engine.SampleType       { return engine.Int16 }
func (d *Mp3Decoder) Length() uint64                      { return d.frames }
func (d *Mp3Decoder) LoopPoints() (uint64, uint64)        { return 0, 0 }

func (d *Mp3Decoder) SeekFrame(pos uint64) bool {
	if d.frames > 0 && pos > d.frames {
		return false
	}
	if _, err := d.dec.Seek(int64(pos)*mp3FrameSize, io.SeekStart); err != nil {
		slog.Warn("MP3 seek failed", "frame", pos, "error", err)
		return false
	}
	d.pos = pos
	return true
}

func (d *Mp3Decoder) ReadFrames(dst []byte, count uint) uint {
	n := readFrames(d.dec, dst, count, mp3FrameSize)
	d.pos += uint64(n)
	return n
}

// Close closes the underlying stream when it supports closing
func (d *Mp3Decoder) Close() error {
	if c, ok := d.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
