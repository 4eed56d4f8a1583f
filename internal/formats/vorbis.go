package formats

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/jfreymuth/oggvorbis"

	"quaver.click/internal/bridge"
	"quaver.click/internal/engine"
	"quaver.click/internal/tables"
)

// VorbisDecoder serves Ogg Vorbis audio as 32-bit float frames
type VorbisDecoder struct {
	src       io.ReadSeeker
	r         *oggvorbis.Reader
	channels  engine.ChannelConfig
	frameSize int
	scratch   []float32
	loop      engine.LoopPoints
}

var _ bridge.PrimitiveDecoder = (*VorbisDecoder)(nil)

// NewVorbisDecoder creates an Ogg Vorbis decoder over rs. LOOPSTART with
// LOOPEND or LOOPLENGTH comments define the loop region.
func NewVorbisDecoder(rs io.ReadSeeker) (bridge.PrimitiveDecoder, error) {
	slog.Debug("opening Vorbis decoder")

	r, err := oggvorbis.NewReader(fullReader{rs})
	if err != nil {
		slog.Debug("failed to create Vorbis reader", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	channels, ok := tables.ChannelConfigForCount(r.Channels())
	if !ok {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, r.Channels())
	}
	if r.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidData, r.SampleRate())
	}

	d := &VorbisDecoder{
		src:       rs,
		r:         r,
		channels:  channels,
		frameSize: engine.FrameSize(channels, engine.Float32),
		loop:      vorbisLoop(r.CommentHeader().Comments, uint64(max(r.Length(), 0))),
	}

	slog.Debug("Vorbis decoder ready",
		"sample_rate", r.SampleRate(),
		"channels", r.Channels(),
		"frames", r.Length(),
		"loop_start", d.loop.Start,
		"loop_end", d.loop.End)
	return d, nil
}

func vorbisLoop(comments []string, frames uint64) engine.LoopPoints {
	var start, end, length uint64
	var haveStart, haveEnd, haveLength bool
	for _, c := range comments {
		key, value, ok := strings.Cut(c, "=")
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
		if err != nil {
			continue
		}
		switch strings.ToUpper(key) {
		case "LOOPSTART":
			start, haveStart = n, true
		case "LOOPEND":
			end, haveEnd = n, true
		case "LOOPLENGTH":
			length, haveLength = n, true
		}
	}
	if !haveStart {
		return engine.NoLoop
	}
	switch {
	case haveEnd:
	case haveLength:
		end = start + length
	default:
		end = frames
	}
	if frames > 0 && end > frames {
		end = frames
	}
	loop := engine.LoopPoints{Start: start, End: end}
	if !loop.Valid() {
		return engine.NoLoop
	}
	return loop
}

func (d *VorbisDecoder) Frequency() uint                     { return uint(d.r.SampleRate()) }
func (d *VorbisDecoder) ChannelConfig() engine.ChannelConfig { return d.channels }
func (d *VorbisDecoder) SampleType() engine.SampleType       { return engine.Float32 }
func (d *VorbisDecoder) LoopPoints() (uint64, uint64)        { return d.loop.Start, d.loop.End }

func (d *VorbisDecoder) Length() uint64 {
	return uint64(max(d.r.Length(), 0))
}

func (d *VorbisDecoder) SeekFrame(pos uint64) bool {
	if length := d.Length(); length > 0 && pos > length {
		return false
	}
	if err := d.r.SetPosition(int64(pos)); err != nil {
		slog.Warn("Vorbis seek failed", "frame", pos, "error", err)
		return false
	}
	return true
}

func (d *VorbisDecoder) ReadFrames(dst []byte, count uint) uint {
	count = min(count, uint(len(dst)/d.frameSize))
	want := int(count) * d.r.Channels()
	if cap(d.scratch) < want {
		d.scratch = make([]float32, want)
	}
	values := d.scratch[:want]

	got := 0
	for got < want {
		n, err := d.r.Read(values[got:])
		got += n
		if err != nil || n == 0 {
			break
		}
	}
	for i, v := range values[:got] {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
	}
	return uint(got / d.r.Channels())
}

// Close closes the underlying stream when it supports closing
func (d *VorbisDecoder) Close() error {
	if c, ok := d.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
