package bridge

import (
	"fmt"
	"io"
	"log/slog"

	"quaver.click/internal/engine"
)

// Decoder presents a PrimitiveDecoder to the engine
type Decoder struct {
	p PrimitiveDecoder
}

var _ engine.Decoder = (*Decoder)(nil)

// NewDecoder wraps p. The decoder takes ownership of p.
func NewDecoder(p PrimitiveDecoder) *Decoder {
	slog.Debug("decoder adapter created", "primitive", fmt.Sprintf("%T", p))
	return &Decoder{p: p}
}

// Primitive returns the wrapped primitive decoder
func (d *Decoder) Primitive() PrimitiveDecoder {
	return d.p
}

func (d *Decoder) Frequency() uint32 {
	return uint32(d.p.Frequency())
}

func (d *Decoder) ChannelConfig() engine.ChannelConfig {
	return d.p.ChannelConfig()
}

func (d *Decoder) SampleType() engine.SampleType {
	return d.p.SampleType()
}

func (d *Decoder) Length() uint64 {
	return d.p.Length()
}

func (d *Decoder) Seek(pos uint64) bool {
	return d.p.SeekFrame(pos)
}

// LoopPoints forwards the primitive's pair unchanged; engine.NoLoop means no loop
func (d *Decoder) LoopPoints() engine.LoopPoints {
	start, end := d.p.LoopPoints()
	return engine.LoopPoints{Start: start, End: end}
}

// Read never reports more frames than were requested
func (d *Decoder) Read(dst []byte, count uint32) uint32 {
	n := d.p.ReadFrames(dst, uint(count))
	if n > uint(count) {
		n = uint(count)
	}
	return uint32(n)
}

// Close releases the primitive when it holds resources
func (d *Decoder) Close() error {
	if c, ok := d.p.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
