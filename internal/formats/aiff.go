package formats

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"

	"quaver.click/internal/bridge"
	"quaver.click/internal/engine"
	"quaver.click/internal/tables"
)

// NewAiffDecoder decodes a whole AIFF file into memory. 8-bit audio is served
// as unsigned bytes, anything wider as signed 16-bit.
func NewAiffDecoder(rs io.ReadSeeker) (bridge.PrimitiveDecoder, error) {
	slog.Debug("opening AIFF decoder")

	dec := aiff.NewDecoder(fullReader{rs})
	dec.ReadInfo()
	if !dec.IsValidFile() {
		slog.Debug("invalid AIFF file format")
		return nil, fmt.Errorf("%w: not an AIFF file", ErrInvalidData)
	}
	if dec.Format() == nil {
		return nil, fmt.Errorf("%w: missing AIFF format", ErrInvalidData)
	}

	rate := uint(dec.SampleRate)
	bitDepth := int(dec.SampleBitDepth())
	channels, ok := tables.ChannelConfigForCount(int(dec.NumChans))
	if !ok {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, dec.NumChans)
	}
	if rate == 0 || bitDepth == 0 || bitDepth > 32 {
		return nil, fmt.Errorf("%w: rate %d, %d bits", ErrInvalidData, rate, bitDepth)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		slog.Debug("failed to read AIFF samples", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrReadFailure, err)
	}
	if pcm == nil || len(pcm.Data) == 0 {
		return nil, fmt.Errorf("%w: no sample data", ErrInvalidData)
	}

	typ := engine.Int16
	if bitDepth <= 8 {
		typ = engine.UInt8
	}
	data := aiffSamples(pcm, bitDepth, typ)

	m := newMemoryDecoder(rate, channels, typ, data)
	if c, ok := rs.(io.Closer); ok {
		// everything is decoded, the source is no longer needed
		c.Close()
	}

	slog.Debug("AIFF decoder ready",
		"sample_rate", rate,
		"channels", dec.NumChans,
		"bit_depth", bitDepth,
		"frames", m.Length())
	return m, nil
}

// aiffSamples converts big-endian-decoded integer samples to the engine's
// little-endian layout.
func aiffSamples(pcm *audio.IntBuffer, bitDepth int, typ engine.SampleType) []byte {
	if typ == engine.UInt8 {
		out := make([]byte, len(pcm.Data))
		for i, s := range pcm.Data {
			out[i] = byte(int8(s) ^ -128)
		}
		return out
	}

	out := make([]byte, len(pcm.Data)*2)
	shift := max(bitDepth-16, 0)
	for i, s := range pcm.Data {
		v := int16(s >> shift)
		if bitDepth < 16 {
			v = int16(s << (16 - bitDepth))
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(v))
	}
	return out
}
