package formats

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-audio/wav"

	"quaver.click/internal/bridge"
	"quaver.click/internal/engine"
	"quaver.click/internal/tables"
)

const (
	wavFormatPCM        = 1
	wavFormatIEEEFloat  = 3
	wavFormatMulaw      = 7
	wavFormatExtensible = 0xFFFE
)

// WavDecoder streams PCM frames straight out of a RIFF/WAVE container
type WavDecoder struct {
	src       io.ReadSeeker
	r         io.ReadSeeker
	rate      uint
	channels  engine.ChannelConfig
	typ       engine.SampleType
	frameSize int
	dataStart int64
	frames    uint64
	pos       uint64
	loop      engine.LoopPoints
}

var _ bridge.PrimitiveDecoder = (*WavDecoder)(nil)

// NewWavDecoder parses the container headers of rs and positions it at the
// first sample frame. A single smpl loop, if present, becomes the loop region.
func NewWavDecoder(rs io.ReadSeeker) (bridge.PrimitiveDecoder, error) {
	slog.Debug("opening WAV decoder")
	r := fullReader{rs}

	meta := wav.NewDecoder(r)
	meta.ReadMetadata()
	if err := meta.Err(); err != nil {
		slog.Debug("failed to parse WAV container", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	loop := wavLoop(meta)

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind WAV stream: %w", err)
	}
	dec := wav.NewDecoder(r)
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if err := dec.Err(); err != nil || dec.PCMChunk == nil {
		return nil, fmt.Errorf("%w: no PCM data chunk", ErrInvalidData)
	}

	typ, err := wavSampleType(dec.WavAudioFormat, dec.BitDepth)
	if err != nil {
		slog.Debug("unsupported WAV encoding",
			"audio_format", dec.WavAudioFormat,
			"bit_depth", dec.BitDepth)
		return nil, err
	}
	channels, ok := tables.ChannelConfigForCount(int(dec.NumChans))
	if !ok {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, dec.NumChans)
	}
	if dec.SampleRate == 0 {
		return nil, fmt.Errorf("%w: zero sample rate", ErrInvalidData)
	}

	dataStart, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("locate WAV data: %w", err)
	}

	frameSize := engine.FrameSize(channels, typ)
	frames, err := wavFrames(r, dataStart, dec.PCMSize, frameSize)
	if err != nil {
		return nil, err
	}
	d := &WavDecoder{
		src:       rs,
		r:         r,
		rate:      uint(dec.SampleRate),
		channels:  channels,
		typ:       typ,
		frameSize: frameSize,
		dataStart: dataStart,
		frames:    frames,
	}
	if loop.End > d.frames {
		loop.End = d.frames
	}
	if loop.Valid() {
		d.loop = loop
	}

	slog.Debug("WAV decoder ready",
		"sample_rate", d.rate,
		"channels", dec.NumChans,
		"bit_depth", dec.BitDepth,
		"frames", d.frames,
		"loop_start", d.loop.Start,
		"loop_end", d.loop.End)
	return d, nil
}

// wavFrames counts the frames the data chunk really holds. Streamed and
// truncated files carry placeholder chunk sizes, so the header is trusted
// only up to the end of the stream. r is left at dataStart.
func wavFrames(r io.Seeker, dataStart int64, pcmSize, frameSize int) (uint64, error) {
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("locate WAV end: %w", err)
	}
	if _, err := r.Seek(dataStart, io.SeekStart); err != nil {
		return 0, fmt.Errorf("return to WAV data: %w", err)
	}

	frames := uint64(max(pcmSize, 0) / frameSize)
	if avail := uint64(max(end-dataStart, 0)) / uint64(frameSize); avail < frames {
		slog.Debug("WAV data chunk larger than the stream",
			"header_frames", frames,
			"available_frames", avail)
		frames = avail
	}
	return frames, nil
}

func wavSampleType(format, bitDepth uint16) (engine.SampleType, error) {
	switch {
	case (format == wavFormatPCM || format == wavFormatExtensible) && bitDepth == 8:
		return engine.UInt8, nil
	case (format == wavFormatPCM || format == wavFormatExtensible) && bitDepth == 16:
		return engine.Int16, nil
	case format == wavFormatIEEEFloat && bitDepth == 32:
		return engine.Float32, nil
	case format == wavFormatMulaw && bitDepth == 8:
		return engine.Mulaw, nil
	default:
		return 0, fmt.Errorf("%w: WAV format %d with %d bits", ErrUnsupportedFormat, format, bitDepth)
	}
}

// wavLoop reads the first sampler loop. Its end is inclusive in the file.
func wavLoop(d *wav.Decoder) engine.LoopPoints {
	if d.Metadata == nil || d.Metadata.SamplerInfo == nil || len(d.Metadata.SamplerInfo.Loops) == 0 {
		return engine.NoLoop
	}
	l := d.Metadata.SamplerInfo.Loops[0]
	return engine.LoopPoints{Start: uint64(l.Start), End: uint64(l.End) + 1}
}

func (d *WavDecoder) Frequency() uint                     { return d.rate }
func (d *WavDecoder) ChannelConfig() engine.ChannelConfig { return d.channels }
func (d *WavDecoder) SampleType() engine.SampleType       { return d.typ }
func (d *WavDecoder) Length() uint64                      { return d.frames }
func (d *WavDecoder) LoopPoints() (uint64, uint64)        { return d.loop.Start, d.loop.End }

func (d *WavDecoder) SeekFrame(pos uint64) bool {
	if pos > d.frames {
		return false
	}
	if _, err := d.r.Seek(d.dataStart+int64(pos)*int64(d.frameSize), io.SeekStart); err != nil {
		slog.Warn("WAV seek failed", "frame", pos, "error", err)
		return false
	}
	d.pos = pos
	return true
}

func (d *WavDecoder) ReadFrames(dst []byte, count uint) uint {
	count = min(count, uint(d.frames-d.pos))
	n := readFrames(d.r, dst, count, d.frameSize)
	d.pos += uint64(n)
	return n
}

// Close closes the underlying stream when it supports closing
func (d *WavDecoder) Close() error {
	if c, ok := d.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
