// Package loader drives the adapters the way the engine does when it fills a
// buffer: open the resource, decode it and report progress to the message
// handler.
package loader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"quaver.click/internal/bridge"
	"quaver.click/internal/engine"
)

// Loader errors
var (
	ErrResourceNotFound  = errors.New("resource not found")
	ErrUnsupportedFormat = errors.New("unsupported sample format")
	ErrNoAudio           = errors.New("resource contains no audio")
)

const (
	// chunkFrames is how many frames are requested per decoder read
	chunkFrames = 4096
	// maxPreallocFrames bounds the buffer reserved before any frame is read
	maxPreallocFrames = 1 << 18
)

// DecoderOpener picks a primitive decoder for an opened resource
type DecoderOpener interface {
	Open(name string, rs io.ReadSeeker) (bridge.PrimitiveDecoder, error)
}

// Buffer is a fully decoded resource
type Buffer struct {
	Name          string
	Frequency     uint32
	ChannelConfig engine.ChannelConfig
	SampleType    engine.SampleType
	Frames        uint64
	Loop          engine.LoopPoints
	Data          []byte
}

// Duration returns the playing time of the buffer
func (b *Buffer) Duration() time.Duration {
	if b.Frequency == 0 {
		return 0
	}
	return time.Duration(b.Frames) * time.Second / time.Duration(b.Frequency)
}

// Loader loads named resources through the engine-facing capabilities
type Loader struct {
	Files    engine.FileIOFactory
	Handler  engine.MessageHandler
	Decoders DecoderOpener
}

// open asks the file factory for name, falling back once to the handler's
// substitute. It returns the name that was actually opened.
func (l *Loader) open(name string) (engine.Stream, string, error) {
	if s := l.Files.OpenFile(name); s != nil {
		return s, name, nil
	}

	substitute := l.Handler.ResourceNotFound(name)
	if substitute == "" || substitute == name {
		slog.Warn("resource not found and no substitute available", "name", name)
		return nil, "", fmt.Errorf("%s: %w", name, ErrResourceNotFound)
	}

	slog.Info("trying substitute resource", "name", name, "substitute", substitute)
	if s := l.Files.OpenFile(substitute); s != nil {
		return s, substitute, nil
	}
	slog.Warn("substitute resource not found", "name", name, "substitute", substitute)
	return nil, "", fmt.Errorf("%s (substitute %s): %w", name, substitute, ErrResourceNotFound)
}

// openPrimitive resolves name and picks a primitive decoder for it
func (l *Loader) openPrimitive(name string) (bridge.PrimitiveDecoder, string, error) {
	s, opened, err := l.open(name)
	if err != nil {
		return nil, "", err
	}

	p, err := l.Decoders.Open(opened, s)
	if err != nil {
		s.Close()
		return nil, "", fmt.Errorf("open decoder for %s: %w", opened, err)
	}
	return p, opened, nil
}

// Open resolves name and returns an engine-facing decoder over it. The
// caller closes the decoder, which releases the stream.
func (l *Loader) Open(name string) (*bridge.Decoder, string, error) {
	p, opened, err := l.openPrimitive(name)
	if err != nil {
		return nil, "", err
	}
	return bridge.NewDecoder(p), opened, nil
}

// Load decodes the whole resource, reports it through BufferLoading and
// returns the decoded buffer.
func (l *Loader) Load(name string) (*Buffer, error) {
	p, opened, err := l.openPrimitive(name)
	if err != nil {
		return nil, err
	}
	return l.LoadDecoder(opened, p)
}

// LoadDecoder fills a buffer called name from a decoder supplied by the
// caller, the way the engine loads a buffer from a decoder. The loader takes
// ownership of p and closes it when it implements io.Closer.
func (l *Loader) LoadDecoder(name string, p bridge.PrimitiveDecoder) (*Buffer, error) {
	start := time.Now()

	dec := bridge.NewDecoder(p)
	defer dec.Close()

	buf, err := readAll(dec)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	buf.Name = name

	l.Handler.BufferLoading(buf.Name, buf.ChannelConfig, buf.SampleType, buf.Frequency, buf.Data)

	slog.Info("buffer loaded",
		"name", name,
		"frequency", buf.Frequency,
		"channel_config", int32(buf.ChannelConfig),
		"sample_type", int32(buf.SampleType),
		"frames", buf.Frames,
		"bytes", len(buf.Data),
		"duration", buf.Duration(),
		"elapsed", time.Since(start))
	return buf, nil
}

func readAll(dec engine.Decoder) (*Buffer, error) {
	channels, typ := dec.ChannelConfig(), dec.SampleType()
	frameSize := engine.FrameSize(channels, typ)
	if frameSize == 0 || dec.Frequency() == 0 {
		return nil, fmt.Errorf("%w: channels 0x%x, type 0x%x, rate %d",
			ErrUnsupportedFormat, int32(channels), int32(typ), dec.Frequency())
	}

	// Length is only a hint, decoders may overstate it
	data := make([]byte, 0, engine.FramesToBytes(min(dec.Length(), maxPreallocFrames), channels, typ))
	chunk := make([]byte, chunkFrames*frameSize)
	var frames uint64
	for {
		n := dec.Read(chunk, chunkFrames)
		if n == 0 {
			break
		}
		data = append(data, chunk[:int(n)*frameSize]...)
		frames += uint64(n)
	}
	if frames == 0 {
		return nil, ErrNoAudio
	}

	loop := dec.LoopPoints()
	if loop.End > frames {
		loop.End = frames
	}
	if !loop.Valid() {
		loop = engine.NoLoop
	}

	return &Buffer{
		Frequency:     dec.Frequency(),
		ChannelConfig: channels,
		SampleType:    typ,
		Frames:        frames,
		Loop:          loop,
		Data:          data,
	}, nil
}

// Stop reports that source finished playing
func (l *Loader) Stop(source engine.Source) {
	l.Handler.SourceStopped(source)
}

// ForceStop reports that the engine stopped source before it finished
func (l *Loader) ForceStop(source engine.Source) {
	l.Handler.SourceForceStopped(source)
}

// Disconnect reports that device went away
func (l *Loader) Disconnect(device engine.Device) {
	l.Handler.DeviceDisconnected(device)
}
