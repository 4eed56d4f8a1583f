// Package tonegen generates test tones as a primitive decoder, so a buffer
// can be filled from a decoder that never touches a file.
package tonegen

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"quaver.click/internal/bridge"
	"quaver.click/internal/engine"
)

// DefaultRate is the sample rate used when none is given
const DefaultRate = 44100

var ErrUnknownWaveform = errors.New("unknown waveform")

// Waveform maps a phase in radians to a sample
type Waveform func(phase float64) float64

var waveforms = map[string]Waveform{
	"sine":     math.Sin,
	"square":   square,
	"sawtooth": sawtooth,
	"triangle": triangle,
	// impulse and white-noise are position based and handled by the generator
	"impulse":     nil,
	"white-noise": nil,
}

// Waveforms returns the waveform names in sorted order
func Waveforms() []string {
	names := make([]string, 0, len(waveforms))
	for name := range waveforms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// cycle returns how far phase is into its period, in [0, 1)
func cycle(phase float64) float64 {
	c := math.Mod(phase, 2*math.Pi) / (2 * math.Pi)
	if c < 0 {
		c++
	}
	return c
}

func square(phase float64) float64 {
	if cycle(phase) < 0.5 {
		return 1
	}
	return -1
}

// sawtooth rises from -1 to 1 over each period
func sawtooth(phase float64) float64 {
	return 2*cycle(phase) - 1
}

// triangle rises from -1 to 1 over the first half period and falls back over the second
func triangle(phase float64) float64 {
	c := cycle(phase)
	if c < 0.5 {
		return 4*c - 1
	}
	return 3 - 4*c
}

// Generator is a mono 32-bit float tone. It cannot seek and has no loop.
type Generator struct {
	name      string
	wave      Waveform
	frequency float64
	rate      uint
	frames    uint64
	pos       uint64
	noise     *rand.Rand
}

var _ bridge.PrimitiveDecoder = (*Generator)(nil)

// New creates a generator for waveform at frequency hertz lasting duration.
// A zero rate means DefaultRate.
func New(waveform string, frequency float64, duration time.Duration, rate uint) (*Generator, error) {
	name := strings.ToLower(waveform)
	wave, ok := waveforms[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, must be one of: %s", ErrUnknownWaveform, waveform, strings.Join(Waveforms(), ", "))
	}
	if frequency <= 0 || math.IsInf(frequency, 0) || math.IsNaN(frequency) {
		return nil, fmt.Errorf("invalid tone frequency %v", frequency)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("invalid tone duration %v", duration)
	}
	if rate == 0 {
		rate = DefaultRate
	}

	g := &Generator{
		name:      name,
		wave:      wave,
		frequency: frequency,
		rate:      rate,
		frames:    uint64(duration.Seconds() * float64(rate)),
		noise:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	slog.Debug("tone generator created",
		"waveform", name,
		"frequency", frequency,
		"sample_rate", rate,
		"frames", g.frames)
	return g, nil
}

// Seed makes white noise reproducible
func (g *Generator) Seed(seed uint64) {
	g.noise = rand.New(rand.NewPCG(seed, 0))
}

func (g *Generator) Frequency() uint                     { return g.rate }
func (g *Generator) ChannelConfig() engine.ChannelConfig { return engine.Mono }
func (g *Generator) SampleType() engine.SampleType       { return engine.Float32 }
func (g *Generator) Length() uint64                      { return g.frames }
func (g *Generator) SeekFrame(uint64) bool               { return false }
func (g *Generator) LoopPoints() (uint64, uint64)        { return engine.NoLoop.Start, engine.NoLoop.End }

func (g *Generator) sample(frame uint64) float64 {
	switch g.name {
	case "impulse":
		if frame == 0 {
			return 1
		}
		return 0
	case "white-noise":
		return g.noise.Float64()
	}
	return g.wave(float64(frame) / float64(g.rate) * 2 * math.Pi * g.frequency)
}

func (g *Generator) ReadFrames(dst []byte, count uint) uint {
	n := min(uint64(count), uint64(len(dst)/4), g.frames-g.pos)
	for i := range n {
		v := float32(g.sample(g.pos + i))
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
	}
	g.pos += n
	return uint(n)
}
