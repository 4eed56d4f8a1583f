// Package stream builds the engine's random access byte stream on top of a
// primitive that only knows how to reposition and read.
package stream

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"quaver.click/internal/engine"
)

// DefaultBufferSize is the size of the get area used by NewBuffer
const DefaultBufferSize = 4096

// ErrInvalidPosition is returned by Buffer.Seek when the source rejects a reposition
var ErrInvalidPosition = errors.New("invalid stream position")

// Source is the primitive byte source behind a Buffer.
//
// Seek repositions relative to whence (0 start, 1 current, 2 end) and returns
// the new absolute position, or -1 on failure. Read fills p and returns the
// number of bytes read, 0 meaning no more data.
type Source interface {
	Seek(offset int64, whence int) int64
	Read(p []byte) int
}

// Buffer adapts a Source to the engine's Stream capability.
//
// The read cursor lives in the source. Buffer only keeps a look-ahead get
// area, bytes already pulled from the source but not yet handed out.
type Buffer struct {
	src  Source
	buf  []byte
	r, w int
}

var _ engine.Stream = (*Buffer)(nil)
var _ io.ByteReader = (*Buffer)(nil)

// NewBuffer wraps src with a get area of DefaultBufferSize bytes
func NewBuffer(src Source) *Buffer {
	return NewBufferSize(src, DefaultBufferSize)
}

// NewBufferSize wraps src with a get area of size bytes
func NewBufferSize(src Source, size int) *Buffer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Buffer{src: src, buf: make([]byte, size)}
}

// Source returns the wrapped primitive
func (b *Buffer) Source() Source {
	return b.src
}

// Buffered returns the number of bytes in the get area not yet consumed
func (b *Buffer) Buffered() int {
	return b.w - b.r
}

func (b *Buffer) discard() {
	b.r, b.w = 0, 0
}

func (b *Buffer) fill() bool {
	n := b.src.Read(b.buf)
	if n <= 0 {
		return false
	}
	if n > len(b.buf) {
		n = len(b.buf)
	}
	b.r, b.w = 0, n
	return true
}

func whenceFor(dir engine.SeekDir) (int, bool) {
	switch dir {
	case engine.SeekBeg:
		return io.SeekStart, true
	case engine.SeekCur:
		return io.SeekCurrent, true
	case engine.SeekEnd:
		return io.SeekEnd, true
	default:
		return 0, false
	}
}

// SeekOff repositions the source relative to dir and returns its result
// unchanged. An unknown dir yields engine.InvalidPos without touching the
// source. The get area is dropped after any successful reposition.
func (b *Buffer) SeekOff(off int64, dir engine.SeekDir) int64 {
	whence, ok := whenceFor(dir)
	if !ok {
		return engine.InvalidPos
	}
	pos := b.src.Seek(off, whence)
	if pos != engine.InvalidPos {
		b.discard()
	}
	return pos
}

// SeekPos repositions the source to an absolute offset
func (b *Buffer) SeekPos(pos int64) int64 {
	return b.SeekOff(pos, engine.SeekBeg)
}

// Sync hands unconsumed get area bytes back to the source by seeking backward
// over them. It always reports success.
func (b *Buffer) Sync() int {
	pending := b.Buffered()
	if pending == 0 {
		return 0
	}
	if pos := b.src.Seek(-int64(pending), io.SeekCurrent); pos == engine.InvalidPos {
		slog.Warn("stream sync failed, keeping buffered bytes", "pending_bytes", pending)
		return 0
	}
	b.discard()
	return 0
}

// ShowManyC reports how many bytes can be read without blocking on the
// source, or -1 when the stream is exhausted.
func (b *Buffer) ShowManyC() int64 {
	if b.Underflow() == engine.EOF {
		return -1
	}
	return int64(b.Buffered())
}

// Underflow returns the next byte without consuming it, refilling the get
// area from the source when it is empty.
func (b *Buffer) Underflow() int {
	if b.r == b.w && !b.fill() {
		return engine.EOF
	}
	return int(b.buf[b.r])
}

// Read implements io.Reader
func (b *Buffer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if b.r == b.w {
		// large reads bypass the get area
		if len(p) >= len(b.buf) {
			n := b.src.Read(p)
			if n <= 0 {
				return 0, io.EOF
			}
			return min(n, len(p)), nil
		}
		if !b.fill() {
			return 0, io.EOF
		}
	}
	n := copy(p, b.buf[b.r:b.w])
	b.r += n
	return n, nil
}

// ReadByte implements io.ByteReader
func (b *Buffer) ReadByte() (byte, error) {
	c := b.Underflow()
	if c == engine.EOF {
		return 0, io.EOF
	}
	b.r++
	return byte(c), nil
}

// Seek implements io.Seeker. Unconsumed bytes are synced back to the source
// first so that relative offsets are measured from the reader's position.
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var dir engine.SeekDir
	switch whence {
	case io.SeekStart:
		dir = engine.SeekBeg
	case io.SeekCurrent:
		dir = engine.SeekCur
	case io.SeekEnd:
		dir = engine.SeekEnd
	default:
		return 0, fmt.Errorf("seek whence %d: %w", whence, ErrInvalidPosition)
	}

	b.Sync()
	if dir == engine.SeekCur && b.Buffered() > 0 {
		// sync could not rewind the source, account for the get area instead
		offset -= int64(b.Buffered())
	}
	pos := b.SeekOff(offset, dir)
	if pos == engine.InvalidPos {
		return 0, fmt.Errorf("seek to %d from %d: %w", offset, whence, ErrInvalidPosition)
	}
	return pos, nil
}

// Close closes the source when it supports closing
func (b *Buffer) Close() error {
	b.discard()
	if c, ok := b.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
