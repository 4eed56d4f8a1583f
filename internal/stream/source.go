package stream

import (
	"errors"
	"io"
	"log/slog"
)

// ReaderSource exposes an io.ReadSeeker as a Source, folding errors into the
// source's in-band results.
type ReaderSource struct {
	name string
	rs   io.ReadSeeker
}

// NewReaderSource wraps rs. name is only used in log output.
func NewReaderSource(name string, rs io.ReadSeeker) *ReaderSource {
	return &ReaderSource{name: name, rs: rs}
}

// Seek implements Source
func (s *ReaderSource) Seek(offset int64, whence int) int64 {
	pos, err := s.rs.Seek(offset, whence)
	if err != nil {
		slog.Debug("source seek failed",
			"name", s.name,
			"offset", offset,
			"whence", whence,
			"error", err)
		return -1
	}
	return pos
}

// Read implements Source. Short reads are completed so that 0 only ever
// means the end of the data.
func (s *ReaderSource) Read(p []byte) int {
	n, err := io.ReadFull(s.rs, p)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		slog.Warn("source read failed", "name", s.name, "error", err)
	}
	return n
}

// Close closes the underlying reader when it supports closing
func (s *ReaderSource) Close() error {
	if c, ok := s.rs.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
