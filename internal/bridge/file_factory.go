package bridge

import (
	"log/slog"

	"quaver.click/internal/engine"
	"quaver.click/internal/stream"
)

// FileIOFactory presents a PrimitiveFileFactory to the engine
type FileIOFactory struct {
	files PrimitiveFileFactory
}

var _ engine.FileIOFactory = (*FileIOFactory)(nil)

// NewFileIOFactory wraps files
func NewFileIOFactory(files PrimitiveFileFactory) *FileIOFactory {
	return &FileIOFactory{files: files}
}

// OpenFile returns nil when the primitive cannot open name, otherwise a
// buffered stream owning the primitive's source.
func (f *FileIOFactory) OpenFile(name string) engine.Stream {
	src := f.files.OpenFile(name)
	if src == nil {
		slog.Debug("primitive file factory returned no source", "name", name)
		return nil
	}
	return stream.NewBuffer(src)
}
