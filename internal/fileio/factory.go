// Package fileio resolves resource names against search paths on an afero
// filesystem and opens them as stream sources.
package fileio

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"quaver.click/internal/bridge"
	"quaver.click/internal/stream"
)

// ErrNotFound is returned when no candidate path exists for a name
var ErrNotFound = errors.New("resource not found")

// Factory opens resources by name. A name is tried as given and then with
// each extension in priority order, in every search path.
type Factory struct {
	fs          afero.Fs
	searchPaths []string
	extensions  []string
}

var _ bridge.PrimitiveFileFactory = (*Factory)(nil)

// New creates a factory. An empty searchPaths means the current directory.
func New(fs afero.Fs, searchPaths, extensions []string) *Factory {
	if len(searchPaths) == 0 {
		searchPaths = []string{"."}
	}
	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		// Ensure extension starts with dot
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}

	slog.Debug("creating file factory",
		"search_paths", searchPaths,
		"extensions", exts)

	return &Factory{fs: fs, searchPaths: searchPaths, extensions: exts}
}

// SearchPaths returns the directories names are resolved against
func (f *Factory) SearchPaths() []string {
	return f.searchPaths
}

// candidates lists the paths tried for name in priority order
func (f *Factory) candidates(name string) []string {
	bases := []string{name}
	if !filepath.IsAbs(name) {
		bases = bases[:0]
		for _, dir := range f.searchPaths {
			bases = append(bases, filepath.Join(dir, name))
		}
	}

	paths := make([]string, 0, len(bases)*(len(f.extensions)+1))
	for _, base := range bases {
		paths = append(paths, base)
		for _, ext := range f.extensions {
			paths = append(paths, base+ext)
		}
	}
	return paths
}

// Resolve returns the first existing regular file for name
func (f *Factory) Resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("resolve: empty name: %w", ErrNotFound)
	}

	for i, candidate := range f.candidates(name) {
		info, err := f.fs.Stat(candidate)
		if err != nil {
			slog.Debug("candidate not found", "candidate", candidate, "error", err)
			continue
		}
		if info.IsDir() {
			slog.Debug("candidate is a directory", "candidate", candidate)
			continue
		}
		slog.Debug("resource resolved",
			"name", name,
			"resolved_path", candidate,
			"candidate_index", i)
		return candidate, nil
	}

	slog.Debug("resource resolution failed",
		"name", name,
		"search_paths", f.searchPaths,
		"extensions", f.extensions)
	return "", fmt.Errorf("resolve %s: %w", name, ErrNotFound)
}

// OpenFile implements bridge.PrimitiveFileFactory. It returns nil when name
// cannot be resolved or opened.
func (f *Factory) OpenFile(name string) stream.Source {
	path, err := f.Resolve(name)
	if err != nil {
		return nil
	}
	file, err := f.fs.Open(path)
	if err != nil {
		slog.Warn("failed to open resolved resource", "name", name, "path", path, "error", err)
		return nil
	}
	slog.Info("resource opened", "name", name, "path", path)
	return stream.NewReaderSource(path, file)
}
