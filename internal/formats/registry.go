// Package formats provides primitive decoders built on third-party audio
// libraries and a registry that picks one for a given stream.
package formats

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"

	"quaver.click/internal/bridge"
)

// Common decoder errors
var (
	ErrInvalidData       = errors.New("invalid audio data")
	ErrReadFailure       = errors.New("failed to read audio data")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrDuplicateFormat   = errors.New("format already registered")
)

// sniffSize is how many leading bytes are handed to magic detection
const sniffSize = 512

// Factory creates a primitive decoder reading from rs, which is positioned
// at the start of the resource.
type Factory func(rs io.ReadSeeker) (bridge.PrimitiveDecoder, error)

// Format describes one decodable container
type Format struct {
	Name string
	// Extensions are matched case-insensitively, without the leading dot
	Extensions []string
	// MimeHints are substrings of detected MIME types that identify the format
	MimeHints []string
	Factory   Factory
}

func (f Format) matchesExtension(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return ext != "" && slices.Contains(f.Extensions, ext)
}

func (f Format) matchesMime(mime string) bool {
	for _, hint := range f.MimeHints {
		if strings.Contains(mime, hint) {
			return true
		}
	}
	return false
}

// Registry holds named decoder factories in priority order
type Registry struct {
	mu      sync.RWMutex
	formats []Format
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	slog.Debug("creating new decoder registry")
	return &Registry{}
}

// NewDefaultRegistry creates a registry with the WAV, AIFF, Vorbis and MP3 decoders
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, f := range DefaultFormats() {
		// names are unique by construction
		_ = r.Register(f)
	}
	slog.Debug("default decoder registry initialized", "formats", r.Formats())
	return r
}

// DefaultFormats lists the bundled decoders in their default priority
func DefaultFormats() []Format {
	return []Format{
		{
			Name:       "WAV",
			Extensions: []string{"wav", "wave"},
			MimeHints:  []string{"wav", "wave"},
			Factory:    NewWavDecoder,
		},
		{
			Name:       "AIFF",
			Extensions: []string{"aiff", "aif"},
			MimeHints:  []string{"aiff"},
			Factory:    NewAiffDecoder,
		},
		{
			Name:       "Vorbis",
			Extensions: []string{"ogg", "oga"},
			MimeHints:  []string{"ogg"},
			Factory:    NewVorbisDecoder,
		},
		{
			// last, since MPEG sync words are easy to find in arbitrary data
			Name:       "MP3",
			Extensions: []string{"mp3", "mpeg"},
			MimeHints:  []string{"mpeg", "mp3"},
			Factory:    NewMp3Decoder,
		},
	}
}

// Register appends a format at the lowest priority
func (r *Registry) Register(f Format) error {
	if f.Name == "" || f.Factory == nil {
		return fmt.Errorf("register format %q: name and factory are required", f.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexLocked(f.Name) >= 0 {
		return fmt.Errorf("register format %q: %w", f.Name, ErrDuplicateFormat)
	}
	f.Extensions = slices.Clone(f.Extensions)
	for i, ext := range f.Extensions {
		f.Extensions[i] = strings.ToLower(strings.TrimPrefix(ext, "."))
	}
	r.formats = append(r.formats, f)

	slog.Debug("decoder registered",
		"format", f.Name,
		"total_formats", len(r.formats))
	return nil
}

// Unregister removes a format by name, reporting whether it was present
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(name)
	if i < 0 {
		return false
	}
	r.formats = slices.Delete(r.formats, i, i+1)
	slog.Debug("decoder unregistered", "format", name)
	return true
}

func (r *Registry) indexLocked(name string) int {
	return slices.IndexFunc(r.formats, func(f Format) bool {
		return strings.EqualFold(f.Name, name)
	})
}

// Formats returns the registered format names in priority order
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.formats))
	for i, f := range r.formats {
		names[i] = f.Name
	}
	return names
}

// Extensions returns every registered extension in priority order
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var exts []string
	for _, f := range r.formats {
		for _, ext := range f.Extensions {
			if !slices.Contains(exts, ext) {
				exts = append(exts, ext)
			}
		}
	}
	return exts
}

// candidates orders formats for a resource: magic byte matches first, then
// extension matches, then everything else in registration order.
func (r *Registry) candidates(name, mime string) []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ordered := make([]Format, 0, len(r.formats))
	var byExt, rest []Format
	for _, f := range r.formats {
		switch {
		case mime != "" && f.matchesMime(mime):
			ordered = append(ordered, f)
		case f.matchesExtension(name):
			byExt = append(byExt, f)
		default:
			rest = append(rest, f)
		}
	}
	ordered = append(ordered, byExt...)
	return append(ordered, rest...)
}

// Detect sniffs the leading bytes of rs and returns the MIME type found.
// rs is rewound to its start afterwards.
func Detect(rs io.ReadSeeker) (string, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind for detection: %w", err)
	}
	header := make([]byte, sniffSize)
	n, err := io.ReadFull(rs, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("read header: %w", err)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind after detection: %w", err)
	}
	if n == 0 {
		return "", nil
	}
	return strings.ToLower(mimetype.Detect(header[:n]).String()), nil
}

// Open picks a decoder for the resource called name. Candidates are tried in
// order on a rewound stream and the first one that accepts it wins.
func (r *Registry) Open(name string, rs io.ReadSeeker) (bridge.PrimitiveDecoder, error) {
	dec, _, err := r.OpenFormat(name, rs)
	return dec, err
}

// OpenFormat is Open that also reports the name of the accepting format
func (r *Registry) OpenFormat(name string, rs io.ReadSeeker) (bridge.PrimitiveDecoder, string, error) {
	mime, err := Detect(rs)
	if err != nil {
		slog.Warn("magic byte detection failed, using extension", "name", name, "error", err)
	}
	slog.Debug("magic byte detection result", "name", name, "detected_mime", mime)

	var errs []error
	for _, f := range r.candidates(name, mime) {
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return nil, "", fmt.Errorf("rewind %s: %w", name, err)
		}
		dec, err := f.Factory(rs)
		if err != nil {
			slog.Debug("decoder rejected resource", "name", name, "format", f.Name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
			continue
		}
		slog.Info("decoder selected",
			"name", name,
			"format", f.Name,
			"mime_type", mime)
		return dec, f.Name, nil
	}

	slog.Warn("no decoder accepted resource", "name", name, "mime_type", mime)
	return nil, "", fmt.Errorf("%s: %w", name, errors.Join(append([]error{ErrUnsupportedFormat}, errs...)...))
}
