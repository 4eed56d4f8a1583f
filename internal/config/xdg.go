package config

import (
	"log/slog"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDir = "quaver"

// XDGDirs provides XDG Base Directory compliant paths for quaver
type XDGDirs struct{}

// NewXDGDirs creates a new XDG directory manager
func NewXDGDirs() *XDGDirs {
	slog.Debug("creating new XDG directory manager")
	return &XDGDirs{}
}

// GetConfigPaths returns prioritized paths where config files can be found
// Returns paths in search order: user config dir, then system config dirs
func (x *XDGDirs) GetConfigPaths(filename string) []string {
	var paths []string

	userConfigPath := filepath.Join(xdg.ConfigHome, appDir, filename)
	paths = append(paths, userConfigPath)

	for _, configDir := range xdg.ConfigDirs {
		paths = append(paths, filepath.Join(configDir, appDir, filename))
	}

	slog.Debug("generated config paths",
		"filename", filename,
		"total_paths", len(paths),
		"user_path", userConfigPath,
		"system_paths", len(xdg.ConfigDirs))

	return paths
}

// GetSoundPaths returns the data directories searched for sounds after the
// configured search paths: user data dir, then system data dirs
func (x *XDGDirs) GetSoundPaths() []string {
	paths := []string{filepath.Join(xdg.DataHome, appDir, "sounds")}
	for _, dataDir := range xdg.DataDirs {
		paths = append(paths, filepath.Join(dataDir, appDir, "sounds"))
	}
	return paths
}

// GetCachePath returns the cache directory path for a specific purpose
func (x *XDGDirs) GetCachePath(purpose string) string {
	cachePath := filepath.Join(xdg.CacheHome, appDir, purpose)

	slog.Debug("generated cache path",
		"purpose", purpose,
		"cache_path", cachePath)

	return cachePath
}
