package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"quaver.click/internal/engine"
	"quaver.click/internal/tables"
)

// FileLoggingConfig represents file-based logging configuration
type FileLoggingConfig struct {
	Enabled    bool   `json:"enabled"`      // Whether file logging is enabled
	Filename   string `json:"filename"`     // Log file path (empty = XDG cache path)
	MaxSizeMB  int    `json:"max_size_mb"`  // Max file size in MB before rotation
	MaxBackups int    `json:"max_backups"`  // Max number of backup files to keep
	MaxAgeDays int    `json:"max_age_days"` // Max age in days before deletion
	Compress   bool   `json:"compress"`     // Whether to compress rotated files
}

// JournalConfig represents the event journal configuration
type JournalConfig struct {
	Enabled      bool   `json:"enabled"`       // Whether events are persisted
	DatabasePath string `json:"database_path"` // Custom database path (empty = XDG cache path)
}

// Config represents quaver configuration
type Config struct {
	LogLevel          string             `json:"log_level"`                    // Log level (debug, info, warn, error)
	SearchPaths       []string           `json:"search_paths"`                 // Directories resources are resolved against
	Extensions        []string           `json:"extensions"`                   // Extensions tried in priority order
	Substitutes       map[string]string  `json:"substitutes,omitempty"`        // Fallback names for missing resources
	DistanceModel     string             `json:"distance_model"`               // Distance model name
	ReverbPreset      string             `json:"reverb_preset"`                // Reverb preset name (empty = none)
	ContextAttributes map[string]int32   `json:"context_attributes,omitempty"` // Context creation attributes by name
	Journal           *JournalConfig     `json:"journal,omitempty"`
	FileLogging       *FileLoggingConfig `json:"file_logging,omitempty"`
}

// XDGInterface defines the interface for XDG directory operations
type XDGInterface interface {
	GetConfigPaths(filename string) []string
	GetSoundPaths() []string
	GetCachePath(purpose string) string
}

// ConfigManager handles loading, saving, and validating configuration
type ConfigManager struct {
	fs  afero.Fs
	xdg XDGInterface
}

// NewConfigManager creates a configuration manager reading through fs
func NewConfigManager(fs afero.Fs) *ConfigManager {
	slog.Debug("creating new config manager")
	return &ConfigManager{
		fs:  fs,
		xdg: NewXDGDirs(),
	}
}

// GetDefaultConfig returns the default configuration
func (cm *ConfigManager) GetDefaultConfig() *Config {
	defaultConfig := &Config{
		LogLevel:      "warn",
		SearchPaths:   []string{"."},
		Extensions:    []string{"wav", "ogg", "mp3", "aiff"},
		DistanceModel: "inverse clamped",
		ReverbPreset:  "GENERIC",
		Journal: &JournalConfig{
			Enabled:      true,
			DatabasePath: "", // Empty = XDG cache path
		},
		FileLogging: &FileLoggingConfig{
			Enabled:    false,
			Filename:   "", // Empty = XDG cache path
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 30,
			Compress:   true,
		},
	}

	slog.Debug("generated default config",
		"log_level", defaultConfig.LogLevel,
		"search_paths", defaultConfig.SearchPaths,
		"extensions", defaultConfig.Extensions,
		"journal_enabled", defaultConfig.Journal.Enabled)

	return defaultConfig
}

// LoadFromFile loads configuration from a specific file. Fields missing from
// the file keep their default values.
func (cm *ConfigManager) LoadFromFile(filePath string) (*Config, error) {
	slog.Debug("loading config from file", "file_path", filePath)

	data, err := afero.ReadFile(cm.fs, filePath)
	if err != nil {
		slog.Error("failed to read config file", "file_path", filePath, "error", err)
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := validateSchema(data); err != nil {
		slog.Error("config schema validation failed", "file_path", filePath, "error", err)
		return nil, fmt.Errorf("config schema validation failed: %w", err)
	}

	config := cm.GetDefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		slog.Error("failed to parse config JSON", "file_path", filePath, "error", err)
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cm.ValidateConfig(config); err != nil {
		return nil, err
	}

	slog.Debug("config loaded successfully",
		"file_path", filePath,
		"log_level", config.LogLevel,
		"search_paths", config.SearchPaths,
		"substitutes", len(config.Substitutes))

	return config, nil
}

// SaveToFile saves configuration to a specific file
func (cm *ConfigManager) SaveToFile(config *Config, filePath string) error {
	slog.Debug("saving config to file", "file_path", filePath)

	if err := cm.ValidateConfig(config); err != nil {
		return fmt.Errorf("cannot save invalid config: %w", err)
	}

	dir := filepath.Dir(filePath)
	if err := cm.fs.MkdirAll(dir, 0755); err != nil {
		slog.Error("failed to create config directory", "directory", dir, "error", err)
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(cm.fs, filePath, data, 0644); err != nil {
		slog.Error("failed to write config file", "file_path", filePath, "error", err)
		return fmt.Errorf("failed to write config file: %w", err)
	}

	slog.Info("config saved successfully", "file_path", filePath)
	return nil
}

// LoadConfig loads configuration using XDG path discovery, falling back to
// defaults when no config file exists
func (cm *ConfigManager) LoadConfig() (*Config, error) {
	configPaths := cm.xdg.GetConfigPaths("config.json")

	slog.Debug("searching for config file", "paths", configPaths)

	for i, configPath := range configPaths {
		if exists, err := afero.Exists(cm.fs, configPath); err == nil && exists {
			slog.Debug("found config file", "path_index", i, "path", configPath)
			return cm.LoadFromFile(configPath)
		}
	}

	slog.Debug("no config file found, using defaults")
	return cm.GetDefaultConfig(), nil
}

// UserConfigPath returns where the user's config file lives
func (cm *ConfigManager) UserConfigPath() string {
	return cm.xdg.GetConfigPaths("config.json")[0]
}

// LoadDotEnv reads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win, and a missing file is not an error.
func (cm *ConfigManager) LoadDotEnv(path string) error {
	f, err := cm.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no dotenv file", "path", path)
			return nil
		}
		return fmt.Errorf("failed to open dotenv file: %w", err)
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		slog.Warn("failed to parse dotenv file", "path", path, "error", err)
		return fmt.Errorf("failed to parse dotenv file %s: %w", path, err)
	}

	applied := 0
	for key, value := range vars {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
		applied++
	}

	slog.Debug("dotenv file loaded", "path", path, "variables", len(vars), "applied", applied)
	return nil
}

// ValidateConfig validates configuration values
func (cm *ConfigManager) ValidateConfig(config *Config) error {
	var errs []string

	if config.LogLevel != "" {
		if _, err := ParseLogLevel(config.LogLevel); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if slices.Contains(config.SearchPaths, "") {
		errs = append(errs, "search paths cannot contain empty entries")
	}
	if slices.Contains(config.Extensions, "") {
		errs = append(errs, "extensions cannot contain empty entries")
	}

	if config.DistanceModel != "" {
		if _, ok := tables.DistanceModel(config.DistanceModel); !ok {
			errs = append(errs, fmt.Sprintf("unknown distance model '%s', must be one of: %s",
				config.DistanceModel, strings.Join(tables.DistanceModelNames(), ", ")))
		}
	}

	if config.ReverbPreset != "" {
		if _, ok := tables.ReverbPreset(config.ReverbPreset); !ok {
			errs = append(errs, fmt.Sprintf("unknown reverb preset '%s'", config.ReverbPreset))
		}
	}

	for _, name := range sortedKeys(config.ContextAttributes) {
		if _, ok := tables.ContextAttribute(name); !ok {
			errs = append(errs, fmt.Sprintf("unknown context attribute '%s', must be one of: %s",
				name, strings.Join(tables.ContextAttributeNames(), ", ")))
		}
	}

	if config.FileLogging != nil {
		fileLogging := config.FileLogging
		if fileLogging.MaxSizeMB < 0 {
			errs = append(errs, fmt.Sprintf("file logging max_size_mb must be >= 0, got %d", fileLogging.MaxSizeMB))
		}
		if fileLogging.MaxBackups < 0 {
			errs = append(errs, fmt.Sprintf("file logging max_backups must be >= 0, got %d", fileLogging.MaxBackups))
		}
		if fileLogging.MaxAgeDays < 0 {
			errs = append(errs, fmt.Sprintf("file logging max_age_days must be >= 0, got %d", fileLogging.MaxAgeDays))
		}
	}

	if len(errs) > 0 {
		errMsg := strings.Join(errs, "; ")
		slog.Error("config validation failed", "errors", errMsg)
		return fmt.Errorf("config validation failed: %s", errMsg)
	}

	slog.Debug("config validation passed")
	return nil
}

// ApplyEnvironmentOverrides applies QUAVER_* environment variables to a copy of config
func (cm *ConfigManager) ApplyEnvironmentOverrides(config *Config) *Config {
	slog.Debug("applying environment variable overrides")

	result := *config

	if logLevel := os.Getenv("QUAVER_LOG_LEVEL"); logLevel != "" {
		result.LogLevel = logLevel
		slog.Debug("applied log level override from environment", "value", logLevel)
	}

	if searchPaths := os.Getenv("QUAVER_SEARCH_PATHS"); searchPaths != "" {
		result.SearchPaths = slices.DeleteFunc(filepath.SplitList(searchPaths), func(p string) bool {
			return p == ""
		})
		slog.Debug("applied search paths override from environment", "value", result.SearchPaths)
	}

	if preset := os.Getenv("QUAVER_REVERB_PRESET"); preset != "" {
		if _, ok := tables.ReverbPreset(preset); ok {
			result.ReverbPreset = preset
			slog.Debug("applied reverb preset override from environment", "value", preset)
		} else {
			slog.Warn("invalid QUAVER_REVERB_PRESET environment variable", "value", preset)
		}
	}

	if model := os.Getenv("QUAVER_DISTANCE_MODEL"); model != "" {
		if _, ok := tables.DistanceModel(model); ok {
			result.DistanceModel = model
			slog.Debug("applied distance model override from environment", "value", model)
		} else {
			slog.Warn("invalid QUAVER_DISTANCE_MODEL environment variable", "value", model)
		}
	}

	if journalStr := os.Getenv("QUAVER_JOURNAL"); journalStr != "" {
		if enabled, err := strconv.ParseBool(journalStr); err == nil {
			journal := JournalConfig{}
			if result.Journal != nil {
				journal = *result.Journal
			}
			journal.Enabled = enabled
			result.Journal = &journal
			slog.Debug("applied journal override from environment", "value", enabled)
		} else {
			slog.Warn("invalid QUAVER_JOURNAL environment variable", "value", journalStr, "error", err)
		}
	}

	return &result
}

// ParseLogLevel converts a configured level name to a slog.Level
func ParseLogLevel(logLevel string) (slog.Level, error) {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level '%s', must be one of: debug, info, warn, error", logLevel)
	}
}

// ResolveLogFilePath resolves the log file path using XDG cache directory when filename is empty
func (cm *ConfigManager) ResolveLogFilePath(filename string) string {
	if filename != "" {
		return filename
	}
	return filepath.Join(cm.xdg.GetCachePath("logs"), "quaver.log")
}

// ResolveJournalPath resolves the journal database path using XDG cache directory when path is empty
func (cm *ConfigManager) ResolveJournalPath(path string) string {
	if path != "" {
		return path
	}
	return filepath.Join(cm.xdg.GetCachePath(""), "journal.db")
}

// ResourcePaths returns the configured search paths followed by the XDG sound directories
func (cm *ConfigManager) ResourcePaths(config *Config) []string {
	paths := slices.Clone(config.SearchPaths)
	for _, p := range cm.xdg.GetSoundPaths() {
		if !slices.Contains(paths, p) {
			paths = append(paths, p)
		}
	}
	return paths
}

// Attributes builds the engine context attribute list, ordered by attribute name
func (c *Config) Attributes() ([]engine.AttributePair, error) {
	pairs := make([][2]int32, 0, len(c.ContextAttributes))
	for _, name := range sortedKeys(c.ContextAttributes) {
		key, ok := tables.ContextAttribute(name)
		if !ok {
			return nil, fmt.Errorf("unknown context attribute '%s'", name)
		}
		pairs = append(pairs, [2]int32{key, c.ContextAttributes[name]})
	}
	return tables.MakeAttributes(pairs), nil
}

// Reverb returns the configured reverb preset, or false when none is set
func (c *Config) Reverb() (engine.ReverbProperties, bool) {
	if c.ReverbPreset == "" {
		return engine.ReverbProperties{}, false
	}
	return tables.ReverbPreset(c.ReverbPreset)
}

// Distance returns the configured distance model, inverse clamped when unset
func (c *Config) Distance() (engine.DistanceModel, error) {
	if c.DistanceModel == "" {
		return engine.InverseClamped, nil
	}
	model, ok := tables.DistanceModel(c.DistanceModel)
	if !ok {
		return 0, fmt.Errorf("unknown distance model '%s'", c.DistanceModel)
	}
	return model, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
