package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/shelf/internal/config/colors"
	"github.com/thenoetrevino/shelf/internal/models"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// ThemeFileEnv names a YAML file whose theme section overrides the config
const ThemeFileEnv = "SHELF_THEME_FILE"

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig      `yaml:"storage"`
	Board       BoardConfig        `yaml:"board"`
	LogLevel    string             `yaml:"log_level"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// StorageConfig selects where the board is persisted
type StorageConfig struct {
	// Backend is one of sqlite, file or memory
	Backend string `yaml:"backend"`
	// Path is the database file (sqlite) or directory (file).
	// Empty means the default location under ~/.shelf.
	Path string `yaml:"path"`
}

// BoardConfig holds board behaviour settings
type BoardConfig struct {
	// ColumnDelete is orphan or cascade
	ColumnDelete string `yaml:"column_delete"`
	// DefaultScore prefills the score field of a new game.
	// A pointer so that an explicit 0 survives applyDefaults.
	DefaultScore *float64 `yaml:"default_score"`
}

// Score returns the configured default score
func (b BoardConfig) Score() float64 {
	if b.DefaultScore == nil {
		return models.DefaultScore
	}
	return *b.DefaultScore
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile merges the theme from SHELF_THEME_FILE into config
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("theme file unreadable", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}
	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("theme file invalid", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path. A missing file yields the
// defaults; a malformed one is an error.
func LoadFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	loadThemeFile(&config)
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects settings no component can honour
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	switch c.Board.ColumnDelete {
	case "orphan", "cascade":
	default:
		return fmt.Errorf("unknown column_delete policy %q", c.Board.ColumnDelete)
	}
	if s := c.Board.Score(); s < models.MinScore || s > models.MaxScore {
		return fmt.Errorf("default_score %v outside %v-%v", s, models.MinScore, models.MaxScore)
	}
	return nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "shelf", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "shelf", "config.yaml"), nil
}

// SlogLevel maps log_level to a slog.Level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
	if c.Board.ColumnDelete == "" {
		c.Board.ColumnDelete = "orphan"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
