// Package config loads and saves the YAML configuration file
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/todo/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvDatabasePath = "TODO_DB_PATH"
	EnvThemeFile    = "TODO_THEME_FILE"
)

// ColorScheme is re-exported so callers only import this package
type ColorScheme = colors.ColorScheme

// Config represents the application configuration
type Config struct {
	// DatabasePath is the SQLite file holding the tasks table, or ":memory:"
	DatabasePath string `yaml:"database_path" validate:"required"`

	// LogFile receives structured logs; rotated when it grows too large
	LogFile    string `yaml:"log_file" validate:"required"`
	LogLevel   string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogMaxSize int    `yaml:"log_max_size_mb" validate:"gte=0"`

	ColorScheme ColorScheme `yaml:"theme"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when no file exists
func Default() (*Config, error) {
	dataDir, err := DataDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabasePath: filepath.Join(dataDir, "tasks.db"),
		LogFile:      filepath.Join(dataDir, "todo.log"),
		LogLevel:     "info",
		LogMaxSize:   10,
		ColorScheme:  DefaultColorScheme(),
	}
	return cfg, nil
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return *colors.Monochrome()
}

// DataDir returns ~/.todo, where the store and log file live by default
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".todo"), nil
}

// Load reads the config at path, or at the default location when path is
// empty. A missing file yields the default config.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			// Return default config if we can't determine config path
			return finish(nil)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return finish(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var fromFile Config
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return finish(&fromFile)
}

// finish fills defaults, applies environment overrides and validates
func finish(cfg *Config) (*Config, error) {
	defaults, err := Default()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = defaults
	}
	cfg.applyDefaults(defaults)

	if dbPath := os.Getenv(EnvDatabasePath); dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	loadThemeFile(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes the config to path, or to the default location when path is empty
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// loadThemeFile merges colors from the file named by TODO_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todo", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "todo", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults(defaults *Config) {
	if c.DatabasePath == "" {
		c.DatabasePath = defaults.DatabasePath
	}
	if c.LogFile == "" {
		c.LogFile = defaults.LogFile
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.LogMaxSize == 0 {
		c.LogMaxSize = defaults.LogMaxSize
	}
	c.ColorScheme.ApplyDefaults()
}
