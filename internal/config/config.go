package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Plan    PlanConfig    `json:"plan"`
	Display DisplayConfig `json:"display"`
	Storage StorageConfig `json:"storage"`
	Log     LogConfig     `json:"log"`
}

// PlanConfig holds planning defaults
type PlanConfig struct {
	DefaultDistance float64 `json:"default_distance"`
	SplitUnit       float64 `json:"split_unit"` // distance a split refers to
	UndoLimit       int     `json:"undo_limit"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	DistanceUnit string `json:"distance_unit"`
	Theme        string `json:"theme"`
}

// StorageConfig holds where the session is persisted
type StorageConfig struct {
	Path string `json:"path"`
}

// LogConfig holds logging settings. An empty File disables logging.
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	cfg := Config{
		Plan: PlanConfig{
			DefaultDistance: 2000,
			SplitUnit:       500,
			UndoLimit:       100,
		},
		Display: DisplayConfig{
			DistanceUnit: "m",
			Theme:        "light",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if dir, err := GetConfigDir(); err == nil {
		cfg.Storage.Path = filepath.Join(dir, "data.db")
		cfg.Log.File = filepath.Join(dir, "pacer.log")
	}

	return cfg
}

// Load reads the configuration from ~/.pacer/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Plan.DefaultDistance == 0 {
		cfg.Plan.DefaultDistance = defaults.Plan.DefaultDistance
	}
	if cfg.Plan.SplitUnit == 0 {
		cfg.Plan.SplitUnit = defaults.Plan.SplitUnit
	}
	if cfg.Plan.UndoLimit == 0 {
		cfg.Plan.UndoLimit = defaults.Plan.UndoLimit
	}
	if cfg.Display.DistanceUnit == "" {
		cfg.Display.DistanceUnit = defaults.Display.DistanceUnit
	}
	if cfg.Display.Theme == "" {
		cfg.Display.Theme = defaults.Display.Theme
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaults.Storage.Path
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.pacer/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes the configuration to path
func SaveTo(path string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file at path if none exists.
// It reports whether a file was written.
func CreateExample(path string) (bool, error) {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return false, err
		}
		path = p
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return false, nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	if err := SaveTo(path, &example); err != nil {
		return false, err
	}
	return true, nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if c.Plan.DefaultDistance <= 0 {
		return fmt.Errorf("plan.default_distance must be positive, got %v", c.Plan.DefaultDistance)
	}
	if c.Plan.SplitUnit <= 0 {
		return fmt.Errorf("plan.split_unit must be positive, got %v", c.Plan.SplitUnit)
	}
	if c.Plan.UndoLimit < 1 {
		return fmt.Errorf("plan.undo_limit must be at least 1, got %d", c.Plan.UndoLimit)
	}

	// Validate display settings
	switch c.Display.DistanceUnit {
	case "", "m", "km", "mi":
	default:
		return fmt.Errorf("display.distance_unit must be \"m\", \"km\" or \"mi\", got %q", c.Display.DistanceUnit)
	}
	if c.Display.Theme != "" && c.Display.Theme != "light" && c.Display.Theme != "dark" {
		return fmt.Errorf("display.theme must be \"light\" or \"dark\", got %q", c.Display.Theme)
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".pacer"), nil
}
