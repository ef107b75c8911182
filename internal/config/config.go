// Package config loads the user's YAML configuration: board shape, quick deltas,
// database location, log level, key bindings and theme.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/tally/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// ThemeFileEnv points at a YAML file whose theme section overrides the config
const ThemeFileEnv = "TALLY_THEME_FILE"

const (
	defaultColumnsPerRow = 8
	defaultLogLevel      = "info"
)

// Config represents the application configuration
type Config struct {
	Board        BoardConfig        `yaml:"board"`
	DatabasePath string             `yaml:"database_path"`
	LogLevel     string             `yaml:"log_level"`
	KeyMappings  KeyMappings        `yaml:"key_mappings"`
	ColorScheme  colors.ColorScheme `yaml:"theme"`
}

// BoardConfig configures new boards and score shortcuts
type BoardConfig struct {
	ColumnsPerRow int   `yaml:"columns_per_row"`
	QuickDeltas   []int `yaml:"quick_deltas"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from TALLY_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, returning defaults if the file doesn't exist
func LoadFile(configPath string) (*Config, error) {
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
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	// Fill in any missing values with defaults, then let the theme file win
	config.applyDefaults()
	loadThemeFile(&config)

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
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
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tally", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tally", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Board.ColumnsPerRow <= 0 {
		c.Board.ColumnsPerRow = defaultColumnsPerRow
	}
	if len(c.Board.QuickDeltas) == 0 {
		c.Board.QuickDeltas = []int{1, -1, 2, 4}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		c.LogLevel = defaultLogLevel
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
