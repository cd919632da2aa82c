// Package config handles hue configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tOgg1/hue/internal/logging"
)

// Config is the root configuration structure for hue.
type Config struct {
	// Catalog settings
	Catalog CatalogConfig `yaml:"catalog" mapstructure:"catalog"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`

	// TUI settings
	TUI TUIConfig `yaml:"tui" mapstructure:"tui"`
}

// CatalogConfig selects where color schemes come from.
type CatalogConfig struct {
	// Path is a YAML or JSON catalog file. Empty means the built-in catalog.
	Path string `yaml:"path" mapstructure:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`

	// Format is the output format (json, console).
	Format string `yaml:"format" mapstructure:"format"`

	// File is an optional log file path.
	File string `yaml:"file" mapstructure:"file"`

	// EnableCaller adds caller information to logs.
	EnableCaller bool `yaml:"enable_caller" mapstructure:"enable_caller"`
}

// TUIConfig contains TUI settings.
type TUIConfig struct {
	// ShowSwatches renders the 16 ANSI colors under the preview.
	ShowSwatches bool `yaml:"show_swatches" mapstructure:"show_swatches"`

	// CompactMode hides the palette table.
	CompactMode bool `yaml:"compact_mode" mapstructure:"compact_mode"`

	// WrapWidth is the column at which help and status text wrap.
	WrapWidth int `yaml:"wrap_width" mapstructure:"wrap_width"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level:        "info",
			Format:       "console",
			EnableCaller: false,
		},
		TUI: TUIConfig{
			ShowSwatches: true,
			CompactMode:  false,
			WrapWidth:    72,
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error, disabled")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	if c.TUI.WrapWidth < 20 {
		return fmt.Errorf("tui.wrap_width must be at least 20")
	}

	if c.Catalog.Path != "" {
		info, err := os.Stat(c.Catalog.Path)
		if err != nil {
			return fmt.Errorf("catalog.path: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("catalog.path must be a file, got directory %s", c.Catalog.Path)
		}
	}

	return nil
}

// DefaultConfigDir returns the directory searched for config.yaml.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hue")
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "hue")
}

// LoggingSettings converts the logging section to a logging.Config.
func (c *Config) LoggingSettings() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = strings.ToLower(c.Logging.Format)
	cfg.EnableCaller = c.Logging.EnableCaller
	return cfg
}
