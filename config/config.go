// Package config holds the viper-backed configuration for chatkit
// applications. Defaults are registered with SetDefaults so every setting
// has a value even without a config file; Load unmarshals and validates
// the effective configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete chatkit configuration.
type Config struct {
	UI       UIConfig       `mapstructure:"ui"`
	List     ListConfig     `mapstructure:"list"`
	Composer ComposerConfig `mapstructure:"composer"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// UIConfig controls the overall widget behavior.
type UIConfig struct {
	// Theme is the color theme (built-in name or a custom theme file name)
	Theme string `mapstructure:"theme"`
	// MouseEnabled turns on mouse support (wheel scrolling, click to select)
	MouseEnabled bool `mapstructure:"mouse_enabled"`
	// AltScreen runs the program in the terminal's alternate screen buffer
	AltScreen bool `mapstructure:"alt_screen"`
}

// ListConfig controls the message list.
type ListConfig struct {
	// MaxMessages caps how many messages are retained (0 = unlimited)
	MaxMessages int `mapstructure:"max_messages"`
	// ShowTimestamps renders a timestamp in each message header
	ShowTimestamps bool `mapstructure:"show_timestamps"`
	// TimeFormat is the Go time layout used for timestamps
	TimeFormat string `mapstructure:"time_format"`
}

// ComposerConfig controls the input bar.
type ComposerConfig struct {
	// CharLimit caps the draft length in characters (0 = unlimited)
	CharLimit int `mapstructure:"char_limit"`
	// MaxHeight caps how many lines the input bar grows to
	MaxHeight int `mapstructure:"max_height"`
	// Placeholder is shown while the draft is empty
	Placeholder string `mapstructure:"placeholder"`
	// HistorySize caps how many sent messages are kept for recall
	HistorySize int `mapstructure:"history_size"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	// Enabled turns diagnostic logging on
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// File is the log file path; empty logs to stderr
	File string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:        "default",
			MouseEnabled: true,
			AltScreen:    true,
		},
		List: ListConfig{
			MaxMessages:    500,
			ShowTimestamps: true,
			TimeFormat:     "15:04",
		},
		Composer: ComposerConfig{
			CharLimit:   2000,
			MaxHeight:   5,
			Placeholder: "Type a message…",
			HistorySize: 100,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			File:    "",
		},
	}
}

// SetDefaults registers every setting's default with viper so lookups
// work before (or without) a config file.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("ui.theme", defaults.UI.Theme)
	viper.SetDefault("ui.mouse_enabled", defaults.UI.MouseEnabled)
	viper.SetDefault("ui.alt_screen", defaults.UI.AltScreen)

	viper.SetDefault("list.max_messages", defaults.List.MaxMessages)
	viper.SetDefault("list.show_timestamps", defaults.List.ShowTimestamps)
	viper.SetDefault("list.time_format", defaults.List.TimeFormat)

	viper.SetDefault("composer.char_limit", defaults.Composer.CharLimit)
	viper.SetDefault("composer.max_height", defaults.Composer.MaxHeight)
	viper.SetDefault("composer.placeholder", defaults.Composer.Placeholder)
	viper.SetDefault("composer.history_size", defaults.Composer.HistorySize)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
}

// Load reads the configuration from viper into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when
// loading fails.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "chatkit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chatkit"
	}
	return filepath.Join(home, ".config", "chatkit")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
