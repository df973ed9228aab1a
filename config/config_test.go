package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("default config should validate, got: %v", ValidationErrors(errs))
	}
}

func TestLoadWithDefaultsOnly(t *testing.T) {
	resetViper(t)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Theme != "default" {
		t.Errorf("UI.Theme = %q, want %q", cfg.UI.Theme, "default")
	}
	if cfg.List.MaxMessages != 500 {
		t.Errorf("List.MaxMessages = %d, want 500", cfg.List.MaxMessages)
	}
	if cfg.Composer.MaxHeight != 5 {
		t.Errorf("Composer.MaxHeight = %d, want 5", cfg.Composer.MaxHeight)
	}
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	resetViper(t)
	SetDefaults()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `ui:
  theme: nord
list:
  max_messages: 42
composer:
  placeholder: "say something"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Theme != "nord" {
		t.Errorf("UI.Theme = %q, want nord", cfg.UI.Theme)
	}
	if cfg.List.MaxMessages != 42 {
		t.Errorf("List.MaxMessages = %d, want 42", cfg.List.MaxMessages)
	}
	if cfg.Composer.Placeholder != "say something" {
		t.Errorf("Composer.Placeholder = %q", cfg.Composer.Placeholder)
	}
	// Untouched settings keep their defaults.
	if cfg.Composer.CharLimit != 2000 {
		t.Errorf("Composer.CharLimit = %d, want default 2000", cfg.Composer.CharLimit)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "unknown theme",
			mutate:    func(c *Config) { c.UI.Theme = "no-such-theme" },
			wantField: "ui.theme",
		},
		{
			name:      "negative max messages",
			mutate:    func(c *Config) { c.List.MaxMessages = -1 },
			wantField: "list.max_messages",
		},
		{
			name:      "empty time format",
			mutate:    func(c *Config) { c.List.TimeFormat = "" },
			wantField: "list.time_format",
		},
		{
			name:      "zero composer height",
			mutate:    func(c *Config) { c.Composer.MaxHeight = 0 },
			wantField: "composer.max_height",
		},
		{
			name:      "negative char limit",
			mutate:    func(c *Config) { c.Composer.CharLimit = -5 },
			wantField: "composer.char_limit",
		},
		{
			name:      "bad log level",
			mutate:    func(c *Config) { c.Logging.Level = "verbose" },
			wantField: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			if len(errs) == 0 {
				t.Fatal("expected validation errors")
			}
			found := false
			for _, e := range errs {
				if e.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("no error for field %q in %v", tt.wantField, ValidationErrors(errs))
			}
		})
	}
}

func TestValidationErrorsFormatting(t *testing.T) {
	errs := ValidationErrors{
		{Field: "a", Value: 1, Message: "bad"},
		{Field: "b", Value: 2, Message: "worse"},
	}
	msg := errs.Error()
	if !strings.Contains(msg, "2 validation errors") {
		t.Errorf("Error() = %q, want count prefix", msg)
	}
	if !strings.Contains(msg, "a: bad") || !strings.Contains(msg, "b: worse") {
		t.Errorf("Error() = %q, want both errors listed", msg)
	}

	single := ValidationErrors{{Field: "a", Value: 1, Message: "bad"}}
	if strings.Contains(single.Error(), "validation errors") {
		t.Errorf("single error should not use the multi-error format: %q", single.Error())
	}
}

func TestGetFallsBackToDefaults(t *testing.T) {
	resetViper(t)
	SetDefaults()
	viper.Set("ui.theme", "not-a-theme")

	cfg := Get()
	if cfg.UI.Theme != "default" {
		t.Errorf("Get() should fall back to defaults on invalid config, got theme %q", cfg.UI.Theme)
	}
}
