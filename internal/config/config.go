// Package config provides configuration types, defaults and validation for twig.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/twig/internal/tracing"
)

// Config holds all configuration options for twig.
type Config struct {
	AutoRefresh     bool           `mapstructure:"auto_refresh"`
	RefreshDebounce time.Duration  `mapstructure:"refresh_debounce"`
	LogLimit        int            `mapstructure:"log_limit"`
	UI              UIConfig       `mapstructure:"ui"`
	Theme           ThemeConfig    `mapstructure:"theme"`
	Store           StoreConfig    `mapstructure:"store"`
	Tracing         tracing.Config `mapstructure:"tracing"`
}

// UIConfig holds user interface options.
type UIConfig struct {
	Mouse               bool          `mapstructure:"mouse"`
	ShowHelpBar         bool          `mapstructure:"show_help_bar"`
	MarkdownStyle       string        `mapstructure:"markdown_style"` // "dark" (default) or "light"
	NotifyDesktop       bool          `mapstructure:"notify_desktop"`
	NotificationTimeout time.Duration `mapstructure:"notification_timeout"`
	OutputHeight        int           `mapstructure:"output_height"` // rows of the output panel
}

// ThemeConfig holds hex colors for the handful of tokens twig paints.
type ThemeConfig struct {
	Accent  string `mapstructure:"accent"`
	Added   string `mapstructure:"added"`
	Removed string `mapstructure:"removed"`
}

// StoreConfig locates the repository registry.
type StoreConfig struct {
	// Path of the sqlite database. Empty means ~/.config/twig/repos.db.
	Path string `mapstructure:"path"`
}

const (
	MinOutputHeight = 3
	MaxOutputHeight = 30
)

// Dir returns ~/.config/twig.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "twig")
	}
	return filepath.Join(home, ".config", "twig")
}

// DefaultConfigPath is where the config file is written on first run.
func DefaultConfigPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultStorePath is the registry location when store.path is empty.
func DefaultStorePath() string {
	return filepath.Join(Dir(), "repos.db")
}

// DefaultTracesFilePath is the "file" exporter output when none is set.
func DefaultTracesFilePath() string {
	return filepath.Join(Dir(), "traces", "traces.jsonl")
}

// StorePath returns the configured store path or the default.
func (c Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return DefaultStorePath()
}

// TracingConfig returns the tracing section with an output path filled in.
func (c Config) TracingConfig() tracing.Config {
	t := c.Tracing
	if t.Exporter == tracing.ExporterFile && t.FilePath == "" {
		t.FilePath = DefaultTracesFilePath()
	}
	if t.ServiceName == "" {
		t.ServiceName = "twig"
	}
	return t
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		AutoRefresh:     true,
		RefreshDebounce: 500 * time.Millisecond,
		LogLimit:        200,
		UI: UIConfig{
			Mouse:               true,
			ShowHelpBar:         true,
			MarkdownStyle:       "dark",
			NotifyDesktop:       false,
			NotificationTimeout: 4500 * time.Millisecond,
			OutputHeight:        8,
		},
		Theme: ThemeConfig{
			Accent:  "#7D56F4",
			Added:   "#98C379",
			Removed: "#E06C75",
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// Validate checks every section and returns the first problem found.
func Validate(c Config) error {
	if c.RefreshDebounce <= 0 {
		return fmt.Errorf("refresh_debounce must be positive, got %s", c.RefreshDebounce)
	}
	if c.LogLimit <= 0 {
		return fmt.Errorf("log_limit must be positive, got %d", c.LogLimit)
	}
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	if err := ValidateTheme(c.Theme); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// ValidateUI checks the ui section.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light", "notty":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
	if ui.NotificationTimeout < 0 {
		return fmt.Errorf("ui.notification_timeout must not be negative, got %s", ui.NotificationTimeout)
	}
	if ui.OutputHeight != 0 && (ui.OutputHeight < MinOutputHeight || ui.OutputHeight > MaxOutputHeight) {
		return fmt.Errorf("ui.output_height must be between %d and %d, got %d",
			MinOutputHeight, MaxOutputHeight, ui.OutputHeight)
	}
	return nil
}

// ValidateTheme checks that every set color is a #RRGGBB hex value.
func ValidateTheme(t ThemeConfig) error {
	for name, v := range map[string]string{
		"theme.accent":  t.Accent,
		"theme.added":   t.Added,
		"theme.removed": t.Removed,
	} {
		if v != "" && !isHexColor(v) {
			return fmt.Errorf("%s must be a hex color like #RRGGBB, got %q", name, v)
		}
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// ValidateTracing checks tracing configuration for errors.
// Empty values are allowed and fall back to defaults.
func ValidateTracing(t tracing.Config) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("tracing.exporter: %w", err)
	}
	if t.Enabled && t.Exporter == tracing.ExporterOTLP && t.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}
	return nil
}

// DefaultConfigTemplate is the commented file written on first run.
func DefaultConfigTemplate() string {
	return `# twig configuration

# Refresh status and branches when files in the repository change.
auto_refresh: true
refresh_debounce: 500ms

# Number of commits loaded into the graph view.
log_limit: 200

ui:
  mouse: true
  show_help_bar: true
  markdown_style: dark      # dark or light
  notify_desktop: false     # desktop notification after pull, push and fetch
  notification_timeout: 4.5s
  output_height: 8

theme:
  accent: "#7D56F4"
  added: "#98C379"
  removed: "#E06C75"

store:
  path: ""                  # default ~/.config/twig/repos.db

tracing:
  enabled: false
  exporter: file            # none, file, stdout or otlp
  file_path: ""             # default ~/.config/twig/traces/traces.jsonl
  otlp_endpoint: localhost:4317
  sample_rate: 1.0
`
}
