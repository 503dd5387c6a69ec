package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/twig/internal/tracing"
)

func TestDefaults_Valid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, Validate(cfg))
	require.Equal(t, 500*time.Millisecond, cfg.RefreshDebounce)
	require.Equal(t, 4500*time.Millisecond, cfg.UI.NotificationTimeout)
	require.Equal(t, "twig", cfg.Tracing.ServiceName)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero debounce", func(c *Config) { c.RefreshDebounce = 0 }, "refresh_debounce"},
		{"negative log limit", func(c *Config) { c.LogLimit = -1 }, "log_limit"},
		{"markdown style", func(c *Config) { c.UI.MarkdownStyle = "neon" }, "markdown_style"},
		{"output height", func(c *Config) { c.UI.OutputHeight = 99 }, "output_height"},
		{"theme color", func(c *Config) { c.Theme.Added = "green" }, "theme.added"},
		{"exporter", func(c *Config) { c.Tracing.Exporter = "zipkin" }, "tracing.exporter"},
		{"sample rate", func(c *Config) { c.Tracing.SampleRate = 2 }, "sample_rate"},
		{"otlp endpoint", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.Exporter = tracing.ExporterOTLP
			c.Tracing.OTLPEndpoint = ""
		}, "otlp_endpoint"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTemplate_UnmarshalsToDefaults(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(DefaultConfigTemplate())))

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	want := Defaults()
	require.Equal(t, want.RefreshDebounce, cfg.RefreshDebounce)
	require.Equal(t, want.LogLimit, cfg.LogLimit)
	require.Equal(t, want.UI.NotificationTimeout, cfg.UI.NotificationTimeout)
	require.Equal(t, want.UI.OutputHeight, cfg.UI.OutputHeight)
	require.Equal(t, want.Theme, cfg.Theme)
	require.Equal(t, tracing.ExporterFile, cfg.Tracing.Exporter)
	require.NoError(t, Validate(cfg))
}

func TestStorePath(t *testing.T) {
	cfg := Defaults()
	require.Equal(t, DefaultStorePath(), cfg.StorePath())

	cfg.Store.Path = "/tmp/repos.db"
	require.Equal(t, "/tmp/repos.db", cfg.StorePath())
}

func TestTracingConfig_FillsFilePath(t *testing.T) {
	cfg := Defaults()
	require.Equal(t, DefaultTracesFilePath(), cfg.TracingConfig().FilePath)

	cfg.Tracing.FilePath = "/tmp/t.jsonl"
	require.Equal(t, "/tmp/t.jsonl", cfg.TracingConfig().FilePath)
}
