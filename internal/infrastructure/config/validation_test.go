package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_DefaultsAreValid(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "non http service url",
			mutate:  func(c *Config) { c.Service.URL = "ftp://example.com" },
			wantErr: "service.url",
		},
		{
			name:    "relative service url",
			mutate:  func(c *Config) { c.Service.URL = "web.whatsapp.com" },
			wantErr: "service.url",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "negative log backups",
			mutate:  func(c *Config) { c.Logging.MaxBackups = -1 },
			wantErr: "logging.max_backups",
		},
		{
			name:    "zero preview length",
			mutate:  func(c *Config) { c.Notifications.PreviewLength = 0 },
			wantErr: "notifications.preview_length",
		},
		{
			name:    "zero track cap",
			mutate:  func(c *Config) { c.Notifications.TrackCap = 0 },
			wantErr: "notifications.track_cap",
		},
		{
			name:    "zoom floor above max",
			mutate:  func(c *Config) { c.Accessibility.ZoomFloor = 6 },
			wantErr: "accessibility.zoom_floor",
		},
		{
			name:    "default zoom below min",
			mutate:  func(c *Config) { c.Zoom.Default = 0.1 },
			wantErr: "zoom.default",
		},
		{
			name:    "relative accounts dir",
			mutate:  func(c *Config) { c.Paths.AccountsDir = "accounts" },
			wantErr: "paths.accounts_dir",
		},
		{
			name:    "bad accent",
			mutate:  func(c *Config) { c.Appearance.Accent = "blue" },
			wantErr: "appearance.accent",
		},
		{
			name:    "bad color scheme",
			mutate:  func(c *Config) { c.Appearance.ColorScheme = "sepia" },
			wantErr: "appearance.color_scheme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Notifications.TrackCap = -3

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "notifications.track_cap")
}
