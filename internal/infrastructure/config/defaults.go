package config

import "github.com/bnema/chatshell/internal/domain/entity"

const (
	DefaultServiceURL           = "https://web.whatsapp.com"
	defaultPreviewLength        = 50
	defaultNotificationTrackCap = 50
	defaultZoomFloor            = 1.25
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Service: ServiceConfig{
			URL: DefaultServiceURL,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
			MaxSizeMB:     10,
			MaxBackups:    5,
			MaxAgeDays:    7,
			Compress:      true,
		},
		Notifications: NotificationsConfig{
			Enabled:         true,
			Messages:        true,
			Preview:         true,
			PreviewLength:   defaultPreviewLength,
			UnreadBadge:     true,
			WithdrawOnFocus: true,
			TrackCap:        defaultNotificationTrackCap,
		},
		Accessibility: AccessibilityConfig{
			ZoomFloor: defaultZoomFloor,
		},
		Zoom: ZoomConfig{
			Default: entity.ZoomDefault,
		},
		Appearance: AppearanceConfig{
			ColorScheme: ColorSchemeAuto,
			Accent:      entity.DefaultColor,
		},
	}
}
