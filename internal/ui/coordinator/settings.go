package coordinator

import (
	"github.com/bnema/chatshell/internal/application/usecase"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/infrastructure/config"
)

// Settings is the part of the configuration the coordinator acts on. The zero
// value behaves like a fresh configuration file.
type Settings struct {
	ServiceURL string
	UserAgent  string

	// Notifications falls back to usecase.DefaultNotificationPolicy when zero.
	Notifications            usecase.NotificationPolicy
	DisableUnreadBadge       bool
	KeepNotificationsOnFocus bool
	// TrackCap is read once, when the coordinator is created.
	TrackCap int

	ZoomFloorEnabled bool
	ZoomFloor        float64
	DefaultZoom      float64

	PrewarmOnStart bool
}

// DefaultSettings returns the settings of a fresh configuration file.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultConfig())
}

// SettingsFromConfig maps a loaded configuration onto coordinator settings.
func SettingsFromConfig(cfg *config.Config) Settings {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	policy := usecase.DefaultNotificationPolicy()
	policy.Enabled = cfg.Notifications.Enabled
	policy.Messages = cfg.Notifications.Messages
	policy.Preview = cfg.Notifications.Preview
	policy.PreviewLimitEnabled = cfg.Notifications.PreviewLimitEnabled
	policy.PreviewLength = cfg.Notifications.PreviewLength

	return Settings{
		ServiceURL:               cfg.Service.URL,
		UserAgent:                cfg.Service.UserAgent,
		Notifications:            policy,
		DisableUnreadBadge:       !cfg.Notifications.UnreadBadge,
		KeepNotificationsOnFocus: !cfg.Notifications.WithdrawOnFocus,
		TrackCap:                 cfg.Notifications.TrackCap,
		ZoomFloorEnabled:         cfg.Accessibility.ZoomFloorEnabled,
		ZoomFloor:                cfg.Accessibility.ZoomFloor,
		DefaultZoom:              cfg.Zoom.Default,
		PrewarmOnStart:           cfg.Sessions.PrewarmOnStart,
	}
}

func (s Settings) withDefaults() Settings {
	if s.ServiceURL == "" {
		s.ServiceURL = config.DefaultServiceURL
	}
	if s.TrackCap <= 0 {
		s.TrackCap = usecase.DefaultNotificationCap
	}
	if s.DefaultZoom <= 0 {
		s.DefaultZoom = entity.ZoomDefault
	}
	if s.Notifications == (usecase.NotificationPolicy{}) {
		s.Notifications = usecase.DefaultNotificationPolicy()
	}
	if s.Notifications.DefaultTitle == "" {
		s.Notifications.DefaultTitle = usecase.DefaultNotificationTitle
	}
	if s.Notifications.Icon == "" {
		s.Notifications.Icon = usecase.DefaultNotificationIcon
	}
	return s
}

func (s Settings) poolConfig() usecase.SessionPoolConfig {
	return usecase.SessionPoolConfig{URI: s.ServiceURL, UserAgent: s.UserAgent}
}
