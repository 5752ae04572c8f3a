// Package config loads, validates, watches and writes the chatshell
// configuration file.
package config

// Config represents the complete configuration for chatshell.
type Config struct {
	// Service is the web chat service every account session loads.
	Service ServiceConfig `mapstructure:"service" yaml:"service" toml:"service"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
	// Notifications controls which messages raise desktop notifications and what they reveal.
	Notifications NotificationsConfig `mapstructure:"notifications" yaml:"notifications" toml:"notifications"`
	// Accessibility holds the global zoom floor.
	Accessibility AccessibilityConfig `mapstructure:"accessibility" yaml:"accessibility" toml:"accessibility"`
	Zoom          ZoomConfig          `mapstructure:"zoom" yaml:"zoom" toml:"zoom"`
	// Sessions controls how account sessions are kept alive.
	Sessions   SessionsConfig   `mapstructure:"sessions" yaml:"sessions" toml:"sessions"`
	Paths      PathsConfig      `mapstructure:"paths" yaml:"paths" toml:"paths"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
}

// ServiceConfig describes the web chat service.
type ServiceConfig struct {
	URL string `mapstructure:"url" yaml:"url" toml:"url" jsonschema:"format=uri"`
	// UserAgent overrides the engine's user agent. Empty keeps the engine default.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent" toml:"user_agent"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=json,enum=console"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	// LogDir overrides the log directory. Empty uses $XDG_STATE_HOME/chatshell/logs.
	LogDir     string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress" toml:"compress"`
}

// NotificationsConfig holds the notification content policy.
type NotificationsConfig struct {
	// Enabled is the master switch.
	Enabled bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	// Messages controls notifications for incoming messages.
	Messages bool `mapstructure:"messages" yaml:"messages" toml:"messages"`
	// Preview shows the message text. When false the body is a generic text.
	Preview             bool `mapstructure:"preview" yaml:"preview" toml:"preview"`
	PreviewLimitEnabled bool `mapstructure:"preview_limit_enabled" yaml:"preview_limit_enabled" toml:"preview_limit_enabled"`
	// PreviewLength is counted in characters.
	PreviewLength int `mapstructure:"preview_length" yaml:"preview_length" toml:"preview_length" jsonschema:"minimum=1"`
	// UnreadBadge marks accounts unread and badges the tray icon.
	UnreadBadge bool `mapstructure:"unread_badge" yaml:"unread_badge" toml:"unread_badge"`
	// WithdrawOnFocus removes delivered notifications when the window gains focus.
	WithdrawOnFocus bool `mapstructure:"withdraw_on_focus" yaml:"withdraw_on_focus" toml:"withdraw_on_focus"`
	// TrackCap bounds how many delivered notifications are remembered.
	TrackCap int `mapstructure:"track_cap" yaml:"track_cap" toml:"track_cap" jsonschema:"minimum=1"`
}

// AccessibilityConfig holds the global zoom floor.
type AccessibilityConfig struct {
	ZoomFloorEnabled bool    `mapstructure:"zoom_floor_enabled" yaml:"zoom_floor_enabled" toml:"zoom_floor_enabled"`
	ZoomFloor        float64 `mapstructure:"zoom_floor" yaml:"zoom_floor" toml:"zoom_floor" jsonschema:"minimum=0.25,maximum=5"`
}

// ZoomConfig holds zoom defaults.
type ZoomConfig struct {
	// Default is the zoom level given to newly added accounts (1.0 = 100%).
	Default float64 `mapstructure:"default" yaml:"default" toml:"default" jsonschema:"minimum=0.25,maximum=5"`
}

// SessionsConfig controls session lifetime.
type SessionsConfig struct {
	// PrewarmOnStart creates every account's session at startup.
	PrewarmOnStart bool `mapstructure:"prewarm_on_start" yaml:"prewarm_on_start" toml:"prewarm_on_start"`
}

// PathsConfig holds path overrides.
type PathsConfig struct {
	// AccountsDir overrides $XDG_DATA_HOME/chatshell/accounts.
	AccountsDir string `mapstructure:"accounts_dir" yaml:"accounts_dir" toml:"accounts_dir"`
}

// ColorScheme selects the CLI palette.
type ColorScheme string

const (
	ColorSchemeAuto  ColorScheme = "auto"
	ColorSchemeDark  ColorScheme = "dark"
	ColorSchemeLight ColorScheme = "light"
)

// AppearanceConfig holds CLI appearance settings.
type AppearanceConfig struct {
	ColorScheme ColorScheme `mapstructure:"color_scheme" yaml:"color_scheme" toml:"color_scheme" jsonschema:"enum=auto,enum=dark,enum=light"`
	// Accent is a #rrggbb color used for highlights.
	Accent string `mapstructure:"accent" yaml:"accent" toml:"accent"`
}
