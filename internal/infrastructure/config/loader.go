package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/chatshell/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. CHATSHELL_SERVICE_URL.
const EnvPrefix = "CHATSHELL"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configDir      string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The log variables are shared with logging.NewFromEnv and do not follow
	// the section naming.
	if err := v.BindEnv("logging.level", logging.EnvLogLevel); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", logging.EnvLogLevel, err)
	}
	if err := v.BindEnv("logging.format", logging.EnvLogFormat); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", logging.EnvLogFormat, err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
	}, nil
}

// Load loads the configuration from file and environment variables,
// creating a default file on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = filepath.Join(m.configDir, configFileName)
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if err := m.createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create default config in %s: %w\nTry creating the directory manually or check permissions", m.configDir, err)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Service.URL = strings.TrimSpace(config.Service.URL)
	if config.Service.URL == "" {
		config.Service.URL = DefaultServiceURL
	}
	config.Service.UserAgent = strings.TrimSpace(config.Service.UserAgent)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}

	switch ColorScheme(strings.ToLower(string(config.Appearance.ColorScheme))) {
	case ColorSchemeDark:
		config.Appearance.ColorScheme = ColorSchemeDark
	case ColorSchemeLight:
		config.Appearance.ColorScheme = ColorSchemeLight
	default:
		config.Appearance.ColorScheme = ColorSchemeAuto
	}
	config.Appearance.Accent = strings.ToLower(strings.TrimSpace(config.Appearance.Accent))

	config.Paths.AccountsDir = strings.TrimSpace(config.Paths.AccountsDir)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to disk in section order.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	normalized := *cfg
	normalizeConfig(&normalized)
	if err := validateConfig(&normalized); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(&normalized, m.ConfigFile()); err != nil {
		return err
	}

	if m.watching {
		m.skipNextReload = true
		m.config = &normalized
		return nil
	}
	_, err := m.reload()
	return err
}

// ConfigFile returns the path of the configuration file.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configFileName)
}

// ConfigDir returns the directory holding the configuration file.
func (m *Manager) ConfigDir() string {
	return m.configDir
}

// createDefaultConfig writes the default configuration and its schema.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, configFileName)
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)

	if err := GenerateSchemaFile(filepath.Join(m.configDir, schemaFileName)); err != nil {
		log := logging.NewFromEnv()
		log.Warn().Err(err).Msg("failed to write config schema")
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setServiceDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setNotificationDefaults(defaults)
	m.setAccessibilityDefaults(defaults)
	m.setSessionDefaults(defaults)
	m.setAppearanceDefaults(defaults)
}

func (m *Manager) setServiceDefaults(defaults *Config) {
	m.viper.SetDefault("service.url", defaults.Service.URL)
	m.viper.SetDefault("service.user_agent", defaults.Service.UserAgent)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setNotificationDefaults(defaults *Config) {
	m.viper.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	m.viper.SetDefault("notifications.messages", defaults.Notifications.Messages)
	m.viper.SetDefault("notifications.preview", defaults.Notifications.Preview)
	m.viper.SetDefault("notifications.preview_limit_enabled", defaults.Notifications.PreviewLimitEnabled)
	m.viper.SetDefault("notifications.preview_length", defaults.Notifications.PreviewLength)
	m.viper.SetDefault("notifications.unread_badge", defaults.Notifications.UnreadBadge)
	m.viper.SetDefault("notifications.withdraw_on_focus", defaults.Notifications.WithdrawOnFocus)
	m.viper.SetDefault("notifications.track_cap", defaults.Notifications.TrackCap)
}

func (m *Manager) setAccessibilityDefaults(defaults *Config) {
	m.viper.SetDefault("accessibility.zoom_floor_enabled", defaults.Accessibility.ZoomFloorEnabled)
	m.viper.SetDefault("accessibility.zoom_floor", defaults.Accessibility.ZoomFloor)
	m.viper.SetDefault("zoom.default", defaults.Zoom.Default)
}

func (m *Manager) setSessionDefaults(defaults *Config) {
	m.viper.SetDefault("sessions.prewarm_on_start", defaults.Sessions.PrewarmOnStart)
	m.viper.SetDefault("paths.accounts_dir", defaults.Paths.AccountsDir)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.color_scheme", string(defaults.Appearance.ColorScheme))
	m.viper.SetDefault("appearance.accent", defaults.Appearance.Accent)
}

// AccountsDir resolves the accounts directory, honoring paths.accounts_dir.
func (c *Config) AccountsDir() (string, error) {
	if c != nil && c.Paths.AccountsDir != "" {
		return c.Paths.AccountsDir, nil
	}
	return GetAccountsDir()
}

// LogDir resolves the log directory, honoring logging.log_dir.
func (c *Config) LogDir() (string, error) {
	if c != nil && c.Logging.LogDir != "" {
		return c.Logging.LogDir, nil
	}
	return GetLogDir()
}
