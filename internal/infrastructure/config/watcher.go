package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/chatshell/internal/logging"
)

// Watch starts watching the config file for changes and reloads automatically.
// Callbacks run on the watcher goroutine; callers hop to their own thread.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	m.viper.OnConfigChange(m.handleFileEvent)
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// handleFileEvent reloads after the file changed on disk. Editors often
// write a file more than once per save; callbacks only fire when the
// effective configuration actually differs.
func (m *Manager) handleFileEvent(e fsnotify.Event) {
	log := logging.NewFromEnv()
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file event")

	m.mu.Lock()

	// Our own Save already holds the new config in memory.
	if m.skipNextReload {
		m.skipNextReload = false
		if err := m.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("failed to sync viper config after Save")
		}
		m.notifyCallbacksLocked()
		return
	}

	changed, err := m.reload()
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("failed to reload config, keeping previous values")
		m.mu.Unlock()
	case !changed:
		m.mu.Unlock()
	default:
		log.Info().Str("file", e.Name).Msg("config reloaded")
		m.notifyCallbacksLocked()
	}
}

// notifyCallbacksLocked copies callbacks and config, releases the lock, then notifies.
// Must be called with m.mu held for write.
func (m *Manager) notifyCallbacksLocked() {
	config := *m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		cfg := config
		callback(&cfg)
	}
}

// OnConfigChange registers a callback invoked with a copy of every reloaded config.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload rereads the file and reports whether the effective configuration
// changed. Must be called with the lock held for write.
func (m *Manager) reload() (bool, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		return false, err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return false, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return false, fmt.Errorf("configuration validation failed: %w", err)
	}

	if m.config != nil && *m.config == *config {
		return false, nil
	}
	m.config = config
	return true, nil
}
