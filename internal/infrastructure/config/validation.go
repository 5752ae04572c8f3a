package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/bnema/chatshell/internal/domain/entity"
)

const maxPreviewLength = 10000

// validateConfig collects every invalid value into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateService(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateNotifications(config)...)
	validationErrors = append(validationErrors, validateZoom(config)...)
	validationErrors = append(validationErrors, validatePaths(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateService(config *Config) []string {
	u, err := url.Parse(config.Service.URL)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return []string{fmt.Sprintf("service.url must be an absolute http(s) URL (got: %q)", config.Service.URL)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got: %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "json", "console":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be json or console (got: %q)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateNotifications(config *Config) []string {
	var validationErrors []string
	if config.Notifications.PreviewLength < 1 || config.Notifications.PreviewLength > maxPreviewLength {
		validationErrors = append(validationErrors,
			fmt.Sprintf("notifications.preview_length must be between 1 and %d", maxPreviewLength))
	}
	if config.Notifications.TrackCap < 1 {
		validationErrors = append(validationErrors, "notifications.track_cap must be at least 1")
	}
	return validationErrors
}

func validateZoom(config *Config) []string {
	var validationErrors []string
	if !zoomInRange(config.Accessibility.ZoomFloor) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("accessibility.zoom_floor must be between %.2f and %.2f", entity.ZoomMin, entity.ZoomMax))
	}
	if !zoomInRange(config.Zoom.Default) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("zoom.default must be between %.2f and %.2f", entity.ZoomMin, entity.ZoomMax))
	}
	return validationErrors
}

func zoomInRange(factor float64) bool {
	return factor >= entity.ZoomMin && factor <= entity.ZoomMax
}

func validatePaths(config *Config) []string {
	var validationErrors []string
	if dir := config.Paths.AccountsDir; dir != "" && !filepath.IsAbs(dir) {
		validationErrors = append(validationErrors, "paths.accounts_dir must be an absolute path")
	}
	if dir := config.Logging.LogDir; dir != "" && !filepath.IsAbs(dir) {
		validationErrors = append(validationErrors, "logging.log_dir must be an absolute path")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	switch config.Appearance.ColorScheme {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("appearance.color_scheme must be auto, dark or light (got: %q)", config.Appearance.ColorScheme))
	}
	if err := entity.ValidateColor(config.Appearance.Accent); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("appearance.accent: %v", err))
	}
	return validationErrors
}
