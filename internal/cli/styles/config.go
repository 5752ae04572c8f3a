package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders configuration output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// PathEntry is one labelled location.
type PathEntry struct {
	Label string
	Path  string
}

// RenderPaths renders labelled file locations with aligned labels.
func (r *ConfigRenderer) RenderPaths(entries []PathEntry) string {
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Label))
	}
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconFolder)

	var sb strings.Builder
	sb.WriteString("\n")
	for _, e := range entries {
		label := e.Label + strings.Repeat(" ", width-lipgloss.Width(e.Label))
		sb.WriteString(fmt.Sprintf("  %s %s  %s\n", icon, r.theme.Title.Render(label), r.theme.Subtle.Render(e.Path)))
	}
	return sb.String()
}

// RenderHeader renders the config file header above a dump.
func (r *ConfigRenderer) RenderHeader(path string) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconConfig)
	return fmt.Sprintf("\n  %s Config %s\n", icon, r.theme.Subtle.Render(path))
}

// RenderSaved renders the confirmation of a written file.
func (r *ConfigRenderer) RenderSaved(path string) string {
	return fmt.Sprintf("\n  %s Wrote %s\n", r.theme.SuccessStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s Config error: %v\n", r.theme.ErrorStyle.Render(IconX), err)
}
