package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for terminal output.
type Theme struct {
	Primary lipgloss.Color // Tags and labels
	Error   lipgloss.Color // Error prefix
	Dim     lipgloss.Color // Hints
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Error:   lipgloss.Color("#ff5f87"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Label lipgloss.Style
	Error lipgloss.Style
	Hint  lipgloss.Style
}

// NewStyles creates styles from a theme, bound to renderer r so that color
// is only emitted when r writes to a terminal.
func NewStyles(r *lipgloss.Renderer, t Theme) Styles {
	return Styles{
		Label: r.NewStyle().Bold(true).Foreground(t.Primary),
		Error: r.NewStyle().Bold(true).Foreground(t.Error),
		Hint:  r.NewStyle().Foreground(t.Dim),
	}
}
