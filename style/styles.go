package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for the demo TUI.
type Styles struct {
	// Container wraps the measured content area. Its padding is what the
	// provider subtracts from the window size.
	Container lipgloss.Style

	// Content fills the measured area.
	Content lipgloss.Style

	// StatusBar runs along the bottom.
	StatusBar lipgloss.Style

	// Dimensions highlights the measured size readout.
	Dimensions lipgloss.Style

	// Muted is for secondary text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Container: lipgloss.NewStyle().
			Padding(1, 2),
		Content: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		Dimensions: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")). // Muted green
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}
