// Package ui renders generation progress to the terminal. Interactive
// runs get animated spinners and a stage progress bar; non-TTY runs fall
// back to plain log lines.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the colors and styles shared by all UI components.
type Theme struct {
	NoColor   bool
	Primary   string
	Secondary string

	Title   lipgloss.Style
	Success lipgloss.Style
	Warn    lipgloss.Style
	Fail    lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultTheme returns the stackgen color scheme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   "#7C3AED",
		Secondary: "#06B6D4",
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}),
		Fail:      lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}),
	}
}
