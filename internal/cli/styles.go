package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stackgen-dev/stackgen/internal/ui"
)

// theme is the shared palette; internal/ui owns it so the progress
// components and the command surface cannot drift apart.
var theme = ui.DefaultTheme()

var cardBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color(theme.Primary)).
	Padding(0, 2)

// kvPair is one label/value row in a summary card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders aligned label/value rows.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = fmt.Sprintf("%s  %s", theme.Muted.Render(fmt.Sprintf("%-*s", width, p.key)), p.value)
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard renders a bordered success message with optional
// detail blocks beneath the title.
func renderSuccessCard(title string, details ...string) string {
	body := theme.Success.Render("✓ " + title)
	for _, d := range details {
		if d != "" {
			body += "\n" + d
		}
	}
	return cardBorder.Render(body)
}

// printBanner renders the startup banner.
func printBanner(version string) string {
	return theme.Title.Render("stackgen") + theme.Muted.Render(" "+version) + "\n" +
		theme.Muted.Render("Scaffold a full-stack project in seconds.")
}
