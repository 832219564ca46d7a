package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = " film-tui "

// RenderHeader returns a full-width header bar with the app title.
func RenderHeader(width int) string {
	title := HeaderStyle.Render(appTitle)
	gap := width - lipgloss.Width(title)
	if gap < 0 {
		gap = 0
	}
	fill := lipgloss.NewStyle().
		Background(ColorHeaderBg).
		Render(strings.Repeat(" ", gap))
	return title + fill
}

// RenderStatusBar returns a full-width status bar with the given text.
func RenderStatusBar(width int, text string) string {
	return StatusBarStyle.Width(width).Render(text)
}

// RenderError returns a styled error message.
func RenderError(msg string) string {
	return ErrorStyle.Render(msg)
}

// RenderButton renders a pagination button, greyed out when disabled.
func RenderButton(label string, disabled bool) string {
	if disabled {
		return DisabledButtonStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}

// DimDivider returns a subtle horizontal rule of the given width.
func DimDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(ColorSubtle).Render(strings.Repeat("─", width))
}
