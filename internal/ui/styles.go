package ui

import "github.com/charmbracelet/lipgloss"

// Color palette: crawl yellow on deep space, with adaptive light/dark support.
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FFE81F"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#4FC3F7"}
	ColorSubtle    = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#5C6370"}
	ColorText      = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"}
	ColorError     = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FF5555"}
	ColorHeaderBg  = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#1F2430"}
)

// Header renders the top bar with the app title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(ColorHeaderBg).
	Padding(0, 1)

// StatusBar renders the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorSubtle).
	Padding(0, 1)

// Title styles for section headings.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorPrimary).
	MarginBottom(1)

// Subtitle for secondary headings.
var SubtitleStyle = lipgloss.NewStyle().
	Foreground(ColorSecondary)

// ErrorStyle for error messages.
var ErrorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorError).
	Padding(0, 1)

// HelpStyle for the help/keybinding text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorSubtle)

// ButtonStyle for enabled pagination buttons.
var ButtonStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorPrimary).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorPrimary).
	Padding(0, 2)

// DisabledButtonStyle for pagination buttons the server says lead nowhere.
var DisabledButtonStyle = lipgloss.NewStyle().
	Foreground(ColorSubtle).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorSubtle).
	Padding(0, 2)

// TableHeaderStyle for the results table header row.
var TableHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorPrimary).
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(ColorSubtle).
	BorderBottom(true)

// TableSelectedStyle highlights the selected table row.
var TableSelectedStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#000000")).
	Background(ColorPrimary)

// BorderedBoxStyle for overlays and modal-like content.
var BorderedBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorPrimary).
	Padding(1, 2)

// SpinnerStyle for loading spinners.
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSecondary)

// CenterHorizontal centers text horizontally within the given width.
func CenterHorizontal(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
