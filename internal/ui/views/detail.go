package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rayanxn/film-tui/internal/swapi"
	"github.com/rayanxn/film-tui/internal/ui"
)

// DetailModel displays a film's metadata and its species list.
type DetailModel struct {
	film     swapi.Film
	viewport viewport.Model
}

// NewDetailModel creates a detail view sized to the content area.
func NewDetailModel(film swapi.Film, width, height int) DetailModel {
	m := DetailModel{film: film}
	m.viewport = viewport.New(width, height)
	m.viewport.Style = lipgloss.NewStyle().Padding(0, 2)
	m.viewport.SetContent(renderFilm(film, width-4))
	return m
}

func (m DetailModel) Init() tea.Cmd {
	return nil
}

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Header and status bar take one line each.
		m.viewport.Width = msg.Width
		m.viewport.Height = max(0, msg.Height-2)
		m.viewport.SetContent(renderFilm(m.film, msg.Width-4))
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view within the given dimensions.
func (m DetailModel) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render(m.viewport.View())
}

// renderFilm formats the film metadata block and species list.
func renderFilm(film swapi.Film, width int) string {
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	valueStyle := lipgloss.NewStyle().Foreground(ui.ColorText)
	subtleStyle := lipgloss.NewStyle().Foreground(ui.ColorSubtle)
	divider := ui.DimDivider(width)

	var lines []string

	lines = append(lines, ui.TitleStyle.Render(film.Title))
	lines = append(lines, divider)
	lines = append(lines, labelStyle.Render("Director: ")+valueStyle.Render(orDash(film.Director)))
	lines = append(lines, labelStyle.Render("Released: ")+valueStyle.Render(orDash(film.ReleaseDate)))
	lines = append(lines, divider)

	species := film.Species()
	lines = append(lines, labelStyle.Render(fmt.Sprintf("Species (%d)", len(species))))
	if len(species) == 0 {
		lines = append(lines, subtleStyle.Render("  No species recorded"))
	}
	for _, s := range species {
		line := "  " + valueStyle.Render(s.Name)
		var extra []string
		if s.Classification != "" {
			extra = append(extra, s.Classification)
		}
		if home := s.HomeworldName(); home != "" {
			extra = append(extra, "from "+home)
		}
		if len(extra) > 0 {
			line += subtleStyle.Render("  " + strings.Join(extra, " · "))
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
