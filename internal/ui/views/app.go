package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rayanxn/film-tui/internal/config"
	"github.com/rayanxn/film-tui/internal/swapi"
	"github.com/rayanxn/film-tui/internal/ui"
)

// ViewState identifies which view is currently active.
type ViewState int

const (
	ViewFilms ViewState = iota
	ViewDetail
)

const (
	filmsStatus  = "/ search  |  p/n page  |  +/- page size  |  enter details  |  ? help  |  q quit"
	errorStatus  = "q quit"
	detailStatus = "j/k scroll  |  ? help  |  esc back"
)

// NavigateToDetailMsg is emitted by the films view to open a film.
type NavigateToDetailMsg struct{ Film swapi.Film }

// AppModel is the root model that routes to sub-views.
type AppModel struct {
	currentView ViewState
	viewHistory []ViewState
	width       int
	height      int
	filmsModel  FilmsModel
	detailModel DetailModel
	showHelp    bool
}

// NewAppModel creates the root model with the given config and film source.
func NewAppModel(cfg config.Config, fetcher swapi.FilmFetcher, logger zerolog.Logger) AppModel {
	return AppModel{
		currentView: ViewFilms,
		filmsModel:  NewFilmsModel(fetcher, cfg.PageSize, logger),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.filmsModel.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.propagateMsg(msg)

	case tea.KeyMsg:
		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch {
		case key.Matches(msg, ui.GlobalKeys.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, ui.GlobalKeys.Quit):
			if m.currentView == ViewFilms && !m.filmsModel.inputFocused() {
				return m, tea.Quit
			}
		case key.Matches(msg, ui.GlobalKeys.Back):
			if m.currentView == ViewFilms {
				if m.filmsModel.inputFocused() {
					return m.propagateMsg(msg)
				}
				return m, tea.Quit
			}
			return m.navigateBack()
		case key.Matches(msg, ui.GlobalKeys.Help):
			// Suppress when the search input is focused
			if m.currentView == ViewFilms && m.filmsModel.inputFocused() {
				return m.propagateMsg(msg)
			}
			m.showHelp = true
			return m, nil
		}

	case NavigateToDetailMsg:
		m = m.pushView(ViewDetail)
		m.detailModel = NewDetailModel(msg.Film, m.width, max(0, m.height-2))
		return m, m.detailModel.Init()

	case filmsFetchedMsg:
		// Fetches belong to the films view even while another view is shown.
		fm, cmd := m.filmsModel.Update(msg)
		m.filmsModel = fm
		return m, cmd
	}

	return m.propagateMsg(msg)
}

func (m AppModel) View() string {
	if m.width == 0 {
		return ""
	}

	header := ui.RenderHeader(m.width)

	// Content area = total height - header (1 line) - status bar (1 line)
	contentHeight := m.height - 2
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	var status string

	switch m.currentView {
	case ViewFilms:
		content = m.filmsModel.View(m.width, contentHeight)
		status = filmsStatus
		if m.filmsModel.err != nil {
			status = errorStatus
		}
	case ViewDetail:
		content = m.detailModel.View(m.width, contentHeight)
		status = detailStatus
	}

	if m.showHelp {
		content = m.renderHelpOverlay(m.width, contentHeight)
	}

	statusBar := ui.RenderStatusBar(m.width, status)
	return header + "\n" + content + "\n" + statusBar
}

// pushView saves current view and switches to a new one.
func (m AppModel) pushView(next ViewState) AppModel {
	m.viewHistory = append(m.viewHistory, m.currentView)
	m.currentView = next
	return m
}

// renderHelpOverlay returns a centered help box with context-sensitive keybindings.
func (m AppModel) renderHelpOverlay(width, height int) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	descStyle := lipgloss.NewStyle().Foreground(ui.ColorText)

	var bindings []key.Binding
	switch m.currentView {
	case ViewFilms:
		fk := ui.FilmsKeys
		bindings = []key.Binding{fk.Focus, fk.Previous, fk.Next, fk.Grow, fk.Shrink, fk.Open, ui.GlobalKeys.Quit}
	case ViewDetail:
		bindings = []key.Binding{ui.DetailKeys.Scroll, ui.GlobalKeys.Back}
	}

	// Always-available bindings
	bindings = append(bindings, ui.GlobalKeys.Help, ui.GlobalKeys.ForceQuit)

	var lines []string
	lines = append(lines, ui.TitleStyle.Render("Keybindings"))
	lines = append(lines, "")
	for _, b := range bindings {
		h := b.Help()
		line := keyStyle.Width(12).Render(h.Key) + descStyle.Render(h.Desc)
		lines = append(lines, line)
	}
	lines = append(lines, "")
	lines = append(lines, ui.HelpStyle.Render("Press any key to dismiss"))

	boxWidth := 42
	if width-4 < boxWidth {
		boxWidth = width - 4
	}
	box := ui.BorderedBoxStyle.Width(boxWidth).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// navigateBack pops the view stack and returns to the previous view.
func (m AppModel) navigateBack() (tea.Model, tea.Cmd) {
	if len(m.viewHistory) == 0 {
		return m, tea.Quit
	}
	m.currentView = m.viewHistory[len(m.viewHistory)-1]
	m.viewHistory = m.viewHistory[:len(m.viewHistory)-1]
	return m, nil
}

// propagateMsg forwards the message to the current sub-model.
func (m AppModel) propagateMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.currentView {
	case ViewFilms:
		fm, cmd := m.filmsModel.Update(msg)
		m.filmsModel = fm
		return m, cmd
	case ViewDetail:
		dm, cmd := m.detailModel.Update(msg)
		m.detailModel = dm
		return m, cmd
	}
	return m, nil
}
