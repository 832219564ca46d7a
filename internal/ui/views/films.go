package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rayanxn/film-tui/internal/paging"
	"github.com/rayanxn/film-tui/internal/swapi"
	"github.com/rayanxn/film-tui/internal/ui"
)

const (
	noFilmsText = "No Film Found."
	errorText   = "An error occurred"
	loadingText = "Loading..."
)

// filmsFetchedMsg carries the result of one page fetch, tagged with the
// sequence number of the request that produced it.
type filmsFetchedMsg struct {
	seq  uint64
	conn swapi.FilmsConnection
	err  error
}

// FilmsModel shows one page of the film catalog with a title filter and
// Previous/Next controls.
type FilmsModel struct {
	fetcher swapi.FilmFetcher
	logger  zerolog.Logger
	nav     paging.State
	initial paging.Request
	films   []swapi.Film // current page window, replaced on every fetch
	visible []swapi.Film // films matching the search term
	input   textinput.Model
	table   table.Model
	spinner spinner.Model
	focused bool // true when the search input has focus
	loading bool
	err     error
}

// NewFilmsModel creates the films view and prepares the initial reset request.
func NewFilmsModel(fetcher swapi.FilmFetcher, pageSize int, logger zerolog.Logger) FilmsModel {
	ti := textinput.New()
	ti.Placeholder = "Search for anything..."
	ti.CharLimit = 100
	ti.Width = 40

	styles := table.DefaultStyles()
	styles.Header = ui.TableHeaderStyle
	styles.Selected = ui.TableSelectedStyle

	t := table.New(
		table.WithColumns(filmColumns(80)),
		table.WithFocused(true),
		table.WithStyles(styles),
	)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.SpinnerStyle

	nav, req := paging.New(pageSize).Issue()

	return FilmsModel{
		fetcher: fetcher,
		logger:  logger.With().Str("view", "films").Logger(),
		nav:     nav,
		initial: req,
		input:   ti,
		table:   t,
		spinner: s,
		loading: true,
	}
}

func (m FilmsModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchFilmsCmd(m.fetcher, m.initial),
	)
}

func (m FilmsModel) Update(msg tea.Msg) (FilmsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, nil

	case filmsFetchedMsg:
		if !m.nav.IsLatest(msg.seq) {
			m.logger.Debug().Uint64("seq", msg.seq).Msg("dropping stale response")
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Uint64("seq", msg.seq).Msg("error fetching films")
			m.err = msg.err
			return m, nil
		}
		m.nav, _ = m.nav.Apply(msg.seq, msg.conn)
		m.films = msg.conn.Films
		m.refreshRows()
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.loading || m.err != nil {
			return m, nil
		}

		if m.focused {
			switch msg.String() {
			case "esc", "enter":
				m.focused = false
				m.input.Blur()
				m.table.Focus()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.refreshRows()
			return m, cmd
		}

		switch {
		case key.Matches(msg, ui.FilmsKeys.Focus):
			m.focused = true
			m.table.Blur()
			m.input.Focus()
			return m, textinput.Blink
		case key.Matches(msg, ui.FilmsKeys.Next):
			if m.nextDisabled() {
				return m, nil
			}
			return m.navigate(m.nav.Next())
		case key.Matches(msg, ui.FilmsKeys.Previous):
			if m.previousDisabled() {
				return m, nil
			}
			return m.navigate(m.nav.Previous())
		case key.Matches(msg, ui.FilmsKeys.Grow):
			return m.navigate(m.nav.WithPageSize(m.nav.PageSize + 1))
		case key.Matches(msg, ui.FilmsKeys.Shrink):
			if m.nav.PageSize <= 1 {
				return m, nil
			}
			return m.navigate(m.nav.WithPageSize(m.nav.PageSize - 1))
		case key.Matches(msg, ui.FilmsKeys.Open):
			film, ok := m.selectedFilm()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg {
				return NavigateToDetailMsg{Film: film}
			}
		}

		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	if m.focused {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the films view within the given dimensions.
func (m FilmsModel) View(width, height int) string {
	var content string
	switch {
	case m.err != nil:
		content = lipgloss.NewStyle().Padding(1, 0).Render(ui.RenderError(errorText))
	case m.loading:
		content = lipgloss.NewStyle().Padding(1, 2).Render(m.spinner.View() + " " + loadingText)
	default:
		searchBar := lipgloss.NewStyle().Padding(1, 2).Render(m.input.View())
		pager := m.renderPager(width)

		tableHeight := height - lipgloss.Height(searchBar) - lipgloss.Height(pager) - 2
		if tableHeight < 1 {
			tableHeight = 1
		}
		m.table.SetColumns(filmColumns(width))
		m.table.SetHeight(tableHeight)

		body := lipgloss.NewStyle().Padding(0, 2).Render(m.table.View())
		content = searchBar + "\n" + body + "\n" + pager
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render(content)
}

// renderPager renders the Previous/Next buttons and a page summary line.
func (m FilmsModel) renderPager(width int) string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		ui.RenderButton("◂ Previous Page", m.previousDisabled()),
		"  ",
		ui.RenderButton("Next Page ▸", m.nextDisabled()),
	)
	summary := ui.SubtitleStyle.Render(fmt.Sprintf("Page %d  ·  %d per page  ·  %d films",
		m.nav.Page+1, m.nav.PageSize, m.nav.TotalCount))

	return ui.CenterHorizontal(width, buttons) + "\n" + ui.CenterHorizontal(width, summary)
}

// navigate switches to the next navigation state and fetches its page.
func (m FilmsModel) navigate(next paging.State) (FilmsModel, tea.Cmd) {
	if !m.nav.Changed(next) {
		return m, nil
	}
	nav, req := next.Issue()
	m.nav = nav
	m.loading = true

	m.logger.Debug().
		Stringer("direction", req.Direction).
		Stringer("vars", req.Variables).
		Int("page", nav.Page).
		Uint64("seq", req.Seq).
		Msg("page change")

	return m, tea.Batch(m.spinner.Tick, fetchFilmsCmd(m.fetcher, req))
}

// refreshRows refilters the page window and rebuilds the table rows.
func (m *FilmsModel) refreshRows() {
	m.visible = swapi.FilterByTitle(m.films, m.input.Value())

	rows := make([]table.Row, 0, len(m.visible))
	for _, f := range m.visible {
		rows = append(rows, table.Row{f.Title, f.Director, f.ReleaseDate})
	}
	if len(rows) == 0 {
		rows = append(rows, table.Row{noFilmsText, "", ""})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// selectedFilm returns the film under the table cursor, if any.
func (m FilmsModel) selectedFilm() (swapi.Film, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return swapi.Film{}, false
	}
	return m.visible[i], true
}

// previousDisabled mirrors hasPreviousPage of the latest response. Page 0
// has nowhere to go back to, whatever the server reports.
func (m FilmsModel) previousDisabled() bool {
	return !m.nav.HasPreviousPage || m.nav.Page == 0
}

// nextDisabled mirrors hasNextPage of the latest response.
func (m FilmsModel) nextDisabled() bool {
	return !m.nav.HasNextPage
}

// inputFocused reports whether the search input currently has focus.
func (m FilmsModel) inputFocused() bool {
	return m.focused
}

// filmColumns sizes the three table columns to the available width.
func filmColumns(width int) []table.Column {
	avail := width - 12
	if avail < 30 {
		avail = 30
	}
	titleW := avail * 45 / 100
	directorW := avail * 30 / 100
	dateW := avail - titleW - directorW

	return []table.Column{
		{Title: "Film Name", Width: titleW},
		{Title: "Director", Width: directorW},
		{Title: "Release Date", Width: dateW},
	}
}

func fetchFilmsCmd(fetcher swapi.FilmFetcher, req paging.Request) tea.Cmd {
	return func() tea.Msg {
		conn, err := fetcher.GetAllFilms(context.Background(), req.Variables)
		return filmsFetchedMsg{seq: req.Seq, conn: conn, err: err}
	}
}
