// Package paging derives cursor-pagination requests from navigation events.
//
// Every function here is pure: callers feed in a navigation event, get back
// the next State and, when a fetch is needed, the Request to send.
package paging

import "github.com/rayanxn/film-tui/internal/swapi"

// DefaultPageSize is used when no positive page size is configured.
const DefaultPageSize = 3

// Direction is the kind of step a request represents.
type Direction int

const (
	// Reset fetches the first page with no cursor.
	Reset Direction = iota
	// Forward fetches the page after the current end cursor.
	Forward
	// Backward fetches the page before the current start cursor.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "reset"
	}
}

// Cursors is the start/end cursor pair of the most recently applied page.
type Cursors struct {
	Start string
	End   string
}

// Request is one fetch to issue, tagged with its sequence number.
type Request struct {
	Seq       uint64
	Direction Direction
	Variables swapi.Variables
}

// State is the navigation state of the film table.
type State struct {
	Page            int
	PageSize        int
	Cursors         Cursors
	HasNextPage     bool
	HasPreviousPage bool
	TotalCount      int

	prevPage int
	seq      uint64
}

// New returns the state for page 0 with the given page size.
func New(pageSize int) State {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return State{PageSize: pageSize}
}

// Next moves one page forward.
func (s State) Next() State {
	s.Page++
	return s
}

// Previous moves one page back, stopping at page 0.
func (s State) Previous() State {
	if s.Page > 0 {
		s.Page--
	}
	return s
}

// WithPageSize changes the page size and returns to page 0 with no cursors,
// so the next Issue produces a Reset request.
func (s State) WithPageSize(n int) State {
	if n < 1 {
		n = 1
	}
	s.PageSize = n
	s.Page = 0
	s.prevPage = 0
	s.Cursors = Cursors{}
	return s
}

// Derive picks the request variables for moving from prevPage to page.
// Exactly one of the forward, backward or reset variable sets is produced.
func Derive(page, prevPage, pageSize int, cursors Cursors) (Direction, swapi.Variables) {
	size := pageSize
	switch {
	case page > prevPage:
		vars := swapi.Variables{First: &size}
		if cursors.End != "" {
			after := cursors.End
			vars.After = &after
		}
		return Forward, vars
	case page < prevPage:
		vars := swapi.Variables{Last: &size}
		if cursors.Start != "" {
			before := cursors.Start
			vars.Before = &before
		}
		return Backward, vars
	default:
		return Reset, swapi.Variables{First: &size}
	}
}

// Issue derives the request for the current page, records the page as the
// previous one and stamps the request with a new sequence number.
func (s State) Issue() (State, Request) {
	dir, vars := Derive(s.Page, s.prevPage, s.PageSize, s.Cursors)
	s.prevPage = s.Page
	s.seq++
	return s, Request{Seq: s.seq, Direction: dir, Variables: vars}
}

// IsLatest reports whether seq belongs to the most recently issued request.
func (s State) IsLatest(seq uint64) bool {
	return seq != 0 && seq == s.seq
}

// Apply records the cursors and page flags of a response. Responses to any
// request other than the latest are rejected and the state is unchanged.
func (s State) Apply(seq uint64, conn swapi.FilmsConnection) (State, bool) {
	if !s.IsLatest(seq) {
		return s, false
	}
	s.Cursors = Cursors{
		Start: conn.PageInfo.StartCursor,
		End:   conn.PageInfo.EndCursor,
	}
	s.HasNextPage = conn.PageInfo.HasNextPage
	s.HasPreviousPage = conn.PageInfo.HasPreviousPage
	s.TotalCount = conn.TotalCount
	return s, true
}

// Changed reports whether next differs from s in a way that needs a fetch.
func (s State) Changed(next State) bool {
	return s.Page != next.Page || s.PageSize != next.PageSize
}
