package swapi

import (
	"fmt"
	"strings"
)

// Planet is a species homeworld.
type Planet struct {
	Name string `json:"name"`
}

// Species represents a species appearing in a film.
type Species struct {
	Name           string  `json:"name"`
	Classification string  `json:"classification"`
	Homeworld      *Planet `json:"homeworld"` // null for species without a known homeworld
}

// HomeworldName returns the homeworld name, or "" when unknown.
func (s Species) HomeworldName() string {
	if s.Homeworld == nil {
		return ""
	}
	return s.Homeworld.Name
}

// SpeciesConnection wraps the species list of a film.
type SpeciesConnection struct {
	Species []Species `json:"species"`
}

// Film represents a single film from the catalog.
type Film struct {
	Title             string            `json:"title"`
	Director          string            `json:"director"`
	ReleaseDate       string            `json:"releaseDate"`
	SpeciesConnection SpeciesConnection `json:"speciesConnection"`
}

// Species returns the species list of the film.
func (f Film) Species() []Species {
	return f.SpeciesConnection.Species
}

// PageInfo holds the Relay-style page-existence flags and edge cursors.
type PageInfo struct {
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	StartCursor     string `json:"startCursor"`
	EndCursor       string `json:"endCursor"`
}

// FilmsConnection is one page of the allFilms connection.
type FilmsConnection struct {
	Films      []Film   `json:"films"`
	TotalCount int      `json:"totalCount"`
	PageInfo   PageInfo `json:"pageInfo"`
}

// Variables is the request-variable tuple for GetAllFilms. Nil fields are
// omitted and read as null by the server.
type Variables struct {
	First  *int    `json:"first,omitempty"`
	After  *string `json:"after,omitempty"`
	Last   *int    `json:"last,omitempty"`
	Before *string `json:"before,omitempty"`
}

// Key returns a stable representation of the tuple, used as a cache key.
func (v Variables) Key() string {
	parts := make([]string, 0, 4)
	if v.First != nil {
		parts = append(parts, fmt.Sprintf("first=%d", *v.First))
	}
	if v.After != nil {
		parts = append(parts, "after="+*v.After)
	}
	if v.Last != nil {
		parts = append(parts, fmt.Sprintf("last=%d", *v.Last))
	}
	if v.Before != nil {
		parts = append(parts, "before="+*v.Before)
	}
	return strings.Join(parts, "&")
}

// String implements fmt.Stringer for log output.
func (v Variables) String() string {
	if k := v.Key(); k != "" {
		return k
	}
	return "<none>"
}
