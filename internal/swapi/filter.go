package swapi

import "strings"

// FilterByTitle returns the films whose title contains term, ignoring case.
// Only the title is matched. An empty term keeps every film. The result is
// always a new slice.
func FilterByTitle(films []Film, term string) []Film {
	needle := strings.ToLower(term)
	out := make([]Film, 0, len(films))
	for _, f := range films {
		if needle == "" || strings.Contains(strings.ToLower(f.Title), needle) {
			out = append(out, f)
		}
	}
	return out
}
