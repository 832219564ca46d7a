package swapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func titles(films []Film) []string {
	out := make([]string, len(films))
	for i, f := range films {
		out[i] = f.Title
	}
	return out
}

func TestFilterByTitle(t *testing.T) {
	t.Parallel()

	films := []Film{
		{Title: "A New Hope", Director: "George Lucas"},
		{Title: "The Empire Strikes Back", Director: "Irvin Kershner"},
		{Title: "Return of the Jedi", Director: "Richard Marquand"},
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "single match", term: "empire", want: []string{"The Empire Strikes Back"}},
		{name: "case insensitive", term: "JEDI", want: []string{"Return of the Jedi"}},
		{name: "empty term keeps page", term: "", want: []string{"A New Hope", "The Empire Strikes Back", "Return of the Jedi"}},
		{name: "several matches", term: "e", want: []string{"A New Hope", "The Empire Strikes Back", "Return of the Jedi"}},
		{name: "director is not matched", term: "lucas", want: []string{}},
		{name: "no match", term: "phantom", want: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, titles(FilterByTitle(films, tt.term)))
		})
	}
}

func TestFilterByTitle_Idempotent(t *testing.T) {
	t.Parallel()

	films := []Film{
		{Title: "Attack of the Clones"},
		{Title: "Revenge of the Sith"},
		{Title: "The Phantom Menace"},
	}
	for _, term := range []string{"", "of the", "SITH", "x"} {
		once := FilterByTitle(films, term)
		twice := FilterByTitle(once, term)
		assert.Equal(t, once, twice, "term %q", term)
	}
}

func TestFilterByTitle_ReturnsFreshSlice(t *testing.T) {
	t.Parallel()

	films := []Film{{Title: "A New Hope"}}
	out := FilterByTitle(films, "")
	out[0].Title = "changed"
	assert.Equal(t, "A New Hope", films[0].Title)
}
