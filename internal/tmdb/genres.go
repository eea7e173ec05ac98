package tmdb

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

type genreEntry struct {
	Name string
	ID   int
}

// TMDb movie genre ids are fixed; the table is kept in a slice so lookups
// are deterministic.
var movieGenres = []genreEntry{
	{"Action", 28},
	{"Adventure", 12},
	{"Animation", 16},
	{"Comedy", 35},
	{"Crime", 80},
	{"Documentary", 99},
	{"Drama", 18},
	{"Family", 10751},
	{"Fantasy", 14},
	{"History", 36},
	{"Horror", 27},
	{"Mystery", 9648},
	{"Romance", 10749},
	{"Science Fiction", 878},
	{"Sci-Fi", 878},
	{"Thriller", 53},
	{"War", 10752},
	{"Western", 37},
}

type genreIndex []genreEntry

func (g genreIndex) String(i int) string { return strings.ToLower(g[i].Name) }
func (g genreIndex) Len() int            { return len(g) }

// GenreID resolves a genre name to its TMDb id. Matching is forgiving:
// exact (case-insensitive) first, then substring in either direction, then
// a fuzzy match so misspellings like "thriler" still resolve.
func GenreID(name string) (int, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}

	for _, g := range movieGenres {
		if strings.EqualFold(g.Name, name) {
			return g.ID, true
		}
	}

	lower := strings.ToLower(name)
	for _, g := range movieGenres {
		genreLower := strings.ToLower(g.Name)
		if strings.Contains(lower, genreLower) || strings.Contains(genreLower, lower) {
			return g.ID, true
		}
	}

	// Short inputs produce too many accidental subsequence hits.
	if len(lower) < 4 {
		return 0, false
	}

	matches := fuzzy.FindFrom(lower, genreIndex(movieGenres))
	if len(matches) == 0 {
		return 0, false
	}

	return movieGenres[matches[0].Index].ID, true
}

// GenreNames lists the recognized genre names in table order.
func GenreNames() []string {
	names := make([]string, 0, len(movieGenres))
	for _, g := range movieGenres {
		names = append(names, g.Name)
	}
	return names
}
