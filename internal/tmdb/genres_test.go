package tmdb_test

import (
	"testing"

	"github.com/cinequery/cinequery/internal/tmdb"
)

func TestGenreID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID int
		wantOK bool
	}{
		{"exact match", "Horror", 27, true},
		{"case insensitive", "horror", 27, true},
		{"alias", "sci-fi", 878, true},
		{"genre embedded in phrase", "some good sci-fi", 878, true},
		{"fuzzy misspelling", "thriler", 53, true},
		{"short word exact", "war", 10752, true},
		{"empty", "", 0, false},
		{"unknown", "zzzz", 0, false},
		{"too short for fuzzy", "xq", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tmdb.GenreID(tt.input)

			if ok != tt.wantOK {
				t.Fatalf("GenreID(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}

			if ok && id != tt.wantID {
				t.Errorf("GenreID(%q) = %d, want %d", tt.input, id, tt.wantID)
			}
		})
	}
}

func TestGenreNames_IncludesEveryTableEntry(t *testing.T) {
	names := tmdb.GenreNames()

	if len(names) == 0 {
		t.Fatal("GenreNames() is empty")
	}

	for _, name := range names {
		if _, ok := tmdb.GenreID(name); !ok {
			t.Errorf("GenreID(%q) did not resolve its own table entry", name)
		}
	}
}
