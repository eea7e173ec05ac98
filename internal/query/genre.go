package query

import (
	"strings"

	"github.com/cinequery/cinequery/internal/tmdb"
)

// Common query words that should never be fuzzy-matched against the genre
// table.
var genreStopwords = map[string]bool{
	"movie": true, "movies": true, "film": true, "films": true,
	"show": true, "shows": true, "series": true, "season": true,
	"good": true, "best": true, "great": true, "some": true, "any": true,
	"recommend": true, "suggest": true, "watch": true, "watching": true,
	"want": true, "with": true, "about": true, "that": true, "this": true,
	"what": true, "like": true, "something": true, "really": true,
	"highly": true, "rated": true, "rating": true, "please": true,
	"tonight": true, "classic": true, "recent": true,
}

// ExtractGenre scans a query for a recognizable genre, preferring two-word
// names ("science fiction") over single words. Returns the TMDb genre id
// and the text that matched.
func ExtractGenre(queryText string) (int, string, bool) {
	words := tokenize(queryText)

	for i := 0; i+1 < len(words); i++ {
		bigram := words[i] + " " + words[i+1]
		if genreStopwords[words[i]] || genreStopwords[words[i+1]] {
			continue
		}
		if id, ok := tmdb.GenreID(bigram); ok {
			return id, bigram, true
		}
	}

	for _, word := range words {
		if genreStopwords[word] || len(word) < 3 {
			continue
		}
		if id, ok := tmdb.GenreID(singular(word)); ok {
			return id, word, true
		}
	}

	return 0, "", false
}

func tokenize(s string) []string {
	s = strings.ToLower(s)

	return strings.FieldsFunc(s, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return false
		default:
			return true
		}
	})
}

// singular undoes the plural forms that show up in queries ("comedies",
// "thrillers") so they still hit the genre table.
func singular(word string) string {
	if strings.HasSuffix(word, "ies") {
		return strings.TrimSuffix(word, "ies") + "y"
	}
	if strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") {
		return strings.TrimSuffix(word, "s")
	}
	return word
}
