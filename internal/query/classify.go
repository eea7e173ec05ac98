// Package query turns a natural-language movie/TV question into a markup
// answer. It classifies the question, calls TMDb, and formats results using
// only the five patterns the display renderer understands.
package query

import "strings"

// Intent is the broad category of a user query.
type Intent int

const (
	IntentRecommendation Intent = iota
	IntentTrending
	IntentSimilar
	IntentTitleInfo
	IntentPersonInfo
)

func (i Intent) String() string {
	switch i {
	case IntentTrending:
		return "trending"
	case IntentSimilar:
		return "similar"
	case IntentTitleInfo:
		return "title_info"
	case IntentPersonInfo:
		return "person_info"
	default:
		return "recommendation"
	}
}

// Keyword tables, checked in order: trending, info (with a person
// sub-check), person, similar. Anything left over is treated as a
// recommendation request.
var (
	infoPatterns = []string{
		"tell me about", "information about", "details of", "details about",
		"what is", "who is", "synopsis of", "plot of", "describe",
		"rating of", "how long is", "when was", "who directed", "who played",
		"what genre", "rated",
	}

	personTerms = []string{
		"actor", "actress", "director", "who played", "who directed", "cast of",
	}

	similarPatterns = []string{
		"similar to", "movies like", "shows like", "films like", "something like",
	}

	trendingPatterns = []string{
		"trending", "popular", "top rated", "best of", "this week",
		"this month", "new releases", "what's hot", "what is popular",
	}
)

// Classify maps a query to an intent. Trending wins over the info phrases
// because "what is popular" reads as both; anything unrecognized is treated
// as a recommendation request.
func Classify(query string) Intent {
	q := strings.ToLower(query)

	if containsAny(q, trendingPatterns) {
		return IntentTrending
	}

	if containsAny(q, infoPatterns) {
		if containsAny(q, personTerms) {
			return IntentPersonInfo
		}
		return IntentTitleInfo
	}

	if containsAny(q, personTerms) {
		return IntentPersonInfo
	}

	if containsAny(q, similarPatterns) {
		return IntentSimilar
	}

	return IntentRecommendation
}

func containsAny(q string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(q, p) {
			return true
		}
	}
	return false
}

// Phrases stripped from a query when pulling out the title or person name
// it asks about.
var stripPhrases = append(append(append([]string{},
	infoPatterns...),
	similarPatterns...),
	"recommend", "suggestions for", "i want to know", "give me",
	"the movie", "the film", "the show", "the series", "please",
)

// Bare words dropped from an extracted subject. These show up as question
// filler ("movies similar to X") far more often than inside real titles.
var fillerWords = map[string]bool{
	"movie": true, "movies": true, "film": true, "films": true,
	"show": true, "shows": true, "series": true, "tv": true,
}

// ExtractSubject strips the recognized question phrasing from a query and
// returns what is left, which is the best guess at the title or name being
// asked about. Falls back to the trimmed query when stripping eats
// everything.
func ExtractSubject(query string) string {
	subject := strings.ToLower(query)

	for _, phrase := range stripPhrases {
		subject = strings.ReplaceAll(subject, phrase, " ")
	}

	subject = strings.Trim(subject, " \t?.!\"'")

	words := strings.Fields(subject)
	kept := words[:0]
	for _, word := range words {
		if !fillerWords[strings.Trim(word, "?.!,")] {
			kept = append(kept, word)
		}
	}
	subject = strings.Join(kept, " ")

	if subject == "" {
		return strings.TrimSpace(query)
	}

	return subject
}
