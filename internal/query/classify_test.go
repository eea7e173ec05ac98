package query_test

import (
	"testing"

	"github.com/cinequery/cinequery/internal/query"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  query.Intent
	}{
		{"trending", "What movies are trending this week?", query.IntentTrending},
		{"popular", "what is popular right now", query.IntentTrending},
		{"recommendation", "Recommend psychological horror movies with good ratings", query.IntentRecommendation},
		{"similar", "Movies similar to Interstellar", query.IntentSimilar},
		{"title info", "Tell me about Star Wars: The Empire Strikes Back", query.IntentTitleInfo},
		{"title info question", "What is the plot of The Matrix?", query.IntentTitleInfo},
		{"person via info phrase", "Who directed Pulp Fiction and what else did they make?", query.IntentPersonInfo},
		{"person via term", "best roles of the actress Frances McDormand", query.IntentPersonInfo},
		{"ambiguous defaults to recommendation", "weekend plans", query.IntentRecommendation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := query.Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractSubject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"info phrase stripped", "Tell me about Star Wars: The Empire Strikes Back", "star wars: the empire strikes back"},
		{"similar phrase and filler stripped", "Movies similar to Interstellar", "interstellar"},
		{"question mark trimmed", "who directed Pulp Fiction?", "pulp fiction"},
		{"nothing to strip", "Severance", "severance"},
		{"everything stripped falls back to query", "tell me about", "tell me about"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := query.ExtractSubject(tt.input); got != tt.want {
				t.Errorf("ExtractSubject(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractGenre(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantID    int
		wantMatch string
		wantOK    bool
	}{
		{"single word", "recommend horror movies", 27, "horror", true},
		{"plural", "any good comedies tonight", 35, "comedies", true},
		{"two words", "best science fiction of the decade", 878, "science fiction", true},
		{"no genre", "what should I watch", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, match, ok := query.ExtractGenre(tt.input)

			if ok != tt.wantOK {
				t.Fatalf("ExtractGenre(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}

			if ok && (id != tt.wantID || match != tt.wantMatch) {
				t.Errorf("ExtractGenre(%q) = %d, %q, want %d, %q", tt.input, id, match, tt.wantID, tt.wantMatch)
			}
		})
	}
}
