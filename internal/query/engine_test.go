package query_test

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/cinequery/cinequery/internal/cache"
	"github.com/cinequery/cinequery/internal/lint"
	"github.com/cinequery/cinequery/internal/markup"
	"github.com/cinequery/cinequery/internal/query"
	"github.com/cinequery/cinequery/internal/tmdb"
)

// stubClient satisfies query.Client with per-method function fields; unset
// methods return empty results.
type stubClient struct {
	mu sync.Mutex

	searchMovies   func(query string, year int) ([]tmdb.Movie, error)
	searchTV       func(query string) ([]tmdb.TVShow, error)
	movieDetails   func(id int) (*tmdb.MovieDetails, error)
	tvDetails      func(id int) (*tmdb.TVDetails, error)
	trending       func(mediaType, window string) ([]tmdb.TrendingItem, error)
	discoverMovies func(opts tmdb.DiscoverOptions) ([]tmdb.Movie, error)
	similarMovies  func(id int) ([]tmdb.Movie, error)
	similarTV      func(id int) ([]tmdb.TVShow, error)
	searchPerson   func(query string) ([]tmdb.Person, error)
	personDetails  func(id int) (*tmdb.PersonDetails, error)

	trendingCalls []string
}

func (s *stubClient) SearchMovies(_ context.Context, q string, year int) ([]tmdb.Movie, error) {
	if s.searchMovies == nil {
		return nil, nil
	}
	return s.searchMovies(q, year)
}

func (s *stubClient) SearchTV(_ context.Context, q string) ([]tmdb.TVShow, error) {
	if s.searchTV == nil {
		return nil, nil
	}
	return s.searchTV(q)
}

func (s *stubClient) MovieDetails(_ context.Context, id int) (*tmdb.MovieDetails, error) {
	return s.movieDetails(id)
}

func (s *stubClient) TVDetails(_ context.Context, id int) (*tmdb.TVDetails, error) {
	return s.tvDetails(id)
}

func (s *stubClient) Trending(_ context.Context, mediaType, window string) ([]tmdb.TrendingItem, error) {
	s.mu.Lock()
	s.trendingCalls = append(s.trendingCalls, mediaType+"/"+window)
	s.mu.Unlock()

	if s.trending == nil {
		return nil, nil
	}
	return s.trending(mediaType, window)
}

func (s *stubClient) DiscoverMovies(_ context.Context, opts tmdb.DiscoverOptions) ([]tmdb.Movie, error) {
	return s.discoverMovies(opts)
}

func (s *stubClient) SimilarMovies(_ context.Context, id int) ([]tmdb.Movie, error) {
	return s.similarMovies(id)
}

func (s *stubClient) SimilarTV(_ context.Context, id int) ([]tmdb.TVShow, error) {
	return s.similarTV(id)
}

func (s *stubClient) SearchPerson(_ context.Context, q string) ([]tmdb.Person, error) {
	if s.searchPerson == nil {
		return nil, nil
	}
	return s.searchPerson(q)
}

func (s *stubClient) PersonDetails(_ context.Context, id int) (*tmdb.PersonDetails, error) {
	return s.personDetails(id)
}

func trendingStub() func(mediaType, window string) ([]tmdb.TrendingItem, error) {
	return func(mediaType, _ string) ([]tmdb.TrendingItem, error) {
		if mediaType == "movie" {
			return []tmdb.TrendingItem{
				{ID: 1, Title: "Dune: Part Two", ReleaseDate: "2024-02-27", VoteAverage: 8.2},
			}, nil
		}
		return []tmdb.TrendingItem{
			{ID: 2, Name: "Severance", FirstAirDate: "2022-02-18", VoteAverage: 8.4},
		}, nil
	}
}

func TestEngine_TrendingFansOutToMoviesAndTV(t *testing.T) {
	client := &stubClient{trending: trendingStub()}
	engine := query.NewEngine(client, nil)

	answer, err := engine.Answer(context.Background(), "what's trending this week?", false)
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}

	for _, want := range []string{
		"# Trending This Week",
		"## Movies",
		"## TV Shows",
		"**Dune: Part Two** (2024)",
		"**Severance** (2022)",
		"https://www.themoviedb.org/movie/1",
		"https://www.themoviedb.org/tv/2",
	} {
		if !strings.Contains(answer, want) {
			t.Errorf("answer missing %q:\n%s", want, answer)
		}
	}

	if len(client.trendingCalls) != 2 {
		t.Errorf("trending calls = %v, want movie and tv feeds", client.trendingCalls)
	}
}

func TestEngine_CachesAnswers(t *testing.T) {
	client := &stubClient{trending: trendingStub()}

	c, err := cache.Load(filepath.Join(t.TempDir(), "cache.json"), 7)
	if err != nil {
		t.Fatal(err)
	}

	engine := query.NewEngine(client, c)

	first, err := engine.Answer(context.Background(), "trending now", false)
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}

	second, err := engine.Answer(context.Background(), "Trending Now", false)
	if err != nil {
		t.Fatalf("Answer() second call error = %v", err)
	}

	if first != second {
		t.Error("cached answer differs from original")
	}

	if got := len(client.trendingCalls); got != 2 {
		t.Errorf("trending calls = %d, want 2 (second answer should come from cache)", got)
	}
}

func TestEngine_TitleInfoFallsBackToTV(t *testing.T) {
	client := &stubClient{
		searchTV: func(string) ([]tmdb.TVShow, error) {
			return []tmdb.TVShow{{ID: 95396, Name: "Severance", FirstAirDate: "2022-02-18"}}, nil
		},
		tvDetails: func(id int) (*tmdb.TVDetails, error) {
			if id != 95396 {
				t.Errorf("tvDetails id = %d, want 95396", id)
			}
			return &tmdb.TVDetails{
				TVShow:  tmdb.TVShow{ID: 95396, Name: "Severance", FirstAirDate: "2022-02-18", VoteAverage: 8.4},
				Tagline: "Who are you when you're not at work?",
				Status:  "Returning Series",
			}, nil
		},
	}
	engine := query.NewEngine(client, nil)

	answer, err := engine.Answer(context.Background(), "tell me about Severance", false)
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}

	for _, want := range []string{
		"# Severance (2022)",
		"*Who are you when you're not at work?*",
		"**Status:** Returning Series",
	} {
		if !strings.Contains(answer, want) {
			t.Errorf("answer missing %q:\n%s", want, answer)
		}
	}
}

func TestEngine_RecommendUsesExtractedGenre(t *testing.T) {
	client := &stubClient{
		discoverMovies: func(opts tmdb.DiscoverOptions) ([]tmdb.Movie, error) {
			if opts.GenreID != 27 {
				t.Errorf("GenreID = %d, want 27", opts.GenreID)
			}
			if opts.MinRating != 7.0 {
				t.Errorf("MinRating = %v, want 7.0", opts.MinRating)
			}
			return []tmdb.Movie{
				{ID: 310131, Title: "The Witch", ReleaseDate: "2015-02-16", VoteAverage: 7.0},
			}, nil
		},
	}
	engine := query.NewEngine(client, nil)

	answer, err := engine.Answer(context.Background(), "recommend horror with good ratings", false)
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}

	if !strings.Contains(answer, "# Horror Picks") || !strings.Contains(answer, "**The Witch**") {
		t.Errorf("unexpected answer:\n%s", answer)
	}
}

func TestEngine_NothingFound(t *testing.T) {
	engine := query.NewEngine(&stubClient{}, nil)

	answer, err := engine.Answer(context.Background(), "tell me about xyzzy", false)
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}

	if !strings.Contains(answer, "# No Results") {
		t.Errorf("answer = %q, want a no-results message", answer)
	}
}

func TestEngine_EmptyQueryIsAnError(t *testing.T) {
	engine := query.NewEngine(&stubClient{}, nil)

	if _, err := engine.Answer(context.Background(), "   ", false); err == nil {
		t.Fatal("Answer() error = nil, want invalid args error")
	}
}

func TestEngine_IncludePeopleAppendsSection(t *testing.T) {
	client := &stubClient{
		searchMovies: func(string, int) ([]tmdb.Movie, error) {
			return []tmdb.Movie{{ID: 680, Title: "Pulp Fiction", ReleaseDate: "1994-09-10"}}, nil
		},
		movieDetails: func(int) (*tmdb.MovieDetails, error) {
			return &tmdb.MovieDetails{
				Movie: tmdb.Movie{ID: 680, Title: "Pulp Fiction", ReleaseDate: "1994-09-10", VoteAverage: 8.5},
			}, nil
		},
		searchPerson: func(string) ([]tmdb.Person, error) {
			return []tmdb.Person{{ID: 138, Name: "Quentin Tarantino", KnownForDepartment: "Directing"}}, nil
		},
	}
	engine := query.NewEngine(client, nil)

	answer, err := engine.Answer(context.Background(), "tell me about Pulp Fiction", true)
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}

	if !strings.Contains(answer, "## Related People") || !strings.Contains(answer, "**Quentin Tarantino** (Directing)") {
		t.Errorf("answer missing people section:\n%s", answer)
	}
}

// Whatever the engine produces has to survive the display renderer, so every
// answer shape is checked against the subset linter and rendered once.
func TestEngine_AnswersStayInsideRendererSubset(t *testing.T) {
	client := &stubClient{
		trending: trendingStub(),
		searchMovies: func(q string, _ int) ([]tmdb.Movie, error) {
			if strings.Contains(q, "interstellar") {
				return []tmdb.Movie{{ID: 157336, Title: "Interstellar", ReleaseDate: "2014-11-05"}}, nil
			}
			return nil, nil
		},
		movieDetails: func(int) (*tmdb.MovieDetails, error) {
			return &tmdb.MovieDetails{
				Movie: tmdb.Movie{
					ID: 157336, Title: "Interstellar", ReleaseDate: "2014-11-05",
					VoteAverage: 8.4, VoteCount: 34000,
					Overview: "A team of explorers travel through a wormhole in space.",
				},
				Tagline: "Mankind was born on Earth. It was never meant to die here.",
				Runtime: 169,
				Genres:  []tmdb.Genre{{ID: 18, Name: "Drama"}, {ID: 878, Name: "Science Fiction"}},
				Credits: tmdb.Credits{
					Cast: []tmdb.CastMember{{Name: "Matthew McConaughey", Character: "Cooper"}},
					Crew: []tmdb.CrewMember{{Name: "Christopher Nolan", Job: "Director"}},
				},
			}, nil
		},
		similarMovies: func(int) ([]tmdb.Movie, error) {
			return []tmdb.Movie{{ID: 286217, Title: "The Martian", ReleaseDate: "2015-09-30", VoteAverage: 7.7}}, nil
		},
	}
	engine := query.NewEngine(client, nil)

	queries := []string{
		"what's trending this week?",
		"tell me about Interstellar",
		"movies similar to Interstellar",
		"tell me about nothing that exists",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			answer, err := engine.Answer(context.Background(), q, false)
			if err != nil {
				t.Fatalf("Answer(%q) error = %v", q, err)
			}

			if findings := lint.Check([]byte(answer)); len(findings) != 0 {
				t.Errorf("answer for %q leaves the subset: %v\n%s", q, findings, answer)
			}

			html := markup.Render(answer)
			if !strings.Contains(html, "<h1>") {
				t.Errorf("rendered answer for %q has no top heading:\n%s", q, html)
			}
		})
	}
}
