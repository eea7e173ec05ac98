package query

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/samber/oops"

	"github.com/cinequery/cinequery/internal/cache"
	"github.com/cinequery/cinequery/internal/tmdb"
)

const minRecommendationRating = 7.0

// Client is the TMDb surface the engine consumes. *tmdb.Client satisfies
// it; tests substitute a stub.
type Client interface {
	SearchMovies(ctx context.Context, query string, year int) ([]tmdb.Movie, error)
	SearchTV(ctx context.Context, query string) ([]tmdb.TVShow, error)
	MovieDetails(ctx context.Context, id int) (*tmdb.MovieDetails, error)
	TVDetails(ctx context.Context, id int) (*tmdb.TVDetails, error)
	Trending(ctx context.Context, mediaType, window string) ([]tmdb.TrendingItem, error)
	DiscoverMovies(ctx context.Context, opts tmdb.DiscoverOptions) ([]tmdb.Movie, error)
	SimilarMovies(ctx context.Context, id int) ([]tmdb.Movie, error)
	SimilarTV(ctx context.Context, id int) ([]tmdb.TVShow, error)
	SearchPerson(ctx context.Context, query string) ([]tmdb.Person, error)
	PersonDetails(ctx context.Context, id int) (*tmdb.PersonDetails, error)
}

// Engine answers queries. The cache is optional; a nil cache disables
// answer reuse.
type Engine struct {
	tmdb  Client
	cache *cache.Cache
}

// NewEngine creates an Engine backed by client, caching answers in c when
// c is non-nil.
func NewEngine(client Client, c *cache.Cache) *Engine {
	return &Engine{tmdb: client, cache: c}
}

// Answer produces the markup answer for a query. includePeople appends a
// people section for title queries that mention industry people. The answer
// text stays inside the markup renderer's subset.
func (e *Engine) Answer(ctx context.Context, queryText string, includePeople bool) (string, error) {
	queryText = strings.TrimSpace(queryText)
	if queryText == "" {
		return "", oops.
			Code("INVALID_ARGS").
			Hint("Ask something about movies or TV shows").
			Errorf("query cannot be empty")
	}

	if e.cache != nil {
		if answer, ok := e.cache.Get(queryText); ok {
			slog.Debug("answer served from cache", "query", queryText)
			return answer, nil
		}
	}

	intent := Classify(queryText)
	slog.Debug("classified query", "query", queryText, "intent", intent.String())

	answer, err := e.dispatch(ctx, intent, queryText)
	if err != nil {
		return "", err
	}

	if includePeople && intent != IntentPersonInfo {
		answer += e.peopleSection(ctx, queryText)
	}

	if e.cache != nil {
		if cacheErr := e.cache.Set(queryText, answer); cacheErr != nil {
			slog.Warn("failed to cache answer", "query", queryText, "error", cacheErr)
		}
	}

	return answer, nil
}

func (e *Engine) dispatch(ctx context.Context, intent Intent, queryText string) (string, error) {
	switch intent {
	case IntentTrending:
		return e.trending(ctx)
	case IntentTitleInfo:
		return e.titleInfo(ctx, ExtractSubject(queryText))
	case IntentSimilar:
		return e.similar(ctx, ExtractSubject(queryText))
	case IntentPersonInfo:
		return e.person(ctx, ExtractSubject(queryText))
	default:
		return e.recommend(ctx, queryText)
	}
}

// trending fetches the movie and TV feeds concurrently; the two requests
// are independent and TMDb answers each in its own time.
func (e *Engine) trending(ctx context.Context) (string, error) {
	var movies, shows []tmdb.TrendingItem

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		movies, err = e.tmdb.Trending(groupCtx, "movie", "week")
		return err
	})

	group.Go(func() error {
		var err error
		shows, err = e.tmdb.Trending(groupCtx, "tv", "week")
		return err
	})

	if err := group.Wait(); err != nil {
		return "", err
	}

	return formatTrending(movies, shows), nil
}

func (e *Engine) titleInfo(ctx context.Context, subject string) (string, error) {
	movies, err := e.tmdb.SearchMovies(ctx, subject, 0)
	if err != nil {
		return "", err
	}

	if len(movies) > 0 {
		details, detailsErr := e.tmdb.MovieDetails(ctx, movies[0].ID)
		if detailsErr != nil {
			return "", detailsErr
		}
		return formatMovieInfo(details), nil
	}

	shows, err := e.tmdb.SearchTV(ctx, subject)
	if err != nil {
		return "", err
	}

	if len(shows) > 0 {
		details, detailsErr := e.tmdb.TVDetails(ctx, shows[0].ID)
		if detailsErr != nil {
			return "", detailsErr
		}
		return formatTVInfo(details), nil
	}

	return formatNotFound(subject), nil
}

func (e *Engine) similar(ctx context.Context, subject string) (string, error) {
	movies, err := e.tmdb.SearchMovies(ctx, subject, 0)
	if err != nil {
		return "", err
	}

	if len(movies) > 0 {
		similar, similarErr := e.tmdb.SimilarMovies(ctx, movies[0].ID)
		if similarErr != nil {
			return "", similarErr
		}
		if len(similar) > 0 {
			return formatSimilarMovies(movies[0].Title, similar), nil
		}
	}

	shows, err := e.tmdb.SearchTV(ctx, subject)
	if err != nil {
		return "", err
	}

	if len(shows) > 0 {
		similar, similarErr := e.tmdb.SimilarTV(ctx, shows[0].ID)
		if similarErr != nil {
			return "", similarErr
		}
		if len(similar) > 0 {
			return formatSimilarTV(shows[0].Name, similar), nil
		}
	}

	return formatNotFound(subject), nil
}

// recommend discovers well-rated titles for a genre named in the query and
// falls back to the trending feed when no genre is recognizable.
func (e *Engine) recommend(ctx context.Context, queryText string) (string, error) {
	genreID, genreText, ok := ExtractGenre(queryText)
	if !ok {
		slog.Debug("no genre recognized, falling back to trending", "query", queryText)
		return e.trending(ctx)
	}

	movies, err := e.tmdb.DiscoverMovies(ctx, tmdb.DiscoverOptions{
		GenreID:   genreID,
		MinRating: minRecommendationRating,
	})
	if err != nil {
		return "", err
	}

	if len(movies) == 0 {
		return formatNotFound(genreText), nil
	}

	return formatRecommendations(genreText, movies), nil
}

func (e *Engine) person(ctx context.Context, subject string) (string, error) {
	people, err := e.tmdb.SearchPerson(ctx, subject)
	if err != nil {
		return "", err
	}

	if len(people) == 0 {
		return formatNotFound(subject), nil
	}

	details, err := e.tmdb.PersonDetails(ctx, people[0].ID)
	if err != nil {
		return "", err
	}

	return formatPerson(details), nil
}

// peopleSection is best effort: a failed lookup degrades the answer, it
// does not fail it.
func (e *Engine) peopleSection(ctx context.Context, queryText string) string {
	subject := ExtractSubject(queryText)

	people, err := e.tmdb.SearchPerson(ctx, subject)
	if err != nil || len(people) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n## Related People\n")
	for _, p := range clip(people, 3) {
		line := "- **" + p.Name + "**"
		if p.KnownForDepartment != "" {
			line += " (" + p.KnownForDepartment + ")"
		}
		b.WriteString(line + " [TMDb](" + tmdbURL("person", p.ID) + ")\n")
	}

	return b.String()
}
