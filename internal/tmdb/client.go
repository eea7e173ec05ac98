// Package tmdb is a thin client for The Movie Database v3 API, covering the
// endpoints the answer pipeline needs: search, details, trending, discover,
// similar titles, and people.
package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/samber/oops"
	"resty.dev/v3"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultLanguage = "en-US"

	// TMDb rate limits aggressively; a single retry honoring Retry-After is
	// enough for the request volumes one query produces.
	retryAfterFallback = 1 * time.Second
)

// Client calls the TMDb API. The zero value is not usable; construct with
// NewClient.
type Client struct {
	http     *resty.Client
	apiKey   string
	language string
}

// NewClient creates a Client authenticated with apiKey. An empty language
// defaults to en-US.
func NewClient(apiKey, language string) *Client {
	if language == "" {
		language = defaultLanguage
	}

	return &Client{
		http:     resty.New().SetBaseURL(defaultBaseURL),
		apiKey:   apiKey,
		language: language,
	}
}

// SearchMovies searches movies by title. year narrows results when > 0.
func (c *Client) SearchMovies(ctx context.Context, query string, year int) ([]Movie, error) {
	params := map[string]string{"query": query}
	if year > 0 {
		params["year"] = strconv.Itoa(year)
	}

	var out movieResults
	if err := c.get(ctx, "/search/movie", params, &out); err != nil {
		return nil, err
	}

	return out.Results, nil
}

// SearchTV searches TV shows by name.
func (c *Client) SearchTV(ctx context.Context, query string) ([]TVShow, error) {
	var out tvResults
	if err := c.get(ctx, "/search/tv", map[string]string{"query": query}, &out); err != nil {
		return nil, err
	}

	return out.Results, nil
}

// MovieDetails fetches one movie with credits, similar titles, videos, and
// release dates appended.
func (c *Client) MovieDetails(ctx context.Context, id int) (*MovieDetails, error) {
	params := map[string]string{"append_to_response": "credits,similar,videos,release_dates"}

	out := &MovieDetails{}
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), params, out); err != nil {
		return nil, err
	}

	return out, nil
}

// TVDetails fetches one TV show with credits, similar shows, videos, and
// content ratings appended.
func (c *Client) TVDetails(ctx context.Context, id int) (*TVDetails, error) {
	params := map[string]string{"append_to_response": "credits,similar,videos,content_ratings"}

	out := &TVDetails{}
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", id), params, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Trending fetches the trending feed. Unknown media types fall back to
// "all" and unknown windows to "week", matching what the API accepts.
func (c *Client) Trending(ctx context.Context, mediaType, window string) ([]TrendingItem, error) {
	if mediaType != "all" && mediaType != "movie" && mediaType != "tv" {
		mediaType = "all"
	}
	if window != "day" && window != "week" {
		window = "week"
	}

	var out trendingResults
	if err := c.get(ctx, fmt.Sprintf("/trending/%s/%s", mediaType, window), nil, &out); err != nil {
		return nil, err
	}

	return out.Results, nil
}

// DiscoverOptions filter a movie discover request.
type DiscoverOptions struct {
	GenreID   int
	MinRating float64
	YearFrom  int
	YearTo    int
}

// DiscoverMovies lists well-rated movies for a genre, best rated first.
func (c *Client) DiscoverMovies(ctx context.Context, opts DiscoverOptions) ([]Movie, error) {
	params := map[string]string{
		"sort_by":          "vote_average.desc",
		"vote_average.gte": strconv.FormatFloat(opts.MinRating, 'f', 1, 64),
	}
	if opts.GenreID > 0 {
		params["with_genres"] = strconv.Itoa(opts.GenreID)
	}
	if opts.YearFrom > 1900 {
		params["primary_release_date.gte"] = fmt.Sprintf("%d-01-01", opts.YearFrom)
	}
	if opts.YearTo > 1900 {
		params["primary_release_date.lte"] = fmt.Sprintf("%d-12-31", opts.YearTo)
	}

	var out movieResults
	if err := c.get(ctx, "/discover/movie", params, &out); err != nil {
		return nil, err
	}

	return out.Results, nil
}

// SimilarMovies lists movies similar to the given movie.
func (c *Client) SimilarMovies(ctx context.Context, id int) ([]Movie, error) {
	var out movieResults
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/similar", id), nil, &out); err != nil {
		return nil, err
	}

	return out.Results, nil
}

// SimilarTV lists TV shows similar to the given show.
func (c *Client) SimilarTV(ctx context.Context, id int) ([]TVShow, error) {
	var out tvResults
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/similar", id), nil, &out); err != nil {
		return nil, err
	}

	return out.Results, nil
}

// SearchPerson searches people by name.
func (c *Client) SearchPerson(ctx context.Context, query string) ([]Person, error) {
	var out personResults
	if err := c.get(ctx, "/search/person", map[string]string{"query": query}, &out); err != nil {
		return nil, err
	}

	return out.Results, nil
}

// PersonDetails fetches one person with combined credits appended.
func (c *Client) PersonDetails(ctx context.Context, id int) (*PersonDetails, error) {
	params := map[string]string{"append_to_response": "combined_credits"}

	out := &PersonDetails{}
	if err := c.get(ctx, fmt.Sprintf("/person/%d", id), params, out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out any) error {
	for attempt := 0; ; attempt++ {
		request := c.http.R().
			SetContext(ctx).
			SetQueryParam("api_key", c.apiKey).
			SetQueryParam("language", c.language).
			SetResult(out)

		for key, value := range params {
			if value != "" {
				request.SetQueryParam(key, value)
			}
		}

		response, err := request.Get(endpoint)
		if err != nil {
			return oops.
				Code("TMDB_REQUEST_FAILED").
				With("endpoint", endpoint).
				Wrapf(err, "requesting tmdb endpoint %q", endpoint)
		}

		if response.StatusCode() == http.StatusTooManyRequests && attempt == 0 {
			if waitErr := waitRetryAfter(ctx, response.Header().Get("Retry-After")); waitErr != nil {
				return waitErr
			}

			continue
		}

		if response.StatusCode() == http.StatusNotFound {
			return oops.
				Code("NOT_FOUND").
				With("endpoint", endpoint).
				Errorf("tmdb has no entry for %q", endpoint)
		}

		if response.IsError() {
			return oops.
				Code("TMDB_REQUEST_FAILED").
				With("endpoint", endpoint).
				With("status", response.StatusCode()).
				Hint("Check the tmdb_api_key config value").
				Errorf("tmdb returned status %d for %q", response.StatusCode(), endpoint)
		}

		return nil
	}
}

func waitRetryAfter(ctx context.Context, header string) error {
	wait := retryAfterFallback
	if seconds, err := strconv.Atoi(header); err == nil && seconds >= 0 {
		wait = time.Duration(seconds) * time.Second
	}

	select {
	case <-ctx.Done():
		return oops.
			Code("TMDB_REQUEST_FAILED").
			Wrapf(ctx.Err(), "waiting out tmdb rate limit")
	case <-time.After(wait):
		return nil
	}
}
