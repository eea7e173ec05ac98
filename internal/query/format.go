package query

import (
	"fmt"
	"strings"

	"github.com/cinequery/cinequery/internal/tmdb"
)

// Formatting helpers. Everything emitted here must stay inside the markup
// renderer's subset: headers 1-3, bold, italic, links, and flat "- " lists.
// No tables, code spans, or ordered lists; the results page renders nothing
// else.

const (
	maxTrendingItems = 10
	maxListItems     = 8
	maxSimilarItems  = 5
	maxCastMembers   = 10
	maxOverviewRunes = 280
)

func tmdbURL(mediaType string, id int) string {
	return fmt.Sprintf("https://www.themoviedb.org/%s/%d", mediaType, id)
}

func formatTrending(movies, shows []tmdb.TrendingItem) string {
	var b strings.Builder

	b.WriteString("# Trending This Week\n")

	if len(movies) > 0 {
		b.WriteString("\n## Movies\n")
		for _, item := range clip(movies, maxTrendingItems) {
			fmt.Fprintf(&b, "- **%s** (%s) rated %.1f/10 [TMDb](%s)\n",
				item.DisplayTitle(), item.Year(), item.VoteAverage, tmdbURL("movie", item.ID))
		}
	}

	if len(shows) > 0 {
		b.WriteString("\n## TV Shows\n")
		for _, item := range clip(shows, maxTrendingItems) {
			fmt.Fprintf(&b, "- **%s** (%s) rated %.1f/10 [TMDb](%s)\n",
				item.DisplayTitle(), item.Year(), item.VoteAverage, tmdbURL("tv", item.ID))
		}
	}

	if len(movies) == 0 && len(shows) == 0 {
		b.WriteString("\nNothing trending right now. Try again in a bit.\n")
	}

	return b.String()
}

func formatMovieInfo(d *tmdb.MovieDetails) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s (%s)\n", d.Title, d.Year())

	if d.Tagline != "" {
		fmt.Fprintf(&b, "\n*%s*\n", d.Tagline)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "**Rating:** %.1f/10 from %d votes\n", d.VoteAverage, d.VoteCount)
	fmt.Fprintf(&b, "**Certification:** %s\n", d.Certification())
	if d.Runtime > 0 {
		fmt.Fprintf(&b, "**Runtime:** %d min\n", d.Runtime)
	}
	if len(d.Genres) > 0 {
		fmt.Fprintf(&b, "**Genres:** %s\n", joinGenres(d.Genres))
	}
	fmt.Fprintf(&b, "**Director:** %s\n", d.Director())
	if writers := d.Writers(); len(writers) > 0 {
		fmt.Fprintf(&b, "**Writers:** %s\n", strings.Join(writers, ", "))
	}

	if d.Overview != "" {
		fmt.Fprintf(&b, "\n%s\n", truncate(d.Overview, maxOverviewRunes))
	}

	if len(d.Credits.Cast) > 0 {
		b.WriteString("\n## Cast\n")
		for _, member := range d.Credits.Cast[:min(maxCastMembers, len(d.Credits.Cast))] {
			fmt.Fprintf(&b, "- **%s** as %s\n", member.Name, member.Character)
		}
	}

	if len(d.Similar.Results) > 0 {
		b.WriteString("\n## Similar Titles\n")
		for _, movie := range clip(d.Similar.Results, maxSimilarItems) {
			fmt.Fprintf(&b, "- [%s](%s)\n", movie.Title, tmdbURL("movie", movie.ID))
		}
	}

	fmt.Fprintf(&b, "\n[View on TMDb](%s)", tmdbURL("movie", d.ID))
	if trailer := d.TrailerURL(); trailer != "" {
		fmt.Fprintf(&b, " and [Watch Trailer](%s)", trailer)
	}
	b.WriteString("\n")

	return b.String()
}

func formatTVInfo(d *tmdb.TVDetails) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s (%s)\n", d.Name, d.Year())

	if d.Tagline != "" {
		fmt.Fprintf(&b, "\n*%s*\n", d.Tagline)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "**Rating:** %.1f/10\n", d.VoteAverage)
	fmt.Fprintf(&b, "**Certification:** %s\n", d.Certification())
	if d.Status != "" {
		fmt.Fprintf(&b, "**Status:** %s\n", d.Status)
	}
	if seasons := len(d.Seasons); seasons > 0 {
		fmt.Fprintf(&b, "**Seasons:** %d with %d episodes\n", seasons, d.EpisodeCount())
	}
	if len(d.Genres) > 0 {
		fmt.Fprintf(&b, "**Genres:** %s\n", joinGenres(d.Genres))
	}
	if creators := d.Creators(); len(creators) > 0 {
		fmt.Fprintf(&b, "**Created by:** %s\n", strings.Join(creators, ", "))
	}

	if d.Overview != "" {
		fmt.Fprintf(&b, "\n%s\n", truncate(d.Overview, maxOverviewRunes))
	}

	if len(d.Credits.Cast) > 0 {
		b.WriteString("\n## Cast\n")
		for _, member := range d.Credits.Cast[:min(maxCastMembers, len(d.Credits.Cast))] {
			fmt.Fprintf(&b, "- **%s** as %s\n", member.Name, member.Character)
		}
	}

	if len(d.Similar.Results) > 0 {
		b.WriteString("\n## Similar Shows\n")
		for _, show := range clip(d.Similar.Results, maxSimilarItems) {
			fmt.Fprintf(&b, "- [%s](%s)\n", show.Name, tmdbURL("tv", show.ID))
		}
	}

	fmt.Fprintf(&b, "\n[View on TMDb](%s)", tmdbURL("tv", d.ID))
	if trailer := d.TrailerURL(); trailer != "" {
		fmt.Fprintf(&b, " and [Watch Trailer](%s)", trailer)
	}
	b.WriteString("\n")

	return b.String()
}

func formatSimilarMovies(reference string, movies []tmdb.Movie) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Similar to %s\n\n", reference)
	for _, movie := range clip(movies, maxListItems) {
		fmt.Fprintf(&b, "- **%s** (%s) rated %.1f/10 [TMDb](%s)\n",
			movie.Title, movie.Year(), movie.VoteAverage, tmdbURL("movie", movie.ID))
	}

	return b.String()
}

func formatSimilarTV(reference string, shows []tmdb.TVShow) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Similar to %s\n\n", reference)
	for _, show := range clip(shows, maxListItems) {
		fmt.Fprintf(&b, "- **%s** (%s) rated %.1f/10 [TMDb](%s)\n",
			show.Name, show.Year(), show.VoteAverage, tmdbURL("tv", show.ID))
	}

	return b.String()
}

func formatRecommendations(genre string, movies []tmdb.Movie) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Picks\n\n", titleCase(genre))
	for _, movie := range clip(movies, maxListItems) {
		fmt.Fprintf(&b, "- **%s** (%s) rated %.1f/10 [TMDb](%s)\n",
			movie.Title, movie.Year(), movie.VoteAverage, tmdbURL("movie", movie.ID))
		if movie.Overview != "" {
			fmt.Fprintf(&b, "- *%s*\n", truncate(movie.Overview, 160))
		}
	}

	return b.String()
}

func formatPerson(d *tmdb.PersonDetails) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", d.Name)

	b.WriteString("\n")
	if d.KnownForDepartment != "" {
		fmt.Fprintf(&b, "**Known for:** %s\n", d.KnownForDepartment)
	}
	if d.Birthday != "" {
		fmt.Fprintf(&b, "**Born:** %s", d.Birthday)
		if d.PlaceOfBirth != "" {
			fmt.Fprintf(&b, " in %s", d.PlaceOfBirth)
		}
		b.WriteString("\n")
	}

	if d.Biography != "" {
		fmt.Fprintf(&b, "\n%s\n", truncate(d.Biography, 500))
	}

	credits := d.CombinedCredits.Cast
	if d.KnownForDepartment != "" && d.KnownForDepartment != "Acting" {
		credits = d.CombinedCredits.Crew
	}
	if len(credits) > 0 {
		b.WriteString("\n## Known For\n")
		for _, item := range clip(credits, maxListItems) {
			mediaType := item.MediaType
			if mediaType == "" {
				mediaType = "movie"
			}
			fmt.Fprintf(&b, "- [%s](%s) (%s)\n",
				item.DisplayTitle(), tmdbURL(mediaType, item.ID), item.Year())
		}
	}

	fmt.Fprintf(&b, "\n[View on TMDb](%s)\n", tmdbURL("person", d.ID))

	return b.String()
}

func formatNotFound(subject string) string {
	return fmt.Sprintf("# No Results\n\nNothing on TMDb matched **%s**. Try the exact title.\n", subject)
}

func clip[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func joinGenres(genres []tmdb.Genre) string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
