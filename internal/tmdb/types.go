package tmdb

import "strings"

// Movie is a single result from search, discover, or similar endpoints.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
}

// Year returns the release year, or "N/A" when TMDb has no date.
func (m Movie) Year() string {
	return yearOf(m.ReleaseDate)
}

// TVShow is a single result from TV search or similar endpoints.
type TVShow struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	Popularity   float64 `json:"popularity"`
}

// Year returns the first-air year, or "N/A" when TMDb has no date.
func (s TVShow) Year() string {
	return yearOf(s.FirstAirDate)
}

// TrendingItem is one entry from the trending feed. Movies carry Title and
// ReleaseDate, TV shows carry Name and FirstAirDate.
type TrendingItem struct {
	ID           int     `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	Popularity   float64 `json:"popularity"`
}

// DisplayTitle returns whichever of Title or Name the media type uses.
func (t TrendingItem) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Name
}

// Year returns the release or first-air year, or "N/A".
func (t TrendingItem) Year() string {
	if t.ReleaseDate != "" {
		return yearOf(t.ReleaseDate)
	}
	return yearOf(t.FirstAirDate)
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
}

type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type videoList struct {
	Results []Video `json:"results"`
}

type release struct {
	Certification string `json:"certification"`
}

type countryRelease struct {
	CountryCode  string    `json:"iso_3166_1"`
	ReleaseDates []release `json:"release_dates"`
}

type releaseDates struct {
	Results []countryRelease `json:"results"`
}

type contentRating struct {
	CountryCode string `json:"iso_3166_1"`
	Rating      string `json:"rating"`
}

type contentRatings struct {
	Results []contentRating `json:"results"`
}

// MovieDetails is the movie detail payload with credits, similar titles,
// videos, and release dates appended.
type MovieDetails struct {
	Movie

	OriginalTitle string       `json:"original_title"`
	Tagline       string       `json:"tagline"`
	Runtime       int          `json:"runtime"`
	Genres        []Genre      `json:"genres"`
	Budget        int64        `json:"budget"`
	Revenue       int64        `json:"revenue"`
	Credits       Credits      `json:"credits"`
	Videos        videoList    `json:"videos"`
	ReleaseDates  releaseDates `json:"release_dates"`
	Similar       struct {
		Results []Movie `json:"results"`
	} `json:"similar"`
}

// Director returns the first crew member with the Director job.
func (d *MovieDetails) Director() string {
	for _, c := range d.Credits.Crew {
		if c.Job == "Director" {
			return c.Name
		}
	}
	return "Unknown"
}

// Writers returns up to three writer/screenplay credits.
func (d *MovieDetails) Writers() []string {
	var writers []string
	for _, c := range d.Credits.Crew {
		if c.Job == "Writer" || c.Job == "Screenplay" {
			writers = append(writers, c.Name)
		}
		if len(writers) == 3 {
			break
		}
	}
	return writers
}

// Certification returns the US certification, or "Not rated".
func (d *MovieDetails) Certification() string {
	for _, country := range d.ReleaseDates.Results {
		if country.CountryCode != "US" {
			continue
		}
		for _, r := range country.ReleaseDates {
			if r.Certification != "" {
				return r.Certification
			}
		}
	}
	return "Not rated"
}

// TrailerURL returns the first YouTube trailer link, or "".
func (d *MovieDetails) TrailerURL() string {
	return trailerURL(d.Videos.Results)
}

type creator struct {
	Name string `json:"name"`
}

type season struct {
	EpisodeCount int `json:"episode_count"`
}

type network struct {
	Name string `json:"name"`
}

// TVDetails is the TV detail payload with credits, similar shows, videos,
// and content ratings appended.
type TVDetails struct {
	TVShow

	OriginalName   string         `json:"original_name"`
	Tagline        string         `json:"tagline"`
	LastAirDate    string         `json:"last_air_date"`
	Status         string         `json:"status"`
	Genres         []Genre        `json:"genres"`
	CreatedBy      []creator      `json:"created_by"`
	Seasons        []season       `json:"seasons"`
	Networks       []network      `json:"networks"`
	Credits        Credits        `json:"credits"`
	Videos         videoList      `json:"videos"`
	ContentRatings contentRatings `json:"content_ratings"`
	Similar        struct {
		Results []TVShow `json:"results"`
	} `json:"similar"`
}

// Creators returns the created-by names.
func (d *TVDetails) Creators() []string {
	names := make([]string, 0, len(d.CreatedBy))
	for _, c := range d.CreatedBy {
		names = append(names, c.Name)
	}
	return names
}

// EpisodeCount sums episode counts across seasons.
func (d *TVDetails) EpisodeCount() int {
	total := 0
	for _, s := range d.Seasons {
		total += s.EpisodeCount
	}
	return total
}

// Certification returns the US content rating, or "Not rated".
func (d *TVDetails) Certification() string {
	for _, r := range d.ContentRatings.Results {
		if r.CountryCode == "US" && r.Rating != "" {
			return r.Rating
		}
	}
	return "Not rated"
}

// TrailerURL returns the first YouTube trailer link, or "".
func (d *TVDetails) TrailerURL() string {
	return trailerURL(d.Videos.Results)
}

// Person is a single result from person search.
type Person struct {
	ID                 int            `json:"id"`
	Name               string         `json:"name"`
	KnownForDepartment string         `json:"known_for_department"`
	KnownFor           []TrendingItem `json:"known_for"`
}

// PersonDetails is the person detail payload with combined credits appended.
type PersonDetails struct {
	Person

	Biography       string `json:"biography"`
	Birthday        string `json:"birthday"`
	PlaceOfBirth    string `json:"place_of_birth"`
	CombinedCredits struct {
		Cast []TrendingItem `json:"cast"`
		Crew []TrendingItem `json:"crew"`
	} `json:"combined_credits"`
}

type movieResults struct {
	Results []Movie `json:"results"`
}

type tvResults struct {
	Results []TVShow `json:"results"`
}

type trendingResults struct {
	Results []TrendingItem `json:"results"`
}

type personResults struct {
	Results []Person `json:"results"`
}

func trailerURL(videos []Video) string {
	for _, v := range videos {
		if v.Type == "Trailer" && v.Site == "YouTube" {
			return "https://www.youtube.com/watch?v=" + v.Key
		}
	}
	return ""
}

func yearOf(date string) string {
	if date == "" {
		return "N/A"
	}
	year, _, found := strings.Cut(date, "-")
	if !found || year == "" {
		return "N/A"
	}
	return year
}
