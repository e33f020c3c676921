package metadata

import (
	"cmp"
	"context"
	"github.com/clambin/tmdb-catalog/pkg/tmdb"
)

// MediaList is one page of movies or TV shows, in the order TMDB returned them.
type MediaList struct {
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
	Items      []MediaItem `json:"items"`
}

func emptyMediaList() MediaList {
	return MediaList{Items: []MediaItem{}}
}

// MediaItem summarizes a movie or a TV show. Type is only set when the query knows what it asked for.
type MediaItem struct {
	ID               int            `json:"id"`
	Type             tmdb.MediaType `json:"type,omitempty"`
	Title            string         `json:"title"`
	OriginalTitle    string         `json:"originalTitle"`
	Overview         string         `json:"overview"`
	ReleaseDate      string         `json:"releaseDate,omitempty"`
	PosterPath       string         `json:"posterPath,omitempty"`
	BackdropPath     string         `json:"backdropPath,omitempty"`
	GenreIDs         []int          `json:"genreIds"`
	OriginalLanguage string         `json:"originalLanguage"`
	Popularity       float64        `json:"popularity"`
	VoteAverage      float64        `json:"voteAverage"`
	VoteCount        int            `json:"voteCount"`
	Adult            bool           `json:"adult"`
}

func normalize(page tmdb.Page, hint tmdb.MediaType) []MediaItem {
	items := make([]MediaItem, 0, len(page.Results))
	for _, r := range page.Results {
		items = append(items, MediaItem{
			ID:               r.Id,
			Type:             hint,
			Title:            cmp.Or(r.Title, r.Name),
			OriginalTitle:    cmp.Or(r.OriginalTitle, r.OriginalName),
			Overview:         r.Overview,
			ReleaseDate:      cmp.Or(r.ReleaseDate, r.FirstAirDate),
			PosterPath:       deref(r.PosterPath),
			BackdropPath:     deref(r.BackdropPath),
			GenreIDs:         r.GenreIds,
			OriginalLanguage: r.OriginalLanguage,
			Popularity:       r.Popularity,
			VoteAverage:      r.VoteAverage,
			VoteCount:        r.VoteCount,
			Adult:            r.Adult,
		})
	}
	return items
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// list performs a paginated query and tags every item with hint. An empty hint leaves the items untagged.
func (c *Client) list(op string, hint tmdb.MediaType, f func() (tmdb.Page, error), attrs ...any) (MediaList, bool) {
	page, ok := fetch(c, op, f, attrs...)
	if !ok {
		return emptyMediaList(), false
	}
	return MediaList{
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Items:      normalize(page, hint),
	}, true
}

// Trending returns the movies or TV shows trending over the given time window. Page 0 requests the first page.
func (c *Client) Trending(ctx context.Context, mediaType tmdb.MediaType, window tmdb.TimeWindow, page int) (MediaList, bool) {
	return c.list("trending", mediaType, func() (tmdb.Page, error) {
		return c.TMDBClient.GetTrending(ctx, mediaType, window, page)
	}, "type", mediaType, "window", window, "page", page)
}

func (c *Client) MovieList(ctx context.Context, category tmdb.MovieCategory, page int) (MediaList, bool) {
	return c.list("movie_list", tmdb.MediaTypeMovie, func() (tmdb.Page, error) {
		return c.TMDBClient.GetMovieList(ctx, category, page)
	}, "category", category, "page", page)
}

func (c *Client) TVShowList(ctx context.Context, category tmdb.TVCategory, page int) (MediaList, bool) {
	return c.list("tv_list", tmdb.MediaTypeTV, func() (tmdb.Page, error) {
		return c.TMDBClient.GetTVSeriesList(ctx, category, page)
	}, "category", category, "page", page)
}

// Similar returns items similar to the movie or TV show with the given id.
//
// Unlike the other list queries, the items are not tagged with mediaType.
func (c *Client) Similar(ctx context.Context, mediaType tmdb.MediaType, id int, page int) (MediaList, bool) {
	return c.list("similar", "", func() (tmdb.Page, error) {
		return c.TMDBClient.GetSimilar(ctx, mediaType, id, page)
	}, "type", mediaType, "id", id, "page", page)
}
