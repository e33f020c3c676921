package tmdb

import (
	"context"
	"strconv"
)

type Page struct {
	Page         int        `json:"page"`
	Results      []PageItem `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// PageItem is a single result of a paginated movie or TV endpoint. Movies fill Title, OriginalTitle and
// ReleaseDate; TV shows fill Name, OriginalName and FirstAirDate.
type PageItem struct {
	Adult            bool     `json:"adult"`
	BackdropPath     *string  `json:"backdrop_path"`
	GenreIds         []int    `json:"genre_ids"`
	Id               int      `json:"id"`
	MediaType        string   `json:"media_type,omitempty"`
	OriginalLanguage string   `json:"original_language"`
	Overview         string   `json:"overview"`
	Popularity       float64  `json:"popularity"`
	PosterPath       *string  `json:"poster_path"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	Title            string   `json:"title,omitempty"`
	OriginalTitle    string   `json:"original_title,omitempty"`
	ReleaseDate      string   `json:"release_date,omitempty"`
	Video            bool     `json:"video,omitempty"`
	Name             string   `json:"name,omitempty"`
	OriginalName     string   `json:"original_name,omitempty"`
	FirstAirDate     string   `json:"first_air_date,omitempty"`
	OriginCountry    []string `json:"origin_country,omitempty"`
}

func (c Client) GetTrending(ctx context.Context, mediaType MediaType, window TimeWindow, page int) (Page, error) {
	return call[Page](ctx, c, "/3/trending/"+string(mediaType)+"/"+string(window), pageValues(page))
}

func (c Client) GetMovieList(ctx context.Context, category MovieCategory, page int) (Page, error) {
	return call[Page](ctx, c, "/3/movie/"+string(category), pageValues(page))
}

func (c Client) GetTVSeriesList(ctx context.Context, category TVCategory, page int) (Page, error) {
	return call[Page](ctx, c, "/3/tv/"+string(category), pageValues(page))
}

func (c Client) GetSimilar(ctx context.Context, mediaType MediaType, id int, page int) (Page, error) {
	return call[Page](ctx, c, "/3/"+string(mediaType)+"/"+strconv.Itoa(id)+"/similar", pageValues(page))
}
