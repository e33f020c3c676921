// Package metadata exposes a small set of semantic TMDB queries (trending, listings, details, credits,
// videos, similar items, genres and external ids) and shapes their results into stable types.
//
// Calls never return an error. A failed call is logged through the injected logger and returns a fallback
// value, with ok set to false: an empty MediaList for list queries and the zero value for everything else.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"github.com/clambin/tmdb-catalog/pkg/tmdb"
	"log/slog"
)

// ErrMissingField is logged when a response lacks a field the query depends on.
var ErrMissingField = errors.New("missing field")

// TMDBClient is the subset of the TMDB API used by Client. tmdb.Client implements it.
type TMDBClient interface {
	GetTrending(ctx context.Context, mediaType tmdb.MediaType, window tmdb.TimeWindow, page int) (tmdb.Page, error)
	GetMovieList(ctx context.Context, category tmdb.MovieCategory, page int) (tmdb.Page, error)
	GetTVSeriesList(ctx context.Context, category tmdb.TVCategory, page int) (tmdb.Page, error)
	GetSimilar(ctx context.Context, mediaType tmdb.MediaType, id int, page int) (tmdb.Page, error)
	GetMovie(ctx context.Context, id int) (tmdb.Movie, error)
	GetTVSeries(ctx context.Context, id int) (tmdb.TVSeries, error)
	GetExternalIDs(ctx context.Context, mediaType tmdb.MediaType, id int) (tmdb.ExternalIDs, error)
	GetVideos(ctx context.Context, mediaType tmdb.MediaType, id int) (tmdb.Videos, error)
	GetCredits(ctx context.Context, mediaType tmdb.MediaType, id int) (tmdb.Credits, error)
	GetGenres(ctx context.Context, mediaType tmdb.MediaType) (tmdb.GenreList, error)
}

var _ TMDBClient = tmdb.Client{}

// Client performs metadata queries. It holds no mutable state and is safe for concurrent use.
type Client struct {
	TMDBClient TMDBClient
	logger     *slog.Logger
}

// New returns a Client for api. A nil logger logs to slog.Default().
func New(api TMDBClient, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		TMDBClient: api,
		logger:     logger,
	}
}

// fetch performs a single-record query. On failure it logs err and returns the zero value of T.
func fetch[T any](c *Client, op string, f func() (T, error), attrs ...any) (T, bool) {
	result, err := f()
	if err != nil {
		c.logger.Warn("tmdb query failed", append([]any{"op", op, "err", err}, attrs...)...)
		var zero T
		return zero, false
	}
	c.logger.Debug("tmdb query done", append([]any{"op", op}, attrs...)...)
	return result, true
}

func (c *Client) Movie(ctx context.Context, id int) (tmdb.Movie, bool) {
	return fetch(c, "movie", func() (tmdb.Movie, error) {
		return c.TMDBClient.GetMovie(ctx, id)
	}, "id", id)
}

func (c *Client) TVShow(ctx context.Context, id int) (tmdb.TVSeries, bool) {
	return fetch(c, "tv", func() (tmdb.TVSeries, error) {
		return c.TMDBClient.GetTVSeries(ctx, id)
	}, "id", id)
}

// TVShowIMDBID returns the IMDB id of a TV show. A show without an IMDB id is a failed call.
func (c *Client) TVShowIMDBID(ctx context.Context, id int) (string, bool) {
	return c.imdbID(ctx, "tv_imdb_id", tmdb.MediaTypeTV, id)
}

// MovieIMDBID returns the IMDB id of a movie. A movie without an IMDB id is a failed call.
func (c *Client) MovieIMDBID(ctx context.Context, id int) (string, bool) {
	return c.imdbID(ctx, "movie_imdb_id", tmdb.MediaTypeMovie, id)
}

func (c *Client) imdbID(ctx context.Context, op string, mediaType tmdb.MediaType, id int) (string, bool) {
	return fetch(c, op, func() (string, error) {
		ids, err := c.TMDBClient.GetExternalIDs(ctx, mediaType, id)
		if err != nil {
			return "", err
		}
		if ids.ImdbId == "" {
			return "", fmt.Errorf("imdb_id: %w", ErrMissingField)
		}
		return string(ids.ImdbId), nil
	}, "id", id)
}

func (c *Client) Videos(ctx context.Context, mediaType tmdb.MediaType, id int) (tmdb.Videos, bool) {
	return fetch(c, "videos", func() (tmdb.Videos, error) {
		return c.TMDBClient.GetVideos(ctx, mediaType, id)
	}, "type", mediaType, "id", id)
}

// Credits returns the cast and crew exactly as TMDB reports them.
func (c *Client) Credits(ctx context.Context, mediaType tmdb.MediaType, id int) (tmdb.Credits, bool) {
	return fetch(c, "credits", func() (tmdb.Credits, error) {
		return c.TMDBClient.GetCredits(ctx, mediaType, id)
	}, "type", mediaType, "id", id)
}

func (c *Client) Genres(ctx context.Context, mediaType tmdb.MediaType) ([]tmdb.Genre, bool) {
	return fetch(c, "genres", func() ([]tmdb.Genre, error) {
		list, err := c.TMDBClient.GetGenres(ctx, mediaType)
		return list.Genres, err
	}, "type", mediaType)
}
