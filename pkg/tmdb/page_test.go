package tmdb_test

import (
	"context"
	"github.com/clambin/tmdb-catalog/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
)

func TestClient_GetTrending(t *testing.T) {
	s := makeTestServer("GET /3/trending/{type}/{window}", func(r *http.Request) string {
		return "trending-" + r.PathValue("type") + "-" + r.PathValue("window") + "-" + r.FormValue("page") + ".json"
	})
	c := tmdb.New("", nil)
	c.BaseURL = s.URL

	ctx := context.Background()
	page, err := c.GetTrending(ctx, tmdb.MediaTypeMovie, tmdb.TimeWindowWeek, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 500, page.TotalPages)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "Inside Out 2", page.Results[0].Title)
	assert.Equal(t, "movie", page.Results[0].MediaType)
	assert.Nil(t, page.Results[1].BackdropPath)

	s.Close()
	_, err = c.GetTrending(ctx, tmdb.MediaTypeMovie, tmdb.TimeWindowWeek, 1)
	assert.Error(t, err)
}

func TestClient_GetMovieList(t *testing.T) {
	s := makeTestServer("GET /3/movie/{category}", func(r *http.Request) string {
		return "movie-" + r.PathValue("category") + "-" + r.FormValue("page") + ".json"
	})
	c := tmdb.New("", nil)
	c.BaseURL = s.URL

	ctx := context.Background()
	page, err := c.GetMovieList(ctx, tmdb.MoviePopular, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 45003, page.TotalPages)
	require.Len(t, page.Results, 1)
	assert.Equal(t, 653346, page.Results[0].Id)

	_, err = c.GetMovieList(ctx, tmdb.MovieUpcoming, 1)
	assert.Error(t, err)

	s.Close()
}

func TestClient_GetTVSeriesList(t *testing.T) {
	s := makeTestServer("GET /3/tv/{category}", func(r *http.Request) string {
		if r.URL.Query().Has("page") {
			return "unexpected.json"
		}
		return "tv-" + r.PathValue("category") + ".json"
	})
	c := tmdb.New("", nil)
	c.BaseURL = s.URL

	ctx := context.Background()
	page, err := c.GetTVSeriesList(ctx, tmdb.TVAiringToday, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, page.TotalPages)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Volta por Cima", page.Results[0].Name)
	assert.Equal(t, []string{"BR"}, page.Results[0].OriginCountry)

	s.Close()
	_, err = c.GetTVSeriesList(ctx, tmdb.TVAiringToday, 0)
	assert.Error(t, err)
}

func TestClient_GetSimilar(t *testing.T) {
	s := makeTestServer("GET /3/{type}/{id}/similar", func(r *http.Request) string {
		return "similar-" + r.PathValue("type") + "-" + r.PathValue("id") + "-" + r.FormValue("page") + ".json"
	})
	c := tmdb.New("", nil)
	c.BaseURL = s.URL

	ctx := context.Background()
	page, err := c.GetSimilar(ctx, tmdb.MediaTypeTV, 1668, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "The Office", page.Results[0].Name)

	s.Close()
	_, err = c.GetSimilar(ctx, tmdb.MediaTypeTV, 1668, 1)
	assert.Error(t, err)
}
