package tmdb_test

import (
	"context"
	"github.com/clambin/tmdb-catalog/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
)

func TestClient_GetGenres(t *testing.T) {
	s := makeTestServer("GET /3/genre/{type}/list", func(r *http.Request) string {
		return "genre-" + r.PathValue("type") + ".json"
	})
	c := tmdb.New("", nil)
	c.BaseURL = s.URL

	ctx := context.Background()
	genres, err := c.GetGenres(ctx, tmdb.MediaTypeMovie)
	require.NoError(t, err)
	assert.Equal(t, []tmdb.Genre{{Id: 1, Name: "Action"}}, genres.Genres)

	genres, err = c.GetGenres(ctx, tmdb.MediaTypeTV)
	require.NoError(t, err)
	assert.Len(t, genres.Genres, 4)

	s.Close()
	_, err = c.GetGenres(ctx, tmdb.MediaTypeMovie)
	assert.Error(t, err)
}
