package tmdb_test

import (
	"context"
	"github.com/clambin/tmdb-catalog/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
)

func TestClient_GetVideos(t *testing.T) {
	s := makeTestServer("GET /3/{type}/{id}/videos", func(r *http.Request) string {
		return "videos-" + r.PathValue("type") + "-" + r.PathValue("id") + ".json"
	})
	c := tmdb.New("", nil)
	c.BaseURL = s.URL

	ctx := context.Background()
	videos, err := c.GetVideos(ctx, tmdb.MediaTypeMovie, 680)
	require.NoError(t, err)
	assert.Equal(t, 680, videos.Id)
	require.Len(t, videos.Results, 3)
	assert.Equal(t, "tGpTpVyI_OQ", videos.Results[2].Key)
	assert.True(t, videos.Results[2].Official)

	_, err = c.GetVideos(ctx, tmdb.MediaTypeTV, 680)
	assert.Error(t, err)

	s.Close()
}
