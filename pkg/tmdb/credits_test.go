package tmdb_test

import (
	"context"
	"github.com/clambin/tmdb-catalog/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
)

func TestClient_GetCredits(t *testing.T) {
	s := makeTestServer("GET /3/{type}/{id}/credits", func(r *http.Request) string {
		return "credits-" + r.PathValue("type") + "-" + r.PathValue("id") + ".json"
	})
	c := tmdb.New("", nil)
	c.BaseURL = s.URL

	tests := []struct {
		name      string
		mediaType tmdb.MediaType
		id        int
		wantCast  string
		wantCrew  int
	}{
		{name: "movie", mediaType: tmdb.MediaTypeMovie, id: 680, wantCast: "John Travolta", wantCrew: 1},
		{name: "tv", mediaType: tmdb.MediaTypeTV, id: 42, wantCast: "Jennifer Aniston", wantCrew: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credits, err := c.GetCredits(context.Background(), tt.mediaType, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.id, credits.Id)
			require.NotEmpty(t, credits.Cast)
			assert.Equal(t, tt.wantCast, credits.Cast[0].Name)
			assert.Len(t, credits.Crew, tt.wantCrew)
		})
	}

	s.Close()
	_, err := c.GetCredits(context.Background(), tmdb.MediaTypeMovie, 680)
	assert.Error(t, err)
}
