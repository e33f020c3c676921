package main

import (
	"context"
	"github.com/clambin/tmdb-catalog/pkg/metadata"
	"github.com/clambin/tmdb-catalog/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T) *metadata.Client {
	t.Helper()
	m := http.NewServeMux()
	m.HandleFunc("GET /3/trending/{type}/week", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("type") {
		case "movie":
			_, _ = w.Write([]byte(`{"page":1,"total_pages":1,"results":[{"id":680,"title":"Pulp Fiction","genre_ids":[80]}]}`))
		default:
			_, _ = w.Write([]byte(`{"page":1,"total_pages":1,"results":[{"id":1668,"name":"Friends","genre_ids":[35,80]}]}`))
		}
	})
	m.HandleFunc("GET /3/genre/{type}/list", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("type") {
		case "movie":
			_, _ = w.Write([]byte(`{"genres":[{"id":28,"name":"Action"},{"id":80,"name":"Crime"}]}`))
		default:
			_, _ = w.Write([]byte(`{"genres":[{"id":35,"name":"Comedy"},{"id":80,"name":"Crime"}]}`))
		}
	})
	s := httptest.NewServer(m)
	t.Cleanup(s.Close)

	api := tmdb.New("", nil)
	api.BaseURL = s.URL
	return metadata.New(api, slog.Default())
}

func TestRun(t *testing.T) {
	c := newTestClient(t)
	tests := []struct {
		name    string
		args    []string
		wantErr assert.ErrorAssertionFunc
	}{
		{name: "no command", wantErr: assert.Error},
		{name: "unknown command", args: []string{"foo"}, wantErr: assert.Error},
		{name: "genres", args: []string{"genres", "movie"}, wantErr: assert.NoError},
		{name: "invalid type", args: []string{"genres", "person"}, wantErr: assert.Error},
		{name: "trending", args: []string{"trending", "tv", "week"}, wantErr: assert.NoError},
		{name: "invalid page", args: []string{"trending", "tv", "week", "zero"}, wantErr: assert.Error},
		{name: "invalid id", args: []string{"credits", "movie", "abc"}, wantErr: assert.Error},
		{name: "query failed", args: []string{"movie", "680"}, wantErr: assert.Error},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(context.Background(), c, tt.args)
			tt.wantErr(t, err)
		})
	}
}

func TestOverview(t *testing.T) {
	c := newTestClient(t)
	result, err := overview(context.Background(), c)
	require.NoError(t, err)
	assert.Len(t, result.Movies.Items, 1)
	assert.Equal(t, tmdb.MediaTypeTV, result.Shows.Items[0].Type)
	assert.Equal(t, []tmdb.Genre{{Id: 80, Name: "Crime"}, {Id: 35, Name: "Comedy"}}, result.Genres)
}
