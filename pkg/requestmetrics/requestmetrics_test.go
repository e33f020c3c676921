package requestmetrics_test

import (
	"bytes"
	"github.com/clambin/go-common/httputils/roundtripper"
	"github.com/clambin/tmdb-catalog/pkg/requestmetrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestEndpoint(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/3/movie/680", want: "/3/movie/{id}"},
		{path: "/3/tv/3/external_ids", want: "/3/tv/{id}/external_ids"},
		{path: "/3/trending/movie/week", want: "/3/trending/movie/week"},
		{path: "/3/genre/tv/list", want: "/3/genre/tv/list"},
		{path: "/", want: "/"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, requestmetrics.Endpoint(tt.path))
		})
	}
}

func TestMetrics(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/3/movie/1" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	m := requestmetrics.New("tmdb", "client")
	client := http.Client{Transport: m.Instrument(nil)}
	for _, path := range []string{"/3/movie/680", "/3/movie/681", "/3/movie/1"} {
		resp, err := client.Get(s.URL + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	s.Close()
	_, err := client.Get(s.URL + "/3/genre/movie/list")
	assert.Error(t, err)

	assert.NoError(t, testutil.CollectAndCompare(m, bytes.NewBufferString(`
# HELP tmdb_client_requests_total Number of TMDB API requests
# TYPE tmdb_client_requests_total counter
tmdb_client_requests_total{code="200",endpoint="/3/movie/{id}"} 2
tmdb_client_requests_total{code="404",endpoint="/3/movie/{id}"} 1
tmdb_client_requests_total{code="error",endpoint="/3/genre/movie/list"} 1
`), "tmdb_client_requests_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(m, "tmdb_client_request_duration_seconds"))
}

func TestMetrics_Limiter(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		current := inFlight.Add(1)
		for {
			highest := maxInFlight.Load()
			if current <= highest || maxInFlight.CompareAndSwap(highest, current) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(s.Close)

	m := requestmetrics.New("tmdb", "client")
	client := http.Client{Transport: roundtripper.New(
		roundtripper.WithLimiter(2),
		roundtripper.WithRoundTripper(m.Instrument(http.DefaultTransport)),
	)}
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := client.Get(s.URL + "/3/movie/680")
			if assert.NoError(t, err) {
				_ = resp.Body.Close()
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, maxInFlight.Load(), int32(2))
	assert.NoError(t, testutil.CollectAndCompare(m, bytes.NewBufferString(`
# HELP tmdb_client_requests_total Number of TMDB API requests
# TYPE tmdb_client_requests_total counter
tmdb_client_requests_total{code="200",endpoint="/3/movie/{id}"} 10
`), "tmdb_client_requests_total"))
}

func TestMetrics_Log(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(s.Close)

	m := requestmetrics.New("tmdb", "client")
	client := http.Client{Transport: m.Instrument(nil)}
	for range 2 {
		resp, err := client.Get(s.URL + "/3/tv/1668/credits")
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	var out bytes.Buffer
	l := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m.Log(l, slog.LevelDebug)
	assert.Contains(t, out.String(), "metric=tmdb_client_requests_total code=200 endpoint=/3/tv/{id}/credits value=2")
	assert.Contains(t, out.String(), "metric=tmdb_client_request_duration_seconds endpoint=/3/tv/{id}/credits count=2")

	out.Reset()
	m.Log(l, slog.LevelDebug-4)
	assert.Empty(t, out.String())
}
