package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"github.com/clambin/go-common/httputils/roundtripper"
	"github.com/clambin/tmdb-catalog/pkg/metadata"
	"github.com/clambin/tmdb-catalog/pkg/requestmetrics"
	"github.com/clambin/tmdb-catalog/pkg/tmdb"
	"golang.org/x/sync/errgroup"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"
)

var (
	debug    = flag.Bool("debug", false, "debug mode")
	authKey  = flag.String("authkey", "", "TMDB API authentication key")
	proxy    = flag.String("proxy", "", "Use TMDB Proxy")
	language = flag.String("language", "en-US", "Language of the returned metadata")
	adult    = flag.Bool("adult", false, "Include adult content")
	timeout  = flag.Duration("timeout", 10*time.Second, "Timeout for a single TMDB request")
	parallel = flag.Int64("parallel", 15, "Maximum number of parallel TMDB requests")
)

var errUsage = errors.New("usage: catalog [flags] <command> [args]")

func main() {
	flag.Parse()
	if *authKey == "" {
		*authKey = os.Getenv("TMDB_AUTHKEY")
		if *authKey == "" {
			panic("no TMDB authentication key provided")
		}
	}

	var opts slog.HandlerOptions
	if *debug {
		opts.Level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &opts))

	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 100

	requestMetrics := requestmetrics.New("tmdb", "client")
	rt := roundtripper.New(
		roundtripper.WithLimiter(*parallel),
		roundtripper.WithRoundTripper(requestMetrics.Instrument(t)),
	)

	tmdbClient := tmdb.New(*authKey, &http.Client{Transport: rt, Timeout: *timeout})
	tmdbClient.Language = *language
	tmdbClient.IncludeAdult = strconv.FormatBool(*adult)
	if *proxy != "" {
		tmdbClient.BaseURL = *proxy
	}

	c := metadata.New(tmdbClient, l)
	result, err := run(context.Background(), c, flag.Args())
	requestMetrics.Log(l, slog.LevelDebug)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(result); err != nil {
		l.Error("failed to write result", "err", err)
		os.Exit(1)
	}
}

var errQueryFailed = errors.New("query failed")

func run(ctx context.Context, c *metadata.Client, args []string) (any, error) {
	if len(args) == 0 {
		return nil, errUsage
	}
	a := arguments(args[1:])

	switch args[0] {
	case "trending":
		mediaType, window, page, err := argsTrending(a)
		if err != nil {
			return nil, err
		}
		return check(c.Trending(ctx, mediaType, window, page))
	case "movies":
		category, err := tmdb.ParseMovieCategory(a.get(0))
		if err != nil {
			return nil, err
		}
		page, err := a.page(1)
		if err != nil {
			return nil, err
		}
		return check(c.MovieList(ctx, category, page))
	case "tv":
		category, err := tmdb.ParseTVCategory(a.get(0))
		if err != nil {
			return nil, err
		}
		page, err := a.page(1)
		if err != nil {
			return nil, err
		}
		return check(c.TVShowList(ctx, category, page))
	case "movie":
		id, err := a.id(0)
		if err != nil {
			return nil, err
		}
		return check(c.Movie(ctx, id))
	case "show":
		id, err := a.id(0)
		if err != nil {
			return nil, err
		}
		return check(c.TVShow(ctx, id))
	case "imdb":
		mediaType, id, err := a.typeAndID()
		if err != nil {
			return nil, err
		}
		if mediaType == tmdb.MediaTypeTV {
			return check(c.TVShowIMDBID(ctx, id))
		}
		return check(c.MovieIMDBID(ctx, id))
	case "videos":
		mediaType, id, err := a.typeAndID()
		if err != nil {
			return nil, err
		}
		return check(c.Videos(ctx, mediaType, id))
	case "trailer":
		mediaType, id, err := a.typeAndID()
		if err != nil {
			return nil, err
		}
		videos, ok := c.Videos(ctx, mediaType, id)
		if !ok {
			return nil, errQueryFailed
		}
		return check(metadata.Trailer(videos))
	case "credits":
		mediaType, id, err := a.typeAndID()
		if err != nil {
			return nil, err
		}
		return check(c.Credits(ctx, mediaType, id))
	case "similar":
		mediaType, id, err := a.typeAndID()
		if err != nil {
			return nil, err
		}
		page, err := a.page(2)
		if err != nil {
			return nil, err
		}
		return check(c.Similar(ctx, mediaType, id, page))
	case "genres":
		mediaType, err := tmdb.ParseMediaType(a.get(0))
		if err != nil {
			return nil, err
		}
		return check(c.Genres(ctx, mediaType))
	case "overview":
		return overview(ctx, c)
	default:
		return nil, fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func check[T any](result T, ok bool) (any, error) {
	if !ok {
		return nil, errQueryFailed
	}
	return result, nil
}

func argsTrending(a arguments) (tmdb.MediaType, tmdb.TimeWindow, int, error) {
	mediaType, err := tmdb.ParseMediaType(a.get(0))
	if err != nil {
		return "", "", 0, err
	}
	window, err := tmdb.ParseTimeWindow(a.get(1))
	if err != nil {
		return "", "", 0, err
	}
	page, err := a.page(2)
	return mediaType, window, page, err
}

type trendingOverview struct {
	Movies metadata.MediaList `json:"movies"`
	Shows  metadata.MediaList `json:"shows"`
	Genres []tmdb.Genre       `json:"genres"`
}

// overview fetches this week's trending movies and shows, and the genres they belong to.
func overview(ctx context.Context, c *metadata.Client) (trendingOverview, error) {
	var (
		result      trendingOverview
		movieGenres []tmdb.Genre
		tvGenres    []tmdb.Genre
	)
	queries := []func() bool{
		func() (ok bool) { result.Movies, ok = c.Trending(ctx, tmdb.MediaTypeMovie, tmdb.TimeWindowWeek, 0); return ok },
		func() (ok bool) { result.Shows, ok = c.Trending(ctx, tmdb.MediaTypeTV, tmdb.TimeWindowWeek, 0); return ok },
		func() (ok bool) { movieGenres, ok = c.Genres(ctx, tmdb.MediaTypeMovie); return ok },
		func() (ok bool) { tvGenres, ok = c.Genres(ctx, tmdb.MediaTypeTV); return ok },
	}

	var g errgroup.Group
	for _, query := range queries {
		g.Go(func() error {
			if !query() {
				return errQueryFailed
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return trendingOverview{}, err
	}

	result.Genres = metadata.MergeGenres(
		metadata.GenresOf(movieGenres, result.Movies.Items),
		metadata.GenresOf(tvGenres, result.Shows.Items),
	)
	return result, nil
}

type arguments []string

func (a arguments) get(i int) string {
	if i < len(a) {
		return a[i]
	}
	return ""
}

func (a arguments) id(i int) (int, error) {
	id, err := strconv.Atoi(a.get(i))
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", a.get(i), err)
	}
	return id, nil
}

func (a arguments) page(i int) (int, error) {
	if a.get(i) == "" {
		return 0, nil
	}
	page, err := strconv.Atoi(a.get(i))
	if err != nil || page < 1 {
		return 0, fmt.Errorf("invalid page %q", a.get(i))
	}
	return page, nil
}

func (a arguments) typeAndID() (tmdb.MediaType, int, error) {
	mediaType, err := tmdb.ParseMediaType(a.get(0))
	if err != nil {
		return "", 0, err
	}
	id, err := a.id(1)
	return mediaType, id, err
}
