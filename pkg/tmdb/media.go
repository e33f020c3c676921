package tmdb

import (
	"errors"
	"fmt"
)

var ErrInvalidValue = errors.New("invalid value")

// MediaType selects between the movie and TV endpoints of the API.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

func ParseMediaType(s string) (MediaType, error) {
	return parse(s, MediaTypeMovie, MediaTypeTV)
}

func (m MediaType) Valid() bool {
	return m == MediaTypeMovie || m == MediaTypeTV
}

// TimeWindow is the granularity of the trending endpoints.
type TimeWindow string

const (
	TimeWindowDay  TimeWindow = "day"
	TimeWindowWeek TimeWindow = "week"
)

func ParseTimeWindow(s string) (TimeWindow, error) {
	return parse(s, TimeWindowDay, TimeWindowWeek)
}

type MovieCategory string

const (
	MovieNowPlaying MovieCategory = "now_playing"
	MoviePopular    MovieCategory = "popular"
	MovieTopRated   MovieCategory = "top_rated"
	MovieUpcoming   MovieCategory = "upcoming"
)

func ParseMovieCategory(s string) (MovieCategory, error) {
	return parse(s, MovieNowPlaying, MoviePopular, MovieTopRated, MovieUpcoming)
}

type TVCategory string

const (
	TVAiringToday TVCategory = "airing_today"
	TVOnTheAir    TVCategory = "on_the_air"
	TVPopular     TVCategory = "popular"
	TVTopRated    TVCategory = "top_rated"
)

func ParseTVCategory(s string) (TVCategory, error) {
	return parse(s, TVAiringToday, TVOnTheAir, TVPopular, TVTopRated)
}

func parse[T ~string](s string, valid ...T) (T, error) {
	for _, v := range valid {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %q (valid: %v)", ErrInvalidValue, s, valid)
}
