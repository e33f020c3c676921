package metadata

import (
	"github.com/clambin/go-common/set"
	"github.com/clambin/tmdb-catalog/pkg/tmdb"
)

// Trailer returns the first official YouTube trailer in videos. If there is none, it returns the first
// YouTube trailer of any kind.
func Trailer(videos tmdb.Videos) (tmdb.Video, bool) {
	var fallback *tmdb.Video
	for i, v := range videos.Results {
		if v.Site != "YouTube" || v.Type != "Trailer" {
			continue
		}
		if v.Official {
			return v, true
		}
		if fallback == nil {
			fallback = &videos.Results[i]
		}
	}
	if fallback == nil {
		return tmdb.Video{}, false
	}
	return *fallback, true
}

// GenresOf returns the genres referenced by items, in the order of genres.
func GenresOf(genres []tmdb.Genre, items []MediaItem) []tmdb.Genre {
	used := set.New[int]()
	for _, item := range items {
		for _, id := range item.GenreIDs {
			used.Add(id)
		}
	}
	result := make([]tmdb.Genre, 0, len(used))
	for _, g := range genres {
		if used.Contains(g.Id) {
			result = append(result, g)
		}
	}
	return result
}

// MergeGenres concatenates lists, keeping only the first genre for each id. TMDB uses the same id for
// genres shared by movies and TV shows.
func MergeGenres(lists ...[]tmdb.Genre) []tmdb.Genre {
	seen := set.New[int]()
	var result []tmdb.Genre
	for _, genres := range lists {
		for _, g := range genres {
			if !seen.Contains(g.Id) {
				seen.Add(g.Id)
				result = append(result, g)
			}
		}
	}
	return result
}
