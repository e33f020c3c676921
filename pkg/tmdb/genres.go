package tmdb

import "context"

type Genre struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type GenreList struct {
	Genres []Genre `json:"genres"`
}

func (c Client) GetGenres(ctx context.Context, mediaType MediaType) (GenreList, error) {
	return call[GenreList](ctx, c, "/3/genre/"+string(mediaType)+"/list", nil)
}
