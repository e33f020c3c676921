package tmdb

import (
	"context"
	"strconv"
)

type Videos struct {
	Id      int     `json:"id"`
	Results []Video `json:"results"`
}

type Video struct {
	Iso6391     string `json:"iso_639_1"`
	Iso31661    string `json:"iso_3166_1"`
	Name        string `json:"name"`
	Key         string `json:"key"`
	Site        string `json:"site"`
	Size        int    `json:"size"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at"`
	Id          string `json:"id"`
}

func (c Client) GetVideos(ctx context.Context, mediaType MediaType, id int) (Videos, error) {
	return call[Videos](ctx, c, "/3/"+string(mediaType)+"/"+strconv.Itoa(id)+"/videos", nil)
}
