package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

type ExternalIDs struct {
	Id          int        `json:"id"`
	ImdbId      ExternalID `json:"imdb_id"`
	FreebaseMid ExternalID `json:"freebase_mid,omitempty"`
	FreebaseId  ExternalID `json:"freebase_id,omitempty"`
	TvdbId      ExternalID `json:"tvdb_id,omitempty"`
	TvrageId    ExternalID `json:"tvrage_id,omitempty"`
	WikidataId  ExternalID `json:"wikidata_id"`
	FacebookId  ExternalID `json:"facebook_id"`
	InstagramId ExternalID `json:"instagram_id"`
	TwitterId   ExternalID `json:"twitter_id"`
}

// ExternalID is an identifier in a third party database. TMDB sends these as strings, numbers or null
// depending on the source; null, false, 0 and "" all decode to the empty ExternalID.
type ExternalID string

func (e *ExternalID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*e = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = ExternalID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("external id: %w", err)
		}
		if f, err := n.Float64(); err == nil && f == 0 {
			*e = ""
			return nil
		}
		*e = ExternalID(n.String())
	}
	return nil
}

func (c Client) GetExternalIDs(ctx context.Context, mediaType MediaType, id int) (ExternalIDs, error) {
	return call[ExternalIDs](ctx, c, "/3/"+string(mediaType)+"/"+strconv.Itoa(id)+"/external_ids", nil)
}
