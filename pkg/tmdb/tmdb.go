package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

const DefaultBaseURL = "https://api.themoviedb.org"

type Client struct {
	IncludeAdult string
	Language     string
	BaseURL      string
	httpClient   *http.Client
}

// New returns a Client that authenticates with authKey. httpClient is not modified: the Client works on a copy.
func New(authKey string, httpClient *http.Client) *Client {
	var hc http.Client
	if httpClient != nil {
		hc = *httpClient
	}
	next := hc.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	hc.Transport = auth{
		authKey: authKey,
		next:    next,
	}
	return &Client{
		IncludeAdult: "false",
		Language:     "en-US",
		BaseURL:      DefaultBaseURL,
		httpClient:   &hc,
	}
}

func (c Client) baseForm() url.Values {
	form := make(url.Values)
	form.Add("include_adult", c.IncludeAdult)
	form.Add("language", c.Language)
	return form
}

// pageValues returns the query values for a paginated endpoint. Page 0 leaves the page to the server;
// any other page is passed as-is.
func pageValues(page int) url.Values {
	values := make(url.Values)
	if page != 0 {
		values.Set("page", strconv.Itoa(page))
	}
	return values
}

var _ http.RoundTripper = auth{}

type auth struct {
	authKey string
	next    http.RoundTripper
}

func (a auth) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("Authorization", "Bearer "+a.authKey)
	return a.next.RoundTrip(r)
}

// HTTPError is returned when TMDB answers with anything other than 200 OK.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return e.Status
}

func call[T any](ctx context.Context, c Client, path string, values url.Values) (T, error) {
	form := c.baseForm()
	for key, v := range values {
		for _, value := range v {
			form.Add(key, value)
		}
	}

	var result T
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+form.Encode(), nil)
	if err != nil {
		return result, err
	}
	req.Header.Add("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return result, err
	}
	defer func(Body io.ReadCloser) { _ = Body.Close() }(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return result, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("decode: %w", err)
	}

	return result, nil
}
