// Package mapbox implements forward geocoding against the Mapbox places
// API. Only campground creation consumes it; location edits never
// re-geocode.
package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/danukusuma/campgrounds-api/internal/domain/apperr"
	"github.com/danukusuma/campgrounds-api/internal/domain/entity"
)

const defaultBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type geocodeResponse struct {
	Features []struct {
		Center [2]float64 `json:"center"`
	} `json:"features"`
}

// Forward resolves a free-text location to a single point (limit=1).
// Zero features maps to apperr.ErrLocationNotFound.
func (c *Client) Forward(ctx context.Context, query string) (entity.Point, error) {
	endpoint := fmt.Sprintf("%s/%s.json?access_token=%s&limit=1",
		c.baseURL, url.PathEscape(query), url.QueryEscape(c.token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entity.Point{}, fmt.Errorf("%w: %v", apperr.ErrAdapter, err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return entity.Point{}, fmt.Errorf("%w: geocode: %v", apperr.ErrAdapter, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return entity.Point{}, fmt.Errorf("%w: geocode: status %d", apperr.ErrAdapter, res.StatusCode)
	}
	var parsed geocodeResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return entity.Point{}, fmt.Errorf("%w: geocode: %v", apperr.ErrAdapter, err)
	}
	if len(parsed.Features) == 0 {
		return entity.Point{}, apperr.ErrLocationNotFound
	}
	center := parsed.Features[0].Center
	return entity.Point{Lon: center[0], Lat: center[1]}, nil
}
