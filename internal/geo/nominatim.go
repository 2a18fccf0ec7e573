// Package geo wraps the two external OpenStreetMap APIs used by the
// restaurant lookup: Nominatim for geocoding and Overpass for points of
// interest. Both are consumed as-is, with no retries and no caching.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const userAgent = "reviewpulse/1.0"

// BoundingBox is a geographic box in Nominatim's ordering.
type BoundingBox struct {
	South string
	North string
	West  string
	East  string
}

// Place is a single Nominatim search result.
type Place struct {
	DisplayName string   `json:"display_name"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	BoundingBox []string `json:"boundingbox"`
}

// NominatimClient resolves free-form place names against a Nominatim
// endpoint.
type NominatimClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewNominatimClient builds a client for the given base URL (e.g.
// https://nominatim.openstreetmap.org).
func NewNominatimClient(baseURL string, logger *zap.Logger) *NominatimClient {
	return &NominatimClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Search returns the first match for query, or (nil, nil) when the place is
// unknown to the geocoder.
func (c *NominatimClient) Search(ctx context.Context, query string) (*Place, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("nominatim returned status %d: %s", resp.StatusCode, string(body))
	}

	var places []Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(places) == 0 {
		c.logger.Debug("No geocoding match", zap.String("query", query))
		return nil, nil
	}
	return &places[0], nil
}

// Box converts the raw boundingbox field ([south, north, west, east]) into a
// BoundingBox.
func (p *Place) Box() (BoundingBox, error) {
	if len(p.BoundingBox) != 4 {
		return BoundingBox{}, fmt.Errorf("malformed bounding box: %v", p.BoundingBox)
	}
	return BoundingBox{
		South: p.BoundingBox[0],
		North: p.BoundingBox[1],
		West:  p.BoundingBox[2],
		East:  p.BoundingBox[3],
	}, nil
}
