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

// Node is a raw OSM node element returned by Overpass.
type Node struct {
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

type overpassResponse struct {
	Elements []Node `json:"elements"`
}

// OverpassClient queries an Overpass API interpreter endpoint.
type OverpassClient struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewOverpassClient builds a client for the given interpreter URL (e.g.
// https://overpass-api.de/api/interpreter).
func NewOverpassClient(endpoint string, logger *zap.Logger) *OverpassClient {
	return &OverpassClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// RestaurantsInBox returns every node tagged amenity=restaurant inside box.
func (c *OverpassClient) RestaurantsInBox(ctx context.Context, box BoundingBox) ([]Node, error) {
	query := fmt.Sprintf(`[out:json][timeout:25];
node["amenity"="restaurant"](%s,%s,%s,%s);
out body;`, box.South, box.West, box.North, box.East)

	params := url.Values{}
	params.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
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
		return nil, fmt.Errorf("overpass returned status %d: %s", resp.StatusCode, string(body))
	}

	var result overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("Overpass query completed", zap.Int("elements", len(result.Elements)))
	return result.Elements, nil
}
