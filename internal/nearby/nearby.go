// Package nearby proxies mental-health place lookups to the Overpass API.
package nearby

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultOverpassURL = "https://overpass-api.de/api/interpreter"

// searchRadiusMeters bounds the around-query; 5 km covers a city district.
const searchRadiusMeters = 5000

type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string) *Client {
	if url == "" {
		url = DefaultOverpassURL
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Find queries Overpass for hospitals and mental-health providers around a
// coordinate and returns the raw Overpass JSON for the client to render.
func (c *Client) Find(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	query := fmt.Sprintf(`
		[out:json];
		(
			node["amenity"="hospital"](around:%d,%f,%f);
			node["healthcare"="psychiatrist"](around:%d,%f,%f);
			node["healthcare"="mental_health"](around:%d,%f,%f);
		);
		out;`,
		searchRadiusMeters, lat, lon,
		searchRadiusMeters, lat, lon,
		searchRadiusMeters, lat, lon,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass error %d: %s", resp.StatusCode, string(body))
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("overpass returned invalid JSON")
	}

	return json.RawMessage(body), nil
}
