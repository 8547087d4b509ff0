package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"weatherboard/internal/config"
	"weatherboard/internal/model"
)

// candidateLimit is the fixed number of ranked candidates requested from the
// provider.
const candidateLimit = 7

// Client resolves a free-text place query to ranked candidate locations.
type Client interface {
	Search(ctx context.Context, query string) ([]model.GeocodeCandidate, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a geocoding client against the configured Open-Meteo
// geocoding endpoint. An optional custom http.Client may be injected.
func NewClient(httpClient ...*http.Client) Client {
	hc := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		hc = httpClient[0]
	}
	return &client{
		httpClient: hc,
		baseURL:    config.GetGeocodingURL(),
	}
}

// Search issues one fresh provider request per call. Empty or
// whitespace-only queries fail with model.ErrInvalidInput without touching
// the transport. Zero matches is not an error: the result is an empty slice.
func (c *client) Search(ctx context.Context, query string) ([]model.GeocodeCandidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, model.ErrInvalidInput
	}

	params := url.Values{}
	params.Set("name", query)
	params.Set("count", fmt.Sprint(candidateLimit))
	params.Set("language", "en")
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoding: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding: %w: %v", model.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding: %w: status %d", model.ErrNetwork, resp.StatusCode)
	}

	var data model.OpenMeteoGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("geocoding: decode response: %w", err)
	}

	candidates := make([]model.GeocodeCandidate, 0, len(data.Results))
	for _, r := range data.Results {
		candidates = append(candidates, model.GeocodeCandidate{
			Name:        r.Name,
			AdminRegion: r.Admin1,
			Country:     r.Country,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
			TimezoneID:  r.Timezone,
		})
	}
	return candidates, nil
}
