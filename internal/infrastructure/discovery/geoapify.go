package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	retry "github.com/avast/retry-go/v4"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/config"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/logging"
)

const (
	// placesCategories restricts Geoapify results to grocery retail.
	placesCategories = "commercial.supermarket,commercial.food_and_drink"

	placesLimit = 20

	baseBackoff = 500 * time.Millisecond
	maxBackoff  = 5 * time.Second
)

// GeoapifyClient queries the Geoapify Places API for grocery stores near a
// coordinate.
type GeoapifyClient struct {
	baseURL    string
	apiKey     string
	maxRetries uint
	httpClient *http.Client
}

// NewGeoapifyClient creates a places client from discovery configuration.
func NewGeoapifyClient(cfg config.DiscoveryConfig) *GeoapifyClient {
	return &GeoapifyClient{
		baseURL:    cfg.GeoapifyURL,
		apiKey:     cfg.APIKey,
		maxRetries: uint(cfg.MaxRetries),
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// IsConfigured reports whether the client has an API key to call out with.
func (c *GeoapifyClient) IsConfigured() bool {
	return c.apiKey != ""
}

// placesResponse mirrors the GeoJSON FeatureCollection Geoapify returns.
type placesResponse struct {
	Features []struct {
		Properties struct {
			PlaceID   string  `json:"place_id"`
			Name      string  `json:"name"`
			Formatted string  `json:"formatted"`
			Distance  float64 `json:"distance"`
			Website   string  `json:"website"`
		} `json:"properties"`
	} `json:"features"`
}

// FetchNearby queries the places API with retries and maps the features to
// stores. Unnamed places are dropped.
func (c *GeoapifyClient) FetchNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]entities.Store, error) {
	endpoint, err := c.buildURL(lat, lng, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to build places URL: %w", err)
	}

	var body []byte
	retryErr := retry.Do(
		func() error {
			reqBody, reqErr := c.doRequest(ctx, endpoint)
			if reqErr != nil {
				return reqErr
			}
			body = reqBody
			return nil
		},
		retry.Attempts(c.maxRetries),
		retry.Delay(baseBackoff),
		retry.MaxDelay(maxBackoff),
		retry.DelayType(retry.BackOffDelay),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			logging.Warn(ctx, "Geoapify request retry", logging.Fields{
				"attempt":      n + 1,
				"max_attempts": c.maxRetries,
				"error":        err.Error(),
			})
		}),
	)
	if retryErr != nil {
		return nil, fmt.Errorf("places lookup failed after retries: %w", retryErr)
	}

	var parsed placesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	stores := make([]entities.Store, 0, len(parsed.Features))
	for _, feature := range parsed.Features {
		props := feature.Properties
		if props.Name == "" {
			continue
		}
		distance := props.Distance
		stores = append(stores, entities.Store{
			ID:             "geoapify-" + props.PlaceID,
			Name:           props.Name,
			Address:        props.Formatted,
			DistanceMeters: &distance,
			WebsiteURL:     props.Website,
		})
	}
	return stores, nil
}

func (c *GeoapifyClient) buildURL(lat, lng float64, radiusMeters int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("categories", placesCategories)
	q.Set("filter", fmt.Sprintf("circle:%f,%f,%d", lng, lat, radiusMeters))
	q.Set("bias", fmt.Sprintf("proximity:%f,%f", lng, lat))
	q.Set("limit", fmt.Sprintf("%d", placesLimit))
	q.Set("apiKey", c.apiKey)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (c *GeoapifyClient) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places API returned HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
