package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/interfaces"
)

// ErrScraperNotImplemented is returned by scraper providers that have a
// registered brand but no working scraping endpoint yet.
var ErrScraperNotImplemented = errors.New("store scraper not implemented")

// ScraperProvider is the real-data provider variant for a store brand. The
// scraping itself is not implemented; the provider exists so brand
// selection, availability checks and the mock fallback are exercised with
// the exact contract a future scraper will fill in.
type ScraperProvider struct {
	brand    string
	endpoint string
	client   *http.Client
}

// NewScraperProvider creates a scraper provider for a store brand. With an
// empty endpoint the provider reports itself unavailable.
func NewScraperProvider(brand, endpoint string) *ScraperProvider {
	return &ScraperProvider{
		brand:    brand,
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name identifies the provider in logs and fallback reasons.
func (s *ScraperProvider) Name() string {
	return "scraper:" + s.brand
}

// IsAvailable reports whether the provider has a scraping endpoint
// configured.
func (s *ScraperProvider) IsAvailable(ctx context.Context) bool {
	return s.endpoint != ""
}

// GetPrices fetches real prices for the brand. Until a brand scraper is
// wired in, the call fails at provider level so the manager falls back to
// mock data.
func (s *ScraperProvider) GetPrices(ctx context.Context, items []entities.GroceryItem) ([]entities.ItemPrice, error) {
	return nil, fmt.Errorf("%s: %w", s.brand, ErrScraperNotImplemented)
}

var _ interfaces.PriceProvider = (*ScraperProvider)(nil)
