package interfaces

import (
	"context"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
)

// PriceProvider is a single price data source (mock generator or a
// store-specific scraper).
type PriceProvider interface {
	// GetPrices returns one ItemPrice per requested item, same length and
	// order as items. Individual items the source cannot find come back
	// with an absent price; an error is returned only when the provider
	// itself is unusable. That distinction drives the fallback policy in
	// the provider manager.
	GetPrices(ctx context.Context, items []entities.GroceryItem) ([]entities.ItemPrice, error)

	// IsAvailable is a cheap liveness/configuration check performed
	// before the provider is used.
	IsAvailable(ctx context.Context) bool

	// Name identifies the provider in logs and fallback reasons.
	Name() string
}

// PriceProviderManager is the single entry point for per-store price
// lookups. It never returns an error: every failure degrades to mock data
// flagged in the result.
type PriceProviderManager interface {
	GetPricesForStore(ctx context.Context, storeName string, items []entities.GroceryItem) entities.StorePriceResult
}
