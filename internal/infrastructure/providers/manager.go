package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/interfaces"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/logging"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/metrics"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/repositories/cache"
)

// ReasonDemoMode is the mock-data reason reported when the force-mock
// configuration flag bypasses all real providers.
const ReasonDemoMode = "demo mode enabled"

// defaultBrands are the store-name substrings with a registered scraper
// provider. Matching is case-insensitive; anything unmatched gets the mock
// provider.
var defaultBrands = []string{
	"walmart",
	"kroger",
	"target",
	"safeway",
	"whole foods",
	"trader joe",
	"aldi",
	"publix",
	"costco",
	"wegmans",
	"food lion",
	"meijer",
}

// registration binds a store-name substring to a provider.
type registration struct {
	match    string
	provider interfaces.PriceProvider
}

// Manager is the single entry point for per-store price lookups. It
// selects a provider per store name, applies cache-first lookup, and falls
// back to the mock provider on any failure, so it never returns an error.
type Manager struct {
	groceryCache *cache.GroceryCache
	mock         *MockProvider
	forceMock    bool
	registry     []registration
}

// NewManager creates a provider manager with scraper providers registered
// for the default store brands.
func NewManager(groceryCache *cache.GroceryCache, forceMock bool) *Manager {
	m := &Manager{
		groceryCache: groceryCache,
		mock:         NewMockProvider(),
		forceMock:    forceMock,
	}
	for _, brand := range defaultBrands {
		m.Register(brand, NewScraperProvider(brand, ""))
	}
	return m
}

// Register binds a provider to a case-insensitive store-name substring.
// Earlier registrations win on overlapping matches.
func (m *Manager) Register(nameSubstring string, provider interfaces.PriceProvider) {
	m.registry = append(m.registry, registration{
		match:    strings.ToLower(nameSubstring),
		provider: provider,
	})
}

// GetPricesForStore resolves prices for every item at one store.
//
// Order of attempts: force-mock flag, full cache hit, selected provider,
// mock fallback. A partial cache hit is discarded in favor of a fresh
// provider call so cached real prices and fresh prices are never silently
// mixed with mock ones.
func (m *Manager) GetPricesForStore(ctx context.Context, storeName string, items []entities.GroceryItem) entities.StorePriceResult {
	if m.forceMock {
		metrics.RecordFallbackActivation("demo_mode")
		return m.mockResult(ctx, items, ReasonDemoMode)
	}

	if prices, ok := m.lookupCached(ctx, storeName, items); ok {
		logging.Debug(ctx, "Full cache hit for store", logging.Fields{
			logging.FieldStore: storeName,
			logging.FieldItems: len(items),
		})
		return entities.StorePriceResult{
			Prices:       prices,
			UsedMockData: false,
		}
	}

	provider := m.selectProvider(storeName)

	if !provider.IsAvailable(ctx) {
		reason := fmt.Sprintf("%s provider unavailable", provider.Name())
		metrics.RecordProviderRequest(provider.Name(), "unavailable")
		metrics.RecordFallbackActivation("unavailable")
		logging.ProviderFallback(ctx, storeName, provider.Name(), reason, nil)
		return m.mockResult(ctx, items, reason)
	}

	prices, err := provider.GetPrices(ctx, items)
	if err == nil && len(prices) != len(items) {
		err = fmt.Errorf("provider returned %d prices for %d items", len(prices), len(items))
	}
	if err != nil {
		reason := fmt.Sprintf("%s provider failed: %v", provider.Name(), err)
		metrics.RecordProviderRequest(provider.Name(), "error")
		metrics.RecordFallbackActivation("provider_error")
		logging.ProviderFallback(ctx, storeName, provider.Name(), reason, err)
		return m.mockResult(ctx, items, reason)
	}

	metrics.RecordProviderRequest(provider.Name(), "success")

	if provider == m.mock {
		// Unregistered brand: the default arm served synthetic data
		return entities.StorePriceResult{
			Prices:         prices,
			UsedMockData:   true,
			MockDataReason: fmt.Sprintf("no price source registered for %q", storeName),
		}
	}

	m.writeBack(ctx, storeName, items, prices)
	return entities.StorePriceResult{
		Prices:       prices,
		UsedMockData: false,
	}
}

// lookupCached attempts a cache-only resolution. It succeeds only when
// every item is cached: a partial hit is reported as a miss so the caller
// does a fresh provider call instead of mixing provenances.
func (m *Manager) lookupCached(ctx context.Context, storeName string, items []entities.GroceryItem) ([]entities.ItemPrice, bool) {
	prices := make([]entities.ItemPrice, len(items))
	for i, item := range items {
		price, ok := m.groceryCache.GetPrice(ctx, storeName, item.ProductID)
		if !ok {
			return nil, false
		}
		prices[i] = entities.NewItemPrice(item.DisplayName, price, false)
	}
	return prices, true
}

// writeBack caches every present, non-mock price from a successful provider
// call. Mock prices are never cached: synthetic values must not poison real
// lookups on retry.
func (m *Manager) writeBack(ctx context.Context, storeName string, items []entities.GroceryItem, prices []entities.ItemPrice) {
	for i, price := range prices {
		if price.IsMockData {
			continue
		}
		m.groceryCache.PutPrice(ctx, storeName, items[i].ProductID, price.Price)
	}
}

// selectProvider matches the store name against registered brand
// substrings; the default arm is always the mock provider.
func (m *Manager) selectProvider(storeName string) interfaces.PriceProvider {
	name := strings.ToLower(storeName)
	for _, reg := range m.registry {
		if strings.Contains(name, reg.match) {
			return reg.provider
		}
	}
	return m.mock
}

// mockResult serves mock prices with the given reason. The mock provider
// cannot fail, which makes this the guaranteed landing spot for every
// degraded path.
func (m *Manager) mockResult(ctx context.Context, items []entities.GroceryItem, reason string) entities.StorePriceResult {
	prices, _ := m.mock.GetPrices(ctx, items)
	return entities.StorePriceResult{
		Prices:         prices,
		UsedMockData:   true,
		MockDataReason: reason,
	}
}

// Mock exposes the mock provider so tests can verify deterministic totals.
func (m *Manager) Mock() *MockProvider {
	return m.mock
}

var _ interfaces.PriceProviderManager = (*Manager)(nil)
