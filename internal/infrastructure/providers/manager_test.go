package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/repositories/cache"
)

// stubProvider lets tests script provider behavior.
type stubProvider struct {
	name      string
	available bool
	prices    []entities.ItemPrice
	err       error
	calls     int
}

func (s *stubProvider) Name() string                         { return s.name }
func (s *stubProvider) IsAvailable(ctx context.Context) bool { return s.available }
func (s *stubProvider) GetPrices(ctx context.Context, items []entities.GroceryItem) ([]entities.ItemPrice, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.prices, nil
}

func testItems() []entities.GroceryItem {
	return []entities.GroceryItem{
		{ProductID: 1, DisplayName: "Whole Milk", NormalizedName: "whole milk", Quantity: 1},
		{ProductID: 2, DisplayName: "Large Eggs (dozen)", NormalizedName: "large eggs", Quantity: 1},
	}
}

func newTestManager(forceMock bool) (*Manager, *cache.GroceryCache) {
	groceryCache := cache.NewGroceryCache(cache.NewMemoryCache(), 24*time.Hour, 4*time.Hour)
	return NewManager(groceryCache, forceMock), groceryCache
}

func TestManager_ForceMockData(t *testing.T) {
	manager, _ := newTestManager(true)

	result := manager.GetPricesForStore(context.Background(), "Walmart Supercenter", testItems())

	assert.True(t, result.UsedMockData)
	assert.Equal(t, ReasonDemoMode, result.MockDataReason)
	require.Len(t, result.Prices, 2)
	for _, p := range result.Prices {
		assert.True(t, p.IsMockData)
		require.NotNil(t, p.Price)
	}
}

func TestManager_FullCacheHitBypassesProviders(t *testing.T) {
	manager, groceryCache := newTestManager(false)
	ctx := context.Background()
	items := testItems()

	milk, eggs := 4.29, 3.99
	groceryCache.PutPrice(ctx, "Walmart Supercenter", 1, &milk)
	groceryCache.PutPrice(ctx, "Walmart Supercenter", 2, &eggs)

	failing := &stubProvider{name: "scraper:walmart", available: true, err: errors.New("should not be called")}
	manager.registry = nil
	manager.Register("walmart", failing)

	result := manager.GetPricesForStore(ctx, "Walmart Supercenter", items)

	assert.False(t, result.UsedMockData)
	assert.Empty(t, result.MockDataReason)
	require.Len(t, result.Prices, 2)
	assert.Equal(t, 4.29, *result.Prices[0].Price)
	assert.Equal(t, 3.99, *result.Prices[1].Price)
	assert.Zero(t, failing.calls, "a full cache hit must bypass provider selection")
}

func TestManager_PartialCacheHitIsDiscarded(t *testing.T) {
	manager, groceryCache := newTestManager(false)
	ctx := context.Background()
	items := testItems()

	// Only one of two items cached
	milk := 4.29
	groceryCache.PutPrice(ctx, "FreshMart", 1, &milk)

	fresh := []entities.ItemPrice{
		entities.NewItemPrice("Whole Milk", 3.50, false),
		entities.NewItemPrice("Large Eggs (dozen)", 2.99, false),
	}
	provider := &stubProvider{name: "scraper:freshmart", available: true, prices: fresh}
	manager.Register("freshmart", provider)

	result := manager.GetPricesForStore(ctx, "FreshMart", items)

	assert.Equal(t, 1, provider.calls, "partial hit must trigger a fresh provider call")
	assert.False(t, result.UsedMockData)
	assert.Equal(t, 3.50, *result.Prices[0].Price, "cached partial value must not leak into the result")
}

func TestManager_SuccessWritesBackNonMockPrices(t *testing.T) {
	manager, groceryCache := newTestManager(false)
	ctx := context.Background()
	items := testItems()

	fresh := []entities.ItemPrice{
		entities.NewItemPrice("Whole Milk", 3.50, false),
		entities.NewAbsentItemPrice("Large Eggs (dozen)", false),
	}
	manager.Register("freshmart", &stubProvider{name: "scraper:freshmart", available: true, prices: fresh})

	result := manager.GetPricesForStore(ctx, "FreshMart", items)
	assert.False(t, result.UsedMockData)

	cached, ok := groceryCache.GetPrice(ctx, "FreshMart", 1)
	require.True(t, ok)
	assert.Equal(t, 3.50, cached)

	// The absent price must not create a negative cache entry
	_, ok = groceryCache.GetPrice(ctx, "FreshMart", 2)
	assert.False(t, ok)
}

func TestManager_UnavailableProviderFallsBack(t *testing.T) {
	manager, _ := newTestManager(false)

	// Default brand registrations are unconfigured scrapers, so any known
	// brand exercises the unavailable path
	result := manager.GetPricesForStore(context.Background(), "Kroger Marketplace", testItems())

	assert.True(t, result.UsedMockData)
	assert.Contains(t, result.MockDataReason, "scraper:kroger")
	assert.Contains(t, result.MockDataReason, "unavailable")
	require.Len(t, result.Prices, len(testItems()))
	for _, p := range result.Prices {
		require.NotNil(t, p.Price)
		assert.True(t, p.IsMockData)
	}
}

func TestManager_ProviderErrorFallsBack(t *testing.T) {
	manager, groceryCache := newTestManager(false)

	manager.Register("brokenmart", &stubProvider{name: "scraper:brokenmart", available: true, err: errors.New("connection refused")})

	result := manager.GetPricesForStore(context.Background(), "BrokenMart", testItems())

	assert.True(t, result.UsedMockData)
	assert.Contains(t, result.MockDataReason, "connection refused")
	require.Len(t, result.Prices, len(testItems()))

	// Mock fallback values must never be written to the cache
	_, ok := groceryCache.GetPrice(context.Background(), "BrokenMart", 1)
	assert.False(t, ok)
}

func TestManager_ShortProviderResponseFallsBack(t *testing.T) {
	manager, _ := newTestManager(false)

	short := []entities.ItemPrice{entities.NewItemPrice("Whole Milk", 3.50, false)}
	manager.Register("shortmart", &stubProvider{name: "scraper:shortmart", available: true, prices: short})

	result := manager.GetPricesForStore(context.Background(), "ShortMart", testItems())

	assert.True(t, result.UsedMockData)
	assert.NotEmpty(t, result.MockDataReason)
	assert.Len(t, result.Prices, len(testItems()))
}

func TestManager_UnmatchedBrandDefaultsToMock(t *testing.T) {
	manager, _ := newTestManager(false)

	result := manager.GetPricesForStore(context.Background(), "Corner Bodega", testItems())

	assert.True(t, result.UsedMockData)
	assert.NotEmpty(t, result.MockDataReason)
	require.Len(t, result.Prices, len(testItems()))
	for _, p := range result.Prices {
		assert.True(t, p.IsMockData)
	}
}

func TestManager_BrandMatchingIsCaseInsensitive(t *testing.T) {
	manager, _ := newTestManager(false)

	provider := &stubProvider{
		name:      "scraper:freshmart",
		available: true,
		prices: []entities.ItemPrice{
			entities.NewItemPrice("Whole Milk", 1.00, false),
			entities.NewItemPrice("Large Eggs (dozen)", 2.00, false),
		},
	}
	manager.Register("FreshMart", provider)

	result := manager.GetPricesForStore(context.Background(), "FRESHMART #204", testItems())

	assert.False(t, result.UsedMockData)
	assert.Equal(t, 1, provider.calls)
}
