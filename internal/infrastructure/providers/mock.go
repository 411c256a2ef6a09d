package providers

import (
	"context"
	"hash/fnv"

	"github.com/shopspring/decimal"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/interfaces"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/logging"
)

// priceRange bounds the unit price the mock generator may produce for an
// item.
type priceRange struct {
	min float64
	max float64
}

// knownPriceRanges maps normalized item names to realistic unit price
// ranges. Items not listed fall back to defaultPriceRange.
var knownPriceRanges = map[string]priceRange{
	"whole milk":       {3.50, 5.00},
	"large eggs":       {2.50, 6.00},
	"butter":           {3.00, 6.50},
	"cheddar cheese":   {3.50, 7.00},
	"greek yogurt":     {4.00, 7.00},
	"white bread":      {2.00, 4.50},
	"bagels":           {3.00, 5.50},
	"chicken breast":   {6.00, 12.00},
	"ground beef":      {5.00, 9.00},
	"bacon":            {5.00, 9.50},
	"bananas":          {0.50, 1.50},
	"apples":           {1.50, 4.00},
	"tomatoes":         {1.50, 4.00},
	"potatoes":         {2.50, 6.00},
	"yellow onions":    {1.00, 3.00},
	"white rice":       {2.00, 8.00},
	"spaghetti":        {1.00, 3.00},
	"peanut butter":    {2.50, 6.00},
	"breakfast cereal": {3.00, 6.50},
	"granulated sugar": {2.50, 5.00},
	"ground coffee":    {7.00, 15.00},
	"orange juice":     {3.00, 6.00},
	"sparkling water":  {3.50, 7.50},
	"olive oil":        {7.00, 18.00},
}

var defaultPriceRange = priceRange{1.00, 8.00}

// MockProvider generates deterministic synthetic prices. The same
// normalized item name always yields the same unit price, within and across
// runs, because the price is derived from a hash of the name rather than a
// random source. That stability matters for tests and for demo sessions.
type MockProvider struct{}

// NewMockProvider creates the mock price provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Name identifies the provider in logs and fallback reasons.
func (m *MockProvider) Name() string {
	return "mock"
}

// IsAvailable always reports true: the mock provider is the availability
// floor of the whole pricing pipeline.
func (m *MockProvider) IsAvailable(ctx context.Context) bool {
	return true
}

// GetPrices generates a price for every item. The mock never misses an
// item and never fails.
func (m *MockProvider) GetPrices(ctx context.Context, items []entities.GroceryItem) ([]entities.ItemPrice, error) {
	prices := make([]entities.ItemPrice, len(items))
	for i, item := range items {
		prices[i] = entities.NewItemPrice(item.DisplayName, m.priceFor(item), true)
	}

	logging.Debug(ctx, "Mock provider generated prices", logging.Fields{
		logging.FieldProvider: m.Name(),
		logging.FieldItems:    len(items),
	})
	return prices, nil
}

// UnitPrice returns the deterministic unit price for a normalized item
// name. Exposed so tests can verify end-to-end totals against the
// generator's formula.
func (m *MockProvider) UnitPrice(normalizedName string) float64 {
	r, ok := knownPriceRanges[normalizedName]
	if !ok {
		r = defaultPriceRange
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(normalizedName))
	fraction := float64(h.Sum64()%10000) / 10000.0

	unit := decimal.NewFromFloat(r.min).Add(
		decimal.NewFromFloat(r.max - r.min).Mul(decimal.NewFromFloat(fraction)))
	return unit.Round(2).InexactFloat64()
}

func (m *MockProvider) priceFor(item entities.GroceryItem) float64 {
	quantity := item.Quantity
	if quantity < 1 {
		quantity = 1
	}
	total := decimal.NewFromFloat(m.UnitPrice(item.NormalizedName)).
		Mul(decimal.NewFromInt(int64(quantity)))
	return total.Round(2).InexactFloat64()
}

var _ interfaces.PriceProvider = (*MockProvider)(nil)
