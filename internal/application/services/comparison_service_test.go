package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
)

// scriptedManager returns a canned result per store name; unknown stores
// panic so the degradation path can be exercised.
type scriptedManager struct {
	results map[string]entities.StorePriceResult
}

func (m *scriptedManager) GetPricesForStore(ctx context.Context, storeName string, items []entities.GroceryItem) entities.StorePriceResult {
	result, ok := m.results[storeName]
	if !ok {
		panic("no price source for " + storeName)
	}
	return result
}

func completeResult(prices ...float64) entities.StorePriceResult {
	items := make([]entities.ItemPrice, len(prices))
	for i, p := range prices {
		items[i] = entities.NewItemPrice("item", p, false)
	}
	return entities.StorePriceResult{Prices: items}
}

func incompleteResult(prices ...*float64) entities.StorePriceResult {
	items := make([]entities.ItemPrice, len(prices))
	for i, p := range prices {
		if p != nil {
			items[i] = entities.NewItemPrice("item", *p, false)
		} else {
			items[i] = entities.NewAbsentItemPrice("item", false)
		}
	}
	return entities.StorePriceResult{Prices: items}
}

func comparisonItems(n int) []entities.GroceryItem {
	items := make([]entities.GroceryItem, n)
	for i := range items {
		items[i] = entities.GroceryItem{
			ProductID:      i + 1,
			DisplayName:    "item",
			NormalizedName: "item",
			Quantity:       1,
		}
	}
	return items
}

func TestCompareStores_SortsByTotalAscending(t *testing.T) {
	manager := &scriptedManager{results: map[string]entities.StorePriceResult{
		"Pricey":  completeResult(10.00, 5.00),
		"Cheap":   completeResult(1.00, 2.00),
		"Midtier": completeResult(4.00, 3.00),
	}}
	svc := NewComparisonService(manager)

	stores := []entities.Store{
		{ID: "s1", Name: "Pricey"},
		{ID: "s2", Name: "Cheap"},
		{ID: "s3", Name: "Midtier"},
	}

	results := svc.CompareStores(context.Background(), stores, comparisonItems(2))

	require.Len(t, results, 3)
	assert.Equal(t, "Cheap", results[0].Name)
	assert.Equal(t, "Midtier", results[1].Name)
	assert.Equal(t, "Pricey", results[2].Name)
	assert.Equal(t, 3.00, *results[0].Total)
	assert.Equal(t, 7.00, *results[1].Total)
	assert.Equal(t, 15.00, *results[2].Total)
}

func TestCompareStores_IncompleteTotalsSortLast(t *testing.T) {
	price := 2.00
	manager := &scriptedManager{results: map[string]entities.StorePriceResult{
		"NoEggs":   incompleteResult(&price, nil),
		"Complete": completeResult(50.00, 50.00),
	}}
	svc := NewComparisonService(manager)

	stores := []entities.Store{
		{ID: "s1", Name: "NoEggs"},
		{ID: "s2", Name: "Complete"},
	}

	results := svc.CompareStores(context.Background(), stores, comparisonItems(2))

	require.Len(t, results, 2)
	// Even a very expensive complete store outranks an incomplete one
	assert.Equal(t, "Complete", results[0].Name)
	assert.Equal(t, "NoEggs", results[1].Name)
	assert.Nil(t, results[1].Total)
}

func TestCompareStores_CompletenessRule(t *testing.T) {
	price := 3.33
	manager := &scriptedManager{results: map[string]entities.StorePriceResult{
		"Partial": incompleteResult(&price, nil, &price),
	}}
	svc := NewComparisonService(manager)

	results := svc.CompareStores(context.Background(),
		[]entities.Store{{ID: "s1", Name: "Partial"}}, comparisonItems(3))

	require.Len(t, results, 1)
	assert.Nil(t, results[0].Total, "a single absent price forces an absent total")
	assert.Len(t, results[0].Items, 3)
}

func TestCompareStores_PanicDegradesToResultRow(t *testing.T) {
	manager := &scriptedManager{results: map[string]entities.StorePriceResult{
		"Healthy": completeResult(1.00, 2.00),
		// "Exploding" is absent from the script, so the manager panics
	}}
	svc := NewComparisonService(manager)

	stores := []entities.Store{
		{ID: "s1", Name: "Exploding"},
		{ID: "s2", Name: "Healthy"},
	}
	items := comparisonItems(2)

	results := svc.CompareStores(context.Background(), stores, items)

	require.Len(t, results, 2, "every input store must produce a result row")

	// The healthy store sorts first; the degraded one last
	assert.Equal(t, "Healthy", results[0].Name)

	degraded := results[1]
	assert.Equal(t, "Exploding", degraded.Name)
	assert.Nil(t, degraded.Total)
	assert.True(t, degraded.UsedMockData)
	assert.Contains(t, degraded.MockDataReason, "Error:")
	require.Len(t, degraded.Items, len(items))
	for _, p := range degraded.Items {
		assert.Nil(t, p.Price)
	}
}

func TestCompareStores_ItemOrderMatchesInput(t *testing.T) {
	manager := &scriptedManager{results: map[string]entities.StorePriceResult{
		"Store": {Prices: []entities.ItemPrice{
			entities.NewItemPrice("first", 1.00, false),
			entities.NewItemPrice("second", 2.00, false),
			entities.NewItemPrice("third", 3.00, false),
		}},
	}}
	svc := NewComparisonService(manager)

	results := svc.CompareStores(context.Background(),
		[]entities.Store{{ID: "s1", Name: "Store"}}, comparisonItems(3))

	require.Len(t, results[0].Items, 3)
	assert.Equal(t, "first", results[0].Items[0].ItemName)
	assert.Equal(t, "second", results[0].Items[1].ItemName)
	assert.Equal(t, "third", results[0].Items[2].ItemName)
}

func TestCompareStores_TotalRounding(t *testing.T) {
	// 0.1 + 0.2 must come out as exactly 0.30
	manager := &scriptedManager{results: map[string]entities.StorePriceResult{
		"Store": completeResult(0.1, 0.2),
	}}
	svc := NewComparisonService(manager)

	results := svc.CompareStores(context.Background(),
		[]entities.Store{{ID: "s1", Name: "Store"}}, comparisonItems(2))

	require.NotNil(t, results[0].Total)
	assert.Equal(t, 0.30, *results[0].Total)
}

func TestCompareStores_EmptyStoreList(t *testing.T) {
	svc := NewComparisonService(&scriptedManager{})

	results := svc.CompareStores(context.Background(), nil, comparisonItems(1))
	assert.Empty(t, results)
}

func TestGetStats(t *testing.T) {
	total := 9.99
	results := []entities.StoreWithPrices{
		{Total: &total, UsedMockData: false},
		{Total: &total, UsedMockData: true},
		{Total: nil, UsedMockData: true},
	}

	stats := NewComparisonService(&scriptedManager{}).GetStats(results)

	assert.Equal(t, 3, stats.TotalStores)
	assert.Equal(t, 2, stats.StoresWithCompletePrices)
	assert.Equal(t, 2, stats.StoresUsingMockData)
}

func TestGetStats_Empty(t *testing.T) {
	stats := NewComparisonService(&scriptedManager{}).GetStats(nil)
	assert.Zero(t, stats.TotalStores)
	assert.Zero(t, stats.StoresWithCompletePrices)
	assert.Zero(t, stats.StoresUsingMockData)
}
