package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/interfaces"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/logging"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/metrics"
)

// comparisonService implements the ComparisonService interface.
type comparisonService struct {
	manager interfaces.PriceProviderManager
}

// NewComparisonService creates the store comparison service on top of a
// provider manager.
func NewComparisonService(manager interfaces.PriceProviderManager) interfaces.ComparisonService {
	return &comparisonService{manager: manager}
}

// CompareStores prices the shopping list at every candidate store
// concurrently and returns one ranked result per input store.
//
// Per-store pipelines share nothing but the cache behind the provider
// manager, so they run as plain goroutines writing to disjoint slice slots.
// The sort waits for every store; there is no early return on first
// completion.
func (s *comparisonService) CompareStores(ctx context.Context, stores []entities.Store, items []entities.GroceryItem) []entities.StoreWithPrices {
	startTime := time.Now()

	results := make([]entities.StoreWithPrices, len(stores))

	var wg sync.WaitGroup
	for i, store := range stores {
		wg.Add(1)
		go func(i int, store entities.Store) {
			defer wg.Done()
			results[i] = s.compareStore(ctx, store, items)
		}(i, store)
	}
	wg.Wait()

	// Ascending by total; stores with an incomplete total rank after every
	// store with a complete one. The stable sort keeps input order among
	// incomplete stores.
	sort.SliceStable(results, func(a, b int) bool {
		ta, tb := results[a].Total, results[b].Total
		switch {
		case ta == nil:
			return false
		case tb == nil:
			return true
		default:
			return *ta < *tb
		}
	})

	metrics.RecordComparison(len(stores), time.Since(startTime).Seconds())
	logging.Info(ctx, "Store comparison completed", logging.Fields{
		"stores":      len(stores),
		"items_count": len(items),
		"duration_ms": time.Since(startTime).Milliseconds(),
	})

	return results
}

// compareStore runs the per-store pipeline. It never lets a failure
// escape: a panic anywhere in the pipeline degrades to a result row with
// every price absent, so the batch always has one entry per store.
func (s *comparisonService) compareStore(ctx context.Context, store entities.Store, items []entities.GroceryItem) (result entities.StoreWithPrices) {
	defer func() {
		if r := recover(); r != nil {
			metrics.RecordFallbackActivation("pipeline_panic")
			logging.Error(ctx, "Store pricing pipeline failed", logging.Fields{
				logging.FieldStore: store.Name,
				logging.FieldError: fmt.Sprintf("%v", r),
			})
			result = s.degradedResult(store, items, fmt.Sprintf("Error: %v", r))
		}
	}()

	lookup := s.manager.GetPricesForStore(ctx, store.Name, items)

	return entities.StoreWithPrices{
		Store:          store,
		Items:          lookup.Prices,
		Total:          computeTotal(lookup.Prices),
		UsedMockData:   lookup.UsedMockData,
		MockDataReason: lookup.MockDataReason,
	}
}

// degradedResult synthesizes the result row for a store whose pipeline
// failed outright.
func (s *comparisonService) degradedResult(store entities.Store, items []entities.GroceryItem, reason string) entities.StoreWithPrices {
	prices := make([]entities.ItemPrice, len(items))
	for i, item := range items {
		prices[i] = entities.NewAbsentItemPrice(item.DisplayName, true)
	}
	return entities.StoreWithPrices{
		Store:          store,
		Items:          prices,
		UsedMockData:   true,
		MockDataReason: reason,
	}
}

// computeTotal sums the item prices only when none are absent. A single
// missing price makes the total absent: partial totals must never be ranked
// against complete ones.
func computeTotal(prices []entities.ItemPrice) *float64 {
	total := decimal.Zero
	for _, p := range prices {
		if p.Price == nil {
			return nil
		}
		total = total.Add(decimal.NewFromFloat(*p.Price))
	}
	rounded := total.Round(2).InexactFloat64()
	return &rounded
}

// GetStats computes read-only aggregate counts over a comparison result.
func (s *comparisonService) GetStats(results []entities.StoreWithPrices) entities.ComparisonStats {
	stats := entities.ComparisonStats{
		TotalStores: len(results),
	}
	for i := range results {
		if results[i].HasCompleteTotal() {
			stats.StoresWithCompletePrices++
		}
		if results[i].UsedMockData {
			stats.StoresUsingMockData++
		}
	}
	return stats
}
