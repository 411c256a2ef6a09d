package interfaces

import (
	"context"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
)

// ComparisonService ranks candidate stores by the total cost of a shopping
// list.
type ComparisonService interface {
	// CompareStores prices the item list at every store concurrently and
	// returns exactly one result per input store, sorted ascending by
	// total with incomplete totals last. It never returns an error:
	// per-store failures degrade to a mock-flagged result row.
	CompareStores(ctx context.Context, stores []entities.Store, items []entities.GroceryItem) []entities.StoreWithPrices

	// GetStats computes read-only aggregate counts over a result set.
	GetStats(results []entities.StoreWithPrices) entities.ComparisonStats
}
