package dto

import (
	"time"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
)

// ComparisonMapper converts domain comparison results to response DTOs.
type ComparisonMapper struct{}

// NewComparisonMapper creates a mapper instance.
func NewComparisonMapper() *ComparisonMapper {
	return &ComparisonMapper{}
}

// ToCompareResponse maps ranked stores and their stats into the response
// body, preserving ranking and item order.
func (m *ComparisonMapper) ToCompareResponse(results []entities.StoreWithPrices, stats entities.ComparisonStats) *CompareResponse {
	stores := make([]StoreResult, len(results))
	for i := range results {
		stores[i] = m.toStoreResult(&results[i])
	}

	return &CompareResponse{
		Stores: stores,
		Stats: StatsData{
			TotalStores:              stats.TotalStores,
			StoresWithCompletePrices: stats.StoresWithCompletePrices,
			StoresUsingMockData:      stats.StoresUsingMockData,
		},
		Timestamp: time.Now().UTC(),
	}
}

func (m *ComparisonMapper) toStoreResult(result *entities.StoreWithPrices) StoreResult {
	items := make([]ItemPriceData, len(result.Items))
	for i, item := range result.Items {
		items[i] = ItemPriceData{
			ItemName:   item.ItemName,
			Price:      item.Price,
			Currency:   item.Currency,
			IsMockData: item.IsMockData,
		}
	}

	return StoreResult{
		ID:             result.ID,
		Name:           result.Name,
		Address:        result.Address,
		DistanceMeters: result.DistanceMeters,
		WebsiteURL:     result.WebsiteURL,
		Items:          items,
		Total:          result.Total,
		UsedMockData:   result.UsedMockData,
		MockDataReason: result.MockDataReason,
	}
}
