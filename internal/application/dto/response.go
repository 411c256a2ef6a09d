package dto

import (
	"time"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
)

// ItemPriceData is one priced item in a store row.
type ItemPriceData struct {
	ItemName   string   `json:"item_name"`
	Price      *float64 `json:"price,omitempty"`
	Currency   string   `json:"currency"`
	IsMockData bool     `json:"is_mock_data"`
}

// StoreResult is one ranked store with its priced shopping list.
type StoreResult struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	DistanceMeters *float64        `json:"distance_meters,omitempty"`
	WebsiteURL     string          `json:"website_url,omitempty"`
	Items          []ItemPriceData `json:"items"`
	Total          *float64        `json:"total,omitempty"`
	UsedMockData   bool            `json:"used_mock_data"`
	MockDataReason string          `json:"mock_data_reason,omitempty"`
}

// StatsData summarizes a comparison result set.
type StatsData struct {
	TotalStores              int `json:"total_stores"`
	StoresWithCompletePrices int `json:"stores_with_complete_prices"`
	StoresUsingMockData      int `json:"stores_using_mock_data"`
}

// CompareResponse is the body returned by POST /api/v1/compare.
type CompareResponse struct {
	Stores    []StoreResult `json:"stores"`
	Stats     StatsData     `json:"stats"`
	Timestamp time.Time     `json:"timestamp"`
}

// ProductData is one catalog product in a search response.
type ProductData struct {
	ID          int    `json:"id"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
}

// ProductsResponse is the body returned by GET /api/v1/products.
type ProductsResponse struct {
	Products []ProductData `json:"products"`
}

// ErrorResponse is the standard error body for all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services,omitempty"`
}

// NewErrorResponse builds a standard error body.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error:   code,
		Message: message,
	}
}

// NewProductsResponse maps catalog products into a search response.
func NewProductsResponse(products []entities.Product) *ProductsResponse {
	data := make([]ProductData, len(products))
	for i, p := range products {
		data[i] = ProductData{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			Category:    p.Category,
		}
	}
	return &ProductsResponse{Products: data}
}
