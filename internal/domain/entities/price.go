package entities

// DefaultCurrency is the only currency handled by this service.
const DefaultCurrency = "USD"

// ItemPrice is the price of a single grocery item at a single store.
// A nil Price means the item could not be found at that store; it is a
// normal outcome, never an error.
type ItemPrice struct {
	ItemName   string   `json:"item_name"`
	Price      *float64 `json:"price,omitempty"`
	Currency   string   `json:"currency"`
	IsMockData bool     `json:"is_mock_data"`
}

// NewItemPrice builds a present price for an item.
func NewItemPrice(itemName string, price float64, isMock bool) ItemPrice {
	return ItemPrice{
		ItemName:   itemName,
		Price:      &price,
		Currency:   DefaultCurrency,
		IsMockData: isMock,
	}
}

// NewAbsentItemPrice builds an "item not found" price entry.
func NewAbsentItemPrice(itemName string, isMock bool) ItemPrice {
	return ItemPrice{
		ItemName:   itemName,
		Currency:   DefaultCurrency,
		IsMockData: isMock,
	}
}

// StorePriceResult is the explicit outcome of a per-store price lookup.
// The fallback to mock data is represented in the result itself rather than
// as an error, so callers cannot mistake a degraded result for a failure.
type StorePriceResult struct {
	Prices         []ItemPrice `json:"prices"`
	UsedMockData   bool        `json:"used_mock_data"`
	MockDataReason string      `json:"mock_data_reason,omitempty"`
}
