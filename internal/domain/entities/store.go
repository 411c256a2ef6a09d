package entities

// Store is a nearby grocery store candidate produced by store discovery.
// IDs are source-prefixed ("geoapify-<id>", "osm-<type>-<id>") so results
// from different discovery backends never collide. Stores are immutable
// after discovery; nothing is persisted across requests beyond the cache.
type Store struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	WebsiteURL     string   `json:"website_url,omitempty"`
}

// StoreWithPrices is a Store extended with the priced shopping list and the
// computed total for one comparison request.
//
// Items always has exactly one entry per requested item, in request order.
// Total is present only when every item price is present; a single missing
// price forces Total to nil so partial totals are never ranked against
// complete ones.
type StoreWithPrices struct {
	Store
	Items          []ItemPrice `json:"items"`
	Total          *float64    `json:"total,omitempty"`
	UsedMockData   bool        `json:"used_mock_data"`
	MockDataReason string      `json:"mock_data_reason,omitempty"`
}

// HasCompleteTotal reports whether every item at this store was priced.
func (s *StoreWithPrices) HasCompleteTotal() bool {
	return s.Total != nil
}

// ComparisonStats are read-only aggregate counts over a comparison result,
// used for observability rather than correctness.
type ComparisonStats struct {
	TotalStores              int `json:"total_stores"`
	StoresWithCompletePrices int `json:"stores_with_complete_prices"`
	StoresUsingMockData      int `json:"stores_using_mock_data"`
}
