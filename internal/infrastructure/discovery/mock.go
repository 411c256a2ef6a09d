package discovery

import (
	"fmt"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
)

// mockStoreSeed is the deterministic fallback store list. IDs carry the
// osm prefix used for non-Geoapify sources so downstream code treats them
// like any other discovery result.
var mockStoreSeed = []struct {
	idSuffix string
	name     string
	street   string
	website  string
}{
	{"100001", "Walmart Supercenter", "100 Commerce Blvd", "https://www.walmart.com"},
	{"100002", "Kroger", "215 Maple Ave", "https://www.kroger.com"},
	{"100003", "Target", "340 Market St", "https://www.target.com"},
	{"100004", "ALDI", "455 Pine Rd", "https://www.aldi.us"},
	{"100005", "Whole Foods Market", "580 Harbor Dr", "https://www.wholefoodsmarket.com"},
	{"100006", "Trader Joe's", "625 Sunset Way", "https://www.traderjoes.com"},
}

// MockStoreList returns the deterministic fallback stores for a location.
// Distances grow with list position so the set still ranks sensibly; the
// same input always yields the same list.
func MockStoreList(lat, lng float64) []entities.Store {
	stores := make([]entities.Store, len(mockStoreSeed))
	for i, seed := range mockStoreSeed {
		distance := float64(400 * (i + 1))
		stores[i] = entities.Store{
			ID:             "osm-node-" + seed.idSuffix,
			Name:           seed.name,
			Address:        fmt.Sprintf("%s (near %.3f, %.3f)", seed.street, lat, lng),
			DistanceMeters: &distance,
			WebsiteURL:     seed.website,
		}
	}
	return stores
}
