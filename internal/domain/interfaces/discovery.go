package interfaces

import (
	"context"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
)

// StoreDiscovery resolves a location to a ranked list of nearby grocery
// stores. Implementations cache results and fall back to a deterministic
// mock store list on any external failure or empty result; they never
// return an error.
type StoreDiscovery interface {
	FindNearbyStores(ctx context.Context, latitude, longitude float64, radiusMeters int) []entities.Store
}
