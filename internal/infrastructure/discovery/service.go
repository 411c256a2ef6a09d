package discovery

import (
	"context"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/interfaces"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/config"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/logging"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/metrics"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/repositories/cache"
)

// Service resolves a location to nearby grocery stores: cache first, the
// places API next, the deterministic mock list as the floor. It never
// returns an error to its caller.
type Service struct {
	groceryCache  *cache.GroceryCache
	client        *GeoapifyClient
	defaultRadius int
}

// NewService creates the store discovery service.
func NewService(groceryCache *cache.GroceryCache, client *GeoapifyClient, cfg config.DiscoveryConfig) *Service {
	return &Service{
		groceryCache:  groceryCache,
		client:        client,
		defaultRadius: cfg.DefaultRadius,
	}
}

// FindNearbyStores returns candidate stores for a coordinate. A radius of
// 0 or below uses the configured default.
func (s *Service) FindNearbyStores(ctx context.Context, latitude, longitude float64, radiusMeters int) []entities.Store {
	if radiusMeters <= 0 {
		radiusMeters = s.defaultRadius
	}

	if stores, ok := s.groceryCache.GetStoreList(ctx, latitude, longitude, radiusMeters); ok {
		metrics.RecordDiscovery("cache")
		return stores
	}

	if !s.client.IsConfigured() {
		logging.Debug(ctx, "No places API key configured, serving mock store list", nil)
		metrics.RecordDiscovery("mock")
		return MockStoreList(latitude, longitude)
	}

	stores, err := s.client.FetchNearby(ctx, latitude, longitude, radiusMeters)
	if err != nil {
		logging.WarnWithError(ctx, "Store discovery failed, serving mock store list", err, logging.Fields{
			"latitude":  latitude,
			"longitude": longitude,
			"radius_m":  radiusMeters,
		})
		metrics.RecordDiscovery("mock")
		return MockStoreList(latitude, longitude)
	}
	if len(stores) == 0 {
		logging.Info(ctx, "No stores found nearby, serving mock store list", logging.Fields{
			"latitude":  latitude,
			"longitude": longitude,
			"radius_m":  radiusMeters,
		})
		metrics.RecordDiscovery("mock")
		return MockStoreList(latitude, longitude)
	}

	// Only real results are cached; the mock list is free to generate
	s.groceryCache.PutStoreList(ctx, latitude, longitude, radiusMeters, stores)
	metrics.RecordDiscovery("geoapify")

	logging.Info(ctx, "Discovered nearby stores", logging.Fields{
		"stores":   len(stores),
		"radius_m": radiusMeters,
	})
	return stores
}

var _ interfaces.StoreDiscovery = (*Service)(nil)
