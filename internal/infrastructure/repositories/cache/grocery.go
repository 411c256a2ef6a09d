package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/interfaces"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/logging"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/metrics"
)

// GroceryCache stores per-store-per-product prices and per-location store
// lists on top of any interfaces.Cache backend, with an independent TTL per
// entry class.
//
// Key formats are part of the service's external contract (a persistent
// cache swap must interoperate) and must not change:
//
//	stores:<lat%.3f>:<lng%.3f>:<radius>
//	price:<lowercase(trim(storeName))>:<productId>
//
// Coordinates are rounded to 3 decimal places (~100 m) so nearby queries
// share one store-list entry. Price keys use the stable product id, never
// the display name.
type GroceryCache struct {
	backend  interfaces.Cache
	storeTTL time.Duration
	priceTTL time.Duration
}

// NewGroceryCache creates a grocery cache adapter over the given backend.
func NewGroceryCache(backend interfaces.Cache, storeTTL, priceTTL time.Duration) *GroceryCache {
	return &GroceryCache{
		backend:  backend,
		storeTTL: storeTTL,
		priceTTL: priceTTL,
	}
}

// StoreListKey builds the cache key for a store list lookup.
func StoreListKey(lat, lng float64, radiusMeters int) string {
	return fmt.Sprintf("stores:%.3f:%.3f:%d", lat, lng, radiusMeters)
}

// PriceKey builds the cache key for a per-store-per-product price.
func PriceKey(storeName string, productID int) string {
	return fmt.Sprintf("price:%s:%d", strings.ToLower(strings.TrimSpace(storeName)), productID)
}

// GetStoreList returns the cached store list for a location, if present.
func (g *GroceryCache) GetStoreList(ctx context.Context, lat, lng float64, radiusMeters int) ([]entities.Store, bool) {
	key := StoreListKey(lat, lng, radiusMeters)

	raw, err := g.backend.Get(ctx, key)
	if err != nil {
		if !IsMiss(err) {
			logging.WarnWithError(ctx, "Store list cache read failed", err, logging.Fields{
				logging.FieldCacheKey: key,
			})
			metrics.RecordCacheOperation("get", "error")
		} else {
			metrics.RecordCacheOperation("get", "miss")
		}
		return nil, false
	}

	var stores []entities.Store
	if err := json.Unmarshal([]byte(raw), &stores); err != nil {
		logging.WarnWithError(ctx, "Cached store list is corrupt, dropping", err, logging.Fields{
			logging.FieldCacheKey: key,
		})
		_ = g.backend.Delete(ctx, key)
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	}

	metrics.RecordCacheOperation("get", "hit")
	logging.CacheOperation(ctx, "get", key, true, logging.Fields{"stores": len(stores)})
	return stores, true
}

// PutStoreList caches the store list for a location.
func (g *GroceryCache) PutStoreList(ctx context.Context, lat, lng float64, radiusMeters int, stores []entities.Store) {
	key := StoreListKey(lat, lng, radiusMeters)

	raw, err := json.Marshal(stores)
	if err != nil {
		logging.WarnWithError(ctx, "Failed to encode store list for cache", err, logging.Fields{
			logging.FieldCacheKey: key,
		})
		return
	}

	if err := g.backend.Set(ctx, key, string(raw), g.storeTTL); err != nil {
		metrics.RecordCacheOperation("set", "error")
		logging.WarnWithError(ctx, "Failed to cache store list", err, logging.Fields{
			logging.FieldCacheKey: key,
		})
		return
	}
	metrics.RecordCacheOperation("set", "success")
}

// GetPrice returns the cached price for a product at a store, if present.
func (g *GroceryCache) GetPrice(ctx context.Context, storeName string, productID int) (float64, bool) {
	key := PriceKey(storeName, productID)

	raw, err := g.backend.Get(ctx, key)
	if err != nil {
		if !IsMiss(err) {
			logging.WarnWithError(ctx, "Price cache read failed", err, logging.Fields{
				logging.FieldCacheKey: key,
			})
			metrics.RecordCacheOperation("get", "error")
		} else {
			metrics.RecordCacheOperation("get", "miss")
		}
		return 0, false
	}

	var price float64
	if err := json.Unmarshal([]byte(raw), &price); err != nil {
		_ = g.backend.Delete(ctx, key)
		metrics.RecordCacheOperation("get", "miss")
		return 0, false
	}

	metrics.RecordCacheOperation("get", "hit")
	return price, true
}

// PutPrice caches a price for a product at a store. A nil price is a no-op:
// absent prices are never cached, so a later retry can succeed without
// waiting out a TTL.
func (g *GroceryCache) PutPrice(ctx context.Context, storeName string, productID int, price *float64) {
	if price == nil {
		return
	}

	key := PriceKey(storeName, productID)
	raw, err := json.Marshal(*price)
	if err != nil {
		return
	}

	if err := g.backend.Set(ctx, key, string(raw), g.priceTTL); err != nil {
		metrics.RecordCacheOperation("set", "error")
		logging.WarnWithError(ctx, "Failed to cache price", err, logging.Fields{
			logging.FieldCacheKey: key,
			logging.FieldStore:    storeName,
		})
		return
	}
	metrics.RecordCacheOperation("set", "success")
}
