package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/metrics"
)

func newTestGroceryCache() *GroceryCache {
	return NewGroceryCache(NewMemoryCache(), 24*time.Hour, 4*time.Hour)
}

func TestStoreListKey(t *testing.T) {
	tests := []struct {
		name   string
		lat    float64
		lng    float64
		radius int
		want   string
	}{
		{
			name:   "manhattan",
			lat:    40.712776,
			lng:    -74.005974,
			radius: 5000,
			want:   "stores:40.713:-74.006:5000",
		},
		{
			name:   "rounding reuses nearby coordinates",
			lat:    40.7129,
			lng:    -74.0061,
			radius: 5000,
			want:   "stores:40.713:-74.006:5000",
		},
		{
			name:   "zero coordinates",
			lat:    0,
			lng:    0,
			radius: 1000,
			want:   "stores:0.000:0.000:1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StoreListKey(tt.lat, tt.lng, tt.radius))
		})
	}
}

func TestPriceKey(t *testing.T) {
	tests := []struct {
		name      string
		storeName string
		productID int
		want      string
	}{
		{
			name:      "lowercases and trims store name",
			storeName: "  Walmart Supercenter ",
			productID: 42,
			want:      "price:walmart supercenter:42",
		},
		{
			name:      "already normalized",
			storeName: "aldi",
			productID: 1,
			want:      "price:aldi:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceKey(tt.storeName, tt.productID))
		})
	}
}

func TestGroceryCache_PriceRoundTrip(t *testing.T) {
	g := newTestGroceryCache()
	ctx := context.Background()

	price := 3.99
	g.PutPrice(ctx, "Walmart Supercenter", 1, &price)

	got, ok := g.GetPrice(ctx, "Walmart Supercenter", 1)
	require.True(t, ok)
	assert.Equal(t, 3.99, got)

	// Display-name variation of the same store still hits: the key uses
	// the normalized store name and the stable product id
	got, ok = g.GetPrice(ctx, "  walmart supercenter ", 1)
	require.True(t, ok)
	assert.Equal(t, 3.99, got)
}

func TestGroceryCache_PutPriceNilIsNoOp(t *testing.T) {
	g := newTestGroceryCache()
	ctx := context.Background()

	g.PutPrice(ctx, "Kroger", 7, nil)

	_, ok := g.GetPrice(ctx, "Kroger", 7)
	assert.False(t, ok, "absent prices must never be cached")
}

func TestGroceryCache_PriceMissIsNotAnError(t *testing.T) {
	g := newTestGroceryCache()

	got, ok := g.GetPrice(context.Background(), "Unknown Store", 99)
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestGroceryCache_StoreListRoundTrip(t *testing.T) {
	g := newTestGroceryCache()
	ctx := context.Background()

	distance := 420.5
	stores := []entities.Store{
		{ID: "geoapify-abc123", Name: "Walmart Supercenter", Address: "100 Main St", DistanceMeters: &distance},
		{ID: "osm-node-987", Name: "Kroger", Address: "200 Oak Ave"},
	}

	g.PutStoreList(ctx, 40.712776, -74.005974, 5000, stores)

	got, ok := g.GetStoreList(ctx, 40.712776, -74.005974, 5000)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "geoapify-abc123", got[0].ID)
	require.NotNil(t, got[0].DistanceMeters)
	assert.Equal(t, 420.5, *got[0].DistanceMeters)
	assert.Nil(t, got[1].DistanceMeters)
}

func TestGroceryCache_StoreListMiss(t *testing.T) {
	g := newTestGroceryCache()

	got, ok := g.GetStoreList(context.Background(), 51.5, -0.12, 5000)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestGroceryCache_SeparateTTLs(t *testing.T) {
	backend := NewMemoryCache()
	g := NewGroceryCache(backend, time.Minute, -1*time.Second)
	ctx := context.Background()

	price := 2.50
	g.PutPrice(ctx, "Aldi", 3, &price)
	g.PutStoreList(ctx, 1.0, 2.0, 1000, []entities.Store{{ID: "osm-node-1", Name: "Aldi"}})

	time.Sleep(1 * time.Millisecond)

	// Price entries use the (expired) price TTL, store lists the store TTL
	_, ok := g.GetPrice(ctx, "Aldi", 3)
	assert.False(t, ok)

	_, ok = g.GetStoreList(ctx, 1.0, 2.0, 1000)
	assert.True(t, ok)
}

type failingBackend struct{}

func (f *failingBackend) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("connection refused")
}

func (f *failingBackend) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.New("connection refused")
}

func (f *failingBackend) Delete(ctx context.Context, key string) error {
	return errors.New("connection refused")
}

func (f *failingBackend) Close() error { return nil }

func TestGroceryCache_BackendErrorCountsAsError(t *testing.T) {
	g := NewGroceryCache(&failingBackend{}, 24*time.Hour, 4*time.Hour)
	ctx := context.Background()

	errorsBefore := testutil.ToFloat64(metrics.CacheOperationsTotal.WithLabelValues("get", "error"))
	missesBefore := testutil.ToFloat64(metrics.CacheOperationsTotal.WithLabelValues("get", "miss"))

	_, ok := g.GetPrice(ctx, "Walmart Supercenter", 1)
	assert.False(t, ok)

	_, ok = g.GetStoreList(ctx, 40.7, -74.0, 5000)
	assert.False(t, ok)

	// Backend failures are not misses: each read records one "error"
	assert.Equal(t, errorsBefore+2,
		testutil.ToFloat64(metrics.CacheOperationsTotal.WithLabelValues("get", "error")))
	assert.Equal(t, missesBefore,
		testutil.ToFloat64(metrics.CacheOperationsTotal.WithLabelValues("get", "miss")))
}
