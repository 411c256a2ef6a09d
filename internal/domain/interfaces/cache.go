package interfaces

import (
	"context"
	"time"
)

// Cache is the generic key-value backend shared by all cached data.
// Implementations are advisory: a miss is normal control flow reported via
// a sentinel error, never a failure of the calling operation.
type Cache interface {
	// Get retrieves a value, returning ErrKeyNotFound or ErrKeyExpired
	// from the repositories/cache package on a miss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Close releases any backend connections.
	Close() error
}
