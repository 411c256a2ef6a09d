package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/interfaces"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/logging"
)

// CacheType identifies a cache backend implementation.
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeRedis  CacheType = "redis"
)

// Config holds backend selection options for the factory.
type Config struct {
	Type     CacheType
	RedisURL string
	RedisDB  int
	Password string
}

// Factory creates cache instances from configuration.
type Factory struct{}

// NewFactory creates a new cache factory.
func NewFactory() *Factory {
	return &Factory{}
}

// CreateCache creates a cache instance based on configuration.
func (f *Factory) CreateCache(config Config) (interfaces.Cache, error) {
	ctx := context.Background()

	switch config.Type {
	case CacheTypeMemory:
		logging.Info(ctx, "Creating memory cache", logging.Fields{
			"type": "memory",
		})
		return NewMemoryCache(), nil

	case CacheTypeRedis:
		logging.Info(ctx, "Creating Redis cache", logging.Fields{
			"type":     "redis",
			"addr":     config.RedisURL,
			"database": config.RedisDB,
		})
		return f.createRedisCache(config)

	default:
		return nil, fmt.Errorf("unsupported cache type: %s", config.Type)
	}
}

// createRedisCache creates the client and verifies the connection.
func (f *Factory) createRedisCache(config Config) (interfaces.Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisURL,
		Password: config.Password,
		DB:       config.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", config.RedisURL, err)
	}

	return NewRedisCacheWithClient(rdb), nil
}
