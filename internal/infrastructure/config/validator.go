package config

import (
	"fmt"
	"strings"
)

// Validate checks a loaded configuration for values the service cannot run
// with. It is called once at startup; components assume a valid Config.
func Validate(config *Config) error {
	var problems []string

	if config.Server.Port < 1 || config.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port must be in 1-65535, got %d", config.Server.Port))
	}
	if config.Server.ShutdownTimeout <= 0 {
		problems = append(problems, "server.shutdown_timeout must be positive")
	}

	switch config.Cache.Backend {
	case "memory", "redis":
	default:
		problems = append(problems, fmt.Sprintf("cache.backend must be memory or redis, got %q", config.Cache.Backend))
	}
	if config.Cache.StoreTTL <= 0 {
		problems = append(problems, "cache.store_ttl must be positive")
	}
	if config.Cache.PriceTTL <= 0 {
		problems = append(problems, "cache.price_ttl must be positive")
	}
	if config.Cache.Backend == "redis" && config.Cache.Redis.Addr == "" {
		problems = append(problems, "cache.redis.addr is required for the redis backend")
	}

	if config.Discovery.DefaultRadius <= 0 {
		problems = append(problems, "discovery.default_radius must be positive")
	}
	if config.Discovery.RequestTimeout <= 0 {
		problems = append(problems, "discovery.request_timeout must be positive")
	}
	if config.Discovery.MaxRetries < 1 {
		problems = append(problems, "discovery.max_retries must be at least 1")
	}

	if config.RateLimit.Enabled {
		if config.RateLimit.Capacity < 1 {
			problems = append(problems, "rate_limit.capacity must be at least 1")
		}
		if config.RateLimit.RefillRate < 1 {
			problems = append(problems, "rate_limit.refill_rate must be at least 1")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}
