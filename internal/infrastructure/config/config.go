package config

import (
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Discovery DiscoveryConfig `yaml:"discovery" mapstructure:"discovery"`
	Pricing   PricingConfig   `yaml:"pricing" mapstructure:"pricing"`
	RateLimit RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" mapstructure:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// CacheConfig contains cache system configuration. StoreTTL covers cached
// store lists (stores move rarely), PriceTTL covers cached per-item prices
// (prices drift faster).
type CacheConfig struct {
	Backend  string        `yaml:"backend" mapstructure:"backend"`
	StoreTTL time.Duration `yaml:"store_ttl" mapstructure:"store_ttl"`
	PriceTTL time.Duration `yaml:"price_ttl" mapstructure:"price_ttl"`
	Redis    RedisConfig   `yaml:"redis" mapstructure:"redis"`
}

// RedisConfig contains Redis-specific configuration.
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
}

// DiscoveryConfig contains store discovery (places API) configuration.
type DiscoveryConfig struct {
	GeoapifyURL    string        `yaml:"geoapify_url" mapstructure:"geoapify_url"`
	APIKey         string        `yaml:"api_key" mapstructure:"api_key"`
	DefaultRadius  int           `yaml:"default_radius" mapstructure:"default_radius"`
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`
	MaxRetries     int           `yaml:"max_retries" mapstructure:"max_retries"`
}

// PricingConfig contains price resolution configuration. ForceMockData
// bypasses every real provider and serves deterministic mock prices, which
// is the demo mode.
type PricingConfig struct {
	ForceMockData bool `yaml:"force_mock_data" mapstructure:"force_mock_data"`
}

// RateLimitConfig contains token-bucket rate limiting configuration.
type RateLimitConfig struct {
	Enabled    bool `yaml:"enabled" mapstructure:"enabled"`
	Capacity   int  `yaml:"capacity" mapstructure:"capacity"`
	RefillRate int  `yaml:"refill_rate" mapstructure:"refill_rate"`
}

// LoggingConfig contains logging system configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			Backend:  "memory",
			StoreTTL: 24 * time.Hour,
			PriceTTL: 4 * time.Hour,
			Redis: RedisConfig{
				Addr:     "localhost:6379",
				Password: "",
				DB:       0,
			},
		},
		Discovery: DiscoveryConfig{
			GeoapifyURL:    "https://api.geoapify.com/v2/places",
			APIKey:         "",
			DefaultRadius:  5000,
			RequestTimeout: 10 * time.Second,
			MaxRetries:     3,
		},
		Pricing: PricingConfig{
			ForceMockData: false,
		},
		RateLimit: RateLimitConfig{
			Enabled:    true,
			Capacity:   100,
			RefillRate: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
