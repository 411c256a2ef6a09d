package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Loader handles configuration loading using Viper.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader instance.
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// Load loads configuration from files and environment variables.
func (l *Loader) Load() (*Config, error) {
	l.setupViper()

	if err := l.v.ReadInConfig(); err != nil {
		// Missing config.yaml is fine: run on env vars and defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := GetDefaultConfig()
	if err := l.v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	l.overrideWithEnvVars(config)

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setupViper configures Viper to read files and env vars.
func (l *Loader) setupViper() {
	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")

	l.v.AddConfigPath("./configs")
	l.v.AddConfigPath("../configs")
	l.v.AddConfigPath(".")
	l.v.AddConfigPath("/etc/grocery-price-finder")

	l.v.AutomaticEnv()
	l.v.SetEnvPrefix("GROCERY") // GROCERY_SERVER_PORT, GROCERY_CACHE_BACKEND, ...
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	l.bindEnvVars()
}

// bindEnvVars maps the short, unprefixed environment variables the service
// has historically recognized onto configuration keys.
func (l *Loader) bindEnvVars() {
	envMappings := map[string]string{
		"server.port":              "PORT",
		"cache.backend":            "CACHE_BACKEND",
		"cache.redis.addr":         "REDIS_ADDR",
		"cache.redis.password":     "REDIS_PASSWORD",
		"cache.redis.db":           "REDIS_DB",
		"discovery.geoapify_url":   "GEOAPIFY_URL",
		"discovery.api_key":        "GEOAPIFY_API_KEY",
		"discovery.default_radius": "STORE_SEARCH_RADIUS",
		"logging.level":            "LOG_LEVEL",
		"logging.format":           "LOG_FORMAT",
		"rate_limit.enabled":       "RATE_LIMIT_ENABLED",
		"rate_limit.capacity":      "RATE_LIMIT_CAPACITY",
		"rate_limit.refill_rate":   "RATE_LIMIT_REFILL_RATE",
	}

	for configKey, envVar := range envMappings {
		_ = l.v.BindEnv(configKey, envVar)
	}
}

// overrideWithEnvVars handles env vars that need parsing beyond what Viper
// binding gives us.
func (l *Loader) overrideWithEnvVars(config *Config) {
	if forceMock := os.Getenv("FORCE_MOCK_DATA"); forceMock == "true" || forceMock == "1" {
		config.Pricing.ForceMockData = true
	}

	// TTLs are exposed as plain seconds for interop with the persistent
	// cache deployment scripts.
	if storeTTL := os.Getenv("STORE_TTL_SECONDS"); storeTTL != "" {
		if seconds, err := strconv.Atoi(storeTTL); err == nil && seconds > 0 {
			config.Cache.StoreTTL = time.Duration(seconds) * time.Second
		}
	}
	if priceTTL := os.Getenv("PRICE_TTL_SECONDS"); priceTTL != "" {
		if seconds, err := strconv.Atoi(priceTTL); err == nil && seconds > 0 {
			config.Cache.PriceTTL = time.Duration(seconds) * time.Second
		}
	}
}

// Load is a convenience wrapper around a one-shot Loader.
func Load() (*Config, error) {
	return NewLoader().Load()
}
