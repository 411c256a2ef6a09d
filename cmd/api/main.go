package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/application/services"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/config"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/discovery"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/logging"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/metrics"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/products"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/providers"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/ratelimit"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/repositories/cache"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/web"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/web/handlers"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/web/server"
)

const serviceVersion = "1.0.0"

func main() {
	log.Println("Starting Grocery Price Finder...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging before anything else logs.
	loggerConfig := logging.DefaultConfig().
		WithLevel(logging.ParseLevel(cfg.Logging.Level)).
		WithFormat(logging.LogFormat(cfg.Logging.Format))
	structuredLogger, err := logging.NewStructuredLogger(loggerConfig)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logging.SetGlobalLogger(structuredLogger)

	ctx := context.Background()

	logging.Info(ctx, "Initializing service components", logging.Fields{
		"cache_backend":   cfg.Cache.Backend,
		"force_mock_data": cfg.Pricing.ForceMockData,
	})

	backend, err := cache.NewFactory().CreateCache(cache.Config{
		Type:     cache.CacheType(cfg.Cache.Backend),
		RedisURL: cfg.Cache.Redis.Addr,
		RedisDB:  cfg.Cache.Redis.DB,
		Password: cfg.Cache.Redis.Password,
	})
	if err != nil {
		logging.ErrorWithError(ctx, "Failed to create cache", err, nil)
		os.Exit(1)
	}
	defer backend.Close()

	groceryCache := cache.NewGroceryCache(backend, cfg.Cache.StoreTTL, cfg.Cache.PriceTTL)

	metrics.SetServiceInfo(serviceVersion, cfg.Cache.Backend)

	catalog := products.NewDefaultCatalog()

	providerManager := providers.NewManager(groceryCache, cfg.Pricing.ForceMockData)
	comparisonService := services.NewComparisonService(providerManager)

	geoapifyClient := discovery.NewGeoapifyClient(cfg.Discovery)
	discoveryService := discovery.NewService(groceryCache, geoapifyClient, cfg.Discovery)

	if !geoapifyClient.IsConfigured() {
		logging.Warn(ctx, "No places API key configured, store discovery will serve mock stores", nil)
	}

	compareHandler := handlers.NewCompareHandler(catalog, discoveryService, comparisonService)
	productHandler := handlers.NewProductHandler(catalog)
	healthHandler := handlers.NewHealthHandler(backend)

	rateLimiter := ratelimit.NewMiddleware(cfg.RateLimit)
	statusHandler := handlers.NewStatusHandler(serviceVersion, cfg.Cache.Backend, rateLimiter)

	router := web.NewRouter(compareHandler, productHandler, healthHandler, statusHandler, rateLimiter)
	srv := server.NewServer(router, cfg.Server.Port)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logging.ErrorWithError(ctx, "Failed to start server", err, nil)
			os.Exit(1)
		}
	}()

	logging.Info(ctx, "Grocery Price Finder is running", logging.Fields{
		"port": cfg.Server.Port,
		"endpoints": map[string]string{
			"health":   "/health",
			"ready":    "/ready",
			"products": "/api/v1/products",
			"compare":  "/api/v1/compare",
			"status":   "/api/v1/status",
			"metrics":  "/metrics",
		},
	})

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info(ctx, "Shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logging.ErrorWithError(ctx, "Server forced to shutdown", err, nil)
		os.Exit(1)
	}

	logging.Info(ctx, "Server shutdown completed", nil)
}
