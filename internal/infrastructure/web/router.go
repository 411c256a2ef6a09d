package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/metrics"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/ratelimit"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/web/handlers"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/web/middleware"
)

// NewRouter builds the HTTP route table with the standard middleware
// chain: request tracing, prometheus metrics, then rate limiting.
func NewRouter(
	compareHandler *handlers.CompareHandler,
	productHandler *handlers.ProductHandler,
	healthHandler *handlers.HealthHandler,
	statusHandler *handlers.StatusHandler,
	rateLimiter *ratelimit.Middleware,
) http.Handler {
	router := mux.NewRouter()

	router.Use(middleware.RequestTracing)
	router.Use(metrics.HTTPMetricsMiddleware)
	router.Use(rateLimiter.Handler)

	router.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	router.HandleFunc("/ready", healthHandler.Ready).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/products", productHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/compare", compareHandler.Compare).Methods(http.MethodPost)
	api.HandleFunc("/status", statusHandler.Status).Methods(http.MethodGet)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}
