package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the grocery price finder.
var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grocery_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grocery_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Cache metrics
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grocery_cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"}, // operation: get/set/delete, result: hit/miss/success/error
	)

	// Provider metrics
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grocery_provider_requests_total",
			Help: "Total number of price provider calls",
		},
		[]string{"provider", "result"}, // result: success/error/unavailable
	)

	FallbackActivationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grocery_fallback_activations_total",
			Help: "Total number of mock-provider fallback activations",
		},
		[]string{"reason"}, // reason: demo_mode/unavailable/provider_error/pipeline_panic
	)

	// Comparison metrics
	ComparisonDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grocery_comparison_duration_seconds",
			Help:    "Duration of full store comparison operations",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"result"}, // result: success (comparisons never fail outright)
	)

	StoresPerComparison = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "grocery_stores_per_comparison",
			Help:    "Number of stores priced per comparison request",
			Buckets: []float64{1, 2, 5, 10, 20, 50},
		},
	)

	// Discovery metrics
	DiscoveryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grocery_discovery_requests_total",
			Help: "Total number of store discovery lookups",
		},
		[]string{"source"}, // source: cache/geoapify/mock
	)

	// Rate limiting metrics
	RateLimitRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grocery_rate_limit_requests_total",
			Help: "Total number of requests processed by the rate limiter",
		},
		[]string{"result"}, // result: allowed/blocked
	)

	// Application metrics
	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "grocery_application_info",
			Help: "Application information",
		},
		[]string{"version", "cache_backend"},
	)
)

// RecordHTTPRequest records the metrics for one completed HTTP request.
func RecordHTTPRequest(method, path string, statusCode int, durationSeconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

// RecordCacheOperation records one cache operation outcome.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordProviderRequest records one provider call outcome.
func RecordProviderRequest(provider, result string) {
	ProviderRequestsTotal.WithLabelValues(provider, result).Inc()
}

// RecordFallbackActivation records a switch to the mock provider.
func RecordFallbackActivation(reason string) {
	FallbackActivationsTotal.WithLabelValues(reason).Inc()
}

// RecordComparison records a completed comparison operation.
func RecordComparison(storeCount int, durationSeconds float64) {
	ComparisonDuration.WithLabelValues("success").Observe(durationSeconds)
	StoresPerComparison.Observe(float64(storeCount))
}

// RecordDiscovery records where a store list came from.
func RecordDiscovery(source string) {
	DiscoveryRequestsTotal.WithLabelValues(source).Inc()
}

// RecordRateLimit records a rate limiter decision.
func RecordRateLimit(allowed bool) {
	result := "allowed"
	if !allowed {
		result = "blocked"
	}
	RateLimitRequestsTotal.WithLabelValues(result).Inc()
}

// SetServiceInfo publishes the application info gauge.
func SetServiceInfo(version, cacheBackend string) {
	ApplicationInfo.WithLabelValues(version, cacheBackend).Set(1)
}
