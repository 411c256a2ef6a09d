package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/ratelimit"
)

// StatusHandler reports runtime state for operators: build version, cache
// backend and rate limiter counters.
type StatusHandler struct {
	version      string
	cacheBackend string
	rateLimiter  *ratelimit.Middleware
}

// NewStatusHandler creates the status handler.
func NewStatusHandler(version, cacheBackend string, rateLimiter *ratelimit.Middleware) *StatusHandler {
	return &StatusHandler{
		version:      version,
		cacheBackend: cacheBackend,
		rateLimiter:  rateLimiter,
	}
}

// Status handles GET /api/v1/status.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"service":       "grocery-price-finder",
		"version":       h.version,
		"cache_backend": h.cacheBackend,
		"rate_limit":    h.rateLimiter.Stats(),
		"timestamp":     time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}
