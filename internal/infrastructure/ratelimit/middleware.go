package ratelimit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/config"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/logging"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/metrics"
)

// Middleware applies per-client token bucket rate limiting to HTTP
// requests. Health and metrics endpoints are exempt.
type Middleware struct {
	limiter   *ClientBuckets
	skipPaths map[string]bool
	enabled   bool
}

// NewMiddleware builds the rate limiting middleware from configuration.
func NewMiddleware(cfg config.RateLimitConfig) *Middleware {
	skipPaths := map[string]bool{
		"/health":  true,
		"/ready":   true,
		"/metrics": true,
	}

	var limiter *ClientBuckets
	if cfg.Enabled {
		limiter = NewClientBuckets(cfg.Capacity, cfg.RefillRate)
	}

	return &Middleware{
		limiter:   limiter,
		skipPaths: skipPaths,
		enabled:   cfg.Enabled,
	}
}

// Handler returns the HTTP middleware handler.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled || m.skipPaths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		clientID := getClientID(r)

		allowed := m.limiter.Allow(clientID)
		tokensRemaining := m.limiter.Tokens(clientID)

		metrics.RecordRateLimit(allowed)

		if !allowed {
			logging.Warn(r.Context(), "Rate limit exceeded", logging.Fields{
				"client_id":            clientID,
				logging.FieldPath:      r.URL.Path,
				logging.FieldMethod:    r.Method,
				logging.FieldUserAgent: r.Header.Get("User-Agent"),
			})

			m.writeRateLimitError(w)
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(tokensRemaining))

		next.ServeHTTP(w, r)
	})
}

// getClientID extracts the client identifier used as the bucket key.
func getClientID(r *http.Request) string {
	if xForwardedFor := r.Header.Get("X-Forwarded-For"); xForwardedFor != "" {
		parts := strings.Split(xForwardedFor, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}

	if xRealIP := r.Header.Get("X-Real-IP"); xRealIP != "" {
		return xRealIP
	}

	remoteAddr := r.RemoteAddr
	if idx := strings.LastIndex(remoteAddr, ":"); idx != -1 {
		return remoteAddr[:idx]
	}
	return remoteAddr
}

func (m *Middleware) writeRateLimitError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusTooManyRequests)

	errorResponse := map[string]interface{}{
		"error":   "RATE_LIMIT_EXCEEDED",
		"message": "Rate limit exceeded. Please slow down your requests.",
		"code":    http.StatusTooManyRequests,
	}

	_ = json.NewEncoder(w).Encode(errorResponse)
}

// Stats returns rate limiting statistics.
func (m *Middleware) Stats() map[string]interface{} {
	if m.limiter == nil {
		return map[string]interface{}{"enabled": m.enabled}
	}
	stats := m.limiter.Stats()
	stats["enabled"] = m.enabled
	return stats
}
