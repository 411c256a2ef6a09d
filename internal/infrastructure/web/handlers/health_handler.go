package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/application/dto"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/interfaces"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	cache interfaces.Cache
}

// NewHealthHandler creates a health handler probing the given cache
// backend for readiness.
func NewHealthHandler(cache interfaces.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health handles GET /health. It responds quickly without touching
// external dependencies.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := &dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Services:  map[string]string{"service": "running"},
	}
	h.writeJSON(w, http.StatusOK, response)
}

// Ready handles GET /ready. It verifies the cache backend accepts writes
// before reporting the service ready for traffic.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	services := make(map[string]string)

	if err := h.cache.Set(ctx, "health:probe", "ok", time.Minute); err != nil {
		services["cache"] = "error: " + err.Error()
		response := &dto.HealthResponse{
			Status:    "unhealthy",
			Timestamp: time.Now().UTC(),
			Services:  services,
		}
		h.writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	services["cache"] = "ready"
	services["service"] = "ready"

	response := &dto.HealthResponse{
		Status:    "ready",
		Timestamp: time.Now().UTC(),
		Services:  services,
	}
	h.writeJSON(w, http.StatusOK, response)
}

func (h *HealthHandler) writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		_, _ = w.Write([]byte(`{"error":"ENCODING_ERROR","message":"Failed to encode response"}`))
	}
}
