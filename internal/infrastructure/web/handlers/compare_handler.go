package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/application/dto"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/interfaces"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/logging"
)

// CompareHandler serves price comparison requests. It resolves the
// requested product ids against the catalog, discovers nearby stores and
// runs the comparison pipeline.
type CompareHandler struct {
	products   interfaces.ProductLookup
	discovery  interfaces.StoreDiscovery
	comparison interfaces.ComparisonService
	mapper     *dto.ComparisonMapper
}

// NewCompareHandler wires the comparison pipeline behind the HTTP surface.
func NewCompareHandler(products interfaces.ProductLookup, discovery interfaces.StoreDiscovery, comparison interfaces.ComparisonService) *CompareHandler {
	return &CompareHandler{
		products:   products,
		discovery:  discovery,
		comparison: comparison,
		mapper:     dto.NewComparisonMapper(),
	}
}

// Compare handles POST /api/v1/compare.
func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	request, err := dto.ParseCompareRequest(r.Body)
	if err != nil {
		h.writeError(w, ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	found, missing := h.products.GetProductsByIDs(request.ProductIDs)
	if len(missing) > 0 {
		h.writeError(w, ctx, http.StatusBadRequest, "UNKNOWN_PRODUCT",
			fmt.Sprintf("unknown product ids: %v", missing))
		return
	}

	// Items keep the order the ids were requested in.
	items := make([]entities.GroceryItem, 0, len(request.ProductIDs))
	for i, id := range request.ProductIDs {
		items = append(items, entities.NewGroceryItem(found[id], request.QuantityFor(i)))
	}

	logging.Info(ctx, "Comparison request accepted", logging.Fields{
		"latitude":         request.Latitude,
		"longitude":        request.Longitude,
		"radius_meters":    request.RadiusMeters,
		logging.FieldItems: len(items),
	})

	stores := h.discovery.FindNearbyStores(ctx, request.Latitude, request.Longitude, request.RadiusMeters)

	results := h.comparison.CompareStores(ctx, stores, items)
	stats := h.comparison.GetStats(results)

	response := h.mapper.ToCompareResponse(results, stats)
	h.writeJSON(w, ctx, http.StatusOK, response)
}

func (h *CompareHandler) writeJSON(w http.ResponseWriter, ctx context.Context, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.ErrorWithError(ctx, "Failed to encode JSON response", err, logging.Fields{
			logging.FieldStatusCode: statusCode,
		})
	}
}

func (h *CompareHandler) writeError(w http.ResponseWriter, ctx context.Context, statusCode int, code, message string) {
	logging.Warn(ctx, "Rejecting comparison request", logging.Fields{
		logging.FieldStatusCode: statusCode,
		"error_code":            code,
		"reason":                message,
	})
	h.writeJSON(w, ctx, statusCode, dto.NewErrorResponse(code, message))
}
