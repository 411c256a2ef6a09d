package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/application/dto"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/interfaces"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/logging"
)

const (
	defaultSearchLimit = 50
	maxSearchLimit     = 200
)

// ProductHandler serves catalog search requests.
type ProductHandler struct {
	products interfaces.ProductLookup
}

// NewProductHandler creates a product search handler over the catalog.
func NewProductHandler(products interfaces.ProductLookup) *ProductHandler {
	return &ProductHandler{products: products}
}

// Search handles GET /api/v1/products?q=&limit=. An empty query lists the
// catalog up to the limit.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query().Get("q")
	limit := defaultSearchLimit
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 1 {
			h.writeJSON(w, http.StatusBadRequest,
				dto.NewErrorResponse("INVALID_PARAMETER", "limit must be a positive integer"))
			return
		}
		limit = parsed
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	results := h.products.Search(query, limit)

	logging.Debug(ctx, "Product search completed", logging.Fields{
		"query":         query,
		"limit":         limit,
		"results_count": len(results),
	})

	h.writeJSON(w, http.StatusOK, dto.NewProductsResponse(results))
}

func (h *ProductHandler) writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
