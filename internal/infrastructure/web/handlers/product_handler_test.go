package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/application/dto"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/products"
)

func TestProductHandler_Search(t *testing.T) {
	handler := NewProductHandler(products.NewDefaultCatalog())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?q=milk", nil)
	rec := httptest.NewRecorder()
	handler.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response dto.ProductsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotEmpty(t, response.Products)
	for _, p := range response.Products {
		assert.Contains(t, strings.ToLower(p.DisplayName), "milk")
	}
}

func TestProductHandler_SearchLimit(t *testing.T) {
	handler := NewProductHandler(products.NewDefaultCatalog())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?limit=3", nil)
	rec := httptest.NewRecorder()
	handler.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response dto.ProductsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response.Products, 3)
}

func TestProductHandler_InvalidLimit(t *testing.T) {
	handler := NewProductHandler(products.NewDefaultCatalog())

	for _, limit := range []string{"abc", "0", "-5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products?limit="+limit, nil)
		rec := httptest.NewRecorder()
		handler.Search(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)

		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "INVALID_PARAMETER", response.Error)
	}
}
