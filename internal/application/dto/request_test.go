package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompareRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid request",
			body: `{"latitude": 40.7128, "longitude": -74.0060, "product_ids": [1, 2, 3]}`,
		},
		{
			name: "valid with radius and quantities",
			body: `{"latitude": 40.7, "longitude": -74.0, "radius_meters": 2000, "product_ids": [1, 2], "quantities": [2, 1]}`,
		},
		{
			name:    "latitude out of range",
			body:    `{"latitude": 91, "longitude": 0, "product_ids": [1]}`,
			wantErr: "latitude",
		},
		{
			name:    "longitude out of range",
			body:    `{"latitude": 0, "longitude": -181, "product_ids": [1]}`,
			wantErr: "longitude",
		},
		{
			name:    "empty product list",
			body:    `{"latitude": 0, "longitude": 0, "product_ids": []}`,
			wantErr: "product_ids",
		},
		{
			name:    "missing product list",
			body:    `{"latitude": 0, "longitude": 0}`,
			wantErr: "product_ids",
		},
		{
			name:    "non-positive product id",
			body:    `{"latitude": 0, "longitude": 0, "product_ids": [1, 0]}`,
			wantErr: "invalid",
		},
		{
			name:    "more quantities than products",
			body:    `{"latitude": 0, "longitude": 0, "product_ids": [1], "quantities": [1, 2]}`,
			wantErr: "quantities",
		},
		{
			name:    "malformed json",
			body:    `{"latitude": `,
			wantErr: "invalid request body",
		},
		{
			name:    "unknown field rejected",
			body:    `{"latitude": 0, "longitude": 0, "product_ids": [1], "surprise": true}`,
			wantErr: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseCompareRequest(strings.NewReader(tt.body))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, req)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, req)
			}
		})
	}
}

func TestCompareRequest_QuantityFor(t *testing.T) {
	req := &CompareRequest{
		ProductIDs: []int{1, 2, 3},
		Quantities: []int{5},
	}

	assert.Equal(t, 5, req.QuantityFor(0))
	assert.Equal(t, 1, req.QuantityFor(1), "missing quantities default to 1")
	assert.Equal(t, 1, req.QuantityFor(2))
}
