package dto

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance; it is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// CompareRequest is the body of POST /api/v1/compare.
type CompareRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`

	// RadiusMeters optionally widens or narrows the store search; 0 means
	// the configured default.
	RadiusMeters int `json:"radius_meters" validate:"gte=0,lte=50000"`

	ProductIDs []int `json:"product_ids" validate:"required,min=1,max=100,dive,gt=0"`

	// Quantities is parallel to ProductIDs when present; missing or short
	// entries default to 1.
	Quantities []int `json:"quantities" validate:"omitempty,dive,gt=0"`
}

// ParseCompareRequest decodes and validates a compare request body.
func ParseCompareRequest(body io.Reader) (*CompareRequest, error) {
	var req CompareRequest

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}

	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%s", validationMessage(err))
	}

	if len(req.Quantities) > len(req.ProductIDs) {
		return nil, fmt.Errorf("quantities has %d entries for %d products", len(req.Quantities), len(req.ProductIDs))
	}

	return &req, nil
}

// QuantityFor returns the requested quantity for the product at position i,
// defaulting to 1.
func (r *CompareRequest) QuantityFor(i int) int {
	if i < len(r.Quantities) && r.Quantities[i] > 0 {
		return r.Quantities[i]
	}
	return 1
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Field() {
		case "Latitude":
			parts = append(parts, "latitude must be between -90 and 90")
		case "Longitude":
			parts = append(parts, "longitude must be between -180 and 180")
		case "RadiusMeters":
			parts = append(parts, "radius_meters must be between 0 and 50000")
		case "ProductIDs":
			parts = append(parts, "product_ids must contain between 1 and 100 positive ids")
		case "Quantities":
			parts = append(parts, "quantities entries must be positive")
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", fieldErr.Field()))
		}
	}
	return strings.Join(parts, "; ")
}
