package interfaces

import "github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"

// ProductLookup resolves product ids to catalog records before a
// comparison is built. Missing ids are returned to the caller, which
// surfaces them as a request validation error; they are never handled
// inside the pricing core.
type ProductLookup interface {
	// GetProductsByIDs returns the products found and the ids that did
	// not resolve.
	GetProductsByIDs(ids []int) (map[int]entities.Product, []int)

	// Search returns up to limit products whose normalized name contains
	// the query, case-insensitively.
	Search(query string, limit int) []entities.Product
}
