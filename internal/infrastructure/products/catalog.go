package products

import (
	"sort"
	"strings"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/entities"
	"github.com/mcm-ryan/GroceryPriceFinder/internal/domain/interfaces"
)

// Catalog is the in-memory product lookup used to resolve requested product
// ids into GroceryItems before a comparison runs.
type Catalog struct {
	byID    map[int]entities.Product
	ordered []entities.Product
}

// NewCatalog creates a catalog from the given products. NewDefaultCatalog
// provides the standard seed set.
func NewCatalog(products []entities.Product) *Catalog {
	byID := make(map[int]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{
		byID:    byID,
		ordered: products,
	}
}

// NewDefaultCatalog creates a catalog seeded with common grocery products.
func NewDefaultCatalog() *Catalog {
	return NewCatalog(seedProducts)
}

// GetProductsByIDs returns the products found and, separately, the ids that
// did not resolve. Missing ids are the caller's problem: the HTTP layer
// turns them into a request validation error.
func (c *Catalog) GetProductsByIDs(ids []int) (map[int]entities.Product, []int) {
	found := make(map[int]entities.Product, len(ids))
	var missing []int

	for _, id := range ids {
		if p, ok := c.byID[id]; ok {
			found[id] = p
		} else {
			missing = append(missing, id)
		}
	}

	sort.Ints(missing)
	return found, missing
}

// Search returns up to limit products whose normalized name contains the
// query, case-insensitively. An empty query matches everything.
func (c *Catalog) Search(query string, limit int) []entities.Product {
	if limit <= 0 {
		limit = 20
	}
	query = strings.ToLower(strings.TrimSpace(query))

	var results []entities.Product
	for _, p := range c.ordered {
		if query == "" || strings.Contains(p.NormalizedName, query) {
			results = append(results, p)
			if len(results) == limit {
				break
			}
		}
	}
	return results
}

var _ interfaces.ProductLookup = (*Catalog)(nil)

// seedProducts is the default catalog. Normalized names line up with the
// mock provider's price table so demo-mode prices look plausible.
var seedProducts = []entities.Product{
	{ID: 1, DisplayName: "Whole Milk", NormalizedName: "whole milk", Category: "dairy"},
	{ID: 2, DisplayName: "Large Eggs (dozen)", NormalizedName: "large eggs", Category: "dairy"},
	{ID: 3, DisplayName: "Butter", NormalizedName: "butter", Category: "dairy"},
	{ID: 4, DisplayName: "Cheddar Cheese", NormalizedName: "cheddar cheese", Category: "dairy"},
	{ID: 5, DisplayName: "Greek Yogurt", NormalizedName: "greek yogurt", Category: "dairy"},
	{ID: 6, DisplayName: "White Bread", NormalizedName: "white bread", Category: "bakery"},
	{ID: 7, DisplayName: "Bagels", NormalizedName: "bagels", Category: "bakery"},
	{ID: 8, DisplayName: "Chicken Breast", NormalizedName: "chicken breast", Category: "meat"},
	{ID: 9, DisplayName: "Ground Beef", NormalizedName: "ground beef", Category: "meat"},
	{ID: 10, DisplayName: "Bacon", NormalizedName: "bacon", Category: "meat"},
	{ID: 11, DisplayName: "Bananas", NormalizedName: "bananas", Category: "produce"},
	{ID: 12, DisplayName: "Apples", NormalizedName: "apples", Category: "produce"},
	{ID: 13, DisplayName: "Tomatoes", NormalizedName: "tomatoes", Category: "produce"},
	{ID: 14, DisplayName: "Potatoes", NormalizedName: "potatoes", Category: "produce"},
	{ID: 15, DisplayName: "Yellow Onions", NormalizedName: "yellow onions", Category: "produce"},
	{ID: 16, DisplayName: "White Rice", NormalizedName: "white rice", Category: "pantry"},
	{ID: 17, DisplayName: "Spaghetti", NormalizedName: "spaghetti", Category: "pantry"},
	{ID: 18, DisplayName: "Peanut Butter", NormalizedName: "peanut butter", Category: "pantry"},
	{ID: 19, DisplayName: "Breakfast Cereal", NormalizedName: "breakfast cereal", Category: "pantry"},
	{ID: 20, DisplayName: "Granulated Sugar", NormalizedName: "granulated sugar", Category: "pantry"},
	{ID: 21, DisplayName: "Ground Coffee", NormalizedName: "ground coffee", Category: "beverages"},
	{ID: 22, DisplayName: "Orange Juice", NormalizedName: "orange juice", Category: "beverages"},
	{ID: 23, DisplayName: "Sparkling Water", NormalizedName: "sparkling water", Category: "beverages"},
	{ID: 24, DisplayName: "Olive Oil", NormalizedName: "olive oil", Category: "pantry"},
}
