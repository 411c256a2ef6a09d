package entities

// GroceryItem is a resolved product the user wants to price, carrying the
// quantity requested. Instances are built from catalog records before a
// comparison starts and are not mutated afterwards.
type GroceryItem struct {
	ProductID      int    `json:"product_id"`
	DisplayName    string `json:"display_name"`
	NormalizedName string `json:"normalized_name"`
	Category       string `json:"category"`
	Quantity       int    `json:"quantity"`
}

// NewGroceryItem builds a GroceryItem from a catalog product and a quantity.
// Quantities below 1 are clamped to 1.
func NewGroceryItem(product Product, quantity int) GroceryItem {
	if quantity < 1 {
		quantity = 1
	}
	return GroceryItem{
		ProductID:      product.ID,
		DisplayName:    product.DisplayName,
		NormalizedName: product.NormalizedName,
		Category:       product.Category,
		Quantity:       quantity,
	}
}
