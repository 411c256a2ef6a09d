package entities

// Product is a catalog record resolved by product lookup before a
// comparison is invoked. NormalizedName is the lowercase canonical form
// used for matching and cache keys; DisplayName may vary freely.
type Product struct {
	ID             int    `json:"id"`
	DisplayName    string `json:"display_name"`
	NormalizedName string `json:"normalized_name"`
	Category       string `json:"category"`
}
