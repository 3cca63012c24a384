// internal/domain/catalog/entity.go
package catalog

// Category is one of the fixed product groupings
type Category string

const (
	CategoryEarrings  Category = "earrings"
	CategoryHair      Category = "hair"
	CategoryBags      Category = "bags"
	CategoryKeychains Category = "keychains"

	// CategoryAll is only meaningful as a view selector
	CategoryAll Category = "all"
)

var categories = []Category{CategoryEarrings, CategoryHair, CategoryBags, CategoryKeychains}

// Valid reports whether c names a real product category
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is an immutable catalog record. Price is in whole currency units.
type Product struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Price      int64    `json:"price"`
	Category   Category `json:"category"`
	Image      string   `json:"img"`
	BestSeller bool     `json:"bestSeller"`
}

// SortMode controls the ordering of a filtered view
type SortMode string

const (
	SortDefault   SortMode = "default"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
)

// View carries the free-text query, category selector and sort mode for Filter
type View struct {
	Query    string   `form:"q" json:"q"`
	Category Category `form:"category" json:"category"`
	Sort     SortMode `form:"sort" json:"sort"`
}
