// internal/domain/catalog/seed.go
package catalog

const placeholderImage = "https://placehold.co/600x400/EEEEEE/000?text="

// DefaultProducts returns the storefront's built-in product list
func DefaultProducts() []Product {
	return []Product{
		{ID: "ear-01", Name: "Petal Hoop Earrings", Price: 4500, Category: CategoryEarrings, Image: placeholderImage + "Hooked+Earrings+01", BestSeller: true},
		{ID: "ear-02", Name: "Twist Drop Earrings", Price: 3800, Category: CategoryEarrings, Image: placeholderImage + "Hooked+Earrings+02", BestSeller: true},
		{ID: "hair-01", Name: "Rose Scrunchie", Price: 3500, Category: CategoryHair, Image: placeholderImage + "Hooked+Scrunchie+01", BestSeller: true},
		{ID: "hair-02", Name: "Braided Headband", Price: 3600, Category: CategoryHair, Image: placeholderImage + "Hooked+Headband+02"},
		{ID: "bag-01", Name: "Mini Tote", Price: 7500, Category: CategoryBags, Image: placeholderImage + "Hooked+Bag+01", BestSeller: true},
		{ID: "bag-02", Name: "Crossbody Pouch", Price: 6000, Category: CategoryBags, Image: placeholderImage + "Hooked+Bag+02"},
		{ID: "key-01", Name: "Heart Charm", Price: 3500, Category: CategoryKeychains, Image: placeholderImage + "Hooked+Keychain+01"},
		{ID: "key-02", Name: "Flower Charm", Price: 3500, Category: CategoryKeychains, Image: placeholderImage + "Hooked+Keychain+02"},
		{ID: "ear-03", Name: "Lily Studs", Price: 3500, Category: CategoryEarrings, Image: placeholderImage + "Hooked+Earrings+03"},
		{ID: "hair-03", Name: "Loop Scrunchie", Price: 3500, Category: CategoryHair, Image: placeholderImage + "Hooked+Scrunchie+03"},
		{ID: "bag-03", Name: "Shell Clutch", Price: 8000, Category: CategoryBags, Image: placeholderImage + "Hooked+Bag+03"},
		{ID: "key-03", Name: "Star Charm", Price: 3500, Category: CategoryKeychains, Image: placeholderImage + "Hooked+Keychain+03"},
	}
}
