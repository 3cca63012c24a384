// internal/domain/catalog/store.go
package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidProduct is returned when a product record cannot be admitted to the catalog
var ErrInvalidProduct = errors.New("invalid product")

// MaxPrice bounds a product price so cart line totals stay within int64
const MaxPrice int64 = 1_000_000_000_000

// Store is the read-only, in-memory product catalog. It is built once at
// startup and safe for concurrent readers.
type Store struct {
	products []Product
	index    map[string]int
}

// New builds a catalog from the given records, preserving their order
func New(products []Product) (*Store, error) {
	s := &Store{
		products: make([]Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}

	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: empty id for %q", ErrInvalidProduct, p.Name)
		}
		if _, dup := s.index[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidProduct, p.ID)
		}
		if p.Price < 0 || p.Price > MaxPrice {
			return nil, fmt.Errorf("%w: price out of range for %q", ErrInvalidProduct, p.ID)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q for %q", ErrInvalidProduct, p.Category, p.ID)
		}
		s.index[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}

	return s, nil
}

// Find looks up a product by id
func (s *Store) Find(id string) (Product, bool) {
	i, ok := s.index[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// Products returns a copy of the full catalog in catalog order
func (s *Store) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the number of products in the catalog
func (s *Store) Len() int {
	return len(s.products)
}

// BestSellers returns up to limit best-seller products in catalog order.
// A limit <= 0 returns all of them.
func (s *Store) BestSellers(limit int) []Product {
	out := make([]Product, 0)
	for _, p := range s.products {
		if !p.BestSeller {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Categories returns the selectable product categories
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}
