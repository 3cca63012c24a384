// internal/domain/catalog/view.go
package catalog

import (
	"sort"
	"strings"
)

// Filter derives a display list from the catalog. It never mutates the store
// and always returns a fresh slice.
func (s *Store) Filter(v View) []Product {
	query := strings.ToLower(strings.TrimSpace(v.Query))
	category := Category(strings.TrimSpace(string(v.Category)))

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
	}

	switch v.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}

	return out
}
