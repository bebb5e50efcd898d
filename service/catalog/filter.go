package catalog

import (
	"strings"

	catalogEntity "storefront.GO/model/entity/catalog"
)

// FilterByCategory keeps the products of categoryID. An empty id keeps everything.
func FilterByCategory(products []catalogEntity.Product, categoryID catalogEntity.ID) []catalogEntity.Product {
	if categoryID.IsZero() {
		return products
	}
	out := make([]catalogEntity.Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// FilterByText keeps the products whose name contains query, ignoring case and
// surrounding whitespace. An empty query keeps everything.
func FilterByText(products []catalogEntity.Product, query string) []catalogEntity.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	out := make([]catalogEntity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// Filter applies the category filter, then the text filter.
func Filter(products []catalogEntity.Product, categoryID catalogEntity.ID, query string) []catalogEntity.Product {
	return FilterByText(FilterByCategory(products, categoryID), query)
}
