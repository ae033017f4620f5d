// Package catalog holds the per-request catalog snapshot and the pure
// filter and pagination steps of the storefront rendering pipeline.
package catalog

import (
	"strings"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// Filter keeps the products matching category and search, preserving input order.
//
// A category of "" or "all" applies no category filter. Category matching is exact
// and case-sensitive since categories come from the upstream's fixed set. The search
// term is trimmed; an empty term applies no search filter, otherwise a product is kept
// when its title contains the term case-insensitively.
func Filter(products []models.Product, category, search string) []models.Product {
	filterCategory := category != "" && category != models.AllCategories
	term := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filterCategory && p.Category != category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Title), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}
