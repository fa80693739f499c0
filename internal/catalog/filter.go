package catalog

import (
	"strings"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
)

// Filter narrows items by category and free-text query.
//
// Category matching is exact and case-sensitive; an empty category means no
// category is selected and every item passes. A query that is non-empty
// after trimming additionally requires the lower-cased name, type or
// description to contain the lower-cased query. Result order is catalog
// order; an empty result is a valid outcome.
func Filter(items []domain.MenuItem, category, query string) []domain.MenuItem {
	result := []domain.MenuItem{}

	needle := strings.ToLower(strings.TrimSpace(query))

	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}

		if needle != "" && !matchesQuery(item, needle) {
			continue
		}

		result = append(result, item)
	}

	return result
}

func matchesQuery(item domain.MenuItem, needle string) bool {
	return strings.Contains(strings.ToLower(item.Name), needle) ||
		strings.Contains(strings.ToLower(item.Type), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle)
}

// Categories lists distinct categories in first-appearance order, for the
// category tab bar.
func Categories(items []domain.MenuItem) []string {
	seen := make(map[string]struct{})
	var categories []string

	for _, item := range items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}

	return categories
}
