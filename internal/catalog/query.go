// Package catalog holds the static book catalog and pure query helpers over
// in-memory product collections. No I/O; inputs are never mutated.
package catalog

import (
	"sort"
	"strings"

	"github.com/pagemark/bookstore/internal/models"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// Filters narrows a search. Zero-valued fields are no-ops; set fields
// compose as a conjunction. Price bounds are inclusive and apply to the
// effective price.
type Filters struct {
	Category    string
	MinPrice    float64
	MaxPrice    float64
	HasDiscount bool
}

// ByCategory returns the products in a category, or the whole collection
// for "all". Category matching is exact and case-sensitive.
func ByCategory(books []models.Product, category string) []models.Product {
	if category == CategoryAll {
		return books
	}
	var results []models.Product
	for _, b := range books {
		if b.Category == category {
			results = append(results, b)
		}
	}
	return results
}

// Search returns the products matching a free-text query and filters. The
// query matches case-insensitively against title, author or genre; any one
// field suffices. Result order is stable relative to the input.
func Search(books []models.Product, query string, filters Filters) []models.Product {
	results := books

	if query != "" {
		term := strings.ToLower(query)
		var matched []models.Product
		for _, b := range results {
			if strings.Contains(strings.ToLower(b.Title), term) ||
				strings.Contains(strings.ToLower(b.Author), term) ||
				strings.Contains(strings.ToLower(b.Genre), term) {
				matched = append(matched, b)
			}
		}
		results = matched
	}

	if filters.Category != "" && filters.Category != CategoryAll {
		var matched []models.Product
		for _, b := range results {
			if b.Category == filters.Category {
				matched = append(matched, b)
			}
		}
		results = matched
	}

	if filters.MinPrice > 0 {
		var matched []models.Product
		for _, b := range results {
			if b.EffectivePrice() >= filters.MinPrice {
				matched = append(matched, b)
			}
		}
		results = matched
	}

	if filters.MaxPrice > 0 {
		var matched []models.Product
		for _, b := range results {
			if b.EffectivePrice() <= filters.MaxPrice {
				matched = append(matched, b)
			}
		}
		results = matched
	}

	if filters.HasDiscount {
		var matched []models.Product
		for _, b := range results {
			if b.HasDiscount() {
				matched = append(matched, b)
			}
		}
		results = matched
	}

	return results
}

// SortKey selects the ordering applied by Sort.
type SortKey string

const (
	SortTitle     SortKey = "title"
	SortAuthor    SortKey = "author"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating" // high to low
)

// Sort returns a copy of the collection ordered by the given key. An
// unknown key returns the copy in input order.
func Sort(books []models.Product, key SortKey) []models.Product {
	sorted := make([]models.Product, len(books))
	copy(sorted, books)

	switch key {
	case SortTitle:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Title < sorted[j].Title })
	case SortAuthor:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Author < sorted[j].Author })
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].EffectivePrice() < sorted[j].EffectivePrice() })
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].EffectivePrice() > sorted[j].EffectivePrice() })
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].AverageRating > sorted[j].AverageRating })
	}
	return sorted
}
