package catalog

import (
	"sort"
	"strings"

	"cafehub/pkg/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PageSize is the fixed number of products per catalog page
const PageSize = 12

// Sort keys accepted by View
const (
	SortRecommended = "recommended"
	SortNewest      = "newest"
	SortPriceLow    = "price-low"
	SortPriceHigh   = "price-high"
	SortNameAsc     = "name-asc"
	SortNameDesc    = "name-desc"
)

// Category keys accepted by View
const (
	CategoryAll   = "all"
	CategoryTop10 = "top10"
)

// categoryLabels maps sidebar category keys to the labels the shop API uses.
// Unrecognized keys pass through unmapped.
var categoryLabels = map[string]string{
	"all":     "all",
	"coffees": "Coffees",
	"drinks":  "Drinks",
	"foods":   "Foods",
	"yogurts": "Yogurts",
	"top10":   "top10",
}

// displayNames maps category keys to the human-readable names used in
// empty-state messages
var displayNames = map[string]string{
	"all":   "All",
	"top10": "Top 10 Best Sellers",
}

// MapCategory resolves a category key to the shop API label
func MapCategory(key string) string {
	if label, ok := categoryLabels[key]; ok {
		return label
	}
	return key
}

// DisplayCategoryName returns the human-readable name for a category key
func DisplayCategoryName(key string) string {
	if name, ok := displayNames[key]; ok {
		return name
	}
	return MapCategory(key)
}

// View computes one page of the catalog for the given state. It is a pure
// function over the index's current display sequence: filter by category and
// price ceiling, sort, then clamp the page and slice.
//
// The top10 category does not filter a locally held full catalog; its
// membership comes from a separate upstream query, so here it behaves like
// "all" over whatever the index currently holds.
func View(ix *Index, state models.ViewState) models.PageView {
	filtered := filter(ix.Products(), state)
	sortProducts(filtered, state.SortKey)

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize

	page := state.Page
	if page < 1 {
		page = 1
	}
	if maxPage := max(1, totalPages); page > maxPage {
		page = maxPage
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	ids := make([]string, 0, end-start)
	for _, p := range filtered[start:end] {
		ids = append(ids, p.ID)
	}

	return models.PageView{
		ItemIDs:    ids,
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
	}
}

func filter(products []models.NormalizedProduct, state models.ViewState) []models.NormalizedProduct {
	mapped := MapCategory(state.Category)
	lowered := strings.ToLower(mapped)

	out := make([]models.NormalizedProduct, 0, len(products))
	for _, p := range products {
		matchesCategory := mapped == CategoryAll || mapped == CategoryTop10 || p.Category == lowered
		matchesPrice := p.CurrentPrice <= state.PriceCeiling
		if matchesCategory && matchesPrice {
			out = append(out, p)
		}
	}
	return out
}

// sortProducts orders the filtered subset in place. The input arrives in
// insertion order, so "recommended" keeps it untouched and the remaining keys
// use stable sorts, preserving insertion order across ties.
func sortProducts(products []models.NormalizedProduct, sortKey string) {
	switch sortKey {
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ListedAt.After(products[j].ListedAt)
		})
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CurrentPrice < products[j].CurrentPrice
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CurrentPrice > products[j].CurrentPrice
		})
	case SortNameAsc:
		cl := collate.New(language.Und)
		sort.SliceStable(products, func(i, j int) bool {
			return cl.CompareString(products[i].Title, products[j].Title) < 0
		})
	case SortNameDesc:
		cl := collate.New(language.Und)
		sort.SliceStable(products, func(i, j int) bool {
			return cl.CompareString(products[j].Title, products[i].Title) < 0
		})
	}
}

