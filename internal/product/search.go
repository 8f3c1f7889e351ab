package product

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// SortBy enumerates the supported result orderings.
type SortBy string

const (
	SortPriceAsc    SortBy = "price-asc"
	SortPriceDesc   SortBy = "price-desc"
	SortNewest      SortBy = "newest"
	SortRating      SortBy = "rating"
	SortBestSelling SortBy = "best-selling"
)

// ValidSortBy reports whether s is a recognized sort option.
func ValidSortBy(s string) bool {
	switch SortBy(s) {
	case SortPriceAsc, SortPriceDesc, SortNewest, SortRating, SortBestSelling:
		return true
	}
	return false
}

// Filters narrows and orders a search. Zero values mean "no constraint":
// empty category/brand match everything, nil price bounds are open, a nil
// InStock skips the stock check.
type Filters struct {
	Category               string
	Brand                  string
	MinPrice               *decimal.Decimal
	MaxPrice               *decimal.Decimal
	SustainabilityFeatures []string
	InStock                *bool
	SortBy                 SortBy
}

// Search filters and sorts the given products. Text matching is OR across
// whitespace-separated query terms over name, description and tags
// (case-insensitive substring). Filter categories combine with AND; the
// sustainability-feature filter is OR within its own set. Price bounds are
// inclusive and use the effective price. An empty result is normal, not an
// error.
func Search(products []Product, query string, f Filters) []Product {
	results := make([]Product, 0, len(products))

	terms := splitTerms(query)
	for _, p := range products {
		if len(terms) > 0 && !matchesQuery(p, terms) {
			continue
		}
		if f.Category != "" && p.Category.Slug != f.Category {
			continue
		}
		if f.Brand != "" && p.Brand.Slug != f.Brand {
			continue
		}
		price := p.EffectivePrice()
		if f.MinPrice != nil && price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && price.GreaterThan(*f.MaxPrice) {
			continue
		}
		if len(f.SustainabilityFeatures) > 0 && !hasAnyFeature(p, f.SustainabilityFeatures) {
			continue
		}
		if f.InStock != nil && p.InStock != *f.InStock {
			continue
		}
		results = append(results, p)
	}

	sortResults(results, f.SortBy)
	return results
}

func splitTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	return fields
}

func matchesQuery(p Product, terms []string) bool {
	name := strings.ToLower(p.Name)
	desc := strings.ToLower(p.Description)
	for _, term := range terms {
		if strings.Contains(name, term) || strings.Contains(desc, term) {
			return true
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				return true
			}
		}
	}
	return false
}

func hasAnyFeature(p Product, wanted []string) bool {
	for _, w := range wanted {
		for _, have := range p.SustainabilityFeatures {
			if have == w {
				return true
			}
		}
	}
	return false
}

func sortResults(results []Product, by SortBy) {
	switch by {
	case SortPriceAsc:
		sort.Slice(results, func(i, j int) bool {
			return results[i].EffectivePrice().LessThan(results[j].EffectivePrice())
		})
	case SortPriceDesc:
		sort.Slice(results, func(i, j int) bool {
			return results[i].EffectivePrice().GreaterThan(results[j].EffectivePrice())
		})
	case SortNewest:
		// createdAt holds ISO dates, so lexicographic order is date order
		sort.Slice(results, func(i, j int) bool {
			return results[i].CreatedAt > results[j].CreatedAt
		})
	case SortRating:
		sort.Slice(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	case SortBestSelling:
		// curated best-seller flag wins, then rating x reviewCount as a
		// popularity proxy (no real sales telemetry in this system)
		sort.Slice(results, func(i, j int) bool {
			a, b := results[i], results[j]
			if a.IsBestSeller != b.IsBestSeller {
				return a.IsBestSeller
			}
			return a.Rating*float64(a.ReviewCount) > b.Rating*float64(b.ReviewCount)
		})
	}
}
