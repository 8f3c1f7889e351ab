package product

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSearch_NoQueryNoFilters_ReturnsWholeCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	results := Search(catalog, "", Filters{})
	if len(results) != len(catalog) {
		t.Fatalf("expected %d products, got %d", len(catalog), len(results))
	}
	for i := range results {
		if results[i].ID != catalog[i].ID {
			t.Fatalf("expected catalog order preserved, got id %d at index %d", results[i].ID, i)
		}
	}
}

func TestSearch_TextMatchIsOrOfTerms(t *testing.T) {
	catalog := DefaultCatalog()

	// one term hits the toothbrush name, the other the towels name; both
	// products must appear because terms combine with OR
	results := Search(catalog, "bamboo towels", Filters{})
	ids := map[int]bool{}
	for _, p := range results {
		ids[p.ID] = true
	}
	if !ids[1] || !ids[2] {
		t.Fatalf("expected products 1 and 2 in results, got %v", ids)
	}

	// tag match, case-insensitive
	results = Search(catalog, "HYDRATION", Filters{})
	if len(results) != 1 || results[0].ID != 5 {
		t.Fatalf("expected only the water bottle for tag query, got %d results", len(results))
	}

	// no match yields an empty, non-nil result
	results = Search(catalog, "xyzzy", Filters{})
	if results == nil || len(results) != 0 {
		t.Fatalf("expected empty result for nonsense query, got %v", results)
	}
}

func TestSearch_PriceBoundsUseEffectivePriceInclusive(t *testing.T) {
	catalog := DefaultCatalog()
	min := decimal.RequireFromString("12.99")
	max := decimal.RequireFromString("13.00")

	results := Search(catalog, "", Filters{MinPrice: &min, MaxPrice: &max})
	for _, p := range results {
		price := p.EffectivePrice()
		if price.LessThan(min) || price.GreaterThan(max) {
			t.Fatalf("product %d effective price %s outside [%s,%s]", p.ID, price, min, max)
		}
	}
	// the food wraps sell at 12.99 (sale) even though list price is 15.99
	found := false
	for _, p := range results {
		if p.ID == 4 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected sale-priced product 4 within bounds, got %d results", len(results))
	}
}

func TestSearch_FilterCombinationIsAnd(t *testing.T) {
	catalog := DefaultCatalog()
	results := Search(catalog, "", Filters{Category: "home-kitchen", Brand: "pure-home"})
	if len(results) != 1 || results[0].ID != 2 {
		t.Fatalf("expected only the towels for home-kitchen+pure-home, got %d results", len(results))
	}

	// over-narrow filters are normal and yield an empty sequence
	results = Search(catalog, "", Filters{Category: "beauty", Brand: "green-kitchen"})
	if len(results) != 0 {
		t.Fatalf("expected empty result, got %d", len(results))
	}
}

func TestSearch_SustainabilityFeaturesOrWithinFilter(t *testing.T) {
	catalog := DefaultCatalog()
	wanted := []string{"Organic", "Compostable"}
	results := Search(catalog, "", Filters{SustainabilityFeatures: wanted})
	if len(results) == 0 {
		t.Fatal("expected matches for Organic OR Compostable")
	}
	for _, p := range results {
		if !hasAnyFeature(p, wanted) {
			t.Fatalf("product %d shares no requested feature", p.ID)
		}
	}
}

func TestSearch_PriceSortsReverseEachOther(t *testing.T) {
	catalog := DefaultCatalog()
	// home-kitchen subset has three distinct effective prices (24.99,
	// 12.99, 29.99), so asc and desc must be exact reversals
	asc := Search(catalog, "", Filters{Category: "home-kitchen", SortBy: SortPriceAsc})
	desc := Search(catalog, "", Filters{Category: "home-kitchen", SortBy: SortPriceDesc})
	if len(asc) != len(desc) || len(asc) == 0 {
		t.Fatalf("expected equal non-empty result sets, got %d and %d", len(asc), len(desc))
	}
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("asc/desc not reversed at index %d: %d vs %d", i, asc[i].ID, desc[len(desc)-1-i].ID)
		}
	}
	for i := 1; i < len(asc); i++ {
		if asc[i].EffectivePrice().LessThan(asc[i-1].EffectivePrice()) {
			t.Fatalf("asc order violated at index %d", i)
		}
	}
}

func TestSearch_SortNewestAndRating(t *testing.T) {
	catalog := DefaultCatalog()

	newest := Search(catalog, "", Filters{SortBy: SortNewest})
	for i := 1; i < len(newest); i++ {
		if newest[i].CreatedAt > newest[i-1].CreatedAt {
			t.Fatalf("newest order violated at index %d", i)
		}
	}

	rated := Search(catalog, "", Filters{SortBy: SortRating})
	for i := 1; i < len(rated); i++ {
		if rated[i].Rating > rated[i-1].Rating {
			t.Fatalf("rating order violated at index %d", i)
		}
	}
}

func TestSearch_BestSellingPutsFlaggedFirst(t *testing.T) {
	catalog := DefaultCatalog()
	results := Search(catalog, "", Filters{SortBy: SortBestSelling})
	seenUnflagged := false
	for _, p := range results {
		if !p.IsBestSeller {
			seenUnflagged = true
		} else if seenUnflagged {
			t.Fatalf("best seller %d appeared after an unflagged product", p.ID)
		}
	}
	// within the flagged group, higher rating x reviewCount comes first:
	// food wraps (4.5 x 42) before toothbrush (4.5 x 38)
	if results[0].ID != 4 || results[1].ID != 1 {
		t.Fatalf("unexpected best-seller ordering: %d, %d", results[0].ID, results[1].ID)
	}
}

func TestSearch_InStockFilter(t *testing.T) {
	catalog := DefaultCatalog()
	catalog[2].InStock = false

	inStock := true
	results := Search(catalog, "", Filters{InStock: &inStock})
	if len(results) != len(catalog)-1 {
		t.Fatalf("expected %d in-stock products, got %d", len(catalog)-1, len(results))
	}
	inStock = false
	results = Search(catalog, "", Filters{InStock: &inStock})
	if len(results) != 1 || results[0].ID != catalog[2].ID {
		t.Fatalf("expected only the out-of-stock product, got %d results", len(results))
	}
}

func TestCatalogInvariants(t *testing.T) {
	ids := map[int]bool{}
	slugs := map[string]bool{}
	for _, p := range DefaultCatalog() {
		if ids[p.ID] {
			t.Fatalf("duplicate product id %d", p.ID)
		}
		if slugs[p.Slug] {
			t.Fatalf("duplicate product slug %q", p.Slug)
		}
		ids[p.ID] = true
		slugs[p.Slug] = true
		if p.SalePrice != nil && !p.SalePrice.LessThan(p.Price) {
			t.Fatalf("product %d sale price %s not below price %s", p.ID, p.SalePrice, p.Price)
		}
		if p.Rating < 0 || p.Rating > 5 {
			t.Fatalf("product %d rating %v out of range", p.ID, p.Rating)
		}
	}
}
