package product

import "github.com/shopspring/decimal"

// Product represents a catalog product. The catalog is reference data: it is
// seeded at startup and never mutated by storefront traffic.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Product struct {
	ID                     int               `json:"id"`
	Slug                   string            `json:"slug"`
	Name                   string            `json:"name"`
	Price                  decimal.Decimal   `json:"price"`
	SalePrice              *decimal.Decimal  `json:"salePrice,omitempty"`
	Images                 []string          `json:"images"`
	Description            string            `json:"description"`
	ShortDescription       string            `json:"shortDescription"`
	Features               []string          `json:"features"`
	Specifications         map[string]string `json:"specifications"`
	Brand                  Brand             `json:"brand"`
	Category               CategoryRef       `json:"category"`
	Tags                   []string          `json:"tags"`
	InStock                bool              `json:"inStock"`
	Rating                 float64           `json:"rating"`
	ReviewCount            int               `json:"reviewCount"`
	SustainabilityFeatures []string          `json:"sustainabilityFeatures"`
	IsNew                  bool              `json:"isNew,omitempty"`
	IsBestSeller           bool              `json:"isBestSeller,omitempty"`
	CreatedAt              string            `json:"createdAt"`
}

// Brand is the brand reference embedded in a product.
type Brand struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Logo string `json:"logo"`
}

// CategoryRef is the category reference embedded in a product.
type CategoryRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// BrandInfo is the brand directory entry returned by the brands API.
type BrandInfo struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

// EffectivePrice is the price used for filtering, sorting and cart
// snapshots: the sale price when one is set, the regular price otherwise.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// HasTag reports whether the product carries the given tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
