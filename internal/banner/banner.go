package banner

// Banner is one hero or promo slot on the storefront landing page.
type Banner struct {
	ID         int    `json:"id"`
	Heading    string `json:"heading"`
	Subheading string `json:"subheading,omitempty"`
	Image      string `json:"image,omitempty"`
	CTAText    string `json:"ctaText,omitempty"`
	CTALink    string `json:"ctaLink,omitempty"`
}

// DefaultBanners returns the seed banners used when no database is
// configured.
func DefaultBanners() []Banner {
	return []Banner{
		{ID: 1, Heading: "Sustainable Products for a Better Planet",
			Subheading: "Discover eco-friendly alternatives for everyday living. Good for you, better for the Earth.",
			Image:      "/placeholder.svg?height=600&width=1200",
			CTAText:    "Shop Now", CTALink: "/products"},
		{ID: 2, Heading: "15% Off With Code EARTH15",
			Subheading: "Celebrate Earth-friendly choices with a discount on your whole order.",
			Image:      "/placeholder.svg?height=600&width=1200",
			CTAText:    "Browse Deals", CTALink: "/products?category=on-sale"},
		{ID: 3, Heading: "Free Shipping Over $75",
			Subheading: "Stock up on essentials and we cover the delivery.",
			Image:      "/placeholder.svg?height=600&width=1200",
			CTAText:    "Start Shopping", CTALink: "/products"},
	}
}
