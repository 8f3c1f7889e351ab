package product

import "github.com/shopspring/decimal"

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// DefaultCatalog returns the seed catalog used when no database is
// configured. IDs and slugs are unique across the list.
func DefaultCatalog() []Product {
	return []Product{
		{
			ID:    1,
			Slug:  "bamboo-toothbrush",
			Name:  "Bamboo Toothbrush",
			Price: dec("4.99"),
			Images: []string{
				"/images/products/bamboo-toothbrush.png",
				"/images/products/bamboo-toothbrush.png",
				"/images/products/bamboo-toothbrush.png",
			},
			Description:      "Our bamboo toothbrush is made from sustainably harvested bamboo with BPA-free nylon bristles. It's biodegradable, eco-friendly, and comes in plastic-free packaging. By switching to a bamboo toothbrush, you're preventing plastic toothbrushes from ending up in landfills and oceans.",
			ShortDescription: "Eco-friendly bamboo toothbrush with BPA-free nylon bristles.",
			Features: []string{
				"Made from sustainably harvested bamboo",
				"BPA-free nylon bristles",
				"Biodegradable handle",
				"Plastic-free packaging",
				"Medium bristle firmness",
			},
			Specifications: map[string]string{
				"Material":          "Bamboo handle, nylon bristles",
				"Dimensions":        "7.5 inches long",
				"Weight":            "0.5 oz",
				"Country of Origin": "Made in USA",
				"Care Instructions": "Rinse after use and store in a dry place",
			},
			Brand:                  Brand{Name: "EcoSmile", Slug: "ecosmile", Logo: "/images/brands/ecosmile.png"},
			Category:               CategoryRef{Name: "Bathroom", Slug: "bathroom"},
			Tags:                   []string{"oral care", "bathroom", "plastic-free"},
			InStock:                true,
			Rating:                 4.5,
			ReviewCount:            38,
			SustainabilityFeatures: []string{"Plastic-Free", "Biodegradable", "Sustainable Materials"},
			IsBestSeller:           true,
			CreatedAt:              "2023-01-15",
		},
		{
			ID:    2,
			Slug:  "organic-cotton-towels",
			Name:  "Organic Cotton Towels",
			Price: dec("24.99"),
			Images: []string{
				"/images/products/cotton-towels.png",
				"/images/products/cotton-towels.png",
				"/images/products/cotton-towels.png",
			},
			Description:      "Our premium organic cotton towels are soft, absorbent, and free from harmful chemicals. Made with 100% GOTS-certified organic cotton and eco-friendly dyes. These towels are not only better for your skin but also better for the environment and the farmers who grow the cotton.",
			ShortDescription: "Soft, absorbent towels made from 100% GOTS-certified organic cotton.",
			Features: []string{
				"100% GOTS-certified organic cotton",
				"Free from harmful chemicals",
				"Eco-friendly dyes",
				"Highly absorbent",
				"Quick-drying",
			},
			Specifications: map[string]string{
				"Material":          "100% organic cotton",
				"Dimensions":        "30 x 54 inches",
				"Weight":            "600 GSM",
				"Country of Origin": "Made in Portugal",
				"Care Instructions": "Machine wash cold, tumble dry low",
			},
			Brand:                  Brand{Name: "Pure Home", Slug: "pure-home", Logo: "/images/brands/pure-home.png"},
			Category:               CategoryRef{Name: "Home & Kitchen", Slug: "home-kitchen"},
			Tags:                   []string{"bathroom", "home", "organic"},
			InStock:                true,
			Rating:                 5,
			ReviewCount:            12,
			SustainabilityFeatures: []string{"Organic", "Chemical-Free", "Sustainable Materials"},
			CreatedAt:              "2023-02-20",
		},
		{
			ID:    3,
			Slug:  "natural-moisturizer",
			Name:  "Natural Moisturizer",
			Price: dec("18.99"),
			Images: []string{
				"/images/products/natural-moisturizer.png",
				"/images/products/natural-moisturizer.png",
				"/images/products/natural-moisturizer.png",
			},
			Description:      "Our natural moisturizer is made with organic ingredients like shea butter, coconut oil, and aloe vera to hydrate and nourish your skin. Free from parabens, synthetic fragrances, and other harmful chemicals. Packaged in a recyclable glass jar with a metal lid.",
			ShortDescription: "Hydrating moisturizer made with organic ingredients in recyclable packaging.",
			Features: []string{
				"Made with organic ingredients",
				"Free from parabens and synthetic fragrances",
				"Suitable for all skin types",
				"Recyclable glass packaging",
				"Not tested on animals",
			},
			Specifications: map[string]string{
				"Size":              "4 oz",
				"Ingredients":       "Shea butter, coconut oil, aloe vera, essential oils",
				"Shelf Life":        "12 months",
				"Country of Origin": "Made in USA",
				"Storage":           "Store in a cool, dry place",
			},
			Brand:                  Brand{Name: "Gaia Beauty", Slug: "gaia-beauty", Logo: "/images/brands/gaia-beauty.png"},
			Category:               CategoryRef{Name: "Beauty", Slug: "beauty"},
			Tags:                   []string{"skincare", "beauty", "organic"},
			InStock:                true,
			Rating:                 4,
			ReviewCount:            24,
			SustainabilityFeatures: []string{"Organic", "Cruelty-Free", "Recyclable Packaging"},
			CreatedAt:              "2023-03-10",
		},
		{
			ID:        4,
			Slug:      "reusable-food-wraps",
			Name:      "Reusable Food Wraps",
			Price:     dec("15.99"),
			SalePrice: decPtr("12.99"),
			Images: []string{
				"/images/products/food-wraps.png",
				"/images/products/food-wraps.png",
				"/images/products/food-wraps.png",
			},
			Description:      "Say goodbye to plastic wrap with our reusable food wraps. Made with organic cotton, beeswax, tree resin, and jojoba oil, these wraps are a sustainable alternative for food storage. They're washable, reusable for up to a year, and fully compostable at the end of their life.",
			ShortDescription: "Sustainable alternative to plastic wrap for food storage.",
			Features: []string{
				"Made with organic cotton and beeswax",
				"Washable and reusable for up to a year",
				"Compostable at end of life",
				"Comes in various sizes",
				"Plastic-free packaging",
			},
			Specifications: map[string]string{
				"Material":          "Organic cotton, beeswax, tree resin, jojoba oil",
				"Sizes":             `Small (7x8"), Medium (10x11"), Large (13x14")`,
				"Pack Contents":     "3 wraps (1 of each size)",
				"Care Instructions": "Wash with cold water and mild soap, air dry",
				"Country of Origin": "Made in Canada",
			},
			Brand:                  Brand{Name: "Green Kitchen", Slug: "green-kitchen", Logo: "/images/brands/green-kitchen.png"},
			Category:               CategoryRef{Name: "Home & Kitchen", Slug: "home-kitchen"},
			Tags:                   []string{"kitchen", "food storage", "plastic-free"},
			InStock:                true,
			Rating:                 4.5,
			ReviewCount:            42,
			SustainabilityFeatures: []string{"Plastic-Free", "Reusable", "Compostable"},
			IsBestSeller:           true,
			CreatedAt:              "2023-01-05",
		},
		{
			ID:    5,
			Slug:  "stainless-steel-water-bottle",
			Name:  "Stainless Steel Water Bottle",
			Price: dec("29.99"),
			Images: []string{
				"/images/products/water-bottle.png",
				"/images/products/water-bottle.png",
				"/images/products/water-bottle.png",
			},
			Description:      "Our double-walled stainless steel water bottle keeps drinks cold for 24 hours or hot for 12 hours. It's durable, leak-proof, and free from BPA and other harmful chemicals. By using this bottle, you're helping reduce the number of single-use plastic bottles that end up in landfills and oceans.",
			ShortDescription: "Double-walled insulated bottle that keeps drinks cold for 24 hours or hot for 12 hours.",
			Features: []string{
				"Made from 18/8 food-grade stainless steel",
				"Double-walled vacuum insulation",
				"BPA-free and non-toxic",
				"Leak-proof design",
				"Available in multiple colors",
			},
			Specifications: map[string]string{
				"Material":          "18/8 stainless steel",
				"Capacity":          "24 oz",
				"Dimensions":        `10.5" H x 2.9" W`,
				"Weight":            "12.8 oz",
				"Care Instructions": "Hand wash recommended",
			},
			Brand:                  Brand{Name: "Green Kitchen", Slug: "green-kitchen", Logo: "/images/brands/green-kitchen.png"},
			Category:               CategoryRef{Name: "Home & Kitchen", Slug: "home-kitchen"},
			Tags:                   []string{"hydration", "kitchen", "plastic-free"},
			InStock:                true,
			Rating:                 4.8,
			ReviewCount:            56,
			SustainabilityFeatures: []string{"Plastic-Free", "Reusable", "Durable"},
			IsNew:                  true,
			CreatedAt:              "2023-04-15",
		},
		{
			ID:    6,
			Slug:  "natural-laundry-detergent",
			Name:  "Natural Laundry Detergent",
			Price: dec("12.99"),
			Images: []string{
				"/images/products/laundry-detergent.png",
				"/images/products/laundry-detergent.png",
				"/images/products/laundry-detergent.png",
			},
			Description:      "Our plant-based laundry detergent is tough on stains but gentle on your clothes and the environment. Free from synthetic fragrances, dyes, and optical brighteners. The concentrated formula comes in a recyclable cardboard box, reducing plastic waste.",
			ShortDescription: "Plant-based laundry detergent in plastic-free packaging.",
			Features: []string{
				"Plant-based ingredients",
				"Free from synthetic fragrances and dyes",
				"Biodegradable formula",
				"Plastic-free packaging",
				"Works in all washing machines",
			},
			Specifications: map[string]string{
				"Size":              "36 oz (72 loads)",
				"Ingredients":       "Sodium carbonate, sodium bicarbonate, plant-based surfactants, enzymes",
				"Scent":             "Lavender (from essential oils)",
				"Country of Origin": "Made in USA",
				"Storage":           "Keep in a dry place",
			},
			Brand:                  Brand{Name: "Pure Home", Slug: "pure-home", Logo: "/images/brands/pure-home.png"},
			Category:               CategoryRef{Name: "Cleaning", Slug: "cleaning"},
			Tags:                   []string{"laundry", "cleaning", "plastic-free"},
			InStock:                true,
			Rating:                 4.2,
			ReviewCount:            31,
			SustainabilityFeatures: []string{"Plant-Based", "Biodegradable", "Plastic-Free Packaging"},
			CreatedAt:              "2023-02-28",
		},
	}
}

// DefaultBrands returns the brand directory shown on the storefront.
func DefaultBrands() []BrandInfo {
	return []BrandInfo{
		{Name: "EcoSmile", Slug: "ecosmile", Logo: "/images/brands/ecosmile.png", Description: "Sustainable oral care products."},
		{Name: "Pure Home", Slug: "pure-home", Logo: "/images/brands/pure-home.png", Description: "Eco-friendly home and cleaning products."},
		{Name: "Gaia Beauty", Slug: "gaia-beauty", Logo: "/images/brands/gaia-beauty.png", Description: "Natural and organic beauty products."},
		{Name: "Green Kitchen", Slug: "green-kitchen", Logo: "/images/brands/green-kitchen.png", Description: "Sustainable kitchen and food storage solutions."},
	}
}
