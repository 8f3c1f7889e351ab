package category

// Category is one entry of the shop navigation. The "On Sale" entry is a
// virtual category, the frontend maps it to a sale filter.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// DefaultCategories returns the seed categories used when no database is
// configured.
func DefaultCategories() []Category {
	return []Category{
		{ID: 1, Name: "Home & Kitchen", Slug: "home-kitchen", Image: "/placeholder.svg?height=300&width=300",
			Description: "Sustainable essentials for every room"},
		{ID: 2, Name: "Cleaning", Slug: "cleaning", Image: "/placeholder.svg?height=300&width=300",
			Description: "Plant-based cleaning without the plastic"},
		{ID: 3, Name: "Bathroom", Slug: "bathroom", Image: "/placeholder.svg?height=300&width=300",
			Description: "Plastic-free personal care"},
		{ID: 4, Name: "Beauty", Slug: "beauty", Image: "/placeholder.svg?height=300&width=300",
			Description: "Natural and cruelty-free beauty"},
		{ID: 5, Name: "Kids & Pets", Slug: "kids-pets", Image: "/placeholder.svg?height=300&width=300",
			Description: "Safe picks for the whole family"},
		{ID: 6, Name: "On Sale", Slug: "on-sale", Image: "/placeholder.svg?height=300&width=300",
			Description: "Limited time offers"},
	}
}
