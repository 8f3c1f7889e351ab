package content

// Testimonial is a customer quote shown on the landing page.
type Testimonial struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating"`
}

// BlogPost is a marketing article teaser. Only the teaser lives here, the
// body is served by the CMS.
type BlogPost struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Image       string `json:"image,omitempty"`
	Author      string `json:"author"`
	PublishedAt string `json:"publishedAt"`
}

// DefaultTestimonials returns the seed quotes used when no database is
// configured.
func DefaultTestimonials() []Testimonial {
	return []Testimonial{
		{ID: 1, Name: "Maya R.", Location: "Austin, TX", Avatar: "/placeholder.svg?height=100&width=100",
			Quote:  "Switching to EcoHero products cut our household plastic waste in half. The quality is just as good as the brands we used before.",
			Rating: 5},
		{ID: 2, Name: "Tom B.", Location: "Seattle, WA", Avatar: "/placeholder.svg?height=100&width=100",
			Quote:  "Fast shipping, thoughtful packaging, and the food wraps actually work. I'm a repeat customer now.",
			Rating: 5},
		{ID: 3, Name: "Priya S.", Location: "Denver, CO", Avatar: "/placeholder.svg?height=100&width=100",
			Quote:  "I love that every product lists its sustainability features up front. It makes conscious shopping easy.",
			Rating: 4},
	}
}

// DefaultBlogPosts returns the seed article teasers.
func DefaultBlogPosts() []BlogPost {
	return []BlogPost{
		{ID: 1, Slug: "10-easy-swaps-for-a-plastic-free-kitchen", Title: "10 Easy Swaps for a Plastic-Free Kitchen",
			Excerpt: "Small changes add up. Start with these simple alternatives to the most common single-use plastics in your kitchen.",
			Image:   "/placeholder.svg?height=400&width=600", Author: "EcoHero Team", PublishedAt: "2023-03-12"},
		{ID: 2, Slug: "what-makes-bamboo-sustainable", Title: "What Makes Bamboo So Sustainable?",
			Excerpt: "Bamboo grows up to a metre a day without pesticides. Here is why it shows up in so many of our products.",
			Image:   "/placeholder.svg?height=400&width=600", Author: "EcoHero Team", PublishedAt: "2023-04-02"},
		{ID: 3, Slug: "understanding-compostable-vs-biodegradable", Title: "Compostable vs. Biodegradable: Know the Difference",
			Excerpt: "The two labels are not interchangeable. Learn what each one means before your next purchase.",
			Image:   "/placeholder.svg?height=400&width=600", Author: "EcoHero Team", PublishedAt: "2023-04-21"},
	}
}
