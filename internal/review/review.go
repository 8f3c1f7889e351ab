package review

// Review is a customer product review. Reviews live in a process-lifetime
// store in mock mode; new ones are appended at runtime.
type Review struct {
	ID         int     `json:"id"`
	ProductID  int     `json:"productId"`
	UserID     string  `json:"userId"`
	UserName   string  `json:"userName"`
	UserAvatar *string `json:"userAvatar,omitempty"`
	Rating     int     `json:"rating"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	CreatedAt  string  `json:"createdAt"`
	Helpful    int     `json:"helpful"`
	Verified   bool    `json:"verified"`
}

// Summary aggregates the reviews of one product for the rating widget.
// Average is 0 when there are no reviews. Distribution counts reviews per
// star value 1..5 (the bar chart renders count/total).
type Summary struct {
	Average      float64     `json:"average"`
	Total        int         `json:"total"`
	Distribution map[int]int `json:"distribution"`
}

func ptrString(s string) *string { return &s }

// DefaultReviews returns the seed reviews used when no database is
// configured.
func DefaultReviews() []Review {
	return []Review{
		{ID: 1, ProductID: 1, UserID: "user1", UserName: "Sarah J.", UserAvatar: ptrString("/placeholder.svg?height=100&width=100"), Rating: 5, Title: "Great sustainable option!",
			Content:   "I've been searching for eco-friendly products that actually work, and this bamboo toothbrush is perfect. It's comfortable to hold, the bristles are just the right firmness, and it looks nice too!",
			CreatedAt: "2023-01-20", Helpful: 12, Verified: true},
		{ID: 2, ProductID: 1, UserID: "user2", UserName: "Michael T.", UserAvatar: ptrString("/placeholder.svg?height=100&width=100"), Rating: 4, Title: "Good but bristles wear quickly",
			Content:   "I like the concept and the handle is great, but I found the bristles started to wear out faster than my regular toothbrush. Still, I'll keep buying them to avoid plastic waste.",
			CreatedAt: "2023-02-15", Helpful: 8, Verified: true},
		{ID: 3, ProductID: 1, UserID: "user3", UserName: "Emma L.", Rating: 5, Title: "Love this toothbrush!",
			Content:   "This is my third bamboo toothbrush from EcoSmile and I'm still impressed. The quality is consistent and I love knowing I'm reducing plastic waste.",
			CreatedAt: "2023-03-05", Helpful: 5, Verified: true},
		{ID: 4, ProductID: 2, UserID: "user4", UserName: "David K.", Rating: 5, Title: "Luxurious and sustainable",
			Content:   "These towels are incredibly soft and absorbent. They're a bit pricier than regular towels, but the quality and sustainability aspects make them worth it.",
			CreatedAt: "2023-02-25", Helpful: 10, Verified: true},
		{ID: 5, ProductID: 2, UserID: "user5", UserName: "Olivia P.", UserAvatar: ptrString("/placeholder.svg?height=100&width=100"), Rating: 5, Title: "Best towels I've ever owned",
			Content:   "These towels are amazing! Super soft, absorbent, and they dry quickly. I also love that they're made from organic cotton. Will definitely buy more.",
			CreatedAt: "2023-03-10", Helpful: 7, Verified: true},
		{ID: 6, ProductID: 3, UserID: "user6", UserName: "James W.", Rating: 4, Title: "Great for sensitive skin",
			Content:   "I have very sensitive skin and this moisturizer works perfectly for me. No irritation and it keeps my skin hydrated all day. The only reason I'm giving 4 stars instead of 5 is that I wish the jar was a bit larger for the price.",
			CreatedAt: "2023-03-15", Helpful: 9, Verified: true},
		{ID: 7, ProductID: 3, UserID: "user7", UserName: "Sophia R.", UserAvatar: ptrString("/placeholder.svg?height=100&width=100"), Rating: 3, Title: "Good but not great",
			Content:   "The moisturizer itself is good quality and I like that it's all natural, but I found it a bit too heavy for my combination skin. Might be better for those with dry skin.",
			CreatedAt: "2023-03-20", Helpful: 4, Verified: true},
		{ID: 8, ProductID: 4, UserID: "user8", UserName: "Liam T.", Rating: 5, Title: "Game changer for food storage",
			Content:   "These food wraps are amazing! They work just as well as plastic wrap but are reusable and better for the environment. I've already recommended them to all my friends.",
			CreatedAt: "2023-01-30", Helpful: 15, Verified: true},
		{ID: 9, ProductID: 4, UserID: "user9", UserName: "Ava M.", Rating: 4, Title: "Great product with a learning curve",
			Content:   "These work really well once you get the hang of them. The warmth of your hands helps them stick. They're not quite as clingy as plastic wrap, but they do the job and I feel good about not using plastic.",
			CreatedAt: "2023-02-10", Helpful: 11, Verified: true},
		{ID: 10, ProductID: 5, UserID: "user10", UserName: "Noah C.", UserAvatar: ptrString("/placeholder.svg?height=100&width=100"), Rating: 5, Title: "Best water bottle I've owned",
			Content:   "This water bottle is fantastic! It really does keep water cold for 24 hours (I tested it!). The design is sleek and it doesn't leak at all. Worth every penny.",
			CreatedAt: "2023-04-20", Helpful: 6, Verified: true},
	}
}
