package featured

// Rail groups the landing page product rails in one response so the
// frontend needs a single request.
type Rail struct {
	NewArrivals []Card `json:"newArrivals"`
	BestSellers []Card `json:"bestSellers"`
	OnSale      []Card `json:"onSale"`
}

// Card is the lightweight product DTO the rails render. The full record
// stays behind the product detail endpoint.
type Card struct {
	ProductID int     `json:"productId"`
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Price     string  `json:"price"`
	SalePrice *string `json:"salePrice,omitempty"`
	Image     string  `json:"image,omitempty"`
	Rating    float64 `json:"rating"`
}
