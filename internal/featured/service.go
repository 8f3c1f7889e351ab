package featured

import (
	"github.com/ecohero/storefront-backend/internal/product"
)

type Service struct {
	products product.ServiceInterface
}

func NewService(products product.ServiceInterface) *Service {
	return &Service{products: products}
}

func toCard(p product.Product) Card {
	card := Card{
		ProductID: p.ID,
		Slug:      p.Slug,
		Name:      p.Name,
		Price:     p.Price.StringFixed(2),
		Rating:    p.Rating,
	}
	if p.SalePrice != nil {
		s := p.SalePrice.StringFixed(2)
		card.SalePrice = &s
	}
	if len(p.Images) > 0 {
		card.Image = p.Images[0]
	}
	return card
}

// Rails builds the landing page rails from live catalog flags, capped at
// limit cards per rail.
func (s *Service) Rails(limit int) Rail {
	rail := Rail{
		NewArrivals: make([]Card, 0, limit),
		BestSellers: make([]Card, 0, limit),
		OnSale:      make([]Card, 0, limit),
	}
	for _, p := range s.products.List() {
		if p.IsNew && len(rail.NewArrivals) < limit {
			rail.NewArrivals = append(rail.NewArrivals, toCard(p))
		}
		if p.IsBestSeller && len(rail.BestSellers) < limit {
			rail.BestSellers = append(rail.BestSellers, toCard(p))
		}
		if p.SalePrice != nil && len(rail.OnSale) < limit {
			rail.OnSale = append(rail.OnSale, toCard(p))
		}
	}
	return rail
}
