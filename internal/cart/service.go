package cart

import (
	"errors"

	"github.com/ecohero/storefront-backend/internal/product"
)

var (
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

type Service struct {
	repo     Repository
	products product.ServiceInterface
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) Items(userID int) ([]Item, error) {
	return s.repo.Items(userID)
}

// Quote prices the user's current cart. Totals are derived on every call,
// a stale stored total can never be served.
func (s *Service) Quote(userID int, promoCode string) (Quote, error) {
	items, err := s.repo.Items(userID)
	if err != nil {
		return Quote{}, err
	}
	return ComputeQuote(items, promoCode)
}

// AddItem snapshots the product's effective price and first image into the
// cart line. Adding a product already in the cart bumps its quantity.
func (s *Service) AddItem(userID, productID, quantity int) ([]Item, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	prod, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if !prod.InStock {
		return nil, ErrOutOfStock
	}

	items, err := s.repo.Items(userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		image := ""
		if len(prod.Images) > 0 {
			image = prod.Images[0]
		}
		items = append(items, Item{
			ProductID: prod.ID,
			Name:      prod.Name,
			Price:     prod.EffectivePrice(),
			Image:     image,
			Quantity:  quantity,
		})
	}

	if err := s.repo.Save(userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) UpdateQuantity(userID, productID, quantity int) ([]Item, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	items, err := s.repo.Items(userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, ErrItemNotFound
	}

	if err := s.repo.Save(userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) RemoveItem(userID, productID int) ([]Item, error) {
	items, err := s.repo.Items(userID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	found := false
	for _, item := range items {
		if item.ProductID == productID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return nil, ErrItemNotFound
	}

	if err := s.repo.Save(userID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *Service) Clear(userID int) error {
	return s.repo.Clear(userID)
}
