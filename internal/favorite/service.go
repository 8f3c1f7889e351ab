package favorite

import (
	"errors"

	"github.com/ecohero/storefront-backend/internal/product"
	"github.com/ecohero/storefront-backend/internal/user"
)

var (
	ErrAlreadyFavorite = errors.New("product already in favorites")
	ErrNotFavorite     = errors.New("product not in favorites")
)

// AccountStore is the slice of the user service favorites need. The
// favorite list lives on the user record.
type AccountStore interface {
	GetByID(id int) (user.User, error)
	Update(id int, u user.User) (user.User, error)
}

type Service struct {
	accounts AccountStore
	products product.ServiceInterface
}

func NewService(accounts AccountStore, products product.ServiceInterface) *Service {
	return &Service{accounts: accounts, products: products}
}

func (s *Service) AddFavorite(userID, productID int) ([]int, error) {
	if _, err := s.products.GetByID(productID); err != nil {
		return nil, err
	}

	u, err := s.accounts.GetByID(userID)
	if err != nil {
		return nil, err
	}
	for _, pid := range u.FavoriteProductIDs {
		if pid == productID {
			return nil, ErrAlreadyFavorite
		}
	}

	u.FavoriteProductIDs = append(u.FavoriteProductIDs, productID)
	updated, err := s.accounts.Update(userID, u)
	if err != nil {
		return nil, err
	}
	return updated.FavoriteProductIDs, nil
}

func (s *Service) RemoveFavorite(userID, productID int) ([]int, error) {
	u, err := s.accounts.GetByID(userID)
	if err != nil {
		return nil, err
	}

	found := false
	kept := make([]int, 0, len(u.FavoriteProductIDs))
	for _, pid := range u.FavoriteProductIDs {
		if pid == productID {
			found = true
			continue
		}
		kept = append(kept, pid)
	}
	if !found {
		return nil, ErrNotFavorite
	}

	u.FavoriteProductIDs = kept
	updated, err := s.accounts.Update(userID, u)
	if err != nil {
		return nil, err
	}
	return updated.FavoriteProductIDs, nil
}

// ListFavorites resolves the saved ids against the catalog. Products that
// have since disappeared are silently skipped.
func (s *Service) ListFavorites(userID int) ([]product.Product, error) {
	u, err := s.accounts.GetByID(userID)
	if err != nil {
		return nil, err
	}

	out := make([]product.Product, 0, len(u.FavoriteProductIDs))
	for _, pid := range u.FavoriteProductIDs {
		p, err := s.products.GetByID(pid)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
