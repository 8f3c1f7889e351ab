package address

import (
	"time"
)

// AccountLinker keeps the user record's address list in sync. Optional,
// the address book works without one.
type AccountLinker interface {
	AppendAddressID(userID, addressID int) error
	RemoveAddressID(userID, addressID int) error
}

type Service struct {
	repo     Repository
	accounts AccountLinker
}

func NewService(repo Repository, accounts AccountLinker) *Service {
	return &Service{repo: repo, accounts: accounts}
}

func (s *Service) ListByUser(userID int) ([]Address, error) {
	return s.repo.ListByUser(userID)
}

// GetForUser enforces ownership: another user's address reads as not
// found.
func (s *Service) GetForUser(userID, addressID int) (Address, error) {
	a, err := s.repo.GetByID(addressID)
	if err != nil {
		return Address{}, err
	}
	if a.UserID != userID {
		return Address{}, ErrNotFound
	}
	return a, nil
}

func (s *Service) Add(userID int, a Address) (Address, error) {
	a.UserID = userID
	now := time.Now().UTC().Format(time.RFC3339)
	a.CreatedAt = now
	a.UpdatedAt = now

	created, err := s.repo.Add(a)
	if err != nil {
		return Address{}, err
	}
	if s.accounts != nil {
		_ = s.accounts.AppendAddressID(userID, created.ID)
	}
	return created, nil
}

func (s *Service) Update(userID, addressID int, a Address) (Address, error) {
	if _, err := s.GetForUser(userID, addressID); err != nil {
		return Address{}, err
	}
	a.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(addressID, a)
}

func (s *Service) Delete(userID, addressID int) error {
	if _, err := s.GetForUser(userID, addressID); err != nil {
		return err
	}
	if err := s.repo.Delete(addressID); err != nil {
		return err
	}
	if s.accounts != nil {
		_ = s.accounts.RemoveAddressID(userID, addressID)
	}
	return nil
}
