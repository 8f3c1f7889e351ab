package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Register(u User) (User, error) {
	if _, err := s.repo.GetByEmail(u.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u.Password = string(hashed)
	return s.repo.Create(u)
}

func (s *Service) Authenticate(email, password string) (User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) Update(id int, u User) (User, error) {
	u.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, u)
}

// AppendOrderID records a placed order on the account's order history.
func (s *Service) AppendOrderID(userID, orderID int) error {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return err
	}
	u.OrderIDs = append(u.OrderIDs, orderID)
	_, err = s.Update(userID, u)
	return err
}

// AppendAddressID links a saved address to the account. The first address
// becomes the main one.
func (s *Service) AppendAddressID(userID, addressID int) error {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return err
	}
	u.AddressIDs = append(u.AddressIDs, addressID)
	if u.MainAddressID == nil {
		u.MainAddressID = &addressID
	}
	_, err = s.Update(userID, u)
	return err
}

func (s *Service) RemoveAddressID(userID, addressID int) error {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return err
	}

	kept := make([]int, 0, len(u.AddressIDs))
	for _, id := range u.AddressIDs {
		if id != addressID {
			kept = append(kept, id)
		}
	}
	u.AddressIDs = kept
	if u.MainAddressID != nil && *u.MainAddressID == addressID {
		u.MainAddressID = nil
		if len(kept) > 0 {
			u.MainAddressID = &kept[0]
		}
	}
	_, err = s.Update(userID, u)
	return err
}
