package cart

import (
	"errors"
	"sync"
)

var (
	ErrItemNotFound = errors.New("cart item not found")
)

type Repository interface {
	Items(userID int) ([]Item, error)
	Save(userID int, items []Item) error
	Clear(userID int) error
}

type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[int][]Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[int][]Item)}
}

func (r *InMemoryRepository) Items(userID int) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.carts[userID]
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (r *InMemoryRepository) Save(userID int, items []Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]Item, len(items))
	copy(stored, items)
	r.carts[userID] = stored
	return nil
}

func (r *InMemoryRepository) Clear(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
