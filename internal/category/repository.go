package category

import "sync"

type Repository interface {
	List(limit int) ([]Category, error)
}

type InMemoryRepository struct {
	mu         sync.RWMutex
	categories []Category
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	r := &InMemoryRepository{categories: make([]Category, 0, len(seed))}
	r.categories = append(r.categories, seed...)
	return r
}

func (r *InMemoryRepository) List(limit int) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.categories)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Category, n)
	copy(out, r.categories[:n])
	return out, nil
}
