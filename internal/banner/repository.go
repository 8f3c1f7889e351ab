package banner

import "sync"

type Repository interface {
	List(limit int) ([]Banner, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	banners []Banner
}

func NewInMemoryRepository(seed []Banner) *InMemoryRepository {
	r := &InMemoryRepository{banners: make([]Banner, 0, len(seed))}
	r.banners = append(r.banners, seed...)
	return r
}

func (r *InMemoryRepository) List(limit int) ([]Banner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.banners)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Banner, n)
	copy(out, r.banners[:n])
	return out, nil
}
