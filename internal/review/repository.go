package review

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("review not found")
)

type Repository interface {
	ListByProduct(productID int) ([]Review, error)
	GetByID(id int) (Review, error)
	// Add stores the review and assigns the next sequential id.
	Add(r Review) (Review, error)
	// IncrementHelpful bumps the helpful counter and returns the new value.
	IncrementHelpful(id int) (int, error)
}

// InMemoryRepository holds reviews for the process lifetime. Appended
// reviews are lost on restart, matching the mock-data mode.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Review
	nextID  int
}

func NewInMemoryRepository(seed []Review) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Review, 0, len(seed)),
		nextID:  1,
	}
	maxID := 0
	for _, rev := range seed {
		r.storage = append(r.storage, rev)
		if rev.ID > maxID {
			maxID = rev.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) ListByProduct(productID int) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Review, 0)
	for _, rev := range r.storage {
		if rev.ProductID == productID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rev := range r.storage {
		if rev.ID == id {
			return rev, nil
		}
	}
	return Review{}, ErrNotFound
}

func (r *InMemoryRepository) Add(rev Review) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rev.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, rev)
	return rev, nil
}

func (r *InMemoryRepository) IncrementHelpful(id int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage[i].Helpful++
			return r.storage[i].Helpful, nil
		}
	}
	return 0, ErrNotFound
}
