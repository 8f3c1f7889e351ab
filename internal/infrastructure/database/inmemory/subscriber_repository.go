package inmemory

import (
	"context"
	"sync"

	"github.com/ecohero/storefront-backend/internal/domain/entity"
	"github.com/ecohero/storefront-backend/internal/domain/repository"
)

// SubscriberRepository is an in-memory implementation of
// SubscriberRepository.
type SubscriberRepository struct {
	mu    sync.RWMutex
	store map[string]*entity.Subscriber
}

var _ repository.SubscriberRepository = (*SubscriberRepository)(nil)

func NewSubscriberRepository() *SubscriberRepository {
	return &SubscriberRepository{store: make(map[string]*entity.Subscriber)}
}

func (r *SubscriberRepository) Create(ctx context.Context, sub *entity.Subscriber) (*entity.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subCopy := *sub
	r.store[subCopy.ID] = &subCopy

	result := subCopy
	return &result, nil
}

func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sub := range r.store {
		if sub.Email == email {
			copy := *sub
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *SubscriberRepository) List(ctx context.Context) ([]*entity.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Subscriber, 0, len(r.store))
	for _, sub := range r.store {
		copy := *sub
		result = append(result, &copy)
	}
	return result, nil
}

func (r *SubscriberRepository) Update(ctx context.Context, sub *entity.Subscriber) (*entity.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[sub.ID]; !ok {
		return nil, repository.ErrNotFound
	}

	copy := *sub
	r.store[sub.ID] = &copy
	result := copy
	return &result, nil
}
