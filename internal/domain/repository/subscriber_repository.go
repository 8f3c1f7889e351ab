package repository

import (
	"context"
	"errors"

	"github.com/ecohero/storefront-backend/internal/domain/entity"
)

// ErrNotFound is returned when no subscriber matches the lookup.
var ErrNotFound = errors.New("subscriber not found")

// SubscriberRepository defines persistence behavior for the Subscriber
// entity.
type SubscriberRepository interface {
	Create(ctx context.Context, sub *entity.Subscriber) (*entity.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error)
	List(ctx context.Context) ([]*entity.Subscriber, error)
	Update(ctx context.Context, sub *entity.Subscriber) (*entity.Subscriber, error)
}
