package usecase

import (
	"context"

	"github.com/ecohero/storefront-backend/internal/domain/entity"
)

// SubscriberUsecase exposes application-level operations for the
// newsletter list.
type SubscriberUsecase interface {
	Subscribe(ctx context.Context, input SubscribeInput) (*entity.Subscriber, error)
	List(ctx context.Context) ([]*entity.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
}

// SubscribeInput carries data required to join the newsletter.
type SubscribeInput struct {
	Email  string
	Source string
}
