package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecohero/storefront-backend/internal/domain/entity"
	"github.com/ecohero/storefront-backend/internal/domain/repository"
)

var (
	ErrInvalidEmail      = errors.New("a valid email is required")
	ErrAlreadySubscribed = errors.New("email is already subscribed")
)

// SubscriberService implements SubscriberUsecase with a repository
// dependency.
type SubscriberService struct {
	repo repository.SubscriberRepository
}

func NewSubscriberService(repo repository.SubscriberRepository) *SubscriberService {
	return &SubscriberService{repo: repo}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Subscribe adds an email to the list. Signing up again after an
// unsubscribe reactivates the existing record instead of creating a
// duplicate.
func (s *SubscriberService) Subscribe(ctx context.Context, input SubscribeInput) (*entity.Subscriber, error) {
	email := normalizeEmail(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		if existing.Status == entity.StatusActive {
			return nil, ErrAlreadySubscribed
		}
		existing.Status = entity.StatusActive
		existing.UpdatedAt = time.Now().UTC()
		return s.repo.Update(ctx, existing)
	}
	if err != repository.ErrNotFound {
		return nil, err
	}

	now := time.Now().UTC()
	sub := &entity.Subscriber{
		ID:        uuid.NewString(),
		Email:     email,
		Source:    strings.TrimSpace(input.Source),
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.Create(ctx, sub)
}

func (s *SubscriberService) List(ctx context.Context) ([]*entity.Subscriber, error) {
	return s.repo.List(ctx)
}

// Unsubscribe marks the record unsubscribed. The row is kept so a later
// signup reactivates it.
func (s *SubscriberService) Unsubscribe(ctx context.Context, email string) error {
	sub, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if sub.Status == entity.StatusUnsubscribed {
		return nil
	}
	sub.Status = entity.StatusUnsubscribed
	sub.UpdatedAt = time.Now().UTC()
	_, err = s.repo.Update(ctx, sub)
	return err
}
