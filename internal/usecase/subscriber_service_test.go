package usecase

import (
	"context"
	"testing"

	"github.com/ecohero/storefront-backend/internal/domain/entity"
	"github.com/ecohero/storefront-backend/internal/infrastructure/database/inmemory"
)

func TestSubscriberService_SubscribeNormalizesEmail(t *testing.T) {
	svc := NewSubscriberService(inmemory.NewSubscriberRepository())

	created, err := svc.Subscribe(context.Background(), SubscribeInput{Email: "  Jane@Example.COM ", Source: "footer"})
	if err != nil {
		t.Fatalf("expected subscribe to succeed, got error: %v", err)
	}
	if created.Email != "jane@example.com" {
		t.Fatalf("expected normalized email, got %s", created.Email)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}
	if created.Status != entity.StatusActive {
		t.Fatalf("expected active status, got %s", created.Status)
	}
}

func TestSubscriberService_DuplicateIsConflict(t *testing.T) {
	svc := NewSubscriberService(inmemory.NewSubscriberRepository())
	ctx := context.Background()

	if _, err := svc.Subscribe(ctx, SubscribeInput{Email: "jane@example.com"}); err != nil {
		t.Fatalf("first subscribe failed: %v", err)
	}
	// the same address with different casing is still a duplicate
	if _, err := svc.Subscribe(ctx, SubscribeInput{Email: "JANE@example.com"}); err != ErrAlreadySubscribed {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
}

func TestSubscriberService_ResubscribeReactivates(t *testing.T) {
	svc := NewSubscriberService(inmemory.NewSubscriberRepository())
	ctx := context.Background()

	created, _ := svc.Subscribe(ctx, SubscribeInput{Email: "jane@example.com"})
	if err := svc.Unsubscribe(ctx, "jane@example.com"); err != nil {
		t.Fatalf("unsubscribe failed: %v", err)
	}

	revived, err := svc.Subscribe(ctx, SubscribeInput{Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("resubscribe failed: %v", err)
	}
	// the original record is reactivated, not duplicated
	if revived.ID != created.ID {
		t.Fatalf("expected reused id %s, got %s", created.ID, revived.ID)
	}
	subs, _ := svc.List(ctx)
	if len(subs) != 1 {
		t.Fatalf("expected a single record, got %d", len(subs))
	}
}

func TestSubscriberService_RejectsInvalidEmail(t *testing.T) {
	svc := NewSubscriberService(inmemory.NewSubscriberRepository())
	if _, err := svc.Subscribe(context.Background(), SubscribeInput{Email: "not-an-email"}); err != ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}
