package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hackforge-dev/admin-api/internal/domain"
	"github.com/hackforge-dev/admin-api/internal/pkg/id"
	"github.com/hackforge-dev/admin-api/internal/pkg/validate"
)

type Service interface {
	// Register stores a browser push subscription. Re-registering an endpoint
	// refreshes its key material instead of creating a duplicate row.
	Register(ctx context.Context, req domain.RegisterSubscriptionRequest) (*domain.PushSubscription, error)
	Unsubscribe(ctx context.Context, endpoint string) error
}

type subscriptionStore interface {
	Put(ctx context.Context, s *domain.PushSubscription) error
	GetByEndpoint(ctx context.Context, endpoint string) (*domain.PushSubscription, error)
	HardDelete(ctx context.Context, subscriptionID string) error
}

type service struct {
	repo subscriptionStore
}

func NewService(repo subscriptionStore) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, req domain.RegisterSubscriptionRequest) (*domain.PushSubscription, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	sub := &domain.PushSubscription{
		SubscriptionID: id.New(),
		Endpoint:       req.Endpoint,
		P256dh:         req.Keys.P256dh,
		Auth:           req.Keys.Auth,
		CreatedAt:      time.Now().UTC(),
	}
	existing, err := s.repo.GetByEndpoint(ctx, req.Endpoint)
	if err == nil {
		// Keep the row identity stable so a re-subscribe is an upsert.
		sub.SubscriptionID = existing.SubscriptionID
		sub.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if err := s.repo.Put(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *service) Unsubscribe(ctx context.Context, endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("endpoint is required: %w", domain.ErrBadRequest)
	}
	sub, err := s.repo.GetByEndpoint(ctx, endpoint)
	if err != nil {
		return err
	}
	return s.repo.HardDelete(ctx, sub.SubscriptionID)
}
