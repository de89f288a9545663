package announcement

import (
	"context"
	"fmt"
	"time"

	"github.com/hackforge-dev/admin-api/internal/domain"
	"github.com/hackforge-dev/admin-api/internal/pkg/id"
	"github.com/hackforge-dev/admin-api/internal/pkg/validate"
)

type Service interface {
	// Create persists the announcement and then fans it out to the
	// notification channels. The returned record confirms persistence only;
	// delivery is best-effort and unconfirmed.
	Create(ctx context.Context, req domain.CreateAnnouncementRequest, authorID string) (*domain.Announcement, error)
	Delete(ctx context.Context, announcementID string) (*domain.Announcement, error)
	List(ctx context.Context) ([]domain.Announcement, error)
	Count(ctx context.Context) (int, error)
}

type announcementStore interface {
	Put(ctx context.Context, a *domain.Announcement) error
	Delete(ctx context.Context, announcementID string) (*domain.Announcement, error)
	ListRecent(ctx context.Context) ([]domain.Announcement, error)
	Count(ctx context.Context) (int, error)
}

type broadcaster interface {
	Broadcast(ctx context.Context, ann *domain.Announcement)
}

type service struct {
	repo        announcementStore
	broadcaster broadcaster
}

func NewService(repo announcementStore, b broadcaster) Service {
	return &service{repo: repo, broadcaster: b}
}

func (s *service) Create(ctx context.Context, req domain.CreateAnnouncementRequest, authorID string) (*domain.Announcement, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	ann := &domain.Announcement{
		AnnouncementID: id.New(),
		Title:          req.Title,
		Content:        req.Content,
		AuthorID:       authorID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, ann); err != nil {
		return nil, err
	}

	// The write is durable at this point; fan-out failures stay internal.
	if s.broadcaster != nil {
		s.broadcaster.Broadcast(ctx, ann)
	}
	return ann, nil
}

func (s *service) Delete(ctx context.Context, announcementID string) (*domain.Announcement, error) {
	return s.repo.Delete(ctx, announcementID)
}

func (s *service) List(ctx context.Context) ([]domain.Announcement, error) {
	return s.repo.ListRecent(ctx)
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
