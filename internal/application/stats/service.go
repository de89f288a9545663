package stats

import "context"

// Service exposes the counters shown on the admin dashboard.
type Service interface {
	AnnouncementTotal(ctx context.Context) (int, error)
	UserTotal(ctx context.Context) (int, error)
}

type announcementCounter interface {
	Count(ctx context.Context) (int, error)
}

type userCounter interface {
	CountEnabled(ctx context.Context) (int, error)
}

type service struct {
	announcements announcementCounter
	users         userCounter
}

func NewService(announcements announcementCounter, users userCounter) Service {
	return &service{announcements: announcements, users: users}
}

func (s *service) AnnouncementTotal(ctx context.Context) (int, error) {
	return s.announcements.Count(ctx)
}

func (s *service) UserTotal(ctx context.Context) (int, error) {
	return s.users.CountEnabled(ctx)
}
