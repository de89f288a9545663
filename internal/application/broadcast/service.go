package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/hackforge-dev/admin-api/internal/domain"
)

// Service fans one announcement out to every notification channel: the
// Discord channel and all registered push subscriptions. Delivery is
// best-effort and at-most-once; Broadcast never reports failure to the
// caller because the announcement is already persisted when it runs.
type Service interface {
	Broadcast(ctx context.Context, ann *domain.Announcement)
}

type subscriptionStore interface {
	Scan(ctx context.Context) ([]domain.PushSubscription, error)
	DeleteBatch(ctx context.Context, subscriptionIDs []string) error
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

type chatNotifier interface {
	SendAnnouncement(ctx context.Context, title, content string, author domain.Author) error
}

type pushSender interface {
	Send(ctx context.Context, sub *domain.PushSubscription, payload []byte) error
}

type service struct {
	subs        subscriptionStore
	users       userStore
	chat        chatNotifier
	push        pushSender
	sendTimeout time.Duration
	log         *slog.Logger
}

// NewService builds the broadcaster. chat and push may be nil when the
// corresponding credentials are not configured; that channel is then skipped.
func NewService(subs subscriptionStore, users userStore, chat chatNotifier, push pushSender, sendTimeout time.Duration) Service {
	return &service{
		subs:        subs,
		users:       users,
		chat:        chat,
		push:        push,
		sendTimeout: sendTimeout,
		log:         slog.Default().With("component", "broadcast"),
	}
}

// pushPayload is the JSON body delivered to every subscription endpoint.
type pushPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

func (s *service) Broadcast(ctx context.Context, ann *domain.Announcement) {
	author := s.loadAuthor(ctx, ann.AuthorID)

	// The Discord post is an isolated failure domain: it runs alongside the
	// push fan-out and its outcome never reaches the push path.
	var chatWG sync.WaitGroup
	if s.chat != nil {
		chatWG.Add(1)
		go func() {
			defer chatWG.Done()
			cctx, cancel := context.WithTimeout(ctx, s.sendTimeout)
			defer cancel()
			if err := s.chat.SendAnnouncement(cctx, ann.Title, ann.Content, author); err != nil {
				s.log.Error("discord announcement failed",
					"announcement_id", ann.AnnouncementID, "err", err)
			}
		}()
	}

	s.fanOut(ctx, ann, author)
	chatWG.Wait()
}

// loadAuthor fetches the author snapshot. A missing or unreadable user
// degrades to the "Unknown" display block rather than aborting the broadcast.
func (s *service) loadAuthor(ctx context.Context, authorID string) domain.Author {
	u, err := s.users.Get(ctx, authorID)
	if err != nil {
		s.log.Warn("author lookup failed", "author_id", authorID, "err", err)
	}
	return domain.AuthorSnapshot(u)
}

func (s *service) fanOut(ctx context.Context, ann *domain.Announcement, author domain.Author) {
	if s.push == nil {
		return
	}
	subs, err := s.subs.Scan(ctx)
	if err != nil {
		s.log.Error("load push subscriptions failed", "err", err)
		return
	}
	if len(subs) == 0 {
		return
	}

	payload, err := json.Marshal(pushPayload{
		Title:   ann.Title,
		Content: ann.Content,
		Author:  author.Name,
	})
	if err != nil {
		s.log.Error("marshal push payload failed", "err", err)
		return
	}

	// Every subscription gets its own attempt; failures are collected and
	// classified, never short-circuited.
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		dead []string
	)
	wg.Add(len(subs))
	for i := range subs {
		sub := &subs[i]
		go func() {
			defer wg.Done()
			sctx, cancel := context.WithTimeout(ctx, s.sendTimeout)
			defer cancel()
			err := s.push.Send(sctx, sub, payload)
			if err == nil {
				return
			}
			var de *domain.DeliveryError
			if errors.As(err, &de) && de.Permanent() {
				s.log.Info("push endpoint is dead, marking for removal",
					"subscription_id", sub.SubscriptionID, "status", de.StatusCode)
				mu.Lock()
				dead = append(dead, sub.SubscriptionID)
				mu.Unlock()
				return
			}
			s.log.Warn("push delivery failed",
				"subscription_id", sub.SubscriptionID, "err", err)
		}()
	}
	wg.Wait()

	if len(dead) == 0 {
		return
	}
	if err := s.subs.DeleteBatch(ctx, dead); err != nil {
		s.log.Error("prune dead subscriptions failed", "count", len(dead), "err", err)
		return
	}
	s.log.Info("pruned dead subscriptions", "count", len(dead))
}
