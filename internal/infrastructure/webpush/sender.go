package webpush

import (
	"context"
	"errors"

	wp "github.com/SherClockHolmes/webpush-go"
	"github.com/hackforge-dev/admin-api/internal/config"
	"github.com/hackforge-dev/admin-api/internal/domain"
)

// Sender delivers an encrypted payload to a single push subscription.
type Sender interface {
	Send(ctx context.Context, sub *domain.PushSubscription, payload []byte) error
}

type sender struct {
	options *wp.Options
}

// NewSender builds a web-push sender from the process VAPID credentials.
func NewSender(cfg *config.Config) (Sender, error) {
	if cfg.VAPIDPublicKey == "" || cfg.VAPIDPrivateKey == "" {
		return nil, errors.New("VAPID key pair is required")
	}
	return &sender{
		options: &wp.Options{
			Subscriber:      cfg.VAPIDSubscriber,
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
			TTL:             60,
		},
	}, nil
}

// Send encrypts payload against the subscription's key material and posts it
// to the endpoint. A 4xx/5xx from the push service is returned as a
// *domain.DeliveryError so callers can classify the failure.
func (s *sender) Send(ctx context.Context, sub *domain.PushSubscription, payload []byte) error {
	resp, err := wp.SendNotificationWithContext(ctx, payload, &wp.Subscription{
		Endpoint: sub.Endpoint,
		Keys: wp.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, s.options)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return &domain.DeliveryError{StatusCode: resp.StatusCode}
	}
	return nil
}
