package domain

import "time"

// PushSubscription is a registered browser push channel: an opaque delivery
// endpoint plus the key material the push protocol needs to encrypt payloads.
type PushSubscription struct {
	SubscriptionID string    `json:"id" dynamodbav:"subscription_id"`
	Endpoint       string    `json:"endpoint" dynamodbav:"endpoint"`
	P256dh         string    `json:"p256dh" dynamodbav:"p256dh"`
	Auth           string    `json:"auth" dynamodbav:"auth"`
	CreatedAt      time.Time `json:"created" dynamodbav:"created_at"`
}

// RegisterSubscriptionRequest mirrors the PushSubscription JSON produced by
// the browser's PushManager.subscribe().
type RegisterSubscriptionRequest struct {
	Endpoint string           `json:"endpoint" validate:"required,url"`
	Keys     SubscriptionKeys `json:"keys" validate:"required"`
}

type SubscriptionKeys struct {
	P256dh string `json:"p256dh" validate:"required"`
	Auth   string `json:"auth" validate:"required"`
}
