package subscription

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hackforge-dev/admin-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockSubStore struct{ mock.Mock }

func (m *mockSubStore) Put(ctx context.Context, s *domain.PushSubscription) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockSubStore) GetByEndpoint(ctx context.Context, endpoint string) (*domain.PushSubscription, error) {
	args := m.Called(ctx, endpoint)
	if s, _ := args.Get(0).(*domain.PushSubscription); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSubStore) HardDelete(ctx context.Context, subscriptionID string) error {
	return m.Called(ctx, subscriptionID).Error(0)
}

func baseReq() domain.RegisterSubscriptionRequest {
	return domain.RegisterSubscriptionRequest{
		Endpoint: "https://push.example.com/send/abc",
		Keys:     domain.SubscriptionKeys{P256dh: "p256dh-key", Auth: "auth-key"},
	}
}

// --- Register tests ---

func TestRegister_NewEndpoint(t *testing.T) {
	st := &mockSubStore{}
	st.On("GetByEndpoint", mock.Anything, "https://push.example.com/send/abc").
		Return(nil, fmt.Errorf("subscription not found: %w", domain.ErrNotFound))
	st.On("Put", mock.Anything, mock.AnythingOfType("*domain.PushSubscription")).Return(nil)

	svc := NewService(st)
	sub, err := svc.Register(context.Background(), baseReq())

	require.NoError(t, err)
	assert.NotEmpty(t, sub.SubscriptionID)
	assert.Equal(t, "https://push.example.com/send/abc", sub.Endpoint)
	assert.Equal(t, "p256dh-key", sub.P256dh)
	assert.Equal(t, "auth-key", sub.Auth)
	st.AssertExpectations(t)
}

func TestRegister_ExistingEndpoint_KeepsIdentity(t *testing.T) {
	existing := &domain.PushSubscription{
		SubscriptionID: "s1",
		Endpoint:       "https://push.example.com/send/abc",
		P256dh:         "old-p256dh",
		Auth:           "old-auth",
	}
	st := &mockSubStore{}
	st.On("GetByEndpoint", mock.Anything, existing.Endpoint).Return(existing, nil)
	st.On("Put", mock.Anything, mock.AnythingOfType("*domain.PushSubscription")).Return(nil)

	svc := NewService(st)
	sub, err := svc.Register(context.Background(), baseReq())

	require.NoError(t, err)
	assert.Equal(t, "s1", sub.SubscriptionID)
	assert.Equal(t, "p256dh-key", sub.P256dh, "key material must be refreshed")
}

func TestRegister_MissingKeys(t *testing.T) {
	st := &mockSubStore{}

	svc := NewService(st)
	req := baseReq()
	req.Keys.Auth = ""
	_, err := svc.Register(context.Background(), req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	st.AssertNotCalled(t, "Put")
}

func TestRegister_InvalidEndpointURL(t *testing.T) {
	st := &mockSubStore{}

	svc := NewService(st)
	req := baseReq()
	req.Endpoint = "not-a-url"
	_, err := svc.Register(context.Background(), req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	st.AssertNotCalled(t, "Put")
}

// --- Unsubscribe tests ---

func TestUnsubscribe_MissingEndpoint(t *testing.T) {
	st := &mockSubStore{}

	svc := NewService(st)
	err := svc.Unsubscribe(context.Background(), "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestUnsubscribe_NotFound(t *testing.T) {
	st := &mockSubStore{}
	st.On("GetByEndpoint", mock.Anything, "https://push.example.com/send/abc").
		Return(nil, fmt.Errorf("subscription not found: %w", domain.ErrNotFound))

	svc := NewService(st)
	err := svc.Unsubscribe(context.Background(), "https://push.example.com/send/abc")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	st.AssertNotCalled(t, "HardDelete")
}

func TestUnsubscribe_DeletesMatchingRow(t *testing.T) {
	st := &mockSubStore{}
	st.On("GetByEndpoint", mock.Anything, "https://push.example.com/send/abc").
		Return(&domain.PushSubscription{SubscriptionID: "s1"}, nil)
	st.On("HardDelete", mock.Anything, "s1").Return(nil)

	svc := NewService(st)
	err := svc.Unsubscribe(context.Background(), "https://push.example.com/send/abc")

	require.NoError(t, err)
	st.AssertExpectations(t)
}
