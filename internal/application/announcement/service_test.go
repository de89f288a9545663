package announcement

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

type mockStore struct{ mock.Mock }

func (m *mockStore) Put(ctx context.Context, a *domain.Announcement) error {
	return m.Called(ctx, a).Error(0)
}
func (m *mockStore) Delete(ctx context.Context, announcementID string) (*domain.Announcement, error) {
	args := m.Called(ctx, announcementID)
	if a, _ := args.Get(0).(*domain.Announcement); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) ListRecent(ctx context.Context) ([]domain.Announcement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Announcement), args.Error(1)
}
func (m *mockStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockBroadcaster struct{ mock.Mock }

func (m *mockBroadcaster) Broadcast(ctx context.Context, ann *domain.Announcement) {
	m.Called(ctx, ann)
}

// --- Create tests ---

func TestCreate_PersistsAndBroadcasts(t *testing.T) {
	st := &mockStore{}
	st.On("Put", mock.Anything, mock.AnythingOfType("*domain.Announcement")).Return(nil)
	b := &mockBroadcaster{}
	b.On("Broadcast", mock.Anything, mock.AnythingOfType("*domain.Announcement")).Return()

	svc := NewService(st, b)
	ann, err := svc.Create(context.Background(), domain.CreateAnnouncementRequest{
		Title: "Kickoff", Content: "Event starts now",
	}, "u1")

	require.NoError(t, err)
	assert.Equal(t, "Kickoff", ann.Title)
	assert.Equal(t, "Event starts now", ann.Content)
	assert.Equal(t, "u1", ann.AuthorID)
	assert.NotEmpty(t, ann.AnnouncementID)
	assert.False(t, ann.CreatedAt.IsZero())
	st.AssertNumberOfCalls(t, "Put", 1)
	b.AssertNumberOfCalls(t, "Broadcast", 1)
}

func TestCreate_EmptyTitle_NoWriteNoBroadcast(t *testing.T) {
	st := &mockStore{}
	b := &mockBroadcaster{}

	svc := NewService(st, b)
	_, err := svc.Create(context.Background(), domain.CreateAnnouncementRequest{
		Title: "", Content: "body",
	}, "u1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	st.AssertNotCalled(t, "Put")
	b.AssertNotCalled(t, "Broadcast")
}

func TestCreate_EmptyContent_NoWriteNoBroadcast(t *testing.T) {
	st := &mockStore{}
	b := &mockBroadcaster{}

	svc := NewService(st, b)
	_, err := svc.Create(context.Background(), domain.CreateAnnouncementRequest{
		Title: "Kickoff", Content: "",
	}, "u1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	st.AssertNotCalled(t, "Put")
	b.AssertNotCalled(t, "Broadcast")
}

func TestCreate_StoreError_NoBroadcast(t *testing.T) {
	st := &mockStore{}
	st.On("Put", mock.Anything, mock.Anything).Return(fmt.Errorf("dynamo down"))
	b := &mockBroadcaster{}

	svc := NewService(st, b)
	_, err := svc.Create(context.Background(), domain.CreateAnnouncementRequest{
		Title: "Kickoff", Content: "Event starts now",
	}, "u1")

	require.Error(t, err)
	b.AssertNotCalled(t, "Broadcast")
}

func TestCreate_NilBroadcaster(t *testing.T) {
	st := &mockStore{}
	st.On("Put", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(st, nil)
	ann, err := svc.Create(context.Background(), domain.CreateAnnouncementRequest{
		Title: "Kickoff", Content: "Event starts now",
	}, "u1")

	require.NoError(t, err)
	assert.NotNil(t, ann)
}

// --- Delete tests ---

func TestDelete_NotFound(t *testing.T) {
	st := &mockStore{}
	st.On("Delete", mock.Anything, "missing").Return(nil, fmt.Errorf("announcement not found: %w", domain.ErrNotFound))

	svc := NewService(st, nil)
	_, err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDelete_ReturnsDeletedRecord(t *testing.T) {
	want := &domain.Announcement{AnnouncementID: "a1", Title: "Kickoff"}
	st := &mockStore{}
	st.On("Delete", mock.Anything, "a1").Return(want, nil)

	svc := NewService(st, nil)
	got, err := svc.Delete(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
