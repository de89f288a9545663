package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryError_Permanent(t *testing.T) {
	for _, status := range []int{400, 404, 410} {
		assert.True(t, (&DeliveryError{StatusCode: status}).Permanent(), "status %d", status)
	}
	for _, status := range []int{401, 403, 429, 500, 502, 503} {
		assert.False(t, (&DeliveryError{StatusCode: status}).Permanent(), "status %d", status)
	}
}

func TestAuthorSnapshot_NilUser(t *testing.T) {
	a := AuthorSnapshot(nil)
	assert.Equal(t, "Unknown", a.Name)
	assert.Empty(t, a.AvatarURL)
}

func TestAuthorSnapshot_BlankFirstName(t *testing.T) {
	a := AuthorSnapshot(&User{FirstName: "   "})
	assert.Equal(t, "Unknown", a.Name)
}

func TestAuthorSnapshot_TrimsName(t *testing.T) {
	avatar := "https://cdn.example.com/alice.png"
	a := AuthorSnapshot(&User{FirstName: "  Alice ", ProfileImageURL: &avatar})
	assert.Equal(t, "Alice", a.Name)
	assert.Equal(t, avatar, a.AvatarURL)
}
