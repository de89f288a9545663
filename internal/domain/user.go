package domain

import (
	"strings"
	"time"
)

const RoleAdmin = "admin"

type User struct {
	UserID          string    `json:"id" dynamodbav:"user_id"`
	Username        string    `json:"username" dynamodbav:"username"`
	Email           string    `json:"email" dynamodbav:"email"`
	Role            string    `json:"role" dynamodbav:"role"`
	FirstName       string    `json:"first_name" dynamodbav:"first_name"`
	LastName        string    `json:"last_name" dynamodbav:"last_name"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty" dynamodbav:"profile_image_url"`
	Enable          bool      `json:"enable" dynamodbav:"enable"`
	CreatedAt       time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt       time.Time `json:"updated" dynamodbav:"updated_at"`
}

// Author is the read-only projection of a user that decorates outgoing
// notifications. It lives for one broadcast and is never persisted.
type Author struct {
	Name      string
	AvatarURL string
}

// AuthorSnapshot builds the notification display block for u. A nil user or a
// blank first name falls back to "Unknown".
func AuthorSnapshot(u *User) Author {
	a := Author{Name: "Unknown"}
	if u == nil {
		return a
	}
	if name := strings.TrimSpace(u.FirstName); name != "" {
		a.Name = name
	}
	if u.ProfileImageURL != nil {
		a.AvatarURL = *u.ProfileImageURL
	}
	return a
}
