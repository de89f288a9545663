package domain

import "time"

type Announcement struct {
	AnnouncementID string    `json:"id" dynamodbav:"announcement_id"`
	Title          string    `json:"title" dynamodbav:"title"`
	Content        string    `json:"content" dynamodbav:"content"`
	AuthorID       string    `json:"author_id" dynamodbav:"author_id"`
	CreatedAt      time.Time `json:"created" dynamodbav:"created_at"`
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}
