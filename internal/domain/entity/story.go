package entity

import (
	"time"

	"github.com/google/uuid"
)

// Story is a short-lived media post ("momentz") shared with friends.
type Story struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"` // Owner of the story.
	Caption   string    `json:"caption"`
	MediaURL  string    `json:"media_url"`
	CreatedAt time.Time `json:"created_at"`
}
