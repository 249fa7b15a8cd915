package usecase

import (
	"context"

	"strik/internal/domain/entity"

	"github.com/google/uuid"
)

// EventUsecase routes database change events to push notifications
type EventUsecase interface {
	// Route handles one event. Expected absences (no friends, no tokens) resolve
	// to a successful RouteResult describing the no-op.
	Route(ctx context.Context, event *entity.ChangeEvent) (*RouteResult, error)
}

// RouteResult describes what one event produced
type RouteResult struct {
	Message    string                   `json:"message"`
	Sent       int                      `json:"sent"`
	Failed     int                      `json:"failed"`
	Deliveries []*entity.DeliveryResult `json:"-"`
}

// StoryRecord is the inserted row of the stories table
type StoryRecord struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	Caption   string    `json:"caption"`
	MediaURL  string    `json:"media_url"`
	CreatedAt string    `json:"created_at"`
}

// PostRecord is the inserted row of the posts table
type PostRecord struct {
	ID      uuid.UUID `json:"id" validate:"required"`
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Content *string   `json:"content"`
}

// ReactionRecord is the inserted row of the reactions table
type ReactionRecord struct {
	ID      uuid.UUID  `json:"id"`
	UserID  uuid.UUID  `json:"user_id" validate:"required"`
	StoryID *uuid.UUID `json:"story_id"`
	PostID  *uuid.UUID `json:"post_id"`
	Emoji   string     `json:"emoji"`
}

// NotificationPayload is the inserted row of the notifications table
type NotificationPayload struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	SenderID    *uuid.UUID `json:"sender_id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	PostID      *uuid.UUID `json:"post_id"`
	StoryID     *uuid.UUID `json:"story_id"`
	HabitLogID  *uuid.UUID `json:"habit_log_id"`
}

// DirectPayload is a push requested without a source table
type DirectPayload struct {
	RecipientID uuid.UUID      `json:"recipient_id"`
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	Data        map[string]any `json:"data"`
}
