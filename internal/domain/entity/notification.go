// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is the semantic type carried by pushes and notification rows.
type NotificationType string

const (
	NotificationTypeNewStory          NotificationType = "new_story"
	NotificationTypeNewPost           NotificationType = "new_post"
	NotificationTypeStoryReaction     NotificationType = "story_reaction"
	NotificationTypeLeaderboardWinner NotificationType = "leaderboard_winner"
	NotificationTypeGeneral           NotificationType = "general"
)

// String returns the string representation of the NotificationType.
func (t NotificationType) String() string {
	return string(t)
}

// Known reports whether t is one of the types the app renders.
func (t NotificationType) Known() bool {
	switch t {
	case NotificationTypeNewStory,
		NotificationTypeNewPost,
		NotificationTypeStoryReaction,
		NotificationTypeLeaderboardWinner,
		NotificationTypeGeneral:
		return true
	default:
		return false
	}
}

// DataOnly reports whether pushes of this type omit the visible notification
// block and let the client render after a silent wake.
func (t NotificationType) DataOnly() bool {
	return t == NotificationTypeNewStory
}

// NotificationRecord is an in-app notification row. It is created once and
// never mutated; its insertion is what triggers delivery.
type NotificationRecord struct {
	ID          uuid.UUID        `json:"id"`
	RecipientID uuid.UUID        `json:"recipient_id"`
	SenderID    *uuid.UUID       `json:"sender_id"` // Triggering actor, nil for system notifications.
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Body        string           `json:"body"`
	PostID      *uuid.UUID       `json:"post_id"`
	StoryID     *uuid.UUID       `json:"story_id"`
	HabitLogID  *uuid.UUID       `json:"habit_log_id"`
	IsRead      bool             `json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}
