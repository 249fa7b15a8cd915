package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// Inserting a row is what triggers push delivery through the database webhook.
type NotificationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index"`
	SenderID    *uuid.UUID `gorm:"type:uuid"`
	Type        string     `gorm:"type:text;not null;default:'general'"`
	Title       string     `gorm:"type:text"`
	Body        string     `gorm:"type:text"`
	PostID      *uuid.UUID `gorm:"type:uuid"`
	StoryID     *uuid.UUID `gorm:"type:uuid"`
	HabitLogID  *uuid.UUID `gorm:"type:uuid"`
	IsRead      bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
