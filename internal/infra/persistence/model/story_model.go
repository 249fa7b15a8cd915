package model

import (
	"time"

	"github.com/google/uuid"
)

// StoryModel is the GORM-specific struct for the 'stories' table.
type StoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Caption   string    `gorm:"type:text"`
	MediaURL  string    `gorm:"column:media_url;type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoryModel) TableName() string {
	return "stories"
}
