package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// Rows are owned by the app backend; the notifier only reads them.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Username  string    `gorm:"type:text"`
	FCMToken  *string   `gorm:"column:fcm_token;type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// FriendshipModel is the GORM-specific struct for the 'friendships' table.
type FriendshipModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      string    `gorm:"type:text;not null;default:'pending'"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendshipModel) TableName() string {
	return "friendships"
}
