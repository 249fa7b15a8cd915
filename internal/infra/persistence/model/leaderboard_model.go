package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WeeklyLeaderboardModel is the GORM-specific struct for the 'weekly_leaderboards' table.
// One row per user per week, appended by the weekly job.
type WeeklyLeaderboardModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	WeekStartDate     datatypes.Date `gorm:"not null;index"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	Rank              int            `gorm:"not null"`
	TotalPoints       float64        `gorm:"type:numeric;not null;default:0"`
	CompletionRate    float64        `gorm:"type:numeric;not null;default:0"`
	TotalCompleted    int            `gorm:"not null;default:0"`
	TotalHabits       int            `gorm:"not null;default:0"`
	TotalParticipants int            `gorm:"not null;default:0"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (WeeklyLeaderboardModel) TableName() string {
	return "weekly_leaderboards"
}
