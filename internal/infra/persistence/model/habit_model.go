package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// HabitModel is the GORM-specific struct for the 'habits' table.
type HabitModel struct {
	ID             uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID     `gorm:"type:uuid;not null;index"`
	Name           string        `gorm:"type:text"`
	Frequency      string        `gorm:"type:text;not null;default:'daily'"`
	DaysOfWeek     pq.Int64Array `gorm:"type:integer[]"`
	FrequencyCount *int          `gorm:"type:integer"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (HabitModel) TableName() string {
	return "habits"
}

// HabitLogModel is the GORM-specific struct for the 'habit_logs' table.
// Only rows with status 'completed' count toward the weekly score.
type HabitLogModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	HabitID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status      string     `gorm:"type:text;not null"`
	CompletedAt *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (HabitLogModel) TableName() string {
	return "habit_logs"
}
