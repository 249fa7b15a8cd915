package repository

import (
	"context"

	"strik/internal/domain/entity"

	"github.com/google/uuid"
)

// HabitRepository defines read access to habits and their logs.
type HabitRepository interface {
	// FindAllHabits retrieves every habit.
	FindAllHabits(ctx context.Context) ([]*entity.Habit, error)

	// CountCompletedLogs counts completed logs of the given habits inside the window.
	CountCompletedLogs(ctx context.Context, habitIDs []uuid.UUID, window entity.WeekWindow) (int, error)
}
