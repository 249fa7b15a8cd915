package postgres

import (
	"context"

	"strik/internal/domain/entity"
	"strik/internal/domain/repository"
	"strik/internal/errors"
	"strik/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// habitRepository implements the repository.HabitRepository interface.
type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository is the constructor for habitRepository.
func NewHabitRepository(db *gorm.DB) repository.HabitRepository {
	return &habitRepository{
		db: db,
	}
}

// FindAllHabits retrieves every habit.
func (repo *habitRepository) FindAllHabits(ctx context.Context) ([]*entity.Habit, error) {
	var habitModels []*model.HabitModel

	if err := repo.db.WithContext(ctx).
		Select("id", "user_id", "frequency", "days_of_week", "frequency_count").
		Find(&habitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find habits")
	}

	habits := make([]*entity.Habit, 0, len(habitModels))
	for _, habitM := range habitModels {
		habits = append(habits, toHabitDomain(habitM))
	}

	return habits, nil
}

// CountCompletedLogs counts completed logs of the given habits inside [window.Start, window.End).
func (repo *habitRepository) CountCompletedLogs(ctx context.Context, habitIDs []uuid.UUID, window entity.WeekWindow) (int, error) {
	if len(habitIDs) == 0 {
		return 0, nil
	}

	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.HabitLogModel{}).
		Where("habit_id IN ?", habitIDs).
		Where("status = ?", entity.HabitLogStatusCompleted).
		Where("completed_at >= ? AND completed_at < ?", window.Start, window.End).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count completed habit logs")
	}

	return int(count), nil
}

// toHabitDomain converts a GORM HabitModel to a domain Habit entity.
func toHabitDomain(data *model.HabitModel) *entity.Habit {
	if data == nil {
		return nil
	}

	var days []int
	if len(data.DaysOfWeek) > 0 {
		days = make([]int, 0, len(data.DaysOfWeek))
		for _, day := range data.DaysOfWeek {
			days = append(days, int(day))
		}
	}

	return &entity.Habit{
		ID:             data.ID,
		UserID:         data.UserID,
		Frequency:      entity.HabitFrequency(data.Frequency),
		DaysOfWeek:     days,
		FrequencyCount: data.FrequencyCount,
	}
}
