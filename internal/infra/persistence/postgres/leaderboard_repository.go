package postgres

import (
	"context"

	"strik/internal/domain/entity"
	"strik/internal/domain/repository"
	"strik/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// insertBatchSize bounds the rows sent in one INSERT statement.
const insertBatchSize = 100

// leaderboardRepository implements the repository.LeaderboardRepository interface.
type leaderboardRepository struct {
	db *gorm.DB
}

// NewLeaderboardRepository is the constructor for leaderboardRepository.
func NewLeaderboardRepository(db *gorm.DB) repository.LeaderboardRepository {
	return &leaderboardRepository{
		db: db,
	}
}

// BatchCreateEntries appends one week's rows in one transaction, so a week is ranked completely or not at all.
func (repo *leaderboardRepository) BatchCreateEntries(ctx context.Context, entries []*entity.LeaderboardEntry) error {
	if len(entries) == 0 {
		return nil
	}

	entryModels := make([]*model.WeeklyLeaderboardModel, 0, len(entries))
	for _, entry := range entries {
		entryModels = append(entryModels, fromLeaderboardDomain(entry))
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(entryModels, insertBatchSize).Error
	})
	if err != nil {
		return classifyWriteError(err, "failed to insert weekly leaderboard")
	}

	for idx, entryM := range entryModels {
		entries[idx].ID = entryM.ID
		entries[idx].CreatedAt = entryM.CreatedAt
	}

	return nil
}

// fromLeaderboardDomain converts a domain LeaderboardEntry to a GORM WeeklyLeaderboardModel.
func fromLeaderboardDomain(data *entity.LeaderboardEntry) *model.WeeklyLeaderboardModel {
	if data == nil {
		return nil
	}

	return &model.WeeklyLeaderboardModel{
		ID:                data.ID,
		WeekStartDate:     datatypes.Date(data.WeekStartDate),
		UserID:            data.UserID,
		Rank:              data.Rank,
		TotalPoints:       data.TotalPoints,
		CompletionRate:    data.CompletionRate,
		TotalCompleted:    data.TotalCompleted,
		TotalHabits:       data.TotalHabits,
		TotalParticipants: data.TotalParticipants,
		CreatedAt:         data.CreatedAt,
	}
}
