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

// storyRepository implements the repository.StoryRepository interface.
type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository is the constructor for storyRepository.
func NewStoryRepository(db *gorm.DB) repository.StoryRepository {
	return &storyRepository{
		db: db,
	}
}

// FindStoryByID retrieves a story by its unique ID.
func (repo *storyRepository) FindStoryByID(ctx context.Context, id uuid.UUID) (*entity.Story, error) {
	var storyM model.StoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find story by ID")
	}

	return toStoryDomain(&storyM), nil
}

// toStoryDomain converts a GORM StoryModel to a domain Story entity.
func toStoryDomain(data *model.StoryModel) *entity.Story {
	if data == nil {
		return nil
	}

	return &entity.Story{
		ID:        data.ID,
		UserID:    data.UserID,
		Caption:   data.Caption,
		MediaURL:  data.MediaURL,
		CreatedAt: data.CreatedAt,
	}
}
