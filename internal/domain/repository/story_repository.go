package repository

import (
	"context"
	"errors"

	"strik/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoryNotFound is returned when a story is not found.
var ErrStoryNotFound = errors.New("story not found")

// StoryRepository defines read access to stories.
type StoryRepository interface {
	// FindStoryByID retrieves a story by its unique ID.
	FindStoryByID(ctx context.Context, id uuid.UUID) (*entity.Story, error)
}
