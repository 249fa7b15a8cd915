// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"strik/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines read access to member profiles.
type ProfileRepository interface {
	// FindProfileByID retrieves a profile by its unique ID.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindReachableProfilesByIDs retrieves the profiles among ids that have a non-empty push token.
	FindReachableProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Profile, error)

	// FindAllProfiles retrieves every profile, used as the weekly participant set.
	FindAllProfiles(ctx context.Context) ([]*entity.Profile, error)
}
