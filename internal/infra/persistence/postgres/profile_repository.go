// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindProfileByID retrieves a profile by its unique ID.
func (repo *profileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindReachableProfilesByIDs retrieves the profiles among ids that carry a push token.
func (repo *profileRepository) FindReachableProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Profile, error) {
	if len(ids) == 0 {
		return []*entity.Profile{}, nil
	}

	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("fcm_token IS NOT NULL AND fcm_token <> ''").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reachable profiles")
	}

	return toProfileDomains(profileModels), nil
}

// FindAllProfiles retrieves every profile ordered by ID.
func (repo *profileRepository) FindAllProfiles(ctx context.Context) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Select("id", "username", "fcm_token").
		Order("id").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles")
	}

	return toProfileDomains(profileModels), nil
}

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:       data.ID,
		Username: data.Username,
		FCMToken: data.FCMToken,
	}
}

func toProfileDomains(data []*model.ProfileModel) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, len(data))
	for _, profileM := range data {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles
}
