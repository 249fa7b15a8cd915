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

// friendshipRepository implements the repository.FriendshipRepository interface.
type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository is the constructor for friendshipRepository.
func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{
		db: db,
	}
}

// FindAcceptedFriendshipsByUser retrieves accepted rows where the user is either side.
func (repo *friendshipRepository) FindAcceptedFriendshipsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	var friendshipModels []*model.FriendshipModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.FriendshipStatusAccepted.String()).
		Where("requester_id = ? OR receiver_id = ?", userID, userID).
		Find(&friendshipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find friendships by user")
	}

	return toFriendshipDomains(friendshipModels), nil
}

// FindAllAcceptedFriendships retrieves every accepted row.
func (repo *friendshipRepository) FindAllAcceptedFriendships(ctx context.Context) ([]*entity.Friendship, error) {
	var friendshipModels []*model.FriendshipModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.FriendshipStatusAccepted.String()).
		Find(&friendshipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find accepted friendships")
	}

	return toFriendshipDomains(friendshipModels), nil
}

// toFriendshipDomain converts a GORM FriendshipModel to a domain Friendship entity.
func toFriendshipDomain(data *model.FriendshipModel) *entity.Friendship {
	if data == nil {
		return nil
	}

	return &entity.Friendship{
		RequesterID: data.RequesterID,
		ReceiverID:  data.ReceiverID,
		Status:      entity.FriendshipStatus(data.Status),
	}
}

func toFriendshipDomains(data []*model.FriendshipModel) []*entity.Friendship {
	friendships := make([]*entity.Friendship, 0, len(data))
	for _, friendshipM := range data {
		friendships = append(friendships, toFriendshipDomain(friendshipM))
	}

	return friendships
}
