package repository

import (
	"context"

	"strik/internal/domain/entity"

	"github.com/google/uuid"
)

// FriendshipRepository defines read access to friendship rows.
type FriendshipRepository interface {
	// FindAcceptedFriendshipsByUser retrieves accepted rows where the user is either side.
	FindAcceptedFriendshipsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error)

	// FindAllAcceptedFriendships retrieves every accepted row.
	FindAllAcceptedFriendships(ctx context.Context) ([]*entity.Friendship, error)
}
