package repository

import (
	"context"

	"strik/internal/domain/entity"
)

// LeaderboardRepository defines write access to the weekly leaderboard.
type LeaderboardRepository interface {
	// BatchCreateEntries appends one week's rows.
	BatchCreateEntries(ctx context.Context, entries []*entity.LeaderboardEntry) error
}
