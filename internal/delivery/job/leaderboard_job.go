// Package job runs the one-shot scheduled work of the leaderboard binary.
package job

import (
	"context"
	"log/slog"
	"time"

	"strik/internal/delivery"
	"strik/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type leaderboardJob struct {
	logger      *slog.Logger
	leaderboard usecase.LeaderboardUsecase
	now         func() time.Time
}

// LeaderboardJobParams holds dependencies for the weekly job
type LeaderboardJobParams struct {
	fx.In

	Logger      *slog.Logger
	Leaderboard usecase.LeaderboardUsecase
}

// NewLeaderboardJob creates the weekly leaderboard run. Serve returns once
// the run is over; the binary exits with its outcome.
func NewLeaderboardJob(params LeaderboardJobParams) delivery.Delivery {
	return &leaderboardJob{
		logger:      params.Logger,
		leaderboard: params.Leaderboard,
		now:         time.Now,
	}
}

// Serve performs one weekly run against the wall clock
func (j *leaderboardJob) Serve(ctx context.Context) error {
	logger := j.logger.With(slog.String("run_id", uuid.New().String()))
	logger.Info("[Leaderboard] Weekly run started")

	result, err := j.leaderboard.RunWeekly(ctx, j.now())
	if err != nil {
		logger.Error("[Leaderboard] Weekly run failed", slog.Any("error", err))

		return err
	}

	logger.Info("[Leaderboard] Weekly run finished",
		slog.String("week_start", result.WeekStart),
		slog.Int("participants", result.Participants),
		slog.Int("notifications", result.Notifications),
		slog.Int("published", result.Published),
		slog.Bool("leaderboard_persisted", result.LeaderboardPersisted),
	)

	return nil
}
