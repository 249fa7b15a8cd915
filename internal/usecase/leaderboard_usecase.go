package usecase

import (
	"context"
	"time"
)

// LeaderboardUsecase computes the weekly scores, circle winners and leaderboard
type LeaderboardUsecase interface {
	// RunWeekly scores the seven days preceding now's day
	RunWeekly(ctx context.Context, now time.Time) (*WeeklyRunResult, error)
}

// WeeklyRunResult summarizes one weekly run
type WeeklyRunResult struct {
	WeekStart            string `json:"week_start"`
	Participants         int    `json:"participants"`
	Notifications        int    `json:"notifications"`
	Published            int    `json:"published"`
	LeaderboardPersisted bool   `json:"leaderboard_persisted"`
}
