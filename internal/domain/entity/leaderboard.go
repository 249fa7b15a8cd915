package entity

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry is one user's row in the global weekly leaderboard.
type LeaderboardEntry struct {
	ID                uuid.UUID `json:"id"`
	WeekStartDate     time.Time `json:"week_start_date"`    // First day of the scored window.
	UserID            uuid.UUID `json:"user_id"`            // Ranked user.
	Rank              int       `json:"rank"`               // 1-based position.
	TotalPoints       float64   `json:"total_points"`       // Hybrid score.
	CompletionRate    float64   `json:"completion_rate"`    // Percentage of expected units completed.
	TotalCompleted    int       `json:"total_completed"`    // Completed units.
	TotalHabits       int       `json:"total_habits"`       // Expected units across all habits.
	TotalParticipants int       `json:"total_participants"` // Users ranked in the same run.
	CreatedAt         time.Time `json:"created_at"`
}

// NewLeaderboardEntries turns ranked scores into rows for the given week.
func NewLeaderboardEntries(window WeekWindow, ranked []*WeeklyScore) []*LeaderboardEntry {
	entries := make([]*LeaderboardEntry, 0, len(ranked))
	for idx, score := range ranked {
		entries = append(entries, &LeaderboardEntry{
			WeekStartDate:     window.Start,
			UserID:            score.UserID,
			Rank:              idx + 1,
			TotalPoints:       score.HybridScore,
			CompletionRate:    score.CompletionRate,
			TotalCompleted:    score.TotalCompleted,
			TotalHabits:       score.TotalExpected,
			TotalParticipants: len(ranked),
		})
	}

	return entries
}
