package entity

import (
	"bytes"
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
)

const (
	completionRateWeight = 1.0
	completedUnitWeight  = 0.5
)

// WeekWindow is the half-open interval [Start, End) a weekly run scores.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

// PriorWeekWindow returns the seven days that closed at the start of now's day,
// in now's location.
func PriorWeekWindow(now time.Time) WeekWindow {
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	return WeekWindow{
		Start: today.AddDate(0, 0, -7),
		End:   today,
	}
}

// Contains reports whether t falls inside the window.
func (w WeekWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// StartDate returns the window start as YYYY-MM-DD.
func (w WeekWindow) StartDate() string {
	return w.Start.Format(time.DateOnly)
}

// WeeklyScore is one user's result for a week.
type WeeklyScore struct {
	UserID         uuid.UUID `json:"user_id"`
	Username       string    `json:"username"`
	TotalExpected  int       `json:"total_expected"`  // Sum of expected units over the user's habits.
	TotalCompleted int       `json:"total_completed"` // Completed logs inside the window.
	CompletionRate float64   `json:"completion_rate"` // 0-100, can exceed 100 when over-completing.
	HybridScore    float64   `json:"hybrid_score"`
}

// NewWeeklyScore derives the completion rate and hybrid score. It is a pure
// function of expected and completed; a zero expectation yields a zero rate.
func NewWeeklyScore(userID uuid.UUID, username string, expected, completed int) *WeeklyScore {
	rate := 0.0
	if expected > 0 {
		rate = 100 * float64(completed) / float64(expected)
	}

	return &WeeklyScore{
		UserID:         userID,
		Username:       username,
		TotalExpected:  expected,
		TotalCompleted: completed,
		CompletionRate: rate,
		HybridScore:    rate*completionRateWeight + float64(completed)*completedUnitWeight,
	}
}

// CompareScores orders by hybrid score descending, then by user id ascending.
func CompareScores(a, b *WeeklyScore) int {
	if c := cmp.Compare(b.HybridScore, a.HybridScore); c != 0 {
		return c
	}

	return bytes.Compare(a.UserID[:], b.UserID[:])
}

// RankScores returns a sorted copy of scores; index i holds rank i+1.
func RankScores(scores []*WeeklyScore) []*WeeklyScore {
	ranked := slices.Clone(scores)
	slices.SortStableFunc(ranked, CompareScores)

	return ranked
}

// CircleWinner returns the top scorer in userID's circle, using the same order
// as RankScores. Friends without a score are skipped.
func CircleWinner(graph *FriendGraph, scores map[uuid.UUID]*WeeklyScore, userID uuid.UUID) (*WeeklyScore, bool) {
	var winner *WeeklyScore
	for _, member := range graph.Circle(userID) {
		score, ok := scores[member]
		if !ok {
			continue
		}
		if winner == nil || CompareScores(score, winner) < 0 {
			winner = score
		}
	}

	return winner, winner != nil
}
