package entity

import "github.com/google/uuid"

// HabitFrequency represents how often a habit is meant to be done.
type HabitFrequency string

const (
	HabitFrequencyDaily   HabitFrequency = "daily"
	HabitFrequencyWeekly  HabitFrequency = "weekly"
	HabitFrequencyMonthly HabitFrequency = "monthly"
)

// HabitLogStatusCompleted marks a log row that counts toward the weekly score.
const HabitLogStatusCompleted = "completed"

// MaxWeeklyUnits is the weekly effort ceiling of a single habit.
const MaxWeeklyUnits = 7

const defaultFrequencyCount = 1

// Habit represents a member's recurring goal.
type Habit struct {
	ID             uuid.UUID      `json:"id"`              // The habit's unique identifier.
	UserID         uuid.UUID      `json:"user_id"`         // Owner of the habit.
	Frequency      HabitFrequency `json:"frequency"`       // daily, weekly, monthly or other.
	DaysOfWeek     []int          `json:"days_of_week"`    // Explicit weekdays for daily habits, may be empty.
	FrequencyCount *int           `json:"frequency_count"` // Times per period for non-daily habits.
}

// ExpectedUnits returns how many completions the habit asks for in one week.
// The result is always within [0, MaxWeeklyUnits].
func (h *Habit) ExpectedUnits() int {
	if h.Frequency == HabitFrequencyDaily {
		if len(h.DaysOfWeek) == 0 {
			return MaxWeeklyUnits
		}

		days := make(map[int]struct{}, len(h.DaysOfWeek))
		for _, day := range h.DaysOfWeek {
			days[day] = struct{}{}
		}

		return min(len(days), MaxWeeklyUnits)
	}

	count := defaultFrequencyCount
	if h.FrequencyCount != nil {
		count = *h.FrequencyCount
	}

	return max(0, min(count, MaxWeeklyUnits))
}

// ExpectedUnitsOf sums the expected units of a user's habits.
func ExpectedUnitsOf(habits []*Habit) int {
	total := 0
	for _, habit := range habits {
		total += habit.ExpectedUnits()
	}

	return total
}
