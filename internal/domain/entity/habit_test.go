package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func TestHabit_ExpectedUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		habit    Habit
		expected int
	}{
		{name: "daily with weekday set", habit: Habit{Frequency: HabitFrequencyDaily, DaysOfWeek: []int{1, 3, 5}}, expected: 3},
		{name: "daily without weekday set", habit: Habit{Frequency: HabitFrequencyDaily}, expected: 7},
		{name: "daily with duplicate weekdays", habit: Habit{Frequency: HabitFrequencyDaily, DaysOfWeek: []int{1, 1, 2}}, expected: 2},
		{name: "weekly clamped to seven", habit: Habit{Frequency: HabitFrequencyWeekly, FrequencyCount: intPtr(10)}, expected: 7},
		{name: "weekly within range", habit: Habit{Frequency: HabitFrequencyWeekly, FrequencyCount: intPtr(3)}, expected: 3},
		{name: "weekly without count defaults to one", habit: Habit{Frequency: HabitFrequencyWeekly}, expected: 1},
		{name: "monthly negative count clamped to zero", habit: Habit{Frequency: HabitFrequencyMonthly, FrequencyCount: intPtr(-2)}, expected: 0},
		{name: "explicit zero count", habit: Habit{Frequency: HabitFrequencyMonthly, FrequencyCount: intPtr(0)}, expected: 0},
		{name: "unknown frequency uses count", habit: Habit{Frequency: "custom", FrequencyCount: intPtr(4)}, expected: 4},
		{name: "weekday set ignored for weekly", habit: Habit{Frequency: HabitFrequencyWeekly, DaysOfWeek: []int{1, 2, 3, 4}, FrequencyCount: intPtr(2)}, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.habit.ExpectedUnits()
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, MaxWeeklyUnits)
		})
	}
}

func TestExpectedUnitsOf(t *testing.T) {
	t.Parallel()

	habits := []*Habit{
		{Frequency: HabitFrequencyDaily},
		{Frequency: HabitFrequencyDaily, DaysOfWeek: []int{1, 3, 5}},
		{Frequency: HabitFrequencyWeekly, FrequencyCount: intPtr(2)},
	}

	assert.Equal(t, 12, ExpectedUnitsOf(habits))
	assert.Equal(t, 0, ExpectedUnitsOf(nil))
}
