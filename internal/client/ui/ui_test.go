package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aigymlabs/fitcoach/internal/client/models"
)

func TestConsoleShowDietPlan(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.ShowDietPlan([]models.DietDay{
		{
			Day: 1,
			DailySummary: models.DailySummary{
				TotalCalories: 1800,
				Meals: map[string][]models.Meal{
					"breakfast": {{Name: "Oatmeal", Calories: 350, Cuisine: "Continental"}},
					"dinner":    {{Name: "Dal Tadka", Calories: 500, Cuisine: "Indian"}},
				},
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Monday (~1800 kcal)")
	assert.Contains(t, out, "Oatmeal")
	assert.Contains(t, out, "Dal Tadka")
}

func TestConsoleShowDietPlanEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).ShowDietPlan(nil)
	assert.Contains(t, buf.String(), "No diet plan")
}

func TestConsoleShowTodos(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.ShowTodos([]models.Todo{
		{ID: 1, Task: "stretch", Completed: true},
		{ID: 2, Task: "drink water"},
	})

	out := buf.String()
	assert.Contains(t, out, "[x] 1. stretch")
	assert.Contains(t, out, "[ ] 2. drink water")
}

func TestConsoleShowLogs(t *testing.T) {
	var buf bytes.Buffer
	cal := 220
	NewConsole(&buf).ShowLogs([]models.WorkoutLog{
		{ExerciseName: "Running", DurationMinutes: 30, CaloriesBurned: &cal, LogDate: "2026-08-01"},
		{ExerciseName: "Plank", DurationMinutes: 5, LogDate: "2026-08-02"},
	})

	out := buf.String()
	assert.Contains(t, out, "Running  30 min  220 kcal")
	assert.Contains(t, out, "Plank  5 min  -")
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	m := NewMessages(&buf)

	m.Notify("Your session has expired.")
	assert.Equal(t, "! Your session has expired.\n", buf.String())
	assert.Equal(t, "Your session has expired.", m.Last())
}

func TestPoseCheckable(t *testing.T) {
	assert.True(t, PoseCheckable("Barbell Squat"))
	assert.True(t, PoseCheckable("bicep curl"))
	assert.False(t, PoseCheckable("Swimming"))
}

func TestStaticAnalyzerFeedback(t *testing.T) {
	a := StaticAnalyzer{}

	msg, ok := a.Feedback("Goblet Squat", nil)
	assert.True(t, ok)
	assert.Contains(t, msg, "hips")

	msg, ok = a.Feedback("Swimming", nil)
	assert.False(t, ok)
	assert.Contains(t, msg, "not available")
}
