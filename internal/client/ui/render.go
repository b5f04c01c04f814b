// Package ui holds the display-only collaborators: console renderers for
// dashboard data, the user-facing message sink, and the pose-feedback
// collaborator interface. Nothing here mutates session state.
package ui

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/aigymlabs/fitcoach/internal/client/models"
)

var dayNames = []string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Console renders dashboard data as plain text. It satisfies the
// dashboard.Presenter interface.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) ShowProfile(p models.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "Profile: %s\n", p.Username)
	fmt.Fprintf(c.w, "  Age: %d  Gender: %s  Height: %.0f cm  Weight: %.1f kg\n", p.Age, p.Gender, p.HeightCm, p.WeightKg)
	fmt.Fprintf(c.w, "  Diet: %s  Activity: %s  Goals: %s\n", p.DietPreference, p.ActivityLevel, p.Goals)
	if p.BMI > 0 {
		fmt.Fprintf(c.w, "  BMI: %.1f (%s)  BMR: %.0f  TDEE: %.0f  Target: %.0f kcal\n",
			p.BMI, p.BMICategory, p.BMR, p.TDEE, p.TargetCalories)
	}
}

func (c *Console) ShowDietPlan(days []models.DietDay) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(days) == 0 {
		fmt.Fprintln(c.w, "No diet plan available. Complete your profile first.")
		return
	}
	fmt.Fprintln(c.w, "Weekly diet plan:")
	for _, d := range days {
		name := fmt.Sprintf("Day %d", d.Day)
		if d.Day > 0 && d.Day < len(dayNames) {
			name = dayNames[d.Day]
		}
		fmt.Fprintf(c.w, "%s (~%.0f kcal)\n", name, d.DailySummary.TotalCalories)

		types := make([]string, 0, len(d.DailySummary.Meals))
		for mt := range d.DailySummary.Meals {
			types = append(types, mt)
		}
		sort.Strings(types)
		for _, mt := range types {
			for _, meal := range d.DailySummary.Meals[mt] {
				fmt.Fprintf(c.w, "  %-10s %s (%.0f kcal, %s)\n", mt+":", meal.Name, meal.Calories, meal.Cuisine)
			}
		}
	}
}

func (c *Console) ShowWorkouts(workouts []models.Workout) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(workouts) == 0 {
		fmt.Fprintln(c.w, "No workout recommendations found. Check your profile goals.")
		return
	}
	fmt.Fprintln(c.w, "Recommended workouts:")
	for _, w := range workouts {
		fmt.Fprintf(c.w, "  %s (%s) target: %s, %s, %s\n",
			w.Name, w.Type, w.Target, w.DurationSuggestion, w.Difficulty)
	}
}

func (c *Console) ShowTodos(todos []models.Todo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(todos) == 0 {
		fmt.Fprintln(c.w, "To-do list is empty.")
		return
	}
	fmt.Fprintln(c.w, "To-do list:")
	for _, td := range todos {
		mark := " "
		if td.Completed {
			mark = "x"
		}
		fmt.Fprintf(c.w, "  [%s] %d. %s\n", mark, td.ID, td.Task)
	}
}

func (c *Console) ShowLogs(logs []models.WorkoutLog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(logs) == 0 {
		fmt.Fprintln(c.w, "No workout logs yet.")
		return
	}
	fmt.Fprintln(c.w, "Workout logs:")
	for _, l := range logs {
		cal := "-"
		if l.CaloriesBurned != nil {
			cal = fmt.Sprintf("%d kcal", *l.CaloriesBurned)
		}
		fmt.Fprintf(c.w, "  %s  %s  %d min  %s", l.LogDate, l.ExerciseName, l.DurationMinutes, cal)
		if l.Feedback != "" {
			fmt.Fprintf(c.w, "  (%s)", l.Feedback)
		}
		fmt.Fprintln(c.w)
	}
}
