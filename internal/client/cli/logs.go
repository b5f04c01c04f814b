package cli

import (
	"context"
	"errors"
	"os"

	"github.com/aigymlabs/fitcoach/internal/client/models"
)

// Logs shows the workout log history.
func (a *App) Logs(ctx context.Context) error {
	logs, err := a.api.WorkoutLogs(ctx)
	if err != nil {
		return a.reportFetchError(ctx, err, "Could not load workout logs.")
	}
	a.console.ShowLogs(logs)
	return nil
}

// LogWorkout prompts for workout details and records them. Input is
// validated before any network call.
func (a *App) LogWorkout(ctx context.Context) error {
	var entry models.NewWorkoutLog
	var err error

	if entry.ExerciseName, err = getSimpleText(a.reader, "Exercise name", os.Stdout); err != nil {
		return err
	}
	if entry.DurationMinutes, err = GetInt(a.reader, "Duration (minutes)", 0, os.Stdout); err != nil {
		return err
	}
	calories, err := GetInt(a.reader, "Calories burned (0 if unknown)", 0, os.Stdout)
	if err != nil {
		return err
	}
	if calories > 0 {
		entry.CaloriesBurned = &calories
	}
	if entry.Feedback, err = getSimpleText(a.reader, "How did it feel? (optional)", os.Stdout); err != nil {
		return err
	}

	if entry.ExerciseName == "" || entry.DurationMinutes <= 0 {
		a.messages.Notify("Exercise name and a positive duration are required.")
		return errors.New("invalid workout log")
	}

	if _, err := a.api.AddWorkoutLog(ctx, entry); err != nil {
		return a.reportFetchError(ctx, err, "Could not save the workout log.")
	}
	a.messages.Success("Workout logged.")
	return a.Logs(ctx)
}
