package cli

import (
	"context"
	"fmt"

	"github.com/aigymlabs/fitcoach/internal/client/ui"
)

// Pose prints form feedback for an exercise via the pose analyzer.
func (a *App) Pose(ctx context.Context, exercise string) error {
	if !ui.PoseCheckable(exercise) {
		a.messages.Notify(fmt.Sprintf("Pose analysis for %s is not available.", exercise))
		return nil
	}
	msg, _ := a.analyzer.Feedback(exercise, nil)
	fmt.Fprintln(a.out, msg)
	return nil
}
