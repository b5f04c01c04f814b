// Package logs persists workout log entries.
package logs

import (
	"context"
	"time"

	"github.com/aigymlabs/fitcoach/internal/server/models"
)

// Filter narrows ListByUser. A zero field means "no constraint"; Day is
// only honored together with Year and Month.
type Filter struct {
	Year  int
	Month int
	Day   int
}

// Repository stores workout logs, always scoped to one user.
type Repository interface {
	Add(ctx context.Context, log *models.WorkoutLog) (int64, error)
	ListByUser(ctx context.Context, userID int64, f Filter) ([]models.WorkoutLog, error)
}

// DateOnly formats t the way log dates travel over the wire.
func DateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}
