package client

import (
	"context"

	"github.com/aigymlabs/fitcoach/internal/client/models"
)

// Client is the narrow API surface the rest of the client consumes.
// The concrete implementation is HTTPClient; tests substitute fakes.
type Client interface {
	Close() error

	Login(ctx context.Context, username, password string) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout(ctx context.Context) error

	UserProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error)

	WeeklyDietPlan(ctx context.Context) ([]models.DietDay, error)
	WorkoutRecommendations(ctx context.Context) ([]models.Workout, error)

	WorkoutLogs(ctx context.Context) ([]models.WorkoutLog, error)
	AddWorkoutLog(ctx context.Context, log models.NewWorkoutLog) (*models.WorkoutLog, error)

	Todos(ctx context.Context) ([]models.Todo, error)
	AddTodo(ctx context.Context, task string) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id int64, task string, completed bool) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error
}
