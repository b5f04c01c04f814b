// Package todos persists per-user to-do items.
package todos

import (
	"context"

	"github.com/aigymlabs/fitcoach/internal/server/models"
)

// Repository stores to-do items. GetByID is not user-scoped so callers can
// distinguish a missing todo from one owned by somebody else.
type Repository interface {
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Todo, error)
	GetByID(ctx context.Context, id int64) (*models.Todo, error)
	Update(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, id int64) error
}
