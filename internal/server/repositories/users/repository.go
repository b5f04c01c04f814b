// Package users persists accounts and their fitness profiles.
package users

import (
	"context"

	"github.com/aigymlabs/fitcoach/internal/dbx"
	"github.com/aigymlabs/fitcoach/internal/server/models"
)

// Factory binds a Repository to a query handle, so a service can run
// several repository calls on one *sql.Tx.
type Factory func(dbx.DBTX) Repository

// Repository stores users. Lookups return common.ErrorNotFound when no row
// matches; Create returns common.ErrorAlreadyExists on a username clash.
type Repository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	SetAdmin(ctx context.Context, id int64, isAdmin bool) error
}
