package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aigymlabs/fitcoach/internal/client/migrations"
	"github.com/aigymlabs/fitcoach/internal/client/repositories/identity"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the client's local storage. Only the identity cache
// lives there; everything else is server truth fetched on demand.
type Repositories struct {
	Identity identity.Repository
	DB       *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the local sqlite database at dsn
// and brings its schema up to date.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Identity: identity.NewSQLiteRepository(db),
		DB:       db,
	}, nil
}
