// Package storage opens the server database and bundles its repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/aigymlabs/fitcoach/internal/server/migrations"
	"github.com/aigymlabs/fitcoach/internal/server/repositories/logs"
	"github.com/aigymlabs/fitcoach/internal/server/repositories/todos"
)

// Repositories bundles the server's persistence layer. User accounts are
// accessed through services.UserService, which binds its repository per
// query handle, so only the log and todo repositories live here.
type Repositories struct {
	Logs  logs.Repository
	Todos todos.Repository
	DB    *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the sqlite database at dsn and
// brings its schema up to date.
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
		Logs:  logs.NewSQLiteRepository(db),
		Todos: todos.NewSQLiteRepository(db),
		DB:    db,
	}, nil
}
