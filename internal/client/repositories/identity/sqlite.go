package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aigymlabs/fitcoach/internal/common"
	"github.com/aigymlabs/fitcoach/internal/dbx"
)

// SQLiteRepository keeps the snapshot in a single-row table.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) ([]byte, error) {
	var snapshot []byte
	err := r.db.QueryRowContext(ctx, `SELECT snapshot FROM identity_cache WHERE id = 1`).Scan(&snapshot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load identity snapshot: %w", err)
	}
	return snapshot, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, snapshot []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO identity_cache (id, snapshot, saved_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET snapshot = excluded.snapshot, saved_at = excluded.saved_at
	`, snapshot)
	if err != nil {
		return fmt.Errorf("failed to save identity snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM identity_cache`)
	if err != nil {
		return fmt.Errorf("failed to clear identity snapshot: %w", err)
	}
	return nil
}
