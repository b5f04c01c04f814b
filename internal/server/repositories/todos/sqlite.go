package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aigymlabs/fitcoach/internal/common"
	"github.com/aigymlabs/fitcoach/internal/dbx"
	"github.com/aigymlabs/fitcoach/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	created := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO todos (user_id, task, completed, created_at) VALUES (?, ?, ?, ?)
	`, todo.UserID, todo.Task, todo.Completed, created.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *todo
	out.ID = id
	out.CreatedAt = created
	return &out, nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, task, completed, created_at FROM todos
		WHERE user_id = ? ORDER BY created_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var result []models.Todo
	for rows.Next() {
		todo, err := scanTodo(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *todo)
	}
	return result, rows.Err()
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Todo, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, task, completed, created_at FROM todos WHERE id = ?`, id)
	todo, err := scanTodo(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	return todo, err
}

func (r *SQLiteRepository) Update(ctx context.Context, todo *models.Todo) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE todos SET task = ?, completed = ? WHERE id = ?`, todo.Task, todo.Completed, todo.ID)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func scanTodo(scan func(dest ...any) error) (*models.Todo, error) {
	var t models.Todo
	var created string
	if err := scan(&t.ID, &t.UserID, &t.Task, &t.Completed, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan todo: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("failed to parse todo timestamp %q: %w", created, err)
	}
	t.CreatedAt = ts
	return &t, nil
}
