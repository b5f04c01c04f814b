package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

// SQLiteFactory is the Factory for SQLiteRepository.
func SQLiteFactory(db dbx.DBTX) Repository {
	return NewSQLiteRepository(db)
}

const userColumns = `id, username, password_hash, gender, age, height_cm, weight_kg,
	diet_preference, activity_level, goals, preferred_cuisines, is_admin`

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Gender, &u.Age, &u.HeightCm,
		&u.WeightKg, &u.DietPreference, &u.ActivityLevel, &u.Goals, &u.PreferredCuisines, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, gender, age, height_cm, weight_kg,
			diet_preference, activity_level, goals, preferred_cuisines, is_admin)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, user.Username, user.PasswordHash, user.Gender, user.Age, user.HeightCm, user.WeightKg,
		user.DietPreference, user.ActivityLevel, user.Goals, user.PreferredCuisines, user.IsAdmin)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, common.ErrorAlreadyExists
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *SQLiteRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET gender = ?, age = ?, height_cm = ?, weight_kg = ?,
			diet_preference = ?, activity_level = ?, goals = ?, preferred_cuisines = ?
		WHERE id = ?
	`, user.Gender, user.Age, user.HeightCm, user.WeightKg,
		user.DietPreference, user.ActivityLevel, user.Goals, user.PreferredCuisines, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
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

func (r *SQLiteRepository) SetAdmin(ctx context.Context, id int64, isAdmin bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET is_admin = ? WHERE id = ?`, isAdmin, id)
	if err != nil {
		return fmt.Errorf("failed to set admin flag: %w", err)
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
