package logs

import (
	"context"
	"fmt"
	"time"

	"github.com/aigymlabs/fitcoach/internal/dbx"
	"github.com/aigymlabs/fitcoach/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, log *models.WorkoutLog) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO workout_logs (user_id, log_date, exercise_name, duration_minutes, calories_burned, feedback)
		VALUES (?, ?, ?, ?, ?, ?)
	`, log.UserID, DateOnly(log.LogDate), log.ExerciseName, log.DurationMinutes, log.CaloriesBurned, log.Feedback)
	if err != nil {
		return 0, fmt.Errorf("failed to add workout log: %w", err)
	}
	return res.LastInsertId()
}

// ListByUser returns the user's logs, newest date first. Entries logged on
// the same date come back newest insert first.
func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64, f Filter) ([]models.WorkoutLog, error) {
	query := `SELECT id, user_id, log_date, exercise_name, duration_minutes, calories_burned, feedback
		FROM workout_logs WHERE user_id = ?`
	args := []any{userID}

	if f.Year > 0 {
		query += ` AND strftime('%Y', log_date) = ?`
		args = append(args, fmt.Sprintf("%04d", f.Year))
		if f.Month > 0 {
			query += ` AND strftime('%m', log_date) = ?`
			args = append(args, fmt.Sprintf("%02d", f.Month))
			if f.Day > 0 {
				query += ` AND strftime('%d', log_date) = ?`
				args = append(args, fmt.Sprintf("%02d", f.Day))
			}
		}
	}
	query += ` ORDER BY log_date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout logs: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutLog
	for rows.Next() {
		var l models.WorkoutLog
		var date string
		if err := rows.Scan(&l.ID, &l.UserID, &date, &l.ExerciseName,
			&l.DurationMinutes, &l.CaloriesBurned, &l.Feedback); err != nil {
			return nil, fmt.Errorf("failed to scan workout log: %w", err)
		}
		l.LogDate, err = time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log date %q: %w", date, err)
		}
		result = append(result, l)
	}
	return result, rows.Err()
}
