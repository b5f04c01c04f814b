package users

import (
	"context"
	"database/sql"
	"testing"

	"github.com/aigymlabs/fitcoach/internal/common"
	"github.com/aigymlabs/fitcoach/internal/server/models"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:usersrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id                 INTEGER PRIMARY KEY AUTOINCREMENT,
    username           TEXT NOT NULL UNIQUE,
    password_hash      TEXT NOT NULL,
    gender             TEXT,
    age                INTEGER,
    height_cm          REAL,
    weight_kg          REAL,
    diet_preference    TEXT,
    activity_level     TEXT,
    goals              TEXT,
    preferred_cuisines TEXT DEFAULT '',
    is_admin           INTEGER NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM users`)
	require.NoError(t, err)
	return db
}

func sampleUser(username string) *models.User {
	return &models.User{
		Username:       username,
		PasswordHash:   "$2a$10$fakehash",
		Gender:         "female",
		Age:            28,
		HeightCm:       167,
		WeightKg:       61.5,
		DietPreference: "vegetarian",
		ActivityLevel:  "moderate",
		Goals:          "weight_loss",
	}
}

func TestSQLiteRepository_CreateAndGetByUsername(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, sampleUser("ann"))
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	got, err := repo.GetByUsername(ctx, "ann")
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "ann", got.Username)
	require.Equal(t, "vegetarian", got.DietPreference)
	require.False(t, got.IsAdmin)
}

func TestSQLiteRepository_CreateDuplicateUsername(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleUser("ann"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, sampleUser("ann"))
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestSQLiteRepository_GetByIDNotFound(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	_, err := repo.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLiteRepository_UpdateProfile(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, sampleUser("ann"))
	require.NoError(t, err)

	u, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	u.WeightKg = 59
	u.Goals = "endurance"
	u.PreferredCuisines = "indian,italian"
	require.NoError(t, repo.UpdateProfile(ctx, u))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, float64(59), got.WeightKg)
	require.Equal(t, "endurance", got.Goals)
	require.Equal(t, "indian,italian", got.PreferredCuisines)
}

func TestSQLiteRepository_UpdateProfileMissingUser(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	u := sampleUser("ghost")
	u.ID = 99
	err := repo.UpdateProfile(context.Background(), u)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLiteRepository_SetAdmin(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, sampleUser("root"))
	require.NoError(t, err)

	require.NoError(t, repo.SetAdmin(ctx, id, true))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.True(t, got.IsAdmin)

	require.ErrorIs(t, repo.SetAdmin(ctx, 1000, true), common.ErrorNotFound)
}
