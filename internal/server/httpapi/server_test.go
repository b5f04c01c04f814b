package httpapi

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigymlabs/fitcoach/internal/common"
	"github.com/aigymlabs/fitcoach/internal/logging"
	"github.com/aigymlabs/fitcoach/internal/server/config"
	"github.com/aigymlabs/fitcoach/internal/server/repositories/logs"
	"github.com/aigymlabs/fitcoach/internal/server/repositories/todos"
	"github.com/aigymlabs/fitcoach/internal/server/repositories/users"
	"github.com/aigymlabs/fitcoach/internal/server/services"

	_ "modernc.org/sqlite"
)

var testDBCounter int

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	testDBCounter++
	dsn := fmt.Sprintf("file:httpapi%d?mode=memory&cache=shared", testDBCounter)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS users (
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
)`,
		`CREATE TABLE IF NOT EXISTS workout_logs (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id          INTEGER NOT NULL,
    log_date         DATE NOT NULL,
    exercise_name    TEXT NOT NULL,
    duration_minutes INTEGER NOT NULL,
    calories_burned  INTEGER,
    feedback         TEXT
)`,
		`CREATE TABLE IF NOT EXISTS todos (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id    INTEGER NOT NULL,
    task       TEXT NOT NULL,
    completed  INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	} {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}
	return db
}

type testEnv struct {
	ts     *httptest.Server
	client *http.Client
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupDB(t)

	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	cfg := &config.Config{
		SecretKey:               "test-secret",
		SessionValidityDuration: time.Hour,
	}
	userService := services.NewUserService(db, users.SQLiteFactory, log)
	srv := New(cfg, userService, logs.NewSQLiteRepository(db), todos.NewSQLiteRepository(db), log)
	srv.seed = 1

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testEnv{ts: ts, client: &http.Client{Jar: jar}}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, e.ts.URL+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func registration(username string) map[string]any {
	return map[string]any{
		"username":        username,
		"password":        "secret123",
		"gender":          "female",
		"age":             28,
		"height":          167,
		"weight":          61.5,
		"diet_preference": "vegetarian",
		"activity_level":  "moderate",
		"goals":           "weight_loss",
	}
}

func (e *testEnv) registerAndLogin(t *testing.T, username string) {
	t.Helper()
	status, _ := e.do(t, http.MethodPost, "/api/register", registration(username))
	require.Equal(t, http.StatusCreated, status)
	status, _ = e.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": username, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
}

func TestRootWelcome(t *testing.T) {
	env := newTestEnv(t)

	status, raw := env.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), "Backend is running")
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	status, raw := env.do(t, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"API Resource not found."}`, string(raw))
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	status, raw := env.do(t, http.MethodPost, "/api/register", registration("ann"))
	assert.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"message":"User registered successfully!"}`, string(raw))

	status, raw = env.do(t, http.MethodPost, "/api/register", registration("ann"))
	assert.Equal(t, http.StatusConflict, status)
	assert.JSONEq(t, `{"message":"Username already exists"}`, string(raw))

	bad := registration("bob")
	bad["age"] = 200
	status, raw = env.do(t, http.MethodPost, "/api/register", bad)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(raw), "Age must be between 12 and 120.")
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodPost, "/api/register", registration("ann"))
	require.Equal(t, http.StatusCreated, status)

	status, raw := env.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": "ann", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"message":"Invalid username or password"}`, string(raw))

	status, raw = env.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": "ann", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)

	var resp struct {
		Message string `json:"message"`
		User    struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
			IsAdmin  bool   `json:"is_admin"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "Login successful!", resp.Message)
	assert.Equal(t, "ann", resp.User.Username)
	assert.False(t, resp.User.IsAdmin)
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/user_profile", "/api/weekly_diet_plan", "/api/todos", "/api/workout_logs"} {
		status, raw := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)
		assert.JSONEq(t, `{"message":"Unauthorized: Authentication is required."}`, string(raw), path)
	}
}

func TestSessionCookieIsSet(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "ann")

	u, err := url.Parse(env.ts.URL)
	require.NoError(t, err)

	found := false
	for _, c := range env.client.Jar.Cookies(u) {
		if c.Name == common.SessionCookieName {
			found = true
		}
	}
	assert.True(t, found, "login stores the session cookie")
}

func TestProfileGet(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "ann")

	status, raw := env.do(t, http.MethodGet, "/api/user_profile", nil)
	require.Equal(t, http.StatusOK, status)

	var profile map[string]any
	require.NoError(t, json.Unmarshal(raw, &profile))
	assert.Equal(t, "ann", profile["username"])
	assert.Equal(t, 22.1, profile["bmi"])
	assert.Equal(t, "Normal weight", profile["bmi_category"])
	assert.Equal(t, float64(1358), profile["bmr"])
	assert.Equal(t, float64(2105), profile["tdee"])
	assert.Equal(t, float64(1605), profile["target_daily_calories"])
	assert.Equal(t, false, profile["is_admin"])
}

func TestProfilePut(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "ann")

	status, raw := env.do(t, http.MethodPut, "/api/user_profile", map[string]any{
		"weight": 58, "goals": "endurance",
	})
	require.Equal(t, http.StatusOK, status)

	var resp struct {
		Message     string         `json:"message"`
		UserProfile map[string]any `json:"user_profile"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "Profile updated successfully!", resp.Message)
	assert.Equal(t, float64(58), resp.UserProfile["weight_kg"])
	assert.Equal(t, "endurance", resp.UserProfile["goals"])

	status, raw = env.do(t, http.MethodPut, "/api/user_profile", map[string]any{"height": 20})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(raw), "Invalid data: Height must be between 50 and 300 cm.")
}

func TestWeeklyDietPlan(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "ann")

	status, raw := env.do(t, http.MethodGet, "/api/weekly_diet_plan", nil)
	require.Equal(t, http.StatusOK, status)

	var resp struct {
		WeeklyDietPlan []struct {
			Day          int `json:"day"`
			DailySummary struct {
				Meals         map[string][]map[string]any `json:"meals"`
				TotalCalories int                         `json:"total_calories_for_day"`
			} `json:"daily_summary"`
		} `json:"weekly_diet_plan"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))
	require.Len(t, resp.WeeklyDietPlan, 7)
	for _, day := range resp.WeeklyDietPlan {
		assert.Len(t, day.DailySummary.Meals, 3)
		assert.Greater(t, day.DailySummary.TotalCalories, 0)
	}
}

func TestWorkoutRecommendations(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "ann")

	status, raw := env.do(t, http.MethodGet, "/api/workout_recommendations", nil)
	require.Equal(t, http.StatusOK, status)

	var resp struct {
		Goal     string           `json:"goal"`
		Workouts []map[string]any `json:"workouts"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "weight_loss", resp.Goal)
	assert.GreaterOrEqual(t, len(resp.Workouts), 3)
	assert.LessOrEqual(t, len(resp.Workouts), 5)
}

func TestWorkoutLogs(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "ann")

	status, raw := env.do(t, http.MethodPost, "/api/workout_logs", map[string]any{
		"exercise_name": "Running", "duration_minutes": 45, "calories_burned": 320,
		"log_date": "2026-08-10",
	})
	require.Equal(t, http.StatusCreated, status)
	var created struct {
		Message string `json:"message"`
		Log     struct {
			ID      int64  `json:"id"`
			LogDate string `json:"log_date"`
		} `json:"log"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "Workout logged successfully!", created.Message)
	assert.Equal(t, "2026-08-10", created.Log.LogDate)

	// Validation failures.
	status, _ = env.do(t, http.MethodPost, "/api/workout_logs", map[string]any{"exercise_name": "  "})
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = env.do(t, http.MethodPost, "/api/workout_logs", map[string]any{
		"exercise_name": "Plank", "duration_minutes": 0,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = env.do(t, http.MethodPost, "/api/workout_logs", map[string]any{
		"exercise_name": "Cycling", "duration_minutes": 30, "log_date": "2026-07-01",
	})
	require.Equal(t, http.StatusCreated, status)

	status, raw = env.do(t, http.MethodGet, "/api/workout_logs", nil)
	require.Equal(t, http.StatusOK, status)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Running", list[0]["exercise_name"], "newest date first")

	status, raw = env.do(t, http.MethodGet, "/api/workout_logs?year=2026&month=7", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Cycling", list[0]["exercise_name"])

	status, _ = env.do(t, http.MethodGet, "/api/workout_logs?year=2026&month=13", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestTodosCRUD(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "ann")

	status, raw := env.do(t, http.MethodPost, "/api/todos", map[string]string{"task": "stretch"})
	require.Equal(t, http.StatusCreated, status)
	var todo struct {
		ID        int64  `json:"id"`
		Task      string `json:"task"`
		Completed bool   `json:"completed"`
	}
	require.NoError(t, json.Unmarshal(raw, &todo))
	assert.Equal(t, "stretch", todo.Task)
	assert.False(t, todo.Completed)

	status, _ = env.do(t, http.MethodPost, "/api/todos", map[string]string{"task": "  "})
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw = env.do(t, http.MethodPut, fmt.Sprintf("/api/todos/%d", todo.ID), map[string]any{
		"completed": true,
	})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &todo))
	assert.True(t, todo.Completed)

	status, raw = env.do(t, http.MethodGet, "/api/todos", nil)
	require.Equal(t, http.StatusOK, status)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)

	status, raw = env.do(t, http.MethodDelete, fmt.Sprintf("/api/todos/%d", todo.ID), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Todo deleted successfully"}`, string(raw))

	status, _ = env.do(t, http.MethodDelete, fmt.Sprintf("/api/todos/%d", todo.ID), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestTodoOwnership(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "ann")

	status, raw := env.do(t, http.MethodPost, "/api/todos", map[string]string{"task": "private"})
	require.Equal(t, http.StatusCreated, status)
	var todo struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &todo))

	// A second user cannot touch ann's todo.
	other := &testEnv{ts: env.ts, client: newJarClient(t)}
	other.registerAndLogin(t, "eve")

	status, raw = other.do(t, http.MethodPut, fmt.Sprintf("/api/todos/%d", todo.ID), map[string]any{
		"completed": true,
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.JSONEq(t, `{"message":"Unauthorized to modify this todo"}`, string(raw))

	status, raw = other.do(t, http.MethodDelete, fmt.Sprintf("/api/todos/%d", todo.ID), nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.JSONEq(t, `{"message":"Unauthorized to delete this todo"}`, string(raw))
}

func TestLogoutClearsSession(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "ann")

	status, raw := env.do(t, http.MethodPost, "/api/logout", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, string(raw))

	status, _ = env.do(t, http.MethodGet, "/api/user_profile", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func newJarClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}
