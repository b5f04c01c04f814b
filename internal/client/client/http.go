package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/aigymlabs/fitcoach/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the FitCoach API. The session credential
// is a cookie managed by the jar, so every request after login carries it
// automatically.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://localhost:5000/api"). A zero timeout means no client-side
// deadline; callers bound individual calls through ctx if they need one.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// apiMessage is the envelope the server uses for human-readable responses.
type apiMessage struct {
	Message string `json:"message"`
}

func serverMessage(body []byte) string {
	var m apiMessage
	if err := json.Unmarshal(body, &m); err == nil && m.Message != "" {
		return m.Message
	}
	return strings.TrimSpace(string(body))
}

// classify maps an HTTP failure onto one of the package sentinels. Session
// expiry is recognised either by status 401 or by message content, since
// some deployments front the API with proxies that rewrite status codes.
func classify(status int, body []byte) error {
	msg := serverMessage(body)
	switch {
	case status == http.StatusUnauthorized,
		strings.Contains(strings.ToLower(msg), "authentication is required"):
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrUnavailable, msg)
	default:
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return classify(resp.StatusCode, data)
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	var resp struct {
		Message string       `json:"message"`
		User    *models.User `json:"user"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, fmt.Errorf("%w: login response without user", ErrUnavailable)
	}
	return resp.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/register", req, nil)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil)
}

func (c *HTTPClient) UserProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodGet, "/user_profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error) {
	var resp struct {
		Message     string          `json:"message"`
		UserProfile *models.Profile `json:"user_profile"`
	}
	if err := c.do(ctx, http.MethodPut, "/user_profile", upd, &resp); err != nil {
		return nil, err
	}
	if resp.UserProfile == nil {
		return nil, fmt.Errorf("%w: update response without profile", ErrUnavailable)
	}
	return resp.UserProfile, nil
}

func (c *HTTPClient) WeeklyDietPlan(ctx context.Context) ([]models.DietDay, error) {
	var resp struct {
		WeeklyDietPlan []models.DietDay `json:"weekly_diet_plan"`
	}
	if err := c.do(ctx, http.MethodGet, "/weekly_diet_plan", nil, &resp); err != nil {
		return nil, err
	}
	return resp.WeeklyDietPlan, nil
}

func (c *HTTPClient) WorkoutRecommendations(ctx context.Context) ([]models.Workout, error) {
	var resp struct {
		Goal     string           `json:"goal"`
		Workouts []models.Workout `json:"workouts"`
	}
	if err := c.do(ctx, http.MethodGet, "/workout_recommendations", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Workouts, nil
}

func (c *HTTPClient) WorkoutLogs(ctx context.Context) ([]models.WorkoutLog, error) {
	var logs []models.WorkoutLog
	if err := c.do(ctx, http.MethodGet, "/workout_logs", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *HTTPClient) AddWorkoutLog(ctx context.Context, log models.NewWorkoutLog) (*models.WorkoutLog, error) {
	var resp struct {
		Message string             `json:"message"`
		Log     *models.WorkoutLog `json:"log"`
	}
	if err := c.do(ctx, http.MethodPost, "/workout_logs", log, &resp); err != nil {
		return nil, err
	}
	return resp.Log, nil
}

func (c *HTTPClient) Todos(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (c *HTTPClient) AddTodo(ctx context.Context, task string) (*models.Todo, error) {
	var todo models.Todo
	body := map[string]string{"task": task}
	if err := c.do(ctx, http.MethodPost, "/todos", body, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *HTTPClient) UpdateTodo(ctx context.Context, id int64, task string, completed bool) (*models.Todo, error) {
	var todo models.Todo
	body := map[string]any{"task": task, "completed": completed}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/todos/%d", id), body, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *HTTPClient) DeleteTodo(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/todos/%d", id), nil, nil)
}
