package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aigymlabs/fitcoach/internal/server/models"
	"github.com/aigymlabs/fitcoach/internal/server/repositories/logs"
)

type workoutLogJSON struct {
	ID              int64  `json:"id"`
	ExerciseName    string `json:"exercise_name"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  *int   `json:"calories_burned"`
	LogDate         string `json:"log_date"`
	Feedback        string `json:"feedback"`
}

func buildWorkoutLogJSON(l *models.WorkoutLog) workoutLogJSON {
	return workoutLogJSON{
		ID:              l.ID,
		ExerciseName:    l.ExerciseName,
		DurationMinutes: l.DurationMinutes,
		CaloriesBurned:  l.CaloriesBurned,
		LogDate:         logs.DateOnly(l.LogDate),
		Feedback:        l.Feedback,
	}
}

type addWorkoutLogRequest struct {
	ExerciseName    string `json:"exercise_name"`
	DurationMinutes *int   `json:"duration_minutes"`
	CaloriesBurned  *int   `json:"calories_burned"`
	LogDate         string `json:"log_date"`
	Feedback        string `json:"feedback"`
}

type addWorkoutLogResponse struct {
	Message string         `json:"message"`
	Log     workoutLogJSON `json:"log"`
}

func (s *Server) handleAddWorkoutLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req addWorkoutLogRequest
	if !decodeBody(w, r, &req) {
		return
	}

	name := strings.TrimSpace(req.ExerciseName)
	if name == "" || req.DurationMinutes == nil {
		writeMessage(w, http.StatusBadRequest, "Exercise name and duration are required")
		return
	}
	if *req.DurationMinutes <= 0 {
		writeMessage(w, http.StatusBadRequest, "Duration must be a positive number.")
		return
	}
	if req.CaloriesBurned != nil && *req.CaloriesBurned < 0 {
		writeMessage(w, http.StatusBadRequest, "Calories burned cannot be negative.")
		return
	}

	// An unparsable date falls back to today rather than failing the
	// whole request.
	logDate := time.Now()
	if req.LogDate != "" {
		parsed, err := time.Parse("2006-01-02", req.LogDate)
		if err != nil {
			s.log.Warn(r.Context(), "invalid workout log date, defaulting to today", "log_date", req.LogDate)
		} else {
			logDate = parsed
		}
	}

	entry := &models.WorkoutLog{
		UserID:          userID,
		LogDate:         logDate,
		ExerciseName:    name,
		DurationMinutes: *req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		Feedback:        strings.TrimSpace(req.Feedback),
	}
	id, err := s.logs.Add(r.Context(), entry)
	if err != nil {
		s.log.Error(r.Context(), "failed to store workout log", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to log workout due to a server error.")
		return
	}
	entry.ID = id

	writeJSON(w, http.StatusCreated, addWorkoutLogResponse{
		Message: "Workout logged successfully!",
		Log:     buildWorkoutLogJSON(entry),
	})
}

func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}

func (s *Server) handleListWorkoutLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	filter := logs.Filter{
		Year:  queryInt(r, "year"),
		Month: queryInt(r, "month"),
		Day:   queryInt(r, "day"),
	}
	if filter.Month != 0 && (filter.Month < 1 || filter.Month > 12) {
		writeMessage(w, http.StatusBadRequest, "Invalid month parameter.")
		return
	}
	if filter.Day != 0 && (filter.Day < 1 || filter.Day > 31) {
		writeMessage(w, http.StatusBadRequest, "Invalid month or day parameter.")
		return
	}

	entries, err := s.logs.ListByUser(r.Context(), userID, filter)
	if err != nil {
		s.log.Error(r.Context(), "failed to fetch workout logs", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch workout logs due to a server error.")
		return
	}

	resp := make([]workoutLogJSON, 0, len(entries))
	for i := range entries {
		resp = append(resp, buildWorkoutLogJSON(&entries[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}
