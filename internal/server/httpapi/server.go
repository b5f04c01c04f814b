// Package httpapi exposes the FitCoach REST API under the /api prefix.
package httpapi

import (
	"encoding/binary"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/aigymlabs/fitcoach/internal/common"
	"github.com/aigymlabs/fitcoach/internal/logging"
	"github.com/aigymlabs/fitcoach/internal/server/config"
	"github.com/aigymlabs/fitcoach/internal/server/diet"
	"github.com/aigymlabs/fitcoach/internal/server/repositories/logs"
	"github.com/aigymlabs/fitcoach/internal/server/repositories/todos"
	"github.com/aigymlabs/fitcoach/internal/server/services"
	"github.com/aigymlabs/fitcoach/internal/server/workouts"
)

// Server holds the handler dependencies. Diet planners and workout
// recommenders are built per request so concurrent requests do not share
// a random source.
type Server struct {
	users           *services.UserService
	logs            logs.Repository
	todos           todos.Repository
	recipes         []diet.Recipe
	workoutCatalog  []workouts.Workout
	secret          []byte
	sessionValidity time.Duration
	log             logging.Logger

	// seed lets tests make plan generation deterministic. Zero means a
	// fresh random seed per request.
	seed int64
}

func New(cfg *config.Config, users *services.UserService, logsRepo logs.Repository,
	todosRepo todos.Repository, log logging.Logger) *Server {
	return &Server{
		users:           users,
		logs:            logsRepo,
		todos:           todosRepo,
		recipes:         diet.Catalog(),
		workoutCatalog:  workouts.Catalog(),
		secret:          []byte(cfg.SecretKey),
		sessionValidity: cfg.SessionValidityDuration,
		log:             log.With("module", "httpapi"),
	}
}

func (s *Server) randSeed() int64 {
	if s.seed != 0 {
		return s.seed
	}
	return int64(binary.BigEndian.Uint64(common.GenerateRandByteArray(8)))
}

// Handler builds the full route table.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.NotFoundHandler = s.logRequests(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeNotFound(w)
	}))

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(s.authenticate)
	authed.HandleFunc("/logout", s.handleLogout).Methods(http.MethodPost)
	authed.HandleFunc("/user_profile", s.handleProfileGet).Methods(http.MethodGet)
	authed.HandleFunc("/user_profile", s.handleProfilePut).Methods(http.MethodPut)
	authed.HandleFunc("/weekly_diet_plan", s.handleWeeklyDietPlan).Methods(http.MethodGet)
	authed.HandleFunc("/workout_recommendations", s.handleWorkoutRecommendations).Methods(http.MethodGet)
	authed.HandleFunc("/workout_logs", s.handleAddWorkoutLog).Methods(http.MethodPost)
	authed.HandleFunc("/workout_logs", s.handleListWorkoutLogs).Methods(http.MethodGet)
	authed.HandleFunc("/todos", s.handleListTodos).Methods(http.MethodGet)
	authed.HandleFunc("/todos", s.handleAddTodo).Methods(http.MethodPost)
	authed.HandleFunc("/todos/{id:[0-9]+}", s.handleUpdateTodo).Methods(http.MethodPut)
	authed.HandleFunc("/todos/{id:[0-9]+}", s.handleDeleteTodo).Methods(http.MethodDelete)

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "Welcome to the FitCoach API! Backend is running.")
}
