package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/aigymlabs/fitcoach/internal/common"
	"github.com/aigymlabs/fitcoach/internal/server/models"
)

type todoJSON struct {
	ID        int64  `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

func buildTodoJSON(t *models.Todo) todoJSON {
	return todoJSON{ID: t.ID, Task: t.Task, Completed: t.Completed}
}

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	items, err := s.todos.ListByUser(r.Context(), userID)
	if err != nil {
		s.log.Error(r.Context(), "failed to list todos", "error", err)
		writeInternalError(w)
		return
	}
	resp := make([]todoJSON, 0, len(items))
	for i := range items {
		resp = append(resp, buildTodoJSON(&items[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddTodo(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req struct {
		Task string `json:"task"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Task) == "" {
		writeMessage(w, http.StatusBadRequest, "Task content is required and cannot be empty")
		return
	}

	created, err := s.todos.Create(r.Context(), &models.Todo{
		UserID: userID,
		Task:   strings.TrimSpace(req.Task),
	})
	if err != nil {
		s.log.Error(r.Context(), "failed to create todo", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to add todo due to server error.")
		return
	}
	writeJSON(w, http.StatusCreated, buildTodoJSON(created))
}

// ownedTodo loads the path's todo and enforces ownership. A todo that
// belongs to somebody else yields 403 with the verb-specific message.
func (s *Server) ownedTodo(w http.ResponseWriter, r *http.Request, verb string) (*models.Todo, bool) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return nil, false
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeNotFound(w)
		return nil, false
	}

	todo, err := s.todos.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeNotFound(w)
			return nil, false
		}
		s.log.Error(r.Context(), "failed to load todo", "error", err)
		writeInternalError(w)
		return nil, false
	}
	if todo.UserID != userID {
		writeMessage(w, http.StatusForbidden, "Unauthorized to "+verb+" this todo")
		return nil, false
	}
	return todo, true
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	todo, ok := s.ownedTodo(w, r, "modify")
	if !ok {
		return
	}

	var req struct {
		Task      *string `json:"task"`
		Completed *bool   `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "No data provided for update")
		return
	}

	changed := false
	if req.Task != nil {
		task := strings.TrimSpace(*req.Task)
		if task == "" {
			writeMessage(w, http.StatusBadRequest, "Task content cannot be empty if provided")
			return
		}
		if todo.Task != task {
			todo.Task = task
			changed = true
		}
	}
	if req.Completed != nil && todo.Completed != *req.Completed {
		todo.Completed = *req.Completed
		changed = true
	}

	if changed {
		if err := s.todos.Update(r.Context(), todo); err != nil {
			s.log.Error(r.Context(), "failed to update todo", "error", err)
			writeMessage(w, http.StatusInternalServerError, "Failed to update todo due to server error.")
			return
		}
	}
	writeJSON(w, http.StatusOK, buildTodoJSON(todo))
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	todo, ok := s.ownedTodo(w, r, "delete")
	if !ok {
		return
	}

	if err := s.todos.Delete(r.Context(), todo.ID); err != nil {
		s.log.Error(r.Context(), "failed to delete todo", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to delete todo due to server error.")
		return
	}
	writeMessage(w, http.StatusOK, "Todo deleted successfully")
}
