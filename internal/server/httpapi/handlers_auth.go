package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aigymlabs/fitcoach/internal/common"
	"github.com/aigymlabs/fitcoach/internal/server/auth"
	"github.com/aigymlabs/fitcoach/internal/server/services"
)

type registerRequest struct {
	Username          string  `json:"username"`
	Password          string  `json:"password"`
	Gender            string  `json:"gender"`
	Age               int     `json:"age"`
	Height            float64 `json:"height"`
	Weight            float64 `json:"weight"`
	DietPreference    string  `json:"diet_preference"`
	ActivityLevel     string  `json:"activity_level"`
	Goals             string  `json:"goals"`
	PreferredCuisines string  `json:"preferred_cuisines"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := s.users.Register(r.Context(), services.RegisterRequest{
		Username:          req.Username,
		Password:          req.Password,
		Gender:            req.Gender,
		Age:               req.Age,
		HeightCm:          req.Height,
		WeightKg:          req.Weight,
		DietPreference:    req.DietPreference,
		ActivityLevel:     req.ActivityLevel,
		Goals:             req.Goals,
		PreferredCuisines: req.PreferredCuisines,
	})
	switch {
	case err == nil:
		writeMessage(w, http.StatusCreated, "User registered successfully!")
	case errors.Is(err, common.ErrorAlreadyExists):
		writeMessage(w, http.StatusConflict, "Username already exists")
	case errors.Is(err, common.ErrorValidation):
		writeMessage(w, http.StatusBadRequest, validationMessage(err))
	default:
		s.log.Error(r.Context(), "registration failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Registration failed due to a server error.")
	}
}

// validationMessage strips the sentinel prefix so the client sees only
// the human-readable part.
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type loginResponse struct {
	Message string    `json:"message"`
	User    loginUser `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeMessage(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		s.log.Error(r.Context(), "login failed", "error", err)
		writeInternalError(w)
		return
	}

	token, err := auth.GenerateToken(user.ID, s.secret, s.sessionValidity)
	if err != nil {
		s.log.Error(r.Context(), "token generation failed", "error", err)
		writeInternalError(w)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.sessionValidity.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	msg := "Login successful!"
	if user.IsAdmin {
		msg = "Admin login successful!"
	}
	writeJSON(w, http.StatusOK, loginResponse{
		Message: msg,
		User:    loginUser{ID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin},
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeMessage(w, http.StatusOK, "Logged out successfully")
}
