package httpapi

import (
	"errors"
	"net/http"

	"github.com/aigymlabs/fitcoach/internal/common"
	"github.com/aigymlabs/fitcoach/internal/server/health"
	"github.com/aigymlabs/fitcoach/internal/server/models"
	"github.com/aigymlabs/fitcoach/internal/server/services"
)

// profileResponse is the flat profile shape with its derived metrics.
type profileResponse struct {
	Username            string  `json:"username"`
	Age                 int     `json:"age"`
	Gender              string  `json:"gender"`
	HeightCm            float64 `json:"height_cm"`
	WeightKg            float64 `json:"weight_kg"`
	DietPreference      string  `json:"diet_preference"`
	ActivityLevel       string  `json:"activity_level"`
	Goals               string  `json:"goals"`
	PreferredCuisines   string  `json:"preferred_cuisines"`
	BMI                 float64 `json:"bmi"`
	BMICategory         string  `json:"bmi_category"`
	BMR                 int     `json:"bmr"`
	TDEE                int     `json:"tdee"`
	TargetDailyCalories int     `json:"target_daily_calories"`
	IsAdmin             bool    `json:"is_admin"`
}

func buildProfileResponse(u *models.User) profileResponse {
	m := health.Compute(u)
	return profileResponse{
		Username:            u.Username,
		Age:                 u.Age,
		Gender:              u.Gender,
		HeightCm:            u.HeightCm,
		WeightKg:            u.WeightKg,
		DietPreference:      u.DietPreference,
		ActivityLevel:       u.ActivityLevel,
		Goals:               u.Goals,
		PreferredCuisines:   u.PreferredCuisines,
		BMI:                 m.BMI,
		BMICategory:         m.BMICategory,
		BMR:                 m.BMR,
		TDEE:                m.TDEE,
		TargetDailyCalories: m.TargetDailyCalories,
		IsAdmin:             u.IsAdmin,
	}
}

func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return nil, false
	}
	user, err := s.users.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// The account behind a still-valid token is gone.
			writeUnauthorized(w)
			return nil, false
		}
		s.log.Error(r.Context(), "profile lookup failed", "error", err)
		writeInternalError(w)
		return nil, false
	}
	return user, true
}

func (s *Server) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, buildProfileResponse(user))
}

type profileUpdateRequest struct {
	Age               *int     `json:"age"`
	Gender            *string  `json:"gender"`
	Height            *float64 `json:"height"`
	Weight            *float64 `json:"weight"`
	DietPreference    *string  `json:"diet_preference"`
	ActivityLevel     *string  `json:"activity_level"`
	Goals             *string  `json:"goals"`
	PreferredCuisines *string  `json:"preferred_cuisines"`
}

type profileUpdateResponse struct {
	Message     string          `json:"message"`
	UserProfile profileResponse `json:"user_profile"`
}

func (s *Server) handleProfilePut(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req profileUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := s.users.UpdateProfile(r.Context(), userID, services.ProfileUpdate{
		Age:               req.Age,
		Gender:            req.Gender,
		HeightCm:          req.Height,
		WeightKg:          req.Weight,
		DietPreference:    req.DietPreference,
		ActivityLevel:     req.ActivityLevel,
		Goals:             req.Goals,
		PreferredCuisines: req.PreferredCuisines,
	})
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, profileUpdateResponse{
			Message:     "Profile updated successfully!",
			UserProfile: buildProfileResponse(user),
		})
	case errors.Is(err, common.ErrorValidation):
		writeMessage(w, http.StatusBadRequest, "Invalid data: "+validationMessage(err))
	case errors.Is(err, common.ErrorNotFound):
		writeUnauthorized(w)
	default:
		s.log.Error(r.Context(), "profile update failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Profile update failed due to a server error.")
	}
}
