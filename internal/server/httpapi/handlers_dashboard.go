package httpapi

import (
	"errors"
	"net/http"

	"github.com/aigymlabs/fitcoach/internal/server/diet"
	"github.com/aigymlabs/fitcoach/internal/server/health"
	"github.com/aigymlabs/fitcoach/internal/server/workouts"
)

type mealJSON struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
	Cuisine  string `json:"cuisine"`
}

type dailySummaryJSON struct {
	Meals         map[string][]mealJSON `json:"meals"`
	TotalCalories int                   `json:"total_calories_for_day"`
}

type dietDayJSON struct {
	Day          int              `json:"day"`
	DailySummary dailySummaryJSON `json:"daily_summary"`
}

type weeklyPlanResponse struct {
	WeeklyDietPlan []dietDayJSON `json:"weekly_diet_plan"`
}

func (s *Server) handleWeeklyDietPlan(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	m := health.Compute(user)
	planner := diet.NewPlanner(s.recipes, s.randSeed())
	week, err := planner.Weekly(diet.Preferences{
		TargetCalories:    m.TargetDailyCalories,
		DietPreference:    user.DietPreference,
		PreferredCuisines: user.PreferredCuisines,
	})
	if err != nil {
		msg := "Not enough diverse food items for your preferences."
		if errors.Is(err, diet.ErrNoRecipes) {
			msg = "No suitable food items after cleaning."
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}

	resp := weeklyPlanResponse{WeeklyDietPlan: make([]dietDayJSON, 0, len(week))}
	for _, day := range week {
		meals := make(map[string][]mealJSON, len(day.Summary.Meals))
		for mealType, options := range day.Summary.Meals {
			out := make([]mealJSON, 0, len(options))
			for _, opt := range options {
				out = append(out, mealJSON{
					Name:     opt.Name,
					Calories: opt.Calories,
					Protein:  opt.Protein,
					Carbs:    opt.Carbs,
					Fat:      opt.Fat,
					Cuisine:  opt.Cuisine,
				})
			}
			meals[mealType] = out
		}
		resp.WeeklyDietPlan = append(resp.WeeklyDietPlan, dietDayJSON{
			Day: day.Day,
			DailySummary: dailySummaryJSON{
				Meals:         meals,
				TotalCalories: day.Summary.TotalCalories,
			},
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type workoutJSON struct {
	Name               string `json:"name"`
	Type               string `json:"type"`
	Target             string `json:"target"`
	DurationSuggestion string `json:"duration_suggestion"`
	Difficulty         string `json:"difficulty"`
}

type workoutRecommendationsResponse struct {
	Goal     string        `json:"goal"`
	Workouts []workoutJSON `json:"workouts"`
}

func (s *Server) handleWorkoutRecommendations(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	recommender := workouts.NewRecommender(s.workoutCatalog, s.randSeed())
	recs := recommender.ForGoal(user.Goals)

	resp := workoutRecommendationsResponse{Goal: user.Goals, Workouts: make([]workoutJSON, 0, len(recs))}
	for _, rec := range recs {
		resp.Workouts = append(resp.Workouts, workoutJSON{
			Name:               rec.Name,
			Type:               rec.Type,
			Target:             rec.Target,
			DurationSuggestion: rec.DurationSuggestion,
			Difficulty:         rec.Difficulty,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
