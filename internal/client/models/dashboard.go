package models

// Meal is a single dish option inside a day's plan.
type Meal struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Cuisine  string  `json:"cuisine"`
}

// DailySummary groups meal options by meal type for one day.
type DailySummary struct {
	Meals         map[string][]Meal `json:"meals"`
	TotalCalories float64           `json:"total_calories_for_day"`
}

// DietDay is one entry of the weekly plan returned by GET /weekly_diet_plan.
type DietDay struct {
	Day          int          `json:"day"`
	DailySummary DailySummary `json:"daily_summary"`
}

// Workout is a recommendation from GET /workout_recommendations.
type Workout struct {
	Name               string `json:"name"`
	Type               string `json:"type"`
	Target             string `json:"target"`
	DurationSuggestion string `json:"duration_suggestion"`
	Difficulty         string `json:"difficulty"`
}

// WorkoutLog is one entry from GET /workout_logs.
type WorkoutLog struct {
	ID              int64  `json:"id"`
	ExerciseName    string `json:"exercise_name"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  *int   `json:"calories_burned"`
	LogDate         string `json:"log_date"`
	Feedback        string `json:"feedback"`
}

// NewWorkoutLog is the body of POST /workout_logs. CaloriesBurned is a
// pointer so an unknown value is omitted rather than stored as zero.
type NewWorkoutLog struct {
	ExerciseName    string `json:"exercise_name"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  *int   `json:"calories_burned,omitempty"`
	LogDate         string `json:"log_date,omitempty"`
	Feedback        string `json:"feedback"`
}

// Todo is a to-do list item.
type Todo struct {
	ID        int64  `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}
