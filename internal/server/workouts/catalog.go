package workouts

// Workout is one recommendable exercise.
type Workout struct {
	Name               string
	Type               string
	Target             string
	DurationSuggestion string
	Difficulty         string
}

// Catalog returns the built-in exercise pool.
func Catalog() []Workout {
	return []Workout{
		{Name: "Push-ups", Type: "strength", Target: "Chest, Shoulders, Triceps", DurationSuggestion: "3 sets of AMRAP", Difficulty: "Intermediate"},
		{Name: "Squats (Bodyweight)", Type: "strength", Target: "Quads, Glutes, Hamstrings", DurationSuggestion: "3 sets of 12-15 reps", Difficulty: "Beginner"},
		{Name: "Plank", Type: "core", Target: "Core", DurationSuggestion: "3 sets, hold 30-60s", Difficulty: "Beginner"},
		{Name: "Lunges (Bodyweight)", Type: "strength", Target: "Quads, Glutes", DurationSuggestion: "3 sets of 10-12 reps per leg", Difficulty: "Beginner"},
		{Name: "Burpees", Type: "cardio", Target: "Full Body", DurationSuggestion: "3 sets of 8-12 reps", Difficulty: "Intermediate"},
		{Name: "Jumping Jacks", Type: "cardio", Target: "Full Body", DurationSuggestion: "3-5 minutes", Difficulty: "Beginner"},
		{Name: "Running/Jogging (Moderate Pace)", Type: "cardio", Target: "Cardiovascular, Legs", DurationSuggestion: "20-30 minutes", Difficulty: "Beginner-Intermediate"},
		{Name: "Cycling (Moderate Intensity)", Type: "cardio", Target: "Legs, Cardiovascular", DurationSuggestion: "30-45 minutes", Difficulty: "Beginner-Intermediate"},
		{Name: "Bicep Curls (Dumbbells/Resistance Band)", Type: "strength", Target: "Biceps", DurationSuggestion: "3 sets of 10-15 reps", Difficulty: "Beginner"},
		{Name: "Overhead Press (Dumbbells/Resistance Band)", Type: "strength", Target: "Shoulders, Triceps", DurationSuggestion: "3 sets of 10-15 reps", Difficulty: "Beginner"},
		{Name: "Bent-Over Rows (Dumbbells/Resistance Band)", Type: "strength", Target: "Back, Biceps", DurationSuggestion: "3 sets of 10-15 reps", Difficulty: "Beginner"},
		{Name: "Crunches", Type: "core", Target: "Upper Abs", DurationSuggestion: "3 sets of 15-20 reps", Difficulty: "Beginner"},
		{Name: "Leg Raises (Lying)", Type: "core", Target: "Lower Abs", DurationSuggestion: "3 sets of 15-20 reps", Difficulty: "Beginner"},
		{Name: "Bird-Dog", Type: "core", Target: "Core Stability, Back", DurationSuggestion: "3 sets of 10-12 reps per side", Difficulty: "Beginner"},
		{Name: "Glute Bridges", Type: "strength", Target: "Glutes, Hamstrings", DurationSuggestion: "3 sets of 15-20 reps", Difficulty: "Beginner"},
		{Name: "Yoga Flow (Beginner)", Type: "flexibility", Target: "Full Body", DurationSuggestion: "20-30 minutes", Difficulty: "Beginner"},
		{Name: "Stretching Routine", Type: "flexibility", Target: "Major Muscle Groups", DurationSuggestion: "10-15 minutes post-workout", Difficulty: "Beginner"},
		{Name: "High-Intensity Interval Training (HIIT) - Bodyweight", Type: "cardio", Target: "Full Body, Fat Loss", DurationSuggestion: "15-20 mins (e.g., 30s work, 30s rest)", Difficulty: "Intermediate"},
		{Name: "Walking (Brisk)", Type: "cardio", Target: "General Fitness", DurationSuggestion: "30-60 minutes", Difficulty: "Beginner"},
	}
}
