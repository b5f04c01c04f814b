// Package models defines the data shapes the client consumes from the
// fitness-coaching API.
package models

// User is the authenticated identity as returned by POST /login.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// Profile is the raw server-owned profile returned by GET /user_profile.
// IsAdmin is a pointer so "field absent" can be told apart from "false":
// the session merge falls back to the previous value only when the server
// did not send the field at all.
type Profile struct {
	Username          string  `json:"username"`
	Age               int     `json:"age"`
	Gender            string  `json:"gender"`
	HeightCm          float64 `json:"height_cm"`
	WeightKg          float64 `json:"weight_kg"`
	DietPreference    string  `json:"diet_preference"`
	ActivityLevel     string  `json:"activity_level"`
	Goals             string  `json:"goals"`
	PreferredCuisines string  `json:"preferred_cuisines"`
	BMI               float64 `json:"bmi"`
	BMICategory       string  `json:"bmi_category"`
	BMR               float64 `json:"bmr"`
	TDEE              float64 `json:"tdee"`
	TargetCalories    float64 `json:"target_daily_calories"`
	IsAdmin           *bool   `json:"is_admin,omitempty"`
}

// ProfileUpdate is the body of PUT /user_profile.
type ProfileUpdate struct {
	Age               int     `json:"age"`
	Gender            string  `json:"gender"`
	Height            float64 `json:"height"`
	Weight            float64 `json:"weight"`
	DietPreference    string  `json:"diet_preference"`
	ActivityLevel     string  `json:"activity_level"`
	Goals             string  `json:"goals"`
	PreferredCuisines string  `json:"preferred_cuisines"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username          string  `json:"username"`
	Password          string  `json:"password"`
	Gender            string  `json:"gender"`
	Age               int     `json:"age"`
	Height            float64 `json:"height"`
	Weight            float64 `json:"weight"`
	DietPreference    string  `json:"diet_preference"`
	PreferredCuisines string  `json:"preferred_cuisines"`
	ActivityLevel     string  `json:"activity_level"`
	Goals             string  `json:"goals"`
}
