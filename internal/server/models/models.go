// Package models defines the server's persisted entities.
package models

import "time"

// User is an account with its fitness profile. IsAdmin gates the admin
// area; it is never settable through registration or profile updates.
type User struct {
	ID                int64
	Username          string
	PasswordHash      string
	Gender            string
	Age               int
	HeightCm          float64
	WeightKg          float64
	DietPreference    string
	ActivityLevel     string
	Goals             string
	PreferredCuisines string
	IsAdmin           bool
}

// WorkoutLog is one recorded workout. CaloriesBurned is nullable, the
// client may not know it.
type WorkoutLog struct {
	ID              int64
	UserID          int64
	LogDate         time.Time
	ExerciseName    string
	DurationMinutes int
	CaloriesBurned  *int
	Feedback        string
}

// Todo is a per-user to-do item.
type Todo struct {
	ID        int64
	UserID    int64
	Task      string
	Completed bool
	CreatedAt time.Time
}
