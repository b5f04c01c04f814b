// Package health derives body metrics and calorie targets from a user's
// profile.
package health

import (
	"math"

	"github.com/aigymlabs/fitcoach/internal/server/models"
)

// Metrics is the derived view served alongside the profile. Zero values
// mean the profile is missing the inputs needed to compute them.
type Metrics struct {
	BMI                 float64
	BMICategory         string
	BMR                 int
	TDEE                int
	TargetDailyCalories int
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// Compute derives all metrics for the user. Each metric degrades
// independently when inputs are absent.
func Compute(u *models.User) Metrics {
	m := Metrics{
		BMI: BMI(u.WeightKg, u.HeightCm),
		BMR: BMR(u.Gender, u.WeightKg, u.HeightCm, u.Age),
	}
	m.BMICategory = BMICategory(m.BMI)
	m.TDEE = TDEE(m.BMR, u.ActivityLevel)
	m.TargetDailyCalories = TargetDailyCalories(m.TDEE, u.Goals)
	return m
}

// BMI returns the body mass index rounded to one decimal, or 0 when
// either measurement is missing.
func BMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

// BMICategory maps a BMI value onto the standard WHO bands.
func BMICategory(bmi float64) string {
	switch {
	case bmi == 0:
		return "N/A"
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obesity"
	}
}

// BMR estimates the basal metabolic rate with the Mifflin-St Jeor
// equation. Unknown genders get the midpoint offset.
func BMR(gender string, weightKg, heightCm float64, age int) int {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0
	}
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case "male":
		base += 5
	case "female":
		base -= 161
	default:
		base -= 78
	}
	return int(math.Round(base))
}

// TDEE scales the BMR by the activity level. Unrecognized levels fall
// back to sedentary.
func TDEE(bmr int, activityLevel string) int {
	if bmr <= 0 {
		return 0
	}
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = activityMultipliers["sedentary"]
	}
	return int(math.Round(float64(bmr) * mult))
}

// TargetDailyCalories adjusts the TDEE for the user's goal: a deficit
// for weight loss, a surplus for muscle gain, maintenance otherwise.
func TargetDailyCalories(tdee int, goals string) int {
	if tdee <= 0 {
		return 0
	}
	switch goals {
	case "weight_loss":
		return tdee - 500
	case "muscle_gain":
		return tdee + 300
	default:
		return tdee
	}
}
