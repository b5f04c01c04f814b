package ui

import (
	"fmt"
	"strings"
)

// poseCheckable lists the exercise families the analyzer knows about.
var poseCheckable = []string{
	"squat", "push-up", "lunge", "plank", "bicep curl", "overhead press",
	"burpee", "jumping jack", "row", "crunch", "leg raise",
}

// PoseCheckable reports whether a workout name belongs to an exercise the
// pose analyzer can give feedback on.
func PoseCheckable(name string) bool {
	lower := strings.ToLower(name)
	for _, ex := range poseCheckable {
		if strings.Contains(lower, ex) {
			return true
		}
	}
	return false
}

// PoseAnalyzer turns body landmarks into form feedback for one exercise.
// The geometry heuristics live behind this interface; the client only
// relays the result.
type PoseAnalyzer interface {
	Feedback(exercise string, landmarks map[string]Keypoint) (msg string, goodForm bool)
}

// Keypoint is a normalized body landmark position.
type Keypoint struct {
	X          float64
	Y          float64
	Visibility float64
}

// StaticAnalyzer is the default analyzer used when no landmark source is
// attached (no camera in a terminal client). It returns coaching cues per
// exercise rather than live geometry checks.
type StaticAnalyzer struct{}

var cues = map[string]string{
	"squat":      "Keep chest up, back straight, hips below the knees at depth.",
	"plank":      "Keep shoulders, hips and ankles in one line. Core tight.",
	"bicep curl": "Keep the elbow stable; curl through the full range of motion.",
	"push-up":    "Body straight, elbows at about 45 degrees, full lockout.",
	"lunge":      "Front knee over the ankle, torso upright.",
}

func (StaticAnalyzer) Feedback(exercise string, _ map[string]Keypoint) (string, bool) {
	lower := strings.ToLower(exercise)
	for ex, cue := range cues {
		if strings.Contains(lower, ex) {
			return cue, true
		}
	}
	if !PoseCheckable(exercise) {
		return fmt.Sprintf("Pose analysis for %s is not available.", exercise), false
	}
	return "Position yourself for feedback.", false
}
