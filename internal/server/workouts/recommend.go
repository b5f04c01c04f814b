// Package workouts recommends exercises for a training goal.
package workouts

import (
	"math/rand"
	"strings"
)

// Recommender picks workouts from a fixed catalog.
type Recommender struct {
	catalog []Workout
	rnd     *rand.Rand
}

func NewRecommender(catalog []Workout, seed int64) *Recommender {
	return &Recommender{catalog: catalog, rnd: rand.New(rand.NewSource(seed))}
}

// ForGoal recommends 3 to 5 unique workouts matched to the goal.
// Muscle gain leans on strength plus core work, weight loss mixes cardio
// with strength, endurance is cardio-heavy with one core exercise, and
// any other goal gets a random mix.
func (r *Recommender) ForGoal(goal string) []Workout {
	var picks []Workout
	switch strings.ToLower(goal) {
	case "muscle_gain":
		picks = append(picks, r.sample(r.byType("strength"), 3)...)
		picks = append(picks, r.sample(r.byType("core"), 2)...)
	case "weight_loss":
		picks = append(picks, r.sample(r.byType("cardio"), 2)...)
		picks = append(picks, r.sample(r.byType("strength", "core"), 3)...)
	case "endurance":
		picks = append(picks, r.sample(r.byType("cardio"), 4)...)
		if core := r.byType("core"); len(core) > 0 && len(picks) < 5 {
			picks = append(picks, core[0])
		}
	default:
		picks = r.sample(r.catalog, 5)
	}

	seen := map[string]bool{}
	unique := make([]Workout, 0, 5)
	for _, w := range picks {
		if seen[w.Name] {
			continue
		}
		seen[w.Name] = true
		unique = append(unique, w)
	}
	if len(unique) > 5 {
		unique = unique[:5]
	}

	if len(unique) < 3 {
		fill := excluding(r.catalog, seen)
		unique = append(unique, r.sample(fill, 3-len(unique))...)
	}
	return unique
}

func (r *Recommender) byType(types ...string) []Workout {
	want := map[string]bool{}
	for _, t := range types {
		want[t] = true
	}
	var out []Workout
	for _, w := range r.catalog {
		if want[w.Type] {
			out = append(out, w)
		}
	}
	return out
}

func (r *Recommender) sample(pool []Workout, n int) []Workout {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}
	idx := r.rnd.Perm(len(pool))[:n]
	out := make([]Workout, 0, n)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}

func excluding(pool []Workout, skip map[string]bool) []Workout {
	var out []Workout
	for _, w := range pool {
		if !skip[w.Name] {
			out = append(out, w)
		}
	}
	return out
}
