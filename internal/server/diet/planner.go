// Package diet builds weekly meal plans from the recipe catalog.
package diet

import (
	"errors"
	"math"
	"math/rand"
	"strings"
)

var (
	ErrNoRecipes        = errors.New("no suitable food items available")
	ErrNotEnoughVariety = errors.New("not enough diverse food items for your preferences")
)

// Preferences is what the planner needs from a user's profile.
type Preferences struct {
	TargetCalories    int
	DietPreference    string
	PreferredCuisines string
}

// Meal is one scheduled dish.
type Meal struct {
	Name     string
	Calories int
	Protein  int
	Carbs    int
	Fat      int
	Cuisine  string
}

// DailySummary is one day of the plan: chosen dishes per meal type plus
// the day's calorie total.
type DailySummary struct {
	Meals         map[string][]Meal
	TotalCalories int
}

// Day pairs a day number (1..7) with its summary.
type Day struct {
	Day     int
	Summary DailySummary
}

// MealTypes lists the meal slots in serving order.
var MealTypes = []string{"breakfast", "lunch", "dinner"}

// mealSplit distributes the daily calorie target across the slots.
var mealSplit = map[string]float64{"breakfast": 0.25, "lunch": 0.40, "dinner": 0.35}

// tolerance is how far (as a fraction of the slot target) a dish may
// stray and still count as a calorie match.
const tolerance = 0.35

const defaultTargetCalories = 2000

// minPoolSize is the smallest recipe pool a week can be planned from.
const minPoolSize = 7

// Planner generates weekly plans from a fixed recipe pool.
type Planner struct {
	recipes []Recipe
	rnd     *rand.Rand
}

// NewPlanner builds a planner over the given pool. Dishes at or below 50
// calories are dropped up front, they are condiments rather than meals.
func NewPlanner(recipes []Recipe, seed int64) *Planner {
	cleaned := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.Calories > 50 {
			cleaned = append(cleaned, r)
		}
	}
	return &Planner{recipes: cleaned, rnd: rand.New(rand.NewSource(seed))}
}

// Weekly plans seven days for the given preferences.
//
// The pool is narrowed twice, each narrowing falling back to the wider
// pool when it would empty the selection: first by diet preference
// (vegetarian admits vegan dishes, vegan admits only vegan, and
// non-vegetarian excludes both), then by preferred cuisines. Dishes are
// not repeated within a day, and repeats across the week are avoided as
// long as the pool allows.
func (p *Planner) Weekly(prefs Preferences) ([]Day, error) {
	if len(p.recipes) == 0 {
		return nil, ErrNoRecipes
	}

	pool := filterByDiet(p.recipes, prefs.DietPreference)
	if len(pool) == 0 {
		pool = p.recipes
	}
	if cuisines := splitCuisines(prefs.PreferredCuisines); len(cuisines) > 0 {
		if byCuisine := filterByCuisine(pool, cuisines); len(byCuisine) > 0 {
			pool = byCuisine
		}
	}
	if len(pool) < minPoolSize {
		return nil, ErrNotEnoughVariety
	}

	target := prefs.TargetCalories
	if target <= 0 {
		target = defaultTargetCalories
	}

	week := make([]Day, 0, 7)
	usedThisWeek := map[string]bool{}
	for dayNum := 1; dayNum <= 7; dayNum++ {
		shuffled := make([]Recipe, len(pool))
		copy(shuffled, pool)
		p.rnd.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		summary, usedToday := p.singleDay(target, shuffled, usedThisWeek)
		week = append(week, Day{Day: dayNum, Summary: summary})
		for name := range usedToday {
			usedThisWeek[name] = true
		}
	}
	return week, nil
}

func (p *Planner) singleDay(targetCalories int, pool []Recipe, usedThisWeek map[string]bool) (DailySummary, map[string]bool) {
	usedToday := map[string]bool{}
	meals := map[string][]Meal{}

	for _, mealType := range MealTypes {
		slotTarget := float64(targetCalories) * mealSplit[mealType]

		candidates := excluding(pool, func(r Recipe) bool {
			return usedToday[r.Name] || usedThisWeek[r.Name]
		})
		if len(candidates) == 0 {
			candidates = excluding(pool, func(r Recipe) bool { return usedToday[r.Name] })
		}
		if len(candidates) == 0 {
			candidates = pool
		}

		chosen, ok := p.pick(candidates, slotTarget)
		if !ok {
			meals[mealType] = []Meal{{Name: "N/A - More variety needed", Cuisine: "N/A"}}
			continue
		}
		usedToday[chosen.Name] = true
		meals[mealType] = []Meal{{
			Name:     chosen.Name,
			Calories: chosen.Calories,
			Protein:  chosen.Protein,
			Carbs:    chosen.Carbs,
			Fat:      chosen.Fat,
			Cuisine:  chosen.Cuisine,
		}}
	}

	total := 0
	for _, options := range meals {
		if len(options) > 0 && options[0].Calories > 0 {
			total += options[0].Calories
		}
	}
	return DailySummary{Meals: meals, TotalCalories: total}, usedToday
}

// pick chooses a dish for a slot: a random dish within calorie tolerance
// when one exists, otherwise the closest match.
func (p *Planner) pick(candidates []Recipe, slotTarget float64) (Recipe, bool) {
	if len(candidates) == 0 {
		return Recipe{}, false
	}
	var withinTolerance []Recipe
	closest := candidates[0]
	closestDiff := math.Abs(float64(closest.Calories) - slotTarget)
	for _, r := range candidates {
		diff := math.Abs(float64(r.Calories) - slotTarget)
		if diff <= slotTarget*tolerance {
			withinTolerance = append(withinTolerance, r)
		}
		if diff < closestDiff {
			closest = r
			closestDiff = diff
		}
	}
	if len(withinTolerance) > 0 {
		return withinTolerance[p.rnd.Intn(len(withinTolerance))], true
	}
	return closest, true
}

func filterByDiet(recipes []Recipe, pref string) []Recipe {
	switch strings.ToLower(pref) {
	case "vegetarian":
		return excluding(recipes, func(r Recipe) bool {
			t := strings.ToLower(r.DietType)
			return t != "vegetarian" && t != "vegan"
		})
	case "vegan":
		return excluding(recipes, func(r Recipe) bool {
			return strings.ToLower(r.DietType) != "vegan"
		})
	case "non-vegetarian":
		return excluding(recipes, func(r Recipe) bool {
			t := strings.ToLower(r.DietType)
			return t == "vegetarian" || t == "vegan"
		})
	default:
		return recipes
	}
}

func filterByCuisine(recipes []Recipe, cuisines []string) []Recipe {
	want := map[string]bool{}
	for _, c := range cuisines {
		want[c] = true
	}
	return excluding(recipes, func(r Recipe) bool {
		return !want[strings.ToLower(r.Cuisine)]
	})
}

func splitCuisines(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if c := strings.ToLower(strings.TrimSpace(part)); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func excluding(recipes []Recipe, drop func(Recipe) bool) []Recipe {
	var out []Recipe
	for _, r := range recipes {
		if !drop(r) {
			out = append(out, r)
		}
	}
	return out
}
