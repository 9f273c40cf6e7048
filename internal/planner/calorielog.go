// ABOUTME: Calorie log transitions: randomized seeding and daily append.
// ABOUTME: Today and randomness are injected so the transitions are testable.
package planner

import (
	"math/rand"
	"time"

	"github.com/harperreed/mealplan/internal/models"
)

// Seed parameters.
const (
	seedDays   = 30
	seedFloor  = 1200
	seedJitter = 150
)

// SeedCalorieLog generates a 30-entry history covering the 29 days
// before today through today. Each day logs the target calories plus
// uniform jitter in [-150, +150], floored at 1200. The series is
// random on every call; callers must invoke it only on the
// empty-log transition.
func SeedCalorieLog(targetCalories int, today time.Time, rng *rand.Rand) []models.CalorieEntry {
	day := models.DateOnly(today)
	entries := make([]models.CalorieEntry, 0, seedDays)
	for i := seedDays - 1; i >= 0; i-- {
		calories := float64(targetCalories + rng.Intn(2*seedJitter+1) - seedJitter)
		if calories < seedFloor {
			calories = seedFloor
		}
		entries = append(entries, models.CalorieEntry{
			Date:     day.AddDate(0, 0, -i),
			Calories: calories,
		})
	}
	return entries
}

// AppendToday computes today's nutrition total and returns the entry
// to append, or ok=false when the log already holds an entry for
// today's calendar date. The existence check and the returned entry
// are evaluated against the same log snapshot; the caller persists
// the result in the same step. A day with no meals logs zero.
func AppendToday(log []models.CalorieEntry, day *models.DayPlan, catalog MealCatalog, today time.Time) (models.CalorieEntry, bool) {
	for _, e := range log {
		if models.SameDay(e.Date, today) {
			return models.CalorieEntry{}, false
		}
	}
	totals := DayNutrition(day, catalog)
	return models.CalorieEntry{
		Date:     models.DateOnly(today),
		Calories: totals.Calories,
	}, true
}
