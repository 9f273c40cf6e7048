// ABOUTME: Daily nutrition aggregation over one day's assignments.
// ABOUTME: Absent slots and unresolved meals contribute zero.
package planner

import "github.com/harperreed/mealplan/internal/models"

// DayNutrition sums macros and calories over the day's breakfast,
// lunch, dinner, and snacks. Total function: a nil or empty day yields
// all zeroes, and meals missing from the catalog are skipped.
func DayNutrition(day *models.DayPlan, catalog MealCatalog) models.NutritionTotals {
	var totals models.NutritionTotals
	if day == nil {
		return totals
	}
	for _, mealID := range day.MealIDs() {
		if meal, ok := catalog[mealID]; ok {
			totals = totals.Add(meal)
		}
	}
	return totals
}
