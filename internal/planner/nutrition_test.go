// ABOUTME: Tests for daily nutrition aggregation.
// ABOUTME: Verifies zero defaults, snack summing, and unresolved skips.
package planner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/harperreed/mealplan/internal/models"
)

func TestDayNutritionEmptyDay(t *testing.T) {
	day := models.NewDayPlan(testDate())
	got := DayNutrition(day, MealCatalog{})
	if got != (models.NutritionTotals{}) {
		t.Errorf("empty day totals = %+v, want all zero", got)
	}
}

func TestDayNutritionNilDay(t *testing.T) {
	got := DayNutrition(nil, MealCatalog{})
	if got != (models.NutritionTotals{}) {
		t.Errorf("nil day totals = %+v, want all zero", got)
	}
}

func TestDayNutritionSumsAllSlots(t *testing.T) {
	breakfast := models.NewMeal("oatmeal", models.MealBreakfast).WithMacros(350, 12, 60, 8)
	dinner := models.NewMeal("salmon", models.MealDinner).WithMacros(600, 40, 30, 35)
	snack1 := models.NewMeal("apple", models.MealSnack).WithMacros(95, 0.5, 25, 0.3)
	snack2 := models.NewMeal("almonds", models.MealSnack).WithMacros(160, 6, 6, 14)

	catalog := MealCatalog{
		breakfast.ID: breakfast,
		dinner.ID:    dinner,
		snack1.ID:    snack1,
		snack2.ID:    snack2,
	}

	day := models.NewDayPlan(testDate())
	day.Assign(models.SlotBreakfast, breakfast.ID)
	day.Assign(models.SlotDinner, dinner.ID)
	day.Assign(models.SlotSnack, snack1.ID)
	day.Assign(models.SlotSnack, snack2.ID)

	got := DayNutrition(day, catalog)
	if got.Calories != 1205 {
		t.Errorf("Calories = %v, want 1205", got.Calories)
	}
	if got.Protein != 58.5 {
		t.Errorf("Protein = %v, want 58.5", got.Protein)
	}
	if got.Carbs != 121 {
		t.Errorf("Carbs = %v, want 121", got.Carbs)
	}
	if got.Fat != 57.3 {
		t.Errorf("Fat = %v, want 57.3", got.Fat)
	}
}

func TestDayNutritionSkipsUnresolvedMeals(t *testing.T) {
	lunch := models.NewMeal("wrap", models.MealLunch).WithMacros(450, 25, 40, 18)
	catalog := MealCatalog{lunch.ID: lunch}

	day := models.NewDayPlan(testDate())
	day.Assign(models.SlotLunch, lunch.ID)
	day.Assign(models.SlotDinner, uuid.New()) // no longer in catalog

	got := DayNutrition(day, catalog)
	if got.Calories != 450 {
		t.Errorf("Calories = %v, want 450 (unresolved meal contributes zero)", got.Calories)
	}
}
