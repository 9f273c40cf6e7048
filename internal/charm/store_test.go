// ABOUTME: Unit tests for Charm-based meal planner storage.
// ABOUTME: Tests key formats and the pure list/plan helpers.
package charm

import (
	"testing"
	"time"

	"github.com/harperreed/mealplan/internal/models"
)

func TestKeyPrefixes(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		expected string
	}{
		{"Meal", MealPrefix, "meal:"},
		{"Day", DayPrefix, "day:"},
		{"Target", TargetPrefix, "target:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prefix != tt.expected {
				t.Errorf("Expected %s = %q, got %q", tt.name, tt.expected, tt.prefix)
			}
		})
	}
}

func TestDayKeyUsesDateOnly(t *testing.T) {
	date := time.Date(2025, 3, 12, 18, 45, 0, 0, time.UTC)
	if got := dayKey(date); got != "day:2025-03-12" {
		t.Errorf("dayKey = %q, want day:2025-03-12", got)
	}
}

func TestFindShoppingItem(t *testing.T) {
	a := models.NewShoppingListItem("rice", 2, "cup")
	b := models.NewShoppingListItem("oats", 1, "cup")
	items := []*models.ShoppingListItem{a, b}

	got, err := findShoppingItem(items, a.ID.String()[:8])
	if err != nil {
		t.Fatalf("findShoppingItem failed: %v", err)
	}
	if got.ID != a.ID {
		t.Errorf("found wrong item: %v", got.ID)
	}

	if _, err := findShoppingItem(items, "ffffffff"); err == nil {
		t.Error("expected error for unknown prefix")
	}
	if _, err := findShoppingItem(items, ""); err == nil {
		t.Error("expected ambiguity error for empty prefix")
	}
}

func TestRemoveMealFromDay(t *testing.T) {
	c := &Client{}
	meal := models.NewMeal("snacks", models.MealSnack)
	other := models.NewMeal("other", models.MealSnack)

	day := models.NewDayPlan(time.Now())
	day.Assign(models.SlotBreakfast, meal.ID)
	day.Assign(models.SlotSnack, meal.ID)
	day.Assign(models.SlotSnack, other.ID)

	c.removeMealFromDay(day, meal.ID)

	if day.Breakfast != nil {
		t.Error("breakfast reference should be removed")
	}
	if len(day.Snacks) != 1 || day.Snacks[0] != other.ID {
		t.Errorf("Snacks = %v, want only the other meal", day.Snacks)
	}
}
