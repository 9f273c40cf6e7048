// ABOUTME: Tests for shopping list aggregation.
// ABOUTME: Verifies merging, ordering independence, and skip behavior.
package planner

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/harperreed/mealplan/internal/models"
)

func mealWithIngredients(lines ...string) *models.Meal {
	return models.NewMeal("test meal", models.MealLunch).WithIngredients(lines)
}

func weekWithMeals(t *testing.T, catalog MealCatalog, ids ...uuid.UUID) *models.WeekPlan {
	t.Helper()
	week := models.NewWeekPlan(models.WeekStart(models.DateOnly(testDate())), models.DefaultTargetCalories)
	for i, id := range ids {
		week.Days[i%7].Assign(models.SlotLunch, id)
		if week.Days[i%7].Lunch == nil {
			t.Fatal("assign failed")
		}
	}
	return week
}

func TestBuildShoppingListMergesMatchingLines(t *testing.T) {
	m1 := mealWithIngredients("1 cup rice")
	m2 := mealWithIngredients("1 cup rice")
	catalog := MealCatalog{m1.ID: m1, m2.ID: m2}

	items := BuildShoppingList(weekWithMeals(t, catalog, m1.ID, m2.ID), catalog)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	got := items[0]
	if got.Quantity != 2 {
		t.Errorf("Quantity = %v, want 2", got.Quantity)
	}
	if got.Unit != "cup" {
		t.Errorf("Unit = %q, want cup", got.Unit)
	}
	if got.Name != "rice" {
		t.Errorf("Name = %q, want rice", got.Name)
	}
	if got.Checked {
		t.Error("new items must start unchecked")
	}
}

func TestBuildShoppingListSeparatesByUnit(t *testing.T) {
	m := mealWithIngredients("1 cup rice", "200 g rice")
	catalog := MealCatalog{m.ID: m}

	items := BuildShoppingList(weekWithMeals(t, catalog, m.ID), catalog)
	if len(items) != 2 {
		t.Fatalf("expected 2 items for differing units, got %d", len(items))
	}
}

func TestBuildShoppingListFallbackLines(t *testing.T) {
	m := mealWithIngredients("salt to taste", "salt to taste")
	catalog := MealCatalog{m.ID: m}

	items := BuildShoppingList(weekWithMeals(t, catalog, m.ID), catalog)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Unit != "item" || items[0].Quantity != 2 {
		t.Errorf("got %v %q, want 2 item", items[0].Quantity, items[0].Unit)
	}
	if items[0].Name != "salt to taste" {
		t.Errorf("Name = %q, want full line", items[0].Name)
	}
}

func TestBuildShoppingListSkipsMissingMeals(t *testing.T) {
	m := mealWithIngredients("2 tbsp butter")
	catalog := MealCatalog{m.ID: m}
	week := weekWithMeals(t, catalog, m.ID)
	week.Days[3].Assign(models.SlotDinner, uuid.New()) // deleted meal

	items := BuildShoppingList(week, catalog)
	if len(items) != 1 {
		t.Fatalf("expected unresolved meal to be skipped, got %d items", len(items))
	}
}

func TestBuildShoppingListOrderIndependentTotals(t *testing.T) {
	meals := []*models.Meal{
		mealWithIngredients("1 cup rice", "2 tbsp soy sauce"),
		mealWithIngredients("0.5 cup rice"),
		mealWithIngredients("3 tbsp soy sauce", "1 cup rice"),
	}
	catalog := MealCatalog{}
	for _, m := range meals {
		catalog[m.ID] = m
	}

	totals := func(items []*models.ShoppingListItem) map[string]float64 {
		out := make(map[string]float64)
		for _, it := range items {
			out[it.Name+"|"+it.Unit] = it.Quantity
		}
		return out
	}

	ids := []uuid.UUID{meals[0].ID, meals[1].ID, meals[2].ID}
	want := totals(BuildShoppingList(weekWithMeals(t, catalog, ids...), catalog))

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 5; trial++ {
		shuffled := append([]uuid.UUID(nil), ids...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		got := totals(BuildShoppingList(weekWithMeals(t, catalog, shuffled...), catalog))
		if len(got) != len(want) {
			t.Fatalf("trial %d: %d keys, want %d", trial, len(got), len(want))
		}
		for k, v := range want {
			if got[k] != v {
				t.Errorf("trial %d: total for %s = %v, want %v", trial, k, got[k], v)
			}
		}
	}
}

func TestBuildShoppingListPreservesFirstAppearanceOrder(t *testing.T) {
	m := mealWithIngredients("1 cup oats", "2 tbsp honey", "0.5 cup oats")
	catalog := MealCatalog{m.ID: m}

	items := BuildShoppingList(weekWithMeals(t, catalog, m.ID), catalog)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "oats" || items[1].Name != "honey" {
		t.Errorf("order = [%s, %s], want [oats, honey]", items[0].Name, items[1].Name)
	}
	if items[0].Quantity != 1.5 {
		t.Errorf("oats Quantity = %v, want 1.5", items[0].Quantity)
	}
}

func TestBuildShoppingListFreshIDs(t *testing.T) {
	m := mealWithIngredients("1 cup rice")
	catalog := MealCatalog{m.ID: m}
	week := weekWithMeals(t, catalog, m.ID)

	first := BuildShoppingList(week, catalog)
	second := BuildShoppingList(week, catalog)
	if first[0].ID == second[0].ID {
		t.Error("regenerated list must assign fresh identifiers")
	}
}

func TestBuildShoppingListNilWeek(t *testing.T) {
	if items := BuildShoppingList(nil, MealCatalog{}); len(items) != 0 {
		t.Errorf("expected empty list for nil week, got %d items", len(items))
	}
}
