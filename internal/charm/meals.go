// ABOUTME: Meal catalog CRUD operations for Charm KV storage.
// ABOUTME: Uses type-prefixed keys and client-side filtering.
package charm

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/harperreed/mealplan/internal/models"
	"github.com/harperreed/mealplan/internal/planner"
	"github.com/harperreed/mealplan/internal/storage"
)

// Compile-time check that Client implements the storage Repository.
var _ storage.Repository = (*Client)(nil)

// CreateMeal stores a new meal in the KV store.
func (c *Client) CreateMeal(m *models.Meal) error {
	data, err := marshalJSON(m)
	if err != nil {
		return fmt.Errorf("marshal meal: %w", err)
	}
	return c.set(MealPrefix+m.ID.String(), data)
}

// GetMeal retrieves a meal by ID or ID prefix.
func (c *Client) GetMeal(idOrPrefix string) (*models.Meal, error) {
	data, err := c.getByIDPrefix(MealPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get meal: %w", err)
	}

	meal, err := unmarshalJSON[models.Meal](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal meal: %w", err)
	}
	return meal, nil
}

// ListMeals retrieves meals with optional filtering by type.
// Results are sorted by CreatedAt descending (most recent first).
func (c *Client) ListMeals(mealType *models.MealType, limit int) ([]*models.Meal, error) {
	allData, err := c.listByPrefix(MealPrefix)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	var meals []*models.Meal
	for _, data := range allData {
		m, err := unmarshalJSON[models.Meal](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if mealType != nil && m.Type != *mealType {
			continue
		}
		meals = append(meals, m)
	}

	sort.Slice(meals, func(i, j int) bool {
		return meals[i].CreatedAt.After(meals[j].CreatedAt)
	})

	if limit > 0 && len(meals) > limit {
		meals = meals[:limit]
	}

	return meals, nil
}

// DeleteMeal removes a meal by ID or prefix, honoring the plan guard.
func (c *Client) DeleteMeal(idOrPrefix string, force bool) error {
	meal, err := c.GetMeal(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}

	days, err := c.listDays()
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}

	var referencing []*models.DayPlan
	for _, day := range days {
		for _, id := range day.MealIDs() {
			if id == meal.ID {
				referencing = append(referencing, day)
				break
			}
		}
	}

	if len(referencing) > 0 {
		if !force {
			return fmt.Errorf("delete meal %s: %w", idOrPrefix, storage.ErrMealInUse)
		}
		for _, day := range referencing {
			c.removeMealFromDay(day, meal.ID)
			if err := c.saveDay(day); err != nil {
				return fmt.Errorf("delete meal assignments: %w", err)
			}
		}
	}

	return c.delete(MealPrefix + meal.ID.String())
}

// MealCatalog loads all meals keyed by ID for the aggregators.
func (c *Client) MealCatalog() (planner.MealCatalog, error) {
	meals, err := c.ListMeals(nil, 0)
	if err != nil {
		return nil, err
	}
	catalog := make(planner.MealCatalog, len(meals))
	for _, m := range meals {
		catalog[m.ID] = m
	}
	return catalog, nil
}

func (c *Client) removeMealFromDay(day *models.DayPlan, mealID uuid.UUID) {
	if day.Breakfast != nil && *day.Breakfast == mealID {
		day.Breakfast = nil
	}
	if day.Lunch != nil && *day.Lunch == mealID {
		day.Lunch = nil
	}
	if day.Dinner != nil && *day.Dinner == mealID {
		day.Dinner = nil
	}
	snacks := day.Snacks[:0]
	for _, id := range day.Snacks {
		if id != mealID {
			snacks = append(snacks, id)
		}
	}
	day.Snacks = snacks
}
