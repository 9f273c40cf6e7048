// ABOUTME: Export and import operations for Charm KV storage.
// ABOUTME: Produces the same versioned envelope as the SQLite backend.
package charm

import (
	"fmt"
	"strconv"
	"time"

	"github.com/harperreed/mealplan/internal/storage"
)

// GetAllData retrieves all data for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	meals, err := c.ListMeals(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	days, err := c.listDays()
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}

	targets := make(map[string]int)
	keys, err := c.keysByPrefix(TargetPrefix, "")
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}
	for _, key := range keys {
		data, err := c.get(key)
		if err != nil {
			continue
		}
		if target, err := strconv.Atoi(string(data)); err == nil {
			targets[key[len(TargetPrefix):]] = target
		}
	}

	profile, err := c.GetProfile()
	if err != nil {
		return nil, err
	}

	items, err := c.ListShoppingItems()
	if err != nil {
		return nil, err
	}

	return &storage.ExportData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		Tool:         "mealplan",
		Meals:        meals,
		Days:         days,
		Targets:      targets,
		Profile:      profile,
		ShoppingList: items,
	}, nil
}

// ImportData imports data from an export file.
func (c *Client) ImportData(data *storage.ExportData) error {
	for _, m := range data.Meals {
		if err := c.CreateMeal(m); err != nil {
			return fmt.Errorf("import meal: %w", err)
		}
	}

	for _, day := range data.Days {
		if err := c.saveDay(day); err != nil {
			return fmt.Errorf("import plan: %w", err)
		}
	}

	for weekStart, target := range data.Targets {
		t, err := time.Parse(dateFormat, weekStart)
		if err != nil {
			continue // Skip malformed keys
		}
		if err := c.SetTargetCalories(t, target); err != nil {
			return fmt.Errorf("import target: %w", err)
		}
	}

	if data.Profile != nil {
		if err := c.SaveProfile(data.Profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
		if len(data.Profile.CalorieLog) > 0 {
			if err := c.ReplaceCalorieLog(data.Profile.CalorieLog); err != nil {
				return fmt.Errorf("import calorie log: %w", err)
			}
		}
	}

	if len(data.ShoppingList) > 0 {
		if err := c.ReplaceShoppingList(data.ShoppingList); err != nil {
			return fmt.Errorf("import shopping list: %w", err)
		}
	}

	return nil
}
