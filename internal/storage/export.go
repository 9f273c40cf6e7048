// ABOUTME: Export and import functionality for meal planner data.
// ABOUTME: Versioned envelope with JSON and YAML encodings.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/mealplan/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for meal planner data.
type ExportData struct {
	Version      string                     `json:"version" yaml:"version"`
	ExportedAt   time.Time                  `json:"exported_at" yaml:"exported_at"`
	Tool         string                     `json:"tool" yaml:"tool"`
	Meals        []*models.Meal             `json:"meals" yaml:"meals"`
	Days         []*models.DayPlan          `json:"days" yaml:"days"`
	Targets      map[string]int             `json:"targets" yaml:"targets"`
	Profile      *models.UserProfile        `json:"profile" yaml:"profile"`
	ShoppingList []*models.ShoppingListItem `json:"shopping_list" yaml:"shopping_list"`
}

// JSON encodes the export as indented JSON.
func (e *ExportData) JSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// YAML encodes the export as YAML.
func (e *ExportData) YAML() ([]byte, error) {
	return yaml.Marshal(e)
}

// DecodeExport parses a JSON export produced by JSON().
func DecodeExport(data []byte) (*ExportData, error) {
	var e ExportData
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	return &e, nil
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	meals, err := d.ListMeals(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	days, err := d.listPlanDays()
	if err != nil {
		return nil, err
	}

	targets, err := d.listTargets()
	if err != nil {
		return nil, err
	}

	profile, err := d.GetProfile()
	if err != nil {
		return nil, err
	}

	items, err := d.ListShoppingItems()
	if err != nil {
		return nil, err
	}

	return &ExportData{
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
func (d *DB) ImportData(data *ExportData) error {
	for _, m := range data.Meals {
		if err := d.CreateMeal(m); err != nil {
			return fmt.Errorf("import meal: %w", err)
		}
	}

	for _, day := range data.Days {
		if day.Breakfast != nil {
			if err := d.AssignMeal(day.Date, models.SlotBreakfast, *day.Breakfast); err != nil {
				return fmt.Errorf("import plan: %w", err)
			}
		}
		if day.Lunch != nil {
			if err := d.AssignMeal(day.Date, models.SlotLunch, *day.Lunch); err != nil {
				return fmt.Errorf("import plan: %w", err)
			}
		}
		if day.Dinner != nil {
			if err := d.AssignMeal(day.Date, models.SlotDinner, *day.Dinner); err != nil {
				return fmt.Errorf("import plan: %w", err)
			}
		}
		for _, snack := range day.Snacks {
			if err := d.AssignMeal(day.Date, models.SlotSnack, snack); err != nil {
				return fmt.Errorf("import plan: %w", err)
			}
		}
	}

	for weekStart, target := range data.Targets {
		t, err := time.Parse(dateFormat, weekStart)
		if err != nil {
			continue // Skip malformed keys
		}
		if err := d.SetTargetCalories(t, target); err != nil {
			return fmt.Errorf("import target: %w", err)
		}
	}

	if data.Profile != nil {
		if err := d.SaveProfile(data.Profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
		if len(data.Profile.CalorieLog) > 0 {
			if err := d.ReplaceCalorieLog(data.Profile.CalorieLog); err != nil {
				return fmt.Errorf("import calorie log: %w", err)
			}
		}
	}

	if len(data.ShoppingList) > 0 {
		if err := d.ReplaceShoppingList(data.ShoppingList); err != nil {
			return fmt.Errorf("import shopping list: %w", err)
		}
	}

	return nil
}

// listPlanDays loads every day that has at least one assignment.
func (d *DB) listPlanDays() ([]*models.DayPlan, error) {
	rows, err := d.db.Query(`SELECT DISTINCT date FROM plan_slots ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("list plan days: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var dateStr string
		if err := rows.Scan(&dateStr); err != nil {
			return nil, fmt.Errorf("scan plan date: %w", err)
		}
		t, err := time.Parse(dateFormat, dateStr)
		if err != nil {
			continue
		}
		dates = append(dates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var days []*models.DayPlan
	for _, date := range dates {
		day, err := d.GetDayPlan(date)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

func (d *DB) listTargets() (map[string]int, error) {
	rows, err := d.db.Query(`SELECT week_start, target_calories FROM week_targets`)
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}
	defer rows.Close()

	targets := make(map[string]int)
	for rows.Next() {
		var weekStart string
		var target int
		if err := rows.Scan(&weekStart, &target); err != nil {
			return nil, fmt.Errorf("scan target: %w", err)
		}
		targets[weekStart] = target
	}
	return targets, rows.Err()
}
