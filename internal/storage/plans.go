// ABOUTME: Week planning operations for SQLite storage.
// ABOUTME: Plan slots are rows keyed by (date, slot, position).
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/mealplan/internal/models"
)

// dateFormat is the day-granularity key used for plan and log rows.
const dateFormat = "2006-01-02"

// AssignMeal places a meal into a day's slot. Breakfast, lunch, and
// dinner are singular and get replaced; snacks append at the next
// position.
func (d *DB) AssignMeal(date time.Time, slot models.Slot, mealID uuid.UUID) error {
	day := models.DateOnly(date).Format(dateFormat)

	if slot == models.SlotSnack {
		var next int
		query := `SELECT COALESCE(MAX(position) + 1, 0) FROM plan_slots WHERE date = ? AND slot = ?`
		if err := d.db.QueryRow(query, day, string(slot)).Scan(&next); err != nil {
			return fmt.Errorf("assign snack: %w", err)
		}
		_, err := d.db.Exec(
			`INSERT INTO plan_slots (date, slot, position, meal_id) VALUES (?, ?, ?, ?)`,
			day, string(slot), next, mealID.String(),
		)
		if err != nil {
			return fmt.Errorf("assign snack: %w", err)
		}
		return nil
	}

	_, err := d.db.Exec(
		`INSERT OR REPLACE INTO plan_slots (date, slot, position, meal_id) VALUES (?, ?, 0, ?)`,
		day, string(slot), mealID.String(),
	)
	if err != nil {
		return fmt.Errorf("assign meal: %w", err)
	}
	return nil
}

// ClearSlot removes all assignments in a day's slot.
func (d *DB) ClearSlot(date time.Time, slot models.Slot) error {
	day := models.DateOnly(date).Format(dateFormat)
	_, err := d.db.Exec(`DELETE FROM plan_slots WHERE date = ? AND slot = ?`, day, string(slot))
	if err != nil {
		return fmt.Errorf("clear slot: %w", err)
	}
	return nil
}

// GetDayPlan loads one day's assignments. A day with no rows returns
// an empty plan, never an error.
func (d *DB) GetDayPlan(date time.Time) (*models.DayPlan, error) {
	day := models.DateOnly(date)
	plan := models.NewDayPlan(day)

	query := `
		SELECT slot, meal_id
		FROM plan_slots
		WHERE date = ?
		ORDER BY slot, position
	`
	rows, err := d.db.Query(query, day.Format(dateFormat))
	if err != nil {
		return nil, fmt.Errorf("get day plan: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var slot, mealID string
		if err := rows.Scan(&slot, &mealID); err != nil {
			return nil, fmt.Errorf("scan plan slot: %w", err)
		}
		id, err := uuid.Parse(mealID)
		if err != nil {
			continue // Skip corrupt rows
		}
		plan.Assign(models.Slot(slot), id)
	}

	return plan, rows.Err()
}

// GetWeekPlan loads the seven days starting at the given date along
// with the week's calorie target.
func (d *DB) GetWeekPlan(start time.Time) (*models.WeekPlan, error) {
	weekStart := models.DateOnly(start)
	target, err := d.targetCalories(weekStart)
	if err != nil {
		return nil, err
	}

	week := models.NewWeekPlan(weekStart, target)
	for i := range week.Days {
		day, err := d.GetDayPlan(weekStart.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		week.Days[i] = day
	}
	return week, nil
}

// SetTargetCalories stores the daily calorie target for a week.
func (d *DB) SetTargetCalories(weekStart time.Time, target int) error {
	_, err := d.db.Exec(
		`INSERT OR REPLACE INTO week_targets (week_start, target_calories) VALUES (?, ?)`,
		models.DateOnly(weekStart).Format(dateFormat), target,
	)
	if err != nil {
		return fmt.Errorf("set target calories: %w", err)
	}
	return nil
}

func (d *DB) targetCalories(weekStart time.Time) (int, error) {
	var target int
	query := `SELECT target_calories FROM week_targets WHERE week_start = ?`
	err := d.db.QueryRow(query, weekStart.Format(dateFormat)).Scan(&target)
	if err == sql.ErrNoRows {
		return models.DefaultTargetCalories, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get target calories: %w", err)
	}
	return target, nil
}
