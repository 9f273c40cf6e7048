// ABOUTME: Week planning operations for Charm KV storage.
// ABOUTME: Each day is one JSON value keyed by its calendar date.
package charm

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/mealplan/internal/models"
)

const dateFormat = "2006-01-02"

func dayKey(date time.Time) string {
	return DayPrefix + models.DateOnly(date).Format(dateFormat)
}

// AssignMeal places a meal into a day's slot. Breakfast, lunch, and
// dinner are replaced; snacks append.
func (c *Client) AssignMeal(date time.Time, slot models.Slot, mealID uuid.UUID) error {
	day, err := c.GetDayPlan(date)
	if err != nil {
		return err
	}
	day.Assign(slot, mealID)
	return c.saveDay(day)
}

// ClearSlot removes all assignments in a day's slot.
func (c *Client) ClearSlot(date time.Time, slot models.Slot) error {
	day, err := c.GetDayPlan(date)
	if err != nil {
		return err
	}
	day.Clear(slot)
	if day.IsEmpty() {
		return c.delete(dayKey(date))
	}
	return c.saveDay(day)
}

// GetDayPlan loads one day's assignments. A day with no stored value
// returns an empty plan, never an error.
func (c *Client) GetDayPlan(date time.Time) (*models.DayPlan, error) {
	data, err := c.get(dayKey(date))
	if err != nil {
		return models.NewDayPlan(date), nil
	}
	day, err := unmarshalJSON[models.DayPlan](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal day plan: %w", err)
	}
	return day, nil
}

// GetWeekPlan loads the seven days starting at the given date along
// with the week's calorie target.
func (c *Client) GetWeekPlan(start time.Time) (*models.WeekPlan, error) {
	weekStart := models.DateOnly(start)

	target := models.DefaultTargetCalories
	if data, err := c.get(TargetPrefix + weekStart.Format(dateFormat)); err == nil {
		if parsed, err := strconv.Atoi(string(data)); err == nil {
			target = parsed
		}
	}

	week := models.NewWeekPlan(weekStart, target)
	for i := range week.Days {
		day, err := c.GetDayPlan(weekStart.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		week.Days[i] = day
	}
	return week, nil
}

// SetTargetCalories stores the daily calorie target for a week.
func (c *Client) SetTargetCalories(weekStart time.Time, target int) error {
	key := TargetPrefix + models.DateOnly(weekStart).Format(dateFormat)
	return c.set(key, []byte(strconv.Itoa(target)))
}

func (c *Client) saveDay(day *models.DayPlan) error {
	data, err := marshalJSON(day)
	if err != nil {
		return fmt.Errorf("marshal day plan: %w", err)
	}
	return c.set(dayKey(day.Date), data)
}

// listDays loads every stored day plan.
func (c *Client) listDays() ([]*models.DayPlan, error) {
	allData, err := c.listByPrefix(DayPrefix)
	if err != nil {
		return nil, err
	}
	var days []*models.DayPlan
	for _, data := range allData {
		day, err := unmarshalJSON[models.DayPlan](data)
		if err != nil {
			continue // Skip invalid entries
		}
		days = append(days, day)
	}
	return days, nil
}
