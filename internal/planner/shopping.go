// ABOUTME: Shopping list aggregation over a week's meal assignments.
// ABOUTME: Merges parsed ingredient lines on the (name, unit) pair.
package planner

import (
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/mealplan/internal/ingredient"
	"github.com/harperreed/mealplan/internal/models"
)

// MealCatalog resolves meal IDs to meals. Built by the caller from
// storage; missing entries are skipped during aggregation.
type MealCatalog map[uuid.UUID]*models.Meal

// aggregationKey decides whether two parsed lines refer to the same
// shopping item. A struct key avoids the collisions a delimiter-joined
// string key would have for names containing the delimiter.
type aggregationKey struct {
	name string
	unit string
}

// BuildShoppingList walks every meal assigned across the week, parses
// each ingredient line, and merges matching lines into a deduplicated
// list. Totals are independent of traversal order; item order follows
// first appearance. The result replaces any previous list, checked
// items included.
func BuildShoppingList(week *models.WeekPlan, catalog MealCatalog) []*models.ShoppingListItem {
	var order []aggregationKey
	totals := make(map[aggregationKey]float64)

	if week != nil {
		for _, day := range week.Days {
			if day == nil {
				continue
			}
			for _, mealID := range day.MealIDs() {
				meal, ok := catalog[mealID]
				if !ok {
					// Meal deleted after being scheduled.
					continue
				}
				for _, line := range meal.Ingredients {
					if strings.TrimSpace(line) == "" {
						continue
					}
					p := ingredient.Parse(line)
					key := aggregationKey{name: p.Name, unit: p.Unit}
					if _, seen := totals[key]; !seen {
						order = append(order, key)
					}
					totals[key] += p.Quantity
				}
			}
		}
	}

	items := make([]*models.ShoppingListItem, 0, len(order))
	for _, key := range order {
		items = append(items, models.NewShoppingListItem(key.name, totals[key], key.unit))
	}
	return items
}
