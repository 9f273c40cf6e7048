// ABOUTME: NutritionTotals value type for per-day macro sums.
// ABOUTME: Carries the fixed kcal-per-gram macro conversion factors.
package models

// Kcal per gram of each macronutrient.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// NutritionTotals is the summed nutrition of a set of meals.
type NutritionTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// Add returns the totals with one meal's macros added.
func (n NutritionTotals) Add(m *Meal) NutritionTotals {
	n.Calories += m.Calories
	n.Protein += m.Protein
	n.Carbs += m.Carbs
	n.Fat += m.Fat
	return n
}

// MacroCalories returns the kcal contribution of each macro.
func (n NutritionTotals) MacroCalories() (protein, carbs, fat float64) {
	return n.Protein * KcalPerGramProtein,
		n.Carbs * KcalPerGramCarbs,
		n.Fat * KcalPerGramFat
}
