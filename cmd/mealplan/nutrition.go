// ABOUTME: CLI command for daily nutrition totals.
// ABOUTME: Sums a day's assigned meals against the week's calorie target.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/mealplan/internal/models"
	"github.com/harperreed/mealplan/internal/planner"
	"github.com/spf13/cobra"
)

var nutritionCmd = &cobra.Command{
	Use:     "nutrition [date]",
	Aliases: []string{"n"},
	Short:   "Show a day's nutrition totals",
	Long: `Show calorie and macro totals for a day's assigned meals.

Totals are compared against the week's daily calorie target. Macro
calories use 4 kcal/g for protein and carbs, 9 kcal/g for fat.

EXAMPLES:

  mealplan nutrition              # Today
  mealplan nutrition 2025-03-14   # A specific day`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now()
		if len(args) > 0 {
			var err error
			date, err = parseDate(args[0])
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", args[0])
			}
		}

		day, err := repo.GetDayPlan(date)
		if err != nil {
			return fmt.Errorf("failed to load day plan: %w", err)
		}
		week, err := repo.GetWeekPlan(models.WeekStart(date))
		if err != nil {
			return fmt.Errorf("failed to load week plan: %w", err)
		}
		catalog, err := repo.MealCatalog()
		if err != nil {
			return fmt.Errorf("failed to load meals: %w", err)
		}

		totals := planner.DayNutrition(day, catalog)

		fmt.Println(date.Format("Monday 2006-01-02"))
		fmt.Printf("Calories: %.0f / %d kcal", totals.Calories, week.TargetCalories)
		remaining := float64(week.TargetCalories) - totals.Calories
		if remaining >= 0 {
			fmt.Printf(" %s\n", color.New(color.Faint).Sprintf("(%.0f remaining)", remaining))
		} else {
			fmt.Printf(" %s\n", color.RedString("(%.0f over)", -remaining))
		}

		fmt.Printf("Protein:  %.1f g (%.0f kcal)\n", totals.Protein, totals.Protein*models.KcalPerGramProtein)
		fmt.Printf("Carbs:    %.1f g (%.0f kcal)\n", totals.Carbs, totals.Carbs*models.KcalPerGramCarbs)
		fmt.Printf("Fat:      %.1f g (%.0f kcal)\n", totals.Fat, totals.Fat*models.KcalPerGramFat)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(nutritionCmd)
}
