// ABOUTME: CLI commands for weekly meal planning.
// ABOUTME: Supports slot assignment, clearing, and day/week views.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/mealplan/internal/models"
	"github.com/harperreed/mealplan/internal/planner"
	"github.com/spf13/cobra"
)

var (
	planAssignDate string
	planClearDate  string
	planTargetDate string
)

var planCmd = &cobra.Command{
	Use:     "plan",
	Aliases: []string{"p"},
	Short:   "Plan meals for the week",
	Long: `Plan meals for the week.

Each day has a breakfast, lunch, and dinner slot plus any number of
snacks. Assigning to a singular slot replaces what was there; snacks
accumulate. Weeks start on Monday.`,
}

var planAssignCmd = &cobra.Command{
	Use:   "assign <meal-id> <slot>",
	Short: "Assign a meal to a slot",
	Long: `Assign a meal to a day's slot.

Slots are breakfast, lunch, dinner, and snack. Breakfast, lunch, and
dinner hold one meal each; assigning again replaces it. Snacks append.

EXAMPLES:

  mealplan plan assign a1b2c3d4 breakfast               # Today's breakfast
  mealplan plan assign a1b2 dinner --date 2025-03-14    # A specific day
  mealplan plan assign f00dcafe snack                   # Add a snack`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidSlot(args[1]) {
			return fmt.Errorf("unknown slot: %s\nValid slots: breakfast, lunch, dinner, snack", args[1])
		}

		date := time.Now()
		if planAssignDate != "" {
			var err error
			date, err = parseDate(planAssignDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", planAssignDate)
			}
		}

		meal, err := repo.GetMeal(args[0])
		if err != nil {
			return fmt.Errorf("meal not found: %s", args[0])
		}

		if err := repo.AssignMeal(date, models.Slot(args[1]), meal.ID); err != nil {
			return fmt.Errorf("failed to assign meal: %w", err)
		}

		color.Green("✓ Assigned %q to %s %s", meal.Name, date.Format("2006-01-02"), args[1])
		return nil
	},
}

var planClearCmd = &cobra.Command{
	Use:   "clear <slot>",
	Short: "Clear a day's slot",
	Long: `Clear a day's slot. Clearing snack removes all snacks for the day.

EXAMPLES:

  mealplan plan clear dinner                    # Clear today's dinner
  mealplan plan clear snack --date 2025-03-14   # Clear a day's snacks`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidSlot(args[0]) {
			return fmt.Errorf("unknown slot: %s\nValid slots: breakfast, lunch, dinner, snack", args[0])
		}

		date := time.Now()
		if planClearDate != "" {
			var err error
			date, err = parseDate(planClearDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", planClearDate)
			}
		}

		if err := repo.ClearSlot(date, models.Slot(args[0])); err != nil {
			return fmt.Errorf("failed to clear slot: %w", err)
		}

		color.Yellow("✗ Cleared %s %s", date.Format("2006-01-02"), args[0])
		return nil
	},
}

var planDayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Show a day's plan",
	Long: `Show a day's assigned meals, defaulting to today.

EXAMPLES:

  mealplan plan day              # Today
  mealplan plan day 2025-03-14   # A specific day`,
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
		catalog, err := repo.MealCatalog()
		if err != nil {
			return fmt.Errorf("failed to load meals: %w", err)
		}

		fmt.Println(date.Format("Monday 2006-01-02"))
		printDayPlan(day, catalog)
		return nil
	},
}

var planWeekCmd = &cobra.Command{
	Use:   "week [date]",
	Short: "Show the week's plan",
	Long: `Show the week's plan, Monday through Sunday.

The week shown is the one containing the given date, defaulting to the
current week.

EXAMPLES:

  mealplan plan week              # This week
  mealplan plan week 2025-03-14   # The week containing March 14`,
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

		week, err := repo.GetWeekPlan(models.WeekStart(date))
		if err != nil {
			return fmt.Errorf("failed to load week plan: %w", err)
		}
		catalog, err := repo.MealCatalog()
		if err != nil {
			return fmt.Errorf("failed to load meals: %w", err)
		}

		fmt.Printf("Week of %s (target %d kcal/day)\n", week.Start.Format("2006-01-02"), week.TargetCalories)
		for _, day := range week.Days {
			if day.IsEmpty() {
				continue
			}
			fmt.Printf("\n%s\n", day.Date.Format("Monday 2006-01-02"))
			printDayPlan(day, catalog)
		}

		return nil
	},
}

var planTargetCmd = &cobra.Command{
	Use:   "target <calories>",
	Short: "Set the week's daily calorie target",
	Long: `Set the daily calorie target for a week.

The target feeds the nutrition view and the weight projection. The
default target is 2000 kcal/day.

EXAMPLES:

  mealplan plan target 1800                    # This week
  mealplan plan target 2200 --date 2025-03-14  # The week containing March 14`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := strconv.Atoi(args[0])
		if err != nil || target <= 0 {
			return fmt.Errorf("invalid calorie target: %s", args[0])
		}

		date := time.Now()
		if planTargetDate != "" {
			date, err = parseDate(planTargetDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", planTargetDate)
			}
		}

		start := models.WeekStart(date)
		if err := repo.SetTargetCalories(start, target); err != nil {
			return fmt.Errorf("failed to set target: %w", err)
		}

		color.Green("✓ Set target to %d kcal/day for week of %s", target, start.Format("2006-01-02"))
		return nil
	},
}

// printDayPlan renders one day's slots with resolved meal names.
func printDayPlan(day *models.DayPlan, catalog planner.MealCatalog) {
	faint := color.New(color.Faint)

	printSlot := func(label string, id *uuid.UUID) {
		if id == nil {
			fmt.Printf("  %s %s\n", padRight(label, 10), faint.Sprint("-"))
			return
		}
		if meal, ok := catalog[*id]; ok {
			fmt.Printf("  %s %s %s\n", padRight(label, 10), meal.Name,
				faint.Sprintf("(%.0f kcal)", meal.Calories))
		} else {
			fmt.Printf("  %s %s\n", padRight(label, 10), faint.Sprint(id.String()[:8]))
		}
	}

	printSlot("breakfast", day.Breakfast)
	printSlot("lunch", day.Lunch)
	printSlot("dinner", day.Dinner)
	for _, id := range day.Snacks {
		snackID := id
		printSlot("snack", &snackID)
	}
}

func parseDate(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"2006-01-02 15:04",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}

func init() {
	planAssignCmd.Flags().StringVar(&planAssignDate, "date", "", "date (YYYY-MM-DD, default today)")
	planClearCmd.Flags().StringVar(&planClearDate, "date", "", "date (YYYY-MM-DD, default today)")
	planTargetCmd.Flags().StringVar(&planTargetDate, "date", "", "any date in the week (default today)")

	planCmd.AddCommand(planAssignCmd)
	planCmd.AddCommand(planClearCmd)
	planCmd.AddCommand(planDayCmd)
	planCmd.AddCommand(planWeekCmd)
	planCmd.AddCommand(planTargetCmd)
	rootCmd.AddCommand(planCmd)
}
