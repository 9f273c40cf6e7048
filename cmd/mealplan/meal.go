// ABOUTME: CLI commands for managing the meal catalog.
// ABOUTME: Supports add, list, show, and delete with ID prefix resolution.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/mealplan/internal/models"
	"github.com/harperreed/mealplan/internal/storage"
	"github.com/spf13/cobra"
)

var (
	mealAddType        string
	mealAddCalories    float64
	mealAddProtein     float64
	mealAddCarbs       float64
	mealAddFat         float64
	mealAddIngredients []string
	mealListType       string
	mealListLimit      int
	mealDeleteForce    bool
)

var mealCmd = &cobra.Command{
	Use:     "meal",
	Aliases: []string{"m"},
	Short:   "Manage the meal catalog",
	Long: `Manage the meal catalog.

Each meal has a type (breakfast, lunch, dinner, snack), calorie and
macro values, and free-text ingredient lines like "1 cup rice". The
ingredient lines feed the shopping list aggregator.`,
}

var mealAddCmd = &cobra.Command{
	Use:     "add <name>",
	Aliases: []string{"a"},
	Short:   "Add a meal to the catalog",
	Long: `Add a meal to the catalog.

Ingredient lines use the form "<quantity> <unit> <name>", e.g.
"1 cup rice" or "200 g chicken". Lines that don't match are kept
as a single item with quantity 1.

EXAMPLES:

  mealplan meal add "Oatmeal" -t breakfast --calories 320 --protein 12
  mealplan meal add "Chicken Rice" -t dinner --calories 550 \
      -i "1 cup rice" -i "200 g chicken"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMealType(mealAddType) {
			return fmt.Errorf("unknown meal type: %s\nValid types: breakfast, lunch, dinner, snack", mealAddType)
		}

		m := models.NewMeal(args[0], models.MealType(mealAddType)).
			WithMacros(mealAddCalories, mealAddProtein, mealAddCarbs, mealAddFat).
			WithIngredients(mealAddIngredients)

		if err := repo.CreateMeal(m); err != nil {
			return fmt.Errorf("failed to create meal: %w", err)
		}

		color.Green("✓ Added %s %q", mealAddType, m.Name)
		fmt.Printf("  %s %.0f kcal\n",
			color.New(color.Faint).Sprint(m.ID.String()[:8]),
			m.Calories)

		return nil
	},
}

var mealListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List meals in the catalog",
	Long: `List meals in the catalog.

OUTPUT FORMAT:

  Each line shows: ID  TYPE  NAME  CALORIES  (MACROS)

  The ID is an 8-character prefix you can use with other commands.

EXAMPLES:

  mealplan meal list                  # Show last 20 meals (all types)
  mealplan meal list --type dinner    # Show only dinners
  mealplan meal list -t snack -n 50   # Show last 50 snacks`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var mealType *models.MealType
		if mealListType != "" {
			if !models.IsValidMealType(mealListType) {
				return fmt.Errorf("unknown meal type: %s", mealListType)
			}
			mt := models.MealType(mealListType)
			mealType = &mt
		}

		meals, err := repo.ListMeals(mealType, mealListLimit)
		if err != nil {
			return fmt.Errorf("failed to list meals: %w", err)
		}

		if len(meals) == 0 {
			fmt.Println("No meals found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range meals {
			fmt.Printf("%s %s %s %.0f kcal %s\n",
				faint.Sprint(m.ID.String()[:8]),
				padRight(string(m.Type), 10),
				padRight(m.Name, 24),
				m.Calories,
				faint.Sprintf("(P %.0f / C %.0f / F %.0f)", m.Protein, m.Carbs, m.Fat))
		}

		return nil
	},
}

var mealShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a meal's details",
	Long: `Show a meal's full details including its ingredient lines.

EXAMPLES:

  mealplan meal show a1b2c3d4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := repo.GetMeal(args[0])
		if err != nil {
			return fmt.Errorf("meal not found: %s", args[0])
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s (%s)\n", faint.Sprint(m.ID.String()[:8]), m.Name, m.Type)
		fmt.Printf("  Calories: %.0f kcal\n", m.Calories)
		fmt.Printf("  Protein:  %.1f g\n", m.Protein)
		fmt.Printf("  Carbs:    %.1f g\n", m.Carbs)
		fmt.Printf("  Fat:      %.1f g\n", m.Fat)

		if len(m.Ingredients) > 0 {
			fmt.Println("  Ingredients:")
			for _, line := range m.Ingredients {
				fmt.Printf("    %s\n", strings.TrimSpace(line))
			}
		}

		return nil
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a meal from the catalog",
	Long: `Delete a meal by its ID or ID prefix.

Deletion fails while the meal is assigned to a plan slot. Use --force
to clear the assignments and delete anyway.

EXAMPLES:

  mealplan meal delete a1b2c3d4           # Delete by 8-char prefix
  mealplan meal rm a1b2 --force           # Clear assignments and delete`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := repo.GetMeal(args[0])
		if err != nil {
			return fmt.Errorf("meal not found: %s", args[0])
		}

		if err := repo.DeleteMeal(args[0], mealDeleteForce); err != nil {
			if errors.Is(err, storage.ErrMealInUse) {
				return fmt.Errorf("meal %q is assigned to a plan; use --force to delete anyway", m.Name)
			}
			return fmt.Errorf("failed to delete meal: %w", err)
		}

		color.Yellow("✗ Deleted %q", m.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(m.ID.String()[:8]))

		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	mealAddCmd.Flags().StringVarP(&mealAddType, "type", "t", "", "meal type (breakfast, lunch, dinner, snack)")
	mealAddCmd.Flags().Float64Var(&mealAddCalories, "calories", 0, "calories (kcal)")
	mealAddCmd.Flags().Float64Var(&mealAddProtein, "protein", 0, "protein (g)")
	mealAddCmd.Flags().Float64Var(&mealAddCarbs, "carbs", 0, "carbs (g)")
	mealAddCmd.Flags().Float64Var(&mealAddFat, "fat", 0, "fat (g)")
	mealAddCmd.Flags().StringArrayVarP(&mealAddIngredients, "ingredient", "i", nil, "ingredient line (repeatable)")
	_ = mealAddCmd.MarkFlagRequired("type")

	mealListCmd.Flags().StringVarP(&mealListType, "type", "t", "", "filter by meal type")
	mealListCmd.Flags().IntVarP(&mealListLimit, "limit", "n", 20, "max number of results")

	mealDeleteCmd.Flags().BoolVar(&mealDeleteForce, "force", false, "clear plan assignments and delete")

	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealShowCmd)
	mealCmd.AddCommand(mealDeleteCmd)
	rootCmd.AddCommand(mealCmd)
}
