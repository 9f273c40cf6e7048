// ABOUTME: CLI commands for the shopping list.
// ABOUTME: Supports generation from the week plan plus manual edits.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/mealplan/internal/ingredient"
	"github.com/harperreed/mealplan/internal/models"
	"github.com/harperreed/mealplan/internal/planner"
	"github.com/spf13/cobra"
)

var (
	shoppingGenerateWeek string
)

var shoppingCmd = &cobra.Command{
	Use:     "shopping",
	Aliases: []string{"shop"},
	Short:   "Manage the shopping list",
	Long: `Manage the shopping list.

'generate' rebuilds the list from the week's assigned meals, merging
ingredient lines that share a name and unit. The generated list replaces
whatever was stored, including checked-off items. Manual add, check, and
delete operations edit the stored list in place.`,
}

var shoppingGenerateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the list from the week plan",
	Long: `Generate the shopping list from the week's assigned meals.

Quantities merge per (name, unit) pair: "1 cup rice" twice becomes
"2 cup rice", while "1 cup rice" and "200 g rice" stay separate lines.

EXAMPLES:

  mealplan shopping generate                    # This week
  mealplan shopping generate --week 2025-03-14  # The week containing March 14`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now()
		if shoppingGenerateWeek != "" {
			var err error
			date, err = parseDate(shoppingGenerateWeek)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", shoppingGenerateWeek)
			}
		}

		start := models.WeekStart(date)
		week, err := repo.GetWeekPlan(start)
		if err != nil {
			return fmt.Errorf("failed to load week plan: %w", err)
		}
		catalog, err := repo.MealCatalog()
		if err != nil {
			return fmt.Errorf("failed to load meals: %w", err)
		}

		items := planner.BuildShoppingList(week, catalog)
		if err := repo.ReplaceShoppingList(items); err != nil {
			return fmt.Errorf("failed to store shopping list: %w", err)
		}

		color.Green("✓ Generated %d items for week of %s", len(items), start.Format("2006-01-02"))
		printShoppingItems(items)
		return nil
	},
}

var shoppingListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "Show the shopping list",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := repo.ListShoppingItems()
		if err != nil {
			return fmt.Errorf("failed to list shopping items: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("Shopping list is empty. Run 'mealplan shopping generate' to build it.")
			return nil
		}

		printShoppingItems(items)
		return nil
	},
}

var shoppingAddCmd = &cobra.Command{
	Use:   "add <line>",
	Short: "Add an item to the list",
	Long: `Add an item to the shopping list by ingredient line.

The line is parsed the same way meal ingredients are: "2 cup flour"
becomes quantity 2, unit cup, name flour. Unparseable lines are kept
whole with quantity 1.

EXAMPLES:

  mealplan shopping add "2 cup flour"
  mealplan shopping add "paper towels"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed := ingredient.Parse(args[0])
		item := models.NewShoppingListItem(parsed.Name, parsed.Quantity, parsed.Unit)

		if err := repo.AddShoppingItem(item); err != nil {
			return fmt.Errorf("failed to add item: %w", err)
		}

		color.Green("✓ Added %s", item.Name)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(item.ID.String()[:8]),
			formatQuantity(item.Quantity, item.Unit))
		return nil
	},
}

var shoppingCheckCmd = &cobra.Command{
	Use:   "check <id>",
	Short: "Check off an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.SetItemChecked(args[0], true); err != nil {
			return fmt.Errorf("failed to check item: %w", err)
		}
		color.Green("✓ Checked %s", args[0])
		return nil
	},
}

var shoppingUncheckCmd = &cobra.Command{
	Use:   "uncheck <id>",
	Short: "Uncheck an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.SetItemChecked(args[0], false); err != nil {
			return fmt.Errorf("failed to uncheck item: %w", err)
		}
		color.Yellow("✗ Unchecked %s", args[0])
		return nil
	},
}

var shoppingDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an item from the list",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteShoppingItem(args[0]); err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}
		color.Yellow("✗ Deleted %s", args[0])
		return nil
	},
}

var shoppingClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all checked items",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := repo.ClearCheckedItems()
		if err != nil {
			return fmt.Errorf("failed to clear checked items: %w", err)
		}
		color.Green("✓ Removed %d checked items", n)
		return nil
	},
}

func printShoppingItems(items []*models.ShoppingListItem) {
	faint := color.New(color.Faint)
	for _, item := range items {
		mark := " "
		if item.Checked {
			mark = "x"
		}
		fmt.Printf("[%s] %s %s %s\n",
			mark,
			faint.Sprint(item.ID.String()[:8]),
			padRight(formatQuantity(item.Quantity, item.Unit), 12),
			item.Name)
	}
}

// formatQuantity trims trailing zeros so "2.00 cup" prints as "2 cup".
func formatQuantity(q float64, unit string) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d %s", int64(q), unit)
	}
	return fmt.Sprintf("%.2f %s", q, unit)
}

func init() {
	shoppingGenerateCmd.Flags().StringVar(&shoppingGenerateWeek, "week", "", "any date in the week (default today)")

	shoppingCmd.AddCommand(shoppingGenerateCmd)
	shoppingCmd.AddCommand(shoppingListCmd)
	shoppingCmd.AddCommand(shoppingAddCmd)
	shoppingCmd.AddCommand(shoppingCheckCmd)
	shoppingCmd.AddCommand(shoppingUncheckCmd)
	shoppingCmd.AddCommand(shoppingDeleteCmd)
	shoppingCmd.AddCommand(shoppingClearCmd)
	rootCmd.AddCommand(shoppingCmd)
}
