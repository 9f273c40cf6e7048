// ABOUTME: CLI command for the 12-week weight projection.
// ABOUTME: Renders TDEE, target, and the week-by-week weight table.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/mealplan/internal/models"
	"github.com/harperreed/mealplan/internal/planner"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project weight over the next 12 weeks",
	Long: `Project weight over the next 12 weeks from your TDEE and the current
week's calorie target.

The projection assumes 3500 kcal per pound of body weight. With a
deficit, the curve descends and flattens at your target weight. With a
surplus it ascends unbounded.

EXAMPLES:

  mealplan project`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if p.CurrentWeight == 0 || p.HeightCm == 0 || p.Age == 0 {
			return fmt.Errorf("profile is incomplete; run 'mealplan profile set' first")
		}

		week, err := repo.GetWeekPlan(models.WeekStart(time.Now()))
		if err != nil {
			return fmt.Errorf("failed to load week plan: %w", err)
		}

		tdee := planner.TDEE(p)
		points := planner.ProjectWeight(tdee, week.TargetCalories, p)

		fmt.Printf("TDEE:   %d kcal/day\n", tdee)
		fmt.Printf("Target: %d kcal/day", week.TargetCalories)
		diff := tdee - week.TargetCalories
		faint := color.New(color.Faint)
		if diff > 0 {
			fmt.Printf(" %s\n", faint.Sprintf("(%d kcal deficit)", diff))
		} else if diff < 0 {
			fmt.Printf(" %s\n", faint.Sprintf("(%d kcal surplus)", -diff))
		} else {
			fmt.Println()
		}
		fmt.Println()

		for _, pt := range points {
			label := fmt.Sprintf("week %2d", pt.Week)
			if pt.Week == 0 {
				label = "now    "
			}
			fmt.Printf("  %s  %.1f %s\n", label, pt.Weight, p.WeightUnit)
		}

		if diff > 0 && p.TargetWeight > 0 {
			final := points[len(points)-1].Weight
			if final <= p.TargetWeight {
				color.Green("\n✓ Target weight %.1f %s reached within 12 weeks", p.TargetWeight, p.WeightUnit)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)
}
