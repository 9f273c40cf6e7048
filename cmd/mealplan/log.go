// ABOUTME: CLI commands for the rolling calorie log.
// ABOUTME: Seeds history on first use and appends today's total once per day.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/mealplan/internal/models"
	"github.com/harperreed/mealplan/internal/planner"
	"github.com/spf13/cobra"
)

var (
	logShowLimit int
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Track daily calorie history",
	Long: `Track daily calorie history.

'log today' records today's planned calories in the rolling log, at
most once per calendar day. The first run seeds 30 days of plausible
history around the week's calorie target so the trend view has
something to show.`,
}

var logTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Log today's calories",
	RunE: func(cmd *cobra.Command, args []string) error {
		today := time.Now()

		p, err := repo.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		week, err := repo.GetWeekPlan(models.WeekStart(today))
		if err != nil {
			return fmt.Errorf("failed to load week plan: %w", err)
		}

		if len(p.CalorieLog) == 0 {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			seed := planner.SeedCalorieLog(week.TargetCalories, today, rng)
			if err := repo.ReplaceCalorieLog(seed); err != nil {
				return fmt.Errorf("failed to seed calorie log: %w", err)
			}
			color.Green("✓ Seeded calorie log with %d entries through today", len(seed))
			return nil
		}

		day, err := repo.GetDayPlan(today)
		if err != nil {
			return fmt.Errorf("failed to load day plan: %w", err)
		}
		catalog, err := repo.MealCatalog()
		if err != nil {
			return fmt.Errorf("failed to load meals: %w", err)
		}

		entry, ok := planner.AppendToday(p.CalorieLog, day, catalog, today)
		if !ok {
			fmt.Println("Today is already logged.")
			return nil
		}
		if err := repo.AppendCalorieEntry(entry); err != nil {
			return fmt.Errorf("failed to append entry: %w", err)
		}

		color.Green("✓ Logged %.0f kcal for %s", entry.Calories, entry.Date.Format("2006-01-02"))
		return nil
	},
}

var logShowCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"ls", "list"},
	Short:   "Show recent log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		entries := p.CalorieLog
		if len(entries) == 0 {
			fmt.Println("Calorie log is empty. Run 'mealplan log today' to start it.")
			return nil
		}
		if logShowLimit > 0 && len(entries) > logShowLimit {
			entries = entries[len(entries)-logShowLimit:]
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			fmt.Printf("%s %s\n",
				faint.Sprint(e.Date.Format("2006-01-02")),
				fmt.Sprintf("%.0f kcal", e.Calories))
		}

		return nil
	},
}

func init() {
	logShowCmd.Flags().IntVarP(&logShowLimit, "limit", "n", 14, "max number of entries")

	logCmd.AddCommand(logTodayCmd)
	logCmd.AddCommand(logShowCmd)
	rootCmd.AddCommand(logCmd)
}
