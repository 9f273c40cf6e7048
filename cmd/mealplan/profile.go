// ABOUTME: CLI commands for the user profile.
// ABOUTME: Shows biometrics with computed BMR/TDEE and sets fields via flags.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/mealplan/internal/models"
	"github.com/harperreed/mealplan/internal/planner"
	"github.com/spf13/cobra"
)

var (
	profileWeight       float64
	profileTargetWeight float64
	profileHeight       float64
	profileAge          int
	profileGender       string
	profileActivity     string
	profileUnit         string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
	Long: `Manage your profile.

The profile holds the biometrics behind the BMR/TDEE calculation and
the weight projection: current and target weight, height, age, gender,
and activity level. Weights are stored in kg or lb per the unit
setting; the metabolic formula converts to kg internally.`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile and metabolic numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		fmt.Printf("Weight:    %.1f %s (target %.1f %s)\n",
			p.CurrentWeight, p.WeightUnit, p.TargetWeight, p.WeightUnit)
		fmt.Printf("Height:    %.0f cm\n", p.HeightCm)
		fmt.Printf("Age:       %d\n", p.Age)
		fmt.Printf("Gender:    %s\n", p.Gender)
		fmt.Printf("Activity:  %s\n", p.ActivityLevel)
		fmt.Println()
		fmt.Printf("BMR:       %.0f kcal/day\n", planner.BMR(p))
		fmt.Printf("TDEE:      %d kcal/day\n", planner.TDEE(p))

		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long: `Update profile fields. Only the flags you pass change.

EXAMPLES:

  mealplan profile set --weight 80 --target-weight 70
  mealplan profile set --height 170 --age 35 --gender female
  mealplan profile set --activity veryActive
  mealplan profile set --unit lb --weight 176`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		if cmd.Flags().Changed("weight") {
			p.CurrentWeight = profileWeight
		}
		if cmd.Flags().Changed("target-weight") {
			p.TargetWeight = profileTargetWeight
		}
		if cmd.Flags().Changed("height") {
			p.HeightCm = profileHeight
		}
		if cmd.Flags().Changed("age") {
			p.Age = profileAge
		}
		if cmd.Flags().Changed("gender") {
			if !models.IsValidGender(profileGender) {
				return fmt.Errorf("unknown gender: %s (use male or female)", profileGender)
			}
			p.Gender = models.Gender(profileGender)
		}
		if cmd.Flags().Changed("activity") {
			if !models.IsValidActivityLevel(profileActivity) {
				return fmt.Errorf("unknown activity level: %s (use sedentary, moderatelyActive, or veryActive)", profileActivity)
			}
			p.ActivityLevel = models.ActivityLevel(profileActivity)
		}
		if cmd.Flags().Changed("unit") {
			if profileUnit != string(models.UnitKg) && profileUnit != string(models.UnitLb) {
				return fmt.Errorf("unknown weight unit: %s (use kg or lb)", profileUnit)
			}
			p.WeightUnit = models.WeightUnit(profileUnit)
		}

		if err := repo.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Profile updated")
		fmt.Printf("  TDEE: %d kcal/day\n", planner.TDEE(p))
		return nil
	},
}

func init() {
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "current weight")
	profileSetCmd.Flags().Float64Var(&profileTargetWeight, "target-weight", 0, "target weight")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height (cm)")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age (years)")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "gender (male, female)")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "activity level (sedentary, moderatelyActive, veryActive)")
	profileSetCmd.Flags().StringVar(&profileUnit, "unit", "", "weight unit (kg, lb)")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
