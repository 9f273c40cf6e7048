// ABOUTME: BMR and TDEE calculation from a user profile.
// ABOUTME: Mifflin-St Jeor formula with activity level multipliers.
package planner

import (
	"math"

	"github.com/harperreed/mealplan/internal/models"
)

// Activity multipliers applied to BMR.
const (
	multiplierSedentary        = 1.2
	multiplierModeratelyActive = 1.55
	multiplierVeryActive       = 1.9
)

// BMR computes the basal metabolic rate using Mifflin-St Jeor.
// The formula takes kilograms; WeightKg converts lb profiles first.
func BMR(p *models.UserProfile) float64 {
	bmr := 10*p.WeightKg() + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == models.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// ActivityMultiplier returns the TDEE multiplier for a level.
// Unrecognized levels default to moderately active.
func ActivityMultiplier(level models.ActivityLevel) float64 {
	switch level {
	case models.ActivitySedentary:
		return multiplierSedentary
	case models.ActivityVeryActive:
		return multiplierVeryActive
	default:
		return multiplierModeratelyActive
	}
}

// TDEE computes total daily energy expenditure, rounded to the
// nearest calorie.
func TDEE(p *models.UserProfile) int {
	return int(math.Round(BMR(p) * ActivityMultiplier(p.ActivityLevel)))
}
