// ABOUTME: Multi-week predicted-weight series from TDEE and target calories.
// ABOUTME: Clamps at the target weight on the losing side only.
package planner

import (
	"math"

	"github.com/harperreed/mealplan/internal/models"
)

// Fixed constants of the projection model.
const (
	kcalPerPound    = 3500
	projectionWeeks = 12
)

// WeightPoint is one week of the projection, in the profile's unit.
type WeightPoint struct {
	Week   int
	Weight float64
}

// ProjectWeight produces the predicted-weight series for weeks 0
// through 12. A deficit trends toward the target weight and clamps
// there; a surplus trends upward unclamped. The clamp is max(target,
// predicted), so a profile already below target reports the target.
func ProjectWeight(tdee, targetCalories int, p *models.UserProfile) []WeightPoint {
	dailyDeficit := float64(tdee - targetCalories)
	weeklyLoss := dailyDeficit * 7 / kcalPerPound
	if p.WeightUnit == models.UnitKg {
		weeklyLoss *= models.KgPerLb
	}

	points := make([]WeightPoint, 0, projectionWeeks+1)
	for w := 0; w <= projectionWeeks; w++ {
		predicted := math.Max(p.TargetWeight, p.CurrentWeight-weeklyLoss*float64(w))
		points = append(points, WeightPoint{
			Week:   w,
			Weight: math.Round(predicted*10) / 10,
		})
	}
	return points
}
