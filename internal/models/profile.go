// ABOUTME: UserProfile model with biometrics and the rolling calorie log.
// ABOUTME: Defines Gender, ActivityLevel, and WeightUnit enums.
package models

import "time"

// Gender is used by the Mifflin-St Jeor formula.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValidGender checks if a string is a valid gender value.
func IsValidGender(s string) bool {
	return s == string(GenderMale) || s == string(GenderFemale)
}

// ActivityLevel scales BMR into TDEE.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityModeratelyActive ActivityLevel = "moderatelyActive"
	ActivityVeryActive       ActivityLevel = "veryActive"
)

// AllActivityLevels returns all valid activity levels.
var AllActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityModeratelyActive, ActivityVeryActive,
}

// IsValidActivityLevel checks if a string is a valid activity level.
func IsValidActivityLevel(s string) bool {
	for _, al := range AllActivityLevels {
		if string(al) == s {
			return true
		}
	}
	return false
}

// WeightUnit is the unit the profile's weights are stored in.
type WeightUnit string

const (
	UnitKg WeightUnit = "kg"
	UnitLb WeightUnit = "lb"
)

// KgPerLb converts pounds to kilograms.
const KgPerLb = 0.453592

// CalorieEntry is one day of the rolling calorie history.
type CalorieEntry struct {
	Date     time.Time `json:"date" yaml:"date"`
	Calories float64   `json:"calories" yaml:"calories"`
}

// UserProfile holds the biometrics and calorie history behind the
// metabolic calculator and the weight projection.
type UserProfile struct {
	CurrentWeight float64
	TargetWeight  float64
	HeightCm      float64
	Age           int
	Gender        Gender
	ActivityLevel ActivityLevel
	WeightUnit    WeightUnit
	CalorieLog    []CalorieEntry
}

// NewUserProfile creates a profile with defaults suitable for first run.
func NewUserProfile() *UserProfile {
	return &UserProfile{
		Gender:        GenderFemale,
		ActivityLevel: ActivityModeratelyActive,
		WeightUnit:    UnitKg,
	}
}

// WeightKg returns the current weight in kilograms, converting from
// pounds when the profile is stored in lb. The metabolic formula only
// accepts kilograms.
func (p *UserProfile) WeightKg() float64 {
	if p.WeightUnit == UnitLb {
		return p.CurrentWeight * KgPerLb
	}
	return p.CurrentWeight
}

// HasCalorieEntry reports whether the log already holds an entry for
// the given calendar day.
func (p *UserProfile) HasCalorieEntry(day time.Time) bool {
	for _, e := range p.CalorieLog {
		if SameDay(e.Date, day) {
			return true
		}
	}
	return false
}
