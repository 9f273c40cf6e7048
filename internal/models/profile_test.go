// ABOUTME: Tests for UserProfile and its enums.
// ABOUTME: Validates weight conversion and calorie log lookup.
package models

import (
	"math"
	"testing"
	"time"
)

func TestWeightKg(t *testing.T) {
	p := NewUserProfile()
	p.CurrentWeight = 80
	if p.WeightKg() != 80 {
		t.Errorf("kg profile WeightKg = %v, want 80", p.WeightKg())
	}

	p.WeightUnit = UnitLb
	p.CurrentWeight = 176.37
	if got := p.WeightKg(); math.Abs(got-80) > 0.01 {
		t.Errorf("lb profile WeightKg = %v, want ~80", got)
	}
}

func TestHasCalorieEntry(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	p := NewUserProfile()
	p.CalorieLog = []CalorieEntry{{Date: day, Calories: 1900}}

	if !p.HasCalorieEntry(day.Add(16 * time.Hour)) {
		t.Error("entry should match regardless of time of day")
	}
	if p.HasCalorieEntry(day.AddDate(0, 0, 1)) {
		t.Error("next day should not match")
	}
}

func TestEnumValidators(t *testing.T) {
	if !IsValidActivityLevel("moderatelyActive") || IsValidActivityLevel("extreme") {
		t.Error("activity level validation failed")
	}
	if !IsValidGender("male") || IsValidGender("other") {
		t.Error("gender validation failed")
	}
	if !IsValidMealType("snack") || IsValidMealType("brunch") {
		t.Error("meal type validation failed")
	}
	if !IsValidSlot("dinner") || IsValidSlot("supper") {
		t.Error("slot validation failed")
	}
}
