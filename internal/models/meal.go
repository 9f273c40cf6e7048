// ABOUTME: Meal model and MealType enum for the meal catalog.
// ABOUTME: Meals carry macros and free-text ingredient lines.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MealType represents the slot a meal is intended for.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// AllMealTypes returns all valid meal types.
var AllMealTypes = []MealType{
	MealBreakfast, MealLunch, MealDinner, MealSnack,
}

// IsValidMealType checks if a string is a valid meal type.
func IsValidMealType(s string) bool {
	for _, mt := range AllMealTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// Meal represents a single catalog entry: macros plus the raw
// ingredient lines as the user typed them. Lines are never stored
// structured; parsing happens at aggregation time.
type Meal struct {
	ID          uuid.UUID
	Name        string
	Type        MealType
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	Ingredients []string
	CreatedAt   time.Time
}

// NewMeal creates a new Meal with generated UUID and current timestamp.
func NewMeal(name string, mealType MealType) *Meal {
	return &Meal{
		ID:        uuid.New(),
		Name:      name,
		Type:      mealType,
		CreatedAt: time.Now(),
	}
}

// WithMacros sets the nutrition values.
func (m *Meal) WithMacros(calories, protein, carbs, fat float64) *Meal {
	m.Calories = calories
	m.Protein = protein
	m.Carbs = carbs
	m.Fat = fat
	return m
}

// WithIngredients sets the ingredient lines, dropping blank ones.
func (m *Meal) WithIngredients(lines []string) *Meal {
	m.Ingredients = m.Ingredients[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m.Ingredients = append(m.Ingredients, line)
	}
	return m
}
