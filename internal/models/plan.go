// ABOUTME: DayPlan and WeekPlan models for the weekly schedule.
// ABOUTME: Plans reference meals by ID; nutrition is always derived.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Slot identifies one of a day's meal positions.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
	SlotSnack     Slot = "snack"
)

// AllSlots returns all valid slots.
var AllSlots = []Slot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack}

// IsValidSlot checks if a string is a valid slot name.
func IsValidSlot(s string) bool {
	for _, slot := range AllSlots {
		if string(slot) == s {
			return true
		}
	}
	return false
}

// DayPlan holds one day's meal assignments. The singular slots are
// optional; snacks is an ordered list.
type DayPlan struct {
	Date      time.Time
	Breakfast *uuid.UUID
	Lunch     *uuid.UUID
	Dinner    *uuid.UUID
	Snacks    []uuid.UUID
}

// NewDayPlan creates an empty plan for the given date (day granularity).
func NewDayPlan(date time.Time) *DayPlan {
	return &DayPlan{Date: DateOnly(date)}
}

// Assign places a meal ID into a slot. Singular slots are replaced;
// snack assignments append.
func (d *DayPlan) Assign(slot Slot, mealID uuid.UUID) {
	switch slot {
	case SlotBreakfast:
		d.Breakfast = &mealID
	case SlotLunch:
		d.Lunch = &mealID
	case SlotDinner:
		d.Dinner = &mealID
	case SlotSnack:
		d.Snacks = append(d.Snacks, mealID)
	}
}

// Clear empties a slot. Clearing the snack slot removes all snacks.
func (d *DayPlan) Clear(slot Slot) {
	switch slot {
	case SlotBreakfast:
		d.Breakfast = nil
	case SlotLunch:
		d.Lunch = nil
	case SlotDinner:
		d.Dinner = nil
	case SlotSnack:
		d.Snacks = nil
	}
}

// MealIDs returns all assigned meal IDs in slot order:
// breakfast, lunch, dinner, then snacks.
func (d *DayPlan) MealIDs() []uuid.UUID {
	var ids []uuid.UUID
	for _, id := range []*uuid.UUID{d.Breakfast, d.Lunch, d.Dinner} {
		if id != nil {
			ids = append(ids, *id)
		}
	}
	ids = append(ids, d.Snacks...)
	return ids
}

// IsEmpty reports whether the day has no assignments.
func (d *DayPlan) IsEmpty() bool {
	return d.Breakfast == nil && d.Lunch == nil && d.Dinner == nil && len(d.Snacks) == 0
}

// WeekPlan holds seven consecutive days and the single daily calorie
// target applied uniformly across the week.
type WeekPlan struct {
	Start          time.Time
	Days           [7]*DayPlan
	TargetCalories int
}

// DefaultTargetCalories is used until the user sets a target.
const DefaultTargetCalories = 2000

// NewWeekPlan creates an empty week starting at the given date.
func NewWeekPlan(start time.Time, targetCalories int) *WeekPlan {
	w := &WeekPlan{Start: DateOnly(start), TargetCalories: targetCalories}
	for i := range w.Days {
		w.Days[i] = NewDayPlan(w.Start.AddDate(0, 0, i))
	}
	return w
}

// Day returns the plan for the given date, or nil if the date falls
// outside this week.
func (w *WeekPlan) Day(date time.Time) *DayPlan {
	d := DateOnly(date)
	for _, day := range w.Days {
		if day != nil && SameDay(day.Date, d) {
			return day
		}
	}
	return nil
}

// DateOnly truncates a timestamp to day granularity in its location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WeekStart returns the Monday of the week containing the given date.
func WeekStart(t time.Time) time.Time {
	d := DateOnly(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
