// ABOUTME: Tests for DayPlan/WeekPlan and date helpers.
// ABOUTME: Validates slot assignment, day lookup, and week boundaries.
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDayPlanAssignAndMealIDs(t *testing.T) {
	day := NewDayPlan(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	b, l, s1, s2 := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	day.Assign(SlotBreakfast, b)
	day.Assign(SlotLunch, l)
	day.Assign(SlotSnack, s1)
	day.Assign(SlotSnack, s2)

	ids := day.MealIDs()
	if len(ids) != 4 {
		t.Fatalf("MealIDs length = %d, want 4", len(ids))
	}
	want := []uuid.UUID{b, l, s1, s2}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("MealIDs[%d] = %v, want %v", i, ids[i], id)
		}
	}

	// Singular slots replace, snacks append.
	b2 := uuid.New()
	day.Assign(SlotBreakfast, b2)
	if *day.Breakfast != b2 {
		t.Error("reassigning breakfast should replace")
	}
	if len(day.Snacks) != 2 {
		t.Errorf("Snacks length = %d, want 2", len(day.Snacks))
	}
}

func TestDayPlanClear(t *testing.T) {
	day := NewDayPlan(time.Now())
	day.Assign(SlotDinner, uuid.New())
	day.Assign(SlotSnack, uuid.New())
	day.Clear(SlotDinner)
	day.Clear(SlotSnack)
	if !day.IsEmpty() {
		t.Error("expected empty day after clearing all slots")
	}
}

func TestNewWeekPlanDays(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) // a Monday
	week := NewWeekPlan(start, 2200)

	if week.TargetCalories != 2200 {
		t.Errorf("TargetCalories = %d, want 2200", week.TargetCalories)
	}
	for i, day := range week.Days {
		want := start.AddDate(0, 0, i)
		if !SameDay(day.Date, want) {
			t.Errorf("Days[%d].Date = %v, want %v", i, day.Date, want)
		}
	}

	if week.Day(start.AddDate(0, 0, 3)) != week.Days[3] {
		t.Error("Day lookup returned wrong day")
	}
	if week.Day(start.AddDate(0, 0, 7)) != nil {
		t.Error("Day lookup outside the week should return nil")
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want time.Time
	}{
		{
			name: "wednesday",
			date: time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC),
			want: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday is its own start",
			date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the preceding monday",
			date: time.Date(2025, 3, 16, 23, 0, 0, 0, time.UTC),
			want: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.date); !got.Equal(tt.want) {
				t.Errorf("WeekStart = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)
	b := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("same calendar day with different times should match")
	}
	if SameDay(b, c) {
		t.Error("adjacent days should not match")
	}
}
