// ABOUTME: MCP resource implementations for the meal planner.
// ABOUTME: Provides mealplan://week, mealplan://shopping, and mealplan://summary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/mealplan/internal/models"
	"github.com/harperreed/mealplan/internal/planner"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// mealplan://week - This week's schedule with per-day totals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "mealplan://week",
		Name:        "This Week's Plan",
		Description: "Meal assignments and nutrition totals for the current week",
		MIMEType:    "application/json",
	}, s.handleWeekResource)

	// mealplan://shopping - The stored shopping list
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "mealplan://shopping",
		Name:        "Shopping List",
		Description: "The current aggregated shopping list",
		MIMEType:    "application/json",
	}, s.handleShoppingResource)

	// mealplan://summary - Profile, TDEE, and recent calorie history
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "mealplan://summary",
		Name:        "Planner Summary",
		Description: "Profile biometrics, BMR/TDEE, and recent calorie log entries",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleWeekResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	week, err := s.repo.GetWeekPlan(models.WeekStart(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to load week plan: %w", err)
	}
	catalog, err := s.repo.MealCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load meals: %w", err)
	}

	type dayView struct {
		Date      string                 `json:"date"`
		Meals     []string               `json:"meals"`
		Nutrition models.NutritionTotals `json:"nutrition"`
	}

	view := struct {
		Start          string    `json:"start"`
		TargetCalories int       `json:"target_calories"`
		Days           []dayView `json:"days"`
	}{
		Start:          week.Start.Format("2006-01-02"),
		TargetCalories: week.TargetCalories,
	}

	for _, day := range week.Days {
		dv := dayView{
			Date:      day.Date.Format("2006-01-02"),
			Nutrition: planner.DayNutrition(day, catalog),
		}
		for _, id := range day.MealIDs() {
			if meal, ok := catalog[id]; ok {
				dv.Meals = append(dv.Meals, meal.Name)
			}
		}
		view.Days = append(view.Days, dv)
	}

	return jsonResource("mealplan://week", view)
}

func (s *Server) handleShoppingResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	items, err := s.repo.ListShoppingItems()
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping items: %w", err)
	}
	return jsonResource("mealplan://shopping", map[string]interface{}{"items": items})
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	profile, err := s.repo.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	recent := profile.CalorieLog
	if len(recent) > 7 {
		recent = recent[len(recent)-7:]
	}

	result := map[string]interface{}{
		"current_weight": profile.CurrentWeight,
		"target_weight":  profile.TargetWeight,
		"weight_unit":    profile.WeightUnit,
		"activity_level": profile.ActivityLevel,
		"bmr":            planner.BMR(profile),
		"tdee":           planner.TDEE(profile),
		"recent_log":     recent,
	}
	return jsonResource("mealplan://summary", result)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
