// ABOUTME: MCP tool implementations for the meal planner.
// ABOUTME: Catalog CRUD, planning, nutrition, projection, and logging.
package mcp

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/harperreed/mealplan/internal/models"
	"github.com/harperreed/mealplan/internal/planner"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// add_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_meal",
		Description: "Create a meal with macros and free-text ingredient lines",
	}, s.handleAddMeal)

	// list_meals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_meals",
		Description: "List meals in the catalog, optionally filtered by type",
	}, s.handleListMeals)

	// delete_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_meal",
		Description: "Delete a meal by ID or ID prefix (fails while assigned to a plan)",
	}, s.handleDeleteMeal)

	// assign_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "assign_meal",
		Description: "Assign a meal to a date's breakfast/lunch/dinner/snack slot",
	}, s.handleAssignMeal)

	// day_nutrition
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "day_nutrition",
		Description: "Sum calories and macros for one day's assigned meals",
	}, s.handleDayNutrition)

	// generate_shopping_list
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_shopping_list",
		Description: "Regenerate the shopping list from the week's assigned meals",
	}, s.handleGenerateShoppingList)

	// weight_projection
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weight_projection",
		Description: "Project weight over 12 weeks from TDEE and the calorie target",
	}, s.handleWeightProjection)

	// log_today
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_today",
		Description: "Append today's calorie total to the rolling log (once per day)",
	}, s.handleLogToday)
}

// Tool input/output types

type addMealInput struct {
	Name        string   `json:"name" jsonschema:"Meal name"`
	MealType    string   `json:"meal_type" jsonschema:"Type of meal (breakfast, lunch, dinner, snack)"`
	Calories    float64  `json:"calories,omitempty" jsonschema:"Calories (kcal)"`
	Protein     float64  `json:"protein,omitempty" jsonschema:"Protein (g)"`
	Carbs       float64  `json:"carbs,omitempty" jsonschema:"Carbs (g)"`
	Fat         float64  `json:"fat,omitempty" jsonschema:"Fat (g)"`
	Ingredients []string `json:"ingredients,omitempty" jsonschema:"Free-text ingredient lines like '1 cup rice'"`
}

type mealOutput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MealType string `json:"meal_type"`
	Message  string `json:"message"`
}

type listMealsInput struct {
	MealType string `json:"meal_type,omitempty" jsonschema:"Filter by meal type"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type deleteMealInput struct {
	ID    string `json:"id" jsonschema:"Meal ID or prefix"`
	Force bool   `json:"force,omitempty" jsonschema:"Also clear the meal's plan assignments"`
}

type assignMealInput struct {
	MealID string `json:"meal_id" jsonschema:"Meal ID or prefix"`
	Date   string `json:"date" jsonschema:"Date (YYYY-MM-DD)"`
	Slot   string `json:"slot" jsonschema:"Slot (breakfast, lunch, dinner, snack)"`
}

type dayInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type nutritionOutput struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type shoppingListOutput struct {
	Items   []shoppingItemOutput `json:"items"`
	Message string               `json:"message"`
}

type shoppingItemOutput struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type projectionOutput struct {
	TDEE           int                   `json:"tdee"`
	TargetCalories int                   `json:"target_calories"`
	Unit           string                `json:"unit"`
	Points         []planner.WeightPoint `json:"points"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleAddMeal(ctx context.Context, req *mcp.CallToolRequest, input addMealInput) (*mcp.CallToolResult, mealOutput, error) {
	if !models.IsValidMealType(input.MealType) {
		return nil, mealOutput{}, fmt.Errorf("unknown meal type: %s (use breakfast, lunch, dinner, or snack)", input.MealType)
	}

	m := models.NewMeal(input.Name, models.MealType(input.MealType)).
		WithMacros(input.Calories, input.Protein, input.Carbs, input.Fat).
		WithIngredients(input.Ingredients)

	if err := s.repo.CreateMeal(m); err != nil {
		return nil, mealOutput{}, fmt.Errorf("failed to create meal: %w", err)
	}

	return nil, mealOutput{
		ID:       m.ID.String()[:8],
		Name:     m.Name,
		MealType: input.MealType,
		Message:  fmt.Sprintf("Added %s %q (ID: %s)", input.MealType, m.Name, m.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListMeals(ctx context.Context, req *mcp.CallToolRequest, input listMealsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var mealType *models.MealType
	if input.MealType != "" {
		mt := models.MealType(input.MealType)
		mealType = &mt
	}

	meals, err := s.repo.ListMeals(mealType, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list meals: %w", err)
	}

	if len(meals) == 0 {
		return nil, map[string]interface{}{"message": "No meals found."}, nil
	}

	return nil, meals, nil
}

func (s *Server) handleDeleteMeal(ctx context.Context, req *mcp.CallToolRequest, input deleteMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteMeal(input.ID, input.Force); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete meal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted meal: %s", input.ID),
	}, nil
}

func (s *Server) handleAssignMeal(ctx context.Context, req *mcp.CallToolRequest, input assignMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !models.IsValidSlot(input.Slot) {
		return nil, simpleOutput{}, fmt.Errorf("unknown slot: %s (use breakfast, lunch, dinner, or snack)", input.Slot)
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", input.Date)
	}

	meal, err := s.repo.GetMeal(input.MealID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("meal not found: %s", input.MealID)
	}

	if err := s.repo.AssignMeal(date, models.Slot(input.Slot), meal.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to assign meal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Assigned %q to %s %s", meal.Name, input.Date, input.Slot),
	}, nil
}

func (s *Server) handleDayNutrition(ctx context.Context, req *mcp.CallToolRequest, input dayInput) (*mcp.CallToolResult, nutritionOutput, error) {
	date := time.Now()
	if input.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, nutritionOutput{}, fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", input.Date)
		}
	}

	day, err := s.repo.GetDayPlan(date)
	if err != nil {
		return nil, nutritionOutput{}, fmt.Errorf("failed to load day plan: %w", err)
	}
	catalog, err := s.repo.MealCatalog()
	if err != nil {
		return nil, nutritionOutput{}, fmt.Errorf("failed to load meals: %w", err)
	}

	totals := planner.DayNutrition(day, catalog)
	return nil, nutritionOutput{
		Date:     models.DateOnly(date).Format("2006-01-02"),
		Calories: totals.Calories,
		Protein:  totals.Protein,
		Carbs:    totals.Carbs,
		Fat:      totals.Fat,
	}, nil
}

func (s *Server) handleGenerateShoppingList(ctx context.Context, req *mcp.CallToolRequest, input dayInput) (*mcp.CallToolResult, shoppingListOutput, error) {
	start := models.WeekStart(time.Now())
	if input.Date != "" {
		t, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, shoppingListOutput{}, fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", input.Date)
		}
		start = models.WeekStart(t)
	}

	week, err := s.repo.GetWeekPlan(start)
	if err != nil {
		return nil, shoppingListOutput{}, fmt.Errorf("failed to load week plan: %w", err)
	}
	catalog, err := s.repo.MealCatalog()
	if err != nil {
		return nil, shoppingListOutput{}, fmt.Errorf("failed to load meals: %w", err)
	}

	items := planner.BuildShoppingList(week, catalog)
	if err := s.repo.ReplaceShoppingList(items); err != nil {
		return nil, shoppingListOutput{}, fmt.Errorf("failed to store shopping list: %w", err)
	}

	out := shoppingListOutput{
		Message: fmt.Sprintf("Generated %d items for week of %s", len(items), start.Format("2006-01-02")),
	}
	for _, item := range items {
		out.Items = append(out.Items, shoppingItemOutput{
			ID:       item.ID.String()[:8],
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
		})
	}
	return nil, out, nil
}

func (s *Server) handleWeightProjection(ctx context.Context, req *mcp.CallToolRequest, input dayInput) (*mcp.CallToolResult, projectionOutput, error) {
	profile, err := s.repo.GetProfile()
	if err != nil {
		return nil, projectionOutput{}, fmt.Errorf("failed to load profile: %w", err)
	}

	week, err := s.repo.GetWeekPlan(models.WeekStart(time.Now()))
	if err != nil {
		return nil, projectionOutput{}, fmt.Errorf("failed to load week plan: %w", err)
	}

	tdee := planner.TDEE(profile)
	return nil, projectionOutput{
		TDEE:           tdee,
		TargetCalories: week.TargetCalories,
		Unit:           string(profile.WeightUnit),
		Points:         planner.ProjectWeight(tdee, week.TargetCalories, profile),
	}, nil
}

func (s *Server) handleLogToday(ctx context.Context, req *mcp.CallToolRequest, input dayInput) (*mcp.CallToolResult, simpleOutput, error) {
	today := time.Now()

	profile, err := s.repo.GetProfile()
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to load profile: %w", err)
	}

	week, err := s.repo.GetWeekPlan(models.WeekStart(today))
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to load week plan: %w", err)
	}

	if len(profile.CalorieLog) == 0 {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		seed := planner.SeedCalorieLog(week.TargetCalories, today, rng)
		if err := s.repo.ReplaceCalorieLog(seed); err != nil {
			return nil, simpleOutput{}, fmt.Errorf("failed to seed calorie log: %w", err)
		}
		return nil, simpleOutput{
			Message: fmt.Sprintf("Seeded calorie log with %d entries through today", len(seed)),
		}, nil
	}

	day, err := s.repo.GetDayPlan(today)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to load day plan: %w", err)
	}
	catalog, err := s.repo.MealCatalog()
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to load meals: %w", err)
	}

	entry, ok := planner.AppendToday(profile.CalorieLog, day, catalog, today)
	if !ok {
		return nil, simpleOutput{Message: "Today is already logged."}, nil
	}
	if err := s.repo.AppendCalorieEntry(entry); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to append entry: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %.0f kcal for %s", entry.Calories, entry.Date.Format("2006-01-02")),
	}, nil
}
