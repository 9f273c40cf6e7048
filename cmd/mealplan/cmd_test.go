// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Tests parseDate, padRight, formatQuantity, and command flags.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/mealplan/internal/models"
	"github.com/harperreed/mealplan/internal/storage"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "date only",
			input:   "2025-03-14",
			wantErr: false,
		},
		{
			name:    "date and time",
			input:   "2025-03-14 08:30",
			wantErr: false,
		},
		{
			name:    "RFC3339",
			input:   "2025-03-14T08:30:00Z",
			wantErr: false,
		},
		{
			name:    "invalid format",
			input:   "14-03-2025",
			wantErr: true,
		},
		{
			name:    "invalid random string",
			input:   "not a date",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseDate(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDate(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseDate(%q) unexpected error: %v", tt.input, err)
				return
			}

			if result.IsZero() {
				t.Errorf("parseDate(%q) returned zero time", tt.input)
			}
		})
	}
}

func TestParseDateValues(t *testing.T) {
	result, err := parseDate("2025-06-15")
	if err != nil {
		t.Fatalf("parseDate failed: %v", err)
	}

	if result.Year() != 2025 || result.Month() != time.June || result.Day() != 15 {
		t.Errorf("parseDate returned wrong date: got %v", result)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{
			name:   "needs padding",
			input:  "hi",
			length: 5,
			want:   "hi   ",
		},
		{
			name:   "exact length",
			input:  "hello",
			length: 5,
			want:   "hello",
		},
		{
			name:   "longer than length",
			input:  "hello world",
			length: 5,
			want:   "hello world",
		},
		{
			name:   "empty string",
			input:  "",
			length: 5,
			want:   "     ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padRight(tt.input, tt.length)
			if got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		unit     string
		want     string
	}{
		{
			name:     "whole number",
			quantity: 2,
			unit:     "cup",
			want:     "2 cup",
		},
		{
			name:     "fraction",
			quantity: 1.5,
			unit:     "tbsp",
			want:     "1.50 tbsp",
		},
		{
			name:     "large whole",
			quantity: 400,
			unit:     "g",
			want:     "400 g",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatQuantity(tt.quantity, tt.unit)
			if got != tt.want {
				t.Errorf("formatQuantity(%v, %q) = %q, want %q", tt.quantity, tt.unit, got, tt.want)
			}
		})
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "mealplan" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "mealplan")
	}

	if rootCmd.Short == "" {
		t.Error("Expected rootCmd.Short to be non-empty")
	}
}

func TestMealAddCmdFlags(t *testing.T) {
	for _, name := range []string{"type", "calories", "protein", "carbs", "fat", "ingredient"} {
		if mealAddCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s flag on meal add command", name)
		}
	}
}

func TestMealListCmdFlags(t *testing.T) {
	typeFlag := mealListCmd.Flags().Lookup("type")
	if typeFlag == nil {
		t.Error("Expected --type flag on meal list command")
	}

	limitFlag := mealListCmd.Flags().Lookup("limit")
	if limitFlag == nil {
		t.Fatal("Expected --limit flag on meal list command")
	}

	if limitFlag.DefValue != "20" {
		t.Errorf("Expected default limit 20, got %s", limitFlag.DefValue)
	}
}

func TestMealCmdSubcommands(t *testing.T) {
	subcommands := mealCmd.Commands()
	expectedSubcmds := []string{"add", "delete", "list", "show"}

	cmdNames := make(map[string]bool)
	for _, cmd := range subcommands {
		cmdNames[cmd.Name()] = true
	}

	for _, expected := range expectedSubcmds {
		if !cmdNames[expected] {
			t.Errorf("Expected meal subcommand %q not found", expected)
		}
	}
}

func TestPlanCmdSubcommands(t *testing.T) {
	subcommands := planCmd.Commands()
	expectedSubcmds := []string{"assign", "clear", "day", "week", "target"}

	cmdNames := make(map[string]bool)
	for _, cmd := range subcommands {
		cmdNames[cmd.Name()] = true
	}

	for _, expected := range expectedSubcmds {
		if !cmdNames[expected] {
			t.Errorf("Expected plan subcommand %q not found", expected)
		}
	}
}

func TestShoppingCmdSubcommands(t *testing.T) {
	subcommands := shoppingCmd.Commands()
	expectedSubcmds := []string{"generate", "list", "add", "check", "uncheck", "delete", "clear"}

	cmdNames := make(map[string]bool)
	for _, cmd := range subcommands {
		cmdNames[cmd.Name()] = true
	}

	for _, expected := range expectedSubcmds {
		if !cmdNames[expected] {
			t.Errorf("Expected shopping subcommand %q not found", expected)
		}
	}
}

func TestSyncCmdSubcommands(t *testing.T) {
	subcommands := syncCmd.Commands()
	expectedSubcmds := []string{"link", "unlink", "status", "repair", "reset", "wipe"}

	cmdNames := make(map[string]bool)
	for _, cmd := range subcommands {
		cmdNames[cmd.Name()] = true
	}

	for _, expected := range expectedSubcmds {
		if !cmdNames[expected] {
			t.Errorf("Expected sync subcommand %q not found", expected)
		}
	}
}

func TestMealDeleteCmdAliases(t *testing.T) {
	expectedAliases := map[string]bool{"del": false, "rm": false}

	for _, alias := range mealDeleteCmd.Aliases {
		if _, ok := expectedAliases[alias]; ok {
			expectedAliases[alias] = true
		}
	}

	for alias, found := range expectedAliases {
		if !found {
			t.Errorf("Expected alias %q for mealDeleteCmd", alias)
		}
	}
}

func TestExportCmdValidArgs(t *testing.T) {
	validArgs := exportCmd.ValidArgs
	expected := map[string]bool{"json": false, "yaml": false}

	for _, arg := range validArgs {
		if _, ok := expected[arg]; ok {
			expected[arg] = true
		}
	}

	for arg, found := range expected {
		if !found {
			t.Errorf("Expected valid arg %q for exportCmd", arg)
		}
	}
}

func TestImportCmdExists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "import" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected import command to be registered")
	}
}

func TestMcpCmdExists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "mcp" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected mcp command to be registered")
	}
}

// setupTestCLI redirects storage and config to a temp directory so
// command execution uses a throwaway SQLite database.
func setupTestCLI(t *testing.T) (*storage.DB, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "mealplan-cli-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	originalData := os.Getenv("XDG_DATA_HOME")
	originalConfig := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_DATA_HOME", tmpDir)
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	// Pre-open the database to create the schema
	dbPath := filepath.Join(tmpDir, "mealplan", "mealplan.db")
	testDB, err := storage.Open(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		os.Setenv("XDG_DATA_HOME", originalData)
		os.Setenv("XDG_CONFIG_HOME", originalConfig)
		t.Fatalf("Failed to open database: %v", err)
	}

	cleanup := func() {
		if repo != nil {
			repo.Close()
			repo = nil
		}
		testDB.Close()
		os.RemoveAll(tmpDir)
		os.Setenv("XDG_DATA_HOME", originalData)
		os.Setenv("XDG_CONFIG_HOME", originalConfig)
	}

	return testDB, cleanup
}

func TestMealAddCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	// Reset global flags
	mealAddType = ""
	mealAddCalories = 0
	mealAddIngredients = nil

	rootCmd.SetArgs([]string{"meal", "add", "Oatmeal", "--type", "breakfast", "--calories", "320"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("meal add command failed: %v", err)
	}

	meals, err := testDB.ListMeals(nil, 0)
	if err != nil {
		t.Fatalf("ListMeals failed: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("Expected 1 meal, got %d", len(meals))
	}
	if meals[0].Name != "Oatmeal" {
		t.Errorf("Expected name Oatmeal, got %s", meals[0].Name)
	}
	if meals[0].Calories != 320 {
		t.Errorf("Expected 320 calories, got %f", meals[0].Calories)
	}
}

func TestMealAddCmdInvalidType(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	mealAddType = ""
	mealAddIngredients = nil

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"meal", "add", "Mystery", "--type", "brunch"})
	err := rootCmd.Execute()

	if err == nil {
		t.Error("Expected error for invalid meal type")
	}
}

func TestMealListCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	mealListType = ""
	mealListLimit = 20

	m := models.NewMeal("Oatmeal", models.MealBreakfast)
	if err := testDB.CreateMeal(m); err != nil {
		t.Fatalf("CreateMeal failed: %v", err)
	}

	rootCmd.SetArgs([]string{"meal", "list"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("meal list command failed: %v", err)
	}
}

func TestMealListCmdInvalidType(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	mealListType = ""
	mealListLimit = 20

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"meal", "list", "--type", "brunch"})
	err := rootCmd.Execute()

	if err == nil {
		t.Error("Expected error for invalid type filter")
	}
}

func TestMealDeleteCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	mealDeleteForce = false

	m := models.NewMeal("Oatmeal", models.MealBreakfast)
	if err := testDB.CreateMeal(m); err != nil {
		t.Fatalf("CreateMeal failed: %v", err)
	}

	rootCmd.SetArgs([]string{"meal", "delete", m.ID.String()[:8]})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("meal delete command failed: %v", err)
	}

	if _, err := testDB.GetMeal(m.ID.String()); err == nil {
		t.Error("Expected meal to be deleted")
	}
}

func TestMealDeleteCmdNotFound(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	mealDeleteForce = false

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"meal", "delete", "nonexistent"})
	err := rootCmd.Execute()

	if err == nil {
		t.Error("Expected error for non-existent meal")
	}
}

func TestPlanAssignCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	planAssignDate = ""

	m := models.NewMeal("Oatmeal", models.MealBreakfast)
	if err := testDB.CreateMeal(m); err != nil {
		t.Fatalf("CreateMeal failed: %v", err)
	}

	rootCmd.SetArgs([]string{"plan", "assign", m.ID.String()[:8], "breakfast", "--date", "2025-03-10"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("plan assign command failed: %v", err)
	}

	day, err := testDB.GetDayPlan(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetDayPlan failed: %v", err)
	}
	if day.Breakfast == nil || *day.Breakfast != m.ID {
		t.Error("Expected breakfast slot to hold the assigned meal")
	}
}

func TestPlanAssignCmdInvalidSlot(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	planAssignDate = ""

	m := models.NewMeal("Oatmeal", models.MealBreakfast)
	if err := testDB.CreateMeal(m); err != nil {
		t.Fatalf("CreateMeal failed: %v", err)
	}

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"plan", "assign", m.ID.String()[:8], "supper"})
	err := rootCmd.Execute()

	if err == nil {
		t.Error("Expected error for invalid slot")
	}
}

func TestPlanTargetCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	planTargetDate = ""

	rootCmd.SetArgs([]string{"plan", "target", "1800", "--date", "2025-03-12"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("plan target command failed: %v", err)
	}

	week, err := testDB.GetWeekPlan(models.WeekStart(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("GetWeekPlan failed: %v", err)
	}
	if week.TargetCalories != 1800 {
		t.Errorf("Expected target 1800, got %d", week.TargetCalories)
	}
}

func TestShoppingGenerateCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	shoppingGenerateWeek = ""

	m := models.NewMeal("Chicken Rice", models.MealDinner).
		WithIngredients([]string{"1 cup rice", "200 g chicken"})
	if err := testDB.CreateMeal(m); err != nil {
		t.Fatalf("CreateMeal failed: %v", err)
	}
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if err := testDB.AssignMeal(date, models.SlotDinner, m.ID); err != nil {
		t.Fatalf("AssignMeal failed: %v", err)
	}

	rootCmd.SetArgs([]string{"shopping", "generate", "--week", "2025-03-10"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("shopping generate command failed: %v", err)
	}

	items, err := testDB.ListShoppingItems()
	if err != nil {
		t.Fatalf("ListShoppingItems failed: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("Expected 2 shopping items, got %d", len(items))
	}
}

func TestShoppingAddCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	rootCmd.SetArgs([]string{"shopping", "add", "2 cup flour"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("shopping add command failed: %v", err)
	}

	items, err := testDB.ListShoppingItems()
	if err != nil {
		t.Fatalf("ListShoppingItems failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].Name != "flour" || items[0].Quantity != 2 || items[0].Unit != "cup" {
		t.Errorf("Item = %+v, want 2 cup flour", items[0])
	}
}

func TestProfileSetCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	rootCmd.SetArgs([]string{"profile", "set", "--weight", "80", "--height", "170", "--age", "35"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("profile set command failed: %v", err)
	}

	p, err := testDB.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if p.CurrentWeight != 80 {
		t.Errorf("Expected weight 80, got %f", p.CurrentWeight)
	}
	if p.HeightCm != 170 {
		t.Errorf("Expected height 170, got %f", p.HeightCm)
	}
	if p.Age != 35 {
		t.Errorf("Expected age 35, got %d", p.Age)
	}
}

func TestProfileSetCmdInvalidGender(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"profile", "set", "--gender", "other"})
	err := rootCmd.Execute()

	if err == nil {
		t.Error("Expected error for invalid gender")
	}
}

func TestProjectCmdIncompleteProfile(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"project"})
	err := rootCmd.Execute()

	if err == nil {
		t.Error("Expected error for incomplete profile")
	}
}

func TestLogTodayCmdSeedsWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	rootCmd.SetArgs([]string{"log", "today"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("log today command failed: %v", err)
	}

	p, err := testDB.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if len(p.CalorieLog) != 30 {
		t.Errorf("Expected 30 seeded entries, got %d", len(p.CalorieLog))
	}
}

func TestExportCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	m := models.NewMeal("Oatmeal", models.MealBreakfast)
	if err := testDB.CreateMeal(m); err != nil {
		t.Fatalf("CreateMeal failed: %v", err)
	}

	outFile := filepath.Join(os.Getenv("XDG_DATA_HOME"), "backup.json")
	exportOutput = ""

	rootCmd.SetArgs([]string{"export", "json", "-o", outFile})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("export command failed: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("Failed to read export file: %v", err)
	}

	export, err := storage.DecodeExport(data)
	if err != nil {
		t.Fatalf("DecodeExport failed: %v", err)
	}
	if len(export.Meals) != 1 {
		t.Errorf("Expected 1 exported meal, got %d", len(export.Meals))
	}
}
