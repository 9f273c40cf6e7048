// ABOUTME: Repository interface for meal planner storage.
// ABOUTME: Defines the contract shared by the SQLite and Charm KV backends.
package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/mealplan/internal/models"
	"github.com/harperreed/mealplan/internal/planner"
)

// ErrMealInUse is returned when deleting a meal that is still
// assigned to a plan slot. Pass force to clear the assignments first.
var ErrMealInUse = errors.New("meal is assigned to a plan")

// ErrNotFound is returned when an ID or prefix resolves to nothing.
var ErrNotFound = errors.New("not found")

// Repository defines the storage interface for meal planner data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Meal catalog
	CreateMeal(m *models.Meal) error
	GetMeal(idOrPrefix string) (*models.Meal, error)
	ListMeals(mealType *models.MealType, limit int) ([]*models.Meal, error)
	DeleteMeal(idOrPrefix string, force bool) error
	MealCatalog() (planner.MealCatalog, error)

	// Week planning
	AssignMeal(date time.Time, slot models.Slot, mealID uuid.UUID) error
	ClearSlot(date time.Time, slot models.Slot) error
	GetDayPlan(date time.Time) (*models.DayPlan, error)
	GetWeekPlan(start time.Time) (*models.WeekPlan, error)
	SetTargetCalories(weekStart time.Time, target int) error

	// Profile and calorie log
	GetProfile() (*models.UserProfile, error)
	SaveProfile(p *models.UserProfile) error
	AppendCalorieEntry(e models.CalorieEntry) error
	ReplaceCalorieLog(entries []models.CalorieEntry) error

	// Shopping list
	ReplaceShoppingList(items []*models.ShoppingListItem) error
	ListShoppingItems() ([]*models.ShoppingListItem, error)
	AddShoppingItem(item *models.ShoppingListItem) error
	SetItemChecked(idOrPrefix string, checked bool) error
	DeleteShoppingItem(idOrPrefix string) error
	ClearCheckedItems() (int, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
