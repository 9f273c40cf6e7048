// ABOUTME: Meal catalog CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for meals.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/mealplan/internal/models"
	"github.com/harperreed/mealplan/internal/planner"
)

// ingredientSeparator joins ingredient lines for storage. Lines are
// single-line free text, so a newline join is lossless.
const ingredientSeparator = "\n"

// CreateMeal stores a new meal in the database.
func (d *DB) CreateMeal(m *models.Meal) error {
	query := `
		INSERT INTO meals (id, name, meal_type, calories, protein, carbs, fat, ingredients, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		m.ID.String(),
		m.Name,
		string(m.Type),
		m.Calories,
		m.Protein,
		m.Carbs,
		m.Fat,
		strings.Join(m.Ingredients, ingredientSeparator),
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create meal: %w", err)
	}
	return nil
}

// GetMeal retrieves a meal by ID or ID prefix.
func (d *DB) GetMeal(idOrPrefix string) (*models.Meal, error) {
	id, err := d.resolveMealID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, meal_type, calories, protein, carbs, fat, ingredients, created_at
		FROM meals
		WHERE id = ?
	`
	return d.scanMeal(d.db.QueryRow(query, id))
}

// ListMeals retrieves meals with optional filtering by type.
// Results are sorted by CreatedAt descending (most recent first).
func (d *DB) ListMeals(mealType *models.MealType, limit int) ([]*models.Meal, error) {
	var query string
	var args []interface{}

	if mealType != nil {
		query = `
			SELECT id, name, meal_type, calories, protein, carbs, fat, ingredients, created_at
			FROM meals
			WHERE meal_type = ?
			ORDER BY created_at DESC
		`
		args = append(args, string(*mealType))
	} else {
		query = `
			SELECT id, name, meal_type, calories, protein, carbs, fat, ingredients, created_at
			FROM meals
			ORDER BY created_at DESC
		`
	}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	return d.scanMeals(rows)
}

// DeleteMeal removes a meal by ID or prefix. Deletion fails with
// ErrMealInUse while the meal is assigned to any plan slot unless
// force is set, in which case the assignments are cleared too.
func (d *DB) DeleteMeal(idOrPrefix string, force bool) error {
	id, err := d.resolveMealID(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}

	var refs int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM plan_slots WHERE meal_id = ?", id).Scan(&refs); err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	if refs > 0 {
		if !force {
			return fmt.Errorf("delete meal %s: %w", idOrPrefix, ErrMealInUse)
		}
		if _, err := d.db.Exec("DELETE FROM plan_slots WHERE meal_id = ?", id); err != nil {
			return fmt.Errorf("delete meal assignments: %w", err)
		}
	}

	result, err := d.db.Exec("DELETE FROM meals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete meal %s: %w", idOrPrefix, ErrNotFound)
	}

	return nil
}

// MealCatalog loads all meals keyed by ID for the aggregators.
func (d *DB) MealCatalog() (planner.MealCatalog, error) {
	meals, err := d.ListMeals(nil, 0)
	if err != nil {
		return nil, err
	}
	catalog := make(planner.MealCatalog, len(meals))
	for _, m := range meals {
		catalog[m.ID] = m
	}
	return catalog, nil
}

// resolveMealID finds the full ID from a prefix.
func (d *DB) resolveMealID(idOrPrefix string) (string, error) {
	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	// Search by prefix
	query := `SELECT id FROM meals WHERE id LIKE ? || '%'`
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve meal ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan meal ID: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple meals", idOrPrefix)
	}

	return matches[0], nil
}

// scanMeal scans a single row into a Meal struct.
func (d *DB) scanMeal(row *sql.Row) (*models.Meal, error) {
	var m models.Meal
	var idStr, mealType, ingredients, createdAt string

	err := row.Scan(&idStr, &m.Name, &mealType, &m.Calories, &m.Protein, &m.Carbs, &m.Fat, &ingredients, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan meal: %w", err)
	}

	m.ID, _ = uuid.Parse(idStr)
	m.Type = models.MealType(mealType)
	if ingredients != "" {
		m.Ingredients = strings.Split(ingredients, ingredientSeparator)
	}
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return &m, nil
}

// scanMeals scans multiple rows into a slice of Meals.
func (d *DB) scanMeals(rows *sql.Rows) ([]*models.Meal, error) {
	var meals []*models.Meal

	for rows.Next() {
		var m models.Meal
		var idStr, mealType, ingredients, createdAt string

		err := rows.Scan(&idStr, &m.Name, &mealType, &m.Calories, &m.Protein, &m.Carbs, &m.Fat, &ingredients, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}

		m.ID, _ = uuid.Parse(idStr)
		m.Type = models.MealType(mealType)
		if ingredients != "" {
			m.Ingredients = strings.Split(ingredients, ingredientSeparator)
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

		meals = append(meals, &m)
	}

	return meals, rows.Err()
}
