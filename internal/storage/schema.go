// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Tables for meals, plan slots, targets, profile, log, and shopping.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS meals (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		meal_type TEXT NOT NULL,
		calories REAL NOT NULL DEFAULT 0,
		protein REAL NOT NULL DEFAULT 0,
		carbs REAL NOT NULL DEFAULT 0,
		fat REAL NOT NULL DEFAULT 0,
		ingredients TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS plan_slots (
		date TEXT NOT NULL,
		slot TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		meal_id TEXT NOT NULL,
		PRIMARY KEY (date, slot, position),
		FOREIGN KEY (meal_id) REFERENCES meals(id)
	);

	CREATE TABLE IF NOT EXISTS week_targets (
		week_start TEXT PRIMARY KEY,
		target_calories INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		current_weight REAL NOT NULL DEFAULT 0,
		target_weight REAL NOT NULL DEFAULT 0,
		height_cm REAL NOT NULL DEFAULT 0,
		age INTEGER NOT NULL DEFAULT 0,
		gender TEXT NOT NULL DEFAULT 'female',
		activity_level TEXT NOT NULL DEFAULT 'moderatelyActive',
		weight_unit TEXT NOT NULL DEFAULT 'kg'
	);

	CREATE TABLE IF NOT EXISTS calorie_log (
		date TEXT PRIMARY KEY,
		calories REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS shopping_items (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		quantity REAL NOT NULL,
		unit TEXT NOT NULL,
		checked INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_meals_type ON meals(meal_type);
	CREATE INDEX IF NOT EXISTS idx_plan_slots_date ON plan_slots(date);
	CREATE INDEX IF NOT EXISTS idx_plan_slots_meal ON plan_slots(meal_id);
	CREATE INDEX IF NOT EXISTS idx_shopping_position ON shopping_items(position);
	`

	_, err := d.db.Exec(schema)
	return err
}
