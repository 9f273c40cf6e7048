// ABOUTME: UserProfile and calorie log operations for SQLite storage.
// ABOUTME: The profile is a singleton row; the log is one row per day.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/mealplan/internal/models"
)

// GetProfile loads the profile with its calorie log. A fresh database
// returns default values rather than an error.
func (d *DB) GetProfile() (*models.UserProfile, error) {
	p := models.NewUserProfile()

	query := `
		SELECT current_weight, target_weight, height_cm, age, gender, activity_level, weight_unit
		FROM profile WHERE id = 1
	`
	var gender, activity, unit string
	err := d.db.QueryRow(query).Scan(
		&p.CurrentWeight, &p.TargetWeight, &p.HeightCm, &p.Age,
		&gender, &activity, &unit,
	)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if err == nil {
		p.Gender = models.Gender(gender)
		p.ActivityLevel = models.ActivityLevel(activity)
		p.WeightUnit = models.WeightUnit(unit)
	}

	log, err := d.listCalorieLog()
	if err != nil {
		return nil, err
	}
	p.CalorieLog = log

	return p, nil
}

// SaveProfile stores the profile's biometrics. The calorie log is
// persisted separately via AppendCalorieEntry/ReplaceCalorieLog.
func (d *DB) SaveProfile(p *models.UserProfile) error {
	query := `
		INSERT OR REPLACE INTO profile
			(id, current_weight, target_weight, height_cm, age, gender, activity_level, weight_unit)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		p.CurrentWeight, p.TargetWeight, p.HeightCm, p.Age,
		string(p.Gender), string(p.ActivityLevel), string(p.WeightUnit),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// AppendCalorieEntry adds one day's entry. The date primary key
// enforces the one-entry-per-day invariant at the storage level.
func (d *DB) AppendCalorieEntry(e models.CalorieEntry) error {
	_, err := d.db.Exec(
		`INSERT INTO calorie_log (date, calories) VALUES (?, ?)`,
		models.DateOnly(e.Date).Format(dateFormat), e.Calories,
	)
	if err != nil {
		return fmt.Errorf("append calorie entry: %w", err)
	}
	return nil
}

// ReplaceCalorieLog swaps the entire log, used by the seed transition.
func (d *DB) ReplaceCalorieLog(entries []models.CalorieEntry) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("replace calorie log: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM calorie_log`); err != nil {
		return fmt.Errorf("replace calorie log: %w", err)
	}
	for _, e := range entries {
		_, err := tx.Exec(
			`INSERT INTO calorie_log (date, calories) VALUES (?, ?)`,
			models.DateOnly(e.Date).Format(dateFormat), e.Calories,
		)
		if err != nil {
			return fmt.Errorf("replace calorie log: %w", err)
		}
	}

	return tx.Commit()
}

func (d *DB) listCalorieLog() ([]models.CalorieEntry, error) {
	rows, err := d.db.Query(`SELECT date, calories FROM calorie_log ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("list calorie log: %w", err)
	}
	defer rows.Close()

	var entries []models.CalorieEntry
	for rows.Next() {
		var dateStr string
		var e models.CalorieEntry
		if err := rows.Scan(&dateStr, &e.Calories); err != nil {
			return nil, fmt.Errorf("scan calorie entry: %w", err)
		}
		e.Date, _ = time.Parse(dateFormat, dateStr)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
