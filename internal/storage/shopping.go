// ABOUTME: Shopping list operations for SQLite storage.
// ABOUTME: Position column preserves the aggregator's insertion order.
package storage

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/mealplan/internal/models"
)

// ReplaceShoppingList swaps the stored list for a freshly generated
// one. Regenerating replaces everything, checked items included.
func (d *DB) ReplaceShoppingList(items []*models.ShoppingListItem) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("replace shopping list: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM shopping_items`); err != nil {
		return fmt.Errorf("replace shopping list: %w", err)
	}
	for i, item := range items {
		_, err := tx.Exec(
			`INSERT INTO shopping_items (id, name, quantity, unit, checked, position) VALUES (?, ?, ?, ?, ?, ?)`,
			item.ID.String(), item.Name, item.Quantity, item.Unit, item.Checked, i,
		)
		if err != nil {
			return fmt.Errorf("replace shopping list: %w", err)
		}
	}

	return tx.Commit()
}

// ListShoppingItems returns the list in stored order.
func (d *DB) ListShoppingItems() ([]*models.ShoppingListItem, error) {
	rows, err := d.db.Query(`
		SELECT id, name, quantity, unit, checked
		FROM shopping_items
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("list shopping items: %w", err)
	}
	defer rows.Close()

	var items []*models.ShoppingListItem
	for rows.Next() {
		var item models.ShoppingListItem
		var idStr string
		if err := rows.Scan(&idStr, &item.Name, &item.Quantity, &item.Unit, &item.Checked); err != nil {
			return nil, fmt.Errorf("scan shopping item: %w", err)
		}
		item.ID, _ = uuid.Parse(idStr)
		items = append(items, &item)
	}

	return items, rows.Err()
}

// AddShoppingItem appends a manually added item to the end of the list.
func (d *DB) AddShoppingItem(item *models.ShoppingListItem) error {
	var next int
	if err := d.db.QueryRow(`SELECT COALESCE(MAX(position) + 1, 0) FROM shopping_items`).Scan(&next); err != nil {
		return fmt.Errorf("add shopping item: %w", err)
	}
	_, err := d.db.Exec(
		`INSERT INTO shopping_items (id, name, quantity, unit, checked, position) VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID.String(), item.Name, item.Quantity, item.Unit, item.Checked, next,
	)
	if err != nil {
		return fmt.Errorf("add shopping item: %w", err)
	}
	return nil
}

// SetItemChecked toggles the checked state of an item by ID or prefix.
func (d *DB) SetItemChecked(idOrPrefix string, checked bool) error {
	id, err := d.resolveShoppingItemID(idOrPrefix)
	if err != nil {
		return fmt.Errorf("check shopping item: %w", err)
	}
	_, err = d.db.Exec(`UPDATE shopping_items SET checked = ? WHERE id = ?`, checked, id)
	if err != nil {
		return fmt.Errorf("check shopping item: %w", err)
	}
	return nil
}

// DeleteShoppingItem removes an item by ID or prefix.
func (d *DB) DeleteShoppingItem(idOrPrefix string) error {
	id, err := d.resolveShoppingItemID(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete shopping item: %w", err)
	}
	_, err = d.db.Exec(`DELETE FROM shopping_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete shopping item: %w", err)
	}
	return nil
}

// ClearCheckedItems removes all checked items and reports how many.
func (d *DB) ClearCheckedItems() (int, error) {
	result, err := d.db.Exec(`DELETE FROM shopping_items WHERE checked = 1`)
	if err != nil {
		return 0, fmt.Errorf("clear checked items: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear checked items: %w", err)
	}
	return int(affected), nil
}

// resolveShoppingItemID finds the full ID from a prefix.
func (d *DB) resolveShoppingItemID(idOrPrefix string) (string, error) {
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	rows, err := d.db.Query(`SELECT id FROM shopping_items WHERE id LIKE ? || '%'`, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve shopping item ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan shopping item ID: %w", err)
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple items", idOrPrefix)
	}

	return matches[0], nil
}
