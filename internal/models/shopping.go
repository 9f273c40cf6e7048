// ABOUTME: ShoppingListItem model for the aggregated shopping list.
// ABOUTME: Items merge on the (name, unit) pair; checked is a user toggle.
package models

import "github.com/google/uuid"

// ShoppingListItem is one line of the shopping list. Quantity is
// cumulative across all ingredient lines that merged into it.
type ShoppingListItem struct {
	ID       uuid.UUID
	Name     string
	Quantity float64
	Unit     string
	Checked  bool
}

// NewShoppingListItem creates an unchecked item with a fresh UUID.
func NewShoppingListItem(name string, quantity float64, unit string) *ShoppingListItem {
	return &ShoppingListItem{
		ID:       uuid.New(),
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
	}
}
