// ABOUTME: Shopping list operations for Charm KV storage.
// ABOUTME: The whole list is one JSON value, preserving item order.
package charm

import (
	"fmt"
	"strings"

	"github.com/harperreed/mealplan/internal/models"
	"github.com/harperreed/mealplan/internal/storage"
)

// ReplaceShoppingList swaps the stored list for a freshly generated one.
func (c *Client) ReplaceShoppingList(items []*models.ShoppingListItem) error {
	data, err := marshalJSON(items)
	if err != nil {
		return fmt.Errorf("marshal shopping list: %w", err)
	}
	return c.set(ShoppingKey, data)
}

// ListShoppingItems returns the list in stored order.
func (c *Client) ListShoppingItems() ([]*models.ShoppingListItem, error) {
	data, err := c.get(ShoppingKey)
	if err != nil {
		return nil, nil // No list yet
	}
	items, err := unmarshalJSON[[]*models.ShoppingListItem](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal shopping list: %w", err)
	}
	return *items, nil
}

// AddShoppingItem appends a manually added item to the end of the list.
func (c *Client) AddShoppingItem(item *models.ShoppingListItem) error {
	items, err := c.ListShoppingItems()
	if err != nil {
		return err
	}
	return c.ReplaceShoppingList(append(items, item))
}

// SetItemChecked toggles the checked state of an item by ID or prefix.
func (c *Client) SetItemChecked(idOrPrefix string, checked bool) error {
	items, err := c.ListShoppingItems()
	if err != nil {
		return err
	}
	item, err := findShoppingItem(items, idOrPrefix)
	if err != nil {
		return fmt.Errorf("check shopping item: %w", err)
	}
	item.Checked = checked
	return c.ReplaceShoppingList(items)
}

// DeleteShoppingItem removes an item by ID or prefix.
func (c *Client) DeleteShoppingItem(idOrPrefix string) error {
	items, err := c.ListShoppingItems()
	if err != nil {
		return err
	}
	target, err := findShoppingItem(items, idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete shopping item: %w", err)
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != target.ID {
			kept = append(kept, item)
		}
	}
	return c.ReplaceShoppingList(kept)
}

// ClearCheckedItems removes all checked items and reports how many.
func (c *Client) ClearCheckedItems() (int, error) {
	items, err := c.ListShoppingItems()
	if err != nil {
		return 0, err
	}

	kept := items[:0]
	cleared := 0
	for _, item := range items {
		if item.Checked {
			cleared++
			continue
		}
		kept = append(kept, item)
	}
	if cleared == 0 {
		return 0, nil
	}
	return cleared, c.ReplaceShoppingList(kept)
}

func findShoppingItem(items []*models.ShoppingListItem, idOrPrefix string) (*models.ShoppingListItem, error) {
	var matches []*models.ShoppingListItem
	for _, item := range items {
		if strings.HasPrefix(item.ID.String(), idOrPrefix) {
			matches = append(matches, item)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, idOrPrefix)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("ambiguous prefix %s: matches multiple items", idOrPrefix)
	}
	return matches[0], nil
}
