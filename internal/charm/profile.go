// ABOUTME: Profile and calorie log operations for Charm KV storage.
// ABOUTME: Biometrics and the log live under separate fixed keys.
package charm

import (
	"fmt"

	"github.com/harperreed/mealplan/internal/models"
)

// GetProfile loads the profile with its calorie log. Missing keys
// yield defaults rather than an error.
func (c *Client) GetProfile() (*models.UserProfile, error) {
	p := models.NewUserProfile()

	if data, err := c.get(ProfileKey); err == nil {
		stored, err := unmarshalJSON[models.UserProfile](data)
		if err != nil {
			return nil, fmt.Errorf("unmarshal profile: %w", err)
		}
		p = stored
	}

	p.CalorieLog = nil
	if data, err := c.get(CalorieLogKey); err == nil {
		log, err := unmarshalJSON[[]models.CalorieEntry](data)
		if err != nil {
			return nil, fmt.Errorf("unmarshal calorie log: %w", err)
		}
		p.CalorieLog = *log
	}

	return p, nil
}

// SaveProfile stores the profile's biometrics. The calorie log is
// persisted separately via AppendCalorieEntry/ReplaceCalorieLog.
func (c *Client) SaveProfile(p *models.UserProfile) error {
	stored := *p
	stored.CalorieLog = nil
	data, err := marshalJSON(&stored)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return c.set(ProfileKey, data)
}

// AppendCalorieEntry adds one day's entry, enforcing the
// one-entry-per-day invariant against the stored log.
func (c *Client) AppendCalorieEntry(e models.CalorieEntry) error {
	p, err := c.GetProfile()
	if err != nil {
		return err
	}
	if p.HasCalorieEntry(e.Date) {
		return fmt.Errorf("append calorie entry: entry for %s already exists",
			models.DateOnly(e.Date).Format(dateFormat))
	}
	return c.ReplaceCalorieLog(append(p.CalorieLog, e))
}

// ReplaceCalorieLog swaps the entire log, used by the seed transition.
func (c *Client) ReplaceCalorieLog(entries []models.CalorieEntry) error {
	data, err := marshalJSON(entries)
	if err != nil {
		return fmt.Errorf("marshal calorie log: %w", err)
	}
	return c.set(CalorieLogKey, data)
}
