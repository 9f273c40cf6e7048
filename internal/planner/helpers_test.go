// ABOUTME: Shared helpers for planner tests.
// ABOUTME: Provides a fixed reference date so tests never depend on the clock.
package planner

import "time"

func testDate() time.Time {
	return time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)
}
