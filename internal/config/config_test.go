// ABOUTME: Tests for meal planner configuration management.
// ABOUTME: Covers defaults, backend selection, and path expansion.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "charm"}
	if got := cfg.GetBackend(); got != "charm" {
		t.Errorf("GetBackend() = %q, want %q", got, "charm")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetDataDir(); got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/mealplan-test"}
	if got := cfg.GetDataDir(); got != "/tmp/mealplan-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/mealplan-test")
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "redis"}
	if _, err := cfg.OpenStorage(); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "", ""},
		{"absolute", "/tmp/foo", "/tmp/foo"},
		{"tilde", "~", home},
		{"tilde slash", "~/data/mealplan", filepath.Join(home, "data/mealplan")},
		{"relative", "data/mealplan", "data/mealplan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.path); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
