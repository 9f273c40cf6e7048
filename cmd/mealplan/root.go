// ABOUTME: Root Cobra command for mealplan CLI.
// ABOUTME: Handles storage backend lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/mealplan/internal/config"
	"github.com/harperreed/mealplan/internal/storage"
	"github.com/spf13/cobra"
)

var (
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "mealplan",
	Short: "Weekly meal planner and nutrition tracker",
	Long: `Mealplan is a CLI tool for planning weekly meals and tracking nutrition.

WHAT IT DOES:

  Catalog      store meals with calories, macros, and ingredient lines
  Planning     assign meals to breakfast/lunch/dinner/snack slots per day
  Shopping     aggregate the week's ingredients into a shopping list
  Nutrition    daily calorie and macro totals against your target
  Metabolic    BMR/TDEE from your profile, 12-week weight projection
  Logging      rolling daily calorie log

QUICK START:

  $ mealplan meal add "Oatmeal" -t breakfast --calories 320   # Add a meal
  $ mealplan plan assign a1b2c3d4 breakfast                   # Plan today's breakfast
  $ mealplan shopping generate                                # Build shopping list
  $ mealplan nutrition                                        # Today's totals
  $ mealplan profile set --weight 80 --height 170 --age 35    # Set biometrics
  $ mealplan project                                          # Weight projection

SYNC (OPTIONAL):

  Set "backend": "charm" in the config to sync data across devices
  using Charm Cloud. Data is E2E encrypted with your SSH key.

  $ mealplan sync link      # Link device to your Charm account
  $ mealplan sync status    # Check sync status

MCP INTEGRATION:

  Run 'mealplan mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants. Add to your
  Claude config:

  {
    "mcpServers": {
      "mealplan": { "command": "mealplan", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data is stored in SQLite at ~/.local/share/mealplan/mealplan.db by
  default. The charm backend stores data in Charm KV instead and syncs
  automatically on each write operation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
