// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/mealplan/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to plan meals, build shopping
lists, and track nutrition through a standardized protocol. The server
communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "mealplan": {
        "command": "mealplan",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  add_meal                 Create a meal with macros and ingredients
  list_meals               List meals in the catalog
  delete_meal              Delete a meal by ID
  assign_meal              Assign a meal to a day's slot
  day_nutrition            Sum a day's calories and macros
  generate_shopping_list   Rebuild the shopping list from the week
  weight_projection        12-week weight projection
  log_today                Append today's calories to the log

AVAILABLE RESOURCES:

  mealplan://week       This week's schedule with per-day totals
  mealplan://shopping   The stored shopping list
  mealplan://summary    Profile, TDEE, and recent calorie history`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
