package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/switchubuntu/internal/analytics"
	"github.com/ziadkadry99/switchubuntu/internal/content"
	mcpserver "github.com/ziadkadry99/switchubuntu/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long: `Starts a Model Context Protocol (MCP) server on stdio, exposing the site
content (software catalog, FAQ, OS comparison, installation guide) and
the event counts as tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		catalog, err := content.Default()
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		var events *analytics.Store
		database, dbPath, err := openDatabase(cfg)
		if err != nil {
			// Content tools still work without the event trail.
			fmt.Fprintf(os.Stderr, "Warning: %v; event_counts will be unavailable\n", err)
		} else {
			defer database.Close()
			events = analytics.NewStore(database)
		}

		mcpserver.Version = Version
		fmt.Fprintf(os.Stderr, "switchubuntu MCP server started on stdio (db=%s)\n", dbPath)

		return mcpserver.NewServer(catalog, events).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
