package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neves/fun-claw/internal/logging"
	"github.com/neves/fun-claw/internal/server"
	"github.com/neves/fun-claw/internal/tools"
)

func newServeCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the FunTools MCP server on stdio",
		Long: `Serve the five fun tools (get_weather, book_recs, random_joke,
random_dog, trivia) over MCP on stdin/stdout.

This is what 'fun-claw chat' spawns as its tool subprocess, but any MCP
client can use it:

  fun-claw chat                 # spawns this automatically
  some-mcp-client -- fun-claw serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout is the MCP channel; the logger stays on stderr
			logger := logging.New(logging.Config{Level: logLevel})

			s := server.New(Version, tools.All(), logger)
			logger.Info("FunTools MCP server listening on stdio")

			if err := server.ServeStdio(s); err != nil {
				return fmt.Errorf("serve stdio: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}
