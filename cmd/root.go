package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags
var Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "fun-claw",
	Short: "Fun Claw - a weekend-helper chat agent with MCP fun tools",
	Long: `Fun Claw is a demonstration chat agent. It talks to a locally hosted
language model (Ollama by default) and lets the model call five fun tools
(weather, books, jokes, dog pictures, trivia) over MCP. The same binary is
both the chat orchestrator and the tool server.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newToolsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("fun-claw", Version)
		},
	})
}
