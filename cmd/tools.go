package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/neves/fun-claw/internal/tools"
)

func newToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List available tools",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Available tools:")
			for _, t := range tools.All() {
				fmt.Printf("  • %s - %s\n", t.Name(), t.Description())
			}
		},
	}

	cmd.AddCommand(newToolsCallCmd())

	return cmd
}

func newToolsCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <name> [key=value...]",
		Short: "Invoke one tool directly (no model involved)",
		Long: `Call a tool by name with key=value arguments and print the JSON result.

Examples:
  fun-claw tools call random_joke
  fun-claw tools call get_weather latitude=52.52 longitude=13.41
  fun-claw tools call book_recs topic=gophers limit=3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			var tool tools.Tool
			for _, t := range tools.All() {
				if t.Name() == name {
					tool = t
					break
				}
			}
			if tool == nil {
				return fmt.Errorf("unknown tool: %s (try 'fun-claw tools')", name)
			}

			toolArgs := parseKeyValueArgs(args[1:])

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			result, err := tool.Execute(ctx, toolArgs)
			if err != nil {
				return fmt.Errorf("call %s: %w", name, err)
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

// parseKeyValueArgs turns key=value pairs into tool arguments, keeping
// numbers numeric so schema-typed tools see the right shapes
func parseKeyValueArgs(pairs []string) map[string]interface{} {
	args := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			continue
		}
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			args[key] = n
		} else {
			args[key] = value
		}
	}
	return args
}
