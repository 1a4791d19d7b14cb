package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/neves/fun-claw/internal/agent"
	"github.com/neves/fun-claw/internal/config"
	"github.com/neves/fun-claw/internal/logging"
	"github.com/neves/fun-claw/internal/mcp"
	"github.com/neves/fun-claw/internal/providers"
)

const (
	connectTimeout = 30 * time.Second
	turnTimeout    = 2 * time.Minute
)

func newChatCmd() *cobra.Command {
	var (
		modelFlag    string
		baseURLFlag  string
		serverFlag   string
		maxStepsFlag int
		configFlag   string
		logLevel     string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the weekend helper",
		Long: `Start an interactive chat session. The model runs locally (Ollama by
default) and can call the fun tools over MCP. The tool server subprocess
is spawned automatically.

Examples:
  fun-claw chat
  fun-claw chat --model llama3.1:8b
  fun-claw chat --server "python server_fun.py"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(modelFlag, baseURLFlag, serverFlag, maxStepsFlag, configFlag, logLevel)
		},
	}

	cmd.Flags().StringVar(&modelFlag, "model", "", "Model name (default from config, mistral:7b)")
	cmd.Flags().StringVar(&baseURLFlag, "base-url", "", "OpenAI-compatible endpoint (default http://localhost:11434/v1)")
	cmd.Flags().StringVar(&serverFlag, "server", "", "Tool server command (default: this binary with 'serve')")
	cmd.Flags().IntVar(&maxStepsFlag, "max-steps", 0, "Max tool steps per turn (default 8)")
	cmd.Flags().StringVar(&configFlag, "config", "", "Config file path")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	return cmd
}

func runChat(modelFlag, baseURLFlag, serverFlag string, maxStepsFlag int, configFlag, logLevel string) error {
	logger := logging.New(logging.Config{Level: logLevel})

	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if modelFlag != "" {
		cfg.Model.Name = modelFlag
	}
	if baseURLFlag != "" {
		cfg.Model.BaseURL = baseURLFlag
	}
	if maxStepsFlag > 0 {
		cfg.Agent.MaxSteps = maxStepsFlag
	}

	serverCmd, serverArgs, err := resolveToolServer(serverFlag, cfg)
	if err != nil {
		return err
	}

	// Spawn and handshake with the tool server
	mcpClient := mcp.NewClient()
	connectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := mcpClient.Connect(connectCtx, mcp.ServerConfig{
		Name:    "funtools",
		Command: serverCmd,
		Args:    serverArgs,
	}); err != nil {
		return fmt.Errorf("connect tool server: %w", err)
	}
	defer mcpClient.Close()

	toolNames := mcpClient.ToolNames()
	fmt.Printf("Connected tools: %v\n", toolNames)

	provider, err := providers.NewOpenAICompatibleProvider(cfg.Model.Provider, providers.ProviderConfig{
		APIKey:  cfg.GetAPIKey(),
		Model:   cfg.GetModel(),
		BaseURL: cfg.GetBaseURL(),
	})
	if err != nil {
		return fmt.Errorf("create provider: %w", err)
	}

	logger.Info("chatting with %s via %s", cfg.GetModel(), cfg.GetBaseURL())

	a := agent.NewAgent(agent.Config{
		Provider:    provider,
		Caller:      mcpClient,
		MaxSteps:    cfg.GetMaxSteps(),
		Model:       cfg.GetModel(),
		Temperature: cfg.GetTemperature(),
	})

	fmt.Println("🎉 Fun Claw - your cheerful weekend helper")
	fmt.Println("═" + strings.Repeat("═", 58))
	fmt.Printf("Model: %s\n", cfg.GetModel())
	fmt.Println("Commands: /help, /tools, /clear, /exit")
	fmt.Println("═" + strings.Repeat("═", 58))

	historyFile := filepath.Join(os.Getenv("HOME"), ".fun-claw-history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "You: ",
		HistoryFile:       historyFile,
		HistoryLimit:      1000,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Printf("Warning: readline not available, using basic input: %v\n", err)
		runBasicChatLoop(a, mcpClient)
		return nil
	}
	defer rl.Close()

	for {
		input, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println("\nInterrupted. Use /exit to quit.")
				continue
			}
			fmt.Println("\nExiting...")
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if done := handleChatInput(a, mcpClient, input); done {
			return nil
		}
	}
}

// handleChatInput processes one line of user input. Returns true when
// the session should end.
func handleChatInput(a *agent.Agent, mcpClient *mcp.Client, input string) bool {
	lower := strings.ToLower(input)

	switch {
	case input == "/exit" || input == "/quit" || lower == "exit" || lower == "quit":
		fmt.Println("Bye! Have a great weekend. 👋")
		return true

	case input == "/help":
		fmt.Println("Ask me about the weather, books, jokes, dog pictures, or trivia.")
		fmt.Println("  /tools - list connected tools")
		fmt.Println("  /clear - forget the conversation so far")
		fmt.Println("  /exit  - quit")
		return false

	case input == "/tools":
		fmt.Println("Connected tools:")
		for _, def := range mcpClient.GetToolDefinitions() {
			fmt.Printf("  • %s - %s\n", def.Name, def.Description)
		}
		return false

	case input == "/clear":
		a.Reset()
		fmt.Println("✓ Cleared. Fresh context.")
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
	defer cancel()

	// Trivia fast path: call the tool directly, no model round-trip
	if strings.Contains(lower, "trivia") {
		fmt.Println("\nAgent:")
		fmt.Println(a.Trivia(ctx))
		return false
	}

	fmt.Println("\nAgent:")
	fmt.Println(a.Run(ctx, input))
	return false
}

// runBasicChatLoop is the fallback when readline cannot grab the terminal
func runBasicChatLoop(a *agent.Agent, mcpClient *mcp.Client) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			fmt.Println("\nExiting...")
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if done := handleChatInput(a, mcpClient, input); done {
			return
		}
	}
}

// resolveToolServer decides which MCP server command to spawn. Empty
// config means "run this same binary with the serve argument".
func resolveToolServer(serverFlag string, cfg *config.Config) (string, []string, error) {
	if serverFlag != "" {
		parts := strings.Fields(serverFlag)
		return parts[0], parts[1:], nil
	}

	if cfg.Tools.Command != "" {
		return cfg.Tools.Command, cfg.Tools.Args, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", nil, fmt.Errorf("locate own executable for tool server: %w", err)
	}
	return exe, []string{"serve"}, nil
}
