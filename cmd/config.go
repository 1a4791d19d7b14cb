package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/neves/fun-claw/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.PersistentFlags().String("path", "", "Config file path (default: "+config.DefaultConfigPath()+")")

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file",
		RunE:  runConfigInit,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE:  runConfigShow,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show config file path",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.DefaultConfigPath())
		},
	})

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("path")
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config already exists at: %s\n", configPath)
		fmt.Println("Use 'fun-claw config show' to view it.")
		return nil
	}

	cfg := config.NewDefaultConfig()

	if err := config.SaveConfig(cfg, configPath); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("✅ Configuration initialized at: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("1. Make sure Ollama is running: ollama serve")
	fmt.Println("2. Pull the model: ollama pull mistral:7b")
	fmt.Println("3. Run 'fun-claw chat' to start chatting")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("path")
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	fmt.Printf("Configuration from: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}
