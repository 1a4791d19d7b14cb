package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Model ModelConfig      `yaml:"model"`
	Agent AgentConfig      `yaml:"agent"`
	Tools ToolServerConfig `yaml:"tools"`
	HTTP  HTTPConfig       `yaml:"http"`
}

// ModelConfig selects the language model runtime
type ModelConfig struct {
	Provider    string  `yaml:"provider"` // ollama or any openai-compatible endpoint
	Name        string  `yaml:"name"`
	BaseURL     string  `yaml:"base_url,omitempty"`
	APIKey      string  `yaml:"api_key,omitempty"`
	Temperature float64 `yaml:"temperature"`
}

// AgentConfig bounds the conversation loop
type AgentConfig struct {
	MaxSteps int `yaml:"max_steps"` // Tool steps per user turn before giving up
}

// ToolServerConfig defines how the MCP tool server is launched.
// Empty command means "run this binary with the serve argument".
type ToolServerConfig struct {
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty"`
}

type HTTPConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// DefaultConfigPath returns the default config path
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./fun-claw.yaml"
	}
	return filepath.Join(home, ".zen", "fun-claw", "config.yaml")
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewDefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}

	return &config, nil
}

// SaveConfig saves configuration to file
func SaveConfig(config *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// NewDefaultConfig returns a default configuration
func NewDefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			Provider:    "ollama",
			Name:        "mistral:7b",
			BaseURL:     "http://localhost:11434/v1",
			Temperature: 0.2,
		},
		Agent: AgentConfig{
			MaxSteps: 8,
		},
		HTTP: HTTPConfig{
			TimeoutSeconds: 20,
		},
	}
}

// GetMaxSteps returns the per-turn step limit (defaults to 8)
func (c *Config) GetMaxSteps() int {
	if c.Agent.MaxSteps <= 0 {
		return 8
	}
	return c.Agent.MaxSteps
}

// GetBaseURL returns the model endpoint (defaults to local Ollama)
func (c *Config) GetBaseURL() string {
	if c.Model.BaseURL != "" {
		return c.Model.BaseURL
	}
	return "http://localhost:11434/v1"
}

// GetModel returns the configured model name
func (c *Config) GetModel() string {
	if c.Model.Name != "" {
		return c.Model.Name
	}
	return "mistral:7b"
}

// GetTemperature returns the sampling temperature
func (c *Config) GetTemperature() float64 {
	if c.Model.Temperature > 0 {
		return c.Model.Temperature
	}
	return 0.2
}

// GetAPIKey returns the API key from environment or config.
// Local Ollama ignores the key entirely, so a placeholder is fine.
func (c *Config) GetAPIKey() string {
	provider := c.Model.Provider
	if provider == "" {
		provider = "ollama"
	}

	envKey := os.Getenv(fmt.Sprintf("%s_API_KEY", strings.ToUpper(provider)))
	if envKey != "" {
		return envKey
	}

	if c.Model.APIKey != "" {
		return c.Model.APIKey
	}

	return "ollama"
}

// Validate checks the configuration for obvious mistakes
func (c *Config) Validate() error {
	if c.Model.Name == "" {
		return fmt.Errorf("model.name must not be empty")
	}
	if c.Agent.MaxSteps < 0 {
		return fmt.Errorf("agent.max_steps must be >= 0, got %d", c.Agent.MaxSteps)
	}
	if c.HTTP.TimeoutSeconds < 0 {
		return fmt.Errorf("http.timeout_seconds must be >= 0, got %d", c.HTTP.TimeoutSeconds)
	}
	if c.Tools.Command == "" && len(c.Tools.Args) > 0 {
		return fmt.Errorf("tools.args set without tools.command")
	}
	return nil
}
