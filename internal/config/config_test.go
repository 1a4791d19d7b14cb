package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if !strings.Contains(path, "fun-claw") {
		t.Errorf("DefaultConfigPath() = %q, expected to contain fun-claw", path)
	}
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Model.Provider != "ollama" {
		t.Errorf("Model.Provider = %q, want %q", cfg.Model.Provider, "ollama")
	}
	if cfg.Model.Name != "mistral:7b" {
		t.Errorf("Model.Name = %q, want %q", cfg.Model.Name, "mistral:7b")
	}
	if cfg.Agent.MaxSteps != 8 {
		t.Errorf("Agent.MaxSteps = %d, want 8", cfg.Agent.MaxSteps)
	}
	if cfg.HTTP.TimeoutSeconds != 20 {
		t.Errorf("HTTP.TimeoutSeconds = %d, want 20", cfg.HTTP.TimeoutSeconds)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("returns default when file not found", func(t *testing.T) {
		cfg, err := LoadConfig("/nonexistent/path/config.yaml")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		if cfg.Model.Provider != "ollama" {
			t.Errorf("Expected default config, got provider = %q", cfg.Model.Provider)
		}
	})

	t.Run("loads valid config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.yaml")

		configContent := `
model:
  provider: ollama
  name: "llama3.1:8b"
  base_url: "http://localhost:11434/v1"
  temperature: 0.5
agent:
  max_steps: 4
tools:
  command: python
  args: ["server_fun.py"]
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		if cfg.Model.Name != "llama3.1:8b" {
			t.Errorf("Model.Name = %q, want llama3.1:8b", cfg.Model.Name)
		}
		if cfg.Agent.MaxSteps != 4 {
			t.Errorf("Agent.MaxSteps = %d, want 4", cfg.Agent.MaxSteps)
		}
		if cfg.Tools.Command != "python" || len(cfg.Tools.Args) != 1 {
			t.Errorf("Tools = %+v, want python server_fun.py", cfg.Tools)
		}
	})

	t.Run("returns error on invalid YAML", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.yaml")

		invalidContent := `
model:
  - this is invalid yaml
  name: [should be string]
`
		if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestSaveConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := NewDefaultConfig()
	cfg.Agent.MaxSteps = 12

	err := SaveConfig(cfg, configPath)
	if err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if loaded.Agent.MaxSteps != 12 {
		t.Errorf("Loaded MaxSteps = %d, want 12", loaded.Agent.MaxSteps)
	}
}

func TestGetters(t *testing.T) {
	t.Run("defaults on zero values", func(t *testing.T) {
		cfg := &Config{}

		if got := cfg.GetMaxSteps(); got != 8 {
			t.Errorf("GetMaxSteps() = %d, want 8", got)
		}
		if got := cfg.GetBaseURL(); got != "http://localhost:11434/v1" {
			t.Errorf("GetBaseURL() = %q, want local Ollama", got)
		}
		if got := cfg.GetModel(); got != "mistral:7b" {
			t.Errorf("GetModel() = %q, want mistral:7b", got)
		}
		if got := cfg.GetTemperature(); got != 0.2 {
			t.Errorf("GetTemperature() = %v, want 0.2", got)
		}
	})

	t.Run("configured values win", func(t *testing.T) {
		cfg := &Config{
			Model: ModelConfig{Name: "llama3.1:8b", BaseURL: "http://other:11434/v1", Temperature: 0.7},
			Agent: AgentConfig{MaxSteps: 3},
		}

		if got := cfg.GetMaxSteps(); got != 3 {
			t.Errorf("GetMaxSteps() = %d, want 3", got)
		}
		if got := cfg.GetModel(); got != "llama3.1:8b" {
			t.Errorf("GetModel() = %q, want llama3.1:8b", got)
		}
		if got := cfg.GetTemperature(); got != 0.7 {
			t.Errorf("GetTemperature() = %v, want 0.7", got)
		}
	})
}

func TestGetAPIKey(t *testing.T) {
	t.Run("placeholder by default", func(t *testing.T) {
		cfg := NewDefaultConfig()
		if got := cfg.GetAPIKey(); got != "ollama" {
			t.Errorf("GetAPIKey() = %q, want placeholder", got)
		}
	})

	t.Run("config key wins over placeholder", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Model.APIKey = "secret"
		if got := cfg.GetAPIKey(); got != "secret" {
			t.Errorf("GetAPIKey() = %q, want secret", got)
		}
	})

	t.Run("environment wins over config", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Model.APIKey = "secret"
		t.Setenv("OLLAMA_API_KEY", "from-env")
		if got := cfg.GetAPIKey(); got != "from-env" {
			t.Errorf("GetAPIKey() = %q, want from-env", got)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid default config", func(t *testing.T) {
		cfg := NewDefaultConfig()
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("empty model name", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Model.Name = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() expected error for empty model name")
		}
	})

	t.Run("negative max steps", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Agent.MaxSteps = -1
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() expected error for negative max_steps")
		}
	})

	t.Run("args without command", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Tools.Args = []string{"serve"}
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() expected error for args without command")
		}
	})
}
