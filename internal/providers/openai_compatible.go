package providers

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/neves/fun-claw/internal/ai"
)

// ProviderConfig holds configuration for AI providers
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string // Optional custom base URL
}

// OpenAICompatibleProvider handles any OpenAI-compatible chat API.
// The default target is a local Ollama instance, which serves the
// /v1 completions surface and ignores the API key.
type OpenAICompatibleProvider struct {
	client *openai.Client
	config ProviderConfig
	name   string
}

// DefaultOllamaBaseURL is the local Ollama OpenAI-compatible endpoint
const DefaultOllamaBaseURL = "http://localhost:11434/v1"

// NewOpenAICompatibleProvider creates a provider for any OpenAI-compatible API
func NewOpenAICompatibleProvider(name string, config ProviderConfig) (*OpenAICompatibleProvider, error) {
	if config.BaseURL == "" {
		config.BaseURL = DefaultOllamaBaseURL
	}
	if config.Model == "" {
		config.Model = "mistral:7b"
	}
	if config.APIKey == "" {
		// go-openai insists on a token; Ollama never checks it
		config.APIKey = "ollama"
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = config.BaseURL

	client := openai.NewClientWithConfig(clientConfig)
	return &OpenAICompatibleProvider{
		client: client,
		config: config,
		name:   name,
	}, nil
}

func (p *OpenAICompatibleProvider) Name() string {
	return p.name
}

// Chat implements the AI provider interface
func (p *OpenAICompatibleProvider) Chat(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	model := p.config.Model
	if req.Model != "" && req.Model != "default" {
		model = req.Model
	}

	completionReq := openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	}

	if req.Temperature > 0 {
		completionReq.Temperature = float32(req.Temperature)
	}

	if req.MaxTokens > 0 {
		completionReq.MaxTokens = req.MaxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, completionReq)
	if err != nil {
		return nil, fmt.Errorf("%s API error: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s API returned no choices", p.name)
	}

	return &ai.ChatResponse{
		Content:      resp.Choices[0].Message.Content,
		FinishReason: string(resp.Choices[0].FinishReason),
	}, nil
}
