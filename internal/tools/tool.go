package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Tool represents an executable tool that the AI can call
type Tool interface {
	// Name returns the tool name (used by AI to call it)
	Name() string

	// Description returns a human-readable description for the AI
	Description() string

	// Parameters returns the JSON schema for the tool parameters
	Parameters() map[string]interface{}

	// Execute runs the tool with the given arguments
	Execute(ctx context.Context, args map[string]interface{}) (interface{}, error)
}

// BaseTool provides common functionality for tools
type BaseTool struct {
	name        string
	description string
	parameters  map[string]interface{}
}

// NewBaseTool creates a new base tool
func NewBaseTool(name, description string, parameters map[string]interface{}) BaseTool {
	return BaseTool{
		name:        name,
		description: description,
		parameters:  parameters,
	}
}

func (t BaseTool) Name() string {
	return t.name
}

func (t BaseTool) Description() string {
	return t.description
}

func (t BaseTool) Parameters() map[string]interface{} {
	return t.parameters
}

// DefaultTimeout is the outbound HTTP timeout shared by all tools
const DefaultTimeout = 20 * time.Second

// newHTTPClient returns the client used for third-party API calls
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON performs a GET request and decodes the JSON body into out
func getJSON(ctx context.Context, client *http.Client, rawURL string, params url.Values, out interface{}) error {
	if len(params) > 0 {
		rawURL = rawURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	return nil
}

// errResult wraps a runtime failure so the model sees a short error string
// instead of the turn aborting
func errResult(err error) map[string]interface{} {
	return map[string]interface{}{
		"ok":    false,
		"error": err.Error(),
	}
}

// All returns the full fun tool set served over MCP
func All() []Tool {
	return []Tool{
		NewWeatherTool(),
		NewBookRecsTool(),
		NewJokeTool(),
		NewDogTool(),
		NewTriviaTool(),
	}
}
