package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/neves/fun-claw/internal/ai"
)

// MockProvider replays scripted responses for testing the agent loop
type MockProvider struct {
	mu        sync.Mutex
	responses []string
	errs      []error
	calls     int
}

// NewMockProvider creates a mock that returns the given responses in order.
// After the script runs out it keeps returning the last entry.
func NewMockProvider(responses ...string) *MockProvider {
	return &MockProvider{responses: responses}
}

// FailWith makes the next calls return err before any scripted response
func (p *MockProvider) FailWith(errs ...error) *MockProvider {
	p.errs = errs
	return p
}

func (p *MockProvider) Name() string {
	return "mock"
}

// Calls returns how many times Chat was invoked
func (p *MockProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *MockProvider) Chat(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	idx := p.calls
	p.calls++

	if idx < len(p.errs) {
		return nil, p.errs[idx]
	}
	idx -= len(p.errs)

	if len(p.responses) == 0 {
		return nil, fmt.Errorf("mock provider has no scripted responses")
	}
	if idx >= len(p.responses) {
		idx = len(p.responses) - 1
	}

	return &ai.ChatResponse{
		Content:      p.responses[idx],
		FinishReason: "stop",
	}, nil
}
