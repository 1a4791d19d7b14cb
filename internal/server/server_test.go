package server

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/neves/fun-claw/internal/logging"
	"github.com/neves/fun-claw/internal/tools"
)

// stubTool is a minimal tools.Tool for handler tests
type stubTool struct {
	tools.BaseTool
	result interface{}
	err    error
}

func newStubTool(name string, result interface{}, err error) *stubTool {
	return &stubTool{
		BaseTool: tools.NewBaseTool(name, "stub tool", map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		}),
		result: result,
		err:    err,
	}
}

func (t *stubTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return t.result, t.err
}

func testLogger() *logging.Logger {
	return logging.New(logging.Config{Level: "error"})
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func TestNewRegistersAllTools(t *testing.T) {
	s := New("test", tools.All(), testLogger())
	if s == nil {
		t.Fatal("New() returned nil server")
	}
}

func TestMakeHandlerSuccess(t *testing.T) {
	tool := newStubTool("stub", map[string]interface{}{"ok": true, "joke": "ha"}, nil)
	handler := makeHandler(tool, testLogger())

	result, err := handler(context.Background(), callRequest("stub", map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if result.IsError {
		t.Fatal("handler returned error result")
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want TextContent", result.Content[0])
	}
	if !strings.Contains(text.Text, `"joke":"ha"`) {
		t.Errorf("payload = %q, want joke field", text.Text)
	}
}

func TestMakeHandlerToolError(t *testing.T) {
	tool := newStubTool("stub", nil, errors.New("topic parameter is required"))
	handler := makeHandler(tool, testLogger())

	result, err := handler(context.Background(), callRequest("stub", map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handler error = %v, tool errors should become tool results", err)
	}
	if !result.IsError {
		t.Fatal("expected error result for invalid arguments")
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want TextContent", result.Content[0])
	}
	if !strings.Contains(text.Text, "topic parameter is required") {
		t.Errorf("error text = %q, want argument error", text.Text)
	}
}
