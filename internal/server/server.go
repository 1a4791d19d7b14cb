// Package server exposes the fun tools as an MCP stdio server.
package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/neves/fun-claw/internal/logging"
	"github.com/neves/fun-claw/internal/tools"
)

// ServerName is the MCP implementation name announced to clients
const ServerName = "FunTools"

// New builds the MCP server with the given tool set registered
func New(version string, toolSet []tools.Tool, logger *logging.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(false),
	)

	for _, t := range toolSet {
		schema, err := json.Marshal(t.Parameters())
		if err != nil {
			// Schemas are static maps; this only fires on a programming error
			logger.Error("skip tool %s: marshal schema: %v", t.Name(), err)
			continue
		}

		mcpTool := mcp.NewToolWithRawSchema(t.Name(), t.Description(), schema)
		s.AddTool(mcpTool, makeHandler(t, logger))
		logger.Debug("registered tool: %s", t.Name())
	}

	return s
}

// ServeStdio runs the server until stdin closes
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// makeHandler bridges a tools.Tool into an MCP tool handler. Invalid
// arguments surface as MCP tool errors; runtime failures are already
// folded into the result payload by the tool itself.
func makeHandler(t tools.Tool, logger *logging.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		logger.Debug("call %s args=%v", t.Name(), args)

		result, err := t.Execute(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s: %v", t.Name(), err)), nil
		}

		payload, err := json.Marshal(result)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s: encode result: %v", t.Name(), err)), nil
		}

		return mcp.NewToolResultText(string(payload)), nil
	}
}
