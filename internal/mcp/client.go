package mcp

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/neves/fun-claw/internal/ai"
)

// ServerConfig defines an MCP server connection
type ServerConfig struct {
	Name    string   // Display name for the server
	Command string   // Command to run (e.g., "python", the fun-claw binary)
	Args    []string // Arguments to the command
	Env     []string // Environment variables (optional)
}

// Client manages connections to MCP servers
type Client struct {
	mu      sync.RWMutex
	servers map[string]*serverConn
}

type serverConn struct {
	config    ServerConfig
	transport *transport.Stdio
	client    *client.Client
	tools     []mcp.Tool
}

// NewClient creates a new MCP client manager
func NewClient() *Client {
	return &Client{
		servers: make(map[string]*serverConn),
	}
}

// Connect spawns an MCP server subprocess and performs the initialize handshake
func (c *Client) Connect(ctx context.Context, cfg ServerConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.servers[cfg.Name]; exists {
		return fmt.Errorf("server %s already connected", cfg.Name)
	}

	log.Printf("[MCP] Connecting to server: %s (%s %v)", cfg.Name, cfg.Command, cfg.Args)

	stdio := transport.NewStdio(cfg.Command, cfg.Env, cfg.Args...)
	if err := stdio.Start(ctx); err != nil {
		return fmt.Errorf("failed to start MCP transport: %w", err)
	}

	mcpClient := client.NewClient(stdio)

	initReq := mcp.InitializeRequest{}
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    "fun-claw",
		Version: "1.0.0",
	}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION

	if _, err := mcpClient.Initialize(ctx, initReq); err != nil {
		stdio.Close()
		return fmt.Errorf("failed to initialize MCP connection: %w", err)
	}

	toolsResp, err := mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		stdio.Close()
		return fmt.Errorf("failed to list MCP tools: %w", err)
	}

	log.Printf("[MCP] Server %s connected with %d tools", cfg.Name, len(toolsResp.Tools))
	for _, tool := range toolsResp.Tools {
		log.Printf("[MCP]   - %s: %s", tool.Name, tool.Description)
	}

	c.servers[cfg.Name] = &serverConn{
		config:    cfg,
		transport: stdio,
		client:    mcpClient,
		tools:     toolsResp.Tools,
	}

	return nil
}

// Disconnect disconnects from an MCP server
func (c *Client) Disconnect(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, exists := c.servers[name]
	if !exists {
		return fmt.Errorf("server %s not connected", name)
	}

	if err := conn.transport.Close(); err != nil {
		log.Printf("[MCP] Warning: error closing connection to %s: %v", name, err)
	}

	delete(c.servers, name)
	log.Printf("[MCP] Disconnected from server: %s", name)
	return nil
}

// Close closes all MCP connections
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for name, conn := range c.servers {
		if err := conn.transport.Close(); err != nil {
			log.Printf("[MCP] Warning: error closing %s: %v", name, err)
		}
	}
	c.servers = make(map[string]*serverConn)
}

// ToolNames returns the names of all tools across connected servers
func (c *Client) ToolNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var names []string
	for _, conn := range c.servers {
		for _, tool := range conn.tools {
			names = append(names, tool.Name)
		}
	}
	return names
}

// HasTool reports whether any connected server exposes the named tool
func (c *Client) HasTool(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, conn := range c.servers {
		for _, tool := range conn.tools {
			if tool.Name == name {
				return true
			}
		}
	}
	return false
}

// CallTool calls a tool on whichever connected server exposes it.
// It returns the concatenated text content of the result.
func (c *Client) CallTool(ctx context.Context, toolName string, args map[string]interface{}) (string, error) {
	c.mu.RLock()
	var target *serverConn
	for _, conn := range c.servers {
		for _, tool := range conn.tools {
			if tool.Name == toolName {
				target = conn
				break
			}
		}
	}
	c.mu.RUnlock()

	if target == nil {
		return "", fmt.Errorf("no connected server exposes tool %s", toolName)
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = toolName
	req.Params.Arguments = args

	result, err := target.client.CallTool(ctx, req)
	if err != nil {
		return "", fmt.Errorf("MCP tool call failed: %w", err)
	}

	var content string
	for _, item := range result.Content {
		if textContent, ok := item.(mcp.TextContent); ok {
			content += textContent.Text
		}
	}

	if result.IsError {
		return "", fmt.Errorf("MCP tool error: %s", content)
	}

	return content, nil
}

// GetToolDefinitions returns AI-facing definitions for all connected tools
func (c *Client) GetToolDefinitions() []ai.Tool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var defs []ai.Tool
	for _, conn := range c.servers {
		for _, mcpTool := range conn.tools {
			defs = append(defs, ai.Tool{
				Name:        mcpTool.Name,
				Description: mcpTool.Description,
				Parameters: map[string]interface{}{
					"type":       "object",
					"properties": mcpTool.InputSchema.Properties,
					"required":   mcpTool.InputSchema.Required,
				},
			})
		}
	}
	return defs
}
