// Package mcpserver exposes webscope analyses as MCP tools, resources, and
// prompts over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and registers all webscope analysis tools.
type Server struct {
	server *mcp.Server
}

// NewServer creates a new MCP server with all webscope tools registered.
func NewServer(version string) *Server {
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "webscope",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server}
	s.registerTools()
	s.registerResources()
	s.registerPrompts()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// registerTools adds all webscope analyzer tools to the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_project",
		Description: describeProject(),
	}, handleAnalyzeProject)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_components",
		Description: describeComponents(),
	}, handleAnalyzeComponents)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_routes",
		Description: describeRoutes(),
	}, handleAnalyzeRoutes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_dependencies",
		Description: describeDependencies(),
	}, handleAnalyzeDependencies)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_styles",
		Description: describeStyles(),
	}, handleAnalyzeStyles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_hooks",
		Description: describeHooks(),
	}, handleAnalyzeHooks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_api",
		Description: describeAPI(),
	}, handleAnalyzeAPI)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_schema",
		Description: describeSchema(),
	}, handleAnalyzeSchema)
}
