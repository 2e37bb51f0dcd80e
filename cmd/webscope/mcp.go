package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/castellan/webscope/internal/mcpserver"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Start MCP (Model Context Protocol) server for LLM tool integration",
		Description: `Starts an MCP server over stdio transport that exposes webscope's
analyzers as tools that LLMs can invoke, plus project resources and
guided prompts.

To use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "webscope": {
        "command": "webscope",
        "args": ["mcp"]
      }
    }
  }

Available tools:
  - analyze_project        Manifest metadata, file counts, framework flags
  - analyze_components     UI component catalog with presence flags
  - analyze_routes         Routing table with protection flags
  - analyze_dependencies   Dependency category taxonomy
  - analyze_styles         Ranked styling-utility class usage
  - analyze_hooks          Ranked hook usage, builtin and custom
  - analyze_api            Outbound call sites: fetch, clients, tables
  - analyze_schema         Database tables, policies, functions, types

Available resources:
  - project://structure    Flat file listing
  - project://package      Project overview
  - project://components   Component catalog
  - project://routes       Routing table`,
		Action: runMCPCmd,
	}
}

func runMCPCmd(c *cli.Context) error {
	server := mcpserver.NewServer(version)
	return server.Run(context.Background())
}
