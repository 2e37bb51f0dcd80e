package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	toon "github.com/toon-format/toon-go"

	"github.com/castellan/webscope/internal/service/analysis"
	"github.com/castellan/webscope/pkg/models"
)

// AnalyzeInput is the base input for all analyze tools.
type AnalyzeInput struct {
	Path   string `json:"path,omitempty" jsonschema:"Project root to analyze. Defaults to current directory if empty."`
	Format string `json:"format,omitempty" jsonschema:"Output format: json (default), toon, or markdown."`
}

// Helper functions

func getPath(input AnalyzeInput) string {
	if input.Path == "" {
		return "."
	}
	return input.Path
}

func formatOutput(data any, format string) (string, error) {
	switch format {
	case "toon":
		out, err := toon.Marshal(data, toon.WithIndent(2))
		if err != nil {
			return "", err
		}
		return string(out), nil
	case "markdown", "md":
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", err
		}
		return "```json\n" + string(out) + "\n```", nil
	default:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

func toolResult(data any, format string) (*mcp.CallToolResult, any, error) {
	text, err := formatOutput(data, format)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	payload, err := json.Marshal(models.ErrorResult{Error: msg})
	if err != nil {
		payload = []byte(`{"error":"internal error"}`)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(payload)},
		},
		IsError: true,
	}, nil, nil
}

// Tool handlers

func handleAnalyzeProject(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, any, error) {
	svc := analysis.New()
	result, err := svc.AnalyzeProject(getPath(input), analysis.Options{})
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(result, input.Format)
}

func handleAnalyzeComponents(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, any, error) {
	svc := analysis.New()
	result, err := svc.AnalyzeComponents(getPath(input), analysis.Options{})
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(result, input.Format)
}

func handleAnalyzeRoutes(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, any, error) {
	svc := analysis.New()
	result, err := svc.AnalyzeRoutes(getPath(input), analysis.Options{})
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(result, input.Format)
}

func handleAnalyzeDependencies(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, any, error) {
	svc := analysis.New()
	result, err := svc.AnalyzeDependencies(getPath(input), analysis.Options{})
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(result, input.Format)
}

func handleAnalyzeStyles(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, any, error) {
	svc := analysis.New()
	result, err := svc.AnalyzeStyles(getPath(input), analysis.Options{})
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(result, input.Format)
}

func handleAnalyzeHooks(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, any, error) {
	svc := analysis.New()
	result, err := svc.AnalyzeHooks(getPath(input), analysis.Options{})
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(result, input.Format)
}

func handleAnalyzeAPI(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, any, error) {
	svc := analysis.New()
	result, err := svc.AnalyzeAPI(getPath(input), analysis.Options{})
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(result, input.Format)
}

func handleAnalyzeSchema(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, any, error) {
	svc := analysis.New()
	result, err := svc.AnalyzeSchema(getPath(input), analysis.Options{})
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(result, input.Format)
}
