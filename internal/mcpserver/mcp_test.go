package mcpserver

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/castellan/webscope/pkg/models"
)

// TestServerCreation verifies the MCP server can be created without panicking.
func TestServerCreation(t *testing.T) {
	server := NewServer("1.0.0-test")
	if server == nil {
		t.Fatal("NewServer() returned nil")
	}
	if server.server == nil {
		t.Fatal("NewServer().server is nil")
	}
}

// TestServerCreationEmptyVersion verifies empty version defaults to "dev".
func TestServerCreationEmptyVersion(t *testing.T) {
	if server := NewServer(""); server == nil {
		t.Fatal("NewServer(\"\") returned nil")
	}
}

// TestToolDescriptions verifies all description functions return guidance
// sections.
func TestToolDescriptions(t *testing.T) {
	descriptions := map[string]func() string{
		"project":      describeProject,
		"components":   describeComponents,
		"routes":       describeRoutes,
		"dependencies": describeDependencies,
		"styles":       describeStyles,
		"hooks":        describeHooks,
		"api":          describeAPI,
		"schema":       describeSchema,
	}

	for name, fn := range descriptions {
		t.Run(name, func(t *testing.T) {
			desc := fn()
			if desc == "" {
				t.Fatalf("%s description is empty", name)
			}
			for _, section := range []string{"USE WHEN:", "INTERPRETING RESULTS:", "METRICS RETURNED:"} {
				if !strings.Contains(desc, section) {
					t.Errorf("%s description missing %s section", name, section)
				}
			}
		})
	}
}

func TestFormatOutput(t *testing.T) {
	data := map[string]int{"total": 3}

	jsonOut, err := formatOutput(data, "")
	if err != nil {
		t.Fatalf("formatOutput(json) error: %v", err)
	}
	if !strings.Contains(jsonOut, `"total": 3`) {
		t.Errorf("json output = %q", jsonOut)
	}

	mdOut, err := formatOutput(data, "markdown")
	if err != nil {
		t.Fatalf("formatOutput(markdown) error: %v", err)
	}
	if !strings.HasPrefix(mdOut, "```json") {
		t.Errorf("markdown output should be fenced: %q", mdOut)
	}

	if _, err := formatOutput(data, "toon"); err != nil {
		t.Fatalf("formatOutput(toon) error: %v", err)
	}
}

func TestToolErrorStructured(t *testing.T) {
	res, _, err := toolError("no package.json found in /tmp/x")
	if err != nil {
		t.Fatalf("toolError() error: %v", err)
	}
	if !res.IsError {
		t.Error("expected IsError")
	}

	text := res.Content[0].(*mcp.TextContent).Text
	var payload models.ErrorResult
	if jsonErr := json.Unmarshal([]byte(text), &payload); jsonErr != nil {
		t.Fatalf("error payload is not JSON: %q", text)
	}
	if payload.Error != "no package.json found in /tmp/x" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestPromptFilesEmbedded(t *testing.T) {
	entries, err := promptFiles.ReadDir("prompts")
	if err != nil {
		t.Fatalf("reading embedded prompts: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 prompt files, got %d", len(entries))
	}

	for _, entry := range entries {
		t.Run(entry.Name(), func(t *testing.T) {
			content, err := promptFiles.ReadFile("prompts/" + entry.Name())
			if err != nil {
				t.Fatal(err)
			}
			fm, body := parseFrontmatter(content)
			if fm.Description == "" {
				t.Error("prompt missing description")
			}
			if fm.Argument != "target" {
				t.Errorf("argument = %q, want target", fm.Argument)
			}
			if !strings.Contains(body, "{{target}}") {
				t.Error("prompt body missing {{target}} placeholder")
			}
		})
	}
}

func TestParseFrontmatter(t *testing.T) {
	fm, body := parseFrontmatter([]byte("---\ndescription: test prompt\nargument: target\n---\n\nBody with {{target}}.\n"))
	if fm.Description != "test prompt" {
		t.Errorf("description = %q", fm.Description)
	}
	if body != "Body with {{target}}.\n" {
		t.Errorf("body = %q", body)
	}

	// No frontmatter: whole content is the body.
	fm, body = parseFrontmatter([]byte("just a body"))
	if fm.Description != "" || body != "just a body" {
		t.Errorf("fm = %+v, body = %q", fm, body)
	}
}
