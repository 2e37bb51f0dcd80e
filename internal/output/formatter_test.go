package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"toon", FormatToon},
		{"text", FormatText},
		{"", FormatText},
		{"bogus", FormatText},
	}
	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTableRenderMarkdown(t *testing.T) {
	table := NewTable(
		"Routes",
		[]string{"Path", "Kind"},
		[][]string{{"/home", "jsx_element"}},
		[]string{"Total: 1", ""},
		nil,
	)

	var sb strings.Builder
	if err := table.RenderMarkdown(&sb); err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "## Routes") {
		t.Error("missing title heading")
	}
	if !strings.Contains(out, "| Path | Kind |") {
		t.Error("missing header row")
	}
	if !strings.Contains(out, "| /home | jsx_element |") {
		t.Error("missing data row")
	}
}

func TestTableRenderDataFallsBackToRows(t *testing.T) {
	table := NewTable("", []string{"Name"}, [][]string{{"flex"}}, nil, nil)

	data, ok := table.RenderData().([]map[string]string)
	if !ok {
		t.Fatalf("RenderData() = %T", table.RenderData())
	}
	if data[0]["Name"] != "flex" {
		t.Errorf("data = %v", data)
	}
}

func TestTableRenderDataPrefersStructured(t *testing.T) {
	payload := map[string]int{"total": 1}
	table := NewTable("", []string{"Name"}, nil, nil, payload)

	if _, ok := table.RenderData().(map[string]int); !ok {
		t.Errorf("RenderData() should return the structured payload, got %T", table.RenderData())
	}
}

func TestSectionRenderText(t *testing.T) {
	section := &Section{
		Title:   "Overview",
		Content: "Total files: 2",
		Sections: []*Section{
			{Title: "Frameworks", Content: "React: yes"},
		},
	}

	var sb strings.Builder
	if err := section.RenderText(&sb, false); err != nil {
		t.Fatalf("RenderText() error: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "Overview\n========") {
		t.Error("top-level title should be underlined with =")
	}
	if !strings.Contains(out, "Frameworks\n----------") {
		t.Error("subsection title should be underlined with -")
	}
	if !strings.Contains(out, "React: yes") {
		t.Error("missing subsection content")
	}
}

func TestSectionRenderMarkdown(t *testing.T) {
	section := &Section{
		Title: "Overview",
		Sections: []*Section{
			{Title: "Frameworks", Content: "React: yes"},
		},
	}

	var sb strings.Builder
	if err := section.RenderMarkdown(&sb); err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "## Overview") {
		t.Error("top-level heading should be level 2")
	}
	if !strings.Contains(out, "### Frameworks") {
		t.Error("subsection heading should be level 3")
	}
}

func TestSectionRenderDataPrefersStructured(t *testing.T) {
	payload := map[string]int{"total": 1}
	section := &Section{Title: "Overview", Data: payload}

	if _, ok := section.RenderData().(map[string]int); !ok {
		t.Errorf("RenderData() should return the structured payload, got %T", section.RenderData())
	}

	plain := &Section{Title: "Overview"}
	if plain.RenderData() != plain {
		t.Error("RenderData() without a payload should return the section itself")
	}
}

func TestFormatterWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	f, err := NewFormatter(FormatText, path, true)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}
	f.Warning("no package manifest found")
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// Color is disabled for file output, so the prefix form is used.
	if got := string(content); got != "WARNING: no package manifest found\n" {
		t.Errorf("warning output = %q", got)
	}
}
