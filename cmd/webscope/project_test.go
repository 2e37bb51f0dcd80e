package main

import (
	"strings"
	"testing"

	"github.com/castellan/webscope/pkg/models"
)

func TestProjectOverviewSection(t *testing.T) {
	report := &models.ProjectReport{
		PackageName:      "acme-app",
		PackageVersion:   "1.2.0",
		TotalFiles:       3,
		FilesByExtension: map[string]int{"tsx": 2, "ts": 1},
		TopLevelDirs:     []string{"app", "lib"},
		Frameworks:       models.FrameworkFlags{HasReact: true, HasTypeScript: true},
	}

	section := projectOverview(report)

	if section.Title != "Project: acme-app@1.2.0" {
		t.Errorf("title = %q", section.Title)
	}
	if !strings.Contains(section.Content, "Total files: 3") {
		t.Errorf("content = %q", section.Content)
	}
	if !strings.Contains(section.Content, "app, lib") {
		t.Errorf("content missing top-level dirs: %q", section.Content)
	}
	if len(section.Sections) != 2 {
		t.Fatalf("expected 2 subsections, got %d", len(section.Sections))
	}

	exts := section.Sections[0]
	if exts.Title != "Files by Extension" {
		t.Errorf("first subsection = %q", exts.Title)
	}
	// Sorted by extension name.
	if exts.Content != ".ts: 1\n.tsx: 2" {
		t.Errorf("extension content = %q", exts.Content)
	}

	frameworks := section.Sections[1]
	if !strings.Contains(frameworks.Content, "React: yes") ||
		!strings.Contains(frameworks.Content, "Next: no") ||
		!strings.Contains(frameworks.Content, "TypeScript: yes") {
		t.Errorf("framework content = %q", frameworks.Content)
	}

	// json/toon output serializes the report, not the section tree.
	if section.RenderData() != report {
		t.Error("RenderData() should return the report")
	}
}

func TestProjectOverviewNoVersion(t *testing.T) {
	report := &models.ProjectReport{PackageName: "Unknown"}

	if got := projectOverview(report).Title; got != "Project: Unknown" {
		t.Errorf("title = %q", got)
	}
}
