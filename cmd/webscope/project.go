package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/castellan/webscope/internal/analyzer"
	"github.com/castellan/webscope/internal/output"
	"github.com/castellan/webscope/internal/service/analysis"
	"github.com/castellan/webscope/pkg/models"
)

func projectCmd() *cli.Command {
	return &cli.Command{
		Name:      "project",
		Usage:     "Show project overview: manifest metadata, file counts, framework flags",
		ArgsUsage: "[path]",
		Action:    runProject,
	}
}

func runProject(c *cli.Context) error {
	svc, err := newService(c)
	if err != nil {
		return err
	}

	result, err := svc.AnalyzeProject(getRoot(c), analysis.Options{})
	if err != nil {
		return fmt.Errorf("project analysis failed: %w", err)
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if formatter.Format() == output.FormatText && result.PackageName == analyzer.UnknownPackageName {
		formatter.Warning("no package manifest found; framework detection is limited")
	}

	return formatter.Output(projectOverview(result))
}

// projectOverview lays the report out as a section tree for the text and
// markdown renderers; json/toon serialize the report itself via Data.
func projectOverview(result *models.ProjectReport) *output.Section {
	name := result.PackageName
	if result.PackageVersion != "" {
		name += "@" + result.PackageVersion
	}

	boolStr := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	exts := make([]string, 0, len(result.FilesByExtension))
	for ext := range result.FilesByExtension {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	extLines := make([]string, 0, len(exts))
	for _, ext := range exts {
		extLines = append(extLines, fmt.Sprintf(".%s: %d", ext, result.FilesByExtension[ext]))
	}

	frameworks := []string{
		"React: " + boolStr(result.Frameworks.HasReact),
		"Next: " + boolStr(result.Frameworks.HasNext),
		"Supabase: " + boolStr(result.Frameworks.HasSupabase),
		"Tailwind: " + boolStr(result.Frameworks.HasTailwind),
		"TypeScript: " + boolStr(result.Frameworks.HasTypeScript),
	}

	return &output.Section{
		Title: "Project: " + name,
		Content: fmt.Sprintf("Total files: %d\nTop-level dirs: %s",
			result.TotalFiles, strings.Join(result.TopLevelDirs, ", ")),
		Sections: []*output.Section{
			{Title: "Files by Extension", Content: strings.Join(extLines, "\n")},
			{Title: "Frameworks", Content: strings.Join(frameworks, "\n")},
		},
		Data: result,
	}
}

func structureCmd() *cli.Command {
	return &cli.Command{
		Name:      "structure",
		Usage:     "List the analyzable files of the project tree",
		ArgsUsage: "[path]",
		Action:    runStructure,
	}
}

func runStructure(c *cli.Context) error {
	svc, err := newService(c)
	if err != nil {
		return err
	}

	result, err := svc.AnalyzeStructure(getRoot(c), analysis.Options{})
	if err != nil {
		return fmt.Errorf("structure analysis failed: %w", err)
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var rows [][]string
	for _, file := range result.Files {
		rows = append(rows, []string{file})
	}

	footer := []string{fmt.Sprintf("Total Files: %d", result.TotalFiles)}
	if result.Truncated {
		footer = append(footer, fmt.Sprintf("(showing first %d)", len(result.Files)))
	}

	table := output.NewTable(
		"Project Structure",
		[]string{"File"},
		rows,
		footer,
		result,
	)

	return formatter.Output(table)
}
