package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/castellan/webscope/internal/output"
	"github.com/castellan/webscope/internal/progress"
	"github.com/castellan/webscope/internal/service/analysis"
)

func schemaCmd() *cli.Command {
	return &cli.Command{
		Name:      "schema",
		Usage:     "Extract database-schema artifacts from SQL and typed source",
		ArgsUsage: "[path]",
		Action:    runSchema,
	}
}

func runSchema(c *cli.Context) error {
	svc, err := newService(c)
	if err != nil {
		return err
	}

	tracker := progress.NewSpinner("Scanning schema...")
	result, err := svc.AnalyzeSchema(getRoot(c), analysis.Options{OnProgress: tracker.Tick})
	tracker.FinishSuccess()
	if err != nil {
		return fmt.Errorf("schema analysis failed: %w", err)
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var rows [][]string
	for _, art := range result.Artifacts {
		rows = append(rows, []string{
			string(art.Kind),
			art.Name,
			art.File,
			truncate(art.Preview, 60),
		})
	}

	footer := []string{fmt.Sprintf("Total Artifacts: %d", result.Summary.TotalArtifacts)}
	for _, kind := range []string{"table", "policy", "function", "foreign_key", "type"} {
		if n := result.Summary.ByKind[kind]; n > 0 {
			footer = append(footer, fmt.Sprintf("%s: %d", kind, n))
		}
	}
	if result.Summary.Truncated {
		footer = append(footer, fmt.Sprintf("(showing first %d)", len(result.Artifacts)))
	}

	table := output.NewTable(
		"Schema Artifacts",
		[]string{"Kind", "Name", "File", "Preview"},
		rows,
		footer,
		result,
	)

	return formatter.Output(table)
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
