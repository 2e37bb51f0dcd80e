package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/castellan/webscope/internal/analyzer"
	"github.com/castellan/webscope/internal/output"
	"github.com/castellan/webscope/internal/progress"
	"github.com/castellan/webscope/internal/service/analysis"
)

func stylesCmd() *cli.Command {
	return &cli.Command{
		Name:      "styles",
		Usage:     "Rank styling-utility class usage with layout/color/typography buckets",
		ArgsUsage: "[path]",
		Action:    runStyles,
	}
}

func runStyles(c *cli.Context) error {
	svc, err := newService(c)
	if err != nil {
		return err
	}

	tracker := progress.NewSpinner("Scanning styles...")
	result, err := svc.AnalyzeStyles(getRoot(c), analysis.Options{OnProgress: tracker.Tick})
	tracker.FinishSuccess()
	if err != nil {
		return fmt.Errorf("style analysis failed: %w", err)
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var rows [][]string
	for _, usage := range result.TopClasses {
		rows = append(rows, []string{
			usage.Name,
			fmt.Sprintf("%d", usage.Count),
			strings.Join(analyzer.Buckets(usage.Name), ", "),
		})
	}

	footer := []string{
		fmt.Sprintf("Unique Classes: %d", result.Summary.UniqueClasses),
		fmt.Sprintf("Total Occurrences: %d", result.Summary.TotalOccurrences),
		fmt.Sprintf("Files Scanned: %d", result.Summary.FilesScanned),
	}
	if result.Summary.Truncated {
		footer = append(footer, fmt.Sprintf("(showing top %d)", len(result.TopClasses)))
	}

	table := output.NewTable(
		"Style Classes",
		[]string{"Class", "Count", "Buckets"},
		rows,
		footer,
		result,
	)

	return formatter.Output(table)
}
