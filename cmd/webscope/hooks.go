package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/castellan/webscope/internal/output"
	"github.com/castellan/webscope/internal/progress"
	"github.com/castellan/webscope/internal/service/analysis"
)

func hooksCmd() *cli.Command {
	return &cli.Command{
		Name:      "hooks",
		Usage:     "Rank React hook usage, built-in and custom",
		ArgsUsage: "[path]",
		Action:    runHooks,
	}
}

func runHooks(c *cli.Context) error {
	svc, err := newService(c)
	if err != nil {
		return err
	}

	tracker := progress.NewSpinner("Scanning hooks...")
	result, err := svc.AnalyzeHooks(getRoot(c), analysis.Options{OnProgress: tracker.Tick})
	tracker.FinishSuccess()
	if err != nil {
		return fmt.Errorf("hook analysis failed: %w", err)
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var rows [][]string
	for _, hook := range result.Hooks {
		kind := "builtin"
		if hook.Custom {
			kind = "custom"
		}
		rows = append(rows, []string{
			hook.Name,
			fmt.Sprintf("%d", hook.Count),
			kind,
		})
	}

	footer := []string{
		fmt.Sprintf("Total Calls: %d", result.Summary.TotalCalls),
		fmt.Sprintf("Builtin: %d", result.Summary.BuiltinNames),
		fmt.Sprintf("Custom: %d", result.Summary.CustomNames),
	}
	if result.Summary.Truncated {
		footer = append(footer, fmt.Sprintf("(showing top %d)", len(result.Hooks)))
	}

	table := output.NewTable(
		"Hooks",
		[]string{"Hook", "Count", "Kind"},
		rows,
		footer,
		result,
	)

	return formatter.Output(table)
}
