package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/castellan/webscope/internal/output"
	"github.com/castellan/webscope/internal/progress"
	"github.com/castellan/webscope/internal/service/analysis"
)

func apiCmd() *cli.Command {
	return &cli.Command{
		Name:      "api",
		Usage:     "Extract outbound API call sites: fetch, clients, tables, endpoints",
		ArgsUsage: "[path]",
		Action:    runAPI,
	}
}

func runAPI(c *cli.Context) error {
	svc, err := newService(c)
	if err != nil {
		return err
	}

	tracker := progress.NewSpinner("Scanning API calls...")
	result, err := svc.AnalyzeAPI(getRoot(c), analysis.Options{OnProgress: tracker.Tick})
	tracker.FinishSuccess()
	if err != nil {
		return fmt.Errorf("API analysis failed: %w", err)
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var rows [][]string
	for _, call := range result.Calls {
		rows = append(rows, []string{
			string(call.Kind),
			call.Method,
			call.Target,
			call.File,
		})
	}

	footer := []string{fmt.Sprintf("Total Calls: %d", result.Summary.TotalCalls)}
	for _, kind := range []string{"fetch", "client", "table", "endpoint"} {
		if n := result.Summary.ByKind[kind]; n > 0 {
			footer = append(footer, fmt.Sprintf("%s: %d", kind, n))
		}
	}
	if result.Summary.Truncated {
		footer = append(footer, fmt.Sprintf("(showing first %d)", len(result.Calls)))
	}

	table := output.NewTable(
		"API Calls",
		[]string{"Kind", "Method", "Target", "File"},
		rows,
		footer,
		result,
	)

	return formatter.Output(table)
}
