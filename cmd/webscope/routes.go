package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/castellan/webscope/internal/output"
	"github.com/castellan/webscope/internal/progress"
	"github.com/castellan/webscope/internal/service/analysis"
)

func routesCmd() *cli.Command {
	return &cli.Command{
		Name:      "routes",
		Usage:     "Extract the routing table with protection flags",
		ArgsUsage: "[path]",
		Action:    runRoutes,
	}
}

func runRoutes(c *cli.Context) error {
	svc, err := newService(c)
	if err != nil {
		return err
	}

	tracker := progress.NewSpinner("Scanning routes...")
	result, err := svc.AnalyzeRoutes(getRoot(c), analysis.Options{OnProgress: tracker.Tick})
	tracker.FinishSuccess()
	if err != nil {
		return fmt.Errorf("route analysis failed: %w", err)
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var rows [][]string
	for _, route := range result.Routes {
		protected := ""
		if route.Protected {
			protected = color.YellowString("protected")
		}
		rows = append(rows, []string{
			route.Path,
			string(route.Kind),
			protected,
			route.File,
		})
	}

	footer := []string{
		fmt.Sprintf("Routes: %d", result.Summary.TotalRoutes),
		fmt.Sprintf("Protected: %d", result.Summary.ProtectedRoutes),
		fmt.Sprintf("Files Scanned: %d", result.Summary.FilesScanned),
	}
	if result.Summary.Truncated {
		footer = append(footer, fmt.Sprintf("(showing first %d)", len(result.Routes)))
	}

	table := output.NewTable(
		"Routes",
		[]string{"Path", "Kind", "Auth", "File"},
		rows,
		footer,
		result,
	)

	return formatter.Output(table)
}
