package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/castellan/webscope/internal/output"
	"github.com/castellan/webscope/internal/progress"
	"github.com/castellan/webscope/internal/service/analysis"
)

func componentsCmd() *cli.Command {
	return &cli.Command{
		Name:      "components",
		Usage:     "Catalog UI component files with export, props, state, and effect flags",
		ArgsUsage: "[path]",
		Action:    runComponents,
	}
}

func runComponents(c *cli.Context) error {
	svc, err := newService(c)
	if err != nil {
		return err
	}

	tracker := progress.NewSpinner("Scanning components...")
	result, err := svc.AnalyzeComponents(getRoot(c), analysis.Options{OnProgress: tracker.Tick})
	tracker.FinishSuccess()
	if err != nil {
		return fmt.Errorf("component analysis failed: %w", err)
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	mark := func(b bool) string {
		if b {
			return "x"
		}
		return ""
	}

	var rows [][]string
	for _, comp := range result.Components {
		rows = append(rows, []string{
			comp.Name,
			comp.File,
			mark(comp.HasDefaultExport),
			mark(comp.UsesProps),
			mark(comp.UsesState),
			mark(comp.UsesEffect),
			mark(comp.HasJSX),
		})
	}

	footer := []string{
		fmt.Sprintf("Components: %d", result.Summary.TotalComponents),
		fmt.Sprintf("With State: %d", result.Summary.WithState),
		fmt.Sprintf("With Effects: %d", result.Summary.WithEffects),
		fmt.Sprintf("With Props: %d", result.Summary.WithProps),
	}
	if result.Summary.Truncated {
		footer = append(footer, fmt.Sprintf("(showing first %d)", len(result.Components)))
	}

	table := output.NewTable(
		"Components",
		[]string{"Name", "File", "Default Export", "Props", "State", "Effects", "JSX"},
		rows,
		footer,
		result,
	)

	return formatter.Output(table)
}
