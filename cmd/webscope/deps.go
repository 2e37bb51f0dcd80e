package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/castellan/webscope/internal/output"
	"github.com/castellan/webscope/internal/service/analysis"
)

func depsCmd() *cli.Command {
	return &cli.Command{
		Name:      "deps",
		Aliases:   []string{"dependencies"},
		Usage:     "Classify declared dependencies into a category taxonomy",
		ArgsUsage: "[path]",
		Action:    runDeps,
	}
}

func runDeps(c *cli.Context) error {
	svc, err := newService(c)
	if err != nil {
		return err
	}

	result, err := svc.AnalyzeDependencies(getRoot(c), analysis.Options{})
	if err != nil {
		return fmt.Errorf("dependency analysis failed: %w", err)
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var rows [][]string
	for _, dep := range result.Dependencies {
		scope := "runtime"
		if dep.Dev {
			scope = "dev"
		}
		rows = append(rows, []string{
			dep.Name,
			dep.Version,
			string(dep.Category),
			scope,
		})
	}

	table := output.NewTable(
		fmt.Sprintf("Dependencies: %s", result.PackageName),
		[]string{"Name", "Version", "Category", "Scope"},
		rows,
		[]string{
			fmt.Sprintf("Total: %d", result.Summary.Total),
			fmt.Sprintf("Runtime: %d", result.Summary.Runtime),
			fmt.Sprintf("Dev: %d", result.Summary.Dev),
		},
		result,
	)

	return formatter.Output(table)
}
