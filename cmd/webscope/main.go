package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/castellan/webscope/internal/output"
	"github.com/castellan/webscope/internal/service/analysis"
	"github.com/castellan/webscope/pkg/config"
)

var (
	version = "dev"
	commit  = "none"    //nolint:unused // set via ldflags at build time
	date    = "unknown" //nolint:unused // set via ldflags at build time
)

// getRoot returns the project root from positional args, defaulting to ".".
func getRoot(c *cli.Context) string {
	if c.Args().Len() > 0 {
		return c.Args().First()
	}
	return "."
}

// loadConfig resolves the effective configuration: explicit --config file,
// then standard locations, then defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(), nil
}

// newService builds the analysis service for one command invocation.
func newService(c *cli.Context) (*analysis.Service, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return analysis.New(analysis.WithConfig(cfg)), nil
}

// newFormatter builds the output formatter from the global flags.
func newFormatter(c *cli.Context) (*output.Formatter, error) {
	return output.NewFormatter(
		output.ParseFormat(c.String("format")),
		c.String("output"),
		!c.Bool("no-color"),
	)
}

func main() {
	app := &cli.App{
		Name:    "webscope",
		Usage:   "Web project pattern analysis CLI",
		Version: version,
		Description: `Webscope inspects a web application source tree and reports on its
components, routes, dependencies, styling classes, hooks, API calls,
and database schema, using textual pattern extraction.

Works best with React/Next-style projects; no build step required.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"WEBSCOPE_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format: text, json, markdown, toon",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to file",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Commands: []*cli.Command{
			projectCmd(),
			structureCmd(),
			componentsCmd(),
			routesCmd(),
			depsCmd(),
			stylesCmd(),
			hooksCmd(),
			apiCmd(),
			schemaCmd(),
			mcpCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
