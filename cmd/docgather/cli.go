package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/wczarnecki/docgather"
	"github.com/wczarnecki/docgather/ingest"
	"github.com/wczarnecki/docgather/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   *yaml.Config
	Sources  []docgather.SourceConfig
	Output   string
	Pipeline *ingest.Pipeline
	Logger   *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" default:"sources.yaml" help:"Path to the sources config file"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Run     RunCmd     `cmd:"" help:"Collect documentation from all configured sources"`
	Sources SourcesCmd `cmd:"" help:"List configured sources"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Output string `short:"o" help:"Output file path (overrides config)"`
}

// Run executes the full ingestion pipeline.
func (c *RunCmd) Run(deps *Dependencies) error {
	result, err := deps.Pipeline.Run(deps.Ctx, deps.Sources)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Collected %d documents into %s\n", result.Collected, deps.Output)
	if result.Duplicates > 0 {
		fmt.Fprintf(deps.Stdout, "  %d duplicate URLs discarded\n", result.Duplicates)
	}
	if result.Dropped > 0 {
		fmt.Fprintf(deps.Stdout, "  %d empty documents dropped\n", result.Dropped)
	}
	if result.SourcesSkipped > 0 {
		fmt.Fprintf(deps.Stdout, "  %d sources skipped\n", result.SourcesSkipped)
	}
	return nil
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}

// Run prints the configured sources as a table.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	if len(deps.Sources) == 0 {
		fmt.Fprintln(deps.Stdout, "No sources configured.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tTARGET")
	for _, src := range deps.Sources {
		target := src.URL
		if src.Kind == docgather.SourceGitHub {
			target = src.Owner + "/" + src.Repo
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", src.Name, src.Kind, target)
	}
	return w.Flush()
}
