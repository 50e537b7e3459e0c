package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"syntek/internal/diagfmt"
	"syntek/internal/driver"
	"syntek/internal/source"
)

type stageRunner func(ctx context.Context, path string, opts driver.Options) (*source.FileSet, *driver.Unit, error)

// runSingle runs one pipeline stage over path, prints diagnostics to stderr
// and returns the unit for stage-specific output.
func runSingle(cmd *cobra.Command, path string, run stageRunner) (*source.FileSet, *driver.Unit, error) {
	m, err := loadManifest(path)
	if err != nil {
		return nil, nil, err
	}
	opts, err := driverOptions(cmd, m)
	if err != nil {
		return nil, nil, err
	}
	fs, unit, err := run(cmd.Context(), path, opts)
	if err != nil {
		return nil, nil, err
	}
	if unit.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, unit.Bag, fs, prettyOpts(cmd, os.Stderr, true))
	}
	printTimings(cmd, opts)
	return fs, unit, nil
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
		return format, nil
	}
	return "", fmt.Errorf("unknown format: %s", format)
}
