package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"syntek/internal/diag"
	"syntek/internal/diagfmt"
	"syntek/internal/driver"
	"syntek/internal/project"
	"syntek/internal/source"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] [file.stk|directory]",
	Short: "Run diagnostics on a syntek source file or directory",
	Long: `Run lexing, parsing and scope resolution on a syntek source file or on all
*.stk files within a directory and report diagnostics. Without an argument the
[build].sources of the nearest syntek.toml are checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	diagCmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	diagCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	diagCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	diagCmd.Flags().Bool("no-cache", false, "do not read or write the analysis cache")
	diagCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
}

type diagFlags struct {
	format           string
	ui               uiMode
	withNotes        bool
	fullPath         bool
	noCache          bool
	warningsAsErrors bool
}

func readDiagFlags(cmd *cobra.Command) (diagFlags, error) {
	var df diagFlags
	var err error
	if df.format, err = cmd.Flags().GetString("format"); err != nil {
		return df, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch df.format {
	case "pretty", "json", "short":
	default:
		return df, fmt.Errorf("unknown format: %s", df.format)
	}
	uiStr, err := cmd.Flags().GetString("ui")
	if err != nil {
		return df, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if df.ui, err = readUIMode(uiStr); err != nil {
		return df, err
	}
	if df.withNotes, err = cmd.Flags().GetBool("with-notes"); err != nil {
		return df, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if df.fullPath, err = cmd.Flags().GetBool("fullpath"); err != nil {
		return df, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	if df.noCache, err = cmd.Flags().GetBool("no-cache"); err != nil {
		return df, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if df.warningsAsErrors, err = cmd.Flags().GetBool("warnings-as-errors"); err != nil {
		return df, fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	return df, nil
}

// runDiagnose analyzes a file, a directory or the manifest sources, prints
// the merged diagnostics and fails when any error was reported.
func runDiagnose(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	df, err := readDiagFlags(cmd)
	if err != nil {
		return err
	}
	target := ""
	if len(args) == 1 {
		target = args[0]
	}
	m, err := loadManifest(target)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd, m)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("jobs") {
		if opts.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if !df.noCache && m != nil && m.CacheDir() != "" {
		cache, cerr := driver.OpenDiskCache(m.CacheDir())
		if cerr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: cache disabled: %v\n", cerr)
		} else {
			opts.Cache = cache
		}
	}

	var paths []string
	switch {
	case target != "":
		paths = []string{target}
	case m != nil:
		paths = m.SourcePaths()
	default:
		return fmt.Errorf("no input: pass a file or directory, or run inside a project with %s", project.ManifestName)
	}

	fs, units, err := analyzePaths(cmd, df, opts, paths)
	if err != nil {
		return err
	}

	merged := diag.NewBag(0)
	cached := 0
	for _, u := range units {
		merged.Merge(u.Bag)
		if u.Cached {
			cached++
		}
	}
	merged.Sort()

	if err := writeDiagnostics(cmd, df, merged, fs); err != nil {
		return err
	}
	printTimings(cmd, opts)

	errs, warns := diag.Tally(merged.Items())
	if !quiet(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "checked %d file(s) (%d cached): %d error(s), %d warning(s)\n",
			len(units), cached, errs, warns)
	}
	if errs > 0 || (df.warningsAsErrors && warns > 0) {
		dumpTraceRing(cmd.ErrOrStderr())
		return errDiagnostics
	}
	return nil
}

func analyzePaths(cmd *cobra.Command, df diagFlags, opts driver.Options, paths []string) (*source.FileSet, []*driver.Unit, error) {
	if len(paths) == 1 {
		if st, err := os.Stat(paths[0]); err == nil && !st.IsDir() {
			fs, unit, err := driver.Analyze(cmd.Context(), paths[0], opts)
			if err != nil {
				return nil, nil, err
			}
			return fs, []*driver.Unit{unit}, nil
		}
	}
	if df.ui != uiModeOff && !quiet(cmd) {
		files, err := project.CollectSources(paths...)
		if err != nil {
			return nil, nil, err
		}
		if shouldUseTUI(df.ui, quiet(cmd), len(files)) {
			return analyzeDirWithUI(cmd.Context(), "syntek diag", files, opts, paths)
		}
	}
	return driver.AnalyzeDir(cmd.Context(), opts, paths...)
}

func writeDiagnostics(cmd *cobra.Command, df diagFlags, bag *diag.Bag, fs *source.FileSet) error {
	out := cmd.OutOrStdout()
	pathMode := diagfmt.PathModeRelative
	if df.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	switch df.format {
	case "json":
		return diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     df.withNotes,
		})
	case "short":
		if s := diag.FormatShortDiagnostics(bag.Items(), fs, df.withNotes); s != "" {
			fmt.Fprintln(out, s)
		}
	default:
		opts := prettyOpts(cmd, os.Stdout, df.withNotes)
		opts.PathMode = pathMode
		diagfmt.Pretty(out, bag, fs, opts)
	}
	return nil
}

